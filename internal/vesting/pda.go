package vesting

import (
	"fmt"

	solana "github.com/gagliardetto/solana-go"
)

var (
	voterWeightSeed    = []byte("voter_weight")
	maxVoterWeightSeed = []byte("max_voter_weight")
	governanceSeed     = []byte("governance")
)

// VestingAddress derives the vesting record account owning vestingToken.
func VestingAddress(programID, vestingToken solana.PublicKey) (solana.PublicKey, error) {
	return findAddress(programID, vestingToken.Bytes())
}

// VoterWeightRecordAddress derives the addin voter weight record of owner in realm.
func VoterWeightRecordAddress(programID, realm, mint, owner solana.PublicKey) (solana.PublicKey, error) {
	return findAddress(programID, voterWeightSeed, realm.Bytes(), mint.Bytes(), owner.Bytes())
}

// MaxVoterWeightRecordAddress derives the addin max voter weight record of realm.
func MaxVoterWeightRecordAddress(programID, realm, mint solana.PublicKey) (solana.PublicKey, error) {
	return findAddress(programID, maxVoterWeightSeed, realm.Bytes(), mint.Bytes())
}

// TokenOwnerRecordAddress derives the governance program's token owner record.
func TokenOwnerRecordAddress(governanceID, realm, mint, owner solana.PublicKey) (solana.PublicKey, error) {
	return findAddress(governanceID, governanceSeed, realm.Bytes(), mint.Bytes(), owner.Bytes())
}

func findAddress(programID solana.PublicKey, seeds ...[]byte) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(seeds, programID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("derive address under %s: %w", programID, err)
	}
	return addr, nil
}
