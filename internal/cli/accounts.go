package cli

import (
	"fmt"

	solana "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
)

const (
	// TokenAccountLen is the size of an spl-token account.
	TokenAccountLen = 165
	// TokenAccountRent is the rent exempt balance of a TokenAccountLen account
	// under the default rent parameters.
	TokenAccountRent uint64 = (TokenAccountLen + 128) * 3480 * 2
)

// createTokenAccount funds newAccount from funder and initializes it as a token account of
// mint controlled by owner.
func createTokenAccount(funder, newAccount, mint, owner solana.PublicKey) ([]solana.Instruction, error) {
	create, err := system.NewCreateAccountInstruction(
		TokenAccountRent,
		TokenAccountLen,
		solana.TokenProgramID,
		funder,
		newAccount,
	).ValidateAndBuild()
	if err != nil {
		return nil, fmt.Errorf("create account instruction: %w", err)
	}
	initialize, err := token.NewInitializeAccountInstruction(
		newAccount,
		mint,
		owner,
		solana.SysVarRentPubkey,
	).ValidateAndBuild()
	if err != nil {
		return nil, fmt.Errorf("initialize account instruction: %w", err)
	}
	return []solana.Instruction{create, initialize}, nil
}
