package vesting

import (
	"bytes"

	bin "github.com/gagliardetto/binary"
	solana "github.com/gagliardetto/solana-go"
)

// Instruction variant indexes of the addin program.
const (
	InstructionDeposit uint8 = iota
	InstructionWithdraw
	InstructionChangeOwner
	InstructionCreateVoterWeightRecord
	InstructionSetVotePercentage
	InstructionSplit
)

// Realm identifies the governance context a vesting record participates in.
type Realm struct {
	GovernanceProgramID solana.PublicKey
	Address             solana.PublicKey
	Mint                solana.PublicKey
}

// DepositAccounts are the addresses Deposit needs.
type DepositAccounts struct {
	VestingToken     solana.PublicKey
	SourceTokenOwner solana.PublicKey
	SourceToken      solana.PublicKey
	VestingOwner     solana.PublicKey
	Payer            solana.PublicKey
}

// Deposit locks tokens from the source account into the vesting token account.
//
//  0. [] system program
//  1. [] spl-token program
//  2. [writable] vesting account, PDA of the vesting token
//  3. [writable] vesting token account
//  4. [signer] source token owner
//  5. [writable] source token account
//  6. [] vesting owner
//  7. [writable, signer] payer
func Deposit(programID solana.PublicKey, a DepositAccounts, schedules []Schedule) (*solana.GenericInstruction, error) {
	metas, err := depositMetas(programID, a)
	if err != nil {
		return nil, err
	}
	return build(programID, metas, InstructionDeposit, schedulePayload(schedules))
}

// DepositWithRealm is Deposit plus the voter weight bookkeeping accounts.
//
//  8. [] governance program
//  9. [] realm
//  10. [] governing token mint
//  11. [writable] voter weight record of the vesting owner
//  12. [writable] max voter weight record of the realm
func DepositWithRealm(programID solana.PublicKey, a DepositAccounts, schedules []Schedule, realm Realm) (*solana.GenericInstruction, error) {
	metas, err := depositMetas(programID, a)
	if err != nil {
		return nil, err
	}
	vwr, err := VoterWeightRecordAddress(programID, realm.Address, realm.Mint, a.VestingOwner)
	if err != nil {
		return nil, err
	}
	maxVwr, err := MaxVoterWeightRecordAddress(programID, realm.Address, realm.Mint)
	if err != nil {
		return nil, err
	}
	metas = append(metas,
		solana.Meta(realm.GovernanceProgramID),
		solana.Meta(realm.Address),
		solana.Meta(realm.Mint),
		solana.Meta(vwr).WRITE(),
		solana.Meta(maxVwr).WRITE(),
	)
	return build(programID, metas, InstructionDeposit, schedulePayload(schedules))
}

func depositMetas(programID solana.PublicKey, a DepositAccounts) (solana.AccountMetaSlice, error) {
	vesting, err := VestingAddress(programID, a.VestingToken)
	if err != nil {
		return nil, err
	}
	return solana.AccountMetaSlice{
		solana.Meta(solana.SystemProgramID),
		solana.Meta(solana.TokenProgramID),
		solana.Meta(vesting).WRITE(),
		solana.Meta(a.VestingToken).WRITE(),
		solana.Meta(a.SourceTokenOwner).SIGNER(),
		solana.Meta(a.SourceToken).WRITE(),
		solana.Meta(a.VestingOwner),
		solana.Meta(a.Payer).WRITE().SIGNER(),
	}, nil
}

// WithdrawAccounts are the addresses Withdraw needs.
type WithdrawAccounts struct {
	VestingToken     solana.PublicKey
	DestinationToken solana.PublicKey
	VestingOwner     solana.PublicKey
}

// Withdraw releases every matured schedule item to the destination token account.
//
//  0. [] spl-token program
//  1. [writable] vesting account
//  2. [writable] vesting token account
//  3. [writable] destination token account
//  4. [signer] vesting owner
func Withdraw(programID solana.PublicKey, a WithdrawAccounts) (*solana.GenericInstruction, error) {
	metas, err := withdrawMetas(programID, a)
	if err != nil {
		return nil, err
	}
	return build(programID, metas, InstructionWithdraw, nil)
}

// WithdrawWithRealm is Withdraw plus the voter weight bookkeeping accounts.
//
//  5. [] governance program
//  6. [] realm
//  7. [] token owner record of the vesting owner
//  8. [writable] voter weight record of the vesting owner
//  9. [writable] max voter weight record of the realm
func WithdrawWithRealm(programID solana.PublicKey, a WithdrawAccounts, realm Realm) (*solana.GenericInstruction, error) {
	metas, err := withdrawMetas(programID, a)
	if err != nil {
		return nil, err
	}
	extra, err := ownerRealmMetas(programID, realm, a.VestingOwner)
	if err != nil {
		return nil, err
	}
	maxVwr, err := MaxVoterWeightRecordAddress(programID, realm.Address, realm.Mint)
	if err != nil {
		return nil, err
	}
	metas = append(metas, extra...)
	metas = append(metas, solana.Meta(maxVwr).WRITE())
	return build(programID, metas, InstructionWithdraw, nil)
}

func withdrawMetas(programID solana.PublicKey, a WithdrawAccounts) (solana.AccountMetaSlice, error) {
	vesting, err := VestingAddress(programID, a.VestingToken)
	if err != nil {
		return nil, err
	}
	return solana.AccountMetaSlice{
		solana.Meta(solana.TokenProgramID),
		solana.Meta(vesting).WRITE(),
		solana.Meta(a.VestingToken).WRITE(),
		solana.Meta(a.DestinationToken).WRITE(),
		solana.Meta(a.VestingOwner).SIGNER(),
	}, nil
}

// ownerRealmMetas lists governance program, realm, token owner record and voter weight record of owner.
func ownerRealmMetas(programID solana.PublicKey, realm Realm, owner solana.PublicKey) (solana.AccountMetaSlice, error) {
	tor, err := TokenOwnerRecordAddress(realm.GovernanceProgramID, realm.Address, realm.Mint, owner)
	if err != nil {
		return nil, err
	}
	vwr, err := VoterWeightRecordAddress(programID, realm.Address, realm.Mint, owner)
	if err != nil {
		return nil, err
	}
	return solana.AccountMetaSlice{
		solana.Meta(realm.GovernanceProgramID),
		solana.Meta(realm.Address),
		solana.Meta(tor),
		solana.Meta(vwr).WRITE(),
	}, nil
}

// ChangeOwnerAccounts are the addresses ChangeOwner needs.
type ChangeOwnerAccounts struct {
	VestingToken    solana.PublicKey
	VestingOwner    solana.PublicKey
	NewVestingOwner solana.PublicKey
}

// ChangeOwner hands the vesting record to a new owner.
//
//  0. [writable] vesting account
//  1. [] vesting token account
//  2. [signer] current vesting owner
//  3. [] new vesting owner
func ChangeOwner(programID solana.PublicKey, a ChangeOwnerAccounts) (*solana.GenericInstruction, error) {
	metas, err := changeOwnerMetas(programID, a)
	if err != nil {
		return nil, err
	}
	return build(programID, metas, InstructionChangeOwner, nil)
}

// ChangeOwnerWithRealm moves voter weight along with the ownership.
//
//  4. [] governance program
//  5. [] realm
//  6. [] token owner record of the current owner
//  7. [writable] voter weight record of the current owner
//  8. [writable] voter weight record of the new owner
func ChangeOwnerWithRealm(programID solana.PublicKey, a ChangeOwnerAccounts, realm Realm) (*solana.GenericInstruction, error) {
	metas, err := changeOwnerMetas(programID, a)
	if err != nil {
		return nil, err
	}
	extra, err := ownerRealmMetas(programID, realm, a.VestingOwner)
	if err != nil {
		return nil, err
	}
	newVwr, err := VoterWeightRecordAddress(programID, realm.Address, realm.Mint, a.NewVestingOwner)
	if err != nil {
		return nil, err
	}
	metas = append(metas, extra...)
	metas = append(metas, solana.Meta(newVwr).WRITE())
	return build(programID, metas, InstructionChangeOwner, nil)
}

func changeOwnerMetas(programID solana.PublicKey, a ChangeOwnerAccounts) (solana.AccountMetaSlice, error) {
	vesting, err := VestingAddress(programID, a.VestingToken)
	if err != nil {
		return nil, err
	}
	return solana.AccountMetaSlice{
		solana.Meta(vesting).WRITE(),
		solana.Meta(a.VestingToken),
		solana.Meta(a.VestingOwner).SIGNER(),
		solana.Meta(a.NewVestingOwner),
	}, nil
}

// CreateVoterWeightRecord creates the addin voter weight record of recordOwner.
//
//  0. [] system program
//  1. [] record owner
//  2. [writable, signer] payer
//  3. [] realm
//  4. [] governing token mint
//  5. [writable] voter weight record
func CreateVoterWeightRecord(programID, recordOwner, payer, realm, mint solana.PublicKey) (*solana.GenericInstruction, error) {
	vwr, err := VoterWeightRecordAddress(programID, realm, mint, recordOwner)
	if err != nil {
		return nil, err
	}
	metas := solana.AccountMetaSlice{
		solana.Meta(solana.SystemProgramID),
		solana.Meta(recordOwner),
		solana.Meta(payer).WRITE().SIGNER(),
		solana.Meta(realm),
		solana.Meta(mint),
		solana.Meta(vwr).WRITE(),
	}
	return build(programID, metas, InstructionCreateVoterWeightRecord, nil)
}

// SetVotePercentageWithRealm sets what share of the deposited tokens counts as voting weight.
//
//  0. [] vesting owner
//  1. [signer] vesting authority
//  2. [] governance program
//  3. [] realm
//  4. [] governing token mint
//  5. [] token owner record of the vesting owner
//  6. [writable] voter weight record of the vesting owner
func SetVotePercentageWithRealm(programID, vestingOwner, authority solana.PublicKey, realm Realm, percentage uint16) (*solana.GenericInstruction, error) {
	tor, err := TokenOwnerRecordAddress(realm.GovernanceProgramID, realm.Address, realm.Mint, vestingOwner)
	if err != nil {
		return nil, err
	}
	vwr, err := VoterWeightRecordAddress(programID, realm.Address, realm.Mint, vestingOwner)
	if err != nil {
		return nil, err
	}
	metas := solana.AccountMetaSlice{
		solana.Meta(vestingOwner),
		solana.Meta(authority).SIGNER(),
		solana.Meta(realm.GovernanceProgramID),
		solana.Meta(realm.Address),
		solana.Meta(realm.Mint),
		solana.Meta(tor),
		solana.Meta(vwr).WRITE(),
	}
	return build(programID, metas, InstructionSetVotePercentage, func(enc *bin.Encoder) error {
		return enc.WriteUint16(percentage, bin.LE)
	})
}

// SplitAccounts are the addresses Split needs.
type SplitAccounts struct {
	VestingToken    solana.PublicKey
	VestingOwner    solana.PublicKey
	NewVestingToken solana.PublicKey
	NewVestingOwner solana.PublicKey
	Payer           solana.PublicKey
}

// Split moves part of the remaining vesting into a new record with its own schedule.
//
//  0. [] system program
//  1. [] spl-token program
//  2. [writable] vesting account
//  3. [writable] vesting token account
//  4. [signer] vesting owner
//  5. [writable] new vesting account
//  6. [writable] new vesting token account
//  7. [] new vesting owner
//  8. [writable, signer] payer
func Split(programID solana.PublicKey, a SplitAccounts, schedules []Schedule) (*solana.GenericInstruction, error) {
	metas, err := splitMetas(programID, a)
	if err != nil {
		return nil, err
	}
	return build(programID, metas, InstructionSplit, schedulePayload(schedules))
}

// SplitWithRealm is Split plus voter weight accounts of both owners.
//
//  9. [] governance program
//  10. [] realm
//  11. [] token owner record of the vesting owner
//  12. [writable] voter weight record of the vesting owner
//  13. [writable] voter weight record of the new owner
func SplitWithRealm(programID solana.PublicKey, a SplitAccounts, schedules []Schedule, realm Realm) (*solana.GenericInstruction, error) {
	metas, err := splitMetas(programID, a)
	if err != nil {
		return nil, err
	}
	extra, err := ownerRealmMetas(programID, realm, a.VestingOwner)
	if err != nil {
		return nil, err
	}
	newVwr, err := VoterWeightRecordAddress(programID, realm.Address, realm.Mint, a.NewVestingOwner)
	if err != nil {
		return nil, err
	}
	metas = append(metas, extra...)
	metas = append(metas, solana.Meta(newVwr).WRITE())
	return build(programID, metas, InstructionSplit, schedulePayload(schedules))
}

func splitMetas(programID solana.PublicKey, a SplitAccounts) (solana.AccountMetaSlice, error) {
	vesting, err := VestingAddress(programID, a.VestingToken)
	if err != nil {
		return nil, err
	}
	newVesting, err := VestingAddress(programID, a.NewVestingToken)
	if err != nil {
		return nil, err
	}
	return solana.AccountMetaSlice{
		solana.Meta(solana.SystemProgramID),
		solana.Meta(solana.TokenProgramID),
		solana.Meta(vesting).WRITE(),
		solana.Meta(a.VestingToken).WRITE(),
		solana.Meta(a.VestingOwner).SIGNER(),
		solana.Meta(newVesting).WRITE(),
		solana.Meta(a.NewVestingToken).WRITE(),
		solana.Meta(a.NewVestingOwner),
		solana.Meta(a.Payer).WRITE().SIGNER(),
	}, nil
}

func schedulePayload(schedules []Schedule) func(*bin.Encoder) error {
	return func(enc *bin.Encoder) error { return encodeSchedules(enc, schedules) }
}

func build(programID solana.PublicKey, metas solana.AccountMetaSlice, variant uint8, payload func(*bin.Encoder) error) (*solana.GenericInstruction, error) {
	var buf bytes.Buffer
	enc := bin.NewBorshEncoder(&buf)
	if err := enc.WriteUint8(variant); err != nil {
		return nil, err
	}
	if payload != nil {
		if err := payload(enc); err != nil {
			return nil, err
		}
	}
	return solana.NewInstruction(programID, metas, buf.Bytes()), nil
}
