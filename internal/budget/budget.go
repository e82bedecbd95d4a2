// Package budget builds compute budget instructions and guards priority fees.
package budget

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/bits"

	bin "github.com/gagliardetto/binary"
	solana "github.com/gagliardetto/solana-go"
)

// ProgramID is the native compute budget program.
var ProgramID = solana.MustPublicKeyFromBase58("ComputeBudget111111111111111111111111111111")

const (
	setComputeUnitLimit uint8 = 2
	setComputeUnitPrice uint8 = 3
)

const (
	// UnitsPadding is added to simulated consumption before scaling.
	UnitsPadding = 300
	// MaxUnits is the per-transaction compute ceiling.
	MaxUnits = 1_400_000
)

// Estimate turns simulated consumption into a compute unit limit with 10% headroom.
func Estimate(unitsConsumed uint64) uint32 {
	units := (unitsConsumed + UnitsPadding) * 110 / 100
	if units > MaxUnits {
		units = MaxUnits
	}
	return uint32(units)
}

// SetComputeUnitLimit requests units of compute for the transaction.
func SetComputeUnitLimit(units uint32) *solana.GenericInstruction {
	var buf bytes.Buffer
	enc := bin.NewBorshEncoder(&buf)
	_ = enc.WriteUint8(setComputeUnitLimit)
	_ = enc.WriteUint32(units, bin.LE)
	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{}, buf.Bytes())
}

// SetComputeUnitPrice sets the priority fee in micro-lamports per compute unit.
func SetComputeUnitPrice(microLamports uint64) *solana.GenericInstruction {
	var buf bytes.Buffer
	enc := bin.NewBorshEncoder(&buf)
	_ = enc.WriteUint8(setComputeUnitPrice)
	_ = enc.WriteUint64(microLamports, bin.LE)
	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{}, buf.Bytes())
}

const microLamportsPerLamport = 1_000_000

// PriorityFee returns the lamports paid on top of the base fee for units at price, rounded
// up. A fee that does not fit in a u64 saturates at math.MaxUint64.
func PriorityFee(units uint32, microLamports uint64) uint64 {
	hi, lo := bits.Mul64(uint64(units), microLamports)
	lo, carry := bits.Add64(lo, microLamportsPerLamport-1, 0)
	hi += carry
	if hi >= microLamportsPerLamport {
		return math.MaxUint64
	}
	fee, _ := bits.Div64(hi, lo, microLamportsPerLamport)
	return fee
}

var (
	ErrPriceTooHigh = errors.New("compute unit price exceeds limit")
	ErrFeeTooHigh   = errors.New("priority fee exceeds limit")
)

// Limits caps what a single transaction may spend on priority fees. Zero disables a cap.
type Limits struct {
	MaxComputeUnitPrice    uint64
	MaxPriorityFeeLamports uint64
}

// Allow rejects a compute budget whose price or total priority fee exceeds the limits.
func (l Limits) Allow(units uint32, microLamports uint64) error {
	if l.MaxComputeUnitPrice > 0 && microLamports > l.MaxComputeUnitPrice {
		return fmt.Errorf("%w: %d > %d", ErrPriceTooHigh, microLamports, l.MaxComputeUnitPrice)
	}
	if fee := PriorityFee(units, microLamports); l.MaxPriorityFeeLamports > 0 && fee > l.MaxPriorityFeeLamports {
		return fmt.Errorf("%w: %d > %d lamports", ErrFeeTooHigh, fee, l.MaxPriorityFeeLamports)
	}
	return nil
}
