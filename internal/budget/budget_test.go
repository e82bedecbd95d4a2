package budget

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func TestEstimate(t *testing.T) {
	if got := Estimate(10_000); got != 11_330 {
		t.Fatalf("expected 11330 units, got %d", got)
	}
	if got := Estimate(0); got != 330 {
		t.Fatalf("expected padding-only estimate 330, got %d", got)
	}
	if got := Estimate(5_000_000); got != MaxUnits {
		t.Fatalf("expected estimate capped at %d, got %d", MaxUnits, got)
	}
}

func TestComputeBudgetInstructionData(t *testing.T) {
	limit := SetComputeUnitLimit(200_000)
	data, _ := limit.Data()
	if len(data) != 5 || data[0] != 2 || binary.LittleEndian.Uint32(data[1:]) != 200_000 {
		t.Fatalf("unexpected limit data %x", data)
	}
	if !limit.ProgramID().Equals(ProgramID) {
		t.Fatalf("unexpected program id")
	}

	price := SetComputeUnitPrice(1_500)
	data, _ = price.Data()
	if len(data) != 9 || data[0] != 3 || binary.LittleEndian.Uint64(data[1:]) != 1_500 {
		t.Fatalf("unexpected price data %x", data)
	}
	if len(price.Accounts()) != 0 {
		t.Fatalf("compute budget instructions take no accounts")
	}
}

func TestLimitsAllow(t *testing.T) {
	limits := Limits{MaxComputeUnitPrice: 10_000, MaxPriorityFeeLamports: 1_000}
	if err := limits.Allow(100_000, 5_000); err != nil {
		t.Fatalf("expected fee under limit to pass: %v", err)
	}
	if err := limits.Allow(100_000, 20_000); !errors.Is(err, ErrPriceTooHigh) {
		t.Fatalf("expected price above limit to fail")
	}
	if err := limits.Allow(1_000_000, 10_000); !errors.Is(err, ErrFeeTooHigh) {
		t.Fatalf("expected priority fee above limit to fail")
	}
	if err := (Limits{}).Allow(1_400_000, 1<<40); err != nil {
		t.Fatalf("zero limits must disable checks: %v", err)
	}
}

func TestPriorityFeeRoundsUp(t *testing.T) {
	if fee := PriorityFee(1, 1); fee != 1 {
		t.Fatalf("expected fee rounded up to 1, got %d", fee)
	}
	if fee := PriorityFee(200_000, 5_000); fee != 1_000 {
		t.Fatalf("expected 1000 lamports, got %d", fee)
	}
}

func TestPriorityFeeDoesNotWrap(t *testing.T) {
	// 1.4M units at this price wraps a 64-bit product to 1 lamport
	const price = 13_176_245_766_936
	if fee := PriorityFee(MaxUnits, price); fee != 18_446_744_073_711 {
		t.Fatalf("expected the full 96-bit fee, got %d", fee)
	}
	if fee := PriorityFee(^uint32(0), ^uint64(0)); fee != math.MaxUint64 {
		t.Fatalf("expected saturation, got %d", fee)
	}
	limits := Limits{MaxPriorityFeeLamports: 1_000_000}
	if err := limits.Allow(MaxUnits, price); !errors.Is(err, ErrFeeTooHigh) {
		t.Fatalf("expected oversized fee to be rejected, got %v", err)
	}
}
