// Package weights holds the fixed voter weight table compiled into the governance addin artifacts.
//
// The network variant is selected at build time: the default build carries the test voter
// list, `-tags mainnet` carries the mainnet list.
package weights

import (
	"errors"
	"math/bits"

	solana "github.com/gagliardetto/solana-go"
)

// TokenMult is the base-unit multiplier of the governing token (9 decimals).
const TokenMult uint64 = 1_000_000_000

// ExtraTokens are tokens that are not locked in vesting but still count toward supply.
const ExtraTokens uint64 = 290_000_000 * TokenMult

// SupplyFractionBase is the governance program's denominator for max vote weight fractions.
const SupplyFractionBase uint64 = 10_000_000_000

// SupplyFraction is the fraction of supply used to calculate the max voter weight.
const SupplyFraction uint64 = SupplyFractionBase / 10

// Decimal renderings of the constants, stored as statically initialized byte arrays so
// the linker emits them as named data symbols that external tooling can read from the
// binary.
var (
	ParamTokenMult      = [10]byte{'1', '0', '0', '0', '0', '0', '0', '0', '0', '0'}
	ParamExtraTokens    = [18]byte{'2', '9', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0'}
	ParamSupplyFraction = [10]byte{'1', '0', '0', '0', '0', '0', '0', '0', '0', '0'}
)

// ErrWeightOverflow is returned when the voter list does not fit into a u64 sum.
var ErrWeightOverflow = errors.New("voter weight sum overflows u64")

// Voter pairs an account with its fixed voting weight in base units.
type Voter struct {
	Address solana.PublicKey `json:"address"`
	Weight  uint64           `json:"weight"`
}

// Params is the set of scalar constants exported next to the voter list.
type Params struct {
	Network        string `json:"network"`
	TokenMult      string `json:"token_mult"`
	ExtraTokens    string `json:"extra_tokens"`
	SupplyFraction string `json:"supply_fraction"`
}

// CurrentParams returns the compiled parameter strings.
func CurrentParams() Params {
	return Params{
		Network:        Network,
		TokenMult:      string(ParamTokenMult[:]),
		ExtraTokens:    string(ParamExtraTokens[:]),
		SupplyFraction: string(ParamSupplyFraction[:]),
	}
}

// VoterList returns a copy of the compiled voter list in declaration order.
func VoterList() []Voter {
	out := make([]Voter, len(voterList))
	copy(out, voterList[:])
	return out
}

// Lookup returns the fixed weight of addr.
func Lookup(addr solana.PublicKey) (uint64, bool) {
	for i := range voterList {
		if voterList[i].Address.Equals(addr) {
			return voterList[i].Weight, true
		}
	}
	return 0, false
}

// Total sums every weight in the list.
func Total() (uint64, error) {
	return sum(voterList[:])
}

func sum(list []Voter) (uint64, error) {
	var total uint64
	for _, v := range list {
		next, carry := bits.Add64(total, v.Weight, 0)
		if carry != 0 {
			return 0, ErrWeightOverflow
		}
		total = next
	}
	return total, nil
}
