// Package vesting models the governance vesting addin program from the client side:
// its account layouts, derived addresses, instruction builders and schedule arithmetic.
package vesting

import (
	"bytes"
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"
	solana "github.com/gagliardetto/solana-go"
)

// AccountType is the leading discriminator byte of every addin account.
type AccountType uint8

const (
	AccountUninitialized AccountType = 0
	AccountVestingRecord AccountType = 1
)

const scheduleSize = 16

var ErrNotVestingRecord = errors.New("account is not a vesting record")

// Record is the state stored in the vesting account derived from a vesting token account.
type Record struct {
	AccountType AccountType
	Owner       solana.PublicKey
	Mint        solana.PublicKey
	Token       solana.PublicKey
	Realm       *solana.PublicKey
	Schedule    []Schedule
}

// Amount sums the record schedule.
func (r *Record) Amount() (uint64, error) { return Total(r.Schedule) }

// MarshalWithEncoder writes the borsh layout of the record.
func (r Record) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := enc.WriteUint8(uint8(r.AccountType)); err != nil {
		return err
	}
	for _, key := range []solana.PublicKey{r.Owner, r.Mint, r.Token} {
		if err := enc.WriteBytes(key[:], false); err != nil {
			return err
		}
	}
	if r.Realm == nil {
		if err := enc.WriteUint8(0); err != nil {
			return err
		}
	} else {
		if err := enc.WriteUint8(1); err != nil {
			return err
		}
		if err := enc.WriteBytes(r.Realm[:], false); err != nil {
			return err
		}
	}
	return encodeSchedules(enc, r.Schedule)
}

// UnmarshalWithDecoder reads a borsh record. Bytes past the schedule are ignored, account
// data is allocated larger than the serialized record.
func (r *Record) UnmarshalWithDecoder(dec *bin.Decoder) error {
	kind, err := dec.ReadUint8()
	if err != nil {
		return fmt.Errorf("read account type: %w", err)
	}
	r.AccountType = AccountType(kind)
	for _, key := range []*solana.PublicKey{&r.Owner, &r.Mint, &r.Token} {
		if err := readKey(dec, key); err != nil {
			return err
		}
	}
	tag, err := dec.ReadUint8()
	if err != nil {
		return fmt.Errorf("read realm tag: %w", err)
	}
	switch tag {
	case 0:
		r.Realm = nil
	case 1:
		var realm solana.PublicKey
		if err := readKey(dec, &realm); err != nil {
			return err
		}
		r.Realm = &realm
	default:
		return fmt.Errorf("invalid realm option tag %d", tag)
	}
	r.Schedule, err = decodeSchedules(dec)
	return err
}

// DecodeRecord parses vesting account data.
func DecodeRecord(data []byte) (*Record, error) {
	var rec Record
	if err := rec.UnmarshalWithDecoder(bin.NewBorshDecoder(data)); err != nil {
		return nil, fmt.Errorf("decode vesting record: %w", err)
	}
	if rec.AccountType != AccountVestingRecord {
		return nil, ErrNotVestingRecord
	}
	return &rec, nil
}

// EncodeRecord returns the borsh bytes of rec.
func EncodeRecord(rec Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := rec.MarshalWithEncoder(bin.NewBorshEncoder(&buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func readKey(dec *bin.Decoder, out *solana.PublicKey) error {
	raw, err := dec.ReadNBytes(solana.PublicKeyLength)
	if err != nil {
		return fmt.Errorf("read pubkey: %w", err)
	}
	copy(out[:], raw)
	return nil
}

func encodeSchedules(enc *bin.Encoder, schedules []Schedule) error {
	if err := enc.WriteUint32(uint32(len(schedules)), bin.LE); err != nil {
		return err
	}
	for _, s := range schedules {
		if err := enc.WriteUint64(s.ReleaseTime, bin.LE); err != nil {
			return err
		}
		if err := enc.WriteUint64(s.Amount, bin.LE); err != nil {
			return err
		}
	}
	return nil
}

func decodeSchedules(dec *bin.Decoder) ([]Schedule, error) {
	count, err := dec.ReadUint32(bin.LE)
	if err != nil {
		return nil, fmt.Errorf("read schedule length: %w", err)
	}
	if int(count) > dec.Remaining()/scheduleSize {
		return nil, fmt.Errorf("schedule length %d exceeds account data", count)
	}
	out := make([]Schedule, count)
	for i := range out {
		if out[i].ReleaseTime, err = dec.ReadUint64(bin.LE); err != nil {
			return nil, fmt.Errorf("read release time: %w", err)
		}
		if out[i].Amount, err = dec.ReadUint64(bin.LE); err != nil {
			return nil, fmt.Errorf("read amount: %w", err)
		}
	}
	return out, nil
}
