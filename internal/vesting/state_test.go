package vesting

import (
	"encoding/binary"
	"errors"
	"testing"

	solana "github.com/gagliardetto/solana-go"
)

func handBuiltRecord(owner, mint, token solana.PublicKey, realm *solana.PublicKey, schedules []Schedule) []byte {
	data := []byte{1}
	data = append(data, owner[:]...)
	data = append(data, mint[:]...)
	data = append(data, token[:]...)
	if realm == nil {
		data = append(data, 0)
	} else {
		data = append(data, 1)
		data = append(data, realm[:]...)
	}
	data = binary.LittleEndian.AppendUint32(data, uint32(len(schedules)))
	for _, s := range schedules {
		data = binary.LittleEndian.AppendUint64(data, s.ReleaseTime)
		data = binary.LittleEndian.AppendUint64(data, s.Amount)
	}
	return data
}

func TestDecodeRecordWithRealm(t *testing.T) {
	owner := solana.NewWallet().PublicKey()
	mint := solana.NewWallet().PublicKey()
	token := solana.NewWallet().PublicKey()
	realm := solana.NewWallet().PublicKey()
	schedules := []Schedule{{ReleaseTime: 1000, Amount: 5}, {ReleaseTime: 2000, Amount: 7}}

	data := handBuiltRecord(owner, mint, token, &realm, schedules)
	// account data is allocated larger than the record
	data = append(data, make([]byte, 64)...)

	rec, err := DecodeRecord(data)
	if err != nil {
		t.Fatalf("DecodeRecord returned error: %v", err)
	}
	if !rec.Owner.Equals(owner) || !rec.Mint.Equals(mint) || !rec.Token.Equals(token) {
		t.Fatalf("decoded keys mismatch: %+v", rec)
	}
	if rec.Realm == nil || !rec.Realm.Equals(realm) {
		t.Fatalf("expected realm %s, got %v", realm, rec.Realm)
	}
	if len(rec.Schedule) != 2 || rec.Schedule[1].Amount != 7 || rec.Schedule[1].ReleaseTime != 2000 {
		t.Fatalf("unexpected schedule %+v", rec.Schedule)
	}
	amount, err := rec.Amount()
	if err != nil || amount != 12 {
		t.Fatalf("expected amount 12, got %d (%v)", amount, err)
	}
}

func TestEncodeRecordMatchesLayout(t *testing.T) {
	owner := solana.NewWallet().PublicKey()
	mint := solana.NewWallet().PublicKey()
	token := solana.NewWallet().PublicKey()
	schedules := []Schedule{{ReleaseTime: 42, Amount: 9}}

	got, err := EncodeRecord(Record{AccountType: AccountVestingRecord, Owner: owner, Mint: mint, Token: token, Schedule: schedules})
	if err != nil {
		t.Fatalf("EncodeRecord returned error: %v", err)
	}
	want := handBuiltRecord(owner, mint, token, nil, schedules)
	if string(got) != string(want) {
		t.Fatalf("encoded record mismatch:\n got %x\nwant %x", got, want)
	}
}

func TestDecodeRecordRejectsOtherAccounts(t *testing.T) {
	data := handBuiltRecord(solana.PublicKey{}, solana.PublicKey{}, solana.PublicKey{}, nil, nil)
	data[0] = 0
	if _, err := DecodeRecord(data); !errors.Is(err, ErrNotVestingRecord) {
		t.Fatalf("expected ErrNotVestingRecord, got %v", err)
	}
}

func TestDecodeRecordTruncated(t *testing.T) {
	data := handBuiltRecord(solana.PublicKey{}, solana.PublicKey{}, solana.PublicKey{}, nil, []Schedule{{1, 2}})
	if _, err := DecodeRecord(data[:len(data)-4]); err == nil {
		t.Fatalf("expected error for truncated schedule")
	}
	if _, err := DecodeRecord(data[:20]); err == nil {
		t.Fatalf("expected error for truncated keys")
	}
}

func TestDecodeRecordBadRealmTag(t *testing.T) {
	data := handBuiltRecord(solana.PublicKey{}, solana.PublicKey{}, solana.PublicKey{}, nil, nil)
	data[1+3*32] = 7
	if _, err := DecodeRecord(data); err == nil {
		t.Fatalf("expected error for invalid option tag")
	}
}
