package vesting

import solana "github.com/gagliardetto/solana-go"

// RecordFilter matches every initialized vesting record (memcmp at offset 0).
func RecordFilter() []byte {
	return []byte{byte(AccountVestingRecord)}
}

// OwnerFilter matches vesting records owned by owner; the owner follows the type byte.
func OwnerFilter(owner solana.PublicKey) []byte {
	out := make([]byte, 0, 1+solana.PublicKeyLength)
	out = append(out, byte(AccountVestingRecord))
	return append(out, owner[:]...)
}
