//go:build !mainnet

package weights

import solana "github.com/gagliardetto/solana-go"

// Network names the compiled voter list variant.
const Network = "testnet"

var voterList = [17]Voter{
	// 482nKGVFN1efNeBiCAkPrWATESj9Sxn6FSpzqNBoFFyg
	{Address: solana.PublicKey{0x2e, 0x60, 0x23, 0xfb, 0x7c, 0x45, 0x64, 0x02, 0x9c, 0x7e, 0x81, 0x10, 0x7f, 0xf7, 0x06, 0x57, 0xa7, 0x2d, 0xd7, 0x34, 0xa5, 0x81, 0x88, 0xac, 0xb9, 0x9e, 0x68, 0xcd, 0xf1, 0xf0, 0xe2, 0x5f}, Weight: 188762400 * TokenMult},
	// Dsc7huV17uZQWW4LG7K2o3TEiGKXTZNjxkARz2xzFu1d
	{Address: solana.PublicKey{0xbf, 0x42, 0xfd, 0x29, 0x7e, 0x32, 0x44, 0x83, 0x3f, 0xa5, 0x13, 0x51, 0x61, 0x88, 0x90, 0xdb, 0xe8, 0xbe, 0xc7, 0xdd, 0xb5, 0xfd, 0x9e, 0xd2, 0xd3, 0x57, 0x2b, 0x09, 0x65, 0x4e, 0xca, 0x54}, Weight: 60000000 * TokenMult},
	// 26kiPimzAioocLxZAmCvkPqgLtQL6xUSCMwkRvCSFc6j
	{Address: solana.PublicKey{0x10, 0x55, 0x04, 0xa5, 0xbc, 0x3c, 0xfe, 0xbd, 0x4d, 0xb7, 0xc0, 0x11, 0x72, 0x2e, 0x15, 0xc1, 0x99, 0x82, 0x4a, 0xf4, 0x04, 0x0c, 0x01, 0x7f, 0xb8, 0x5b, 0x3a, 0x8c, 0x68, 0xa1, 0x96, 0x18}, Weight: 149000000 * TokenMult},
	// 2FWwpJHitWEk9nqte8M6CQSzCUxogUdUfjco8pPfXozX
	{Address: solana.PublicKey{0x12, 0x93, 0xad, 0x62, 0x34, 0xc9, 0xac, 0xc1, 0x31, 0xf1, 0xfb, 0x6c, 0x8e, 0x70, 0x4c, 0x69, 0x86, 0x32, 0xbd, 0x88, 0x3b, 0x4a, 0x36, 0x52, 0xc4, 0xa4, 0x45, 0xb1, 0x42, 0x57, 0x99, 0x90}, Weight: 1000000 * TokenMult},
	// GUSDGuq94QYpj3YysYfnkgiKWeNcXanV2LgMrqFnsLBs
	{Address: solana.PublicKey{0xe5, 0xe6, 0x7e, 0x1c, 0x26, 0x99, 0x1b, 0xb6, 0x80, 0x2c, 0x27, 0x0f, 0x7b, 0x93, 0x03, 0x0f, 0x29, 0x7d, 0x32, 0x58, 0xf5, 0x00, 0xee, 0x55, 0xe8, 0xf0, 0x71, 0x8b, 0xf2, 0x79, 0x9f, 0x02}, Weight: 150000000 * TokenMult},
	// keyBcYtD2h6PTWvx8Ewwrak2w72hoM5VdBNbwNqwmuX
	{Address: solana.PublicKey{0x0b, 0x2e, 0xe7, 0xf6, 0x79, 0x1e, 0x2f, 0x58, 0x2c, 0x30, 0x5a, 0x8f, 0x94, 0xf1, 0x3d, 0xd1, 0x3e, 0x2d, 0x0c, 0xb7, 0xd9, 0x60, 0xe0, 0xe2, 0xf2, 0xc8, 0xb8, 0x10, 0x22, 0x36, 0x4b, 0x26}, Weight: 40000000 * TokenMult},
	// keyNBBcjcqbTGiEyihcS6FodYh68sPkWs6RG5yfLDCN
	{Address: solana.PublicKey{0x0b, 0x2e, 0xe8, 0xdf, 0x25, 0x51, 0x67, 0x9d, 0x56, 0xbf, 0x66, 0x0d, 0x56, 0x8c, 0xf5, 0xab, 0xb7, 0xd3, 0xe9, 0x0d, 0xa2, 0x7b, 0x41, 0x80, 0xb6, 0x53, 0x0f, 0xbd, 0x48, 0xbe, 0xad, 0x1b}, Weight: 40000000 * TokenMult},
	// HFTXn5oTGo9dgSJfgCAU59caaiwLWx1ZDy7VjE1qu4w
	{Address: solana.PublicKey{0x04, 0x29, 0xa3, 0xd7, 0x8a, 0x2c, 0x28, 0x4f, 0x08, 0x52, 0xd6, 0xe0, 0x28, 0xf5, 0x50, 0xcd, 0xfd, 0xba, 0x05, 0x1a, 0xaa, 0x58, 0xa1, 0x58, 0xe6, 0xb5, 0xb1, 0xe0, 0xa6, 0x99, 0x7f, 0x54}, Weight: 20000000 * TokenMult},
	// tst18qx7Kd3ELAsM3Qxn4nKNRZeg26Zi7GKGHaeWFm6
	{Address: solana.PublicKey{0x0d, 0x4a, 0x26, 0x96, 0x1a, 0x7f, 0x7a, 0xb8, 0x74, 0xc5, 0xb0, 0xbb, 0xc8, 0xb8, 0x16, 0x10, 0xd5, 0x4e, 0x21, 0x1b, 0x1d, 0x71, 0xdc, 0xec, 0xc4, 0x74, 0x40, 0x73, 0xe7, 0x4e, 0xfe, 0xed}, Weight: 20000000 * TokenMult},
	// tst6RG7t1J8XN3NYLNHkA3acfZcjurhurG7Kk3gAw9k
	{Address: solana.PublicKey{0x0d, 0x4a, 0x27, 0x0a, 0x7a, 0x52, 0xe0, 0xa4, 0x79, 0xc3, 0x8e, 0x98, 0xd7, 0xa2, 0x06, 0x48, 0xf5, 0x29, 0x16, 0x5a, 0x67, 0xac, 0x53, 0x5b, 0x26, 0xd8, 0xe5, 0x8d, 0xcb, 0x3b, 0x55, 0x6b}, Weight: 4000000 * TokenMult},
	// tst6YyNdi4nGhHAew2N9GKLfVE2gp99y4y4XNAo52qs
	{Address: solana.PublicKey{0x0d, 0x4a, 0x27, 0x0d, 0x68, 0x10, 0x96, 0x46, 0xb1, 0xb5, 0xec, 0x88, 0xb4, 0x77, 0x0a, 0xf1, 0x22, 0x9f, 0x0e, 0x7a, 0x7b, 0xfe, 0xab, 0x94, 0x09, 0x53, 0xd3, 0xf2, 0xe4, 0x0f, 0x19, 0x96}, Weight: 3000000 * TokenMult},
	// tstCUGzLUYcuuDVGgAzwi334fDhDS2asqHqcurDqhrS
	{Address: solana.PublicKey{0x0d, 0x4a, 0x27, 0x8f, 0xca, 0x49, 0x62, 0xdb, 0x99, 0x88, 0x81, 0x5e, 0xbe, 0x85, 0x2d, 0xd3, 0xe1, 0x24, 0x9e, 0xe5, 0x74, 0xf8, 0x3c, 0xfc, 0x93, 0xe7, 0x51, 0xbd, 0xa0, 0xd4, 0xc5, 0x33}, Weight: 3000000 * TokenMult},
	// tstD4uLc8NE7JYXgKdamx8f3JpC3usDLcbiyDpdbrxJ
	{Address: solana.PublicKey{0x0d, 0x4a, 0x27, 0x9c, 0xf0, 0xeb, 0xda, 0x1f, 0x1d, 0x14, 0xa4, 0xa3, 0x3e, 0xec, 0xa6, 0x63, 0x37, 0xc9, 0xe6, 0x35, 0xf0, 0xf1, 0xef, 0x89, 0xea, 0x8e, 0x30, 0xfa, 0x27, 0xba, 0x70, 0x5b}, Weight: 2400000 * TokenMult},
	// tstKY6DqH9u7uwVw2qa3pgfJNoKWm12e82JRuccBwvV
	{Address: solana.PublicKey{0x0d, 0x4a, 0x28, 0x2b, 0x6f, 0x1b, 0x1b, 0xbf, 0x7a, 0x08, 0xb7, 0x2a, 0x09, 0xd8, 0xde, 0x22, 0xf7, 0x0b, 0xda, 0x25, 0xff, 0x6d, 0x8b, 0x06, 0x2c, 0x89, 0x41, 0x37, 0x1c, 0xb4, 0x55, 0x56}, Weight: 2200000 * TokenMult},
	// tstnGPJyiQMUJqZxqvK4857xeWp7ZrczqZwsf4SB7R8
	{Address: solana.PublicKey{0x0d, 0x4a, 0x2a, 0x78, 0x38, 0xd7, 0x42, 0x92, 0x4c, 0x54, 0x5c, 0x37, 0x5b, 0xd1, 0x31, 0x77, 0xf7, 0x13, 0x14, 0x94, 0xa9, 0x94, 0x33, 0xc8, 0xf2, 0x5d, 0x43, 0xa6, 0xd2, 0xae, 0x49, 0xcf}, Weight: 2000000 * TokenMult},
	// tstPSu5sHGrZQraZ3Ef8MFmeSfKWxQSwQQviv7cYWwb
	{Address: solana.PublicKey{0x0d, 0x4a, 0x28, 0x81, 0x92, 0xda, 0x8b, 0x50, 0xe2, 0xc5, 0xaa, 0x68, 0x3c, 0x88, 0xb0, 0xfa, 0xc6, 0x45, 0x55, 0xbd, 0xa1, 0x8e, 0x0c, 0x74, 0xc9, 0xf4, 0xde, 0xde, 0xfd, 0xde, 0x9f, 0xfa}, Weight: 1440000 * TokenMult},
	// 11111111111111111111111111111111
	{Address: solana.PublicKey{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, Weight: 23197600 * TokenMult},
}
