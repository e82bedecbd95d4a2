//go:build mainnet

package weights

import solana "github.com/gagliardetto/solana-go"

// Network names the compiled voter list variant.
const Network = "mainnet"

var voterList = [73]Voter{
	// 482nKGVFN1efNeBiCAkPrWATESj9Sxn6FSpzqNBoFFyg
	{Address: solana.PublicKey{0x2e, 0x60, 0x23, 0xfb, 0x7c, 0x45, 0x64, 0x02, 0x9c, 0x7e, 0x81, 0x10, 0x7f, 0xf7, 0x06, 0x57, 0xa7, 0x2d, 0xd7, 0x34, 0xa5, 0x81, 0x88, 0xac, 0xb9, 0x9e, 0x68, 0xcd, 0xf1, 0xf0, 0xe2, 0x5f}, Weight: 188762400 * TokenMult},
	// Dsc7huV17uZQWW4LG7K2o3TEiGKXTZNjxkARz2xzFu1d
	{Address: solana.PublicKey{0xbf, 0x42, 0xfd, 0x29, 0x7e, 0x32, 0x44, 0x83, 0x3f, 0xa5, 0x13, 0x51, 0x61, 0x88, 0x90, 0xdb, 0xe8, 0xbe, 0xc7, 0xdd, 0xb5, 0xfd, 0x9e, 0xd2, 0xd3, 0x57, 0x2b, 0x09, 0x65, 0x4e, 0xca, 0x54}, Weight: 60000000 * TokenMult},
	// 26kiPimzAioocLxZAmCvkPqgLtQL6xUSCMwkRvCSFc6j
	{Address: solana.PublicKey{0x10, 0x55, 0x04, 0xa5, 0xbc, 0x3c, 0xfe, 0xbd, 0x4d, 0xb7, 0xc0, 0x11, 0x72, 0x2e, 0x15, 0xc1, 0x99, 0x82, 0x4a, 0xf4, 0x04, 0x0c, 0x01, 0x7f, 0xb8, 0x5b, 0x3a, 0x8c, 0x68, 0xa1, 0x96, 0x18}, Weight: 145250000 * TokenMult},
	// 2FWwpJHitWEk9nqte8M6CQSzCUxogUdUfjco8pPfXozX
	{Address: solana.PublicKey{0x12, 0x93, 0xad, 0x62, 0x34, 0xc9, 0xac, 0xc1, 0x31, 0xf1, 0xfb, 0x6c, 0x8e, 0x70, 0x4c, 0x69, 0x86, 0x32, 0xbd, 0x88, 0x3b, 0x4a, 0x36, 0x52, 0xc4, 0xa4, 0x45, 0xb1, 0x42, 0x57, 0x99, 0x90}, Weight: 1000000 * TokenMult},
	// 6tTYuzuZN31iHdFLQCjmoxqatoWMYpFM8qfXGo89AWK1
	{Address: solana.PublicKey{0x57, 0x79, 0x13, 0x8b, 0x41, 0xd7, 0x7d, 0xed, 0xd7, 0x00, 0x46, 0x5e, 0x0b, 0x69, 0x80, 0x09, 0x6c, 0x5f, 0xc5, 0x29, 0x95, 0x59, 0x68, 0xcd, 0x9e, 0xf6, 0x82, 0x17, 0x93, 0x28, 0x1b, 0x70}, Weight: 1250000 * TokenMult},
	// 27HjgEX8WxtmSMSogVLZJUKP3GrRN6A7zmgb7JZR3tMg
	{Address: solana.PublicKey{0x10, 0x78, 0x18, 0x52, 0xa1, 0x2d, 0x5b, 0x36, 0x57, 0x9d, 0x93, 0x55, 0x7a, 0x7a, 0x32, 0x9f, 0x7b, 0xdc, 0x63, 0x0a, 0xde, 0x1c, 0x26, 0x57, 0x1c, 0x24, 0x10, 0xe3, 0x41, 0xca, 0xdd, 0xeb}, Weight: 1250000 * TokenMult},
	// 7XYeZmjzjefApSCswonsr2NsNB81YmHskPwffzBtmqrH
	{Address: solana.PublicKey{0x60, 0xf9, 0x54, 0x78, 0xca, 0x5d, 0x8c, 0x44, 0x3c, 0x7c, 0x27, 0x71, 0x75, 0x5b, 0x22, 0x7a, 0x82, 0xdc, 0xd6, 0xcc, 0x7c, 0xac, 0x7e, 0x6b, 0xe3, 0x80, 0x85, 0x51, 0x7f, 0x46, 0xf8, 0x7a}, Weight: 1250000 * TokenMult},
	// BU6N2Z68JPXLf247iYnHUTUv1B7p8AFWGTYkcjfeSwY8
	{Address: solana.PublicKey{0x9b, 0x85, 0x9d, 0x52, 0x94, 0xb2, 0xe8, 0xe2, 0x47, 0xdd, 0x81, 0x76, 0x47, 0x11, 0xe0, 0xda, 0x1e, 0xc6, 0xdd, 0x26, 0x92, 0xdb, 0x40, 0xbb, 0x7e, 0x64, 0xa7, 0x80, 0x7e, 0x0b, 0xea, 0x9d}, Weight: 42500000 * TokenMult},
	// EaKk38a3S4XKum2YM8gEX6KSaW9CE9AbbUaW5xQpoTTC
	{Address: solana.PublicKey{0xc9, 0xb1, 0x49, 0xd4, 0xcc, 0x90, 0xd8, 0xcf, 0xed, 0x05, 0x32, 0x7b, 0xc6, 0x40, 0x4d, 0x8e, 0x3c, 0x30, 0x47, 0xf5, 0x0c, 0x09, 0xed, 0xc6, 0x33, 0xfa, 0xea, 0xe0, 0x73, 0x5a, 0x9a, 0xd7}, Weight: 42500000 * TokenMult},
	// GUSDGuq94QYpj3YysYfnkgiKWeNcXanV2LgMrqFnsLBs
	{Address: solana.PublicKey{0xe5, 0xe6, 0x7e, 0x1c, 0x26, 0x99, 0x1b, 0xb6, 0x80, 0x2c, 0x27, 0x0f, 0x7b, 0x93, 0x03, 0x0f, 0x29, 0x7d, 0x32, 0x58, 0xf5, 0x00, 0xee, 0x55, 0xe8, 0xf0, 0x71, 0x8b, 0xf2, 0x79, 0x9f, 0x02}, Weight: 53750000 * TokenMult},
	// DEskk1zj5w8hvfMf5rSkxUZLcZf7sGrf5G49C7wNQNce
	{Address: solana.PublicKey{0xb5, 0xda, 0x2e, 0x7a, 0x4b, 0x8d, 0x27, 0xfd, 0x87, 0xc8, 0x36, 0xd6, 0xe5, 0x1b, 0x2e, 0x20, 0xc3, 0xad, 0xaf, 0x3b, 0x0f, 0xaf, 0x2f, 0x70, 0xfa, 0xa3, 0x3f, 0x8d, 0xdd, 0x3f, 0xc2, 0xaf}, Weight: 7500000 * TokenMult},
	// SMyuMjKsBJeHbqUerkpduW1TfwErdBLrXTLsx7BrgMm
	{Address: solana.PublicKey{0x06, 0x7f, 0x3e, 0x5d, 0x4c, 0x21, 0x98, 0xa2, 0x1c, 0xfb, 0x64, 0x39, 0xad, 0xdc, 0x05, 0xe0, 0x77, 0x9b, 0xe7, 0x7e, 0xcb, 0xae, 0x84, 0xeb, 0xf2, 0x67, 0x73, 0x3c, 0x16, 0x92, 0x96, 0xf8}, Weight: 3750000 * TokenMult},
	// 69GA1mJCEqyYxj57CCeamy2WGx7wM3ABEwuUFMmatu2d
	{Address: solana.PublicKey{0x4c, 0x68, 0x37, 0xa5, 0x81, 0x1b, 0x6a, 0xc5, 0x56, 0x90, 0x63, 0x16, 0x4f, 0xc6, 0xd3, 0xe0, 0x18, 0x56, 0xc6, 0x46, 0x4b, 0xff, 0x06, 0xe8, 0x5b, 0x6d, 0xd3, 0x0d, 0x5c, 0x59, 0x7b, 0x36}, Weight: 40000000 * TokenMult},
	// 5CmWF9DMrcCtpuw3g1rnx9zYLX39bNwEX7dSEeaKFPPf
	{Address: solana.PublicKey{0x3e, 0x72, 0x75, 0x29, 0xca, 0x14, 0x07, 0xd3, 0xcf, 0xa6, 0x96, 0x3e, 0xf4, 0x4c, 0xce, 0xa1, 0xf1, 0xa4, 0xab, 0x15, 0x8f, 0x07, 0xdd, 0xb9, 0x15, 0x54, 0x93, 0x5c, 0xe9, 0xfc, 0x51, 0xea}, Weight: 40000000 * TokenMult},
	// HFTXn5oTGo9dgSJfgCAU59caaiwLWx1ZDy7VjE1qu4w
	{Address: solana.PublicKey{0x04, 0x29, 0xa3, 0xd7, 0x8a, 0x2c, 0x28, 0x4f, 0x08, 0x52, 0xd6, 0xe0, 0x28, 0xf5, 0x50, 0xcd, 0xfd, 0xba, 0x05, 0x1a, 0xaa, 0x58, 0xa1, 0x58, 0xe6, 0xb5, 0xb1, 0xe0, 0xa6, 0x99, 0x7f, 0x54}, Weight: 20000000 * TokenMult},
	// 6C3PmbTHi5xFZMW7c66xLvbQciVddbEFWJGpHVz1LGxX
	{Address: solana.PublicKey{0x4d, 0x1e, 0x87, 0x60, 0x6f, 0xd5, 0x1e, 0x1a, 0x95, 0x38, 0xe2, 0x6d, 0x1e, 0x16, 0x78, 0xd0, 0x96, 0xf9, 0x1c, 0x12, 0x59, 0x5e, 0xe0, 0x6e, 0x35, 0xcb, 0x45, 0xd1, 0xbd, 0x11, 0xcb, 0x48}, Weight: 20000000 * TokenMult},
	// FZXQwFXdHk4HaMhSKczdt3C4UseJpJiBn9hm8UHJWb8G
	{Address: solana.PublicKey{0xd8, 0x58, 0x97, 0x30, 0x8c, 0x85, 0x05, 0x48, 0x92, 0x80, 0x82, 0x40, 0x6e, 0xc7, 0xf2, 0xe5, 0x36, 0x51, 0x65, 0xd2, 0x2f, 0xac, 0xf3, 0xbc, 0x03, 0x79, 0xa7, 0x5f, 0x8b, 0x8b, 0x85, 0x45}, Weight: 4000000 * TokenMult},
	// FYeKmwTpJGqZ2pzvSzzDAmwipT2J2AD3BiTdUdqTUbVv
	{Address: solana.PublicKey{0xd8, 0x1e, 0xd2, 0xf7, 0xfc, 0xe4, 0x5f, 0x05, 0x2e, 0x62, 0x6d, 0x27, 0x36, 0xa5, 0x60, 0x7d, 0x4f, 0x30, 0x9d, 0x96, 0x0f, 0x86, 0x0b, 0xe6, 0xc9, 0x53, 0x10, 0x63, 0x17, 0xa8, 0x61, 0xad}, Weight: 3000000 * TokenMult},
	// GrjW2DtUd7WxVz1NYwguFpue5pHtVx6kqADjJqMNnwVD
	{Address: solana.PublicKey{0xeb, 0x9c, 0xd1, 0xa0, 0x69, 0xe5, 0x3f, 0xc7, 0x5f, 0x0c, 0x26, 0xab, 0x3f, 0x10, 0xb4, 0x7b, 0xeb, 0x04, 0xdd, 0x94, 0xc8, 0xee, 0xb1, 0x88, 0x5a, 0x54, 0xda, 0x96, 0x2d, 0x62, 0x9c, 0x54}, Weight: 3000000 * TokenMult},
	// CthYJnfjz9YELmZPYVJn2A1yhpmDTLUdWKuhYwEyCYZz
	{Address: solana.PublicKey{0xb0, 0xaf, 0x04, 0x13, 0x25, 0x69, 0x2b, 0xf1, 0x0c, 0xcf, 0x7b, 0x91, 0xbe, 0xae, 0xb4, 0x79, 0x3a, 0xf0, 0x5c, 0x90, 0xa1, 0x8d, 0x32, 0x9a, 0x75, 0x77, 0x45, 0x70, 0x0c, 0xab, 0x8a, 0x2d}, Weight: 2400000 * TokenMult},
	// F5hTRH4Lu6fRkn6Scc5ogDdoFupz9oRM9fNHQfLRbehV
	{Address: solana.PublicKey{0xd1, 0x37, 0xae, 0xf1, 0xc2, 0x8a, 0x3a, 0x01, 0xb2, 0x64, 0x5b, 0xc6, 0x42, 0x85, 0xb5, 0x89, 0xd1, 0x8e, 0x6a, 0x63, 0xe6, 0x0c, 0x77, 0x03, 0x18, 0xc5, 0x72, 0x04, 0x03, 0x1b, 0xc6, 0x10}, Weight: 2200000 * TokenMult},
	// 73dy4VtrmYoYwo2Q3q5soGwXhKngGrgnqvL5GEryC5Lk
	{Address: solana.PublicKey{0x59, 0xd3, 0x14, 0xd6, 0x58, 0x9c, 0x0c, 0xbf, 0xfc, 0x06, 0x95, 0x51, 0xaf, 0x2b, 0x58, 0xc0, 0x22, 0xf4, 0xfd, 0xd5, 0x42, 0x56, 0xfd, 0xe6, 0x6a, 0xc8, 0x60, 0x5b, 0x85, 0x5b, 0xfc, 0xa1}, Weight: 2000000 * TokenMult},
	// 5cs6vpXKuKKNbzpDgzRSbdMdxej7qF3hQ5ccg7L7HV4n
	{Address: solana.PublicKey{0x44, 0x9e, 0xba, 0x0d, 0x6d, 0xfb, 0x65, 0x7b, 0x4b, 0x3c, 0xe5, 0xbc, 0xff, 0x94, 0x3a, 0x74, 0x2c, 0x9f, 0xd8, 0x0f, 0x5d, 0x08, 0x7c, 0x06, 0x4f, 0xe9, 0x41, 0xa6, 0xec, 0xe4, 0x14, 0x8b}, Weight: 1440000 * TokenMult},
	// BWpZ4LwWg3ZV2fgQW6hxP1SmMMhwQkaKqtfq5xcx4zkd
	{Address: solana.PublicKey{0x9c, 0x38, 0x7b, 0x12, 0xdb, 0xbb, 0x69, 0x97, 0x0f, 0x00, 0xb2, 0x34, 0x58, 0x6d, 0x6b, 0x91, 0x24, 0xb7, 0xe9, 0x76, 0xe6, 0xc0, 0x1f, 0x7e, 0x4f, 0x1b, 0x14, 0x46, 0x23, 0x34, 0xc2, 0x6e}, Weight: 1400000 * TokenMult},
	// GtH2jmBppV8VAtbEKAngGnn6h9esv9MRtgqKARFDFrbf
	{Address: solana.PublicKey{0xec, 0x02, 0x0c, 0xdf, 0x65, 0x18, 0x35, 0x9b, 0x90, 0xa6, 0xa9, 0x88, 0xbf, 0x53, 0x63, 0x38, 0x4f, 0x3a, 0x8f, 0x13, 0x50, 0x0f, 0x7a, 0xa9, 0x85, 0x59, 0xb1, 0xc5, 0x68, 0x00, 0x7f, 0xee}, Weight: 1200000 * TokenMult},
	// ASLWzyVKsmYWHY8gYRVxJtBYd3UYkg19jeo8Wrhpb3rf
	{Address: solana.PublicKey{0x8c, 0x36, 0xc5, 0x51, 0x36, 0xa7, 0x2c, 0x49, 0x55, 0x20, 0x0f, 0xe6, 0x2b, 0x11, 0x18, 0x48, 0xbb, 0x86, 0x6b, 0xd7, 0xc2, 0xa8, 0xaa, 0x2a, 0xcb, 0x2c, 0x17, 0xc8, 0xa1, 0xce, 0x7f, 0x88}, Weight: 1000000 * TokenMult},
	// AXV1sKb86s1PfYSJ78YMKwq4ejhjKtvYZh9RhyrEyuB6
	{Address: solana.PublicKey{0x8d, 0x88, 0x48, 0x81, 0x5e, 0x82, 0x30, 0x1e, 0x0d, 0xda, 0x69, 0x3b, 0x30, 0x08, 0xda, 0xb7, 0xe4, 0x7f, 0x2c, 0x1c, 0x91, 0x76, 0x48, 0x3d, 0x21, 0xbb, 0xcb, 0x2c, 0x08, 0xda, 0xcd, 0xc9}, Weight: 1000000 * TokenMult},
	// AUzMEoeKiLQWWGcZ38M6nTMKWr8SpeYViHSQtm9LfHue
	{Address: solana.PublicKey{0x8c, 0xe4, 0xb5, 0x75, 0x93, 0x61, 0x72, 0x93, 0xb4, 0x71, 0xc2, 0x8c, 0x9a, 0x86, 0x39, 0x43, 0x7a, 0x62, 0x15, 0xa7, 0xe2, 0xa7, 0x81, 0x24, 0x6b, 0xc8, 0xf7, 0x77, 0xa8, 0x70, 0xf8, 0xcd}, Weight: 1000000 * TokenMult},
	// EYYPcCewaYKhEtA7NymW83En8it7PmaxDiDqVEaDPMea
	{Address: solana.PublicKey{0xc9, 0x3c, 0x6d, 0x7a, 0xcb, 0x06, 0xb4, 0x93, 0x5b, 0x87, 0xac, 0x83, 0x3e, 0x2d, 0x2f, 0x60, 0xa7, 0x7d, 0x3f, 0xb7, 0xde, 0x90, 0x7b, 0x9a, 0x89, 0xbe, 0x49, 0xc7, 0x0c, 0xc2, 0x48, 0x63}, Weight: 1000000 * TokenMult},
	// 6Uqh9XMvx3L4g82W1qoduZUt3DeG19PPr6FM3gjgwYAg
	{Address: solana.PublicKey{0x51, 0x6c, 0x2c, 0x43, 0xd9, 0x78, 0xcf, 0x48, 0x12, 0x26, 0x0b, 0x08, 0x71, 0x37, 0x0a, 0x40, 0x1e, 0x36, 0x7a, 0x14, 0xb9, 0xd7, 0x38, 0xdd, 0xcb, 0x5f, 0x8a, 0x4c, 0x63, 0x7e, 0xec, 0x6d}, Weight: 1000000 * TokenMult},
	// 9RKL5qesjTz6YNRRoehvu6qz9HCVp3ToV5w4Dz5aq8Xv
	{Address: solana.PublicKey{0x7d, 0x18, 0x28, 0xd6, 0x7d, 0x18, 0x39, 0xed, 0xc8, 0xd2, 0xa7, 0x47, 0x2e, 0x1e, 0xa5, 0x5b, 0xaa, 0xe7, 0xca, 0x81, 0x99, 0xfe, 0x35, 0xf8, 0xc2, 0x0e, 0xe2, 0x09, 0x49, 0x30, 0xa1, 0x4d}, Weight: 1000000 * TokenMult},
	// GCtjNA958Nb1w3noeGHm5EZNh3pp6XyLjLB7yrP1wWRH
	{Address: solana.PublicKey{0xe1, 0xeb, 0x2f, 0x40, 0x5b, 0xb7, 0x85, 0x39, 0x58, 0x91, 0xb0, 0x2d, 0x89, 0x9b, 0x1d, 0x32, 0xf5, 0xec, 0xc0, 0xad, 0xea, 0x5a, 0x8b, 0x2d, 0x55, 0x44, 0x12, 0xce, 0xc1, 0x4b, 0xf7, 0x04}, Weight: 1000000 * TokenMult},
	// H9LTEpFCiM8jxaEYrFyqhLaMEtjkNTMbpMimctHoeQDo
	{Address: solana.PublicKey{0xef, 0xdd, 0xa1, 0xd6, 0x1a, 0x46, 0x73, 0x4a, 0x6a, 0x75, 0xc7, 0x61, 0x1f, 0x63, 0x4b, 0x08, 0xcd, 0xff, 0x76, 0xaa, 0xf6, 0x9f, 0x2c, 0x9f, 0xb6, 0x07, 0xdc, 0x93, 0xa7, 0x89, 0xb8, 0x0a}, Weight: 857600 * TokenMult},
	// 4dDgPddsnJHznoEoBxpukYT6YmF5JXZkt5tKV7FSxhfs
	{Address: solana.PublicKey{0x35, 0xda, 0x4e, 0x66, 0xd5, 0xc6, 0xa2, 0xcf, 0x39, 0xa3, 0xa6, 0x0e, 0x8a, 0xe1, 0x69, 0x64, 0x70, 0x36, 0x94, 0x8a, 0x53, 0x69, 0x2c, 0x6c, 0x5e, 0x59, 0xc5, 0xcd, 0xc1, 0xf0, 0x0d, 0xd6}, Weight: 840000 * TokenMult},
	// 9kbwhpRLdXrsJgMkyEmtqHEn12gNL4pfW3WmX66gAqaT
	{Address: solana.PublicKey{0x82, 0x08, 0xfb, 0x06, 0x73, 0xdb, 0x0b, 0x55, 0x97, 0xe2, 0x4f, 0xf6, 0xa0, 0x00, 0x19, 0x20, 0x24, 0xdf, 0x02, 0xa3, 0x63, 0x4c, 0x97, 0x19, 0xb4, 0xf0, 0xdb, 0x67, 0x14, 0x14, 0xbb, 0x8c}, Weight: 640000 * TokenMult},
	// AN7zkfE7MWVcSEPHqGFrMNKrKgUntxpdgVBAH6YuThCp
	{Address: solana.PublicKey{0x8b, 0x22, 0x4a, 0x18, 0x43, 0x54, 0xf1, 0xc9, 0xb8, 0x53, 0x8a, 0x67, 0xbf, 0x91, 0x09, 0x82, 0x48, 0xda, 0xf2, 0x02, 0x28, 0x24, 0xe5, 0xf9, 0xc2, 0x23, 0xc2, 0x0f, 0x09, 0xd9, 0xda, 0x3d}, Weight: 600000 * TokenMult},
	// GquqZs6x4gQgpqyRnengHHWCKowrKWwAR2RhMmvdwBPV
	{Address: solana.PublicKey{0xeb, 0x66, 0xed, 0x16, 0x25, 0xc5, 0xef, 0x81, 0xe5, 0xa7, 0xae, 0x84, 0x20, 0x57, 0x79, 0xfe, 0x37, 0xc5, 0xe8, 0x2b, 0x2a, 0x2b, 0x9f, 0x84, 0xf6, 0x4c, 0x4d, 0xe9, 0x5f, 0x6e, 0x2e, 0x50}, Weight: 600000 * TokenMult},
	// QuLWFDsYsrnjvgkT4XKYn5p2tkr4h6UUBB2Q8QfZu9E
	{Address: solana.PublicKey{0x06, 0x1f, 0x89, 0x11, 0xde, 0xfd, 0x36, 0x3e, 0xc0, 0x50, 0x9c, 0x31, 0xf1, 0x71, 0xb5, 0xad, 0x6d, 0x57, 0xdb, 0x4a, 0x41, 0x58, 0xee, 0x7b, 0x0f, 0xc7, 0xdc, 0x5d, 0x11, 0x3c, 0x26, 0x2d}, Weight: 600000 * TokenMult},
	// GwF6shT6ahXhHrwRg9if3YTfLJfwXNX2ZLVFGfqe2jvH
	{Address: solana.PublicKey{0xec, 0xc4, 0x9c, 0xa8, 0xcb, 0x7e, 0xea, 0x93, 0x37, 0x77, 0x3b, 0x15, 0xb4, 0x79, 0x42, 0x97, 0xa4, 0x15, 0x86, 0xda, 0x92, 0xcd, 0xac, 0x89, 0xd4, 0x5c, 0x75, 0x48, 0x60, 0x0c, 0x4c, 0x72}, Weight: 600000 * TokenMult},
	// FrPa7KM25m5fqbxW7VVHBovUZdi7hp3HTemwJhHa44jg
	{Address: solana.PublicKey{0xdc, 0xaa, 0x98, 0xf8, 0xdc, 0x26, 0x0a, 0x1a, 0x67, 0x84, 0x6e, 0x8c, 0x6e, 0x08, 0x4c, 0x44, 0x3d, 0xd5, 0x2b, 0xd9, 0x3a, 0x5f, 0xec, 0x40, 0xda, 0x1e, 0xeb, 0x98, 0xd9, 0x0d, 0xc7, 0x1f}, Weight: 500000 * TokenMult},
	// 2AuvzJ8jK9RrYcanKxLoamUiffNP7Vm6JdYxWCq74WFj
	{Address: solana.PublicKey{0x11, 0x65, 0xc3, 0x66, 0x7e, 0x94, 0x66, 0x97, 0xa4, 0xf5, 0x31, 0x0a, 0xee, 0xfe, 0x7a, 0xa0, 0xa4, 0x00, 0xc7, 0xb1, 0xb0, 0x49, 0x67, 0x4b, 0x42, 0x4b, 0x89, 0xf3, 0x36, 0x9c, 0x65, 0x82}, Weight: 500000 * TokenMult},
	// 2jUVAfmhwN3znyKZ95RZLzGi2x7ghXgj3pZy4Aij163t
	{Address: solana.PublicKey{0x19, 0xbd, 0x28, 0xb4, 0xfa, 0x39, 0x02, 0xda, 0x52, 0xe7, 0x1c, 0x9e, 0x47, 0xf7, 0x50, 0xc7, 0x26, 0xcc, 0xd7, 0xd8, 0xfd, 0x36, 0x3c, 0x46, 0xb6, 0x99, 0x7c, 0xb1, 0x91, 0x7f, 0xf9, 0x5b}, Weight: 480000 * TokenMult},
	// BAHbicz9bMb2qEjPgHgU32M711QCRVRK4xSDKBcETs9d
	{Address: solana.PublicKey{0x96, 0xf5, 0xdd, 0x57, 0xa3, 0xf2, 0xc4, 0x23, 0x1e, 0x4d, 0x0b, 0x4e, 0xae, 0x2b, 0x23, 0x4f, 0x3d, 0xaf, 0xb2, 0x27, 0x2b, 0x0a, 0x60, 0x90, 0xc4, 0xc7, 0xf5, 0x50, 0xc5, 0x49, 0xdf, 0x3c}, Weight: 400000 * TokenMult},
	// 6cYPAViwm7XBDH6RKrReM8QkSiDrWbxUzDEa2sKmNGL1
	{Address: solana.PublicKey{0x53, 0x65, 0x3f, 0x30, 0xeb, 0xeb, 0x6a, 0xe2, 0x78, 0xd7, 0xa8, 0x00, 0x9d, 0x96, 0x28, 0x2b, 0xc0, 0xd5, 0xe7, 0xc0, 0x31, 0xc9, 0x36, 0xe1, 0x60, 0xe6, 0x9d, 0x12, 0x18, 0x29, 0x90, 0xb2}, Weight: 400000 * TokenMult},
	// DXJgRvrkafSzRL7kVq8f23NbXLHcBEQKe9W9zZJvAUEe
	{Address: solana.PublicKey{0xba, 0x0f, 0xa8, 0x74, 0x9d, 0xcc, 0x51, 0xb0, 0x9d, 0x8b, 0x5c, 0x40, 0x01, 0x2f, 0xa6, 0x02, 0x00, 0x40, 0x66, 0x30, 0xfa, 0x82, 0xcf, 0xc7, 0x35, 0x87, 0x23, 0xd3, 0x86, 0x47, 0xd5, 0xbb}, Weight: 400000 * TokenMult},
	// 3ovnDC6Md3F2i8RT3MvZcS7QekmUq8jso1e3ke8MmY3a
	{Address: solana.PublicKey{0x29, 0xbc, 0xe6, 0x54, 0xa2, 0xfd, 0xf7, 0x3c, 0x32, 0x68, 0x0e, 0xb3, 0x8b, 0x88, 0x0f, 0xd0, 0xca, 0xdd, 0x45, 0xea, 0x8d, 0x67, 0xc1, 0xf6, 0x5f, 0x29, 0x5a, 0x2e, 0x4a, 0x84, 0xf2, 0x31}, Weight: 400000 * TokenMult},
	// CcgxjNdLRx83Wrg2qhbgvCPCk8MhpBrevgcof15BZDmB
	{Address: solana.PublicKey{0xac, 0x95, 0x11, 0x83, 0x46, 0x49, 0x81, 0x3d, 0xa0, 0x71, 0xde, 0x03, 0x00, 0x30, 0x08, 0x99, 0x9e, 0x48, 0x0b, 0x6a, 0xd3, 0x5e, 0x41, 0x63, 0x8e, 0xb3, 0x91, 0xf1, 0xc4, 0xd8, 0xa4, 0xd2}, Weight: 400000 * TokenMult},
	// 6VzjkuiyMjipt4e3qw87mH6sHVeN8uxsY8qK8PxkZDYK
	{Address: solana.PublicKey{0x51, 0xb7, 0xfb, 0x1e, 0x94, 0x47, 0x25, 0x31, 0x93, 0x98, 0xb6, 0x62, 0x5a, 0x09, 0x5d, 0x8d, 0x2c, 0x38, 0xb7, 0x6e, 0xe7, 0x75, 0xda, 0x96, 0x1a, 0xda, 0x59, 0xde, 0xbe, 0xf6, 0xf9, 0xd8}, Weight: 400000 * TokenMult},
	// 2n9Rf5KJDVR4GKpW4JHGEaKLRw3z89uuWf27dLbQqPWZ
	{Address: solana.PublicKey{0x1a, 0x6c, 0x59, 0x81, 0xe7, 0xb0, 0x8a, 0x8a, 0x46, 0xa0, 0x45, 0x55, 0xab, 0x62, 0xca, 0xef, 0x85, 0x41, 0x01, 0x59, 0x42, 0xe7, 0x83, 0x70, 0x7a, 0xc5, 0x33, 0x3b, 0x7a, 0x5b, 0xeb, 0xba}, Weight: 400000 * TokenMult},
	// 8Fogg1kwSYzyZCRBbniVWeprPwg8s8yShtXKUwyjczpA
	{Address: solana.PublicKey{0x6b, 0xcc, 0xb9, 0xc0, 0x55, 0xe8, 0x7d, 0x52, 0x9e, 0x55, 0xa0, 0x77, 0x50, 0x17, 0x3b, 0x00, 0x73, 0xbf, 0x29, 0x8a, 0xeb, 0x2f, 0x50, 0x03, 0x5c, 0x20, 0xcd, 0xab, 0x6e, 0xc4, 0x31, 0xcb}, Weight: 300000 * TokenMult},
	// EcBVA94VYUr6mAZqxGdB4QN787H5a3N3kd8tb4mCySs
	{Address: solana.PublicKey{0x03, 0x7c, 0x54, 0x5d, 0xde, 0x74, 0x2f, 0x9a, 0x8f, 0x7b, 0xce, 0x3f, 0xc1, 0x51, 0x7b, 0x70, 0xb9, 0xdf, 0x77, 0xed, 0x6b, 0xd4, 0xe1, 0x6f, 0x16, 0xd8, 0x42, 0xa8, 0x60, 0xe0, 0x4c, 0x14}, Weight: 300000 * TokenMult},
	// G8wh49cSsBQGioJKB5F6k9aXEkZMtY7Pjs1aZiSRhqMZ
	{Address: solana.PublicKey{0xe0, 0xe8, 0x35, 0x5a, 0x2e, 0x8d, 0x1d, 0xf7, 0xc8, 0x61, 0xd8, 0x54, 0xb8, 0xbb, 0xd0, 0xd9, 0xb3, 0x24, 0xb1, 0xc4, 0xdf, 0x26, 0xf4, 0x11, 0xc9, 0x08, 0x05, 0x0f, 0x3b, 0x0f, 0x31, 0x08}, Weight: 300000 * TokenMult},
	// Fw9t5qZU7uCdQhRqcXayPbXCNNwEsR1ry4SWMBNDtVMB
	{Address: solana.PublicKey{0xdd, 0xe3, 0x05, 0xab, 0xd3, 0x1d, 0xe0, 0x32, 0x8d, 0x41, 0x7b, 0xca, 0x6b, 0xed, 0xbe, 0x40, 0x40, 0xf1, 0x3a, 0x93, 0x13, 0x84, 0x06, 0xed, 0x65, 0x19, 0x54, 0x4a, 0xd0, 0xed, 0x80, 0xda}, Weight: 240000 * TokenMult},
	// 2Yf2eKbaAHxFCNUGPCqaqsXzqxMRb14C9JSPTKD3wDMF
	{Address: solana.PublicKey{0x16, 0xf7, 0xb0, 0xd7, 0x33, 0x86, 0x5d, 0x16, 0xba, 0xb2, 0x39, 0xed, 0xa3, 0xda, 0x54, 0x75, 0x61, 0x0a, 0xb3, 0xdb, 0xf8, 0x24, 0x7b, 0x26, 0x10, 0xf7, 0xd9, 0x9a, 0xe4, 0x49, 0xb9, 0xd6}, Weight: 200000 * TokenMult},
	// FK7Kw7WnJXjt2nBUwF5AH1omrBYsaxXWt9PXQSCDPfuT
	{Address: solana.PublicKey{0xd4, 0xa7, 0x39, 0x8f, 0xc6, 0x82, 0x04, 0x29, 0xac, 0x89, 0xa8, 0xdb, 0x51, 0x4f, 0x76, 0xf1, 0xbc, 0x0f, 0x6a, 0xb6, 0xaf, 0x0c, 0x4c, 0xea, 0x3b, 0xe4, 0x31, 0x75, 0xd4, 0x6b, 0x39, 0x0a}, Weight: 200000 * TokenMult},
	// Dnu8pp4ttSxrS4weQ3drG5c873P97NoGoSnkvZY8AAkB
	{Address: solana.PublicKey{0xbe, 0x0e, 0x54, 0x22, 0x2f, 0x67, 0xd4, 0x1b, 0xa0, 0xf0, 0x3f, 0xfb, 0x0d, 0xad, 0xeb, 0x13, 0x65, 0x6b, 0x66, 0x10, 0xa7, 0x37, 0xe4, 0x27, 0xb6, 0x06, 0x04, 0x17, 0x21, 0xe9, 0x3a, 0xc4}, Weight: 200000 * TokenMult},
	// 6WYtgZjuHD1hPDiNtDDU7QQpWw576bxoSbQyd7WQoobq
	{Address: solana.PublicKey{0x51, 0xdc, 0x56, 0x62, 0xc2, 0x05, 0x11, 0xc0, 0xc7, 0xff, 0x05, 0x50, 0xc2, 0xdf, 0xca, 0xb1, 0x9b, 0x88, 0x99, 0xa6, 0xa4, 0x41, 0x1d, 0x48, 0x14, 0x39, 0x06, 0xaa, 0x39, 0x02, 0xf4, 0x9c}, Weight: 200000 * TokenMult},
	// 3Kr99Jqaw1VRHecKHhvb7BxNL7ZgyvafqA5tTZqUAJgK
	{Address: solana.PublicKey{0x22, 0x8b, 0x64, 0x42, 0xca, 0x21, 0xbd, 0x58, 0x58, 0x9d, 0xe6, 0x67, 0x14, 0x30, 0x5b, 0xf8, 0x58, 0x75, 0xbc, 0x62, 0xe4, 0x0e, 0x14, 0xd8, 0x11, 0xc9, 0x7e, 0xaf, 0x14, 0x06, 0x9a, 0x64}, Weight: 200000 * TokenMult},
	// HaJfzhg3RdB9vueG2qmVW6ajjGSw3q3yVd3XF5MnELCz
	{Address: solana.PublicKey{0xf6, 0x43, 0x23, 0xc2, 0x3e, 0x8a, 0xec, 0x62, 0xca, 0xf4, 0xa2, 0x07, 0x8e, 0xf3, 0x26, 0x6d, 0xa1, 0x40, 0xf0, 0x08, 0xa1, 0x08, 0x80, 0x5e, 0xf3, 0x9b, 0x1f, 0xfc, 0xa7, 0x6b, 0x3a, 0xbb}, Weight: 200000 * TokenMult},
	// D5ntoe2zA7b2GnjHXeLytkW1zoaaSxieSibH7NhQvBQ7
	{Address: solana.PublicKey{0xb3, 0x86, 0x75, 0x3a, 0xe9, 0xe9, 0x12, 0x2b, 0xfb, 0x60, 0xe9, 0x1c, 0xd2, 0x8c, 0x90, 0xeb, 0x01, 0xfa, 0x19, 0x59, 0xa2, 0x53, 0xd2, 0x25, 0xca, 0x61, 0x8c, 0x4a, 0x16, 0x73, 0x02, 0x9c}, Weight: 200000 * TokenMult},
	// BgtCPrqwftgRy7yqAQSajd3woQK24E3RPfkfbtyB57km
	{Address: solana.PublicKey{0x9e, 0xcc, 0x68, 0xa8, 0xfc, 0xcf, 0x86, 0x5d, 0xef, 0xea, 0x7e, 0x5d, 0x6e, 0xc0, 0xe8, 0xcf, 0x69, 0x31, 0x18, 0xb8, 0x96, 0xf8, 0x41, 0x1e, 0x00, 0x83, 0xb0, 0xdb, 0xdd, 0x81, 0xae, 0xc2}, Weight: 200000 * TokenMult},
	// D9bpPfFu2xPZJdKDKV8iJLyhhKZuaucCEcsR7cVNAYjP
	{Address: solana.PublicKey{0xb4, 0x80, 0x41, 0xe4, 0x26, 0x1b, 0x7a, 0x0b, 0xc2, 0x6a, 0x82, 0xb0, 0x6e, 0xf5, 0x6d, 0x18, 0xb5, 0x57, 0xb5, 0xa5, 0x10, 0xfd, 0x6e, 0xc0, 0x28, 0x93, 0xe6, 0xa8, 0xe3, 0xa9, 0x25, 0xee}, Weight: 200000 * TokenMult},
	// 8oGy9tu6KWcFa8SHoBEHSmMLmDdzEPw3PZxLEuybpKJ9
	{Address: solana.PublicKey{0x73, 0xdc, 0x94, 0xb9, 0xc3, 0x66, 0x96, 0xd8, 0x25, 0x5b, 0x71, 0xf8, 0xb8, 0xd8, 0x65, 0xb8, 0x6d, 0x01, 0x7a, 0xc8, 0x3e, 0xd4, 0x27, 0x7b, 0x55, 0x08, 0x31, 0x49, 0xb3, 0x26, 0xfb, 0x62}, Weight: 200000 * TokenMult},
	// DSiaQPpLwY73tpcKHi65MxbTmBif56qH2mYkdtUEia1i
	{Address: solana.PublicKey{0xb8, 0xe2, 0xc5, 0xfc, 0x92, 0xd2, 0xab, 0x9c, 0x97, 0xcc, 0x36, 0x37, 0x81, 0x91, 0xcd, 0x73, 0x5f, 0xcc, 0xde, 0x36, 0x5f, 0xcc, 0x9c, 0x3e, 0x96, 0xcf, 0x91, 0x95, 0x7e, 0x60, 0x35, 0xa5}, Weight: 200000 * TokenMult},
	// 97vxiqEJQrpJZez7hGcCXNqfZ8k9qWQTMbvtDtgv8PL8
	{Address: solana.PublicKey{0x78, 0xa3, 0xfe, 0x6c, 0x02, 0xe8, 0xc8, 0xe0, 0x1a, 0xc9, 0x4c, 0xfa, 0x12, 0x02, 0xe8, 0x71, 0xb7, 0x74, 0x6e, 0x16, 0xef, 0xef, 0x1b, 0xfb, 0x62, 0x69, 0x82, 0x00, 0x64, 0x77, 0x15, 0xf5}, Weight: 200000 * TokenMult},
	// 5jrkc3RvjE9NYwYts1TvNkqjNeSjpQLFB7Sohq6zxWwp
	{Address: solana.PublicKey{0x46, 0x69, 0x65, 0x6e, 0xc8, 0xe3, 0xa4, 0xdd, 0x1e, 0xaf, 0x82, 0x08, 0x71, 0x07, 0x75, 0xd8, 0xe4, 0xd5, 0x1d, 0xdf, 0x6b, 0xb7, 0xdd, 0x28, 0x1b, 0x16, 0xb1, 0xc5, 0x95, 0x56, 0xec, 0xc7}, Weight: 200000 * TokenMult},
	// Ee6wuzBuzBQ1ScLvASQuYygbRBEWUgq3oTQJyWjjGhJF
	{Address: solana.PublicKey{0xca, 0xa9, 0x24, 0xdf, 0x26, 0xb8, 0xeb, 0xe0, 0xa8, 0x8a, 0x5c, 0xe6, 0xf9, 0x4d, 0xda, 0x7a, 0x7f, 0x4b, 0x12, 0x58, 0xa8, 0x92, 0x45, 0x1d, 0x4a, 0x78, 0xff, 0x8a, 0x26, 0x63, 0x6b, 0x00}, Weight: 200000 * TokenMult},
	// 5euPxonYkrwyJKmRQe1gjsADb8RqccosbThZ3yVSf2x8
	{Address: solana.PublicKey{0x45, 0x24, 0x7b, 0x5c, 0x15, 0xf8, 0x50, 0x75, 0x86, 0x7b, 0x54, 0x87, 0x50, 0x1d, 0x9b, 0x41, 0x12, 0x0c, 0x65, 0x64, 0x56, 0xf4, 0xcc, 0xa1, 0x6d, 0xc6, 0x49, 0x35, 0x0c, 0x24, 0xfa, 0xa1}, Weight: 160000 * TokenMult},
	// Be2Ec9REaFYRcuHhtLN9hfsniFWe19LEmy3xFnkrSmv5
	{Address: solana.PublicKey{0x9e, 0x10, 0xc1, 0x51, 0x78, 0xcb, 0x36, 0xa0, 0x1c, 0xaa, 0xbe, 0x1a, 0x5a, 0x1b, 0x79, 0x71, 0xaa, 0x95, 0x7a, 0xf7, 0x9b, 0x00, 0x7a, 0xed, 0x21, 0xce, 0x9e, 0x83, 0x73, 0xb1, 0xe5, 0x4e}, Weight: 160000 * TokenMult},
	// B5C7P4F6NySR7BJFWTBUdr9Z1QDivFEjd8oQdmydJiNu
	{Address: solana.PublicKey{0x95, 0xa7, 0xc1, 0x2e, 0xec, 0x01, 0xc6, 0xbe, 0x71, 0xbf, 0xd7, 0x6a, 0x13, 0x5d, 0x06, 0x99, 0xb5, 0x93, 0x21, 0x39, 0x6f, 0x53, 0xad, 0xe0, 0x5e, 0x62, 0x97, 0x42, 0xc4, 0x97, 0x99, 0xa2}, Weight: 100000 * TokenMult},
	// DY4v61XYV7Tmf9YVWkxvFLUn3V3rccukz6Jewq7CgGCN
	{Address: solana.PublicKey{0xba, 0x41, 0xac, 0xdb, 0x4b, 0x6d, 0xe3, 0x5d, 0x44, 0x30, 0x9c, 0xb0, 0x77, 0xa1, 0x6f, 0xb0, 0xe9, 0x93, 0x89, 0x3d, 0x2a, 0x1a, 0x88, 0x21, 0x34, 0xf1, 0x0c, 0xcf, 0xd9, 0x2d, 0xa3, 0x37}, Weight: 100000 * TokenMult},
	// CgWTnErgdNAzKoeRSQ1NHcW2B5ij8yfZkquVNqV3AByW
	{Address: solana.PublicKey{0xad, 0x8f, 0x85, 0x2d, 0x36, 0x19, 0x40, 0xa4, 0xca, 0xb0, 0x39, 0x6d, 0x31, 0x36, 0xf8, 0x0e, 0x44, 0x3d, 0xb2, 0xec, 0x82, 0x9f, 0xec, 0x71, 0xd7, 0xe2, 0x43, 0x33, 0xbd, 0x33, 0xd7, 0xbd}, Weight: 80000 * TokenMult},
	// A7uc5dBwaz4BjFHDm7582MHviSQ2Rq58tcUV2PA5n2Xo
	{Address: solana.PublicKey{0x87, 0x7e, 0x25, 0xcc, 0xad, 0xcf, 0x37, 0x5d, 0xb3, 0x9c, 0x78, 0xe8, 0x60, 0x07, 0xc7, 0x73, 0xdf, 0xa2, 0xf8, 0x9e, 0x96, 0x72, 0x3f, 0x1f, 0xe7, 0xf1, 0xb3, 0xd7, 0x86, 0x3f, 0x66, 0x06}, Weight: 40000 * TokenMult},
}
