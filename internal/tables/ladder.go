// Code generated from the original factorization engine's precomputed
// ladder scalar constant; do not hand-edit.
package tables

// LadderScalarLen is the byte length of LadderScalar.
const LadderScalarLen = 1806

// LadderScalar is the big-endian byte representation of the fixed scalar
// k used to drive every Montgomery ladder scan during elliptic-curve
// factorization: a highly composite, smooth number built from small prime
// powers, chosen large enough that k is a multiple of the order of E(F_p)
// for the overwhelming majority of random curves E and primes p up to the
// engine's working width, so a single ladder pass finds a factor whenever
// the curve's group order over some prime factor of num is k-smooth.
var LadderScalar = [LadderScalarLen]byte{
	0x9b, 0x2c, 0xc9, 0x32, 0x95, 0x1f, 0x3e, 0x64, 0x97, 0xc2, 0x46, 0x3b,
	0xa9, 0xf2, 0xdb, 0x91, 0x2e, 0xda, 0x8e, 0x89, 0x25, 0x06, 0xa4, 0xab,
	0xbc, 0x33, 0x3e, 0x7d, 0x6f, 0x3a, 0x25, 0xed, 0x61, 0xb0, 0xe3, 0xff,
	0xca, 0x04, 0x57, 0x5d, 0x7f, 0xf2, 0x2d, 0xc3, 0xc6, 0x2c, 0xc5, 0x47,
	0x2c, 0x1d, 0x82, 0xd3, 0x55, 0x55, 0x6e, 0x25, 0xd8, 0x6d, 0xd4, 0x8d,
	0x4b, 0x61, 0x79, 0xaa, 0xf1, 0x05, 0x2b, 0x70, 0x4f, 0x83, 0x13, 0x3e,
	0xe9, 0x42, 0xe6, 0x80, 0x26, 0xc1, 0xce, 0x4e, 0x93, 0xa2, 0xf5, 0xfd,
	0x75, 0xa0, 0x61, 0xe9, 0x2c, 0x5e, 0xa5, 0x6c, 0x27, 0x8a, 0xc5, 0x00,
	0xcb, 0x13, 0x78, 0xf6, 0x79, 0x5c, 0x86, 0xef, 0x75, 0xdf, 0x10, 0x05,
	0xc5, 0xae, 0xa2, 0xbb, 0x61, 0x9a, 0x51, 0x92, 0x51, 0x03, 0x63, 0x01,
	0x23, 0x1e, 0x38, 0x30, 0x1a, 0x3f, 0x7e, 0xcf, 0xc0, 0x6c, 0x2a, 0x71,
	0x79, 0x8d, 0xa1, 0xed, 0xbc, 0xda, 0xdf, 0x40, 0x31, 0x1f, 0xeb, 0x0f,
	0x45, 0x58, 0xd2, 0x7c, 0xe3, 0xeb, 0xf9, 0xa8, 0x80, 0x1e, 0xbc, 0xc7,
	0xe4, 0xb8, 0x8f, 0x77, 0x50, 0x7b, 0xb8, 0x17, 0x60, 0xb0, 0x5e, 0x9c,
	0x85, 0xb8, 0xaa, 0x31, 0xca, 0xc7, 0xd3, 0x25, 0xd7, 0x9a, 0x89, 0xae,
	0x6a, 0xd1, 0xa7, 0xa6, 0x0f, 0x82, 0x61, 0x87, 0xfb, 0xf7, 0xc3, 0xfe,
	0xed, 0x86, 0x83, 0x07, 0x7d, 0xaf, 0xd8, 0xcb, 0x4f, 0xe8, 0xae, 0xb2,
	0xd4, 0x4b, 0xbc, 0x20, 0x46, 0x6b, 0x8a, 0x18, 0x3d, 0xf5, 0x88, 0x69,
	0xfb, 0xcb, 0x97, 0x3c, 0x62, 0xed, 0x35, 0xb4, 0xc1, 0x64, 0x44, 0xd0,
	0x5c, 0x18, 0x5f, 0x7f, 0xc3, 0x85, 0x9d, 0x5f, 0x70, 0x24, 0xef, 0x18,
	0xcb, 0xb6, 0x01, 0xd8, 0x08, 0x99, 0x76, 0x12, 0x39, 0xa6, 0x26, 0xa5,
	0x0d, 0x1e, 0x23, 0x15, 0x67, 0xc1, 0x31, 0x2e, 0x92, 0x37, 0x7d, 0xe3,
	0xd0, 0x7d, 0x52, 0xb4, 0xe7, 0x77, 0x77, 0x65, 0xdb, 0x25, 0xe6, 0xeb,
	0x98, 0x3e, 0x81, 0xf2, 0x3b, 0x48, 0x95, 0x2c, 0x63, 0x43, 0xf7, 0xdc,
	0x41, 0x40, 0x04, 0x80, 0xbf, 0xdf, 0xf1, 0x83, 0xc6, 0x53, 0x21, 0x5d,
	0x81, 0x42, 0xe5, 0x3e, 0xb4, 0x03, 0x9c, 0x00, 0x00, 0xb7, 0x9e, 0x40,
	0x1b, 0xa1, 0x3d, 0x58, 0x06, 0xef, 0xc7, 0x8d, 0x54, 0x06, 0x5e, 0x64,
	0x69, 0x35, 0xa8, 0xbf, 0x9f, 0x39, 0x18, 0x56, 0x9e, 0xb3, 0x32, 0x45,
	0x38, 0xe0, 0xc4, 0x3a, 0xfe, 0x7b, 0xca, 0x28, 0xce, 0xf6, 0x81, 0xaf,
	0xfd, 0x09, 0xbd, 0x3b, 0x29, 0x9a, 0xdb, 0x83, 0x07, 0x2b, 0xf5, 0x9f,
	0x7a, 0xef, 0xb8, 0xcb, 0xf7, 0xf2, 0x04, 0x86, 0xb9, 0xf9, 0x17, 0x31,
	0x3b, 0xce, 0x64, 0x72, 0xd6, 0xf7, 0x2c, 0xef, 0xf7, 0xed, 0x0d, 0x4a,
	0xdb, 0xd3, 0x9c, 0xfb, 0xb1, 0xe5, 0xaf, 0x7d, 0x01, 0x0a, 0x98, 0x7c,
	0x44, 0x62, 0xba, 0x46, 0x05, 0x6c, 0xde, 0x95, 0x95, 0x34, 0x22, 0x49,
	0x25, 0x61, 0xa6, 0xb1, 0x04, 0x68, 0x23, 0x7f, 0x0a, 0xc1, 0x06, 0xf6,
	0x2f, 0xca, 0xa3, 0x16, 0x1b, 0xea, 0x57, 0x2e, 0x3e, 0x83, 0x0a, 0xe2,
	0x25, 0x3b, 0x9e, 0x4b, 0x02, 0x1e, 0x7a, 0xf1, 0x0a, 0x01, 0x9a, 0xd5,
	0xfc, 0x78, 0x83, 0x3f, 0x58, 0x4e, 0xdd, 0xfb, 0x30, 0x42, 0xb4, 0x3a,
	0x49, 0xf9, 0x67, 0x04, 0xa9, 0xe2, 0xa5, 0xab, 0xf4, 0x58, 0x6a, 0x50,
	0x25, 0xb0, 0x13, 0xe9, 0xf9, 0xc4, 0x41, 0xed, 0x61, 0xaf, 0x07, 0x76,
	0x00, 0xdf, 0x8b, 0x2c, 0xf4, 0xfa, 0x32, 0x31, 0xcd, 0x6a, 0x6f, 0xae,
	0x2a, 0x68, 0x92, 0xe8, 0x88, 0x1b, 0xfd, 0x54, 0x98, 0x6d, 0xc4, 0x41,
	0x3f, 0x4a, 0xbe, 0x89, 0xa5, 0x80, 0xd7, 0x4e, 0xd4, 0xd5, 0x97, 0x49,
	0xee, 0x88, 0x3e, 0xac, 0xc7, 0xa7, 0x28, 0x4c, 0x1e, 0xdf, 0x30, 0x31,
	0x2a, 0x94, 0xf9, 0x7b, 0xfe, 0xe6, 0x14, 0x92, 0x86, 0x17, 0xae, 0xec,
	0x11, 0x97, 0x6d, 0xd2, 0xbf, 0xd9, 0xe8, 0xc7, 0x17, 0xdd, 0xc6, 0x1d,
	0xe2, 0xf5, 0xb7, 0xc0, 0xfb, 0xad, 0x85, 0xa5, 0x28, 0x9d, 0x22, 0x89,
	0x5e, 0xfe, 0x22, 0xd8, 0x28, 0x7a, 0x29, 0xad, 0x4f, 0x80, 0xcc, 0x0a,
	0x49, 0x48, 0x4f, 0xd6, 0xd3, 0xac, 0x33, 0x3b, 0xa3, 0x5a, 0xda, 0x8c,
	0xec, 0x1a, 0x1d, 0x1c, 0xa7, 0x98, 0xba, 0xe4, 0x3e, 0x93, 0x81, 0x64,
	0xfa, 0x66, 0xcd, 0x4a, 0x51, 0xf9, 0xea, 0x1a, 0x1e, 0x47, 0x2e, 0x32,
	0x8c, 0xd9, 0x42, 0x66, 0x81, 0x2b, 0x15, 0xa1, 0x32, 0x87, 0x27, 0x2e,
	0x7a, 0x13, 0x89, 0x88, 0x38, 0x97, 0x0b, 0x77, 0x22, 0xe6, 0x84, 0x73,
	0x2f, 0x5d, 0x04, 0x59, 0xdf, 0x0b, 0xdf, 0x72, 0xc3, 0x89, 0xca, 0x96,
	0x9f, 0x11, 0xd6, 0xcc, 0x16, 0x1d, 0xae, 0x96, 0xc3, 0x1e, 0x30, 0xb0,
	0xdc, 0x0d, 0x18, 0xd9, 0x22, 0x9b, 0xe6, 0xb5, 0x36, 0xc5, 0x21, 0x7f,
	0xa0, 0xaa, 0x36, 0xd2, 0xc8, 0x43, 0x40, 0x3c, 0xa3, 0x9e, 0x3b, 0xc2,
	0x66, 0x45, 0x54, 0x4e, 0x7f, 0x71, 0x42, 0x93, 0x3e, 0x81, 0x94, 0x7b,
	0x85, 0xff, 0xd0, 0x3d, 0x3d, 0xc9, 0x38, 0x27, 0xd1, 0xeb, 0xe8, 0x25,
	0x5a, 0x8c, 0x1b, 0x55, 0x52, 0x32, 0x8d, 0xc2, 0x43, 0xd2, 0x3e, 0x96,
	0x42, 0xa5, 0x78, 0x25, 0x82, 0x44, 0x2b, 0x5b, 0x98, 0x3f, 0xbd, 0xe9,
	0x58, 0x7f, 0x9c, 0x66, 0x54, 0xa2, 0xe7, 0xda, 0xd3, 0xd3, 0xdd, 0x4e,
	0x6f, 0xc6, 0x3d, 0xea, 0x59, 0x83, 0x85, 0x02, 0x98, 0x75, 0x7a, 0xba,
	0xb8, 0xc5, 0x41, 0xd5, 0xe4, 0xb9, 0x3b, 0x02, 0x8d, 0x96, 0x44, 0xa3,
	0xed, 0xc8, 0x3e, 0xee, 0x6a, 0x1b, 0x9a, 0xa7, 0x33, 0xbe, 0x75, 0x0f,
	0xa2, 0xfe, 0xaa, 0xc3, 0x76, 0xbb, 0x07, 0xff, 0x6d, 0xab, 0x0e, 0x6d,
	0xeb, 0xb8, 0xcd, 0x14, 0xdd, 0x20, 0xbc, 0xa4, 0x17, 0x6d, 0x3a, 0x9f,
	0x37, 0x7c, 0x9b, 0xca, 0x30, 0xf2, 0x66, 0xdf, 0xa9, 0xdd, 0x0f, 0xbc,
	0xd2, 0x4f, 0x49, 0x77, 0x3d, 0x49, 0x1b, 0x8a, 0xca, 0xde, 0xb6, 0xe7,
	0xb7, 0x35, 0x71, 0x8d, 0xa2, 0xe6, 0xfa, 0xf1, 0x46, 0xb9, 0x28, 0x1f,
	0xba, 0x03, 0x3c, 0x39, 0xe1, 0x37, 0x40, 0x1d, 0x97, 0x08, 0x55, 0xf8,
	0xd9, 0x8d, 0x0b, 0x84, 0x53, 0xab, 0x74, 0x82, 0xa0, 0x06, 0x3d, 0x74,
	0x11, 0x41, 0x0a, 0x7d, 0xd1, 0xb9, 0x18, 0x6c, 0xdc, 0xd8, 0x55, 0x98,
	0x37, 0xc3, 0x1f, 0x79, 0x82, 0x41, 0x0a, 0xea, 0x0b, 0x0c, 0xe1, 0x1c,
	0xbd, 0xfd, 0x9e, 0xa8, 0xf4, 0xa9, 0x3b, 0x4e, 0x0a, 0xac, 0xc7, 0x17,
	0x45, 0x80, 0x4a, 0x32, 0xe2, 0x01, 0x9b, 0x6a, 0x04, 0x52, 0x85, 0x2a,
	0x25, 0xd0, 0x42, 0x4e, 0xed, 0xd0, 0xdb, 0xed, 0xdb, 0x89, 0xf0, 0x4c,
	0x88, 0x0d, 0xd7, 0xeb, 0x4d, 0x90, 0xd7, 0x89, 0xab, 0x1b, 0xa0, 0x3d,
	0xa7, 0x3e, 0x3f, 0xc0, 0x9f, 0x02, 0x93, 0x08, 0x2d, 0x9d, 0xf3, 0x96,
	0xd7, 0xff, 0x27, 0xe3, 0xf8, 0x23, 0x8c, 0xf6, 0xce, 0xaf, 0x1a, 0x49,
	0xf4, 0xe4, 0x0b, 0xd6, 0x34, 0xb3, 0x42, 0x07, 0x90, 0x40, 0xbd, 0x6b,
	0x3e, 0xed, 0x5d, 0xb3, 0xf8, 0x95, 0x2c, 0x66, 0x88, 0x91, 0xcd, 0x25,
	0x72, 0xd5, 0xff, 0xef, 0xeb, 0x84, 0xae, 0xbc, 0xa2, 0xed, 0x89, 0x6d,
	0x05, 0x6b, 0x64, 0x2d, 0x2d, 0xa1, 0x76, 0xb4, 0xa1, 0xeb, 0xa6, 0x4f,
	0x56, 0x53, 0xec, 0xd5, 0x5a, 0x00, 0x6d, 0x55, 0x1a, 0xba, 0x9b, 0x65,
	0x97, 0x7b, 0xdd, 0x0d, 0x60, 0xfc, 0x94, 0x79, 0x1a, 0xf2, 0x2e, 0x19,
	0xd7, 0x52, 0xf2, 0xfa, 0x5b, 0x6f, 0xad, 0xd0, 0x4d, 0x55, 0x0d, 0x0b,
	0x47, 0x23, 0x60, 0x4a, 0xd9, 0x0a, 0xdd, 0xa2, 0x60, 0xdf, 0xda, 0xd4,
	0x47, 0x9f, 0x66, 0x60, 0xd8, 0x0e, 0xbf, 0x14, 0x54, 0x36, 0xd1, 0x9d,
	0xf1, 0xa1, 0x03, 0x4d, 0x75, 0x98, 0x20, 0x6c, 0xf2, 0x45, 0x5c, 0xef,
	0x4b, 0x37, 0x4e, 0xae, 0xf2, 0x6b, 0x46, 0xea, 0x7c, 0xc0, 0x4a, 0x0a,
	0x9e, 0xb3, 0x1a, 0xc0, 0xbe, 0x25, 0xc8, 0x93, 0x65, 0x76, 0xb6, 0xb9,
	0xaa, 0x78, 0x7c, 0x9b, 0xb4, 0x5e, 0x92, 0x59, 0x78, 0x12, 0xc8, 0x22,
	0xa3, 0x7c, 0x8f, 0x79, 0x80, 0x08, 0xca, 0xab, 0x9e, 0x7a, 0x91, 0x67,
	0x64, 0x03, 0xa7, 0x29, 0xde, 0xe2, 0x9e, 0x2a, 0x80, 0xd2, 0xd3, 0xa0,
	0xca, 0x78, 0x14, 0x3b, 0xad, 0x9e, 0x48, 0xd8, 0x25, 0x0f, 0x53, 0xd2,
	0xe8, 0xc3, 0x2e, 0xb7, 0xef, 0xa0, 0x0a, 0x42, 0xe8, 0x49, 0x1e, 0x57,
	0xa4, 0x87, 0xde, 0x5c, 0xb4, 0xea, 0xfa, 0x8c, 0x6b, 0x2e, 0xaf, 0x1e,
	0x14, 0x5b, 0xa0, 0x74, 0x1c, 0xd1, 0x53, 0xd3, 0x68, 0x7b, 0x4e, 0xb6,
	0x8b, 0xab, 0x1e, 0x0e, 0xb4, 0x5d, 0x54, 0x6f, 0x03, 0xc3, 0xf6, 0xda,
	0xb8, 0x11, 0x2d, 0xf0, 0x82, 0xeb, 0x22, 0xb1, 0xfd, 0x62, 0xb9, 0x0b,
	0xcb, 0xcc, 0xae, 0xcf, 0x82, 0x81, 0x3e, 0x06, 0x17, 0x5f, 0xf2, 0x6a,
	0xcb, 0xa6, 0x3d, 0x47, 0x91, 0x2d, 0xe8, 0x14, 0x02, 0xc6, 0xc0, 0x6b,
	0x0a, 0x62, 0x92, 0x0e, 0x0d, 0x11, 0xd8, 0x3c, 0xf0, 0x65, 0x9a, 0x6f,
	0xb1, 0x0d, 0x1f, 0x93, 0x1a, 0xc0, 0x31, 0x77, 0xa2, 0x7c, 0xc1, 0x22,
	0x28, 0x1a, 0x28, 0x5c, 0x46, 0x03, 0x26, 0xa3, 0xab, 0xf6, 0x7a, 0x29,
	0x9e, 0xc6, 0x41, 0x29, 0x1e, 0xe0, 0x07, 0x58, 0x9d, 0x25, 0x53, 0xaa,
	0xcd, 0x1b, 0x85, 0xfd, 0xed, 0x41, 0xa6, 0xb0, 0xbc, 0x06, 0xe3, 0xc1,
	0xf6, 0x33, 0xad, 0xcf, 0x19, 0xc6, 0x43, 0xbd, 0x7c, 0x20, 0x63, 0x4e,
	0x03, 0x40, 0x3e, 0xea, 0x9f, 0x17, 0x2c, 0xbc, 0x40, 0x8a, 0xc9, 0x06,
	0xb8, 0x2b, 0xbb, 0x4d, 0xf6, 0x1c, 0x4d, 0xca, 0x19, 0xd0, 0xf6, 0x87,
	0x3c, 0xb2, 0xb0, 0x1f, 0xc0, 0xa2, 0x9c, 0x1f, 0x22, 0xc8, 0x02, 0x35,
	0xc8, 0x79, 0x03, 0x56, 0xa7, 0x61, 0xca, 0x59, 0x3a, 0x0d, 0xb2, 0xfb,
	0x78, 0x84, 0x18, 0xdd, 0xfa, 0x78, 0x1e, 0x1b, 0xe6, 0x94, 0x05, 0x39,
	0xe7, 0xde, 0xec, 0x98, 0xed, 0x4a, 0x80, 0x8b, 0x2a, 0xe1, 0x02, 0xcf,
	0x89, 0x93, 0xec, 0xc8, 0xe8, 0xda, 0xb2, 0x64, 0x7d, 0x64, 0x0f, 0xac,
	0xad, 0xc7, 0x1d, 0x36, 0xf2, 0xfb, 0x87, 0xa5, 0x5a, 0x9e, 0x50, 0x38,
	0x54, 0x52, 0xfe, 0xaa, 0x9c, 0x78, 0x32, 0x1f, 0x6a, 0x9d, 0x4a, 0x2d,
	0x4b, 0x77, 0xc0, 0x35, 0x94, 0x17, 0xd7, 0x5f, 0x26, 0xc5, 0xe1, 0x55,
	0xb3, 0x5a, 0xae, 0x49, 0xd6, 0x4e, 0x0a, 0x85, 0x2b, 0x67, 0x78, 0xd2,
	0x05, 0x14, 0x9d, 0x89, 0xc8, 0x9f, 0x41, 0x0e, 0xca, 0x12, 0xed, 0x58,
	0xe8, 0xa9, 0xca, 0x0c, 0x2e, 0xe0, 0xa4, 0xe0, 0xe8, 0x97, 0x45, 0x30,
	0x87, 0xc4, 0xe7, 0x80, 0x64, 0xaf, 0xff, 0x9b, 0x00, 0x6b, 0x2a, 0xb6,
	0xfc, 0x5d, 0x73, 0x54, 0x6a, 0xa8, 0x9c, 0x04, 0xd9, 0xe0, 0xb6, 0x58,
	0x31, 0xda, 0x20, 0x4f, 0x84, 0xd0, 0xab, 0x1c, 0xb9, 0xc7, 0xd3, 0x35,
	0x7a, 0x09, 0x9d, 0x06, 0x50, 0x01, 0xc8, 0x02, 0x53, 0x51, 0x71, 0xe7,
	0x10, 0xf5, 0x6f, 0xc2, 0xa3, 0x77, 0x9d, 0xb8, 0xce, 0x87, 0x6a, 0xdb,
	0x20, 0xc2, 0x71, 0xfb, 0x78, 0x8d, 0x92, 0x4c, 0xb2, 0x44, 0x5e, 0x0d,
	0x71, 0xc0, 0xff, 0xa6, 0x5d, 0x40, 0xbc, 0xaf, 0xa9, 0x5e, 0x8c, 0x5d,
	0x69, 0x05, 0x78, 0xce, 0x45, 0x7b, 0xca, 0xc6, 0x1e, 0x3c, 0x21, 0xf1,
	0x2f, 0x4b, 0xab, 0x91, 0x01, 0x97, 0x77, 0xbb, 0xdb, 0xe1, 0x61, 0x5d,
	0x2b, 0xc8, 0x25, 0xbb, 0xdb, 0x1f, 0xc7, 0x4b, 0x75, 0xde, 0x32, 0x41,
	0x46, 0x6a, 0x85, 0x31, 0x41, 0xf0, 0x01, 0xaf, 0x5c, 0x4c, 0x26, 0xc6,
	0x8a, 0x9f, 0xf7, 0xc0, 0xf8, 0x4e, 0xce, 0x5b, 0xf8, 0xf7, 0xdd, 0x9a,
	0xf4, 0x0b, 0xce, 0x2d, 0x6e, 0x14, 0x7d, 0x72, 0xe6, 0x4e, 0x0c, 0x90,
	0x83, 0x6f, 0x69, 0x0b, 0x77, 0x8a, 0xfe, 0xa9, 0x50, 0x77, 0x9e, 0x36,
	0x70, 0x6e, 0x2f, 0xb0, 0x86, 0x41, 0x28, 0x37, 0xff, 0x36, 0xf5, 0x34,
	0xe4, 0x8f, 0xc4, 0x20, 0x76, 0xf3, 0x9e, 0xc2, 0xfb, 0x00, 0x66, 0xec,
	0xcf, 0xe3, 0xf1, 0xe8, 0xc6, 0xd1, 0x5c, 0x91, 0x1a, 0xed, 0x99, 0xf4,
	0x1b, 0x8e, 0xdb, 0x9c, 0x73, 0x98, 0xa3, 0xdc, 0x9e, 0x5d, 0xbc, 0xbd,
	0x67, 0xcb, 0x43, 0x6a, 0x85, 0xb8, 0xbd, 0x49, 0x53, 0x19, 0xad, 0x93,
	0x6f, 0x7d, 0x8b, 0x14, 0xe5, 0x0a, 0x56, 0x08, 0x1f, 0xa4, 0x93, 0x1e,
	0xd2, 0xe2, 0xfa, 0x8d, 0x3a, 0x18, 0x0d, 0xff, 0x75, 0x26, 0x1c, 0xdf,
	0x7d, 0x2d, 0x63, 0x03, 0x37, 0xc5, 0xb3, 0x0b, 0xa8, 0xa7, 0x78, 0xeb,
	0x3a, 0xa1, 0x2b, 0xee, 0xa8, 0xae, 0x5a, 0x47, 0x55, 0xdc, 0x82, 0x10,
	0xf8, 0x14, 0x3d, 0x18, 0x34, 0xfe, 0xad, 0x80, 0x2d, 0x00, 0x93, 0xda,
	0xe6, 0xb4, 0x84, 0xc1, 0x8e, 0x10, 0x26, 0xbf, 0xfe, 0xd6, 0xb1, 0x87,
	0x9f, 0xd6, 0xe4, 0x9f, 0xf2, 0xfa, 0x07, 0xfc, 0x20, 0x90, 0x0c, 0x13,
	0x66, 0x28, 0x0e, 0x56, 0x73, 0x9d, 0x12, 0x18, 0xb4, 0xc5, 0xbf, 0x4a,
	0x08, 0x0d, 0x3f, 0x58, 0x76, 0xe1, 0xc3, 0xff, 0x40, 0x2d, 0x32, 0x8f,
	0x0e, 0x2f, 0x70, 0xf2, 0x40, 0x00,
}
