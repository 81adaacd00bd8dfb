// Copyright © 2024 The cryptolab authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package codec implements the bidirectional string <-> []*big.Int block
// codec (g-adic development) that bridges textual plaintext/ciphertext to
// the integer-domain scheme cores.
package codec

import (
	"fmt"
	"math/big"
	"strings"
)

// Key bundles the two codec parameters: radix and block size, both of
// which must be >= 1.
type Key struct {
	Radix     *big.Int
	BlockSize int
}

// NewKey validates and returns a Key.
func NewKey(radix *big.Int, blockSize int) (Key, error) {
	if radix.Sign() <= 0 {
		return Key{}, fmt.Errorf("codec: radix must be > 0, got %s", radix)
	}
	if blockSize <= 0 {
		return Key{}, fmt.Errorf("codec: block size must be > 0, got %d", blockSize)
	}
	return Key{Radix: radix, BlockSize: blockSize}, nil
}

// Encode splits plaintext into successive groups of key.BlockSize Unicode
// scalars (the last group may be short) and, for each group
// c0 c1 ... c_{k-1}, returns sum(ci * radix^(k-1-i)) as a big integer.
func Encode(plaintext string, key Key) []*big.Int {
	runes := []rune(plaintext)
	if len(runes) == 0 {
		return nil
	}

	var blocks []*big.Int
	for start := 0; start < len(runes); start += key.BlockSize {
		end := start + key.BlockSize
		if end > len(runes) {
			end = len(runes)
		}
		blocks = append(blocks, encodeChunk(runes[start:end], key.Radix))
	}
	return blocks
}

func encodeChunk(chunk []rune, radix *big.Int) *big.Int {
	sum := big.NewInt(0)
	power := big.NewInt(1)
	for i := len(chunk) - 1; i >= 0; i-- {
		digit := big.NewInt(int64(chunk[i]))
		sum.Add(sum, new(big.Int).Mul(power, digit))
		power.Mul(power, radix)
	}
	return sum
}

// Decode reverses Encode: each block's r-adic expansion is read out
// least-significant digit first, then reversed into a most-significant-
// first string, and the per-block strings are concatenated as-is. A short
// final block therefore contributes only as many characters as its value
// occupies, which is exactly what Encode produced for it.
//
// Decode panics if a block's expansion ever produces a digit outside the
// Unicode scalar range: that is a programmer error (a caller mismatching
// radix/block_size with the encoder), not a data error.
func Decode(blocks []*big.Int, key Key) string {
	var sb strings.Builder
	for _, block := range blocks {
		sb.WriteString(string(radixDigits(block, key.Radix)))
	}
	return sb.String()
}

// DecodePadded is Decode for producers that promise fixed-size output
// blocks: every block's character sequence is left-padded with U+0000 up to
// key.BlockSize. U+0000 contributes 0 to every g-adic digit it occupies, so
// the padding is invisible to a decoder re-encoding with the same key; it
// exists so a consumer can split the concatenated string back into blocks
// by counting characters. Used for serialising ciphertext and signature
// blocks, whose values can fall well below the block-size bound.
func DecodePadded(blocks []*big.Int, key Key) string {
	var sb strings.Builder
	for _, block := range blocks {
		digits := radixDigits(block, key.Radix)
		for i := len(digits); i < key.BlockSize; i++ {
			sb.WriteRune(0)
		}
		sb.WriteString(string(digits))
	}
	return sb.String()
}

// radixDigits returns the most-significant-first digit sequence of n in
// the given radix, each digit mapped to its Unicode scalar value.
func radixDigits(n, radix *big.Int) []rune {
	decimal := new(big.Int).Set(n)
	var digits []rune
	for decimal.Sign() > 0 {
		rem := new(big.Int).Mod(decimal, radix)
		decimal.Div(decimal, radix)
		digits = append(digits, digitToRune(rem))
	}
	// reverse into most-significant-first order
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits
}

func digitToRune(rem *big.Int) rune {
	if !rem.IsInt64() {
		panic(fmt.Sprintf("codec: digit %s overflows Unicode scalar range", rem))
	}
	v := rem.Int64()
	if v < 0 || v > 0x10FFFF || (v >= 0xD800 && v <= 0xDFFF) {
		panic(fmt.Sprintf("codec: digit %d is not a valid Unicode scalar value", v))
	}
	return rune(v)
}
