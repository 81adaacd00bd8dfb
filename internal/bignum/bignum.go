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

// Package bignum collects the small arbitrary-precision integer helpers
// that the rest of this toolkit builds on: parity, halving/doubling,
// divisibility and an integer logarithm to an arbitrary base. They are
// plain functions over *big.Int rather than methods on a wrapper type,
// keeping math/big's zero value and allocation behaviour intact for
// callers.
package bignum

import "math/big"

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	two  = big.NewInt(2)
)

// IsOdd reports whether n is odd. Works for negative n (Go's Bit(0) on a
// big.Int reports the parity of its two's-complement magnitude, i.e. the
// mathematical parity since big.Int stores sign and magnitude separately).
func IsOdd(n *big.Int) bool {
	return n.Bit(0) == 1
}

// IsEven reports whether n is even.
func IsEven(n *big.Int) bool {
	return n.Bit(0) == 0
}

// Half returns floor(n/2) as a new value; n is left untouched.
func Half(n *big.Int) *big.Int {
	return new(big.Int).Rsh(n, 1)
}

// HalveAssign sets n to floor(n/2) in place and returns n.
func HalveAssign(n *big.Int) *big.Int {
	return n.Rsh(n, 1)
}

// Double returns 2*n as a new value.
func Double(n *big.Int) *big.Int {
	return new(big.Int).Lsh(n, 1)
}

// Divides reports whether d divides n (n mod d == 0). A zero d divides
// nothing: Divides returns false for it.
func Divides(d, n *big.Int) bool {
	if d.Sign() == 0 {
		return false
	}
	m := new(big.Int).Mod(n, d)
	return m.Sign() == 0
}

// Increment returns n+1 as a new value.
func Increment(n *big.Int) *big.Int {
	return new(big.Int).Add(n, one)
}

// IncrementAssign sets n to n+1 in place and returns n.
func IncrementAssign(n *big.Int) *big.Int {
	return n.Add(n, one)
}

// Ilog returns floor(log_base(n)) for n >= 1 and base >= 2.
//
// Used by the RSA text scheme to derive a block size from a modulus: the
// number of base-r digits a value strictly below n can occupy without
// overflowing is floor(log_r(n)).
func Ilog(n, base *big.Int) int64 {
	if n.Sign() <= 0 || base.Cmp(two) < 0 {
		return 0
	}
	count := int64(0)
	rem := new(big.Int).Set(n)
	for rem.Cmp(base) >= 0 {
		rem.Div(rem, base)
		count++
	}
	return count
}

// Zero, One and Two are shared immutable constants; callers must not mutate
// the returned pointer. They exist to avoid repeated small allocations in
// hot loops.
func Zero() *big.Int { return zero }
func One() *big.Int  { return one }
func Two() *big.Int  { return two }
