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

package numtheory

import "math/big"

// Fast is a Service backed directly by math/big's native routines. It
// exists for cross-checking against Reference and for callers who only
// care about results, not about seeing the algorithms worked out by hand.
type Fast struct{}

// NewFast returns the library-backed Service implementation.
func NewFast() Fast { return Fast{} }

// ModPow returns base^exponent mod modulus, handling the same edge cases
// Reference does so the two agree everywhere: modulus == 1 yields 0,
// exponent == 0 with a non-zero base yields 1, and a zero base with a
// positive exponent yields 0.
func (Fast) ModPow(base, exponent, modulus *big.Int) *big.Int {
	if modulus.Cmp(big1) == 0 {
		return big.NewInt(0)
	}
	if base.Sign() == 0 && exponent.Sign() > 0 {
		return big.NewInt(0)
	}
	if exponent.Sign() == 0 && base.Sign() != 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Exp(base, exponent, modulus)
}

// ExtendedGCD returns (gcd(a,b), x, y) with gcd(a,b) = x*a + y*b and
// gcd(a,b) >= 0, using math/big's GCD which already normalises the sign.
func (Fast) ExtendedGCD(a, b *big.Int) ExtendedEuclidResult {
	x, y := new(big.Int), new(big.Int)
	g := new(big.Int).GCD(x, y, absCopy(a), absCopy(b))
	// big.Int.GCD requires non-negative inputs; recover the signed
	// Bezout coefficients for the original a, b.
	if a.Sign() < 0 {
		x.Neg(x)
	}
	if b.Sign() < 0 {
		y.Neg(y)
	}
	return ExtendedEuclidResult{G: g, X: x, Y: y}
}

func absCopy(n *big.Int) *big.Int {
	return new(big.Int).Abs(n)
}

// ModInverse returns the unique r in [0, modulus) with n*r = 1 (mod
// modulus), or ErrNoInverse if gcd(n, modulus) != 1.
func (f Fast) ModInverse(n, modulus *big.Int) (*big.Int, error) {
	r := new(big.Int).ModInverse(n, modulus)
	if r == nil {
		return nil, ErrNoInverse
	}
	return r, nil
}

// IsProbablyPrime runs the shared small-prime sieve followed by `rounds`
// Miller-Rabin witnesses drawn from source.
func (f Fast) IsProbablyPrime(p *big.Int, rounds int, source RandomSource) bool {
	if failsPrimitiveChecks(p) {
		return false
	}
	return millerRabin(f, p, rounds, source)
}
