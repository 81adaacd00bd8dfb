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

// Reference is a Service worked out from first principles rather than
// delegated to math/big's native routines: right-to-left square-and-
// multiply for ModPow, a rotating four-slot Bezout-coefficient window for
// ExtendedGCD. It exists for didactic comparison against Fast; both must
// agree on every input.
type Reference struct{}

// NewReference returns the from-first-principles Service implementation.
func NewReference() Reference { return Reference{} }

// ModPow computes base^exponent mod modulus by right-to-left
// square-and-multiply, halving the exponent each iteration and reducing
// modulo modulus after every multiplication.
func (Reference) ModPow(base, exponent, modulus *big.Int) *big.Int {
	if modulus.Cmp(big1) == 0 {
		return big.NewInt(0)
	}
	if base.Sign() == 0 && exponent.Sign() > 0 {
		return big.NewInt(0)
	}
	if exponent.Sign() == 0 && base.Sign() != 0 {
		return big.NewInt(1)
	}
	if base.Cmp(big1) == 0 {
		return big.NewInt(1)
	}

	result := big.NewInt(1)
	b := euclidMod(base, modulus)
	exp := new(big.Int).Set(exponent)

	for exp.Sign() != 0 {
		if exp.Bit(0) == 1 {
			result = euclidMod(new(big.Int).Mul(result, b), modulus)
		}
		b = euclidMod(new(big.Int).Mul(b, b), modulus)
		exp.Rsh(exp, 1)
	}
	return result
}

// euclidMod is Euclidean remainder, always in [0, |modulus|); math/big's
// Mod already implements Euclidean semantics for a positive modulus,
// which is all that is ever passed here.
func euclidMod(n, modulus *big.Int) *big.Int {
	return new(big.Int).Mod(n, modulus)
}

// ExtendedGCD returns (gcd(a,b), x, y) with gcd(a,b) = x*a + y*b and
// gcd(a,b) >= 0. It keeps a rotating length-4 window of Bezout
// coefficients and advances by (n, m) <- (m, n mod m). Negative inputs are
// solved on |a|, |b| and the matching coefficient negated, as Fast does.
func (ref Reference) ExtendedGCD(a, b *big.Int) ExtendedEuclidResult {
	if a.Sign() < 0 || b.Sign() < 0 {
		r := ref.ExtendedGCD(new(big.Int).Abs(a), new(big.Int).Abs(b))
		if a.Sign() < 0 {
			r.X.Neg(r.X)
		}
		if b.Sign() < 0 {
			r.Y.Neg(r.Y)
		}
		return r
	}
	if a.Sign() == 0 && b.Sign() == 0 {
		return ExtendedEuclidResult{G: big.NewInt(0), X: big.NewInt(0), Y: big.NewInt(0)}
	}
	m := new(big.Int).Set(b)
	n := new(big.Int).Set(a)
	xy := [4]*big.Int{big.NewInt(1), big.NewInt(0), big.NewInt(0), big.NewInt(1)}

	for m.Sign() != 0 {
		div := new(big.Int).Div(n, m)
		xy[0] = new(big.Int).Sub(xy[0], new(big.Int).Mul(div, xy[2]))
		xy[1] = new(big.Int).Sub(xy[1], new(big.Int).Mul(div, xy[3]))
		tmp := new(big.Int).Mod(n, m)
		n, m = m, tmp
		xy = rotateRight2(xy)
	}

	if n.Sign() >= 0 {
		return ExtendedEuclidResult{G: n, X: xy[0], Y: xy[1]}
	}
	return ExtendedEuclidResult{
		G: new(big.Int).Neg(n),
		X: new(big.Int).Neg(xy[0]),
		Y: new(big.Int).Neg(xy[1]),
	}
}

// rotateRight2 rotates the 4-slot window right by two: [a,b,c,d] becomes
// [c,d,a,b].
func rotateRight2(xy [4]*big.Int) [4]*big.Int {
	return [4]*big.Int{xy[2], xy[3], xy[0], xy[1]}
}

// ModInverse returns the unique r in [0, modulus) with n*r = 1 (mod
// modulus), computed via ExtendedGCD(modulus, n) = (1, _, y) and
// r = (modulus + y) mod modulus. Fails with ErrNoInverse when
// gcd(n, modulus) != 1.
func (ref Reference) ModInverse(n, modulus *big.Int) (*big.Int, error) {
	result := ref.ExtendedGCD(modulus, n)
	if result.G.Cmp(big1) != 0 {
		return nil, ErrNoInverse
	}
	return euclidMod(new(big.Int).Add(modulus, result.Y), modulus), nil
}

// IsProbablyPrime runs the shared small-prime sieve followed by `rounds`
// Miller-Rabin witnesses drawn from source.
func (ref Reference) IsProbablyPrime(p *big.Int, rounds int, source RandomSource) bool {
	if failsPrimitiveChecks(p) {
		return false
	}
	return millerRabin(ref, p, rounds, source)
}
