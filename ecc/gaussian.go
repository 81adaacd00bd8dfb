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

package ecc

import "math/big"

// gaussian is a Gaussian integer (a + bi), used only internally by the
// secure curve constructor to count points on the curve via a complex
// extended Euclidean algorithm. It need not be a public type: nothing
// outside curve construction ever needs to see it.
type gaussian struct {
	real, imag *big.Int
}

func newGaussian(real, imag *big.Int) gaussian {
	return gaussian{real: real, imag: imag}
}

func (g gaussian) add(o gaussian) gaussian {
	return gaussian{
		real: new(big.Int).Add(g.real, o.real),
		imag: new(big.Int).Add(g.imag, o.imag),
	}
}

func (g gaussian) sub(o gaussian) gaussian {
	return gaussian{
		real: new(big.Int).Sub(g.real, o.real),
		imag: new(big.Int).Sub(g.imag, o.imag),
	}
}

func (g gaussian) mul(o gaussian) gaussian {
	return gaussian{
		real: new(big.Int).Sub(new(big.Int).Mul(g.real, o.real), new(big.Int).Mul(g.imag, o.imag)),
		imag: new(big.Int).Add(new(big.Int).Mul(g.real, o.imag), new(big.Int).Mul(g.imag, o.real)),
	}
}

func (g gaussian) conjugate() gaussian {
	return gaussian{real: new(big.Int).Set(g.real), imag: new(big.Int).Neg(g.imag)}
}

func (g gaussian) negate() gaussian {
	return gaussian{real: new(big.Int).Neg(g.real), imag: new(big.Int).Neg(g.imag)}
}

func (g gaussian) isZero() bool {
	return g.real.Sign() == 0 && g.imag.Sign() == 0
}

func (g gaussian) isInFirstQuadrant() bool {
	return g.real.Sign() > 0 && g.imag.Sign() > 0
}

func (g gaussian) isInThirdQuadrant() bool {
	return g.real.Sign() < 0 && g.imag.Sign() < 0
}

// normSquared returns real^2 + imag^2, the squared magnitude. Comparing
// normSquared values stands in for comparing magnitudes directly (both are
// non-negative, and squaring is monotonic over non-negative reals), so the
// complex Euclidean algorithm below never needs an irrational square root.
func (g gaussian) normSquared() *big.Int {
	return new(big.Int).Add(new(big.Int).Mul(g.real, g.real), new(big.Int).Mul(g.imag, g.imag))
}

func (g gaussian) isGreaterThan(o gaussian) bool {
	return g.normSquared().Cmp(o.normSquared()) > 0
}

// divRound divides g by o in the Gaussian rationals and rounds each
// component to the nearest integer, ties away from zero.
func (g gaussian) divRound(o gaussian) gaussian {
	denom := o.normSquared()
	realNumer := new(big.Int).Add(new(big.Int).Mul(g.real, o.real), new(big.Int).Mul(g.imag, o.imag))
	imagNumer := new(big.Int).Sub(new(big.Int).Mul(g.imag, o.real), new(big.Int).Mul(g.real, o.imag))
	return gaussian{real: roundDiv(realNumer, denom), imag: roundDiv(imagNumer, denom)}
}

// roundDiv returns numer/denom rounded to the nearest integer, ties away
// from zero, for a positive denom.
func roundDiv(numer, denom *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(numer, denom, new(big.Int))
	if r.Sign() == 0 {
		return q
	}
	twiceR := new(big.Int).Lsh(new(big.Int).Abs(r), 1)
	if twiceR.Cmp(denom) >= 0 {
		if numer.Sign()*denom.Sign() >= 0 {
			q.Add(q, big.NewInt(1))
		} else {
			q.Sub(q, big.NewInt(1))
		}
	}
	return q
}

// complexEuclid runs the Gaussian-integer Euclidean algorithm on a and b
// and returns their greatest common divisor, used by calculateBigN to
// count points on the curve over Z_p.
func complexEuclid(a, b gaussian) gaussian {
	var g, gPrev gaussian
	if a.isGreaterThan(b) {
		g, gPrev = b, a
	} else {
		g, gPrev = a, b
	}

	for !g.isZero() {
		tmp := g
		g = gPrev.sub(g.mul(gPrev.divRound(g)))
		gPrev = tmp
	}
	return gPrev
}
