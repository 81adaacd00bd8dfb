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

import (
	"errors"
	"math/big"

	"github.com/cryptolab/toolkit/internal/bignum"
	"github.com/cryptolab/toolkit/internal/numtheory"
	"github.com/cryptolab/toolkit/internal/prng"
)

// ErrInvalidCurveParameters is returned when n == 0 or the requested
// modulus bit width is below the minimum this construction supports.
var ErrInvalidCurveParameters = errors.New("ecc: invalid curve parameters")

// errRealPartExhausted is the internal failure mode of calculateRealPart
// when none of the (at most four) conjugations of alpha satisfy the
// divisibility criterion; it cannot surface for a correctly chosen prime,
// so it is an invariant violation and panics at the call site.
var errRealPartExhausted = errors.New("ecc: no valid real part found for alpha")

// Curve is a finite-field elliptic curve y^2 = x^3 + a*x (mod p), where
// a = -n^2 for some nonzero n, together with the order Q of its
// cryptographically useful cyclic subgroup and a generator G of that
// subgroup.
type Curve struct {
	A *big.Int
	P *big.Int
	Q *big.Int
	G Point
}

var (
	big4 = big.NewInt(4)
	big5 = big.NewInt(5)
	big8 = big.NewInt(8)
)

// HasPoint reports whether p satisfies y^2 = x^3 + a*x (mod P). The point
// at infinity is always considered on the curve.
func (c *Curve) HasPoint(p Point) bool {
	if p.Inf {
		return true
	}
	xSquared := new(big.Int).Mul(p.X, p.X)
	xCubed := new(big.Int).Mul(p.X, xSquared)
	ax := new(big.Int).Mul(c.A, p.X)
	ySquared := new(big.Int).Mul(p.Y, p.Y)

	remainder := new(big.Int).Sub(new(big.Int).Add(xCubed, ax), ySquared)
	remainder.Mod(remainder, c.P)
	return remainder.Sign() == 0
}

// IsSingular reports whether 4a^3 + 27b^2 = 0 (mod P); since every curve
// here has b = 0, this reduces to 4a^3 = 0 (mod P), i.e. a = 0 (mod P).
func (c *Curve) IsSingular() bool {
	aCubed := new(big.Int).Exp(c.A, big3, nil)
	fourACubed := new(big.Int).Mul(big4, aCubed)
	fourACubed.Mod(fourACubed, c.P)
	return fourACubed.Sign() == 0
}

// SecureCurve constructs a curve y^2 = x^3 - n^2*x (mod p) whose
// cryptographically useful cyclic subgroup (of prime order q = |E(Z_p)|/8)
// is large enough for the elliptic-curve discrete log problem to be
// infeasible.
//
// It accepts the first q that passes a Miller-Rabin primality check, with
// no smoothness check beyond that.
func SecureCurve(svc numtheory.Service, generator *prng.PRNG, n *big.Int, bits uint, mrRounds int) (*Curve, error) {
	if n.Sign() == 0 || bits < 4 {
		return nil, ErrInvalidCurveParameters
	}
	a := new(big.Int).Neg(new(big.Int).Mul(n, n))
	doubleN := new(big.Int).Mul(big2, n)

	primeCounter := prng.NewCounter(1)
	var candidate *big.Int
	for {
		candidate = generator.GeneratePrime(bits, mrRounds, primeCounter, svc)
		mod8 := new(big.Int).Mod(candidate, big8)
		if mod8.Cmp(big5) == 0 && !bignum.Divides(candidate, doubleN) {
			break
		}
	}

	genCounter := prng.NewCounter(1)
	for {
		prime, q := calculatePAndQ(svc, generator, n, candidate, mrRounds)
		curve := &Curve{A: a, P: prime, Q: q}

		gen, err := calculateSignatureGenerator(svc, generator, curve, genCounter)
		if err != nil {
			return nil, err
		}
		curve.G = gen

		if curve.HasPoint(curve.G) {
			return curve, nil
		}
		candidate = prime
	}
}

// calculatePAndQ advances `prime` by 8 (preserving prime = 5 mod 8) until
// it is simultaneously probably-prime, a quadratic residue witness for n
// (n^((p-1)/2) = 1 mod p) and does not divide 2n; it then computes
// N = |E(Z_p)| and accepts q = N/8 the first time q is probably prime,
// otherwise advances prime by 8 and retries the whole search.
func calculatePAndQ(svc numtheory.Service, generator *prng.PRNG, n, prime *big.Int, mrRounds int) (*big.Int, *big.Int) {
	doubleN := new(big.Int).Mul(big2, n)
	p := new(big.Int).Set(prime)
	stream := prng.NewStream(generator, prng.NewCounter(1))

	for {
		for {
			halfExp := new(big.Int).Rsh(new(big.Int).Sub(p, big1), 1)
			isQuadraticResidueWitness := svc.ModPow(n, halfExp, p).Cmp(big1) == 0
			if svc.IsProbablyPrime(p, mrRounds, stream) && isQuadraticResidueWitness && !bignum.Divides(p, doubleN) {
				break
			}
			p = new(big.Int).Add(p, big8)
		}

		bigN := calculateBigN(svc, p, n)
		q := new(big.Int).Div(bigN, big8)
		if svc.IsProbablyPrime(q, mrRounds, stream) {
			return p, q
		}
		p = new(big.Int).Add(p, big8)
	}
}

// calculateW finds the smallest z >= 2 (stepping by 2) such that
// w = z^((p-1)/4) mod p satisfies w^2 + 1 = 0 (mod p); w is a square root
// of -1 modulo p, which exists because p = 5 (mod 8).
func calculateW(svc numtheory.Service, prime *big.Int) *big.Int {
	exponent := new(big.Int).Div(new(big.Int).Sub(prime, big1), big4)
	z := new(big.Int).Set(big2)
	for {
		w := svc.ModPow(z, exponent, prime)
		check := new(big.Int).Add(new(big.Int).Mul(w, w), big1)
		check.Mod(check, prime)
		if check.Sign() == 0 {
			return w
		}
		z = new(big.Int).Add(z, big2)
	}
}

// calculateBigN computes N = |E(Z_p)| for the curve y^2 = x^3 - n^2*x by
// running the Gaussian-integer Euclidean algorithm on (p, W(p,2)+i) and
// deriving alpha's odd/even real-imaginary split.
func calculateBigN(svc numtheory.Service, prime, n *big.Int) *big.Int {
	w := calculateW(svc, prime)
	first := newGaussian(new(big.Int).Set(prime), new(big.Int).Set(big0))
	second := newGaussian(w, new(big.Int).Set(big1))
	ggt := complexEuclid(first, second)

	var alpha gaussian
	if bignum.IsEven(ggt.real) {
		alpha = newGaussian(new(big.Int).Abs(ggt.imag), new(big.Int).Abs(ggt.real))
	} else {
		alpha = newGaussian(new(big.Int).Abs(ggt.real), new(big.Int).Abs(ggt.imag))
	}

	realPart := calculateRealPart(svc, alpha, prime, n)
	result := new(big.Int).Add(prime, big1)
	result.Sub(result, new(big.Int).Mul(big2, realPart))
	return result
}

// calculateRealPart finds, among at most four conjugations/negations of
// alpha, the one whose real part satisfies
// Re((alpha - L(n,p)) * conj(2+2i)) = 0 (mod 8), where L is the Legendre
// symbol of n mod p.
func calculateRealPart(svc numtheory.Service, alpha gaussian, prime, n *big.Int) *big.Int {
	count := 4
	for {
		legendre := newGaussian(calculateLegendreSymbol(svc, n, prime), new(big.Int).Set(big0))
		twoTwo := newGaussian(new(big.Int).Set(big2), new(big.Int).Set(big2))
		product := alpha.sub(legendre).mul(twoTwo.conjugate())

		remainder := new(big.Int).Mod(product.real, big8)
		if remainder.Sign() == 0 {
			return alpha.real
		}

		count--
		if count == 0 {
			panic(errRealPartExhausted)
		}
		if alpha.isInFirstQuadrant() || alpha.isInThirdQuadrant() {
			alpha = alpha.negate().conjugate()
		} else {
			alpha = alpha.conjugate()
		}
	}
}

// calculateLegendreSymbol returns the Legendre symbol of a mod prime, as
// +1 or -1, realised by a^((p-1)/2) mod p for the general case, with fast
// paths for a = p-1 and a = 2 mirroring the quadratic reciprocity special
// cases the construction leans on.
func calculateLegendreSymbol(svc numtheory.Service, rawA, prime *big.Int) *big.Int {
	negOne := big.NewInt(-1)
	a := new(big.Int).Mod(rawA, prime)
	pMinus1 := new(big.Int).Sub(prime, big1)

	if a.Cmp(pMinus1) == 0 {
		exponent := bignum.Half(pMinus1)
		if bignum.IsEven(exponent) {
			return big.NewInt(1)
		}
		return negOne
	}
	if a.Cmp(big2) == 0 {
		exponent := new(big.Int).Div(new(big.Int).Sub(new(big.Int).Mul(prime, prime), big1), big8)
		if bignum.IsEven(exponent) {
			return big.NewInt(1)
		}
		return negOne
	}

	result := svc.ModPow(a, bignum.Half(pMinus1), prime)
	if result.Cmp(big1) == 0 {
		return big.NewInt(1)
	}
	return negOne
}

// calculateSignatureGenerator samples x in [1, p-1), accepts it once
// x^3 + a*x is a quadratic residue mod p, derives the corresponding y via
// the appropriate square-root branch, and retries until the resulting
// point lies on the curve, is not the identity, and has order exactly q.
func calculateSignatureGenerator(svc numtheory.Service, generator *prng.PRNG, curve *Curve, counter *prng.Counter) (Point, error) {
	pMinus1 := new(big.Int).Sub(curve.P, big1)
	halfExp := bignum.Half(pMinus1)
	quarterExp := new(big.Int).Div(pMinus1, big4)
	exponent := new(big.Int).Div(new(big.Int).Add(curve.P, big3), big8)

	for {
		var x, r *big.Int
		for {
			x = generator.Take(big1, pMinus1, counter)
			cube := svc.ModPow(x, big3, curve.P)
			r = new(big.Int).Add(cube, new(big.Int).Mul(curve.A, x))
			r.Mod(r, curve.P)
			if svc.ModPow(r, halfExp, curve.P).Cmp(big1) == 0 {
				break
			}
		}

		condition := svc.ModPow(r, quarterExp, curve.P)
		var y *big.Int
		if condition.Cmp(big1) == 0 {
			y = svc.ModPow(r, exponent, curve.P)
		} else {
			fourR := new(big.Int).Mul(big4, r)
			y = bignum.Half(svc.ModPow(fourR, exponent, curve.P))
		}

		candidate := NewPoint(x, y)
		if !curve.HasPoint(candidate) {
			continue
		}
		if candidate.Inf {
			continue
		}
		if curve.ScalarMult(svc, candidate, curve.Q).Inf {
			return candidate, nil
		}
	}
}
