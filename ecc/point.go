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

// Package ecc implements finite-field elliptic-curve point arithmetic for
// curves of the form y^2 = x^3 + a*x (mod p), plus the secure curve
// constructor that picks a, p and a generator G so the resulting cyclic
// subgroup is large enough to make the discrete logarithm problem
// infeasible.
//
// Point arithmetic is worked out directly from the affine formulas rather
// than delegated to crypto/elliptic: that package's Curve implementations
// assume a = -3, which this toolkit's curves never satisfy.
package ecc

import (
	"math/big"

	"github.com/cryptolab/toolkit/internal/numtheory"
)

// Point is a point on a Curve: (X, Y) when Inf is false, or the point at
// infinity (the group identity) when Inf is true, in which case X and Y
// are ignored.
type Point struct {
	X, Y *big.Int
	Inf  bool
}

// Identity returns the point at infinity.
func Identity() Point {
	return Point{Inf: true}
}

// NewPoint returns the affine point (x, y).
func NewPoint(x, y *big.Int) Point {
	return Point{X: x, Y: y}
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	if p.Inf || q.Inf {
		return p.Inf == q.Inf
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

var (
	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
	big3 = big.NewInt(3)
)

func mod(n, p *big.Int) *big.Int {
	return new(big.Int).Mod(n, p)
}

// Add returns p + q on the curve (a, p-modulus). The point-at-infinity
// cases and the P == -Q case return Identity(); P == Q is delegated to
// Double.
func (c *Curve) Add(svc numtheory.Service, p, q Point) Point {
	if p.Inf {
		return q
	}
	if q.Inf {
		return p
	}
	if p.X.Cmp(q.X) == 0 {
		sum := new(big.Int).Add(p.Y, q.Y)
		if mod(sum, c.P).Sign() == 0 {
			return Identity()
		}
		return c.Double(svc, p)
	}

	dx := mod(new(big.Int).Sub(q.X, p.X), c.P)
	invDx, err := svc.ModInverse(dx, c.P)
	if err != nil {
		// dx is never zero here (handled above via the P.x == Q.x branch),
		// so ModInverse cannot fail against a prime modulus.
		panic("ecc: unexpected missing inverse in Add: " + err.Error())
	}
	slopeNumer := new(big.Int).Sub(q.Y, p.Y)
	slope := mod(new(big.Int).Mul(slopeNumer, invDx), c.P)

	rx := mod(new(big.Int).Sub(new(big.Int).Sub(new(big.Int).Mul(slope, slope), p.X), q.X), c.P)
	ry := mod(new(big.Int).Sub(new(big.Int).Mul(slope, new(big.Int).Sub(p.X, rx)), p.Y), c.P)
	return NewPoint(rx, ry)
}

// Double returns 2*p on the curve.
func (c *Curve) Double(svc numtheory.Service, p Point) Point {
	if p.Inf || p.Y.Sign() == 0 {
		return Identity()
	}

	numer := new(big.Int).Add(new(big.Int).Mul(big3, new(big.Int).Mul(p.X, p.X)), c.A)
	denom := mod(new(big.Int).Mul(big2, p.Y), c.P)
	invDenom, err := svc.ModInverse(denom, c.P)
	if err != nil {
		panic("ecc: unexpected missing inverse in Double: " + err.Error())
	}
	slope := mod(new(big.Int).Mul(numer, invDenom), c.P)

	rx := mod(new(big.Int).Sub(new(big.Int).Mul(slope, slope), new(big.Int).Mul(big2, p.X)), c.P)
	ry := mod(new(big.Int).Sub(new(big.Int).Mul(slope, new(big.Int).Sub(p.X, rx)), p.Y), c.P)
	return NewPoint(rx, ry)
}

// ScalarMult returns k*p via double-and-add, processing k's bits from
// least to most significant. k == 0 returns Identity().
func (c *Curve) ScalarMult(svc numtheory.Service, p Point, k *big.Int) Point {
	if k.Sign() == 0 {
		return Identity()
	}
	result := Identity()
	addend := p
	n := new(big.Int).Set(k)
	for n.Sign() > 0 {
		if n.Bit(0) == 1 {
			result = c.Add(svc, result, addend)
		}
		addend = c.Double(svc, addend)
		n.Rsh(n, 1)
	}
	return result
}
