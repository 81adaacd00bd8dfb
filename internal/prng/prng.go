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

// Package prng implements the deterministic, seed-reproducible integer
// generator used throughout this toolkit to draw primes and curve
// parameters. It precomputes an irrational square root of the seed and
// combines it with an externally supplied, atomically advanced counter so
// independent callers can fork streams from the same generator.
package prng

import (
	"math/big"
	"sync/atomic"

	"github.com/cryptolab/toolkit/internal/numtheory"
)

// precisionBits bounds the big.Float mantissa used for sqrt_m and every
// derived product. It is generous relative to the bit widths this toolkit
// ever asks for (the largest counter value multiplied against sqrt_m still
// needs only a few hundred bits of mantissa to keep the fractional part
// exact enough to match the reference sequence).
const precisionBits = 512

// PRNG is a deterministic pseudo-random integer generator parameterised by
// a 32-bit seed. Its precomputed sqrt_m is immutable and safe to share
// across goroutines; pair it with a Counter (also goroutine-safe) to draw
// independent streams.
type PRNG struct {
	sqrtM *big.Float
}

// New builds a PRNG from a seed, incrementing it until its square root is
// irrational (New never returns a generator built on a perfect square,
// since an integer sqrt_m would make frac(n*sqrt_m) zero for every n, so
// Take would always return a).
func New(seed uint32) *PRNG {
	s := uint64(seed)
	for {
		bigS := new(big.Int).SetUint64(s)
		root := new(big.Int).Sqrt(bigS)
		square := new(big.Int).Mul(root, root)
		if square.Cmp(bigS) != 0 {
			break
		}
		s++
	}
	sqrtM := new(big.Float).SetPrec(precisionBits).SetUint64(s)
	sqrtM.Sqrt(sqrtM)
	return &PRNG{sqrtM: sqrtM}
}

// Counter is the external, monotonically increasing, fetch-and-increment
// counter threaded through Take calls. It is safe for concurrent use; the
// sequence of values handed to any single caller is determined only by the
// counter values that caller happens to consume.
type Counter struct {
	v uint64
}

// NewCounter returns a Counter whose first Take call observes `start`.
func NewCounter(start uint64) *Counter {
	return &Counter{v: start}
}

// next performs fetch-then-increment: it returns the counter's current
// value and advances it by one.
func (c *Counter) next() uint64 {
	return atomic.AddUint64(&c.v, 1) - 1
}

// Take returns a + floor(frac(n*sqrt_m) * (b-a+1)) where n is the next
// value fetched from counter. Concurrent callers sharing a Counter obtain
// distinct, deterministic indices into the same underlying sequence.
func (p *PRNG) Take(a, b *big.Int, counter *Counter) *big.Int {
	n := counter.next()

	nFloat := new(big.Float).SetPrec(precisionBits).SetUint64(n)
	product := new(big.Float).SetPrec(precisionBits).Mul(nFloat, p.sqrtM)

	intPart, _ := product.Int(nil)
	frac := new(big.Float).SetPrec(precisionBits).SetInt(intPart)
	frac.Sub(product, frac)

	span := new(big.Int).Sub(b, a)
	span.Add(span, big.NewInt(1))
	spanFloat := new(big.Float).SetPrec(precisionBits).SetInt(span)

	scaled := new(big.Float).SetPrec(precisionBits).Mul(frac, spanFloat)
	scaledInt, _ := scaled.Int(nil)

	return new(big.Int).Add(a, scaledInt)
}

// TakeUneven is Take with the least-significant bit forced to 1.
func (p *PRNG) TakeUneven(a, b *big.Int, counter *Counter) *big.Int {
	v := p.Take(a, b, counter)
	return v.Or(v, big.NewInt(1))
}

// Stream binds a PRNG to one Counter so it can be passed anywhere a
// numtheory.RandomSource is expected, letting the generator serve as its
// own witness source for the primality test.
type Stream struct {
	PRNG    *PRNG
	Counter *Counter
}

// NewStream pairs prng with counter as a numtheory.RandomSource.
func NewStream(p *PRNG, counter *Counter) Stream {
	return Stream{PRNG: p, Counter: counter}
}

// Take implements numtheory.RandomSource.
func (s Stream) Take(a, b *big.Int) *big.Int {
	return s.PRNG.Take(a, b, s.Counter)
}

var _ numtheory.RandomSource = Stream{}

var (
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
)

// GeneratePrime repeatedly draws odd candidates uniformly in
// [2^(bits-1), 2^bits) via TakeUneven and returns the first one that
// passes svc.IsProbablyPrime with the given number of Miller-Rabin rounds.
func (p *PRNG) GeneratePrime(bits uint, rounds int, counter *Counter, svc numtheory.Service) *big.Int {
	lower := new(big.Int).Lsh(big1, bits-1)
	upper := new(big.Int).Lsh(big1, bits)
	upper.Sub(upper, big1)

	stream := NewStream(p, counter)
	candidate := p.TakeUneven(lower, upper, counter)
	for !svc.IsProbablyPrime(candidate, rounds, stream) {
		candidate = p.TakeUneven(lower, upper, counter)
	}
	return candidate
}

// GenerateSafePrimeWithPrimitiveRoot generates a prime p of the requested
// bit width such that (p-1)/2 is also prime, then returns p together with
// a primitive root g of (Z/pZ)*: the first g drawn via Take from
// [2, p-2] that satisfies g^((p-1)/2) = p-1 (mod p).
func (p *PRNG) GenerateSafePrimeWithPrimitiveRoot(bits uint, rounds int, counter *Counter, svc numtheory.Service) (prime, root *big.Int) {
	stream := NewStream(p, counter)

	var candidate, sourcePrime *big.Int
	for {
		candidate = p.GeneratePrime(bits, rounds, counter, svc)
		sourcePrime = new(big.Int).Sub(candidate, big1)
		sourcePrime.Rsh(sourcePrime, 1)
		if svc.IsProbablyPrime(sourcePrime, rounds, stream) {
			break
		}
	}

	pMinus1 := new(big.Int).Sub(candidate, big1)
	pMinus2 := new(big.Int).Sub(candidate, big2)

	var g *big.Int
	for {
		g = p.Take(big2, pMinus2, counter)
		if svc.ModPow(g, sourcePrime, candidate).Cmp(pMinus1) == 0 {
			break
		}
	}
	return candidate, g
}

// GetDistinctPrimes draws two distinct primes whose bit widths split the
// requested total as evenly as possible (the larger half first when the
// total is odd), redrawing the second if it collides with the first. It
// always starts from a fresh counter seeded at 1.
func (p *PRNG) GetDistinctPrimes(bits uint, rounds int, svc numtheory.Service) (p1, p2 *big.Int) {
	var sizeOne, sizeTwo uint
	if bits%2 == 0 {
		sizeOne, sizeTwo = bits/2, bits/2
	} else {
		sizeOne, sizeTwo = bits/2+1, bits/2
	}

	counter := NewCounter(1)
	p1 = p.GeneratePrime(sizeOne, rounds, counter, svc)
	p2 = p.GeneratePrime(sizeTwo, rounds, counter, svc)
	for p1.Cmp(p2) == 0 {
		p2 = p.GeneratePrime(sizeTwo, rounds, counter, svc)
	}
	return p1, p2
}
