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

// Package numtheory implements the arbitrary-precision number-theoretic
// primitives the rest of this toolkit is built on: modular exponentiation,
// the extended Euclidean algorithm, modular inverse and Miller-Rabin
// probabilistic primality testing.
//
// Two interchangeable implementations are exported: Fast delegates the
// heavy lifting to math/big's own Exp/GCD, while Reference works the
// algorithms out from first principles. Both satisfy Service and must
// agree on every input; the package tests cross-check them directly.
package numtheory

import (
	"errors"
	"math/big"
)

// ErrNoInverse is returned by ModInverse when n has no multiplicative
// inverse modulo m, i.e. gcd(n, m) != 1.
var ErrNoInverse = errors.New("numtheory: no modular inverse exists")

// RandomSource supplies uniformly distributed integers in [a, b] to the
// Miller-Rabin witness search. internal/prng.Stream implements this.
type RandomSource interface {
	Take(a, b *big.Int) *big.Int
}

// ExtendedEuclidResult is the triple (G, X, Y) with G = gcd(a,b) >= 0 and
// G = X*a + Y*b.
type ExtendedEuclidResult struct {
	G *big.Int
	X *big.Int
	Y *big.Int
}

// Service is the common contract both number-theory implementations
// satisfy.
type Service interface {
	ModPow(base, exponent, modulus *big.Int) *big.Int
	ExtendedGCD(a, b *big.Int) ExtendedEuclidResult
	ModInverse(n, modulus *big.Int) (*big.Int, error)
	IsProbablyPrime(p *big.Int, rounds int, source RandomSource) bool
}

var (
	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
)

// smallPrimes is the trial-division sieve used to reject obviously
// composite candidates before paying for Miller-Rabin rounds.
var smallPrimes = sieveUpTo(500)

func sieveUpTo(limit int) []int64 {
	isComposite := make([]bool, limit+1)
	var primes []int64
	for i := 2; i <= limit; i++ {
		if isComposite[i] {
			continue
		}
		primes = append(primes, int64(i))
		for j := i * i; j <= limit; j += i {
			isComposite[j] = true
		}
	}
	return primes
}

// failsPrimitiveChecks runs the cheap rejections; they only work for
// candidates larger than 500.
func failsPrimitiveChecks(p *big.Int) bool {
	if p.Bit(0) == 0 {
		return true
	}
	for _, sp := range smallPrimes {
		d := big.NewInt(sp)
		if p.Cmp(d) == 0 {
			continue
		}
		if new(big.Int).Mod(p, d).Sign() == 0 {
			return true
		}
	}
	return false
}

// millerRabinRound runs one Miller-Rabin witness test of a against the
// p-1 = 2^s * d decomposition.
func millerRabinRound(svc Service, p, s, d, a *big.Int) bool {
	pMinus1 := new(big.Int).Sub(p, big1)
	x := svc.ModPow(a, d, p)

	if x.Cmp(big1) == 0 || x.Cmp(pMinus1) == 0 {
		return true
	}

	r := big.NewInt(0)
	for r.Cmp(s) < 0 {
		x = svc.ModPow(x, big2, p)
		if x.Cmp(pMinus1) == 0 {
			return true
		}
		r.Add(r, big1)
	}
	return false
}

// millerRabin draws `rounds` independent witnesses and returns true only
// if every one of them passes. Witness rounds are independent and may
// safely run concurrently; each round runs in its own goroutine.
func millerRabin(svc Service, p *big.Int, rounds int, source RandomSource) bool {
	d := new(big.Int).Sub(p, big1)
	s := big.NewInt(0)
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s.Add(s, big1)
	}

	results := make(chan bool, rounds)
	pMinus1 := new(big.Int).Sub(p, big1)
	for i := 0; i < rounds; i++ {
		go func() {
			a := source.Take(big2, pMinus1)
			for new(big.Int).Mod(p, a).Sign() == 0 {
				a = source.Take(big2, pMinus1)
			}
			results <- millerRabinRound(svc, p, s, d, a)
		}()
	}
	ok := true
	for i := 0; i < rounds; i++ {
		if !<-results {
			ok = false
		}
	}
	return ok
}
