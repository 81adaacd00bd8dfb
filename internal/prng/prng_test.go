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

package prng_test

import (
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/cryptolab/toolkit/internal/numtheory"
	"github.com/cryptolab/toolkit/internal/prng"
)

func TestPRNG(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "prng Suite")
}

func bi(s int64) *big.Int { return big.NewInt(s) }

var _ = Describe("Take", func() {
	It("reproduces the seed-13 reference sequence over [1, 997]", func() {
		gen := prng.New(13)
		counter := prng.NewCounter(1)
		a, b := bi(1), bi(997)

		want := []int64{604, 211, 815, 421, 28, 632, 239, 842, 449, 56}
		for _, w := range want {
			Expect(gen.Take(a, b, counter)).To(Equal(bi(w)))
		}
	})

	It("always stays within [a, b]", func() {
		gen := prng.New(40)
		counter := prng.NewCounter(1)
		a, b := bi(500), bi(6000)

		for i := 0; i < 500; i++ {
			v := gen.Take(a, b, counter)
			Expect(v.Cmp(a)).To(BeNumerically(">=", 0))
			Expect(v.Cmp(b)).To(BeNumerically("<=", 0))
		}
	})
})

var _ = Describe("GeneratePrime", func() {
	svc := numtheory.NewFast()

	It("returns an odd probable prime of the requested width", func() {
		gen := prng.New(13)
		counter := prng.NewCounter(1)
		p := gen.GeneratePrime(16, 10, counter, svc)

		Expect(p.Bit(0)).To(Equal(uint(1)))
		Expect(p.BitLen()).To(Equal(16))
		Expect(p.ProbablyPrime(20)).To(BeTrue())
	})
})

var _ = Describe("GenerateSafePrimeWithPrimitiveRoot", func() {
	svc := numtheory.NewFast()

	It("returns p with (p-1)/2 prime and g of order p-1", func() {
		gen := prng.New(13)
		counter := prng.NewCounter(1)
		p, g := gen.GenerateSafePrimeWithPrimitiveRoot(8, 10, counter, svc)

		half := new(big.Int).Rsh(new(big.Int).Sub(p, bi(1)), 1)
		Expect(p.ProbablyPrime(20)).To(BeTrue())
		Expect(half.ProbablyPrime(20)).To(BeTrue())

		pMinus1 := new(big.Int).Sub(p, bi(1))
		Expect(new(big.Int).Exp(g, half, p)).To(Equal(pMinus1))
	})
})

var _ = Describe("GetDistinctPrimes", func() {
	svc := numtheory.NewFast()

	It("splits the requested width and never returns equal primes", func() {
		gen := prng.New(40)
		p1, p2 := gen.GetDistinctPrimes(33, 10, svc)

		Expect(p1.Cmp(p2)).NotTo(Equal(0))
		Expect(p1.BitLen()).To(Equal(17))
		Expect(p2.BitLen()).To(Equal(16))
		Expect(p1.ProbablyPrime(20)).To(BeTrue())
		Expect(p2.ProbablyPrime(20)).To(BeTrue())
	})
})

var _ = Describe("TakeUneven", func() {
	It("always returns an odd value within range", func() {
		gen := prng.New(23)
		counter := prng.NewCounter(1)
		a, b := bi(500), bi(6000)

		for i := 0; i < 500; i++ {
			v := gen.TakeUneven(a, b, counter)
			Expect(v.Cmp(a)).To(BeNumerically(">=", 0))
			Expect(v.Cmp(b)).To(BeNumerically("<=", 0))
			Expect(v.Bit(0)).To(Equal(uint(1)))
		}
	})
})
