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

package numtheory_test

import (
	"math/big"

	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/cryptolab/toolkit/internal/numtheory"
)

func bi(s int64) *big.Int { return big.NewInt(s) }

var services = map[string]numtheory.Service{
	"fast":      numtheory.NewFast(),
	"reference": numtheory.NewReference(),
}

var _ = Describe("ModPow", func() {
	for name, svc := range services {
		svc := svc
		Context(name, func() {
			table.DescribeTable("concrete scenarios", func(base, exp, mod, want int64) {
				got := svc.ModPow(bi(base), bi(exp), bi(mod))
				Expect(got).To(Equal(bi(want)))
			},
				table.Entry("561563^1300 mod 564", int64(561563), int64(1300), int64(564), int64(205)),
				table.Entry("37^2 mod 89", int64(37), int64(2), int64(89), int64(34)),
				table.Entry("a^0 mod m (m>1)", int64(7), int64(0), int64(11), int64(1)),
			)

			It("returns 0 when modulus is 1", func() {
				Expect(svc.ModPow(bi(9), bi(3), bi(1))).To(Equal(bi(0)))
			})

			It("returns 0 when base is 0 and exponent positive", func() {
				Expect(svc.ModPow(bi(0), bi(5), bi(13))).To(Equal(bi(0)))
			})
		})
	}
})

var _ = Describe("ExtendedGCD", func() {
	for name, svc := range services {
		svc := svc
		Context(name, func() {
			It("matches the concrete scenario 315, 661643", func() {
				r := svc.ExtendedGCD(bi(315), bi(661643))
				Expect(r.G).To(Equal(bi(1)))
				Expect(r.X).To(Equal(bi(-319269)))
				Expect(r.Y).To(Equal(bi(152)))
			})

			table.DescribeTable("Bezout identity holds", func(a, b int64) {
				r := svc.ExtendedGCD(bi(a), bi(b))
				lhs := new(big.Int).Add(
					new(big.Int).Mul(r.X, bi(a)),
					new(big.Int).Mul(r.Y, bi(b)),
				)
				Expect(lhs).To(Equal(r.G))
				Expect(r.G.Sign()).To(BeNumerically(">=", 0))
			},
				table.Entry("48, 18", int64(48), int64(18)),
				table.Entry("-48, 18", int64(-48), int64(18)),
				table.Entry("48, -18", int64(48), int64(-18)),
				table.Entry("17, 13", int64(17), int64(13)),
			)
		})
	}
})

var _ = Describe("ModInverse", func() {
	for name, svc := range services {
		svc := svc
		Context(name, func() {
			It("computes modulo_inverse(5, 11) = 9", func() {
				r, err := svc.ModInverse(bi(5), bi(11))
				Expect(err).NotTo(HaveOccurred())
				Expect(r).To(Equal(bi(9)))
			})

			It("fails for modulo_inverse(78, 99)", func() {
				_, err := svc.ModInverse(bi(78), bi(99))
				Expect(err).To(MatchError(numtheory.ErrNoInverse))
			})
		})
	}
})

var _ = Describe("cross-implementation agreement", func() {
	It("Fast and Reference agree on ModPow", func() {
		fast := numtheory.NewFast()
		ref := numtheory.NewReference()
		Expect(fast.ModPow(bi(123456789), bi(987654), bi(1000000007))).
			To(Equal(ref.ModPow(bi(123456789), bi(987654), bi(1000000007))))
	})

	It("Fast and Reference agree on ExtendedGCD's gcd component", func() {
		fast := numtheory.NewFast()
		ref := numtheory.NewReference()
		Expect(fast.ExtendedGCD(bi(270), bi(192)).G).
			To(Equal(ref.ExtendedGCD(bi(270), bi(192)).G))
	})
})
