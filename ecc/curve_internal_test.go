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

var _ = Describe("calculateBigN", func() {
	table.DescribeTable("counts points on y^2 = x^3 - n^2*x over Z_p",
		func(p, n int64, want int64) {
			for name, svc := range services {
				got := calculateBigN(svc, bi(p), bi(n))
				Expect(got.Cmp(bi(want))).To(Equal(0), name)
			}
		},
		table.Entry("p=17, n=2", int64(17), int64(2), int64(16)),
		table.Entry("p=13, n=1", int64(13), int64(1), int64(8)),
		table.Entry("p=17, n=1", int64(17), int64(1), int64(16)),
		table.Entry("p=13, n=3", int64(13), int64(3), int64(8)),
		table.Entry("p=13, n=2", int64(13), int64(2), int64(20)),
		table.Entry("p=509, n=2", int64(509), int64(2), int64(500)),
	)
})

var _ = Describe("calculateLegendreSymbol", func() {
	svc := numtheory.NewFast()

	It("agrees with squaring every residue mod a small prime", func() {
		p := bi(13)
		squares := map[string]bool{}
		for i := int64(1); i < 13; i++ {
			sq := new(big.Int).Mod(new(big.Int).Mul(bi(i), bi(i)), p)
			squares[sq.String()] = true
		}
		for i := int64(1); i < 13; i++ {
			want := bi(-1)
			if squares[bi(i).String()] {
				want = bi(1)
			}
			Expect(calculateLegendreSymbol(svc, bi(i), p)).To(Equal(want))
		}
	})
})
