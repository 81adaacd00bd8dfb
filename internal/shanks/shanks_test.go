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

package shanks_test

import (
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/cryptolab/toolkit/internal/numtheory"
	"github.com/cryptolab/toolkit/internal/shanks"
)

func TestShanks(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "shanks Suite")
}

func bi(s int64) *big.Int { return big.NewInt(s) }

var _ = Describe("Calculate", func() {
	for name, svc := range map[string]numtheory.Service{
		"fast":      numtheory.NewFast(),
		"reference": numtheory.NewReference(),
	} {
		svc := svc
		Context(name, func() {
			table.DescribeTable("concrete scenarios", func(base, element, modul, want int64) {
				r, err := shanks.Calculate(svc, bi(base), bi(element), bi(modul))
				Expect(err).NotTo(HaveOccurred())
				Expect(r.Logarithm).To(Equal(bi(want)))
			},
				table.Entry("8, 555, 677 -> 134", int64(8), int64(555), int64(677), int64(134)),
				table.Entry("11, 3, 29 -> 17", int64(11), int64(3), int64(29), int64(17)),
				table.Entry("10, 25, 97 -> 22", int64(10), int64(25), int64(97), int64(22)),
				table.Entry("3, 4, 7 -> 4", int64(3), int64(4), int64(7), int64(4)),
			)

			It("fails when base is not a primitive root", func() {
				_, err := shanks.Calculate(svc, bi(4), bi(6), bi(7))
				Expect(err).To(MatchError(shanks.ErrNoDiscreteLogarithm))
			})

			It("returns a sorted giant-step table", func() {
				r, err := shanks.Calculate(svc, bi(8), bi(555), bi(677))
				Expect(err).NotTo(HaveOccurred())
				Expect(r.Table).NotTo(BeEmpty())
				for i := 1; i < len(r.Table); i++ {
					Expect(r.Table[i-1].J.Cmp(r.Table[i].J)).To(Equal(-1))
				}
			})
		})
	}
})
