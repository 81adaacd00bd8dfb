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

package rsa_test

import (
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/cryptolab/toolkit/internal/numtheory"
	"github.com/cryptolab/toolkit/rsa"
)

func TestRSA(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "rsa Suite")
}

var _ = Describe("Keygen/Encrypt/Decrypt", func() {
	svc := numtheory.NewFast()

	It("round-trips arbitrary messages under n", func() {
		pair, err := rsa.Keygen(svc, 64, 12, 7)
		Expect(err).NotTo(HaveOccurred())

		for _, m := range []int64{0, 1, 2, 12345, 999999} {
			mm := big.NewInt(m)
			if mm.Cmp(pair.Public.N) >= 0 {
				continue
			}
			c := rsa.Encrypt(svc, pair.Public, mm)
			got := rsa.Decrypt(svc, pair.Private, c)
			Expect(got).To(Equal(mm))
		}
	})

	It("is homomorphic under multiplication mod n", func() {
		pair, err := rsa.Keygen(svc, 64, 12, 11)
		Expect(err).NotTo(HaveOccurred())

		m1, m2 := big.NewInt(17), big.NewInt(23)
		c1 := rsa.Encrypt(svc, pair.Public, m1)
		c2 := rsa.Encrypt(svc, pair.Public, m2)

		product := new(big.Int).Mod(new(big.Int).Mul(c1, c2), pair.Public.N)
		decrypted := rsa.Decrypt(svc, pair.Private, product)

		want := new(big.Int).Mod(new(big.Int).Mul(m1, m2), pair.Public.N)
		Expect(decrypted).To(Equal(want))
	})
})

var _ = Describe("Sign/Verify", func() {
	svc := numtheory.NewFast()

	It("verifies a signature produced by the signer's own key", func() {
		pair, err := rsa.Keygen(svc, 64, 12, 19)
		Expect(err).NotTo(HaveOccurred())

		m := big.NewInt(424242)
		if m.Cmp(pair.Public.N) >= 0 {
			m.Mod(m, pair.Public.N)
		}
		sig := rsa.Sign(svc, pair.Private, m)
		Expect(rsa.Verify(svc, pair.Public, m, sig)).To(BeTrue())
	})

	It("rejects a signature checked against a different message", func() {
		pair, err := rsa.Keygen(svc, 64, 12, 23)
		Expect(err).NotTo(HaveOccurred())

		m := big.NewInt(1)
		mPrime := big.NewInt(2)
		sig := rsa.Sign(svc, pair.Private, m)
		Expect(rsa.Verify(svc, pair.Public, mPrime, sig)).To(BeFalse())
	})
})
