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

package mv_test

import (
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/cryptolab/toolkit/internal/numtheory"
	"github.com/cryptolab/toolkit/internal/prng"
	"github.com/cryptolab/toolkit/mv"
)

func TestMV(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "mv Suite")
}

var _ = Describe("Keygen/Encrypt/Decrypt", func() {
	svc := numtheory.NewFast()

	It("round-trips plaintext pairs under p", func() {
		pair, err := mv.Keygen(svc, big.NewInt(5), 24, 8, 3)
		Expect(err).NotTo(HaveOccurred())

		encGen := prng.New(101)
		m1 := big.NewInt(7)
		m2 := big.NewInt(13)
		ct, err := mv.Encrypt(svc, encGen, pair.Public, m1, m2)
		Expect(err).NotTo(HaveOccurred())

		gotM1, gotM2, err := mv.Decrypt(svc, pair.Private, ct)
		Expect(err).NotTo(HaveOccurred())
		Expect(gotM1).To(Equal(m1))
		Expect(gotM2).To(Equal(m2))
	})

	It("rejects a plaintext coordinate outside [1, p)", func() {
		pair, err := mv.Keygen(svc, big.NewInt(5), 24, 8, 5)
		Expect(err).NotTo(HaveOccurred())

		encGen := prng.New(102)
		_, err = mv.Encrypt(svc, encGen, pair.Public, big.NewInt(0), big.NewInt(1))
		Expect(err).To(Equal(mv.ErrInvalidPlaintext))

		_, err = mv.Encrypt(svc, encGen, pair.Public, pair.Public.Curve.P, big.NewInt(1))
		Expect(err).To(Equal(mv.ErrInvalidPlaintext))
	})
})

var _ = Describe("Sign/Verify", func() {
	svc := numtheory.NewFast()

	It("verifies a signature produced by the signer's own key", func() {
		pair, err := mv.Keygen(svc, big.NewInt(5), 24, 8, 13)
		Expect(err).NotTo(HaveOccurred())

		signGen := prng.New(201)
		msg := []byte("a didactic message")
		sig := mv.Sign(svc, signGen, pair.Private, msg)
		Expect(mv.Verify(svc, pair.Public, sig, msg)).To(BeTrue())
	})

	It("rejects a signature checked against a different message", func() {
		pair, err := mv.Keygen(svc, big.NewInt(5), 24, 8, 17)
		Expect(err).NotTo(HaveOccurred())

		signGen := prng.New(202)
		sig := mv.Sign(svc, signGen, pair.Private, []byte("original"))
		Expect(mv.Verify(svc, pair.Public, sig, []byte("tampered"))).To(BeFalse())
	})

	It("rejects signature components outside [1, q)", func() {
		pair, err := mv.Keygen(svc, big.NewInt(5), 24, 8, 19)
		Expect(err).NotTo(HaveOccurred())

		bad := mv.Signature{R: big.NewInt(0), S: big.NewInt(1)}
		Expect(mv.Verify(svc, pair.Public, bad, []byte("msg"))).To(BeFalse())
	})
})
