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

package codec_test

import (
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/cryptolab/toolkit/internal/codec"
)

func TestCodec(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "codec Suite")
}

func biFromString(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	Expect(ok).To(BeTrue())
	return n
}

var _ = Describe("Encode", func() {
	It("matches the concrete scenario for \"Da苉 ist eine Testnachricht\"", func() {
		key, err := codec.NewKey(big.NewInt(55296), 8)
		Expect(err).NotTo(HaveOccurred())

		got := codec.Encode("Da苉 ist eine Testnachricht", key)
		want := []*big.Int{
			biFromString("107492014297546449612193802144047136"),
			biFromString("159656113899559548508775364389320819"),
			biFromString("183367115080887221772378868133959779"),
			big.NewInt(5750900),
		}
		Expect(got).To(Equal(want))
	})

	It("returns nil for the empty string", func() {
		key, _ := codec.NewKey(big.NewInt(55296), 8)
		Expect(codec.Encode("", key)).To(BeEmpty())
	})

	It("rejects a non-positive radix", func() {
		_, err := codec.NewKey(big.NewInt(0), 8)
		Expect(err).To(HaveOccurred())
	})

	It("rejects a non-positive block size", func() {
		_, err := codec.NewKey(big.NewInt(55296), 0)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Decode", func() {
	It("round-trips through Encode", func() {
		key, _ := codec.NewKey(big.NewInt(55296), 8)
		m := "Da苉 ist eine Testnachricht"
		blocks := codec.Encode(m, key)
		Expect(codec.Decode(blocks, key)).To(Equal(m))
	})

	It("round-trips messages whose final block is short", func() {
		key, _ := codec.NewKey(big.NewInt(55296), 9)
		m := "a short tail"
		blocks := codec.Encode(m, key)
		Expect(codec.Decode(blocks, key)).To(Equal(m))
	})

	It("round-trips the empty string", func() {
		key, _ := codec.NewKey(big.NewInt(55296), 8)
		Expect(codec.Decode(codec.Encode("", key), key)).To(Equal(""))
	})
})

var _ = Describe("DecodePadded", func() {
	It("left-pads every block to the key's block size", func() {
		key, _ := codec.NewKey(big.NewInt(55296), 8)
		got := codec.DecodePadded([]*big.Int{big.NewInt(5750900)}, key)
		Expect([]rune(got)).To(HaveLen(8))
		Expect(got[:6]).To(Equal("\x00\x00\x00\x00\x00\x00"))
		Expect(got[6:]).To(Equal("ht"))
	})

	It("is invisible to a re-encode with the same key", func() {
		key, _ := codec.NewKey(big.NewInt(55296), 8)
		blocks := []*big.Int{big.NewInt(5750900), biFromString("159656113899559548508775364389320819")}
		padded := codec.DecodePadded(blocks, key)
		Expect(codec.Encode(padded, key)).To(Equal(blocks))
	})
})
