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

package textscheme

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/cryptolab/toolkit/ecc"
	"github.com/cryptolab/toolkit/internal/codec"
	"github.com/cryptolab/toolkit/internal/numtheory"
	"github.com/cryptolab/toolkit/internal/prng"
	"github.com/cryptolab/toolkit/mv"
)

// ErrParseBigInt is returned when a caller-supplied string that should
// carry a decimal integer (e.g. a signature component) does not parse as
// one.
var ErrParseBigInt = errors.New("textscheme: not a decimal integer")

// paddingFlag marks, as the first byte of an MV-text ciphertext, whether the
// final plaintext block was synthetic padding (see EncryptMV doc comment).
const (
	paddingFlagNone = '0'
	paddingFlagUsed = '1'
)

// mvCipherElemCount is the number of integers serialised per MV ciphertext:
// A.X, A.Y, B1, B2.
const mvCipherElemCount = 4

// EncryptMV encodes plaintext into g-adic blocks sized against the curve's
// prime modulus, pairs them as (m1, m2), and encrypts each pair.
//
// When the block count is odd, the final pair repeats the last real block
// as both components, and a single '0'/'1' flag byte is prepended to the
// ciphertext recording whether that padding happened, so DecryptMV can
// unambiguously strip it even when the plaintext legitimately ends in two
// identical blocks.
func EncryptMV(svc numtheory.Service, generator *prng.PRNG, pub mv.PublicKey, radix *big.Int, plaintext string) (string, error) {
	k := plaintextBlockSize(pub.Curve.P, radix)
	plainKey, err := codec.NewKey(radix, k)
	if err != nil {
		return "", err
	}
	cipherKey, err := codec.NewKey(radix, k+1)
	if err != nil {
		return "", err
	}

	blocks := codec.Encode(plaintext, plainKey)
	padded := false
	if len(blocks)%2 == 1 {
		last := blocks[len(blocks)-1]
		blocks = append(blocks, new(big.Int).Set(last))
		padded = true
	}

	var sb strings.Builder
	if padded {
		sb.WriteByte(paddingFlagUsed)
	} else {
		sb.WriteByte(paddingFlagNone)
	}

	for i := 0; i < len(blocks); i += 2 {
		ct, err := mv.Encrypt(svc, generator, pub, blocks[i], blocks[i+1])
		if err != nil {
			return "", err
		}
		sb.WriteString(codec.DecodePadded([]*big.Int{ct.A.X, ct.A.Y, ct.B1, ct.B2}, cipherKey))
	}
	return sb.String(), nil
}

// DecryptMV reverses EncryptMV: it strips the leading padding flag, decodes
// the ciphertext in groups of four g-adic blocks per MV ciphertext, decrypts
// each pair, and drops the final synthetic block if the flag says it was
// padding before re-assembling plaintext.
func DecryptMV(svc numtheory.Service, priv mv.PrivateKey, radix *big.Int, ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}
	padded := ciphertext[0] == paddingFlagUsed
	body := []rune(ciphertext)[1:]

	k := plaintextBlockSize(priv.Curve.P, radix)
	cipherKey, err := codec.NewKey(radix, k+1)
	if err != nil {
		return "", err
	}
	plainKey, err := codec.NewKey(radix, k)
	if err != nil {
		return "", err
	}

	groupLen := (k + 1) * mvCipherElemCount
	if len(body)%groupLen != 0 {
		return "", fmt.Errorf("textscheme: MV ciphertext length %d is not a multiple of group length %d", len(body), groupLen)
	}

	var blocks []*big.Int
	for start := 0; start < len(body); start += groupLen {
		elems := codec.Encode(string(body[start:start+groupLen]), cipherKey)
		ct := mv.Ciphertext{
			A:  ecc.NewPoint(elems[0], elems[1]),
			B1: elems[2],
			B2: elems[3],
		}
		m1, m2, err := mv.Decrypt(svc, priv, ct)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, m1, m2)
	}

	if padded && len(blocks) > 0 {
		blocks = blocks[:len(blocks)-1]
	}
	return codec.Decode(blocks, plainKey), nil
}

// SignMV hashes message with SHA-256 inside mv.Sign (which already does so
// internally over raw bytes, needing no codec split since the digest is
// consumed directly as a scalar mod q) and renders the resulting (r, s)
// signature as a colon-separated decimal pair.
func SignMV(svc numtheory.Service, generator *prng.PRNG, priv mv.PrivateKey, message string) string {
	sig := mv.Sign(svc, generator, priv, []byte(message))
	return sig.R.String() + ":" + sig.S.String()
}

// VerifyMV parses a colon-separated decimal (r, s) pair produced by SignMV
// and verifies it against message.
func VerifyMV(svc numtheory.Service, pub mv.PublicKey, signature, message string) (bool, error) {
	parts := strings.SplitN(signature, ":", 2)
	if len(parts) != 2 {
		return false, fmt.Errorf("textscheme: malformed MV signature %q", signature)
	}
	r, ok := new(big.Int).SetString(parts[0], 10)
	if !ok {
		return false, fmt.Errorf("%w: MV signature component %q", ErrParseBigInt, parts[0])
	}
	s, ok := new(big.Int).SetString(parts[1], 10)
	if !ok {
		return false, fmt.Errorf("%w: MV signature component %q", ErrParseBigInt, parts[1])
	}

	sig := mv.Signature{R: r, S: s}
	return mv.Verify(svc, pub, sig, []byte(message)), nil
}
