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

// Package textscheme composes the block codec (internal/codec) with the
// RSA and MV scheme cores so callers can encrypt, decrypt, sign and verify
// arbitrary Unicode text instead of raw integers.
//
// RSA-over-text derives its codec block size from the modulus: plaintext is
// split into blocks of size k = floor(log_radix(n)), encrypted block by
// block, then re-serialised using block size k+1 (ciphertext blocks can be
// one digit longer than plaintext blocks since RSA's ciphertext space is the
// same [0, n) as its plaintext space, but g-adic re-encoding needs headroom
// for values right up against n-1). Signing operates on the SHA-256 digest's
// decimal string representation, itself run back through the same codec, so
// verification can compare block by block.
package textscheme

import (
	"crypto/sha256"
	"errors"
	"math/big"

	"github.com/cryptolab/toolkit/internal/bignum"
	"github.com/cryptolab/toolkit/internal/codec"
	"github.com/cryptolab/toolkit/internal/numtheory"
	"github.com/cryptolab/toolkit/rsa"
)

// ErrSignatureMismatch is returned by VerifyRSA when the signature's block
// count does not match the message digest's, which can only happen if the
// signature was produced under a different key or radix.
var ErrSignatureMismatch = errors.New("textscheme: signature block count does not match message")

// plaintextBlockSize returns floor(log_radix(n)), floored up to 1: even a
// modulus smaller than radix must still occupy at least one codec block.
func plaintextBlockSize(n, radix *big.Int) int {
	k := bignum.Ilog(n, radix)
	if k < 1 {
		return 1
	}
	return int(k)
}

// EncryptRSA encodes plaintext into g-adic blocks sized against pub.N,
// encrypts each block, and re-serialises the ciphertext blocks one radix
// digit wider.
func EncryptRSA(svc numtheory.Service, pub rsa.PublicKey, radix *big.Int, plaintext string) (string, error) {
	k := plaintextBlockSize(pub.N, radix)
	plainKey, err := codec.NewKey(radix, k)
	if err != nil {
		return "", err
	}
	cipherKey, err := codec.NewKey(radix, k+1)
	if err != nil {
		return "", err
	}

	blocks := codec.Encode(plaintext, plainKey)
	encrypted := make([]*big.Int, len(blocks))
	for i, b := range blocks {
		encrypted[i] = rsa.Encrypt(svc, pub, b)
	}
	return codec.DecodePadded(encrypted, cipherKey), nil
}

// DecryptRSA reverses EncryptRSA: it decodes ciphertext with the k+1-sized
// key, decrypts each block, and decodes the result with the k-sized key.
func DecryptRSA(svc numtheory.Service, priv rsa.PrivateKey, radix *big.Int, ciphertext string) (string, error) {
	k := plaintextBlockSize(priv.N, radix)
	cipherKey, err := codec.NewKey(radix, k+1)
	if err != nil {
		return "", err
	}
	plainKey, err := codec.NewKey(radix, k)
	if err != nil {
		return "", err
	}

	blocks := codec.Encode(ciphertext, cipherKey)
	decrypted := make([]*big.Int, len(blocks))
	for i, b := range blocks {
		decrypted[i] = rsa.Decrypt(svc, priv, b)
	}
	return codec.Decode(decrypted, plainKey), nil
}

// SignRSA hashes message with SHA-256, encodes the digest's decimal string
// through the same codec EncryptRSA uses, signs each resulting block, and
// serialises the signature blocks one radix digit wider.
func SignRSA(svc numtheory.Service, priv rsa.PrivateKey, radix *big.Int, message string) (string, error) {
	k := plaintextBlockSize(priv.N, radix)
	digestKey, err := codec.NewKey(radix, k)
	if err != nil {
		return "", err
	}
	sigKey, err := codec.NewKey(radix, k+1)
	if err != nil {
		return "", err
	}

	digestBlocks := codec.Encode(digestDecimal(message), digestKey)
	sigBlocks := make([]*big.Int, len(digestBlocks))
	for i, b := range digestBlocks {
		sigBlocks[i] = rsa.Sign(svc, priv, b)
	}
	return codec.DecodePadded(sigBlocks, sigKey), nil
}

// VerifyRSA reverses SignRSA's serialisation and verifies each digest block
// against its corresponding signature block.
func VerifyRSA(svc numtheory.Service, pub rsa.PublicKey, radix *big.Int, message, signature string) (bool, error) {
	k := plaintextBlockSize(pub.N, radix)
	digestKey, err := codec.NewKey(radix, k)
	if err != nil {
		return false, err
	}
	sigKey, err := codec.NewKey(radix, k+1)
	if err != nil {
		return false, err
	}

	digestBlocks := codec.Encode(digestDecimal(message), digestKey)
	sigBlocks := codec.Encode(signature, sigKey)
	if len(digestBlocks) != len(sigBlocks) {
		return false, ErrSignatureMismatch
	}

	for i := range digestBlocks {
		if !rsa.Verify(svc, pub, digestBlocks[i], sigBlocks[i]) {
			return false, nil
		}
	}
	return true, nil
}

// digestDecimal returns the decimal string representation of
// SHA-256(message) interpreted as a big-endian integer.
func digestDecimal(message string) string {
	sum := sha256.Sum256([]byte(message))
	return new(big.Int).SetBytes(sum[:]).String()
}
