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

// Package rsa implements textbook RSA keygen, encrypt, decrypt, sign and
// verify over math/big integers. There is deliberately no padding (no
// OAEP/PSS) — this is an educational core, not a production scheme;
// messages outside [0, n) are silently reduced modulo n by modular
// exponentiation, and callers are responsible for splitting input to
// respect that bound.
package rsa

import (
	"errors"
	"math/big"

	"github.com/cryptolab/toolkit/internal/numtheory"
	"github.com/cryptolab/toolkit/internal/prng"
)

// ErrKeyGeneration is returned when the e-selection loop exhausts phi
// without finding a value coprime to it.
var ErrKeyGeneration = errors.New("rsa: no e coprime to phi found below phi")

// PublicKey is (e, n).
type PublicKey struct {
	E *big.Int
	N *big.Int
}

// PrivateKey is (d, n). p, q and phi are deliberately not retained on the
// key value once generated.
type PrivateKey struct {
	D *big.Int
	N *big.Int
}

// KeyPair is a freshly generated public/private pair.
type KeyPair struct {
	Public  PublicKey
	Private PrivateKey
}

var (
	big1 = big.NewInt(1)
	big3 = big.NewInt(3)
)

// Keygen produces an RSA key pair of the requested bit width.
//
//  1. p, q are drawn via the PRNG's distinct-prime generator; n = p*q,
//     phi = (p-1)(q-1).
//  2. e is drawn from [3, phi) via the PRNG and incremented until it is
//     coprime to phi; ErrKeyGeneration if none is found below phi.
//  3. d is the modular inverse of e mod phi.
func Keygen(svc numtheory.Service, bits uint, mrRounds int, seed uint32) (KeyPair, error) {
	generator := prng.New(seed)
	p, q := generator.GetDistinctPrimes(bits, mrRounds, svc)

	n := new(big.Int).Mul(p, q)
	pMinus1 := new(big.Int).Sub(p, big1)
	qMinus1 := new(big.Int).Sub(q, big1)
	phi := new(big.Int).Mul(pMinus1, qMinus1)

	e, err := generateE(svc, generator, phi)
	if err != nil {
		return KeyPair{}, err
	}
	d, err := svc.ModInverse(e, phi)
	if err != nil {
		return KeyPair{}, err
	}

	return KeyPair{
		Public:  PublicKey{E: e, N: n},
		Private: PrivateKey{D: d, N: n},
	}, nil
}

// generateE draws a candidate e in [3, phi-1] and increments it until it
// is coprime to phi; the search only continues while e < phi.
func generateE(svc numtheory.Service, generator *prng.PRNG, phi *big.Int) (*big.Int, error) {
	counter := prng.NewCounter(1)
	phiMinus1 := new(big.Int).Sub(phi, big1)
	e := generator.Take(big3, phiMinus1, counter)

	for e.Cmp(phi) < 0 {
		if svc.ExtendedGCD(e, phi).G.Cmp(big1) == 0 {
			return e, nil
		}
		e = new(big.Int).Add(e, big1)
	}
	return nil, ErrKeyGeneration
}

// Encrypt returns m^e mod n for m in [0, n).
func Encrypt(svc numtheory.Service, pub PublicKey, m *big.Int) *big.Int {
	return svc.ModPow(m, pub.E, pub.N)
}

// Decrypt returns c^d mod n for c in [0, n).
func Decrypt(svc numtheory.Service, priv PrivateKey, c *big.Int) *big.Int {
	return svc.ModPow(c, priv.D, priv.N)
}

// Sign returns m^d mod n.
func Sign(svc numtheory.Service, priv PrivateKey, m *big.Int) *big.Int {
	return svc.ModPow(m, priv.D, priv.N)
}

// Verify reports whether sigma^e mod n == m.
func Verify(svc numtheory.Service, pub PublicKey, m, sigma *big.Int) bool {
	return svc.ModPow(sigma, pub.E, pub.N).Cmp(m) == 0
}
