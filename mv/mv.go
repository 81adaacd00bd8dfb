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

// Package mv implements Menezes-Vanstone elliptic-curve encryption and
// ECDSA-shaped signing over the curves built by package ecc. Unlike RSA,
// encryption draws fresh per-message randomness; Encrypt and Sign accept
// the caller's own generator so tests (and callers who want reproducible
// ciphertexts) can supply a seeded one.
package mv

import (
	"crypto/sha256"
	"errors"
	"math/big"

	"github.com/cryptolab/toolkit/ecc"
	"github.com/cryptolab/toolkit/internal/numtheory"
	"github.com/cryptolab/toolkit/internal/prng"
)

// ErrInvalidPlaintext is returned when Encrypt is given a coordinate
// outside [1, p).
var ErrInvalidPlaintext = errors.New("mv: plaintext coordinate out of range")

// ErrInvalidSignature names the case of r or s falling outside [1, q).
// Verify does not return it: it reports such a signature by returning
// false.
var ErrInvalidSignature = errors.New("mv: signature components out of range")

var (
	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
)

// PublicKey is (E, Y) with Y = x*G.
type PublicKey struct {
	Curve *ecc.Curve
	Y     ecc.Point
}

// PrivateKey is (E, x), 1 <= x < q.
type PrivateKey struct {
	Curve *ecc.Curve
	X     *big.Int
}

// KeyPair is a freshly generated public/private pair sharing one curve.
type KeyPair struct {
	Public  PublicKey
	Private PrivateKey
}

// Ciphertext is (A, b1, b2): A is a curve point, b1 and b2 lie in [1, p).
type Ciphertext struct {
	A  ecc.Point
	B1 *big.Int
	B2 *big.Int
}

// Signature is (r, s), both in [1, q).
type Signature struct {
	R *big.Int
	S *big.Int
}

// Keygen builds a secure curve for the given n, bits and Miller-Rabin
// round count, then draws a private scalar x in [1, q-1] whose public
// point Y = x*G has neither coordinate zero.
func Keygen(svc numtheory.Service, n *big.Int, bits uint, mrRounds int, seed uint32) (KeyPair, error) {
	generator := prng.New(seed)
	curve, err := ecc.SecureCurve(svc, generator, n, bits, mrRounds)
	if err != nil {
		return KeyPair{}, err
	}

	counter := prng.NewCounter(1)
	qMinus1 := new(big.Int).Sub(curve.Q, big1)
	var x *big.Int
	var y ecc.Point
	for {
		x = generator.Take(big1, qMinus1, counter)
		y = curve.ScalarMult(svc, curve.G, x)
		if !y.Inf && y.X.Sign() != 0 && y.Y.Sign() != 0 {
			break
		}
	}

	return KeyPair{
		Public:  PublicKey{Curve: curve, Y: y},
		Private: PrivateKey{Curve: curve, X: x},
	}, nil
}

// Encrypt draws k from the supplied generator (fresh randomness per call,
// not reused across messages), requires k*Y to have both coordinates
// non-zero, and masks (m1, m2) multiplicatively by that shared point.
func Encrypt(svc numtheory.Service, generator *prng.PRNG, pub PublicKey, m1, m2 *big.Int) (Ciphertext, error) {
	p := pub.Curve.P
	if m1.Sign() < 1 || m1.Cmp(p) >= 0 || m2.Sign() < 1 || m2.Cmp(p) >= 0 {
		return Ciphertext{}, ErrInvalidPlaintext
	}

	counter := prng.NewCounter(1)
	qMinus1 := new(big.Int).Sub(pub.Curve.Q, big1)

	var k *big.Int
	var shared ecc.Point
	for {
		k = generator.Take(big1, qMinus1, counter)
		shared = pub.Curve.ScalarMult(svc, pub.Y, k)
		if !shared.Inf && shared.X.Sign() != 0 && shared.Y.Sign() != 0 {
			break
		}
	}

	a := pub.Curve.ScalarMult(svc, pub.Curve.G, k)
	b1 := new(big.Int).Mod(new(big.Int).Mul(shared.X, m1), p)
	b2 := new(big.Int).Mod(new(big.Int).Mul(shared.Y, m2), p)
	return Ciphertext{A: a, B1: b1, B2: b2}, nil
}

// Decrypt recovers (m1, m2) from c using the shared point x*A.
func Decrypt(svc numtheory.Service, priv PrivateKey, c Ciphertext) (m1, m2 *big.Int, err error) {
	p := priv.Curve.P
	shared := priv.Curve.ScalarMult(svc, c.A, priv.X)

	invC1, err := svc.ModInverse(shared.X, p)
	if err != nil {
		return nil, nil, err
	}
	invC2, err := svc.ModInverse(shared.Y, p)
	if err != nil {
		return nil, nil, err
	}

	m1 = new(big.Int).Mod(new(big.Int).Mul(c.B1, invC1), p)
	m2 = new(big.Int).Mod(new(big.Int).Mul(c.B2, invC2), p)
	return m1, m2, nil
}

// Sign produces an ECDSA-shaped signature of message over E, drawing k
// from the supplied generator and retrying on the degenerate r = 0 or
// s = 0 cases.
func Sign(svc numtheory.Service, generator *prng.PRNG, priv PrivateKey, message []byte) Signature {
	h := digestInt(message)
	q := priv.Curve.Q
	counter := prng.NewCounter(1)
	qMinus1 := new(big.Int).Sub(q, big1)

	for {
		k := generator.Take(big1, qMinus1, counter)
		r := new(big.Int).Mod(priv.Curve.ScalarMult(svc, priv.Curve.G, k).X, q)
		if r.Sign() == 0 {
			continue
		}

		kInv, err := svc.ModInverse(k, q)
		if err != nil {
			continue
		}
		xr := new(big.Int).Mul(priv.X, r)
		s := new(big.Int).Mod(new(big.Int).Mul(kInv, new(big.Int).Add(h, xr)), q)
		if s.Sign() == 0 {
			continue
		}
		return Signature{R: r, S: s}
	}
}

// Verify reports whether sig is a valid signature of message under pub.
func Verify(svc numtheory.Service, pub PublicKey, sig Signature, message []byte) bool {
	q := pub.Curve.Q
	if sig.R.Sign() < 1 || sig.R.Cmp(q) >= 0 || sig.S.Sign() < 1 || sig.S.Cmp(q) >= 0 {
		return false
	}

	h := digestInt(message)
	w, err := svc.ModInverse(sig.S, q)
	if err != nil {
		return false
	}
	u1 := new(big.Int).Mod(new(big.Int).Mul(h, w), q)
	u2 := new(big.Int).Mod(new(big.Int).Mul(sig.R, w), q)

	p1 := pub.Curve.ScalarMult(svc, pub.Curve.G, u1)
	p2 := pub.Curve.ScalarMult(svc, pub.Y, u2)
	sum := pub.Curve.Add(svc, p1, p2)
	if sum.Inf {
		return false
	}
	return new(big.Int).Mod(sum.X, q).Cmp(sig.R) == 0
}

// digestInt returns SHA-256(message) interpreted as a big-endian integer.
func digestInt(message []byte) *big.Int {
	sum := sha256.Sum256(message)
	return new(big.Int).SetBytes(sum[:])
}
