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

// Package keyfile defines the YAML key-file shapes the cryptolab CLI reads
// and writes: plain structs with `yaml:` tags, big integers serialised as
// their decimal string form so they round-trip exactly through YAML.
package keyfile

import (
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/cryptolab/toolkit/ecc"
	"github.com/cryptolab/toolkit/mv"
	"github.com/cryptolab/toolkit/rsa"
)

// RSAPublicKey is (e, n) serialised as decimal strings.
type RSAPublicKey struct {
	E string `yaml:"e"`
	N string `yaml:"n"`
}

// RSAPrivateKey is (d, n) serialised as decimal strings.
type RSAPrivateKey struct {
	D string `yaml:"d"`
	N string `yaml:"n"`
}

// RSAKeyPair is the on-disk shape of an RSA key pair.
type RSAKeyPair struct {
	Public  RSAPublicKey  `yaml:"public"`
	Private RSAPrivateKey `yaml:"private"`
}

// FromRSAKeyPair converts a freshly generated core key pair to its on-disk
// form.
func FromRSAKeyPair(pair rsa.KeyPair) RSAKeyPair {
	return RSAKeyPair{
		Public:  RSAPublicKey{E: pair.Public.E.String(), N: pair.Public.N.String()},
		Private: RSAPrivateKey{D: pair.Private.D.String(), N: pair.Private.N.String()},
	}
}

// PublicKey parses the on-disk public key back into the core type.
func (k RSAKeyPair) PublicKey() (rsa.PublicKey, error) {
	e, ok := new(big.Int).SetString(k.Public.E, 10)
	if !ok {
		return rsa.PublicKey{}, fmt.Errorf("keyfile: invalid RSA e %q", k.Public.E)
	}
	n, ok := new(big.Int).SetString(k.Public.N, 10)
	if !ok {
		return rsa.PublicKey{}, fmt.Errorf("keyfile: invalid RSA n %q", k.Public.N)
	}
	return rsa.PublicKey{E: e, N: n}, nil
}

// PrivateKey parses the on-disk private key back into the core type.
func (k RSAKeyPair) PrivateKey() (rsa.PrivateKey, error) {
	d, ok := new(big.Int).SetString(k.Private.D, 10)
	if !ok {
		return rsa.PrivateKey{}, fmt.Errorf("keyfile: invalid RSA d %q", k.Private.D)
	}
	n, ok := new(big.Int).SetString(k.Private.N, 10)
	if !ok {
		return rsa.PrivateKey{}, fmt.Errorf("keyfile: invalid RSA n %q", k.Private.N)
	}
	return rsa.PrivateKey{D: d, N: n}, nil
}

// MVCurve is the on-disk shape of the curve a MV key pair was generated
// against; both public and private key files embed a copy so either can be
// loaded independently.
type MVCurve struct {
	A  string `yaml:"a"`
	P  string `yaml:"p"`
	Q  string `yaml:"q"`
	Gx string `yaml:"gx"`
	Gy string `yaml:"gy"`
}

// MVPublicKey is (E, Y) serialised as decimal strings.
type MVPublicKey struct {
	Curve MVCurve `yaml:"curve"`
	Yx    string  `yaml:"yx"`
	Yy    string  `yaml:"yy"`
}

// MVPrivateKey is (E, x) serialised as decimal strings.
type MVPrivateKey struct {
	Curve MVCurve `yaml:"curve"`
	X     string  `yaml:"x"`
}

// MVKeyPair is the on-disk shape of an MV key pair.
type MVKeyPair struct {
	Public  MVPublicKey  `yaml:"public"`
	Private MVPrivateKey `yaml:"private"`
}

func curveToFile(c *ecc.Curve) MVCurve {
	return MVCurve{
		A:  c.A.String(),
		P:  c.P.String(),
		Q:  c.Q.String(),
		Gx: c.G.X.String(),
		Gy: c.G.Y.String(),
	}
}

func (c MVCurve) toCore() (*ecc.Curve, error) {
	a, ok := new(big.Int).SetString(c.A, 10)
	if !ok {
		return nil, fmt.Errorf("keyfile: invalid curve a %q", c.A)
	}
	p, ok := new(big.Int).SetString(c.P, 10)
	if !ok {
		return nil, fmt.Errorf("keyfile: invalid curve p %q", c.P)
	}
	q, ok := new(big.Int).SetString(c.Q, 10)
	if !ok {
		return nil, fmt.Errorf("keyfile: invalid curve q %q", c.Q)
	}
	gx, ok := new(big.Int).SetString(c.Gx, 10)
	if !ok {
		return nil, fmt.Errorf("keyfile: invalid curve gx %q", c.Gx)
	}
	gy, ok := new(big.Int).SetString(c.Gy, 10)
	if !ok {
		return nil, fmt.Errorf("keyfile: invalid curve gy %q", c.Gy)
	}
	return &ecc.Curve{A: a, P: p, Q: q, G: ecc.NewPoint(gx, gy)}, nil
}

// FromMVKeyPair converts a freshly generated core key pair to its on-disk
// form.
func FromMVKeyPair(pair mv.KeyPair) MVKeyPair {
	curve := curveToFile(pair.Public.Curve)
	return MVKeyPair{
		Public:  MVPublicKey{Curve: curve, Yx: pair.Public.Y.X.String(), Yy: pair.Public.Y.Y.String()},
		Private: MVPrivateKey{Curve: curve, X: pair.Private.X.String()},
	}
}

// PublicKey parses the on-disk public key back into the core type.
func (k MVKeyPair) PublicKey() (mv.PublicKey, error) {
	curve, err := k.Public.Curve.toCore()
	if err != nil {
		return mv.PublicKey{}, err
	}
	yx, ok := new(big.Int).SetString(k.Public.Yx, 10)
	if !ok {
		return mv.PublicKey{}, fmt.Errorf("keyfile: invalid MV yx %q", k.Public.Yx)
	}
	yy, ok := new(big.Int).SetString(k.Public.Yy, 10)
	if !ok {
		return mv.PublicKey{}, fmt.Errorf("keyfile: invalid MV yy %q", k.Public.Yy)
	}
	return mv.PublicKey{Curve: curve, Y: ecc.NewPoint(yx, yy)}, nil
}

// PrivateKey parses the on-disk private key back into the core type.
func (k MVKeyPair) PrivateKey() (mv.PrivateKey, error) {
	curve, err := k.Private.Curve.toCore()
	if err != nil {
		return mv.PrivateKey{}, err
	}
	x, ok := new(big.Int).SetString(k.Private.X, 10)
	if !ok {
		return mv.PrivateKey{}, fmt.Errorf("keyfile: invalid MV x %q", k.Private.X)
	}
	return mv.PrivateKey{Curve: curve, X: x}, nil
}

// Read loads and unmarshals a YAML key file into v.
func Read(path string, v interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(raw, v)
}

// Write marshals v and writes it to path.
func Write(path string, v interface{}) error {
	raw, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
