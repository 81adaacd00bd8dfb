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

// Package rsacmd wires the RSA scheme core (github.com/cryptolab/toolkit/rsa
// and .../textscheme) into cobra subcommands: a parent Cmd that binds its
// flags to viper in PersistentPreRunE, leaf subcommands that read them back
// out.
package rsacmd

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cryptolab/toolkit/cmd/cryptolab/keyfile"
	"github.com/cryptolab/toolkit/internal/numtheory"
	"github.com/cryptolab/toolkit/internal/obslog"
	"github.com/cryptolab/toolkit/rsa"
	"github.com/cryptolab/toolkit/textscheme"
)

// Cmd is the "rsa" command group.
var Cmd = &cobra.Command{
	Use:   "rsa",
	Short: "RSA keygen/encrypt/decrypt/sign/verify over text",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return viper.BindPFlags(cmd.Flags())
	},
}

var svc = numtheory.NewFast()

func init() {
	Cmd.AddCommand(keygenCmd, encryptCmd, decryptCmd, signCmd, verifyCmd)
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate an RSA key pair and write it to a YAML key file",
	RunE: func(cmd *cobra.Command, args []string) error {
		bits := uint(viper.GetInt("bits"))
		rounds := viper.GetInt("mr-rounds")
		seed := uint32(viper.GetInt64("seed"))
		out := viper.GetString("out")

		pair, err := rsa.Keygen(svc, bits, rounds, seed)
		if err != nil {
			return err
		}
		obslog.Logger().Info("generated RSA key pair", "bits", bits, "out", out)
		return keyfile.Write(out, keyfile.FromRSAKeyPair(pair))
	},
}

func init() {
	keygenCmd.Flags().Uint("bits", 257, "modulus bit width")
	keygenCmd.Flags().Int("mr-rounds", 20, "Miller-Rabin witness rounds")
	keygenCmd.Flags().Int64("seed", 1, "PRNG seed")
	keygenCmd.Flags().String("out", "rsa-key.yaml", "output key file path")
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt text under an RSA public key",
	RunE: func(cmd *cobra.Command, args []string) error {
		var keyFile keyfile.RSAKeyPair
		if err := keyfile.Read(viper.GetString("key"), &keyFile); err != nil {
			return err
		}
		pub, err := keyFile.PublicKey()
		if err != nil {
			return err
		}

		radix, ok := new(big.Int).SetString(viper.GetString("radix"), 10)
		if !ok {
			return fmt.Errorf("rsa encrypt: invalid radix %q", viper.GetString("radix"))
		}

		ciphertext, err := textscheme.EncryptRSA(svc, pub, radix, viper.GetString("text"))
		if err != nil {
			return err
		}
		fmt.Println(ciphertext)
		return nil
	},
}

func init() {
	encryptCmd.Flags().String("key", "rsa-key.yaml", "key file path (public key is read from it)")
	encryptCmd.Flags().String("radix", "55296", "codec radix")
	encryptCmd.Flags().String("text", "", "plaintext to encrypt")
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt ciphertext under an RSA private key",
	RunE: func(cmd *cobra.Command, args []string) error {
		var keyFile keyfile.RSAKeyPair
		if err := keyfile.Read(viper.GetString("key"), &keyFile); err != nil {
			return err
		}
		priv, err := keyFile.PrivateKey()
		if err != nil {
			return err
		}

		radix, ok := new(big.Int).SetString(viper.GetString("radix"), 10)
		if !ok {
			return fmt.Errorf("rsa decrypt: invalid radix %q", viper.GetString("radix"))
		}

		plaintext, err := textscheme.DecryptRSA(svc, priv, radix, viper.GetString("text"))
		if err != nil {
			return err
		}
		fmt.Println(plaintext)
		return nil
	},
}

func init() {
	decryptCmd.Flags().String("key", "rsa-key.yaml", "key file path (private key is read from it)")
	decryptCmd.Flags().String("radix", "55296", "codec radix")
	decryptCmd.Flags().String("text", "", "ciphertext to decrypt")
}

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Sign text under an RSA private key",
	RunE: func(cmd *cobra.Command, args []string) error {
		var keyFile keyfile.RSAKeyPair
		if err := keyfile.Read(viper.GetString("key"), &keyFile); err != nil {
			return err
		}
		priv, err := keyFile.PrivateKey()
		if err != nil {
			return err
		}

		radix, ok := new(big.Int).SetString(viper.GetString("radix"), 10)
		if !ok {
			return fmt.Errorf("rsa sign: invalid radix %q", viper.GetString("radix"))
		}

		sig, err := textscheme.SignRSA(svc, priv, radix, viper.GetString("text"))
		if err != nil {
			return err
		}
		fmt.Println(sig)
		return nil
	},
}

func init() {
	signCmd.Flags().String("key", "rsa-key.yaml", "key file path (private key is read from it)")
	signCmd.Flags().String("radix", "55296", "codec radix")
	signCmd.Flags().String("text", "", "message to sign")
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a signature under an RSA public key",
	RunE: func(cmd *cobra.Command, args []string) error {
		var keyFile keyfile.RSAKeyPair
		if err := keyfile.Read(viper.GetString("key"), &keyFile); err != nil {
			return err
		}
		pub, err := keyFile.PublicKey()
		if err != nil {
			return err
		}

		radix, ok := new(big.Int).SetString(viper.GetString("radix"), 10)
		if !ok {
			return fmt.Errorf("rsa verify: invalid radix %q", viper.GetString("radix"))
		}

		ok2, err := textscheme.VerifyRSA(svc, pub, radix, viper.GetString("text"), viper.GetString("signature"))
		if err != nil {
			return err
		}
		fmt.Println(ok2)
		return nil
	},
}

func init() {
	verifyCmd.Flags().String("key", "rsa-key.yaml", "key file path (public key is read from it)")
	verifyCmd.Flags().String("radix", "55296", "codec radix")
	verifyCmd.Flags().String("text", "", "message that was signed")
	verifyCmd.Flags().String("signature", "", "signature to verify")
}
