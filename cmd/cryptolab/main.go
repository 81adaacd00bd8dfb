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

// Command cryptolab is a thin demonstration CLI over the RSA and MV scheme
// cores: it reads/writes YAML key files and shells out plaintext/ciphertext
// arguments to github.com/cryptolab/toolkit/textscheme. None of the crypto
// core packages import it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cryptolab/toolkit/cmd/cryptolab/mvcmd"
	"github.com/cryptolab/toolkit/cmd/cryptolab/rsacmd"
)

var rootCmd = &cobra.Command{
	Use:   "cryptolab",
	Short: "An educational RSA / Menezes-Vanstone toolkit CLI",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return viper.BindPFlags(cmd.Flags())
	},
}

func init() {
	rootCmd.AddCommand(rsacmd.Cmd)
	rootCmd.AddCommand(mvcmd.Cmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
