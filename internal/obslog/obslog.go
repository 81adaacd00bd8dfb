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

// Package obslog provides the package-level logger used by the cryptolab
// command-line demo. The core arithmetic and scheme packages do not import
// it and do not log.
package obslog

import "github.com/getamis/sirius/log"

var logger = log.Discard()

// Logger returns the currently configured logger. It discards all output
// until SetLogger is called.
func Logger() log.Logger {
	return logger
}

// SetLogger replaces the package-level logger.
func SetLogger(l log.Logger) {
	logger = l
}
