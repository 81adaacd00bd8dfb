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

package rsa_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cryptolab/toolkit/internal/numtheory"
	numtheorymocks "github.com/cryptolab/toolkit/internal/numtheory/mocks"
	"github.com/cryptolab/toolkit/rsa"
)

// A real phi with no e in [3, phi) coprime to it essentially never occurs
// (phi=(p-1)(q-1) is even, so e=3 already fails only when 3|phi, and the
// search keeps incrementing). Driving that exhaustion with Fast or
// Reference would mean constructing a pathological modulus by hand; mocking
// numtheory.Service's ExtendedGCD to always report a shared factor exercises
// the same exit path directly.
func TestKeygenSurfacesErrKeyGenerationWhenNoECoprimeExists(t *testing.T) {
	svc := new(numtheorymocks.Service)
	svc.On("IsProbablyPrime", mock.Anything, mock.Anything, mock.Anything).Return(true)
	svc.On("ExtendedGCD", mock.Anything, mock.Anything).Return(numtheory.ExtendedEuclidResult{G: big.NewInt(2)})

	_, err := rsa.Keygen(svc, 8, 1, 29)
	require.Equal(t, rsa.ErrKeyGeneration, err)

	svc.AssertExpectations(t)
}
