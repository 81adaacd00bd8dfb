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

// Package shanks implements the baby-step giant-step algorithm for
// computing discrete logarithms in a prime cyclic group.
package shanks

import (
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/cryptolab/toolkit/internal/numtheory"
)

// ErrNoDiscreteLogarithm is returned when the search finds no x with
// base^x = element (mod modul), e.g. when base is not a primitive root of
// modul and element lies outside the subgroup base generates.
var ErrNoDiscreteLogarithm = errors.New("shanks: no discrete logarithm exists")

// Pair is one (j, giant-step value) entry of the lookup table built while
// solving for the logarithm, exposed for didactic inspection.
type Pair struct {
	J     *big.Int
	Value *big.Int
}

// Result carries the discovered logarithm alongside the giant-step table,
// sorted by J, that produced it.
type Result struct {
	Logarithm *big.Int
	Table     []Pair
}

var (
	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
)

// Calculate solves base^x = element (mod modul) for x in [0, modul-1),
// where modul is prime and base is a primitive root modulo modul.
//
// It builds a giant-step table of size m = ceil(sqrt(modul-1)) mapping
// base^(m*j) mod modul to j, then scans baby steps
// element * base^(modul-1-i) mod modul for a hit in that table.
func Calculate(svc numtheory.Service, base, element, modul *big.Int) (Result, error) {
	modulMinus1 := new(big.Int).Sub(modul, big1)

	m := new(big.Int).Sqrt(modulMinus1)
	check := new(big.Int).Mul(m, m)
	if check.Cmp(modulMinus1) != 0 {
		m.Add(m, big1)
	}

	gExM := svc.ModPow(base, m, modul)

	table := make(map[string]*big.Int)
	var sortedTable []Pair
	for j := big.NewInt(0); j.Cmp(m) < 0; j = new(big.Int).Add(j, big1) {
		giantStep := svc.ModPow(gExM, j, modul)
		table[giantStep.String()] = new(big.Int).Set(j)
		sortedTable = append(sortedTable, Pair{J: new(big.Int).Set(j), Value: giantStep})
	}
	sort.Slice(sortedTable, func(a, b int) bool {
		return sortedTable[a].J.Cmp(sortedTable[b].J) < 0
	})

	for i := big.NewInt(0); i.Cmp(m) < 0; i = new(big.Int).Add(i, big1) {
		exp := new(big.Int).Sub(modulMinus1, i)
		babyStep := new(big.Int).Mul(element, svc.ModPow(base, exp, modul))
		babyStep.Mod(babyStep, modul)

		if j, ok := table[babyStep.String()]; ok {
			result := new(big.Int).Mul(m, j)
			result.Add(result, i)
			result.Mod(result, modulMinus1)
			return Result{Logarithm: result, Table: sortedTable}, nil
		}
	}
	return Result{}, fmt.Errorf("%w: base=%s element=%s", ErrNoDiscreteLogarithm, base, element)
}
