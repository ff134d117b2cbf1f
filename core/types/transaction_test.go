// Copyright 2024 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package types

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegacyTxHash_StableAcrossCalls(t *testing.T) {
	tx := &LegacyTx{AccountNonce: 3, GasLimit: 21000}
	h1 := tx.Hash()
	h2 := tx.Hash()
	require.Equal(t, h1, h2)
}

func TestLegacyTxHash_ConcurrentCallersConverge(t *testing.T) {
	tx := &LegacyTx{AccountNonce: 3, GasLimit: 21000}

	var wg sync.WaitGroup
	results := make([]interface{}, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = tx.Hash()
		}(i)
	}
	wg.Wait()

	first := results[0]
	for _, r := range results {
		require.Equal(t, first, r)
	}
}

func TestPrecomputeHash_PublishesSameValueAsHash(t *testing.T) {
	tx := &LegacyTx{AccountNonce: 1, GasLimit: 21000}
	PrecomputeHash(tx)
	require.Equal(t, computeLegacyTxHash(tx), *tx.hash.Load())
}
