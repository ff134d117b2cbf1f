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
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	libcommon "github.com/erigontech/erigon-lib/common"
)

func TestReceipts_SetBlockFields(t *testing.T) {
	receipts := Receipts{
		{Logs: []*Log{{}}},
		{Logs: []*Log{{}, {}}},
	}
	hash := libcommon.HexToHash("0xabc")
	number := big.NewInt(10)

	receipts.SetBlockFields(hash, number)

	for i, r := range receipts {
		require.Equal(t, hash, r.BlockHash)
		require.Equal(t, number, r.BlockNumber)
		require.Equal(t, uint(i), r.TransactionIndex)
		for _, l := range r.Logs {
			require.Equal(t, hash, l.BlockHash)
			require.Equal(t, number.Uint64(), l.BlockNumber)
		}
	}
}

func TestCreateBloom_MatchesPerLogTest(t *testing.T) {
	addr := libcommon.HexToAddress("0x01")
	topic := libcommon.HexToHash("0x02")
	receipts := Receipts{
		{Logs: []*Log{{Address: addr, Topics: []libcommon.Hash{topic}}}},
	}
	bloom := CreateBloom(receipts)
	require.True(t, bloom.Test(addr.Bytes()))
	require.True(t, bloom.Test(topic.Bytes()))
	require.False(t, bloom.Test(libcommon.HexToAddress("0xff").Bytes()))
}
