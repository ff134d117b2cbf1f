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

package blockprocessor

import (
	"testing"

	"github.com/stretchr/testify/require"

	libcommon "github.com/erigontech/erigon-lib/common"

	"github.com/erigontech/erigon/core/blockprocessor/memstate"
	"github.com/erigontech/erigon/core/types"
)

func TestDefaultWithdrawalApplier_CreditsGweiAsWei(t *testing.T) {
	state := memstate.New()
	addr := libcommon.HexToAddress("0x77")

	w := types.Withdrawals{{Index: 0, ValidatorIndex: 5, Address: addr, Amount: 32}} // 32 Gwei
	require.NoError(t, DefaultWithdrawalApplier{}.ApplyWithdrawals(state, w, nil))

	bal, err := state.GetBalance(addr)
	require.NoError(t, err)
	require.Equal(t, uint64(32)*1e9, bal.Uint64())
}

func TestDefaultWithdrawalApplier_SkipsZeroAmount(t *testing.T) {
	state := memstate.New()
	addr := libcommon.HexToAddress("0x78")

	w := types.Withdrawals{{Address: addr, Amount: 0}}
	require.NoError(t, DefaultWithdrawalApplier{}.ApplyWithdrawals(state, w, nil))
	require.False(t, state.AccountExists(addr))
}
