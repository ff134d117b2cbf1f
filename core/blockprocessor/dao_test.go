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
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	libcommon "github.com/erigontech/erigon-lib/common"

	"github.com/erigontech/erigon/core/blockprocessor/memstate"
	"github.com/erigontech/erigon/core/types"
	"github.com/erigontech/erigon/params"
)

// S6: two DAO accounts each holding value V; the withdrawal account gains
// 2V and each DAO account is left at zero.
func TestProcess_DAOHardForkMigratesBalances(t *testing.T) {
	daoAcct1 := libcommon.HexToAddress("0x01")
	daoAcct2 := libcommon.HexToAddress("0x02")
	beneficiary := libcommon.HexToAddress("0xbf")

	state := memstate.New()
	v := uint256.NewInt(1000)
	state.CreateAccount(daoAcct1, v)
	state.CreateAccount(daoAcct2, v)
	root, err := state.RecalculateStateRoot()
	require.NoError(t, err)
	state.Init(root)

	cfg := testChainConfig()
	cfg.DAOForkBlock = big.NewInt(1)
	cfg.DAOForkAccounts = []libcommon.Address{daoAcct1, daoAcct2}
	cfg.DAOForkBeneficiary = beneficiary

	p, err := NewBlockProcessor(Config{
		ChainConfig:  cfg,
		State:        state,
		Executor:     newFakeExecutor(),
		Validator:    rejectNothingValidator{},
		Rewards:      noRewards{},
		Withdrawals:  DefaultWithdrawalApplier{},
		Beacon:       DefaultBeaconRootHandler{},
		ReceiptsRoot: DefaultReceiptsRootCalculator{},
	})
	require.NoError(t, err)

	block := testBlock(1, root, 0)
	_, err = p.Process(root, types.Blocks{block}, 0)
	require.NoError(t, err)

	b1, _ := state.GetBalance(daoAcct1)
	b2, _ := state.GetBalance(daoAcct2)
	bBen, _ := state.GetBalance(beneficiary)
	require.True(t, b1.IsZero())
	require.True(t, b2.IsZero())
	require.Equal(t, uint256.NewInt(2000).Uint64(), bBen.Uint64())
}

func TestEthashRewardCalculator_FrontierReward(t *testing.T) {
	cfg := &params.ChainConfig{ChainID: big.NewInt(1)}
	calc := &EthashRewardCalculator{Config: cfg}

	miner := libcommon.HexToAddress("0xaa")
	h := &types.Header{Number: big.NewInt(1), Coinbase: miner}
	block := types.NewBlockWithHeader(h)

	rewards, err := calc.CalculateRewards(block)
	require.NoError(t, err)
	require.Len(t, rewards, 1)
	require.Equal(t, miner, rewards[0].Address)
	require.Equal(t, FrontierBlockReward.Uint64(), rewards[0].Value.Uint64())
}
