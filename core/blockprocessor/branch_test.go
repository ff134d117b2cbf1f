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

	"github.com/stretchr/testify/require"

	libcommon "github.com/erigontech/erigon-lib/common"

	"github.com/erigontech/erigon/core/blockprocessor/memstate"
	"github.com/erigontech/erigon/core/types"
	"github.com/erigontech/erigon/params"
)

func testChainConfig() *params.ChainConfig {
	return &params.ChainConfig{
		ChainID:             big.NewInt(1337),
		ByzantiumBlock:      big.NewInt(0),
		ConstantinopleBlock: big.NewInt(0),
	}
}

// rejectNothingValidator always accepts, so tests that don't care about
// validation don't need to hand-compute the exact expected header fields.
type rejectNothingValidator struct{}

func (rejectNothingValidator) ValidateProcessedBlock(processed *types.Block, receipts types.Receipts, suggested *types.Block) (bool, error) {
	return true, nil
}

type noRewards struct{}

func (noRewards) CalculateRewards(block *types.Block) ([]Reward, error) { return nil, nil }

func newTestProcessor(t *testing.T, state WorldState, exec TransactionsExecutor, validator BlockValidator, obs Observers) *BlockProcessor {
	t.Helper()
	p, err := NewBlockProcessor(Config{
		ChainConfig:  testChainConfig(),
		State:        state,
		Executor:     exec,
		Validator:    validator,
		Rewards:      noRewards{},
		Withdrawals:  DefaultWithdrawalApplier{},
		Beacon:       DefaultBeaconRootHandler{},
		ReceiptsRoot: DefaultReceiptsRootCalculator{},
		Observers:    obs,
	})
	require.NoError(t, err)
	return p
}

func testBlock(number uint64, parent libcommon.Hash, numTxs int) *types.Block {
	h := &types.Header{
		ParentHash: parent,
		Number:     new(big.Int).SetUint64(number),
		GasLimit:   30_000_000,
		Time:       1700000000 + number,
	}
	txs := make(types.Transactions, 0, numTxs)
	for i := 0; i < numTxs; i++ {
		txs = append(txs, &types.LegacyTx{AccountNonce: uint64(i), GasLimit: 21000})
	}
	return types.NewBlock(h, txs, nil, nil)
}

type recordingObserver struct {
	branchStarting int
	blockProcessed int
	txProcessed    int
}

func (r *recordingObserver) OnBranchStarting(suggested types.Blocks)            { r.branchStarting++ }
func (r *recordingObserver) OnBlockProcessed(*types.Block, types.Receipts)      { r.blockProcessed++ }
func (r *recordingObserver) OnTransactionProcessed(uint64, int, *types.Receipt) { r.txProcessed++ }

// S1: single valid block.
func TestProcess_SingleValidBlock(t *testing.T) {
	state := memstate.New()
	obs := &recordingObserver{}
	p := newTestProcessor(t, state, newFakeExecutor(), rejectNothingValidator{}, Observers{obs})

	block := testBlock(1, state.StateRoot(), 3)

	processed, err := p.Process(state.StateRoot(), types.Blocks{block}, 0)
	require.NoError(t, err)
	require.Len(t, processed, 1)
	require.Equal(t, 1, obs.branchStarting)
	require.Equal(t, 1, obs.blockProcessed)
	require.Equal(t, 3, obs.txProcessed)
	require.Equal(t, state.StateRoot(), processed[0].Root())
}

// S3: invalid middle block restores world state and surfaces InvalidBlockError.
func TestProcess_InvalidMiddleBlockRestoresState(t *testing.T) {
	state := memstate.New()
	entry := state.StateRoot()

	rejectBlock3 := rejectAt(3)
	p := newTestProcessor(t, state, newFakeExecutor(), rejectBlock3, Observers{})

	var blocks types.Blocks
	parent := entry
	for i := uint64(1); i <= 5; i++ {
		b := testBlock(i, parent, 1)
		blocks = append(blocks, b)
		parent = b.Hash()
	}

	_, err := p.Process(entry, blocks, 0)
	require.Error(t, err)
	var invalidErr *InvalidBlockError
	require.ErrorAs(t, err, &invalidErr)
	require.Equal(t, uint64(3), invalidErr.Suggested.NumberU64())
	require.Equal(t, entry, state.StateRoot())
}

type rejectingValidator struct{ at uint64 }

func rejectAt(n uint64) BlockValidator { return rejectingValidator{at: n} }

func (r rejectingValidator) ValidateProcessedBlock(processed *types.Block, receipts types.Receipts, suggested *types.Block) (bool, error) {
	return processed.NumberU64() != r.at, nil
}

// S4: read-only chain suppresses block-processed events.
func TestProcess_ReadOnlyChainSuppressesEvents(t *testing.T) {
	state := memstate.New()
	obs := &recordingObserver{}
	p := newTestProcessor(t, state, newFakeExecutor(), rejectNothingValidator{}, Observers{obs})

	block := testBlock(1, state.StateRoot(), 2)
	processed, err := p.Process(state.StateRoot(), types.Blocks{block}, ReadOnlyChain)
	require.NoError(t, err)
	require.Len(t, processed, 1)
	require.Equal(t, 1, obs.branchStarting)
	require.Equal(t, 0, obs.blockProcessed)
}

// S5: DoNotUpdateHead restores world state root after a fully successful run.
func TestProcess_DoNotUpdateHeadRestoresRoot(t *testing.T) {
	state := memstate.New()
	entry := state.StateRoot()
	p := newTestProcessor(t, state, newFakeExecutor(), rejectNothingValidator{}, Observers{})

	var blocks types.Blocks
	parent := entry
	for i := uint64(1); i <= 3; i++ {
		b := testBlock(i, parent, 1)
		blocks = append(blocks, b)
		parent = b.Hash()
	}

	processed, err := p.Process(entry, blocks, DoNotUpdateHead)
	require.NoError(t, err)
	require.Len(t, processed, 3)
	require.Equal(t, entry, state.StateRoot())
}

// Receipts contiguity: len(receipts) == len(transactions) for every block.
func TestProcess_ReceiptsContiguity(t *testing.T) {
	state := memstate.New()
	obs := &recordingObserver{}
	p := newTestProcessor(t, state, newFakeExecutor(), rejectNothingValidator{}, Observers{obs})

	block := testBlock(1, state.StateRoot(), 5)
	_, err := p.Process(state.StateRoot(), types.Blocks{block}, 0)
	require.NoError(t, err)
	require.Equal(t, 5, obs.txProcessed)
}

// Empty branch is a no-op.
func TestProcess_EmptyBranch(t *testing.T) {
	state := memstate.New()
	p := newTestProcessor(t, state, newFakeExecutor(), rejectNothingValidator{}, Observers{})
	processed, err := p.Process(state.StateRoot(), nil, 0)
	require.NoError(t, err)
	require.Nil(t, processed)
}

func TestNewBlockProcessor_RequiresCollaborators(t *testing.T) {
	_, err := NewBlockProcessor(Config{})
	require.Error(t, err)
	var domainErr *InputDomainError
	require.ErrorAs(t, err, &domainErr)
}
