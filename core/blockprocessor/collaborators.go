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
	"github.com/holiman/uint256"

	libcommon "github.com/erigontech/erigon-lib/common"

	"github.com/erigontech/erigon/consensus"
	"github.com/erigontech/erigon/core/tracing"
	"github.com/erigontech/erigon/core/types"
	"github.com/erigontech/erigon/params"
)

// WorldState is the narrow mutation surface block processing drives. The
// persistent trie, its caches, and account/storage encoding are entirely
// behind this interface and out of scope for this package; a reference,
// in-memory implementation lives in core/blockprocessor/memstate for tests.
type WorldState interface {
	// StateRoot returns the current root fingerprint.
	StateRoot() libcommon.Hash

	// Reset discards any uncommitted mutation, restoring the state to
	// whatever it was at the last commit or Init.
	Reset()

	// Init points the state at a previously observed root, for example when
	// starting a branch whose root differs from the current head.
	Init(root libcommon.Hash)

	// Commit finalizes in-flight mutations under the given spec.
	Commit(spec *params.Spec) error

	// CommitWithTracer is Commit, additionally routing balance-change
	// events to subTracer (used after reward application, so reward
	// deltas are independently observable from transaction execution).
	CommitWithTracer(spec *params.Spec, subTracer *tracing.Hooks) error

	// CommitTree instructs the state to commit its trie structure for the
	// given block number, bounding the amount of in-memory mutation that
	// must be replayed if a later block in the branch fails.
	CommitTree(blockNumber uint64) error

	// RecalculateStateRoot recomputes and returns the root after all of a
	// block's mutations have been applied and committed.
	RecalculateStateRoot() (libcommon.Hash, error)

	AccountExists(addr libcommon.Address) bool
	CreateAccount(addr libcommon.Address, value *uint256.Int)
	AddToBalance(addr libcommon.Address, value *uint256.Int, spec *params.Spec) error
	SubtractFromBalance(addr libcommon.Address, value *uint256.Int, spec *params.Spec) error
	GetBalance(addr libcommon.Address) (*uint256.Int, error)
}

// TransactionsExecutor runs a block's transactions against world state and
// returns their receipts in transaction order. Per-transaction progress is
// expected to be forwarded to receiptsTracer as execution proceeds.
type TransactionsExecutor interface {
	ProcessTransactions(block *types.Block, options Options, receiptsTracer *ReceiptsTracer, spec *params.Spec) (types.Receipts, error)

	// SystemCall invokes a protocol-mandated call against whatever
	// execution engine the executor wraps, outside the block's own
	// transaction list. Used by the beacon-root handler.
	SystemCall(header *types.Header, addr libcommon.Address, input []byte) ([]byte, error)
}

// BlockValidator checks a processed block against the block it was
// suggested as, under the receipts produced for it. A false result is a
// fatal consensus failure for the branch.
type BlockValidator interface {
	ValidateProcessedBlock(processed *types.Block, receipts types.Receipts, suggested *types.Block) (bool, error)
}

// Reward is one recipient credit produced by a RewardCalculator: a miner's
// own block reward, or an uncle inclusion/mining reward.
type Reward struct {
	Address libcommon.Address
	Kind    RewardKind
	Value   *uint256.Int
}

// RewardKind distinguishes a block's own miner reward from uncle rewards,
// so a tracer can label balance changes accordingly.
type RewardKind byte

const (
	RewardKindBlock RewardKind = iota
	RewardKindUncle
)

// RewardCalculator computes the miner and uncle rewards due for a block.
// Pre-merge chains pay rewards; post-merge consensus pays none, in which
// case implementations return an empty slice.
type RewardCalculator interface {
	CalculateRewards(block *types.Block) ([]Reward, error)
}

// WithdrawalApplier applies a post-Shanghai block's validator withdrawal
// credits to world state.
type WithdrawalApplier interface {
	ApplyWithdrawals(state WorldState, withdrawals types.Withdrawals, spec *params.Spec) error
}

// BeaconRootHandler performs the EIP-4788 pre-execution system call that
// records the parent beacon block root, when active for the block's spec.
type BeaconRootHandler interface {
	ApplyBeaconRoot(parentBeaconBlockRoot *libcommon.Hash, syscall consensus.SystemCall, tracer *tracing.Hooks)
}

// ReceiptsRootCalculator derives a block's receipts root from its produced
// receipts. A legally-derivable value may be taken directly from the
// suggested header by implementations that choose to trust it.
type ReceiptsRootCalculator interface {
	ReceiptsRoot(receipts types.Receipts, suggested *types.Header, spec *params.Spec) libcommon.Hash
}

// ReceiptStorage is a write-only sink for processed blocks' receipts.
type ReceiptStorage interface {
	Insert(block *types.Block, receipts types.Receipts, isCanonical bool) error
}

// WitnessCollector tracks the state nodes touched while processing a
// block, for later proof construction. TrackOnThisThread installs a
// collector scoped to the calling goroutine and returns a handle whose
// Release must be called on every exit path.
type WitnessCollector interface {
	TrackOnThisThread() WitnessScope
	Reset()
	Persist(blockHash libcommon.Hash) error
}

// WitnessScope is released unconditionally once the driver thread is done
// with its witness-tracked section, whether that section succeeded or
// failed.
type WitnessScope interface {
	Release()
}

// Logger is the structured, side-effect-only logging surface block
// processing writes progress and warnings to. It is never consulted for
// control flow.
type Logger interface {
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
}
