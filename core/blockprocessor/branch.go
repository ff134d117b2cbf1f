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
	"github.com/VictoriaMetrics/metrics"
	"github.com/google/uuid"

	libcommon "github.com/erigontech/erigon-lib/common"

	"github.com/erigontech/erigon/core/tracing"
	"github.com/erigontech/erigon/core/types"
	"github.com/erigontech/erigon/params"
)

// periodicCommitInterval bounds how much work a branch must redo if a block
// well into it fails: every 64 blocks the driver captures a fresh
// checkpoint and re-inits the branch there, without counting it as a
// reorganization.
const periodicCommitInterval = 64

var reorgCounter = metrics.GetOrCreateCounter("blockprocessor_reorganizations_total")

// BlockProcessor re-executes branches of suggested blocks against a single
// WorldState, producing receipts and consensus roots and enforcing the
// atomicity, ordering and idempotence properties described in the data
// model. It is not safe for concurrent calls to Process: exactly one
// foreground driver thread may be mutating world state at a time, per the
// concurrency model.
type BlockProcessor struct {
	chainConfig *params.ChainConfig

	state          WorldState
	executor       TransactionsExecutor
	validator      BlockValidator
	rewards        RewardCalculator
	withdrawals    WithdrawalApplier
	beacon         BeaconRootHandler
	receiptsRoot   ReceiptsRootCalculator
	receiptStorage ReceiptStorage
	witness        WitnessCollector
	log            Logger

	tracer         *ReceiptsTracer
	externalTracer *tracing.Hooks
	observers      Observers
}

// Config bundles BlockProcessor's required and optional collaborators.
// ReceiptStorage, Witness, Log, ExternalTracer and Observers may be left nil;
// every other field is required.
type Config struct {
	ChainConfig *params.ChainConfig

	State        WorldState
	Executor     TransactionsExecutor
	Validator    BlockValidator
	Rewards      RewardCalculator
	Withdrawals  WithdrawalApplier
	Beacon       BeaconRootHandler
	ReceiptsRoot ReceiptsRootCalculator

	ReceiptStorage ReceiptStorage
	Witness        WitnessCollector
	Log            Logger

	ExternalTracer *tracing.Hooks
	Observers      Observers
}

// NewBlockProcessor validates cfg's required collaborators and constructs a
// BlockProcessor. A nil required field is reported as an InputDomainError
// rather than deferred to a later nil-pointer panic.
func NewBlockProcessor(cfg Config) (*BlockProcessor, error) {
	required := []struct {
		name string
		nilv bool
	}{
		{"ChainConfig", cfg.ChainConfig == nil},
		{"State", cfg.State == nil},
		{"Executor", cfg.Executor == nil},
		{"Validator", cfg.Validator == nil},
		{"Rewards", cfg.Rewards == nil},
		{"Withdrawals", cfg.Withdrawals == nil},
		{"Beacon", cfg.Beacon == nil},
		{"ReceiptsRoot", cfg.ReceiptsRoot == nil},
	}
	for _, r := range required {
		if r.nilv {
			return nil, &InputDomainError{Field: r.name}
		}
	}

	return &BlockProcessor{
		chainConfig:    cfg.ChainConfig,
		state:          cfg.State,
		executor:       cfg.Executor,
		validator:      cfg.Validator,
		rewards:        cfg.Rewards,
		withdrawals:    cfg.Withdrawals,
		beacon:         cfg.Beacon,
		receiptsRoot:   cfg.ReceiptsRoot,
		receiptStorage: cfg.ReceiptStorage,
		witness:        cfg.Witness,
		log:            cfg.Log,
		tracer:         NewReceiptsTracer(),
		externalTracer: cfg.ExternalTracer,
		observers:      cfg.Observers,
	}, nil
}

// Process re-executes suggestedBlocks, a non-empty, contiguous,
// parent-linked sequence, starting from newBranchStateRoot. It returns the
// fully processed blocks on success. On any failure, world state is
// restored to exactly what it was on entry and the failure is returned
// unchanged to the caller. See the package doc and the data model
// invariants for the atomicity and head-preservation guarantees this
// provides.
func (p *BlockProcessor) Process(newBranchStateRoot libcommon.Hash, suggestedBlocks types.Blocks, options Options) (types.Blocks, error) {
	if len(suggestedBlocks) == 0 {
		return nil, nil
	}

	branchID := uuid.New().String()
	if p.log != nil {
		p.log.Info("processing branch", "branchID", branchID, "blocks", len(suggestedBlocks),
			"first", suggestedBlocks[0].NumberU64(), "last", suggestedBlocks[len(suggestedBlocks)-1].NumberU64())
	}

	dispatchHashPrecompute(suggestedBlocks, p.log)

	p.observers.branchStarting(suggestedBlocks)

	entryCheckpoint := p.state.StateRoot()

	// A panicking observer aborts the branch like any other failure: restore
	// the checkpoint, then let the panic continue to the caller.
	defer func() {
		if r := recover(); r != nil {
			p.state.Init(entryCheckpoint)
			panic(r)
		}
	}()

	if err := p.initBranch(newBranchStateRoot, true); err != nil {
		p.state.Init(entryCheckpoint)
		return nil, err
	}

	if p.witness != nil {
		scope := p.witness.TrackOnThisThread()
		defer scope.Release()
	}

	n := len(suggestedBlocks)
	processed := make(types.Blocks, 0, n)

	rollback := func(err error) (types.Blocks, error) {
		p.state.Init(entryCheckpoint)
		if p.log != nil {
			p.log.Warn("branch processing failed, world state restored", "branchID", branchID, "err", err)
		}
		return nil, err
	}

	for i, block := range suggestedBlocks {
		if p.witness != nil {
			p.witness.Reset()
		}

		processedBlock, receipts, err := p.processOne(block, options)
		if err != nil {
			return rollback(err)
		}

		if err := p.state.CommitTree(block.NumberU64()); err != nil {
			return rollback(&StateFailureError{Op: "commitTree", Err: err})
		}

		if !options.Has(ReadOnlyChain) {
			if p.witness != nil {
				if err := p.witness.Persist(processedBlock.Hash()); err != nil {
					return rollback(&StateFailureError{Op: "persistWitness", Err: err})
				}
			}
			p.observers.blockProcessed(processedBlock, receipts)
		}

		processed = append(processed, processedBlock)

		if i > 0 && i < n-1 && i%periodicCommitInterval == 0 {
			if err := p.initBranch(block.StateRoot, false); err != nil {
				return rollback(err)
			}
			entryCheckpoint = p.state.StateRoot()
		}
	}

	if options.Has(DoNotUpdateHead) {
		p.state.Init(entryCheckpoint)
	}

	return processed, nil
}

// initBranch re-points world state at target when it names a state root
// different from the current one, optionally counting the switch as a
// reorganization. Periodic mid-branch re-inits (countsAsReorg == false)
// exist purely to bound recovery cost and must never move the counter.
func (p *BlockProcessor) initBranch(target libcommon.Hash, countsAsReorg bool) error {
	var zero libcommon.Hash
	if target == zero {
		// Unset branch root: the caller has opted out of init. See the
		// open question on this policy; callers that always have a root
		// available should prefer passing it explicitly.
		return nil
	}
	if target == p.state.StateRoot() {
		return nil
	}
	p.state.Reset()
	p.state.Init(target)
	if countsAsReorg {
		reorgCounter.Inc()
	}
	return nil
}
