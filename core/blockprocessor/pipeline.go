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
	libcommon "github.com/erigontech/erigon-lib/common"

	"github.com/erigontech/erigon/consensus"
	"github.com/erigontech/erigon/core/types"
)

// processOne runs the full per-block pipeline against the current world
// state and returns the processed block together with its receipts. It
// never restores world state on failure - that discipline belongs to the
// branch driver, which owns the entry checkpoint.
func (p *BlockProcessor) processOne(suggested *types.Block, options Options) (*types.Block, types.Receipts, error) {
	suggestedHeader := suggested.Header()
	number := suggestedHeader.Number

	spec := p.chainConfig.GetSpec(number, suggestedHeader.Time)

	// Step 1: DAO transition, idempotent by exact height.
	if spec.IsDAOFork {
		if err := applyDAOTransition(p.state, spec); err != nil {
			return nil, nil, &ExecutionFailureError{BlockNumber: number.Uint64(), Stage: "dao-transition", Err: err}
		}
	}

	// Step 2: prepare header copy for processing.
	header := types.NewHeaderForProcessing(suggestedHeader, p.chainConfig.GenesisStateUnavailable)

	// Step 3: spec was already resolved from the suggested header; the
	// prepared header carries identical pre-execution fields so re-resolving
	// from it would be redundant.

	// Step 4: start receipts trace.
	p.tracer.BeginBlock(p.externalTracer)
	var pipelineErr error
	defer func() {
		p.tracer.EndBlock(pipelineErr)
	}()

	// Step 5: pre-execution beacon-root touch, then commit.
	if spec.BeaconRootActive() && header.ParentBeaconBlockRoot != nil {
		syscall := p.systemCallFor(header)
		p.beacon.ApplyBeaconRoot(header.ParentBeaconBlockRoot, syscall, p.tracer.Hooks())
		if err := p.state.Commit(spec); err != nil {
			pipelineErr = &StateFailureError{Op: "commit(beacon-root)", Err: err}
			return nil, nil, pipelineErr
		}
	}

	// Step 6: execute transactions.
	receipts, err := p.executor.ProcessTransactions(suggested, options, p.tracer, spec)
	if err != nil {
		pipelineErr = &ExecutionFailureError{BlockNumber: number.Uint64(), Stage: "execute-transactions", Err: err}
		return nil, nil, pipelineErr
	}
	for i, r := range receipts {
		p.observers.transactionProcessed(number.Uint64(), i, r)
	}

	// Step 7: blob gas used, if active.
	if spec.BlobGasActive() {
		var used uint64
		for _, tx := range suggested.Transactions() {
			used += tx.BlobGas()
		}
		header.BlobGasUsed = &used
	}

	// Step 8: receipts root.
	header.ReceiptHash = p.receiptsRoot.ReceiptsRoot(receipts, suggestedHeader, spec)
	header.Bloom = types.CreateBloom(receipts)
	var gasUsed uint64
	for _, r := range receipts {
		gasUsed = r.CumulativeGasUsed
	}
	header.GasUsed = gasUsed

	// Step 9: rewards.
	rewards, err := p.rewards.CalculateRewards(suggested)
	if err != nil {
		pipelineErr = &ExecutionFailureError{BlockNumber: number.Uint64(), Stage: "calculate-rewards", Err: err}
		return nil, nil, pipelineErr
	}
	if len(rewards) > 0 {
		if err := applyRewards(p.state, rewards, spec, p.tracer.Hooks()); err != nil {
			pipelineErr = err
			return nil, nil, pipelineErr
		}
	}

	// Step 10: withdrawals.
	if spec.WithdrawalsActive() {
		if err := p.withdrawals.ApplyWithdrawals(p.state, suggested.Withdrawals(), spec); err != nil {
			pipelineErr = &ExecutionFailureError{BlockNumber: number.Uint64(), Stage: "apply-withdrawals", Err: err}
			return nil, nil, pipelineErr
		}
	}

	// Step 11: commit under spec with the external tracer bound so
	// reward/withdrawal deltas are independently observable. The receipts
	// trace is not ended here: it stays open until processOne returns (the
	// deferred EndBlock above), so validation and receipt storage still run
	// inside it.
	if err := p.state.CommitWithTracer(spec, p.tracer.Hooks()); err != nil {
		pipelineErr = &StateFailureError{Op: "commit(post-rewards)", Err: err}
		return nil, nil, pipelineErr
	}

	// Step 12: recompute state root if this block's genesis state is
	// available to compute one from.
	if !p.chainConfig.GenesisStateUnavailable {
		root, err := p.state.RecalculateStateRoot()
		if err != nil {
			pipelineErr = &StateFailureError{Op: "recalculateStateRoot", Err: err}
			return nil, nil, pipelineErr
		}
		header.Root = root
	}

	// Step 13: recompute hash.
	processed := suggested.WithSeal(header)

	// Step 14: validate.
	if !options.Has(NoValidation) {
		ok, err := p.validator.ValidateProcessedBlock(processed, receipts, suggested)
		if err != nil {
			pipelineErr = &ExecutionFailureError{BlockNumber: number.Uint64(), Stage: "validate", Err: err}
			return nil, nil, pipelineErr
		}
		if !ok {
			pipelineErr = &InvalidBlockError{Suggested: suggested, Reason: "validator rejected processed block"}
			return nil, nil, pipelineErr
		}
	}

	// Step 15: optional receipt persistence.
	if options.Has(StoreReceipts) && p.receiptStorage != nil {
		if err := p.receiptStorage.Insert(processed, receipts, false); err != nil {
			pipelineErr = &StateFailureError{Op: "insert-receipts", Err: err}
			return nil, nil, pipelineErr
		}
	}

	return processed, receipts, nil
}

// systemCallFor closes over header to give collaborators that need to
// invoke a system contract (currently only the beacon-root handler) a
// consensus.SystemCall bound to this block's execution context. The core
// does not itself run EVM bytecode - that is the executor's job - so this
// indirection exists purely to hand the beacon-root handler a call path
// into whatever execution engine the executor wraps.
func (p *BlockProcessor) systemCallFor(header *types.Header) consensus.SystemCall {
	return func(addr libcommon.Address, input []byte) ([]byte, error) {
		return p.executor.SystemCall(header, addr, input)
	}
}
