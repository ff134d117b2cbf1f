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
	"github.com/erigontech/erigon/core/types"
)

// Observer is notified of branch and block lifecycle events, invoked
// synchronously in subscription order. An observer must not mutate world
// state; a panic from an observer aborts the branch, triggering rollback of
// the entry checkpoint just like any other failure.
type Observer interface {
	// OnBranchStarting fires once per Process call, before the entry
	// checkpoint is captured, with the full suggested block list.
	OnBranchStarting(suggested types.Blocks)

	// OnBlockProcessed fires after a block has been fully processed and
	// validated, once per block, in branch order. Suppressed entirely when
	// ReadOnlyChain is set.
	OnBlockProcessed(processed *types.Block, receipts types.Receipts)

	// OnTransactionProcessed fires once per transaction, forwarded from the
	// executor, before the owning block's OnBlockProcessed.
	OnTransactionProcessed(blockNumber uint64, txIndex int, receipt *types.Receipt)
}

// Observers is an ordered, synchronous multicast to zero or more Observer
// subscribers.
type Observers []Observer

func (os Observers) branchStarting(suggested types.Blocks) {
	for _, o := range os {
		o.OnBranchStarting(suggested)
	}
}

func (os Observers) blockProcessed(processed *types.Block, receipts types.Receipts) {
	for _, o := range os {
		o.OnBlockProcessed(processed, receipts)
	}
}

func (os Observers) transactionProcessed(blockNumber uint64, txIndex int, receipt *types.Receipt) {
	for _, o := range os {
		o.OnTransactionProcessed(blockNumber, txIndex, receipt)
	}
}
