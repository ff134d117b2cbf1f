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

	"github.com/erigontech/erigon/core/types"
	"github.com/erigontech/erigon/params"
)

// fakeExecutor produces one successful receipt per transaction, each
// consuming a fixed amount of gas, without touching world state - enough to
// exercise the pipeline's receipt bookkeeping without a real EVM.
type fakeExecutor struct {
	gasPerTx uint64
	failAt   map[uint64]bool // block number -> force a failure
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{gasPerTx: 21000, failAt: map[uint64]bool{}}
}

func (f *fakeExecutor) ProcessTransactions(block *types.Block, options Options, receiptsTracer *ReceiptsTracer, spec *params.Spec) (types.Receipts, error) {
	if f.failAt[block.NumberU64()] {
		return nil, errExecutionForced
	}
	var cumulative uint64
	receipts := make(types.Receipts, 0, len(block.Transactions()))
	for i, tx := range block.Transactions() {
		cumulative += f.gasPerTx
		r := &types.Receipt{
			Status:            types.ReceiptStatusSuccessful,
			CumulativeGasUsed: cumulative,
			TxHash:            tx.Hash(),
			GasUsed:           f.gasPerTx,
		}
		receipts = append(receipts, r)
		if receiptsTracer != nil && receiptsTracer.Hooks() != nil && receiptsTracer.Hooks().OnTxStart != nil {
			receiptsTracer.Hooks().OnTxStart(tx.Hash())
		}
		_ = i
	}
	return receipts, nil
}

func (f *fakeExecutor) SystemCall(header *types.Header, addr libcommon.Address, input []byte) ([]byte, error) {
	return nil, nil
}

var errExecutionForced = &fakeExecError{"forced executor failure"}

type fakeExecError struct{ msg string }

func (e *fakeExecError) Error() string { return e.msg }
