// Copyright 2015 The go-ethereum Authors
// (original work)
// Copyright 2024 The Erigon Authors
// (modifications)
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

	libcommon "github.com/erigontech/erigon-lib/common"
)

const (
	// ReceiptStatusFailed is the status code of a transaction that reverted
	// or otherwise failed without consuming all of its gas.
	ReceiptStatusFailed = uint64(0)

	// ReceiptStatusSuccessful is the status code of a transaction that
	// completed successfully.
	ReceiptStatusSuccessful = uint64(1)
)

// Receipt records the effects of executing a single transaction: which logs
// it emitted, whether it succeeded, and how much cumulative gas the block
// had used once it completed. Receipts are produced in, and must be kept in,
// transaction order.
type Receipt struct {
	Type              byte              `json:"type"`
	Status            uint64            `json:"status"`
	CumulativeGasUsed uint64            `json:"cumulativeGasUsed"`
	Bloom             Bloom             `json:"logsBloom"`
	Logs              []*Log            `json:"logs"`
	TxHash            libcommon.Hash    `json:"transactionHash"`
	ContractAddress   libcommon.Address `json:"contractAddress"`
	GasUsed           uint64            `json:"gasUsed"`
	BlobGasUsed       uint64            `json:"blobGasUsed,omitempty"`
	BlockHash         libcommon.Hash    `json:"blockHash"`
	BlockNumber       *big.Int          `json:"blockNumber"`
	TransactionIndex  uint              `json:"transactionIndex"`
}

// Receipts is a vector of receipts, kept in transaction order.
type Receipts []*Receipt

// SetBlockFields back-fills the block-level identity fields on every receipt
// and log once the new header's hash is known, mirroring what the suggested
// block would carry.
func (rs Receipts) SetBlockFields(blockHash libcommon.Hash, blockNumber *big.Int) {
	for i, r := range rs {
		r.BlockHash = blockHash
		r.BlockNumber = blockNumber
		r.TransactionIndex = uint(i)
		for _, l := range r.Logs {
			l.BlockHash = blockHash
			l.BlockNumber = blockNumber.Uint64()
		}
	}
}
