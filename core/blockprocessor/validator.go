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

// DefaultBlockValidator checks a processed block's consensus-relevant
// outputs against the block it was suggested as: the receipt count must
// equal the transaction count, and state root, receipts root, logs bloom
// and gas used must all agree. The header hashes are not compared.
type DefaultBlockValidator struct{}

func (DefaultBlockValidator) ValidateProcessedBlock(processed *types.Block, receipts types.Receipts, suggested *types.Block) (bool, error) {
	if len(receipts) != len(suggested.Transactions()) {
		return false, nil
	}
	if processed.Root() != suggested.StateRoot {
		return false, nil
	}
	if processed.ReceiptHash() != suggested.ReceiptHash() {
		return false, nil
	}
	if processed.Bloom() != suggested.Bloom() {
		return false, nil
	}
	if processed.GasUsed() != suggested.GasUsed() {
		return false, nil
	}
	return true, nil
}
