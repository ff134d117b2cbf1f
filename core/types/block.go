// Copyright 2014 The go-ethereum Authors
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

// Package types contains the data model consumed and produced by block
// processing: headers, blocks, transactions, receipts and withdrawals.
package types

import (
	"math/big"

	libcommon "github.com/erigontech/erigon-lib/common"
)

// Block couples a header with the transactions, withdrawals and uncles it
// carries. A block's post-execution header fields (Root, ReceiptHash, Bloom,
// GasUsed, Hash) are authoritative only once it has been produced by block
// processing - the suggested block's own fields are what processing
// validates against.
type Block struct {
	header       *Header
	transactions Transactions
	withdrawals  Withdrawals
	uncles       []*Header

	// StateRoot is the state root the suggester claims this block leaves the
	// chain in. It names the branch's per-block target state root (see
	// header.Root, which processing itself computes and writes).
	StateRoot libcommon.Hash
}

// NewBlock constructs a suggested block. uncles and withdrawals may be nil;
// exactly one of them is expected to be populated depending on the active
// fork (uncles pre-Paris, withdrawals post-Shanghai).
func NewBlock(header *Header, txs Transactions, uncles []*Header, withdrawals Withdrawals) *Block {
	b := &Block{
		header:       CopyHeader(header),
		transactions: append(Transactions(nil), txs...),
		uncles:       append([]*Header(nil), uncles...),
		withdrawals:  append(Withdrawals(nil), withdrawals...),
	}
	return b
}

// NewBlockWithHeader constructs a suggested block with no body from a copy
// of header, so later in-place mutation of header is not seen by the block.
func NewBlockWithHeader(header *Header) *Block {
	return &Block{header: CopyHeader(header)}
}

func (b *Block) Header() *Header               { return CopyHeader(b.header) }
func (b *Block) Transactions() Transactions     { return b.transactions }
func (b *Block) Withdrawals() Withdrawals       { return b.withdrawals }
func (b *Block) Uncles() []*Header              { return b.uncles }
func (b *Block) Number() *big.Int               { return new(big.Int).Set(b.header.Number) }
func (b *Block) NumberU64() uint64              { return b.header.Number.Uint64() }
func (b *Block) GasLimit() uint64               { return b.header.GasLimit }
func (b *Block) GasUsed() uint64                { return b.header.GasUsed }
func (b *Block) Time() uint64                   { return b.header.Time }
func (b *Block) Coinbase() libcommon.Address    { return b.header.Coinbase }
func (b *Block) Root() libcommon.Hash           { return b.header.Root }
func (b *Block) ParentHash() libcommon.Hash     { return b.header.ParentHash }
func (b *Block) ReceiptHash() libcommon.Hash    { return b.header.ReceiptHash }
func (b *Block) Bloom() Bloom                   { return b.header.Bloom }
func (b *Block) BaseFee() *big.Int              { return b.header.BaseFee }
func (b *Block) BlobGasUsed() *uint64           { return b.header.BlobGasUsed }
func (b *Block) ExcessBlobGas() *uint64         { return b.header.ExcessBlobGas }
func (b *Block) ParentBeaconBlockRoot() *libcommon.Hash {
	return b.header.ParentBeaconBlockRoot
}

// Hash returns the hash of the block's header.
func (b *Block) Hash() libcommon.Hash { return b.header.Hash() }

// WithSeal returns a new block with the given header substituted, carrying
// the same body. Used to attach the processed header to the suggested
// block's transactions/withdrawals/uncles without mutating either input.
func (b *Block) WithSeal(header *Header) *Block {
	return &Block{
		header:       CopyHeader(header),
		transactions: b.transactions,
		withdrawals:  b.withdrawals,
		uncles:       b.uncles,
		StateRoot:    b.StateRoot,
	}
}

// Blocks is a parent-linked, ordered sequence of blocks forming a branch.
type Blocks []*Block
