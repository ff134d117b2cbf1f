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

// Package blockprocessor re-executes a contiguous branch of suggested
// blocks against a mutable world state, producing receipts and consensus
// roots, validating the result, and committing or rolling back atomically.
package blockprocessor

// Options is a bit-set of orthogonal processing flags. The zero value
// requests full validation, head-updating, non-read-only processing with no
// receipt persistence - the common case for extending the canonical chain.
type Options uint8

const (
	// ReadOnlyChain skips witness persistence and block-processed event
	// emission. Used for simulation or look-ahead processing that must not
	// be observable to the rest of the node.
	ReadOnlyChain Options = 1 << iota

	// DoNotUpdateHead restores the world state to the entry checkpoint
	// after the branch is otherwise fully, successfully processed. Used to
	// validate a branch speculatively without adopting it.
	DoNotUpdateHead

	// StoreReceipts inserts each processed block's receipts into receipt
	// storage, flagged non-canonical.
	StoreReceipts

	// NoValidation skips post-processing validation against the suggested
	// block. Used only by trusted callers (e.g. re-processing a block
	// already known to be canonical).
	NoValidation
)

// Has reports whether every flag set in want is also set in o.
func (o Options) Has(want Options) bool { return o&want == want }
