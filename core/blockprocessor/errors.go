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
	"fmt"

	"github.com/erigontech/erigon/core/types"
)

// InvalidBlockError reports that the block validator rejected a processed
// block. It carries the suggested block so the caller can log or discard
// the offending branch.
type InvalidBlockError struct {
	Suggested *types.Block
	Reason    string
}

func (e *InvalidBlockError) Error() string {
	return fmt.Sprintf("invalid block %d (%s): %s", e.Suggested.NumberU64(), e.Suggested.Hash(), e.Reason)
}

// ExecutionFailureError wraps a failure from the transaction executor, a
// reward/withdrawal applier, or the beacon-root handler.
type ExecutionFailureError struct {
	BlockNumber uint64
	Stage       string
	Err         error
}

func (e *ExecutionFailureError) Error() string {
	return fmt.Sprintf("execution failure at block %d (%s): %v", e.BlockNumber, e.Stage, e.Err)
}

func (e *ExecutionFailureError) Unwrap() error { return e.Err }

// StateFailureError wraps a failure returned by the world-state
// collaborator (e.g. a missing trie node, an unreachable state root).
type StateFailureError struct {
	Op  string
	Err error
}

func (e *StateFailureError) Error() string {
	return fmt.Sprintf("world state failure during %s: %v", e.Op, e.Err)
}

func (e *StateFailureError) Unwrap() error { return e.Err }

// InputDomainError reports a required collaborator that was nil at
// construction time.
type InputDomainError struct {
	Field string
}

func (e *InputDomainError) Error() string {
	return fmt.Sprintf("blockprocessor: required collaborator %q is nil", e.Field)
}
