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
	"github.com/erigontech/erigon/core/tracing"
)

// ReceiptsTracer is a single long-lived tracing sink reused across every
// block in a branch. A caller-supplied *tracing.Hooks is swapped in for the
// duration of one block via BeginBlock/EndBlock; between blocks the sink
// carries no state of its own.
type ReceiptsTracer struct {
	external *tracing.Hooks
}

// NewReceiptsTracer builds a tracer sink with no external tracer bound; a
// nil external tracer is valid and simply means every hook call is a no-op.
func NewReceiptsTracer() *ReceiptsTracer {
	return &ReceiptsTracer{}
}

// BeginBlock binds external as the sub-tracer for the block about to be
// processed and fires OnBlockStart.
func (t *ReceiptsTracer) BeginBlock(external *tracing.Hooks) {
	t.external = external
	if t.external != nil && t.external.OnBlockStart != nil {
		t.external.OnBlockStart()
	}
}

// EndBlock fires OnBlockEnd with the block's outcome and unbinds the
// external tracer, so a subsequent block starts from a clean sink.
func (t *ReceiptsTracer) EndBlock(err error) {
	if t.external != nil && t.external.OnBlockEnd != nil {
		t.external.OnBlockEnd(err)
	}
	t.external = nil
}

// Hooks exposes the currently-bound external tracer (nil between blocks, or
// if the caller supplied none) for collaborators that need to forward
// individual hooks - the reward applier and beacon-root handler in
// particular.
func (t *ReceiptsTracer) Hooks() *tracing.Hooks {
	return t.external
}
