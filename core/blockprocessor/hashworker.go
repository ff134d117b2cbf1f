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
	"golang.org/x/sync/errgroup"

	"github.com/erigontech/erigon/core/types"
)

// dispatchHashPrecompute walks every transaction in the branch and warms
// its cached hash on a background worker pool, shared with no other
// caller. It is fire-and-forget: the branch driver never waits on it, and
// any per-transaction failure (there is none possible today, since
// PrecomputeHash cannot itself fail) would be swallowed rather than
// surfaced, per the propagation policy for background-worker failures.
func dispatchHashPrecompute(blocks types.Blocks, log Logger) {
	go func() {
		g := new(errgroup.Group)
		g.SetLimit(4)
		for _, block := range blocks {
			txs := block.Transactions()
			g.Go(func() error {
				for _, tx := range txs {
					types.PrecomputeHash(tx)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil && log != nil {
			log.Warn("background hash precompute failed", "err", err)
		}
	}()
}
