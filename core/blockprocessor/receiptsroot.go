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
	"golang.org/x/crypto/sha3"

	libcommon "github.com/erigontech/erigon-lib/common"

	"github.com/erigontech/erigon/core/types"
	"github.com/erigontech/erigon/params"
	"github.com/erigontech/erigon/rlp"
)

// DefaultReceiptsRootCalculator derives the receipts root by hashing, in
// transaction order, each receipt's RLP-encoded status, cumulative gas and
// transaction hash together with its raw bloom bytes and its logs' address,
// topic and data bytes. This does not reproduce the real per-receipt Merkle
// Patricia trie encoding (trie-node I/O is out of scope here); it gives a
// value that is deterministic and order-sensitive over the same inputs,
// which is what the pipeline's round-trip property requires.
type DefaultReceiptsRootCalculator struct{}

func (DefaultReceiptsRootCalculator) ReceiptsRoot(receipts types.Receipts, suggested *types.Header, spec *params.Spec) libcommon.Hash {
	d := sha3.NewLegacyKeccak256()
	buf := make([]byte, 9)
	for _, r := range receipts {
		n := rlp.EncodeU64(r.Status, buf)
		d.Write(buf[:n])
		n = rlp.EncodeU64(r.CumulativeGasUsed, buf)
		d.Write(buf[:n])
		d.Write(r.Bloom.Bytes())
		var txHashBuf [33]byte
		rlp.EncodeHash(r.TxHash.Bytes(), txHashBuf[:])
		d.Write(txHashBuf[:])
		for _, l := range r.Logs {
			d.Write(l.Address.Bytes())
			for _, t := range l.Topics {
				d.Write(t.Bytes())
			}
			d.Write(l.Data)
		}
	}
	var out libcommon.Hash
	d.Sum(out[:0])
	return out
}
