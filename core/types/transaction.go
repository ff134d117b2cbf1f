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

package types

import (
	"math/big"
	"sync/atomic"

	"golang.org/x/crypto/sha3"

	libcommon "github.com/erigontech/erigon-lib/common"
)

// Transaction is the minimal surface the block processor needs: identity
// (Hash), the fields that drive gas accounting and blob-gas activation, and
// an idempotent cached-hash publication point that the background hash
// precomputer and the foreground pipeline may race to write.
type Transaction interface {
	// Hash lazily computes and publishes the transaction hash via
	// single-writer-wins CompareAndSwap, so the background hash precomputer
	// and the foreground pipeline may call it concurrently and safely.
	Hash() libcommon.Hash
	Nonce() uint64
	Gas() uint64
	BlobGas() uint64
	Type() byte
}

// LegacyTx is a pre-EIP-2718 transaction. It is the only concrete
// Transaction implementation the block processor needs to exercise the
// pipeline end to end; richer tx types are out of scope for this core.
type LegacyTx struct {
	AccountNonce uint64
	Price        *big.Int
	GasLimit     uint64
	Recipient    *libcommon.Address
	Amount       *big.Int
	Payload      []byte
	V, R, S      *big.Int

	hash atomic.Pointer[libcommon.Hash]
}

func (tx *LegacyTx) Nonce() uint64   { return tx.AccountNonce }
func (tx *LegacyTx) Gas() uint64     { return tx.GasLimit }
func (tx *LegacyTx) BlobGas() uint64 { return 0 }
func (tx *LegacyTx) Type() byte      { return 0 }

// Hash returns the transaction's cached hash, computing and publishing it on
// first access. Concurrent callers (the background precomputer racing the
// foreground pipeline) converge on the same value, so a CompareAndSwap loser
// simply reads the winner's result.
func (tx *LegacyTx) Hash() libcommon.Hash {
	if h := tx.hash.Load(); h != nil {
		return *h
	}
	h := computeLegacyTxHash(tx)
	tx.hash.CompareAndSwap(nil, &h)
	return *tx.hash.Load()
}

func computeLegacyTxHash(tx *LegacyTx) libcommon.Hash {
	d := sha3.NewLegacyKeccak256()
	var b [8]byte
	putUint64(b[:], tx.AccountNonce)
	d.Write(b[:])
	writeBig(d, tx.Price)
	putUint64(b[:], tx.GasLimit)
	d.Write(b[:])
	if tx.Recipient != nil {
		d.Write(tx.Recipient.Bytes())
	}
	writeBig(d, tx.Amount)
	d.Write(tx.Payload)
	writeBig(d, tx.V)
	writeBig(d, tx.R)
	writeBig(d, tx.S)
	var out libcommon.Hash
	d.Sum(out[:0])
	return out
}

func writeBig(d interface{ Write([]byte) (int, error) }, v *big.Int) {
	if v == nil {
		return
	}
	d.Write(v.Bytes())
}

func putUint64(b []byte, v uint64) {
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}

// Transactions is a vector of transactions, ordered as they appear in a
// block.
type Transactions []Transaction

// PrecomputeHash warms tx's cached hash. Used by the background hash
// precomputer; the result is discarded because the value is only useful
// once published into tx's own cache.
func PrecomputeHash(tx Transaction) {
	_ = tx.Hash()
}
