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
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/sha3"

	libcommon "github.com/erigontech/erigon-lib/common"
)

// A BlockNonce is a 64-bit hash which proves, combined with the mix digest,
// that a sufficient amount of computation has been carried out on a block.
type BlockNonce [8]byte

// EncodeNonce converts the given integer to a block nonce.
func EncodeNonce(i uint64) BlockNonce {
	var n BlockNonce
	binary.BigEndian.PutUint64(n[:], i)
	return n
}

// Uint64 returns the integer value of a block nonce.
func (n BlockNonce) Uint64() uint64 {
	return binary.BigEndian.Uint64(n[:])
}

// Header represents a block header. Pre-execution fields are supplied by the
// block's suggester; post-execution fields (Root, ReceiptHash, Bloom, GasUsed
// and the header hash itself) are authoritative outputs of block processing.
type Header struct {
	ParentHash  libcommon.Hash    `json:"parentHash"`
	UncleHash   libcommon.Hash    `json:"sha3Uncles"`
	Coinbase    libcommon.Address `json:"miner"`
	Root        libcommon.Hash    `json:"stateRoot"`
	TxHash      libcommon.Hash    `json:"transactionsRoot"`
	ReceiptHash libcommon.Hash    `json:"receiptsRoot"`
	Bloom       Bloom             `json:"logsBloom"`
	Difficulty  *big.Int          `json:"difficulty"`
	Number      *big.Int          `json:"number"`
	GasLimit    uint64            `json:"gasLimit"`
	GasUsed     uint64            `json:"gasUsed"`
	Time        uint64            `json:"timestamp"`
	Extra       []byte            `json:"extraData"`
	MixDigest   libcommon.Hash    `json:"mixHash"`
	Nonce       BlockNonce        `json:"nonce"`

	// EIP-1559
	BaseFee *big.Int `json:"baseFeePerGas"`

	// EIP-4895 (Shanghai)
	WithdrawalsHash *libcommon.Hash `json:"withdrawalsRoot"`

	// EIP-4844 / EIP-4788 (Cancun)
	BlobGasUsed           *uint64         `json:"blobGasUsed"`
	ExcessBlobGas         *uint64         `json:"excessBlobGas"`
	ParentBeaconBlockRoot *libcommon.Hash `json:"parentBeaconBlockRoot"`
}

// CopyHeader creates a deep copy of a header to prevent side effects from
// modifying a header variable.
func CopyHeader(h *Header) *Header {
	cpy := *h
	if cpy.Difficulty = new(big.Int); h.Difficulty != nil {
		cpy.Difficulty.Set(h.Difficulty)
	}
	if cpy.Number = new(big.Int); h.Number != nil {
		cpy.Number.Set(h.Number)
	}
	if h.BaseFee != nil {
		cpy.BaseFee = new(big.Int).Set(h.BaseFee)
	}
	if len(h.Extra) > 0 {
		cpy.Extra = make([]byte, len(h.Extra))
		copy(cpy.Extra, h.Extra)
	}
	if h.WithdrawalsHash != nil {
		hash := *h.WithdrawalsHash
		cpy.WithdrawalsHash = &hash
	}
	if h.BlobGasUsed != nil {
		v := *h.BlobGasUsed
		cpy.BlobGasUsed = &v
	}
	if h.ExcessBlobGas != nil {
		v := *h.ExcessBlobGas
		cpy.ExcessBlobGas = &v
	}
	if h.ParentBeaconBlockRoot != nil {
		hash := *h.ParentBeaconBlockRoot
		cpy.ParentBeaconBlockRoot = &hash
	}
	return &cpy
}

// NewHeaderForProcessing builds the header that block processing mutates: it
// carries every pre-execution field from the suggested header, keeps the
// auxiliary identity fields (coinbase, mix digest, nonce, extra) so the
// suggested header's hash remains comparable, and clears the fields that
// processing is responsible for computing.
//
// The suggested header is never mutated - processing always works on this
// copy.
func NewHeaderForProcessing(suggested *Header, keepStateRoot bool) *Header {
	h := CopyHeader(suggested)
	h.Bloom = Bloom{}
	h.ReceiptHash = libcommon.Hash{}
	h.GasUsed = 0
	if !keepStateRoot {
		h.Root = libcommon.Hash{}
	}
	return h
}

// Hash returns a deterministic fingerprint of the header: a keccak digest
// over its fields in a fixed order. It is not wire-compatible Ethereum RLP.
func (h *Header) Hash() libcommon.Hash {
	d := sha3.NewLegacyKeccak256()
	d.Write(h.ParentHash.Bytes())
	d.Write(h.UncleHash.Bytes())
	d.Write(h.Coinbase.Bytes())
	d.Write(h.Root.Bytes())
	d.Write(h.TxHash.Bytes())
	d.Write(h.ReceiptHash.Bytes())
	d.Write(h.Bloom.Bytes())
	writeBigInt(d, h.Difficulty)
	writeBigInt(d, h.Number)
	writeUint64(d, h.GasLimit)
	writeUint64(d, h.GasUsed)
	writeUint64(d, h.Time)
	d.Write(h.Extra)
	d.Write(h.MixDigest.Bytes())
	d.Write(h.Nonce[:])
	writeBigInt(d, h.BaseFee)
	if h.WithdrawalsHash != nil {
		d.Write(h.WithdrawalsHash.Bytes())
	}
	if h.BlobGasUsed != nil {
		writeUint64(d, *h.BlobGasUsed)
	}
	if h.ExcessBlobGas != nil {
		writeUint64(d, *h.ExcessBlobGas)
	}
	if h.ParentBeaconBlockRoot != nil {
		d.Write(h.ParentBeaconBlockRoot.Bytes())
	}
	var out libcommon.Hash
	d.Sum(out[:0])
	return out
}

func writeUint64(d interface{ Write([]byte) (int, error) }, v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	d.Write(b[:])
}

func writeBigInt(d interface{ Write([]byte) (int, error) }, v *big.Int) {
	if v == nil {
		return
	}
	d.Write(v.Bytes())
}
