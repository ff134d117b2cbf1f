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
	"golang.org/x/crypto/sha3"
)

// BloomByteLength is the number of bytes used in a header log bloom.
const BloomByteLength = 256

// BloomBitLength is the number of bits used in a header log bloom.
const BloomBitLength = 8 * BloomByteLength

// Bloom represents a 2048 bit bloom filter over a block's logs.
type Bloom [BloomByteLength]byte

// BytesToBloom converts a byte slice to a bloom filter, panicking if b is too large.
func BytesToBloom(b []byte) Bloom {
	var bloom Bloom
	bloom.SetBytes(b)
	return bloom
}

// SetBytes sets the content of b to the given bytes. It panics if d is larger
// than the bloom filter size.
func (b *Bloom) SetBytes(d []byte) {
	if len(b) < len(d) {
		panic("bloom bytes too big")
	}
	copy(b[BloomByteLength-len(d):], d)
}

// Add inserts the given address or topic hash into the bloom filter.
func (b *Bloom) Add(d []byte) {
	h := sha3.NewLegacyKeccak256()
	h.Write(d)
	var buf [32]byte
	sum := h.Sum(buf[:0])

	for i := 0; i < 6; i += 2 {
		bit := (uint(sum[i+1]) + (uint(sum[i]) << 8)) & 2047
		b[BloomByteLength-1-bit/8] |= 1 << (bit % 8)
	}
}

// Test checks if the given topic is present in the bloom filter.
func (b Bloom) Test(topic []byte) bool {
	var other Bloom
	other.Add(topic)
	for i := range b {
		if b[i]&other[i] != other[i] {
			return false
		}
	}
	return true
}

// Bytes returns the backing byte slice of the bloom filter.
func (b Bloom) Bytes() []byte {
	return b[:]
}

// CreateBloom creates a bloom filter out of the given receipts by adding the
// address and every topic of each receipt's logs. The receipts' own Bloom
// fields are not read.
func CreateBloom(receipts Receipts) Bloom {
	var bin Bloom
	for _, receipt := range receipts {
		for _, log := range receipt.Logs {
			bin.Add(log.Address.Bytes())
			for _, topic := range log.Topics {
				bin.Add(topic.Bytes())
			}
		}
	}
	return bin
}
