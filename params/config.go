// Copyright 2016 The go-ethereum Authors
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

// Package params holds the protocol rule set (fork activation heights and
// times) and resolves, for any given header, the Spec in force for it.
package params

import (
	"math/big"

	libcommon "github.com/erigontech/erigon-lib/common"
)

// BeaconRootsAddress is the system contract EIP-4788 writes parent beacon
// block roots into.
var BeaconRootsAddress = libcommon.HexToAddress("0x000F3df6D732807Ef1319fB7B8bB8522d0Beac02")

// ChainConfig is the immutable set of fork-activation thresholds for a
// chain. Block-numbered forks activate at or above the given block number;
// time-based forks (Shanghai onward) activate at or above the given block
// timestamp. A nil threshold means the fork is never active.
type ChainConfig struct {
	ChainID *big.Int

	DAOForkBlock *big.Int
	// DAOForkAccounts is the balance-donor list for the one-shot DAO
	// withdrawal migration; empty unless DAOForkBlock is set.
	DAOForkAccounts    []libcommon.Address
	DAOForkBeneficiary libcommon.Address

	ByzantiumBlock      *big.Int
	ConstantinopleBlock *big.Int
	PetersburgBlock     *big.Int
	LondonBlock         *big.Int

	ShanghaiTime *big.Int
	CancunTime   *big.Int

	// GenesisStateUnavailable, when true, tells the per-block pipeline to
	// keep the suggested header's state root rather than clear it before
	// processing (the genesis block has no prior computed root to discard).
	GenesisStateUnavailable bool
}

// Spec is the immutable, per-header rule bundle the rest of the block
// processor consults. Every field is a pure function of the header it was
// resolved from (and the chain config it closes over) - calling getSpec
// twice for the same header yields equal specs.
type Spec struct {
	BlockNumber *big.Int
	Time        uint64

	IsByzantium      bool
	IsConstantinople bool
	IsPetersburg     bool
	IsLondon         bool
	IsShanghai       bool
	IsCancun         bool

	// IsDAOFork is true exactly at the DAO activation block.
	IsDAOFork bool

	DAOForkAccounts    []libcommon.Address
	DAOForkBeneficiary libcommon.Address
}

// BlobGasActive reports whether EIP-4844 blob-gas accounting applies under
// this spec. Blob gas activates with Cancun.
func (s *Spec) BlobGasActive() bool { return s.IsCancun }

// BeaconRootActive reports whether the EIP-4788 beacon-root pre-execution
// touch applies under this spec.
func (s *Spec) BeaconRootActive() bool { return s.IsCancun }

// WithdrawalsActive reports whether EIP-4895 validator withdrawals apply
// under this spec.
func (s *Spec) WithdrawalsActive() bool { return s.IsShanghai }

// GetSpec resolves the rules active for a block at the given number and
// time. It never mutates cfg and never consults anything beyond its
// arguments, so repeated calls with the same inputs are equal by value.
func (cfg *ChainConfig) GetSpec(number *big.Int, time uint64) *Spec {
	s := &Spec{
		BlockNumber:        new(big.Int).Set(number),
		Time:               time,
		IsByzantium:        isBlockActive(cfg.ByzantiumBlock, number),
		IsConstantinople:   isBlockActive(cfg.ConstantinopleBlock, number),
		IsPetersburg:       isBlockActive(cfg.PetersburgBlock, number),
		IsLondon:           isBlockActive(cfg.LondonBlock, number),
		IsShanghai:         isTimeActive(cfg.ShanghaiTime, time),
		IsCancun:           isTimeActive(cfg.CancunTime, time),
		DAOForkAccounts:    cfg.DAOForkAccounts,
		DAOForkBeneficiary: cfg.DAOForkBeneficiary,
	}
	if cfg.DAOForkBlock != nil && cfg.DAOForkBlock.Cmp(number) == 0 {
		s.IsDAOFork = true
	}
	return s
}

func isBlockActive(fork *big.Int, number *big.Int) bool {
	if fork == nil {
		return false
	}
	return fork.Cmp(number) <= 0
}

func isTimeActive(fork *big.Int, time uint64) bool {
	if fork == nil {
		return false
	}
	return fork.Uint64() <= time
}

// DAOActivationHeight returns the configured DAO fork block, or nil if the
// chain never forks.
func (cfg *ChainConfig) DAOActivationHeight() *big.Int {
	return cfg.DAOForkBlock
}
