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

// Package memstate is a reference, in-memory WorldState for tests and
// standalone experimentation. It has no trie, no persistence and no
// history beyond the checkpoints it is explicitly asked to remember - the
// persistent Merkle-Patricia store is out of scope for block processing
// itself (see blockprocessor.WorldState) and lives behind this interface
// in a real node.
package memstate

import (
	"fmt"

	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"

	libcommon "github.com/erigontech/erigon-lib/common"

	"github.com/erigontech/erigon/core/tracing"
	"github.com/erigontech/erigon/params"
)

type account struct {
	balance *uint256.Int
}

// State is a map-backed WorldState. Its "state root" is a keccak digest
// over the sorted account set at the last commit point - enough to satisfy
// the monotonicity and idempotence invariants the block processor relies
// on, without claiming Merkle-Patricia wire compatibility.
type State struct {
	root     libcommon.Hash
	accounts map[libcommon.Address]*account

	// checkpoints maps a previously observed root to the account snapshot
	// at that point, so Init can restore to any root this instance has
	// ever computed.
	checkpoints map[libcommon.Hash]map[libcommon.Address]*account
}

// New builds an empty world state positioned at the zero root.
func New() *State {
	s := &State{
		accounts:    make(map[libcommon.Address]*account),
		checkpoints: make(map[libcommon.Hash]map[libcommon.Address]*account),
	}
	s.checkpoints[libcommon.Hash{}] = cloneAccounts(s.accounts)
	return s
}

func cloneAccounts(in map[libcommon.Address]*account) map[libcommon.Address]*account {
	out := make(map[libcommon.Address]*account, len(in))
	for addr, acc := range in {
		out[addr] = &account{balance: new(uint256.Int).Set(acc.balance)}
	}
	return out
}

func (s *State) StateRoot() libcommon.Hash { return s.root }

func (s *State) Reset() {
	if snap, ok := s.checkpoints[s.root]; ok {
		s.accounts = cloneAccounts(snap)
	}
}

func (s *State) Init(root libcommon.Hash) {
	if snap, ok := s.checkpoints[root]; ok {
		s.accounts = cloneAccounts(snap)
	}
	s.root = root
}

func (s *State) Commit(spec *params.Spec) error {
	return nil
}

func (s *State) CommitWithTracer(spec *params.Spec, subTracer *tracing.Hooks) error {
	return nil
}

func (s *State) CommitTree(blockNumber uint64) error {
	return nil
}

// RecalculateStateRoot hashes the sorted account set and remembers the
// resulting root as a restorable checkpoint.
func (s *State) RecalculateStateRoot() (libcommon.Hash, error) {
	addrs := make([]libcommon.Address, 0, len(s.accounts))
	for addr := range s.accounts {
		addrs = append(addrs, addr)
	}
	sortAddresses(addrs)

	d := sha3.NewLegacyKeccak256()
	for _, addr := range addrs {
		d.Write(addr.Bytes())
		d.Write(s.accounts[addr].balance.Bytes())
	}
	var root libcommon.Hash
	d.Sum(root[:0])

	s.root = root
	s.checkpoints[root] = cloneAccounts(s.accounts)
	return root, nil
}

func sortAddresses(addrs []libcommon.Address) {
	for i := 1; i < len(addrs); i++ {
		for j := i; j > 0 && lessAddr(addrs[j], addrs[j-1]); j-- {
			addrs[j], addrs[j-1] = addrs[j-1], addrs[j]
		}
	}
}

func lessAddr(a, b libcommon.Address) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func (s *State) AccountExists(addr libcommon.Address) bool {
	_, ok := s.accounts[addr]
	return ok
}

func (s *State) CreateAccount(addr libcommon.Address, value *uint256.Int) {
	s.accounts[addr] = &account{balance: new(uint256.Int).Set(value)}
}

func (s *State) AddToBalance(addr libcommon.Address, value *uint256.Int, spec *params.Spec) error {
	acc, ok := s.accounts[addr]
	if !ok {
		return fmt.Errorf("memstate: account %s does not exist", addr)
	}
	acc.balance.Add(acc.balance, value)
	return nil
}

func (s *State) SubtractFromBalance(addr libcommon.Address, value *uint256.Int, spec *params.Spec) error {
	acc, ok := s.accounts[addr]
	if !ok {
		return fmt.Errorf("memstate: account %s does not exist", addr)
	}
	if acc.balance.Lt(value) {
		return fmt.Errorf("memstate: account %s balance underflow", addr)
	}
	acc.balance.Sub(acc.balance, value)
	return nil
}

func (s *State) GetBalance(addr libcommon.Address) (*uint256.Int, error) {
	acc, ok := s.accounts[addr]
	if !ok {
		return uint256.NewInt(0), nil
	}
	return new(uint256.Int).Set(acc.balance), nil
}
