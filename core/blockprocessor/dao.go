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
	"github.com/holiman/uint256"

	"github.com/erigontech/erigon/params"
)

// applyDAOTransition performs the one-shot EIP-779 balance migration: every
// account on the configured drain list has its full balance moved to the
// beneficiary (the DAO withdraw contract). It is only invoked by the
// pipeline at the exact configured fork block, so it is naturally
// idempotent - processing the same block twice against restored state moves
// exactly one copy of each balance.
func applyDAOTransition(state WorldState, spec *params.Spec) error {
	if !state.AccountExists(spec.DAOForkBeneficiary) {
		state.CreateAccount(spec.DAOForkBeneficiary, uint256.NewInt(0))
	}

	for _, addr := range spec.DAOForkAccounts {
		if !state.AccountExists(addr) {
			continue
		}
		balance, err := state.GetBalance(addr)
		if err != nil {
			return &StateFailureError{Op: "getBalance(dao)", Err: err}
		}
		if balance.IsZero() {
			continue
		}
		if err := state.SubtractFromBalance(addr, balance, spec); err != nil {
			return &StateFailureError{Op: "subtractFromBalance(dao)", Err: err}
		}
		if err := state.AddToBalance(spec.DAOForkBeneficiary, balance, spec); err != nil {
			return &StateFailureError{Op: "addToBalance(dao)", Err: err}
		}
	}
	return nil
}
