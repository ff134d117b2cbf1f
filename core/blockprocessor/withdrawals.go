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

	"github.com/erigontech/erigon/core/types"
	"github.com/erigontech/erigon/params"
)

// gweiToWei is the conversion factor between the beacon chain's withdrawal
// amount units (Gwei) and the execution layer's balance units (Wei).
var gweiToWei = uint256.NewInt(1e9)

// DefaultWithdrawalApplier credits each withdrawal's amount, converted from
// Gwei to Wei, directly to its address's balance - a plain balance increase
// with no associated transaction.
type DefaultWithdrawalApplier struct{}

func (DefaultWithdrawalApplier) ApplyWithdrawals(state WorldState, withdrawals types.Withdrawals, spec *params.Spec) error {
	for _, w := range withdrawals {
		amount := new(uint256.Int).Mul(uint256.NewInt(w.Amount), gweiToWei)
		if amount.IsZero() {
			continue
		}
		if !state.AccountExists(w.Address) {
			state.CreateAccount(w.Address, amount)
			continue
		}
		if err := state.AddToBalance(w.Address, amount, spec); err != nil {
			return &StateFailureError{Op: "addToBalance(withdrawal)", Err: err}
		}
	}
	return nil
}
