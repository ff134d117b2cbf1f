// Copyright 2022 The go-ethereum Authors
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
	libcommon "github.com/erigontech/erigon-lib/common"
)

// Withdrawal is a validator withdrawal credit from the beacon chain, applied
// as a direct balance increase (EIP-4895). Amount is denominated in Gwei, as
// on the consensus layer; the withdrawal applier converts it to Wei.
type Withdrawal struct {
	Index          uint64            `json:"index"`
	ValidatorIndex uint64            `json:"validatorIndex"`
	Address        libcommon.Address `json:"address"`
	Amount         uint64            `json:"amount"`
}

// Withdrawals is a vector of withdrawals carried by a post-Shanghai block.
type Withdrawals []*Withdrawal
