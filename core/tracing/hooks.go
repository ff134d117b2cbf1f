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

// Package tracing defines the hook surface a caller-supplied tracer may
// implement. Every hook is optional; callers nil-check before invoking.
package tracing

import (
	"github.com/holiman/uint256"

	libcommon "github.com/erigontech/erigon-lib/common"
)

// BalanceChangeReason identifies why a balance mutation happened, so a
// tracer can distinguish reward credits from transfers from withdrawals.
type BalanceChangeReason byte

const (
	BalanceChangeUnspecified BalanceChangeReason = iota
	BalanceIncreaseRewardMineBlock
	BalanceIncreaseRewardMineUncle
	BalanceIncreaseWithdrawal
	BalanceIncreaseDaoContract
	BalanceDecreaseDaoAccount
)

// Hooks is the set of callbacks a block-processing tracer may implement.
// All fields are optional; a nil hook is simply skipped.
type Hooks struct {
	OnBlockStart      func()
	OnBlockEnd        func(err error)
	OnSystemCallStart func()
	OnSystemCallEnd   func()
	OnTxStart         func(txHash libcommon.Hash)
	OnTxEnd           func(receiptStatus uint64)
	OnBalanceChange   func(addr libcommon.Address, prev, new *uint256.Int, reason BalanceChangeReason)
}
