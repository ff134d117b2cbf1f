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

// Package consensus holds the narrow collaborator contracts block
// processing needs from consensus-layer concerns without depending on a
// full consensus engine.
package consensus

import (
	libcommon "github.com/erigontech/erigon-lib/common"
)

// SystemCall invokes the contract at addr with input as an implicit,
// protocol-mandated call that is not one of the block's transactions (used
// for the EIP-4788 beacon-roots touch). It returns the call's return data.
type SystemCall func(addr libcommon.Address, input []byte) ([]byte, error)
