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

package params

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func testConfig() *ChainConfig {
	return &ChainConfig{
		ChainID:             big.NewInt(1),
		DAOForkBlock:        big.NewInt(1_920_000),
		ByzantiumBlock:      big.NewInt(4_370_000),
		ConstantinopleBlock: big.NewInt(7_280_000),
		LondonBlock:         big.NewInt(12_965_000),
		ShanghaiTime:        big.NewInt(1_681_338_455),
		CancunTime:          big.NewInt(1_710_338_135),
	}
}

func TestGetSpec_ForkActivation(t *testing.T) {
	cfg := testConfig()

	preByzantium := cfg.GetSpec(big.NewInt(4_000_000), 0)
	require.False(t, preByzantium.IsByzantium)

	atByzantium := cfg.GetSpec(big.NewInt(4_370_000), 0)
	require.True(t, atByzantium.IsByzantium)

	postCancun := cfg.GetSpec(big.NewInt(20_000_000), 1_800_000_000)
	require.True(t, postCancun.IsShanghai)
	require.True(t, postCancun.IsCancun)
	require.True(t, postCancun.BlobGasActive())
	require.True(t, postCancun.BeaconRootActive())
	require.True(t, postCancun.WithdrawalsActive())
}

func TestGetSpec_DAOForkOnlyAtExactHeight(t *testing.T) {
	cfg := testConfig()

	before := cfg.GetSpec(big.NewInt(1_919_999), 0)
	require.False(t, before.IsDAOFork)

	at := cfg.GetSpec(big.NewInt(1_920_000), 0)
	require.True(t, at.IsDAOFork)

	after := cfg.GetSpec(big.NewInt(1_920_001), 0)
	require.False(t, after.IsDAOFork)
}

func TestGetSpec_IsPureFunctionOfInputs(t *testing.T) {
	cfg := testConfig()
	s1 := cfg.GetSpec(big.NewInt(5_000_000), 1_700_000_000)
	s2 := cfg.GetSpec(big.NewInt(5_000_000), 1_700_000_000)
	require.Equal(t, s1, s2)
}
