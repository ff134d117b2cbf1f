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

// Command blockprocessor replays a synthetic branch of blocks through
// core/blockprocessor against an in-memory world state, for operators who
// want to exercise the driver without a full node around it. It is
// deliberately narrow: no real transaction execution engine is wired in
// (that sub-engine is an external collaborator the core only consumes),
// so every replayed block carries zero transactions and rewards-only
// state deltas.
package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/alecthomas/kong"

	libcommon "github.com/erigontech/erigon-lib/common"

	"github.com/erigontech/erigon/core/blockprocessor"
	"github.com/erigontech/erigon/core/blockprocessor/memstate"
	"github.com/erigontech/erigon/core/types"
	"github.com/erigontech/erigon/params"
)

var cli struct {
	Blocks    int    `help:"Number of blocks to replay." default:"8"`
	Coinbase  string `help:"Miner address credited with block rewards." default:"0x0000000000000000000000000000000000000001"`
	GasLimit  uint64 `help:"Gas limit carried by every synthetic header." default:"30000000"`
	StartTime uint64 `help:"Timestamp of the first synthetic block." default:"1700000000"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("blockprocessor"),
		kong.Description("Replays a synthetic branch of blocks through the block processor."),
	)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "blockprocessor:", err)
		os.Exit(1)
	}
}

func run() error {
	chainConfig := &params.ChainConfig{
		ChainID:             big.NewInt(1337),
		ByzantiumBlock:      big.NewInt(0),
		ConstantinopleBlock: big.NewInt(0),
		LondonBlock:         big.NewInt(0),
	}

	state := memstate.New()
	processor, err := blockprocessor.NewBlockProcessor(blockprocessor.Config{
		ChainConfig:  chainConfig,
		State:        state,
		Executor:     noopExecutor{},
		Validator:    blockprocessor.DefaultBlockValidator{},
		Rewards:      &blockprocessor.EthashRewardCalculator{Config: chainConfig},
		Withdrawals:  blockprocessor.DefaultWithdrawalApplier{},
		Beacon:       blockprocessor.DefaultBeaconRootHandler{},
		ReceiptsRoot: blockprocessor.DefaultReceiptsRootCalculator{},
		Log:          blockprocessor.StdLogger{},
	})
	if err != nil {
		return fmt.Errorf("construct block processor: %w", err)
	}

	coinbase := libcommon.HexToAddress(cli.Coinbase)
	blocks := buildSyntheticBranch(coinbase, cli.Blocks, cli.GasLimit, cli.StartTime)

	// The synthetic branch's target state roots are not known up front
	// (they depend on the reward accumulation this run itself performs),
	// so replay with NoValidation: the operator is exercising the driver,
	// not checking a real suggester's claims.
	processed, err := processor.Process(libcommon.Hash{}, blocks, blockprocessor.NoValidation)
	if err != nil {
		return fmt.Errorf("process branch: %w", err)
	}

	for _, b := range processed {
		fmt.Printf("block %d: root=%s gasUsed=%d\n", b.NumberU64(), b.Root(), b.GasUsed())
	}
	balance, err := state.GetBalance(coinbase)
	if err != nil {
		return fmt.Errorf("read coinbase balance: %w", err)
	}
	fmt.Printf("coinbase %s balance after replay: %s wei\n", coinbase, balance)
	return nil
}

func buildSyntheticBranch(coinbase libcommon.Address, n int, gasLimit uint64, startTime uint64) types.Blocks {
	blocks := make(types.Blocks, 0, n)
	parent := libcommon.Hash{}
	for i := 0; i < n; i++ {
		header := &types.Header{
			ParentHash: parent,
			Coinbase:   coinbase,
			Difficulty: big.NewInt(1),
			Number:     big.NewInt(int64(i + 1)),
			GasLimit:   gasLimit,
			Time:       startTime + uint64(i)*12,
		}
		block := types.NewBlock(header, nil, nil, nil)
		blocks = append(blocks, block)
		parent = block.Hash()
	}
	return blocks
}

// noopExecutor processes zero transactions per block: this command has no
// real execution engine wired in, so every synthetic block it replays is
// empty and only reward application produces any state delta.
type noopExecutor struct{}

func (noopExecutor) ProcessTransactions(block *types.Block, options blockprocessor.Options, tracer *blockprocessor.ReceiptsTracer, spec *params.Spec) (types.Receipts, error) {
	return types.Receipts{}, nil
}

func (noopExecutor) SystemCall(header *types.Header, addr libcommon.Address, input []byte) ([]byte, error) {
	return nil, nil
}
