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

	"github.com/erigontech/erigon/core/tracing"
	"github.com/erigontech/erigon/core/types"
	"github.com/erigontech/erigon/params"
)

// Ethash-era static block rewards, in wei, by the fork they first apply
// from. Post-merge chains configure a RewardCalculator that returns no
// rewards at all; these constants are only exercised by EthashRewardCalculator.
var (
	FrontierBlockReward       = uint256.NewInt(5e18)
	ByzantiumBlockReward      = uint256.NewInt(3e18)
	ConstantinopleBlockReward = uint256.NewInt(2e18)
)

var uint8Val = uint256.NewInt(8)
var uint32Val = uint256.NewInt(32)

// EthashRewardCalculator computes the static miner and uncle rewards of
// pre-merge proof-of-work Ethereum: the miner receives the fork's static
// block reward plus 1/32 of that reward per included uncle; each uncle
// miner receives a reward scaled by how close the uncle is to the
// including block.
type EthashRewardCalculator struct {
	Config *params.ChainConfig
}

func (c *EthashRewardCalculator) CalculateRewards(block *types.Block) ([]Reward, error) {
	spec := c.Config.GetSpec(block.Number(), block.Time())

	blockReward := FrontierBlockReward
	if spec.IsByzantium {
		blockReward = ByzantiumBlockReward
	}
	if spec.IsConstantinople {
		blockReward = ConstantinopleBlockReward
	}

	uncles := block.Uncles()
	rewards := make([]Reward, 0, len(uncles)+1)

	reward := new(uint256.Int).Set(blockReward)
	headerNum := uint256.MustFromBig(block.Number())
	r := new(uint256.Int)
	for _, uncle := range uncles {
		uncleNum := uint256.MustFromBig(uncle.Number)

		r.Add(uncleNum, uint8Val)
		r.Sub(r, headerNum)
		r.Mul(r, blockReward)
		r.Div(r, uint8Val)
		rewards = append(rewards, Reward{
			Address: uncle.Coinbase,
			Kind:    RewardKindUncle,
			Value:   new(uint256.Int).Set(r),
		})

		r.Div(blockReward, uint32Val)
		reward.Add(reward, r)
	}

	rewards = append(rewards, Reward{
		Address: block.Coinbase(),
		Kind:    RewardKindBlock,
		Value:   reward,
	})
	return rewards, nil
}

// applyRewards applies each reward produced by the calculator, in the order
// produced: account creation uses the reward as an opening balance rather
// than a transfer, and every credit is visible to the tracer's balance-change
// hook (when bound) so reward-induced state deltas can be told apart from
// transaction effects.
func applyRewards(state WorldState, rewards []Reward, spec *params.Spec, tracer *tracing.Hooks) error {
	for _, rw := range rewards {
		var prev *uint256.Int
		if tracer != nil && tracer.OnBalanceChange != nil && state.AccountExists(rw.Address) {
			var err error
			prev, err = state.GetBalance(rw.Address)
			if err != nil {
				return &StateFailureError{Op: "getBalance(reward)", Err: err}
			}
		} else {
			prev = uint256.NewInt(0)
		}

		if !state.AccountExists(rw.Address) {
			state.CreateAccount(rw.Address, rw.Value)
		} else if err := state.AddToBalance(rw.Address, rw.Value, spec); err != nil {
			return &StateFailureError{Op: "addToBalance(reward)", Err: err}
		}

		if tracer != nil && tracer.OnBalanceChange != nil {
			newBalance, err := state.GetBalance(rw.Address)
			if err != nil {
				return &StateFailureError{Op: "getBalance(reward)", Err: err}
			}
			reason := tracing.BalanceIncreaseRewardMineBlock
			if rw.Kind == RewardKindUncle {
				reason = tracing.BalanceIncreaseRewardMineUncle
			}
			tracer.OnBalanceChange(rw.Address, prev, newBalance, reason)
		}
	}
	return nil
}
