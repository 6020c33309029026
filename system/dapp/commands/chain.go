// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/coinflip/common"
	"github.com/33cn/coinflip/executor"
	"github.com/33cn/coinflip/system/dapp"
	"github.com/spf13/cobra"
)

// ChainResult 区块头信息
type ChainResult struct {
	Height     int64    `json:"height"`
	BlockTime  int64    `json:"blockTime"`
	ParentHash string   `json:"parentHash,omitempty"`
	Drivers    []string `json:"drivers,omitempty"`
}

func chainResult(exec *executor.Executor, drivers bool) *ChainResult {
	head := exec.Head()
	res := &ChainResult{Height: head.Height, BlockTime: head.BlockTime, ParentHash: common.ToHex(exec.BlockHash(head.Height - 1))}
	if drivers {
		res.Drivers = dapp.RegisteredDrivers()
	}
	return res
}

// InitCmd 初始化本地链
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the local chain database and run genesis",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := NewLocalCtx(cmd, func(exec *executor.Executor) (interface{}, error) {
				return chainResult(exec, true), nil
			})
			ctx.Run()
		},
	}
	return cmd
}

// ChainCmd 区块环境
func ChainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Local chain block management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		ChainStatusCmd(),
		ChainNextCmd(),
	)
	return cmd
}

// ChainStatusCmd 当前区块
func ChainStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show current height and block time",
		Run:   chainStatus,
	}
	return cmd
}

func chainStatus(cmd *cobra.Command, args []string) {
	ctx := NewLocalCtx(cmd, func(exec *executor.Executor) (interface{}, error) {
		return chainResult(exec, false), nil
	})
	ctx.Run()
}

// ChainNextCmd 封块
func ChainNextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Seal blocks and advance block time",
		Run:   chainNext,
	}
	addChainNextFlags(cmd)
	return cmd
}

func addChainNextFlags(cmd *cobra.Command) {
	cmd.Flags().Int64P("count", "n", 1, "number of blocks")
	cmd.Flags().Int64P("interval", "i", 0, "seconds between blocks, 0 uses the configured interval")
	cmd.Flags().Int64P("advance", "t", 0, "advance block time by at least this many seconds instead")
}

func chainNext(cmd *cobra.Command, args []string) {
	count, _ := cmd.Flags().GetInt64("count")
	interval, _ := cmd.Flags().GetInt64("interval")
	advance, _ := cmd.Flags().GetInt64("advance")
	ctx := NewLocalCtx(cmd, func(exec *executor.Executor) (interface{}, error) {
		if advance > 0 {
			if err := exec.AdvanceTime(advance); err != nil {
				return nil, err
			}
			return chainResult(exec, false), nil
		}
		if interval <= 0 {
			interval = exec.BlockInterval()
		}
		for i := int64(0); i < count; i++ {
			if err := exec.NextBlock(interval); err != nil {
				return nil, err
			}
		}
		return chainResult(exec, false), nil
	})
	ctx.Run()
}
