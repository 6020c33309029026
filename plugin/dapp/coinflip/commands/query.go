// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/33cn/coinflip/executor"
	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	cmdtypes "github.com/33cn/coinflip/system/dapp/commands"
	"github.com/33cn/coinflip/types"
	"github.com/spf13/cobra"
)

// QueryCmd coinflip 查询
func QueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query coinflip state",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		GameCmd(),
		ListCmd(),
		EpochCmd(),
		ClaimableCmd(),
		FeesCmd(),
		WhitelistedCmd(),
		AdminStateCmd(),
		AllowanceCmd(),
		TimelockCmd(),
		FingerprintCmd(),
	)
	return cmd
}

// GameResult 对局, 金额以十进制显示
type GameResult struct {
	*ct.Game
	StatusName string `json:"statusName"`
	StakeStr   string `json:"stakeStr"`
	PoolStr    string `json:"poolStr"`
	SideName   string `json:"sideName"`
}

// GamesResult 分页结果
type GamesResult struct {
	Games      []*GameResult `json:"games"`
	NextCursor int64         `json:"nextCursor"`
}

func gameResult(game *ct.Game) *GameResult {
	return &GameResult{
		Game:       game,
		StatusName: ct.StatusName(game.Status),
		StakeStr:   types.FormatAmount(game.Stake),
		PoolStr:    types.FormatAmount(game.Pool),
		SideName:   ct.SideName(game.CreatorSide),
	}
}

// AmountResult 金额
type AmountResult struct {
	*ct.ReplyAmount
	AmountStr string `json:"amountStr"`
}

func queryRun(cmd *cobra.Command, funcName string, param interface{}, cb cmdtypes.Callback) {
	ctx := cmdtypes.NewLocalCtx(cmd, func(exec *executor.Executor) (interface{}, error) {
		return exec.Query(ct.CoinflipX, funcName, param)
	})
	if cb != nil {
		ctx.SetResultCb(cb)
	}
	ctx.Run()
}

// queryAsset 资产参数为空时使用主币
func queryAsset(cmd *cobra.Command, funcName string, build func(asset string) interface{}, cb cmdtypes.Callback) {
	asset, _ := cmd.Flags().GetString("asset")
	ctx := cmdtypes.NewLocalCtx(cmd, func(exec *executor.Executor) (interface{}, error) {
		return exec.Query(ct.CoinflipX, funcName, build(assetOrNative(exec, asset)))
	})
	if cb != nil {
		ctx.SetResultCb(cb)
	}
	ctx.Run()
}

func parseAmountResult(res interface{}) (interface{}, error) {
	reply := res.(*ct.ReplyAmount)
	return &AmountResult{ReplyAmount: reply, AmountStr: types.FormatAmount(reply.Amount)}, nil
}

// GameCmd 查询单局
func GameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Show one game",
		Run: func(cmd *cobra.Command, args []string) {
			gameID, _ := cmd.Flags().GetInt64("gameID")
			queryRun(cmd, ct.FuncNameGetGame, &ct.ReqGame{GameID: gameID}, func(res interface{}) (interface{}, error) {
				return gameResult(res.(*ct.Game)), nil
			})
		},
	}
	addGameIDFlag(cmd)
	return cmd
}

// ListCmd 分页列出对局
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games, optionally by address or status",
		Run:   list,
	}
	addListFlags(cmd)
	return cmd
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "a", "", "list games this address created or joined")
	cmd.Flags().Int32P("status", "s", 0, "list games in status (1 created, 2 resolving, 3 resolved, 4 cancelled)")
	cmd.Flags().Int64P("cursor", "c", 0, "last game id of the previous page")
	cmd.Flags().Int32P("count", "n", 0, "page size")
	cmd.Flags().Int32P("direction", "d", ct.ListDESC, "0 newest first, 1 oldest first")
}

func list(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	status, _ := cmd.Flags().GetInt32("status")
	cursor, _ := cmd.Flags().GetInt64("cursor")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	req := &ct.ReqListGames{Addr: addr, Status: status, Cursor: cursor, Count: count, Direction: direction}
	funcName := ct.FuncNameListGames
	switch {
	case addr != "":
		funcName = ct.FuncNameListGamesByAddr
	case status != 0:
		funcName = ct.FuncNameListGamesByStatus
	}
	queryRun(cmd, funcName, req, func(res interface{}) (interface{}, error) {
		reply := res.(*ct.ReplyGames)
		result := &GamesResult{NextCursor: reply.NextCursor, Games: []*GameResult{}}
		for _, game := range reply.Games {
			result.Games = append(result.Games, gameResult(game))
		}
		return result, nil
	})
}

// EpochCmd 查询 epoch
func EpochCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "epoch",
		Short: "Show the current epoch or the commitment of an epoch",
		Run: func(cmd *cobra.Command, args []string) {
			epoch, _ := cmd.Flags().GetInt64("epoch")
			if epoch == 0 {
				queryRun(cmd, ct.FuncNameGetEpoch, &ct.ReqNil{}, nil)
				return
			}
			queryRun(cmd, ct.FuncNameGetCommitment, &ct.ReqEpoch{Epoch: epoch}, nil)
		},
	}
	cmd.Flags().Int64P("epoch", "n", 0, "epoch, 0 for the current one")
	return cmd
}

// ClaimableCmd 可领取余额
func ClaimableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claimable",
		Short: "Show the claimable balance of an address",
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			queryAsset(cmd, ct.FuncNameGetClaimable, func(asset string) interface{} {
				return &ct.ReqAddrAsset{Addr: addr, Asset: asset}
			}, parseAmountResult)
		},
	}
	addAddrAssetFlags(cmd)
	return cmd
}

func addAddrAssetFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "a", "", "address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("asset", "e", "", "asset as exec.symbol, default the native coin")
}

// FeesCmd 累计手续费
func FeesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fees",
		Short: "Show accrued fees of an asset",
		Run: func(cmd *cobra.Command, args []string) {
			queryAsset(cmd, ct.FuncNameGetFees, func(asset string) interface{} {
				return &ct.ReqAsset{Asset: asset}
			}, parseAmountResult)
		},
	}
	cmd.Flags().StringP("asset", "e", "", "asset as exec.symbol, default the native coin")
	return cmd
}

// WhitelistedCmd 资产白名单状态
func WhitelistedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whitelist",
		Short: "Show whether an asset is allowed for new stakes",
		Run: func(cmd *cobra.Command, args []string) {
			asset, _ := cmd.Flags().GetString("asset")
			queryRun(cmd, ct.FuncNameGetWhitelist, &ct.ReqAsset{Asset: asset}, nil)
		},
	}
	cmd.Flags().StringP("asset", "e", "", "asset as exec.symbol")
	cmd.MarkFlagRequired("asset")
	return cmd
}

// AdminStateCmd 管理状态
func AdminStateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Show owner, signer, pause flag and parameters",
		Run: func(cmd *cobra.Command, args []string) {
			queryRun(cmd, ct.FuncNameGetAdmin, &ct.ReqNil{}, nil)
		},
	}
	return cmd
}

// AllowanceCmd 当日额度
func AllowanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allowance",
		Short: "Show today's used and remaining stake allowance",
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			queryAsset(cmd, ct.FuncNameGetAllowance, func(asset string) interface{} {
				return &ct.ReqAddrAsset{Addr: addr, Asset: asset}
			}, nil)
		},
	}
	addAddrAssetFlags(cmd)
	return cmd
}

// TimelockCmd 排队中的管理操作
func TimelockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timelock",
		Short: "Show when a queued admin operation becomes executable",
		Run:   timelock,
	}
	addTimelockFlags(cmd)
	return cmd
}

func addTimelockFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("fingerprint", "p", "", "operation fingerprint")
	cmd.Flags().StringP("action", "t", "", "gate name, used with params when fingerprint is empty")
	cmd.Flags().StringP("params", "j", "", "normalized params in json")
}

func timelock(cmd *cobra.Command, args []string) {
	fp, _ := cmd.Flags().GetString("fingerprint")
	if fp == "" {
		action, _ := cmd.Flags().GetString("action")
		params, _ := cmd.Flags().GetString("params")
		var err error
		if fp, err = fingerprint(action, params); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return
		}
	}
	queryRun(cmd, ct.FuncNameGetTimelock, &ct.ReqFingerprint{Fingerprint: fp}, nil)
}

// FingerprintCmd 计算管理操作指纹
func FingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Compute the timelock fingerprint of an admin operation",
		Run: func(cmd *cobra.Command, args []string) {
			action, _ := cmd.Flags().GetString("action")
			params, _ := cmd.Flags().GetString("params")
			fp, err := fingerprint(action, params)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return
			}
			cmdtypes.PrintJSON(cmd, &ct.ReqFingerprint{Fingerprint: fp})
		},
	}
	cmd.Flags().StringP("action", "t", "", "gate name, e.g. setPause")
	cmd.MarkFlagRequired("action")
	cmd.Flags().StringP("params", "j", "{}", "normalized params in json")
	return cmd
}
