// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands coinflip 命令行
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/33cn/coinflip/common"
	"github.com/33cn/coinflip/common/address"
	"github.com/33cn/coinflip/executor"
	cfexec "github.com/33cn/coinflip/plugin/dapp/coinflip/executor"
	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	cmdtypes "github.com/33cn/coinflip/system/dapp/commands"
	"github.com/33cn/coinflip/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var cfType = ct.NewType()

// Cmd coinflip 命令
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coinflip",
		Short: "Coin flip wager management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateCmd(),
		JoinCmd(),
		CancelCmd(),
		RefundCmd(),
		ResolveCmd(),
		EmergencyResolveCmd(),
		ClaimCmd(),
		AdminCmd(),
		QueryCmd(),
	)
	return cmd
}

func addFromFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("from", "f", "", "sender address")
	cmd.MarkFlagRequired("from")
}

func addGameIDFlag(cmd *cobra.Command) {
	cmd.Flags().Int64P("gameID", "g", 0, "game id")
	cmd.MarkFlagRequired("gameID")
}

// sendAction 构造 coinflip 交易并在本地链上执行, value 在编码 payload 之前调用, 可以补全参数
func sendAction(cmd *cobra.Command, action string, param interface{}, value func(exec *executor.Executor) (int64, error)) {
	from, _ := cmd.Flags().GetString("from")
	cmdtypes.SendTx(cmd, func(exec *executor.Executor) (*types.Transaction, error) {
		if err := address.CheckAddress(from); err != nil {
			return nil, err
		}
		var amount int64
		if value != nil {
			var err error
			if amount, err = value(exec); err != nil {
				return nil, err
			}
		}
		tx, err := cfType.CreateTx(action, param)
		if err != nil {
			return nil, err
		}
		tx.From = from
		tx.Value = amount
		return tx, nil
	}, ct.LogName)
}

// nativeValue 主币下注时交易需要附带等额的 value
func nativeValue(assetStr string, stake int64) func(exec *executor.Executor) (int64, error) {
	return func(exec *executor.Executor) (int64, error) {
		asset, err := types.ParseAsset(assetStr)
		if err != nil {
			return 0, err
		}
		if asset.IsNative() {
			return stake, nil
		}
		return 0, nil
	}
}

func assetOrNative(exec *executor.Executor, s string) string {
	if s == "" {
		return exec.NativeAsset().String()
	}
	return s
}

// CreateCmd 创建对局
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a game with a stake on one side",
		Run:   create,
	}
	addCreateFlags(cmd)
	return cmd
}

func addCreateFlags(cmd *cobra.Command) {
	addFromFlag(cmd)
	cmd.Flags().StringP("asset", "e", "", "asset as exec.symbol, default the native coin")
	cmd.Flags().StringP("stake", "s", "", "stake amount, e.g. 1.5")
	cmd.MarkFlagRequired("stake")
	cmd.Flags().StringP("side", "d", "heads", "creator side, heads or tails")
}

func parseSide(s string) (int32, error) {
	switch s {
	case "heads", "0":
		return ct.SideHeads, nil
	case "tails", "1":
		return ct.SideTails, nil
	}
	return 0, ct.ErrInvalidSide
}

func create(cmd *cobra.Command, args []string) {
	assetStr, _ := cmd.Flags().GetString("asset")
	sideStr, _ := cmd.Flags().GetString("side")
	stake, err := cmdtypes.GetAmount(cmd, "stake")
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	side, err := parseSide(sideStr)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	param := &ct.CoinflipCreate{Asset: assetStr, Stake: stake, Side: side}
	sendAction(cmd, "Create", param, func(exec *executor.Executor) (int64, error) {
		param.Asset = assetOrNative(exec, assetStr)
		return nativeValue(param.Asset, stake)(exec)
	})
}

// JoinCmd 加入对局
func JoinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join an open game, matching its stake",
		Run:   join,
	}
	addFromFlag(cmd)
	addGameIDFlag(cmd)
	return cmd
}

func join(cmd *cobra.Command, args []string) {
	gameID, _ := cmd.Flags().GetInt64("gameID")
	sendAction(cmd, "Join", &ct.CoinflipJoin{GameID: gameID}, func(exec *executor.Executor) (int64, error) {
		msg, err := exec.Query(ct.CoinflipX, ct.FuncNameGetGame, &ct.ReqGame{GameID: gameID})
		if err != nil {
			return 0, err
		}
		game := msg.(*ct.Game)
		return nativeValue(game.Asset, game.Stake)(exec)
	})
}

// CancelCmd 取消未加入的对局
func CancelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel an unjoined game and credit the stake back",
		Run: func(cmd *cobra.Command, args []string) {
			gameID, _ := cmd.Flags().GetInt64("gameID")
			sendAction(cmd, "Cancel", &ct.CoinflipCancel{GameID: gameID}, nil)
		},
	}
	addFromFlag(cmd)
	addGameIDFlag(cmd)
	return cmd
}

// RefundCmd 超时退款
func RefundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refund",
		Short: "Refund both players of a game the signer never resolved",
		Run: func(cmd *cobra.Command, args []string) {
			gameID, _ := cmd.Flags().GetInt64("gameID")
			sendAction(cmd, "ClaimRefund", &ct.CoinflipClaimRefund{GameID: gameID}, nil)
		},
	}
	addFromFlag(cmd)
	addGameIDFlag(cmd)
	return cmd
}

// ResolveCmd signer 揭示
func ResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a joined game by revealing the epoch secret",
		Run: func(cmd *cobra.Command, args []string) {
			gameID, _ := cmd.Flags().GetInt64("gameID")
			reveal, _ := cmd.Flags().GetString("reveal")
			sendAction(cmd, "Resolve", &ct.CoinflipResolve{GameID: gameID, Reveal: reveal}, nil)
		},
	}
	addFromFlag(cmd)
	addGameIDFlag(cmd)
	cmd.Flags().StringP("reveal", "r", "", "epoch secret in hex")
	cmd.MarkFlagRequired("reveal")
	return cmd
}

// EmergencyResolveCmd signer 指定结果
func EmergencyResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emergency",
		Short: "Resolve a joined game with an explicit outcome",
		Run: func(cmd *cobra.Command, args []string) {
			gameID, _ := cmd.Flags().GetInt64("gameID")
			sideStr, _ := cmd.Flags().GetString("side")
			side, err := parseSide(sideStr)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return
			}
			sendAction(cmd, "EmergencyResolve", &ct.CoinflipEmergencyResolve{GameID: gameID, Side: side}, nil)
		},
	}
	addFromFlag(cmd)
	addGameIDFlag(cmd)
	cmd.Flags().StringP("side", "d", "", "winning side, heads or tails")
	cmd.MarkFlagRequired("side")
	return cmd
}

// ClaimCmd 提取可领取余额
func ClaimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Withdraw the whole claimable balance of an asset",
		Run: func(cmd *cobra.Command, args []string) {
			assetStr, _ := cmd.Flags().GetString("asset")
			param := &ct.CoinflipClaim{}
			sendAction(cmd, "Claim", param, func(exec *executor.Executor) (int64, error) {
				param.Asset = assetOrNative(exec, assetStr)
				return 0, nil
			})
		},
	}
	addFromFlag(cmd)
	cmd.Flags().StringP("asset", "e", "", "asset as exec.symbol, default the native coin")
	return cmd
}

// gateParam 按管理操作名解码 json 参数
func gateParam(action string, data []byte) (interface{}, error) {
	var param interface{}
	switch action {
	case ct.GateSetWhitelist:
		param = &ct.CoinflipSetWhitelist{}
	case ct.GateSetSigner:
		param = &ct.CoinflipSetSigner{}
	case ct.GateCommitEpoch:
		param = &ct.CoinflipCommitEpoch{}
	case ct.GateWithdrawFees:
		param = &ct.CoinflipWithdrawFees{}
	case ct.GateSetPause:
		param = &ct.CoinflipSetPause{}
	case ct.GateAuthorizeUpgrade:
		param = &ct.CoinflipAuthorizeUpgrade{}
	default:
		return nil, errors.Wrapf(types.ErrActionNotSupport, "gate %s", action)
	}
	if err := json.Unmarshal(data, param); err != nil {
		return nil, errors.Wrap(types.ErrInvalidParam, err.Error())
	}
	return param, nil
}

// commitment 由 secret 计算承诺
func commitment(secret string) (string, error) {
	b, err := common.FromHex(secret)
	if err != nil || len(b) == 0 {
		return "", ct.ErrInvalidReveal
	}
	return common.ToHex(common.Keccak256(b)), nil
}

func fingerprint(action, params string) (string, error) {
	param, err := gateParam(action, []byte(params))
	if err != nil {
		return "", err
	}
	return cfexec.Fingerprint(action, param), nil
}
