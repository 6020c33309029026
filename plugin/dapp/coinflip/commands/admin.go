// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/33cn/coinflip/executor"
	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	cmdtypes "github.com/33cn/coinflip/system/dapp/commands"
	"github.com/spf13/cobra"
)

// AdminCmd 管理操作, 每个操作需要同样参数提交两次, 间隔至少一个时间锁延迟
func AdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Timelocked owner operations",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		WhitelistCmd(),
		SignerCmd(),
		CommitEpochCmd(),
		WithdrawFeesCmd(),
		PauseCmd(),
		UpgradeCmd(),
	)
	return cmd
}

// WhitelistCmd 资产白名单
func WhitelistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whitelist",
		Short: "Allow or disallow an asset for new stakes",
		Run:   whitelist,
	}
	addFromFlag(cmd)
	cmd.Flags().StringP("asset", "e", "", "asset as exec.symbol")
	cmd.MarkFlagRequired("asset")
	cmd.Flags().BoolP("allowed", "l", true, "allowed")
	return cmd
}

func whitelist(cmd *cobra.Command, args []string) {
	asset, _ := cmd.Flags().GetString("asset")
	allowed, _ := cmd.Flags().GetBool("allowed")
	sendAction(cmd, "SetWhitelist", &ct.CoinflipSetWhitelist{Asset: asset, Allowed: allowed}, nil)
}

// SignerCmd 轮换 signer
func SignerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signer",
		Short: "Rotate the resolution signer",
		Run: func(cmd *cobra.Command, args []string) {
			signer, _ := cmd.Flags().GetString("signer")
			sendAction(cmd, "SetSigner", &ct.CoinflipSetSigner{Signer: signer}, nil)
		},
	}
	addFromFlag(cmd)
	cmd.Flags().StringP("signer", "s", "", "new signer address")
	cmd.MarkFlagRequired("signer")
	return cmd
}

// CommitEpochCmd 提交 epoch 承诺
func CommitEpochCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Commit the hash of an epoch secret",
		Run:   commitEpoch,
	}
	addCommitEpochFlags(cmd)
	return cmd
}

func addCommitEpochFlags(cmd *cobra.Command) {
	addFromFlag(cmd)
	cmd.Flags().Int64P("epoch", "n", 0, "epoch, must not be lower than the current one")
	cmd.MarkFlagRequired("epoch")
	cmd.Flags().StringP("secret", "s", "", "epoch secret in hex, the commitment is its keccak256")
	cmd.Flags().StringP("commitment", "c", "", "commitment in hex, used when secret is empty")
}

func commitEpoch(cmd *cobra.Command, args []string) {
	epoch, _ := cmd.Flags().GetInt64("epoch")
	secret, _ := cmd.Flags().GetString("secret")
	commit, _ := cmd.Flags().GetString("commitment")
	if secret != "" {
		var err error
		if commit, err = commitment(secret); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return
		}
	}
	sendAction(cmd, "CommitEpoch", &ct.CoinflipCommitEpoch{Commitment: commit, Epoch: epoch}, nil)
}

// WithdrawFeesCmd 提取手续费
func WithdrawFeesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw accrued fees to the owner",
		Run:   withdrawFees,
	}
	addFromFlag(cmd)
	cmd.Flags().StringP("asset", "e", "", "asset as exec.symbol, default the native coin")
	cmd.Flags().StringP("amount", "a", "", "amount, e.g. 0.02")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func withdrawFees(cmd *cobra.Command, args []string) {
	assetStr, _ := cmd.Flags().GetString("asset")
	amount, err := cmdtypes.GetAmount(cmd, "amount")
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	param := &ct.CoinflipWithdrawFees{Amount: amount}
	sendAction(cmd, "WithdrawFees", param, func(exec *executor.Executor) (int64, error) {
		param.Asset = assetOrNative(exec, assetStr)
		return 0, nil
	})
}

// PauseCmd 暂停/恢复
func PauseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pause",
		Short: "Pause or unpause new games and joins",
		Run: func(cmd *cobra.Command, args []string) {
			paused, _ := cmd.Flags().GetBool("paused")
			sendAction(cmd, "SetPause", &ct.CoinflipSetPause{Paused: paused}, nil)
		},
	}
	addFromFlag(cmd)
	cmd.Flags().BoolP("paused", "p", true, "paused")
	return cmd
}

// UpgradeCmd 授权升级
func UpgradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Record an authorized upgrade version",
		Run: func(cmd *cobra.Command, args []string) {
			version, _ := cmd.Flags().GetString("version")
			sendAction(cmd, "AuthorizeUpgrade", &ct.CoinflipAuthorizeUpgrade{Version: version}, nil)
		},
	}
	addFromFlag(cmd)
	cmd.Flags().StringP("version", "v", "", "version")
	cmd.MarkFlagRequired("version")
	return cmd
}
