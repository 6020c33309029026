// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/coinflip/common/address"
	"github.com/33cn/coinflip/executor"
	"github.com/33cn/coinflip/system/dapp"
	"github.com/33cn/coinflip/types"
	"github.com/spf13/cobra"
)

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		GetBalanceCmd(),
		SeedToAddrCmd(),
		ExecAddrCmd(),
	)
	return cmd
}

// BalanceResult 余额
type BalanceResult struct {
	Addr    string `json:"addr"`
	Asset   string `json:"asset"`
	Balance string `json:"balance"`
}

// GetBalanceCmd get balance of an address
func GetBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get balance of a account address",
		Run:   balance,
	}
	addBalanceFlags(cmd)
	return cmd
}

func addBalanceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("asset", "e", "", "asset as exec.symbol, default the native coin")
}

func balance(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	assetStr, _ := cmd.Flags().GetString("asset")
	ctx := NewLocalCtx(cmd, func(exec *executor.Executor) (interface{}, error) {
		if err := address.CheckAddress(addr); err != nil {
			return nil, err
		}
		asset := exec.NativeAsset()
		if assetStr != "" {
			var err error
			if asset, err = types.ParseAsset(assetStr); err != nil {
				return nil, err
			}
		}
		bal, err := exec.Balance(asset, addr)
		if err != nil {
			return nil, err
		}
		return &BalanceResult{Addr: address.Normalize(addr), Asset: asset.String(), Balance: types.FormatAmount(bal)}, nil
	})
	ctx.Run()
}

// SeedToAddrCmd 由种子字符串得到本地开发地址
func SeedToAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed_addr",
		Short: "Derive a deterministic local address from a seed string",
		Run: func(cmd *cobra.Command, args []string) {
			seed, _ := cmd.Flags().GetString("seed")
			PrintJSON(cmd, map[string]string{"seed": seed, "addr": address.FromSeed(seed)})
		},
	}
	cmd.Flags().StringP("seed", "s", "", "seed string")
	cmd.MarkFlagRequired("seed")
	return cmd
}

// ExecAddrCmd 执行器地址
func ExecAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec_addr",
		Short: "Get the address that holds funds of an executor",
		Run: func(cmd *cobra.Command, args []string) {
			name, _ := cmd.Flags().GetString("exec")
			PrintJSON(cmd, map[string]string{"exec": name, "addr": dapp.ExecAddress(name)})
		},
	}
	cmd.Flags().StringP("exec", "e", "", "executor name")
	cmd.MarkFlagRequired("exec")
	return cmd
}
