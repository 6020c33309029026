// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli 命令行入口, 加载插件的执行器以及命令
package cli

import (
	"fmt"
	"os"

	"github.com/33cn/coinflip/common/log"
	"github.com/33cn/coinflip/pluginmgr"
	"github.com/33cn/coinflip/system/dapp/commands"
	"github.com/spf13/cobra"
)

// NewRootCmd 根命令, 插件命令需要先 Register
func NewRootCmd(title string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   title + "-cli",
		Short: title + " local chain tools",
	}
	rootCmd.PersistentFlags().String("conf", title+".toml", "config file")
	rootCmd.AddCommand(
		commands.InitCmd(),
		commands.ChainCmd(),
		commands.AccountCmd(),
		commands.VersionCmd(),
	)
	pluginmgr.AddCmd(rootCmd)
	return rootCmd
}

//Run :
func Run(title string) {
	log.SetLogLevel("error")
	pluginmgr.InitExec()
	rootCmd := NewRootCmd(title)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
