// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coinflip 两人抛硬币对赌
package coinflip

import (
	"github.com/33cn/coinflip/plugin/dapp/coinflip/commands"
	"github.com/33cn/coinflip/plugin/dapp/coinflip/executor"
	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     ct.CoinflipX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.Cmd,
	})
}
