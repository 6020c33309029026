// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pluginmgr 插件注册, 统一初始化执行器以及命令行
package pluginmgr

import (
	"sort"
	"sync"

	"github.com/33cn/coinflip/common/log"
	"github.com/spf13/cobra"
)

var (
	mgrlog      = log.New("module", "plugin.manager")
	pluginItems = make(map[string]Plugin)
	once        = &sync.Once{}
)

// InitExec 初始化所有插件的执行器, 只执行一次
func InitExec() {
	once.Do(func() {
		for _, item := range plugins() {
			mgrlog.Debug("InitExec", "plugin", item.GetName(), "exec", item.GetExecutorName())
			item.InitExec()
		}
	})
}

// HasExec 是否存在该执行器
func HasExec(name string) bool {
	for _, item := range pluginItems {
		if item.GetExecutorName() == name {
			return true
		}
	}
	return false
}

// Register 注册插件
func Register(p Plugin) {
	if p == nil {
		panic("plugin param is nil")
	}
	packageName := p.GetName()
	if len(packageName) == 0 {
		panic("plugin package name is empty")
	}
	if _, ok := pluginItems[packageName]; ok {
		panic("execute plugin item is existed. name = " + packageName)
	}
	pluginItems[packageName] = p
}

// AddCmd 添加所有插件的命令行
func AddCmd(rootCmd *cobra.Command) {
	for _, item := range plugins() {
		item.AddCmd(rootCmd)
	}
}

// Names 已注册的插件名
func Names() []string {
	names := make([]string, 0, len(pluginItems))
	for name := range pluginItems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func plugins() []Plugin {
	names := Names()
	items := make([]Plugin, len(names))
	for i, name := range names {
		items[i] = pluginItems[name]
	}
	return items
}
