// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"sort"
	"sync"

	"github.com/33cn/coinflip/common/address"
	"github.com/33cn/coinflip/common/log"
	"github.com/33cn/coinflip/types"
)

var elog = log.New("module", "execs")

// DriverCreate 由执行器子配置创建驱动
type DriverCreate func(sub []byte) (Driver, error)

var (
	mu                 sync.RWMutex
	registedExecDriver = make(map[string]DriverCreate)
)

// Register 注册驱动
func Register(name string, create DriverCreate) {
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	registedExecDriver[name] = create
}

// LoadDriver 创建驱动实例
func LoadDriver(name string, sub []byte) (Driver, error) {
	mu.RLock()
	c, ok := registedExecDriver[name]
	mu.RUnlock()
	if !ok {
		elog.Debug("LoadDriver", "driver", name)
		return nil, types.ErrUnRegistedDriver
	}
	return c(sub)
}

// RegisteredDrivers 已注册驱动名, 按名称排序
func RegisteredDrivers() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registedExecDriver))
	for name := range registedExecDriver {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExecAddress 执行器地址
func ExecAddress(name string) string {
	return address.ExecAddress(name)
}
