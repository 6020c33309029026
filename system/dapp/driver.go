// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 执行器驱动接口以及公共实现
package dapp

import (
	"reflect"

	"github.com/33cn/coinflip/account"
	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/common/log"
	"github.com/33cn/coinflip/types"
	"github.com/go-stack/stack"
)

var blog = log.New("module", "execs.base")

// API 执行器可以向宿主请求的能力
type API interface {
	// GetBlockHash 返回最近 256 个区块内的区块 hash, 否则返回 nil
	GetBlockHash(height int64) []byte
	// GetVault 取资产在当前状态库上的 Vault
	GetVault(asset types.Asset) (account.Vault, error)
	NativeAsset() types.Asset
}

// Driver 执行器驱动
type Driver interface {
	SetStateDB(dbm.KVDB)
	GetStateDB() dbm.KVDB
	//驱动的名字，这个名称是固定的
	GetDriverName() string
	GetName() string
	SetEnv(height, blocktime int64)
	SetAPI(API)
	GetAPI() API
	GetActionName(tx *types.Transaction) string
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	Query(funcName string, params []byte) (types.Message, error)
	GetFuncMap() map[string]reflect.Method
	GetExecutorType() types.ExecutorType
}

// Genesiser 需要在创世时初始化状态的驱动
type Genesiser interface {
	Genesis() (*types.Receipt, error)
}

// DriverBase 驱动公共实现, Exec/Query 通过反射分发到子类的 Exec_xxx / Query_xxx
type DriverBase struct {
	statedb      dbm.KVDB
	coinsaccount *account.DB
	height       int64
	blocktime    int64
	name         string
	child        Driver
	childValue   reflect.Value
	api          API
	ety          types.ExecutorType
	funcmap      map[string]reflect.Method
}

// SetChild 设置子类
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
	d.childValue = reflect.ValueOf(e)
	d.funcmap = types.ListMethod(e)
}

// SetExecutorType 设置 payload 类型
func (d *DriverBase) SetExecutorType(e types.ExecutorType) {
	d.ety = e
}

// GetExecutorType payload 类型
func (d *DriverBase) GetExecutorType() types.ExecutorType {
	return d.ety
}

// GetFuncMap 子类方法表
func (d *DriverBase) GetFuncMap() map[string]reflect.Method {
	return d.funcmap
}

// SetAPI set api
func (d *DriverBase) SetAPI(api API) {
	d.api = api
}

// GetAPI get api
func (d *DriverBase) GetAPI() API {
	return d.api
}

// SetEnv 设置区块环境
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

// SetStateDB set state db
func (d *DriverBase) SetStateDB(db dbm.KVDB) {
	d.statedb = db
	d.coinsaccount = nil
}

// GetStateDB get state db
func (d *DriverBase) GetStateDB() dbm.KVDB {
	return d.statedb
}

// GetCoinsAccount 原生币账户
func (d *DriverBase) GetCoinsAccount() *account.DB {
	if d.coinsaccount == nil {
		symbol := types.DefaultSymbol
		if d.api != nil {
			symbol = d.api.NativeAsset().Symbol
		}
		d.coinsaccount = account.NewCoinsAccount(symbol, d.statedb)
	}
	return d.coinsaccount
}

// GetHeight 当前高度
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

// GetBlockTime 当前区块时间
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

// GetName 执行器名称
func (d *DriverBase) GetName() string {
	if d.name == "" {
		return d.child.GetDriverName()
	}
	return d.name
}

// SetName 设置执行器名称
func (d *DriverBase) SetName(name string) {
	d.name = name
}

// GetActionName action 名称
func (d *DriverBase) GetActionName(tx *types.Transaction) string {
	if d.ety == nil {
		return "unknown"
	}
	return d.ety.ActionName(tx)
}

// CheckTx 默认只检查执行器名称
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	if tx.Execer != d.GetName() {
		return types.ErrExecNameNotAllow
	}
	return nil
}

// Exec 调用子类的 Exec_<action>(payload, tx, index)
func (d *DriverBase) Exec(tx *types.Transaction, index int) (receipt *types.Receipt, err error) {
	if d.ety == nil {
		return nil, types.ErrActionNotSupport
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call exec error", "tx.exec", tx.Execer, "info", r, "stack", stack.Trace().TrimRuntime().String())
			err = types.ErrExecPanic
			receipt = nil
		}
	}()
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	funcname := "Exec_" + name
	method, ok := d.funcmap[funcname]
	if !ok {
		return nil, types.ErrActionNotSupport
	}
	valueret := method.Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(index)})
	if !types.IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	//参数1
	r1 := valueret[0].Interface()
	if r1 != nil {
		r, ok := r1.(*types.Receipt)
		if !ok {
			return nil, types.ErrMethodReturnType
		}
		receipt = r
	}
	//参数2
	r2 := valueret[1].Interface()
	if r2 != nil {
		r, ok := r2.(error)
		if !ok {
			return nil, types.ErrMethodReturnType
		}
		return nil, r
	}
	return receipt, nil
}

// Query 调用子类的 Query_<funcname>(param)
func (d *DriverBase) Query(funcname string, params []byte) (msg types.Message, err error) {
	funcname = "Query_" + funcname
	method, ok := d.funcmap[funcname]
	if !ok {
		blog.Error(funcname+" funcname not find", "func", funcname)
		return nil, types.ErrQueryNotSupport
	}
	ty := method.Type
	if ty.NumIn() != 2 {
		blog.Error(funcname+" err num in param", "num", ty.NumIn())
		return nil, types.ErrQueryNotSupport
	}
	paramin := ty.In(1)
	if paramin.Kind() != reflect.Ptr {
		blog.Error(funcname + "  param is not pointer")
		return nil, types.ErrQueryNotSupport
	}
	in := reflect.New(paramin.Elem()).Interface()
	if len(params) > 0 {
		if err := types.Decode(params, in); err != nil {
			return nil, types.ErrDecode
		}
	}
	return types.CallQueryFunc(d.childValue, method, in)
}
