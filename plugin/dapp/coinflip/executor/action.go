// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/coinflip/common"
	dbm "github.com/33cn/coinflip/common/db"
	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/system/dapp"
	"github.com/33cn/coinflip/types"
)

// Action 一笔交易的执行上下文
type Action struct {
	db        dbm.KVDB
	api       dapp.API
	txhash    []byte
	fromaddr  string
	value     int64
	blocktime int64
	height    int64
	execaddr  string
	index     int
	cfg       *ct.Config
	entropy   Entropy
	kvs       []*types.KeyValue
	logs      []*types.ReceiptLog
}

// NewAction new action
func NewAction(c *Coinflip, tx *types.Transaction, index int) *Action {
	return &Action{
		db:        c.GetStateDB(),
		api:       c.GetAPI(),
		txhash:    tx.Hash(),
		fromaddr:  tx.From,
		value:     tx.Value,
		blocktime: c.GetBlockTime(),
		height:    c.GetHeight(),
		execaddr:  dapp.ExecAddress(c.GetName()),
		index:     index,
		cfg:       c.cfg,
		entropy:   c.entropy,
	}
}

func (a *Action) set(key, value []byte) error {
	if err := a.db.Set(key, value); err != nil {
		return err
	}
	a.kvs = append(a.kvs, &types.KeyValue{Key: key, Value: value})
	return nil
}

// del value 为 nil 表示删除
func (a *Action) del(key []byte) error {
	return a.set(key, nil)
}

func (a *Action) setInt64(key []byte, v int64) error {
	return a.set(key, types.Encode(v))
}

func (a *Action) setBool(key []byte, v bool) error {
	return a.set(key, types.Encode(v))
}

func (a *Action) setString(key []byte, v string) error {
	return a.set(key, []byte(v))
}

func (a *Action) log(ty int32, v interface{}) {
	a.logs = append(a.logs, &types.ReceiptLog{Ty: ty, Log: types.Encode(v)})
}

// merge 资产转账产生的 kv 和日志
func (a *Action) merge(r *types.Receipt) {
	if r == nil {
		return
	}
	a.kvs = append(a.kvs, r.KV...)
	a.logs = append(a.logs, r.Logs...)
}

func (a *Action) receipt() *types.Receipt {
	return &types.Receipt{Ty: types.ExecOk, KV: a.kvs, Logs: a.logs}
}

func (a *Action) txHashHex() string {
	return common.ToHex(a.txhash)
}

func (a *Action) owner() (string, error) {
	return getString(a.db, ownerKey())
}

func (a *Action) signer() (string, error) {
	return getString(a.db, signerKey())
}

func (a *Action) checkSigner() error {
	signer, err := a.signer()
	if err != nil {
		return err
	}
	if a.fromaddr != signer {
		return ct.ErrNotSigner
	}
	return nil
}

func (a *Action) paused() (bool, error) {
	return getBool(a.db, pausedKey())
}
