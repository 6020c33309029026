// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 本地执行器宿主: 区块环境, 单笔交易原子执行以及查询
package executor

import (
	"sync"
	"time"

	"github.com/33cn/coinflip/account"
	"github.com/33cn/coinflip/common/address"
	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/common/log"
	"github.com/33cn/coinflip/metrics"
	"github.com/33cn/coinflip/system/dapp"
	"github.com/33cn/coinflip/types"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var elog = log.New("module", "executor")

var genesisKey = []byte("chain-genesis")

// Executor 串行执行交易, 每笔交易要么全部写入要么全部回滚
type Executor struct {
	mu      sync.Mutex
	cfg     *types.Config
	sub     *types.ConfigSubModule
	maindb  dbm.DB
	state   *dbm.StateDB
	chain   *Chain
	assets  *account.Registry
	drivers map[string]dapp.Driver
	api     *hostAPI
	ownDB   bool
}

// New 按配置打开数据库并初始化
func New(cfg *types.Config, sub *types.ConfigSubModule) (*Executor, error) {
	db, err := dbm.NewDB("coinflip", cfg.Store.Driver, cfg.Store.DbPath, int(cfg.Store.DbCache))
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}
	exec, err := NewWithDB(cfg, sub, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	exec.ownDB = true
	return exec, nil
}

// NewWithDB 使用已打开的数据库初始化
func NewWithDB(cfg *types.Config, sub *types.ConfigSubModule, db dbm.DB) (*Executor, error) {
	if sub == nil {
		sub = &types.ConfigSubModule{Exec: map[string][]byte{}}
	}
	chain, err := LoadChain(db, cfg.Chain.GenesisTime, cfg.Chain.BlockInterval)
	if err != nil {
		return nil, err
	}
	exec := &Executor{
		cfg:     cfg,
		sub:     sub,
		maindb:  db,
		state:   dbm.NewStateDB(db),
		chain:   chain,
		assets:  account.NewRegistry(cfg.Chain.Symbol),
		drivers: make(map[string]dapp.Driver),
	}
	exec.api = &hostAPI{exec: exec}
	for _, g := range cfg.Genesis {
		asset, err := types.ParseAsset(g.Asset)
		if err != nil {
			return nil, errors.Wrapf(err, "genesis asset %s", g.Asset)
		}
		if asset.IsNative() && asset.Symbol != cfg.Chain.Symbol {
			return nil, errors.Wrapf(types.ErrAssetNotSupport, "genesis asset %s", g.Asset)
		}
		if !asset.IsNative() && !exec.assets.Has(asset) {
			if err := exec.assets.Register(asset, nil); err != nil {
				return nil, err
			}
		}
	}
	for _, name := range dapp.RegisteredDrivers() {
		driver, err := dapp.LoadDriver(name, sub.Exec[name])
		if err != nil {
			return nil, errors.Wrapf(err, "load driver %s", name)
		}
		exec.drivers[name] = driver
	}
	if err := exec.genesis(); err != nil {
		return nil, err
	}
	return exec, nil
}

func (e *Executor) genesis() error {
	if _, err := e.maindb.Get(genesisKey); err == nil {
		return nil
	}
	e.state.Begin()
	for _, g := range e.cfg.Genesis {
		if err := address.CheckAddress(g.Addr); err != nil {
			e.state.Rollback()
			return errors.Wrapf(err, "genesis addr %s", g.Addr)
		}
		asset, _ := types.ParseAsset(g.Asset)
		acc, err := account.NewAccountDB(asset.Exec, asset.Symbol, e.state)
		if err != nil {
			e.state.Rollback()
			return err
		}
		if _, err := acc.GenesisInit(address.Normalize(g.Addr), g.Amount); err != nil {
			e.state.Rollback()
			return errors.Wrapf(err, "genesis %s %s", g.Addr, g.Asset)
		}
	}
	for _, name := range dapp.RegisteredDrivers() {
		driver := e.drivers[name]
		g, ok := driver.(dapp.Genesiser)
		if !ok {
			continue
		}
		e.prepare(driver)
		if _, err := g.Genesis(); err != nil {
			e.state.Rollback()
			return errors.Wrapf(err, "genesis %s", name)
		}
	}
	if err := e.state.Set(genesisKey, []byte{1}); err != nil {
		e.state.Rollback()
		return err
	}
	elog.Info("genesis", "height", e.chain.Height(), "blocktime", e.chain.BlockTime(), "allocs", len(e.cfg.Genesis))
	return e.state.Commit()
}

func (e *Executor) prepare(driver dapp.Driver) {
	driver.SetStateDB(e.state)
	driver.SetEnv(e.chain.Height(), e.chain.BlockTime())
	driver.SetAPI(e.api)
}

// RegisterAsset 注册可托管的资产, creator 为 nil 时为普通记账资产
func (e *Executor) RegisterAsset(asset types.Asset, creator account.VaultCreator) error {
	return e.assets.Register(asset, creator)
}

// Driver 取已加载的驱动
func (e *Executor) Driver(name string) (dapp.Driver, bool) {
	d, ok := e.drivers[name]
	return d, ok
}

// Exec 执行一笔交易
func (e *Executor) Exec(tx *types.Transaction) (*types.Receipt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	reqid := uuid.New().String()
	start := time.Now()
	driver, ok := e.drivers[tx.Execer]
	if !ok {
		return nil, types.ErrExecNameNotAllow
	}
	action := driver.GetActionName(tx)
	metrics.Counter("executor.tx." + tx.Execer + "." + action).Inc(1)
	defer metrics.Timer("executor.tx.time").UpdateSince(start)

	e.state.Begin()
	receipt, err := e.execTx(driver, tx)
	if err != nil {
		e.state.Rollback()
		metrics.Counter("executor.tx.failed").Inc(1)
		elog.Debug("exec tx failed", "reqid", reqid, "execer", tx.Execer, "action", action, "from", tx.From, "err", err)
		return nil, err
	}
	if err := e.state.Commit(); err != nil {
		elog.Error("commit tx", "reqid", reqid, "err", err)
		return nil, err
	}
	elog.Info("exec tx", "reqid", reqid, "execer", tx.Execer, "action", action, "height", e.chain.Height(), "cost", time.Since(start))
	return receipt, nil
}

func (e *Executor) execTx(driver dapp.Driver, tx *types.Transaction) (*types.Receipt, error) {
	if err := address.CheckAddress(tx.From); err != nil {
		return nil, errors.Wrapf(err, "from %s", tx.From)
	}
	tx.From = address.Normalize(tx.From)
	if tx.Value < 0 {
		return nil, types.ErrTxValue
	}
	e.prepare(driver)
	if err := driver.CheckTx(tx, 0); err != nil {
		return nil, err
	}
	var receipt *types.Receipt
	if tx.Value > 0 {
		coins := account.NewCoinsAccount(e.cfg.Chain.Symbol, e.state)
		r, err := coins.Transfer(tx.From, dapp.ExecAddress(tx.Execer), tx.Value)
		if err != nil {
			return nil, errors.Wrap(err, "attach value")
		}
		receipt = r
	}
	r, err := driver.Exec(tx, 0)
	if err != nil {
		return nil, err
	}
	receipt = types.MergeReceipt(receipt, r)
	if receipt == nil {
		receipt = &types.Receipt{}
	}
	receipt.Ty = types.ExecOk
	return receipt, nil
}

// Query 只读查询, param 以 json 编码传给驱动
func (e *Executor) Query(execer, funcName string, param interface{}) (types.Message, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	driver, ok := e.drivers[execer]
	if !ok {
		return nil, types.ErrExecNameNotAllow
	}
	e.prepare(driver)
	var params []byte
	if param != nil {
		params = types.Encode(param)
	}
	return driver.Query(funcName, params)
}

// Balance 查询资产余额
func (e *Executor) Balance(asset types.Asset, addr string) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, err := e.assets.Vault(asset, e.state)
	if err != nil {
		return 0, err
	}
	return v.GetBalance(address.Normalize(addr)), nil
}

// NextBlock 封块, dt 为下一块相对当前块的时间间隔(秒)
func (e *Executor) NextBlock(dt int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.chain.NextBlock(dt)
}

// AdvanceTime 连续出块直到区块时间前进至少 seconds 秒
func (e *Executor) AdvanceTime(seconds int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	target := e.chain.BlockTime() + seconds
	for e.chain.BlockTime() < target {
		dt := target - e.chain.BlockTime()
		if dt > e.chain.interval {
			dt = e.chain.interval
		}
		if err := e.chain.NextBlock(dt); err != nil {
			return err
		}
	}
	return nil
}

// Head 当前区块
func (e *Executor) Head() ChainHead {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.chain.head
}

// BlockHash 已封块的哈希, 超出窗口返回 nil
func (e *Executor) BlockHash(height int64) []byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.chain.BlockHash(height)
}

// BlockInterval 默认出块间隔
func (e *Executor) BlockInterval() int64 {
	return e.chain.interval
}

// NativeAsset 本链主币
func (e *Executor) NativeAsset() types.Asset {
	return e.assets.Native()
}

// Close 关闭
func (e *Executor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ownDB {
		e.maindb.Close()
	}
}

type hostAPI struct {
	exec *Executor
}

func (api *hostAPI) GetBlockHash(height int64) []byte {
	return api.exec.chain.BlockHash(height)
}

func (api *hostAPI) GetVault(asset types.Asset) (account.Vault, error) {
	return api.exec.assets.Vault(asset, api.exec.state)
}

func (api *hostAPI) NativeAsset() types.Asset {
	return api.exec.assets.Native()
}
