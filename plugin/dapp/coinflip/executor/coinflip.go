// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/coinflip/common/address"
	"github.com/33cn/coinflip/common/log"
	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/system/dapp"
	"github.com/33cn/coinflip/types"
	"github.com/pkg/errors"
)

var clog = log.New("module", "execs.coinflip")

var driverName = ct.CoinflipX

// Init 注册执行器
func Init(name string) {
	driverName = name
	dapp.Register(name, newCoinflip)
}

// GetName 执行器名称
func GetName() string {
	return driverName
}

// Coinflip 对赌执行器
type Coinflip struct {
	dapp.DriverBase
	cfg     *ct.Config
	entropy Entropy
	busy    bool
}

func newCoinflip(sub []byte) (dapp.Driver, error) {
	cfg, err := decodeConfig(sub)
	if err != nil {
		return nil, err
	}
	c := &Coinflip{cfg: cfg, entropy: KeccakMixer{}}
	c.SetChild(c)
	c.SetExecutorType(ct.NewType())
	return c, nil
}

func decodeConfig(sub []byte) (*ct.Config, error) {
	cfg := ct.DefaultConfig()
	if len(sub) > 0 {
		if err := types.Decode(sub, cfg); err != nil {
			return nil, errors.Wrap(ct.ErrConfig, err.Error())
		}
	}
	if cfg.Signer == "" {
		cfg.Signer = cfg.Owner
	}
	if err := address.CheckAddress(cfg.Owner); err != nil {
		return nil, errors.Wrapf(ct.ErrConfig, "owner %q", cfg.Owner)
	}
	if err := address.CheckAddress(cfg.Signer); err != nil {
		return nil, errors.Wrapf(ct.ErrConfig, "signer %q", cfg.Signer)
	}
	cfg.Owner = address.Normalize(cfg.Owner)
	cfg.Signer = address.Normalize(cfg.Signer)
	if cfg.FeeBps < 0 || cfg.FeeBps > ct.MaxFeeBps {
		return nil, errors.Wrapf(ct.ErrConfig, "feeBps %d", cfg.FeeBps)
	}
	if cfg.JoinWindow < 0 || cfg.ResolveWindow < 0 || cfg.TimelockDelay < 0 || cfg.DailyLimit < 0 || cfg.MaxPageSize < 0 {
		return nil, errors.Wrap(ct.ErrConfig, "negative window or limit")
	}
	if cfg.MaxPageSize == 0 {
		return nil, errors.Wrap(ct.ErrConfig, "maxPageSize 0")
	}
	return cfg, nil
}

// GetDriverName 获取执行器名字
func (c *Coinflip) GetDriverName() string {
	return ct.CoinflipX
}

// Config 当前生效的子配置
func (c *Coinflip) Config() ct.Config {
	return *c.cfg
}

// SetEntropy 替换出结果的熵混合策略
func (c *Coinflip) SetEntropy(e Entropy) {
	if e == nil {
		e = KeccakMixer{}
	}
	c.entropy = e
}

// Exec 同一执行器上的嵌套调用(例如 token 回调)直接拒绝
func (c *Coinflip) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	if c.busy {
		clog.Error("reentrant exec rejected", "from", tx.From)
		return nil, ct.ErrReentrant
	}
	c.busy = true
	defer func() { c.busy = false }()
	return c.DriverBase.Exec(tx, index)
}

// CheckTx 只有 create/join 可以附带 value
func (c *Coinflip) CheckTx(tx *types.Transaction, index int) error {
	if err := c.DriverBase.CheckTx(tx, index); err != nil {
		return err
	}
	if tx.Value == 0 {
		return nil
	}
	action, err := c.GetExecutorType().DecodePayload(tx)
	if err != nil {
		return err
	}
	if !ct.IsPayable(action.GetTy()) {
		return ct.ErrUnexpectedValue
	}
	return nil
}

// Genesis 初始化 owner, signer, epoch 以及原生币白名单, 重复调用无副作用
func (c *Coinflip) Genesis() (*types.Receipt, error) {
	db := c.GetStateDB()
	if _, err := db.Get(ownerKey()); err == nil {
		return &types.Receipt{Ty: types.ExecOk}, nil
	}
	action := &Action{db: db, cfg: c.cfg, height: c.GetHeight(), blocktime: c.GetBlockTime()}
	native := c.GetAPI().NativeAsset()
	if err := action.setString(ownerKey(), c.cfg.Owner); err != nil {
		return nil, err
	}
	if err := action.setString(signerKey(), c.cfg.Signer); err != nil {
		return nil, err
	}
	if err := action.setInt64(epochKey(), 1); err != nil {
		return nil, err
	}
	if err := action.setBool(whitelistKey(native.String()), true); err != nil {
		return nil, err
	}
	clog.Info("coinflip genesis", "owner", c.cfg.Owner, "signer", c.cfg.Signer, "native", native.String(), "feeBps", c.cfg.FeeBps)
	return action.receipt(), nil
}
