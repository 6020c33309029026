// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"sync"

	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/types"
)

// Vault 执行器托管资金时需要的资产操作
type Vault interface {
	GetBalance(addr string) int64
	Transfer(from, to string, amount int64) (*types.Receipt, error)
}

// VaultCreator 在给定状态库上创建某个资产的 Vault
type VaultCreator func(asset types.Asset, db dbm.KV) (Vault, error)

// DefaultVault 普通记账资产
func DefaultVault(asset types.Asset, db dbm.KV) (Vault, error) {
	return NewAccountDB(asset.Exec, asset.Symbol, db)
}

// Registry 已发行资产表, 原生币始终可用
type Registry struct {
	mu       sync.RWMutex
	native   string
	creators map[string]VaultCreator
}

// NewRegistry new
func NewRegistry(nativeSymbol string) *Registry {
	r := &Registry{native: nativeSymbol, creators: make(map[string]VaultCreator)}
	r.creators[types.NativeAsset(nativeSymbol).String()] = DefaultVault
	return r
}

// Native 原生币资产
func (r *Registry) Native() types.Asset {
	return types.NativeAsset(r.native)
}

// Register 注册资产, creator 为 nil 时使用 DefaultVault
func (r *Registry) Register(asset types.Asset, creator VaultCreator) error {
	if err := asset.Check(); err != nil {
		return err
	}
	if asset.IsNative() && asset.Symbol != r.native {
		return types.ErrAssetNotSupport
	}
	if creator == nil {
		creator = DefaultVault
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creators[asset.String()] = creator
	return nil
}

// Has 资产是否已注册
func (r *Registry) Has(asset types.Asset) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.creators[asset.String()]
	return ok
}

// Vault 取资产的 Vault
func (r *Registry) Vault(asset types.Asset, db dbm.KV) (Vault, error) {
	r.mu.RLock()
	creator, ok := r.creators[asset.String()]
	r.mu.RUnlock()
	if !ok {
		return nil, types.ErrAssetNotSupport
	}
	return creator(asset, db)
}
