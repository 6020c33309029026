// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/types"
	"github.com/pkg/errors"
)

// collect 托管 from 的押注到执行器地址
// 原生币: 宿主已经把 tx.Value 转入执行器地址, 这里只要求金额完全一致
// token: 不允许附带 value, 比较执行器余额前后差值, 拒绝转账扣费的 token
func (a *Action) collect(asset types.Asset, amount int64) error {
	if asset == a.api.NativeAsset() {
		if a.value != amount {
			return errors.Wrapf(ct.ErrWrongValue, "value %d stake %d", a.value, amount)
		}
		return nil
	}
	if a.value != 0 {
		return ct.ErrUnexpectedValue
	}
	vault, err := a.api.GetVault(asset)
	if err != nil {
		return err
	}
	before := vault.GetBalance(a.execaddr)
	receipt, err := vault.Transfer(a.fromaddr, a.execaddr, amount)
	if err != nil {
		return errors.Wrapf(err, "collect %s", asset.String())
	}
	after := vault.GetBalance(a.execaddr)
	if after-before != amount {
		clog.Error("collect amount mismatch", "asset", asset.String(), "want", amount, "got", after-before)
		return ct.ErrTransferAmountMismatch
	}
	a.merge(receipt)
	return nil
}

// payout 调用前内部账目必须已经扣减
func (a *Action) payout(asset types.Asset, to string, amount int64) error {
	vault, err := a.api.GetVault(asset)
	if err != nil {
		return err
	}
	receipt, err := vault.Transfer(a.execaddr, to, amount)
	if err != nil {
		return errors.Wrapf(err, "payout %s to %s", asset.String(), to)
	}
	a.merge(receipt)
	return nil
}

func safeAdd(balance, amount int64) (int64, error) {
	if amount < 0 || balance+amount < balance || balance+amount > types.MaxTokenBalance {
		return balance, types.ErrAmount
	}
	return balance + amount, nil
}

// credit 记入可领取余额
func (a *Action) credit(asset, addr string, amount int64) error {
	if amount == 0 {
		return nil
	}
	key := claimKey(asset, addr)
	balance, err := getInt64(a.db, key)
	if err != nil {
		return err
	}
	balance, err = safeAdd(balance, amount)
	if err != nil {
		return err
	}
	return a.setInt64(key, balance)
}

func (a *Action) addFee(asset string, amount int64) error {
	if amount == 0 {
		return nil
	}
	key := feeKey(asset)
	fee, err := getInt64(a.db, key)
	if err != nil {
		return err
	}
	fee, err = safeAdd(fee, amount)
	if err != nil {
		return err
	}
	return a.setInt64(key, fee)
}

// Claim 先清零可领取余额再转出
func (a *Action) Claim(claim *ct.CoinflipClaim) (*types.Receipt, error) {
	asset, err := types.ParseAsset(claim.Asset)
	if err != nil {
		return nil, err
	}
	key := claimKey(asset.String(), a.fromaddr)
	balance, err := getInt64(a.db, key)
	if err != nil {
		return nil, err
	}
	if balance <= 0 {
		return nil, ct.ErrZeroBalance
	}
	if err := a.setInt64(key, 0); err != nil {
		return nil, err
	}
	if err := a.payout(asset, a.fromaddr, balance); err != nil {
		return nil, err
	}
	a.log(ct.TyLogCoinflipClaim, &ct.ReceiptClaim{Addr: a.fromaddr, Asset: asset.String(), Amount: balance})
	clog.Info("Claim", "addr", a.fromaddr, "asset", asset.String(), "amount", balance)
	return a.receipt(), nil
}
