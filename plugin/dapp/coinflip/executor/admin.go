// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"

	"github.com/33cn/coinflip/common"
	"github.com/33cn/coinflip/common/address"
	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/types"
	"github.com/pkg/errors"
)

const maxVersionLen = 64

func (a *Action) adminLog(ty int32, name string, params interface{}) {
	a.log(ty, &ct.ReceiptAdmin{Action: name, Params: string(types.Encode(params))})
}

// SetWhitelist 资产白名单, 只接受宿主已注册的资产
func (a *Action) SetWhitelist(param *ct.CoinflipSetWhitelist) (*types.Receipt, error) {
	asset, err := types.ParseAsset(param.Asset)
	if err != nil {
		return nil, err
	}
	if _, err := a.api.GetVault(asset); err != nil {
		return nil, err
	}
	params := &ct.CoinflipSetWhitelist{Asset: asset.String(), Allowed: param.Allowed}
	ok, err := a.gate(ct.GateSetWhitelist, params)
	if err != nil || !ok {
		return a.gated(err)
	}
	if err := a.setBool(whitelistKey(params.Asset), params.Allowed); err != nil {
		return nil, err
	}
	a.adminLog(ct.TyLogCoinflipWhitelist, ct.GateSetWhitelist, params)
	return a.receipt(), nil
}

// SetSigner 轮换 signer
func (a *Action) SetSigner(param *ct.CoinflipSetSigner) (*types.Receipt, error) {
	if err := address.CheckAddress(param.Signer); err != nil {
		return nil, err
	}
	params := &ct.CoinflipSetSigner{Signer: address.Normalize(param.Signer)}
	ok, err := a.gate(ct.GateSetSigner, params)
	if err != nil || !ok {
		return a.gated(err)
	}
	if err := a.setString(signerKey(), params.Signer); err != nil {
		return nil, err
	}
	a.adminLog(ct.TyLogCoinflipSigner, ct.GateSetSigner, params)
	return a.receipt(), nil
}

// CommitEpoch 提交 epoch 承诺, epoch 只增不减, 同一 epoch 只能提交一次
func (a *Action) CommitEpoch(param *ct.CoinflipCommitEpoch) (*types.Receipt, error) {
	commitment, err := common.FromHex(param.Commitment)
	if err != nil || len(commitment) != 32 || bytes.Equal(commitment, make([]byte, 32)) {
		return nil, ct.ErrInvalidCommitment
	}
	if err := a.checkEpoch(param.Epoch); err != nil {
		return nil, err
	}
	params := &ct.CoinflipCommitEpoch{Commitment: common.ToHex(commitment), Epoch: param.Epoch}
	ok, err := a.gate(ct.GateCommitEpoch, params)
	if err != nil || !ok {
		return a.gated(err)
	}
	//排队期间可能已经有别的提交
	if err := a.checkEpoch(params.Epoch); err != nil {
		return nil, err
	}
	if err := a.setString(commitKey(params.Epoch), params.Commitment); err != nil {
		return nil, err
	}
	current, err := getInt64(a.db, epochKey())
	if err != nil {
		return nil, err
	}
	if params.Epoch > current {
		if err := a.setInt64(epochKey(), params.Epoch); err != nil {
			return nil, err
		}
	}
	a.adminLog(ct.TyLogCoinflipCommit, ct.GateCommitEpoch, params)
	clog.Info("CommitEpoch", "epoch", params.Epoch, "prev", current)
	return a.receipt(), nil
}

func (a *Action) checkEpoch(epoch int64) error {
	current, err := getInt64(a.db, epochKey())
	if err != nil {
		return err
	}
	if epoch < current {
		return errors.Wrapf(ct.ErrEpochInPast, "epoch %d current %d", epoch, current)
	}
	committed, err := getString(a.db, commitKey(epoch))
	if err != nil {
		return err
	}
	if committed != "" {
		return ct.ErrEpochCommitted
	}
	return nil
}

// WithdrawFees 手续费转给 owner
func (a *Action) WithdrawFees(param *ct.CoinflipWithdrawFees) (*types.Receipt, error) {
	asset, err := types.ParseAsset(param.Asset)
	if err != nil {
		return nil, err
	}
	if param.Amount <= 0 {
		return nil, ct.ErrFeeAmount
	}
	params := &ct.CoinflipWithdrawFees{Asset: asset.String(), Amount: param.Amount}
	ok, err := a.gate(ct.GateWithdrawFees, params)
	if err != nil || !ok {
		return a.gated(err)
	}
	accrued, err := getInt64(a.db, feeKey(params.Asset))
	if err != nil {
		return nil, err
	}
	if params.Amount > accrued {
		return nil, errors.Wrapf(ct.ErrFeeAmount, "amount %d accrued %d", params.Amount, accrued)
	}
	if err := a.setInt64(feeKey(params.Asset), accrued-params.Amount); err != nil {
		return nil, err
	}
	if err := a.payout(asset, a.fromaddr, params.Amount); err != nil {
		return nil, err
	}
	a.adminLog(ct.TyLogCoinflipFeeWithdraw, ct.GateWithdrawFees, params)
	clog.Info("WithdrawFees", "asset", params.Asset, "amount", params.Amount, "left", accrued-params.Amount)
	return a.receipt(), nil
}

// SetPause 暂停只影响 create 和 join
func (a *Action) SetPause(param *ct.CoinflipSetPause) (*types.Receipt, error) {
	params := &ct.CoinflipSetPause{Paused: param.Paused}
	ok, err := a.gate(ct.GateSetPause, params)
	if err != nil || !ok {
		return a.gated(err)
	}
	if err := a.setBool(pausedKey(), params.Paused); err != nil {
		return nil, err
	}
	a.adminLog(ct.TyLogCoinflipPause, ct.GateSetPause, params)
	return a.receipt(), nil
}

// AuthorizeUpgrade 记录授权的实现版本
func (a *Action) AuthorizeUpgrade(param *ct.CoinflipAuthorizeUpgrade) (*types.Receipt, error) {
	if param.Version == "" || len(param.Version) > maxVersionLen {
		return nil, ct.ErrInvalidVersion
	}
	params := &ct.CoinflipAuthorizeUpgrade{Version: param.Version}
	ok, err := a.gate(ct.GateAuthorizeUpgrade, params)
	if err != nil || !ok {
		return a.gated(err)
	}
	if err := a.setString(upgradeKey(), params.Version); err != nil {
		return nil, err
	}
	a.adminLog(ct.TyLogCoinflipUpgrade, ct.GateAuthorizeUpgrade, params)
	return a.receipt(), nil
}

// gated 排队成功时只返回排队日志
func (a *Action) gated(err error) (*types.Receipt, error) {
	if err != nil {
		return nil, err
	}
	return a.receipt(), nil
}
