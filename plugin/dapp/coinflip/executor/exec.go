// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/types"
)

// Exec_Create 创建对局
func (c *Coinflip) Exec_Create(payload *ct.CoinflipCreate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(c, tx, index)
	return action.GameCreate(payload)
}

// Exec_Join 加入对局
func (c *Coinflip) Exec_Join(payload *ct.CoinflipJoin, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(c, tx, index)
	return action.GameJoin(payload)
}

// Exec_Cancel 取消未加入的对局
func (c *Coinflip) Exec_Cancel(payload *ct.CoinflipCancel, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(c, tx, index)
	return action.GameCancel(payload)
}

// Exec_ClaimRefund 超时未结算, 平分奖池
func (c *Coinflip) Exec_ClaimRefund(payload *ct.CoinflipClaimRefund, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(c, tx, index)
	return action.GameClaimRefund(payload)
}

// Exec_Resolve signer 揭示结算
func (c *Coinflip) Exec_Resolve(payload *ct.CoinflipResolve, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(c, tx, index)
	return action.GameResolve(payload)
}

// Exec_EmergencyResolve 紧急结算
func (c *Coinflip) Exec_EmergencyResolve(payload *ct.CoinflipEmergencyResolve, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(c, tx, index)
	return action.GameEmergencyResolve(payload)
}

// Exec_Claim 提取可领取余额
func (c *Coinflip) Exec_Claim(payload *ct.CoinflipClaim, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(c, tx, index)
	return action.Claim(payload)
}

// Exec_SetWhitelist 白名单
func (c *Coinflip) Exec_SetWhitelist(payload *ct.CoinflipSetWhitelist, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(c, tx, index)
	return action.SetWhitelist(payload)
}

// Exec_SetSigner 轮换 signer
func (c *Coinflip) Exec_SetSigner(payload *ct.CoinflipSetSigner, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(c, tx, index)
	return action.SetSigner(payload)
}

// Exec_CommitEpoch 提交 epoch 承诺
func (c *Coinflip) Exec_CommitEpoch(payload *ct.CoinflipCommitEpoch, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(c, tx, index)
	return action.CommitEpoch(payload)
}

// Exec_WithdrawFees 提取手续费
func (c *Coinflip) Exec_WithdrawFees(payload *ct.CoinflipWithdrawFees, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(c, tx, index)
	return action.WithdrawFees(payload)
}

// Exec_SetPause 暂停
func (c *Coinflip) Exec_SetPause(payload *ct.CoinflipSetPause, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(c, tx, index)
	return action.SetPause(payload)
}

// Exec_AuthorizeUpgrade 授权升级
func (c *Coinflip) Exec_AuthorizeUpgrade(payload *ct.CoinflipAuthorizeUpgrade, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(c, tx, index)
	return action.AuthorizeUpgrade(payload)
}
