// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/coinflip/types"
)

var (
	actionName = map[string]int32{
		"Create":           CoinflipActionCreate,
		"Join":             CoinflipActionJoin,
		"Cancel":           CoinflipActionCancel,
		"ClaimRefund":      CoinflipActionClaimRefund,
		"Resolve":          CoinflipActionResolve,
		"EmergencyResolve": CoinflipActionEmergencyResolve,
		"Claim":            CoinflipActionClaim,
		"SetWhitelist":     CoinflipActionSetWhitelist,
		"SetSigner":        CoinflipActionSetSigner,
		"CommitEpoch":      CoinflipActionCommitEpoch,
		"WithdrawFees":     CoinflipActionWithdrawFees,
		"SetPause":         CoinflipActionSetPause,
		"AuthorizeUpgrade": CoinflipActionAuthorizeUpgrade,
	}
	logName = map[int32]string{
		TyLogCoinflipCreate:           "LogCoinflipCreate",
		TyLogCoinflipJoin:             "LogCoinflipJoin",
		TyLogCoinflipCancel:           "LogCoinflipCancel",
		TyLogCoinflipRefund:           "LogCoinflipRefund",
		TyLogCoinflipResolve:          "LogCoinflipResolve",
		TyLogCoinflipClaim:            "LogCoinflipClaim",
		TyLogCoinflipWhitelist:        "LogCoinflipWhitelist",
		TyLogCoinflipSigner:           "LogCoinflipSigner",
		TyLogCoinflipCommit:           "LogCoinflipCommit",
		TyLogCoinflipFeeWithdraw:      "LogCoinflipFeeWithdraw",
		TyLogCoinflipPause:            "LogCoinflipPause",
		TyLogCoinflipUpgrade:          "LogCoinflipUpgrade",
		TyLogCoinflipTimelockQueued:   "LogCoinflipTimelockQueued",
		TyLogCoinflipTimelockExecuted: "LogCoinflipTimelockExecuted",
	}
)

// CoinflipType 执行器类型
type CoinflipType struct {
	types.ExecTypeBase
}

// NewType new type
func NewType() *CoinflipType {
	c := &CoinflipType{}
	c.SetChild(c)
	return c
}

// GetName 获取执行器名称
func (t *CoinflipType) GetName() string {
	return CoinflipX
}

// GetPayload 获取 action
func (t *CoinflipType) GetPayload() types.ExecutorAction {
	return &CoinflipAction{}
}

// GetTypeMap 获取类型 map
func (t *CoinflipType) GetTypeMap() map[string]int32 {
	return actionName
}

// GetLogMap 获取日志名称
func (t *CoinflipType) GetLogMap() map[int32]string {
	return logName
}

// LogName 日志名称, 未知返回 LogReserved
func LogName(ty int32) string {
	if name, ok := logName[ty]; ok {
		return name
	}
	return "LogReserved"
}

// IsPayable 只有原生币的 create/join 可以附带 value, 资产在执行时再检查
func IsPayable(ty int32) bool {
	return ty == CoinflipActionCreate || ty == CoinflipActionJoin
}
