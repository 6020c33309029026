// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "github.com/33cn/coinflip/types"

// CoinflipX 执行器名称
const CoinflipX = "coinflip"

//coinflip action ty
const (
	CoinflipActionCreate = iota + 1
	CoinflipActionJoin
	CoinflipActionCancel
	CoinflipActionClaimRefund
	CoinflipActionResolve
	CoinflipActionEmergencyResolve
	CoinflipActionClaim
	CoinflipActionSetWhitelist
	CoinflipActionSetSigner
	CoinflipActionCommitEpoch
	CoinflipActionWithdrawFees
	CoinflipActionSetPause
	CoinflipActionAuthorizeUpgrade
)

//log ty
const (
	TyLogCoinflipCreate = iota + 1101
	TyLogCoinflipJoin
	TyLogCoinflipCancel
	TyLogCoinflipRefund
	TyLogCoinflipResolve
	TyLogCoinflipClaim
	TyLogCoinflipWhitelist
	TyLogCoinflipSigner
	TyLogCoinflipCommit
	TyLogCoinflipFeeWithdraw
	TyLogCoinflipPause
	TyLogCoinflipUpgrade
	TyLogCoinflipTimelockQueued
	TyLogCoinflipTimelockExecuted
)

// game status
const (
	GameStatusCreated   = 1
	GameStatusResolving = 2
	GameStatusResolved  = 3
	GameStatusCancelled = 4
)

// side
const (
	SideHeads int32 = 0
	SideTails int32 = 1
)

// resolution path
const (
	ResolveBySigner    = 1
	ResolveByEmergency = 2
)

// gated admin action names, part of the timelock fingerprint
const (
	GateSetWhitelist     = "setWhitelist"
	GateSetSigner        = "setSigner"
	GateCommitEpoch      = "commitEpoch"
	GateWithdrawFees     = "withdrawFees"
	GateSetPause         = "setPause"
	GateAuthorizeUpgrade = "authorizeUpgrade"
)

// defaults, seconds for all windows
const (
	DefaultJoinWindow    int64 = 24 * 3600
	DefaultResolveWindow int64 = 6 * 3600
	DefaultTimelockDelay int64 = 2 * 3600
	DefaultFeeBps        int64 = 200
	MaxFeeBps            int64 = 1000
	BpsDenominator       int64 = 10000
	DefaultPageSize      int32 = 20
	DefaultMaxPageSize   int32 = 100
	SecondsPerDay        int64 = 86400
)

// MaxStake 单方押注上限, 保证奖池 2*stake 不溢出
const MaxStake = types.MaxCoin / 2

// query func name
const (
	FuncNameGetGame           = "GetGame"
	FuncNameListGames         = "ListGames"
	FuncNameListGamesByAddr   = "ListGamesByAddr"
	FuncNameListGamesByStatus = "ListGamesByStatus"
	FuncNameGetEpoch          = "GetEpoch"
	FuncNameGetCommitment     = "GetCommitment"
	FuncNameGetClaimable      = "GetClaimable"
	FuncNameGetFees           = "GetFees"
	FuncNameGetWhitelist      = "GetWhitelist"
	FuncNameGetTimelock       = "GetTimelock"
	FuncNameGetAdmin          = "GetAdmin"
	FuncNameGetAllowance      = "GetAllowance"
)

// list direction
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

// StatusName 状态名
func StatusName(status int32) string {
	switch status {
	case GameStatusCreated:
		return "CREATED"
	case GameStatusResolving:
		return "RESOLVING"
	case GameStatusResolved:
		return "RESOLVED"
	case GameStatusCancelled:
		return "CANCELLED"
	}
	return "UNKNOWN"
}

// SideName 正反面
func SideName(side int32) string {
	if side == SideHeads {
		return "heads"
	}
	if side == SideTails {
		return "tails"
	}
	return "unknown"
}
