// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//exec result
const (
	ExecErr = 0
	ExecOk  = 2
)

// Coin 1 个币的最小单位数
const Coin int64 = 1e8

//MaxCoin 单笔金额上限
const MaxCoin int64 = 9e18

//MaxTokenBalance 单账户余额上限
const MaxTokenBalance int64 = 9e18

// 资产执行器
const (
	NativeExec    = "coins"
	TokenExec     = "token"
	DefaultSymbol = "bty"
)

//log type
const (
	TyLogErr             = 1
	TyLogTransfer        = 3
	TyLogGenesisTransfer = 5
)

// DefaultBlockInterval 默认出块间隔(秒)
const DefaultBlockInterval int64 = 5

// MaxBlockHashHistory 可以查询到 hash 的最近区块数
const MaxBlockHashHistory int64 = 256

// MaxTxsPerBlock 区块内交易序号上限, 用于组合 height*MaxTxsPerBlock+index
const MaxTxsPerBlock int64 = 100000
