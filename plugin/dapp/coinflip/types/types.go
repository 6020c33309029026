// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// Game 一局对赌, 状态字段只增不改
type Game struct {
	GameID          int64  `json:"gameID"`
	Creator         string `json:"creator"`
	Joiner          string `json:"joiner,omitempty"`
	Asset           string `json:"asset"`
	Stake           int64  `json:"stake"`
	CreatorSide     int32  `json:"creatorSide"`
	Status          int32  `json:"status"`
	Winner          string `json:"winner,omitempty"`
	Outcome         int32  `json:"outcome"`
	ResolvedBy      int32  `json:"resolvedBy,omitempty"`
	Pool            int64  `json:"pool"`
	CreatedAt       int64  `json:"createdAt"`
	JoinedAt        int64  `json:"joinedAt,omitempty"`
	ResolveDeadline int64  `json:"resolveDeadline,omitempty"`
	ResolvedAt      int64  `json:"resolvedAt,omitempty"`
	CreateTxHash    string `json:"createTxHash"`
}

// RNGSnapshot join 时固定下来的随机数参数
type RNGSnapshot struct {
	GameID      int64  `json:"gameID"`
	Seed        string `json:"seed"`
	TargetBlock int64  `json:"targetBlock"`
	Epoch       int64  `json:"epoch"`
}

// CoinflipAction payload, Ty 指明哪个字段有效
type CoinflipAction struct {
	Ty               int32                     `json:"ty"`
	Create           *CoinflipCreate           `json:"create,omitempty"`
	Join             *CoinflipJoin             `json:"join,omitempty"`
	Cancel           *CoinflipCancel           `json:"cancel,omitempty"`
	ClaimRefund      *CoinflipClaimRefund      `json:"claimRefund,omitempty"`
	Resolve          *CoinflipResolve          `json:"resolve,omitempty"`
	EmergencyResolve *CoinflipEmergencyResolve `json:"emergencyResolve,omitempty"`
	Claim            *CoinflipClaim            `json:"claim,omitempty"`
	SetWhitelist     *CoinflipSetWhitelist     `json:"setWhitelist,omitempty"`
	SetSigner        *CoinflipSetSigner        `json:"setSigner,omitempty"`
	CommitEpoch      *CoinflipCommitEpoch      `json:"commitEpoch,omitempty"`
	WithdrawFees     *CoinflipWithdrawFees     `json:"withdrawFees,omitempty"`
	SetPause         *CoinflipSetPause         `json:"setPause,omitempty"`
	AuthorizeUpgrade *CoinflipAuthorizeUpgrade `json:"authorizeUpgrade,omitempty"`
}

// GetTy action ty
func (a *CoinflipAction) GetTy() int32 {
	return a.Ty
}

// CoinflipCreate 创建
type CoinflipCreate struct {
	Asset string `json:"asset"`
	Stake int64  `json:"stake"`
	Side  int32  `json:"side"`
}

// CoinflipJoin 加入
type CoinflipJoin struct {
	GameID int64 `json:"gameID"`
}

// CoinflipCancel 取消
type CoinflipCancel struct {
	GameID int64 `json:"gameID"`
}

// CoinflipClaimRefund 超时退款
type CoinflipClaimRefund struct {
	GameID int64 `json:"gameID"`
}

// CoinflipResolve signer 揭示
type CoinflipResolve struct {
	GameID int64 `json:"gameID"`
	// Reveal hex 编码的 epoch 秘密
	Reveal string `json:"reveal"`
}

// CoinflipEmergencyResolve signer 直接指定胜方
type CoinflipEmergencyResolve struct {
	GameID int64 `json:"gameID"`
	Side   int32 `json:"side"`
}

// CoinflipClaim 提取可领取余额
type CoinflipClaim struct {
	Asset string `json:"asset"`
}

// CoinflipSetWhitelist 资产白名单
type CoinflipSetWhitelist struct {
	Asset   string `json:"asset"`
	Allowed bool   `json:"allowed"`
}

// CoinflipSetSigner 轮换 signer
type CoinflipSetSigner struct {
	Signer string `json:"signer"`
}

// CoinflipCommitEpoch 提交 epoch 承诺
type CoinflipCommitEpoch struct {
	Commitment string `json:"commitment"`
	Epoch      int64  `json:"epoch"`
}

// CoinflipWithdrawFees 提取手续费到 owner
type CoinflipWithdrawFees struct {
	Asset  string `json:"asset"`
	Amount int64  `json:"amount"`
}

// CoinflipSetPause 暂停/恢复
type CoinflipSetPause struct {
	Paused bool `json:"paused"`
}

// CoinflipAuthorizeUpgrade 授权升级版本
type CoinflipAuthorizeUpgrade struct {
	Version string `json:"version"`
}

// ReceiptCoinflip 对局变化日志
type ReceiptCoinflip struct {
	GameID     int64  `json:"gameID"`
	Status     int32  `json:"status"`
	PrevStatus int32  `json:"prevStatus"`
	Addr       string `json:"addr"`
	Asset      string `json:"asset"`
	Amount     int64  `json:"amount,omitempty"`
	Winner     string `json:"winner,omitempty"`
	Outcome    int32  `json:"outcome,omitempty"`
	Fee        int64  `json:"fee,omitempty"`
	Index      int64  `json:"index"`
}

// ReceiptClaim 领取日志, 也用于退款记账
type ReceiptClaim struct {
	Addr   string `json:"addr"`
	Asset  string `json:"asset"`
	Amount int64  `json:"amount"`
}

// ReceiptTimelock 时间锁日志
type ReceiptTimelock struct {
	Action       string `json:"action"`
	Fingerprint  string `json:"fingerprint"`
	ExecuteAfter int64  `json:"executeAfter"`
}

// ReceiptAdmin 管理操作生效日志
type ReceiptAdmin struct {
	Action string `json:"action"`
	Params string `json:"params"`
}

// ReqGame 查询单局
type ReqGame struct {
	GameID int64 `json:"gameID"`
}

// ReqListGames 分页查询, Cursor 为上一页最后一个 gameID, 0 表示从头开始
type ReqListGames struct {
	Addr      string `json:"addr,omitempty"`
	Status    int32  `json:"status,omitempty"`
	Cursor    int64  `json:"cursor"`
	Count     int32  `json:"count"`
	Direction int32  `json:"direction"`
}

// ReplyGames 分页结果
type ReplyGames struct {
	Games      []*Game `json:"games"`
	NextCursor int64   `json:"nextCursor"`
}

// ReqAddrAsset 地址 + 资产
type ReqAddrAsset struct {
	Addr  string `json:"addr"`
	Asset string `json:"asset"`
}

// ReqAsset 资产
type ReqAsset struct {
	Asset string `json:"asset"`
}

// ReqEpoch epoch
type ReqEpoch struct {
	Epoch int64 `json:"epoch"`
}

// ReqFingerprint 时间锁指纹
type ReqFingerprint struct {
	Fingerprint string `json:"fingerprint"`
}

// ReqNil 无参数
type ReqNil struct{}

// ReplyEpoch 当前 epoch
type ReplyEpoch struct {
	Epoch      int64  `json:"epoch"`
	Commitment string `json:"commitment,omitempty"`
}

// ReplyAmount 金额
type ReplyAmount struct {
	Asset  string `json:"asset"`
	Addr   string `json:"addr,omitempty"`
	Amount int64  `json:"amount"`
}

// ReplyWhitelist 白名单
type ReplyWhitelist struct {
	Asset   string `json:"asset"`
	Allowed bool   `json:"allowed"`
}

// ReplyTimelock 时间锁排队项, ExecuteAfter 为 0 表示不存在
type ReplyTimelock struct {
	Fingerprint  string `json:"fingerprint"`
	ExecuteAfter int64  `json:"executeAfter"`
}

// ReplyAdmin 管理状态
type ReplyAdmin struct {
	Owner    string `json:"owner"`
	Signer   string `json:"signer"`
	Paused   bool   `json:"paused"`
	Upgrade  string `json:"upgrade,omitempty"`
	FeeBps   int64  `json:"feeBps"`
	Delay    int64  `json:"timelockDelay"`
	Executor string `json:"executor"`
}

// ReplyAllowance 当日剩余额度, -1 表示不限
type ReplyAllowance struct {
	Addr      string `json:"addr"`
	Asset     string `json:"asset"`
	Day       int64  `json:"day"`
	Used      int64  `json:"used"`
	Remaining int64  `json:"remaining"`
}

// Config exec.sub.coinflip
type Config struct {
	Owner         string `json:"owner"`
	Signer        string `json:"signer"`
	FeeBps        int64  `json:"feeBps"`
	JoinWindow    int64  `json:"joinWindow"`
	ResolveWindow int64  `json:"resolveWindow"`
	TimelockDelay int64  `json:"timelockDelay"`
	DailyLimit    int64  `json:"dailyLimit"`
	MaxPageSize   int32  `json:"maxPageSize"`
}

// DefaultConfig 缺省配置; 解析时作为底板, 配置里没写的字段保持缺省值, 显式写 0 则为 0
func DefaultConfig() *Config {
	return &Config{
		FeeBps:        DefaultFeeBps,
		JoinWindow:    DefaultJoinWindow,
		ResolveWindow: DefaultResolveWindow,
		TimelockDelay: DefaultTimelockDelay,
		MaxPageSize:   DefaultMaxPageSize,
	}
}
