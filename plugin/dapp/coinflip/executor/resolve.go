// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"

	"github.com/33cn/coinflip/common"
	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/types"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// GameResolve signer 揭示 epoch 秘密, 与种子和目标区块 hash 混合得出结果
func (a *Action) GameResolve(resolve *ct.CoinflipResolve) (*types.Receipt, error) {
	if err := a.checkSigner(); err != nil {
		return nil, err
	}
	game, err := a.resolvingGame(resolve.GameID)
	if err != nil {
		return nil, err
	}
	if a.blocktime > game.ResolveDeadline {
		return nil, ct.ErrResolveExpired
	}
	rng, err := readRNG(a.db, game.GameID)
	if err != nil {
		return nil, err
	}
	//目标区块封块之后它的 hash 才能取到
	if a.height <= rng.TargetBlock {
		return nil, ct.ErrTargetBlockNotReached
	}
	commitment, err := getString(a.db, commitKey(rng.Epoch))
	if err != nil {
		return nil, err
	}
	if commitment == "" {
		return nil, errors.Wrapf(ct.ErrNoCommitment, "epoch %d", rng.Epoch)
	}
	reveal, err := common.FromHex(resolve.Reveal)
	if err != nil || len(reveal) == 0 {
		return nil, ct.ErrInvalidReveal
	}
	committed, err := common.FromHex(commitment)
	if err != nil {
		return nil, types.ErrDecode
	}
	if !bytes.Equal(common.Keccak256(reveal), committed) {
		return nil, ct.ErrRevealMismatch
	}
	seed, err := common.FromHex(rng.Seed)
	if err != nil {
		return nil, types.ErrDecode
	}
	external := a.externalEntropy(rng.TargetBlock)
	if external == nil {
		return nil, ct.ErrTargetBlockNotReached
	}
	side, mixed := a.entropy.Outcome(reveal, seed, external)
	clog.Debug("GameResolve", "gameID", game.GameID, "epoch", rng.Epoch, "target", rng.TargetBlock, "mixed", common.ToHex(mixed))
	return a.finalize(game, side, ct.ResolveBySigner)
}

// externalEntropy 目标区块 hash, 超出可查询范围时退回到上一区块
func (a *Action) externalEntropy(target int64) []byte {
	if h := a.api.GetBlockHash(target); h != nil {
		return h
	}
	clog.Info("target block hash aged out, use previous block", "target", target, "height", a.height)
	return a.api.GetBlockHash(a.height - 1)
}

// GameEmergencyResolve signer 直接给出胜出面, 跳过时间和揭示检查
func (a *Action) GameEmergencyResolve(resolve *ct.CoinflipEmergencyResolve) (*types.Receipt, error) {
	if err := a.checkSigner(); err != nil {
		return nil, err
	}
	if resolve.Side != ct.SideHeads && resolve.Side != ct.SideTails {
		return nil, ct.ErrInvalidSide
	}
	game, err := a.resolvingGame(resolve.GameID)
	if err != nil {
		return nil, err
	}
	clog.Info("GameEmergencyResolve", "gameID", game.GameID, "side", ct.SideName(resolve.Side))
	return a.finalize(game, resolve.Side, ct.ResolveByEmergency)
}

func (a *Action) resolvingGame(id int64) (*ct.Game, error) {
	game, err := readGame(a.db, id)
	if err != nil {
		return nil, err
	}
	if game.Status != ct.GameStatusResolving {
		return nil, errors.Wrapf(ct.ErrGameStatus, "game %d is %s", game.GameID, ct.StatusName(game.Status))
	}
	return game, nil
}

// calcFee pool*bps/10000, 向下取整
func calcFee(pool, bps int64) int64 {
	fee := new(uint256.Int).Mul(uint256.NewInt(uint64(pool)), uint256.NewInt(uint64(bps)))
	fee.Div(fee, uint256.NewInt(uint64(ct.BpsDenominator)))
	return int64(fee.Uint64())
}

// finalize 两种结算路径共用, 状态最后改为 RESOLVED
func (a *Action) finalize(game *ct.Game, side int32, by int32) (*types.Receipt, error) {
	winner := game.Joiner
	if side == game.CreatorSide {
		winner = game.Creator
	}
	fee := calcFee(game.Pool, a.cfg.FeeBps)
	payout := game.Pool - fee
	if err := a.credit(game.Asset, winner, payout); err != nil {
		return nil, err
	}
	if err := a.addFee(game.Asset, fee); err != nil {
		return nil, err
	}
	prevStatus := game.Status
	game.Pool = 0
	game.Winner = winner
	game.Outcome = side
	game.ResolvedBy = by
	game.ResolvedAt = a.blocktime
	game.Status = ct.GameStatusResolved
	if err := a.saveGame(game, prevStatus); err != nil {
		return nil, err
	}
	a.log(ct.TyLogCoinflipResolve, &ct.ReceiptCoinflip{
		GameID:     game.GameID,
		Status:     game.Status,
		PrevStatus: prevStatus,
		Addr:       a.fromaddr,
		Asset:      game.Asset,
		Amount:     payout,
		Winner:     winner,
		Outcome:    side,
		Fee:        fee,
		Index:      a.height*types.MaxTxsPerBlock + int64(a.index),
	})
	clog.Info("finalize", "gameID", game.GameID, "winner", winner, "side", ct.SideName(side), "payout", payout, "fee", fee, "by", by)
	return a.receipt(), nil
}
