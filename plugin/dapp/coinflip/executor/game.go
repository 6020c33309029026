// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/coinflip/common"
	dbm "github.com/33cn/coinflip/common/db"
	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/types"
	"github.com/pkg/errors"
)

func readGame(db dbm.KV, id int64) (*ct.Game, error) {
	value, err := db.Get(gameKey(id))
	if err == dbm.ErrNotFoundInDb {
		return nil, ct.ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}
	var game ct.Game
	if err := types.Decode(value, &game); err != nil {
		clog.Error("decode game", "gameID", id, "err", err)
		return nil, types.ErrDecode
	}
	return &game, nil
}

func readRNG(db dbm.KV, id int64) (*ct.RNGSnapshot, error) {
	value, err := db.Get(rngKey(id))
	if err != nil {
		return nil, errors.Wrapf(ct.ErrGameStatus, "rng snapshot of game %d", id)
	}
	var rng ct.RNGSnapshot
	if err := types.Decode(value, &rng); err != nil {
		return nil, types.ErrDecode
	}
	return &rng, nil
}

// saveGame 写入对局并维护状态索引, prevStatus 为 0 表示新建
func (a *Action) saveGame(game *ct.Game, prevStatus int32) error {
	if err := a.set(gameKey(game.GameID), types.Encode(game)); err != nil {
		return err
	}
	if prevStatus == game.Status {
		return nil
	}
	if prevStatus != 0 {
		if err := a.del(statusIndexKey(prevStatus, game.GameID)); err != nil {
			return err
		}
	}
	return a.setInt64(statusIndexKey(game.Status, game.GameID), game.GameID)
}

func (a *Action) indexAddr(addr string, id int64) error {
	return a.setInt64(addrIndexKey(addr, id), id)
}

func (a *Action) gameLog(ty int32, game *ct.Game, prevStatus int32, amount int64) {
	a.log(ty, &ct.ReceiptCoinflip{
		GameID:     game.GameID,
		Status:     game.Status,
		PrevStatus: prevStatus,
		Addr:       a.fromaddr,
		Asset:      game.Asset,
		Amount:     amount,
		Winner:     game.Winner,
		Outcome:    game.Outcome,
		Index:      a.height*types.MaxTxsPerBlock + int64(a.index),
	})
}

// whitelisted 解析资产并检查白名单
func (a *Action) whitelisted(s string) (types.Asset, error) {
	asset, err := types.ParseAsset(s)
	if err != nil {
		return asset, err
	}
	ok, err := getBool(a.db, whitelistKey(asset.String()))
	if err != nil {
		return asset, err
	}
	if !ok {
		return asset, ct.ErrAssetNotWhitelisted
	}
	return asset, nil
}

func (a *Action) checkNotPaused() error {
	paused, err := a.paused()
	if err != nil {
		return err
	}
	if paused {
		return ct.ErrPaused
	}
	return nil
}

// GameCreate 创建对局, 托管创建者押注
func (a *Action) GameCreate(create *ct.CoinflipCreate) (*types.Receipt, error) {
	if err := a.checkNotPaused(); err != nil {
		return nil, err
	}
	asset, err := a.whitelisted(create.Asset)
	if err != nil {
		clog.Debug("GameCreate", "asset", create.Asset, "err", err)
		return nil, err
	}
	if create.Stake <= 0 || create.Stake > ct.MaxStake {
		return nil, ct.ErrInvalidStake
	}
	if create.Side != ct.SideHeads && create.Side != ct.SideTails {
		return nil, ct.ErrInvalidSide
	}
	if err := a.useAllowance(a.fromaddr, asset, create.Stake); err != nil {
		return nil, err
	}
	if err := a.collect(asset, create.Stake); err != nil {
		return nil, err
	}
	count, err := getInt64(a.db, countKey())
	if err != nil {
		return nil, err
	}
	game := &ct.Game{
		GameID:       count + 1,
		Creator:      a.fromaddr,
		Asset:        asset.String(),
		Stake:        create.Stake,
		CreatorSide:  create.Side,
		Status:       ct.GameStatusCreated,
		Pool:         create.Stake,
		CreatedAt:    a.blocktime,
		CreateTxHash: a.txHashHex(),
	}
	if err := a.setInt64(countKey(), game.GameID); err != nil {
		return nil, err
	}
	if err := a.saveGame(game, 0); err != nil {
		return nil, err
	}
	if err := a.indexAddr(game.Creator, game.GameID); err != nil {
		return nil, err
	}
	a.gameLog(ct.TyLogCoinflipCreate, game, 0, create.Stake)
	clog.Info("GameCreate", "gameID", game.GameID, "creator", game.Creator, "asset", game.Asset, "stake", game.Stake, "side", ct.SideName(game.CreatorSide))
	return a.receipt(), nil
}

// GameJoin 加入对局, 固定随机数参数并进入待结算
func (a *Action) GameJoin(join *ct.CoinflipJoin) (*types.Receipt, error) {
	if err := a.checkNotPaused(); err != nil {
		return nil, err
	}
	game, err := readGame(a.db, join.GameID)
	if err != nil {
		return nil, err
	}
	if game.Status != ct.GameStatusCreated {
		return nil, errors.Wrapf(ct.ErrGameStatus, "game %d is %s", game.GameID, ct.StatusName(game.Status))
	}
	if a.fromaddr == game.Creator {
		return nil, ct.ErrSelfJoin
	}
	if a.blocktime > game.CreatedAt+a.cfg.JoinWindow {
		return nil, ct.ErrJoinExpired
	}
	asset, err := a.whitelisted(game.Asset)
	if err != nil {
		return nil, err
	}
	if err := a.useAllowance(a.fromaddr, asset, game.Stake); err != nil {
		return nil, err
	}
	if err := a.collect(asset, game.Stake); err != nil {
		return nil, err
	}
	epoch, err := getInt64(a.db, epochKey())
	if err != nil {
		return nil, err
	}
	prevStatus := game.Status
	game.Joiner = a.fromaddr
	game.JoinedAt = a.blocktime
	game.Pool += game.Stake
	game.ResolveDeadline = a.blocktime + a.cfg.ResolveWindow
	game.Status = ct.GameStatusResolving
	rng := &ct.RNGSnapshot{
		GameID:      game.GameID,
		Seed:        common.ToHex(gameSeed(game)),
		TargetBlock: a.height + 1,
		Epoch:       epoch,
	}
	if err := a.saveGame(game, prevStatus); err != nil {
		return nil, err
	}
	if err := a.set(rngKey(game.GameID), types.Encode(rng)); err != nil {
		return nil, err
	}
	if err := a.indexAddr(game.Joiner, game.GameID); err != nil {
		return nil, err
	}
	a.gameLog(ct.TyLogCoinflipJoin, game, prevStatus, game.Stake)
	clog.Info("GameJoin", "gameID", game.GameID, "joiner", game.Joiner, "targetBlock", rng.TargetBlock, "epoch", rng.Epoch)
	return a.receipt(), nil
}

// gameSeed 由对局身份和双方参与者派生
func gameSeed(game *ct.Game) []byte {
	return common.Keccak256(
		common.Int64ToBytes(game.GameID),
		[]byte(game.Creator),
		[]byte(game.Joiner),
		[]byte(game.Asset),
		common.Int64ToBytes(game.Stake),
	)
}

// GameCancel 创建者取消无人加入的对局, 押注直接退回
func (a *Action) GameCancel(cancel *ct.CoinflipCancel) (*types.Receipt, error) {
	game, err := readGame(a.db, cancel.GameID)
	if err != nil {
		return nil, err
	}
	if game.Status != ct.GameStatusCreated {
		return nil, errors.Wrapf(ct.ErrGameStatus, "game %d is %s", game.GameID, ct.StatusName(game.Status))
	}
	if a.fromaddr != game.Creator {
		return nil, ct.ErrNotCreator
	}
	asset, err := types.ParseAsset(game.Asset)
	if err != nil {
		return nil, err
	}
	prevStatus := game.Status
	refund := game.Pool
	game.Pool = 0
	game.Status = ct.GameStatusCancelled
	if err := a.saveGame(game, prevStatus); err != nil {
		return nil, err
	}
	if err := a.payout(asset, game.Creator, refund); err != nil {
		return nil, err
	}
	a.gameLog(ct.TyLogCoinflipCancel, game, prevStatus, refund)
	clog.Info("GameCancel", "gameID", game.GameID, "refund", refund)
	return a.receipt(), nil
}

// GameClaimRefund 结算超时后任何人都可以触发, 奖池平分到双方可领取余额
func (a *Action) GameClaimRefund(refund *ct.CoinflipClaimRefund) (*types.Receipt, error) {
	game, err := readGame(a.db, refund.GameID)
	if err != nil {
		return nil, err
	}
	if game.Status != ct.GameStatusResolving {
		return nil, errors.Wrapf(ct.ErrGameStatus, "game %d is %s", game.GameID, ct.StatusName(game.Status))
	}
	if a.blocktime <= game.ResolveDeadline {
		return nil, ct.ErrRefundNotReady
	}
	half := game.Pool / 2
	rest := game.Pool - half
	prevStatus := game.Status
	game.Pool = 0
	game.Status = ct.GameStatusCancelled
	if err := a.credit(game.Asset, game.Creator, half); err != nil {
		return nil, err
	}
	if err := a.credit(game.Asset, game.Joiner, rest); err != nil {
		return nil, err
	}
	if err := a.saveGame(game, prevStatus); err != nil {
		return nil, err
	}
	a.gameLog(ct.TyLogCoinflipRefund, game, prevStatus, half+rest)
	clog.Info("GameClaimRefund", "gameID", game.GameID, "caller", a.fromaddr, "creator", half, "joiner", rest)
	return a.receipt(), nil
}
