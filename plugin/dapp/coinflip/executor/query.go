// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/coinflip/common/address"
	dbm "github.com/33cn/coinflip/common/db"
	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/types"
)

// Query_GetGame 按 id 查询对局
func (c *Coinflip) Query_GetGame(in *ct.ReqGame) (types.Message, error) {
	return readGame(c.GetStateDB(), in.GameID)
}

// Query_ListGames 按 id 顺序分页
func (c *Coinflip) Query_ListGames(in *ct.ReqListGames) (types.Message, error) {
	db := c.GetStateDB()
	var key []byte
	if in.Cursor > 0 {
		key = gameKey(in.Cursor)
	}
	count := c.pageSize(in.Count)
	values, err := db.List([]byte(prefixGame), key, count, in.Direction)
	if err != nil {
		return nil, err
	}
	reply := &ct.ReplyGames{}
	for _, value := range values {
		var game ct.Game
		if err := types.Decode(value, &game); err != nil {
			return nil, types.ErrDecode
		}
		reply.Games = append(reply.Games, &game)
	}
	setNextCursor(reply, count)
	return reply, nil
}

// Query_ListGamesByAddr 某地址参与的对局
func (c *Coinflip) Query_ListGamesByAddr(in *ct.ReqListGames) (types.Message, error) {
	if err := address.CheckAddress(in.Addr); err != nil {
		return nil, err
	}
	addr := address.Normalize(in.Addr)
	var key []byte
	if in.Cursor > 0 {
		key = addrIndexKey(addr, in.Cursor)
	}
	return c.listByIndex(addrIndexPrefix(addr), key, in)
}

// Query_ListGamesByStatus 某状态下的对局
func (c *Coinflip) Query_ListGamesByStatus(in *ct.ReqListGames) (types.Message, error) {
	if in.Status < ct.GameStatusCreated || in.Status > ct.GameStatusCancelled {
		return nil, types.ErrInvalidParam
	}
	var key []byte
	if in.Cursor > 0 {
		key = statusIndexKey(in.Status, in.Cursor)
	}
	return c.listByIndex(statusIndexPrefix(in.Status), key, in)
}

func (c *Coinflip) listByIndex(prefix, key []byte, in *ct.ReqListGames) (types.Message, error) {
	db := c.GetStateDB()
	count := c.pageSize(in.Count)
	values, err := db.List(prefix, key, count, in.Direction)
	if err != nil {
		return nil, err
	}
	reply := &ct.ReplyGames{}
	for _, value := range values {
		var id int64
		if err := types.Decode(value, &id); err != nil {
			return nil, types.ErrDecode
		}
		game, err := readGame(db, id)
		if err != nil {
			return nil, err
		}
		reply.Games = append(reply.Games, game)
	}
	setNextCursor(reply, count)
	return reply, nil
}

// pageSize 缺省 20, 不超过 maxPageSize
func (c *Coinflip) pageSize(count int32) int32 {
	if count <= 0 {
		count = ct.DefaultPageSize
	}
	if count > c.cfg.MaxPageSize {
		count = c.cfg.MaxPageSize
	}
	return count
}

func setNextCursor(reply *ct.ReplyGames, count int32) {
	if int32(len(reply.Games)) == count {
		reply.NextCursor = reply.Games[len(reply.Games)-1].GameID
	}
}

// Query_GetEpoch 当前 epoch 以及它的承诺
func (c *Coinflip) Query_GetEpoch(in *ct.ReqNil) (types.Message, error) {
	db := c.GetStateDB()
	epoch, err := getInt64(db, epochKey())
	if err != nil {
		return nil, err
	}
	commitment, err := getString(db, commitKey(epoch))
	if err != nil {
		return nil, err
	}
	return &ct.ReplyEpoch{Epoch: epoch, Commitment: commitment}, nil
}

// Query_GetCommitment 指定 epoch 的承诺
func (c *Coinflip) Query_GetCommitment(in *ct.ReqEpoch) (types.Message, error) {
	commitment, err := getString(c.GetStateDB(), commitKey(in.Epoch))
	if err != nil {
		return nil, err
	}
	if commitment == "" {
		return nil, ct.ErrNoCommitment
	}
	return &ct.ReplyEpoch{Epoch: in.Epoch, Commitment: commitment}, nil
}

// Query_GetClaimable 可领取余额
func (c *Coinflip) Query_GetClaimable(in *ct.ReqAddrAsset) (types.Message, error) {
	asset, addr, err := parseAddrAsset(in)
	if err != nil {
		return nil, err
	}
	amount, err := getInt64(c.GetStateDB(), claimKey(asset, addr))
	if err != nil {
		return nil, err
	}
	return &ct.ReplyAmount{Asset: asset, Addr: addr, Amount: amount}, nil
}

// Query_GetFees 累计手续费
func (c *Coinflip) Query_GetFees(in *ct.ReqAsset) (types.Message, error) {
	asset, err := types.ParseAsset(in.Asset)
	if err != nil {
		return nil, err
	}
	amount, err := getInt64(c.GetStateDB(), feeKey(asset.String()))
	if err != nil {
		return nil, err
	}
	return &ct.ReplyAmount{Asset: asset.String(), Amount: amount}, nil
}

// Query_GetWhitelist 资产是否可用于下注
func (c *Coinflip) Query_GetWhitelist(in *ct.ReqAsset) (types.Message, error) {
	asset, err := types.ParseAsset(in.Asset)
	if err != nil {
		return nil, err
	}
	allowed, err := getBool(c.GetStateDB(), whitelistKey(asset.String()))
	if err != nil {
		return nil, err
	}
	return &ct.ReplyWhitelist{Asset: asset.String(), Allowed: allowed}, nil
}

// Query_GetTimelock 排队中的管理操作
func (c *Coinflip) Query_GetTimelock(in *ct.ReqFingerprint) (types.Message, error) {
	executeAfter, err := getInt64(c.GetStateDB(), timelockKey(in.Fingerprint))
	if err != nil {
		return nil, err
	}
	return &ct.ReplyTimelock{Fingerprint: in.Fingerprint, ExecuteAfter: executeAfter}, nil
}

// Query_GetAdmin 管理状态
func (c *Coinflip) Query_GetAdmin(in *ct.ReqNil) (types.Message, error) {
	return adminState(c.GetStateDB(), c.cfg, c.GetName())
}

// Query_GetAllowance 当日剩余额度
func (c *Coinflip) Query_GetAllowance(in *ct.ReqAddrAsset) (types.Message, error) {
	asset, addr, err := parseAddrAsset(in)
	if err != nil {
		return nil, err
	}
	return allowance(c.GetStateDB(), c.cfg, addr, asset, c.GetBlockTime())
}

func adminState(db dbm.KV, cfg *ct.Config, name string) (*ct.ReplyAdmin, error) {
	reply := &ct.ReplyAdmin{FeeBps: cfg.FeeBps, Delay: cfg.TimelockDelay, Executor: address.ExecAddress(name)}
	var err error
	if reply.Owner, err = getString(db, ownerKey()); err != nil {
		return nil, err
	}
	if reply.Signer, err = getString(db, signerKey()); err != nil {
		return nil, err
	}
	if reply.Paused, err = getBool(db, pausedKey()); err != nil {
		return nil, err
	}
	if reply.Upgrade, err = getString(db, upgradeKey()); err != nil {
		return nil, err
	}
	return reply, nil
}

func parseAddrAsset(in *ct.ReqAddrAsset) (string, string, error) {
	asset, err := types.ParseAsset(in.Asset)
	if err != nil {
		return "", "", err
	}
	if err := address.CheckAddress(in.Addr); err != nil {
		return "", "", err
	}
	return asset.String(), address.Normalize(in.Addr), nil
}
