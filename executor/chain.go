// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"
	"time"

	"github.com/33cn/coinflip/common"
	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/types"
	"github.com/pkg/errors"
)

var (
	chainHeadKey    = []byte("chain-head")
	chainHashPerfix = "chain-hash-"
)

// ChainHead 当前正在打包的区块
type ChainHead struct {
	Height    int64 `json:"height"`
	BlockTime int64 `json:"blockTime"`
}

// Chain 本地区块环境: 高度, 区块时间以及已封块的 hash
type Chain struct {
	db       dbm.DB
	head     ChainHead
	interval int64
}

func calcBlockHashKey(height int64) []byte {
	return []byte(fmt.Sprintf("%s%018d", chainHashPerfix, height))
}

// LoadChain 读取链头, 不存在时创建创世块(高度 0 已封块, 当前高度 1)
func LoadChain(db dbm.DB, genesisTime, interval int64) (*Chain, error) {
	if interval <= 0 {
		interval = types.DefaultBlockInterval
	}
	c := &Chain{db: db, interval: interval}
	value, err := db.Get(chainHeadKey)
	if err == nil {
		if err := types.Decode(value, &c.head); err != nil {
			return nil, errors.Wrap(err, "decode chain head")
		}
		return c, nil
	}
	if err != dbm.ErrNotFoundInDb {
		return nil, err
	}
	if genesisTime <= 0 {
		genesisTime = time.Now().Unix()
	}
	genesisHash := common.Keccak256([]byte("genesis"), common.Int64ToBytes(genesisTime))
	if err := db.Set(calcBlockHashKey(0), genesisHash); err != nil {
		return nil, err
	}
	c.head = ChainHead{Height: 1, BlockTime: genesisTime + interval}
	if err := db.Set(chainHeadKey, types.Encode(&c.head)); err != nil {
		return nil, err
	}
	return c, nil
}

// Height 当前区块高度
func (c *Chain) Height() int64 {
	return c.head.Height
}

// BlockTime 当前区块时间
func (c *Chain) BlockTime() int64 {
	return c.head.BlockTime
}

// NextBlock 封当前块并开始下一块, dt <= 0 时使用默认出块间隔
func (c *Chain) NextBlock(dt int64) error {
	if dt <= 0 {
		dt = c.interval
	}
	parent, err := c.db.Get(calcBlockHashKey(c.head.Height - 1))
	if err != nil {
		return errors.Wrapf(err, "parent hash of %d", c.head.Height)
	}
	hash := common.Keccak256(parent, common.Int64ToBytes(c.head.Height), common.Int64ToBytes(c.head.BlockTime))
	next := ChainHead{Height: c.head.Height + 1, BlockTime: c.head.BlockTime + dt}
	batch := c.db.NewBatch(true)
	batch.Set(calcBlockHashKey(c.head.Height), hash)
	batch.Set(chainHeadKey, types.Encode(&next))
	if old := c.head.Height - types.MaxBlockHashHistory - 1; old > 0 {
		batch.Delete(calcBlockHashKey(old))
	}
	if err := batch.Write(); err != nil {
		return err
	}
	c.head = next
	return nil
}

// BlockHash 已封块且在最近 256 块以内时返回 hash, 否则返回 nil
func (c *Chain) BlockHash(height int64) []byte {
	if height < 0 || height >= c.head.Height || height < c.head.Height-types.MaxBlockHashHistory {
		return nil
	}
	hash, err := c.db.Get(calcBlockHashKey(height))
	if err != nil {
		return nil
	}
	return hash
}
