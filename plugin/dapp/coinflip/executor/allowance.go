// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/coinflip/common/db"
	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/types"
)

func dayOf(blocktime int64) int64 {
	return blocktime / ct.SecondsPerDay
}

// useAllowance dailyLimit 为 0 时不限制
func (a *Action) useAllowance(addr string, asset types.Asset, amount int64) error {
	if a.cfg.DailyLimit == 0 {
		return nil
	}
	key := allowKey(addr, asset.String(), dayOf(a.blocktime))
	used, err := getInt64(a.db, key)
	if err != nil {
		return err
	}
	if amount > a.cfg.DailyLimit-used {
		return ct.ErrDailyLimit
	}
	return a.setInt64(key, used+amount)
}

func allowance(db dbm.KV, cfg *ct.Config, addr, asset string, blocktime int64) (*ct.ReplyAllowance, error) {
	day := dayOf(blocktime)
	used, err := getInt64(db, allowKey(addr, asset, day))
	if err != nil {
		return nil, err
	}
	reply := &ct.ReplyAllowance{Addr: addr, Asset: asset, Day: day, Used: used, Remaining: -1}
	if cfg.DailyLimit > 0 {
		reply.Remaining = cfg.DailyLimit - used
	}
	return reply, nil
}
