// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"
	"strconv"

	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/types"
)

//状态数据库中存储的 key
var (
	prefixState     = "mavl-coinflip-"
	prefixGame      = prefixState + "game-"
	prefixAddrIndex = "LODB-coinflip-addr:"
	prefixStatus    = "LODB-coinflip-status:"
)

func gameKey(id int64) []byte {
	return []byte(fmt.Sprintf("%s%018d", prefixGame, id))
}

func rngKey(id int64) []byte {
	return []byte(fmt.Sprintf("%srng-%018d", prefixState, id))
}

func countKey() []byte {
	return []byte(prefixState + "count")
}

func epochKey() []byte {
	return []byte(prefixState + "epoch")
}

func commitKey(epoch int64) []byte {
	return []byte(fmt.Sprintf("%scommit-%018d", prefixState, epoch))
}

func claimKey(asset, addr string) []byte {
	return []byte(prefixState + "claim-" + asset + "-" + addr)
}

func feeKey(asset string) []byte {
	return []byte(prefixState + "fee-" + asset)
}

func whitelistKey(asset string) []byte {
	return []byte(prefixState + "whitelist-" + asset)
}

func timelockKey(fingerprint string) []byte {
	return []byte(prefixState + "timelock-" + fingerprint)
}

func ownerKey() []byte {
	return []byte(prefixState + "owner")
}

func signerKey() []byte {
	return []byte(prefixState + "signer")
}

func pausedKey() []byte {
	return []byte(prefixState + "paused")
}

func upgradeKey() []byte {
	return []byte(prefixState + "upgrade")
}

func allowKey(addr, asset string, day int64) []byte {
	return []byte(fmt.Sprintf("%sallow-%s-%s-%d", prefixState, addr, asset, day))
}

func addrIndexPrefix(addr string) []byte {
	return []byte(prefixAddrIndex + addr + ":")
}

func addrIndexKey(addr string, id int64) []byte {
	return []byte(fmt.Sprintf("%s%s:%018d", prefixAddrIndex, addr, id))
}

func statusIndexPrefix(status int32) []byte {
	return []byte(prefixStatus + strconv.Itoa(int(status)) + ":")
}

func statusIndexKey(status int32, id int64) []byte {
	return []byte(fmt.Sprintf("%s%d:%018d", prefixStatus, status, id))
}

// getInt64 key 不存在时返回 0
func getInt64(db dbm.KV, key []byte) (int64, error) {
	v, _, err := loadInt64(db, key)
	return v, err
}

func loadInt64(db dbm.KV, key []byte) (int64, bool, error) {
	value, err := db.Get(key)
	if err == dbm.ErrNotFoundInDb {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	var v int64
	if err := types.Decode(value, &v); err != nil {
		return 0, false, types.ErrDecode
	}
	return v, true, nil
}

func getBool(db dbm.KV, key []byte) (bool, error) {
	value, err := db.Get(key)
	if err == dbm.ErrNotFoundInDb {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	var v bool
	if err := types.Decode(value, &v); err != nil {
		return false, types.ErrDecode
	}
	return v, nil
}

func getString(db dbm.KV, key []byte) (string, error) {
	value, err := db.Get(key)
	if err == dbm.ErrNotFoundInDb {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(value), nil
}
