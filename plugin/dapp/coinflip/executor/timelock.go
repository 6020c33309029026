// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/coinflip/common"
	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/33cn/coinflip/types"
)

// Fingerprint keccak256(name ‖ 0x00 ‖ json(params)) 的 hex
func Fingerprint(name string, params interface{}) string {
	return common.HashHex(common.Keccak256([]byte(name), []byte{0}, types.Encode(params)))
}

// gate 管理操作的两步提交: 第一次排队并返回 false, 延迟之后同样参数的第二次调用返回 true
func (a *Action) gate(name string, params interface{}) (bool, error) {
	owner, err := a.owner()
	if err != nil {
		return false, err
	}
	if a.fromaddr != owner {
		return false, ct.ErrNotOwner
	}
	fp := Fingerprint(name, params)
	key := timelockKey(fp)
	executeAfter, queued, err := loadInt64(a.db, key)
	if err != nil {
		return false, err
	}
	if !queued {
		executeAfter = a.blocktime + a.cfg.TimelockDelay
		if err := a.setInt64(key, executeAfter); err != nil {
			return false, err
		}
		a.log(ct.TyLogCoinflipTimelockQueued, &ct.ReceiptTimelock{Action: name, Fingerprint: fp, ExecuteAfter: executeAfter})
		clog.Info("timelock queued", "action", name, "fingerprint", fp, "executeAfter", executeAfter)
		return false, nil
	}
	if a.blocktime < executeAfter {
		return false, ct.ErrTimelockNotReady
	}
	if err := a.del(key); err != nil {
		return false, err
	}
	a.log(ct.TyLogCoinflipTimelockExecuted, &ct.ReceiptTimelock{Action: name, Fingerprint: fp, ExecuteAfter: executeAfter})
	clog.Info("timelock executed", "action", name, "fingerprint", fp)
	return true, nil
}
