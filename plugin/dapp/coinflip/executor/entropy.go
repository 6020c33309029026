// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/coinflip/common"
	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	"github.com/holiman/uint256"
)

// Entropy 由揭示值, 对局种子和外部不可预测值得出结果
type Entropy interface {
	// Outcome 返回胜出的一面以及参与判定的混合值
	Outcome(reveal, seed, external []byte) (int32, []byte)
}

// KeccakMixer keccak256(reveal ‖ seed ‖ external) 的奇偶性, 偶数为正面
type KeccakMixer struct{}

// Outcome 实现 Entropy
func (KeccakMixer) Outcome(reveal, seed, external []byte) (int32, []byte) {
	mixed := common.Keccak256(reveal, seed, external)
	return Parity(mixed), mixed
}

// Parity 将 32 字节大端整数的奇偶性映射为正反面
func Parity(mixed []byte) int32 {
	v := new(uint256.Int).SetBytes(mixed)
	if new(uint256.Int).And(v, uint256.NewInt(1)).IsZero() {
		return ct.SideHeads
	}
	return ct.SideTails
}
