// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 执行器共用的数据结构, 编码以及配置
package types

import (
	"encoding/json"

	"github.com/33cn/coinflip/common"
)

// KeyValue 状态写入
type KeyValue struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value"`
}

// ReceiptLog 执行日志
type ReceiptLog struct {
	Ty  int32  `json:"ty"`
	Log []byte `json:"log"`
}

// Receipt 交易执行结果
type Receipt struct {
	Ty   int32         `json:"ty"`
	KV   []*KeyValue   `json:"kv"`
	Logs []*ReceiptLog `json:"logs"`
}

// Transaction 执行器交易, Value 为随交易附带的原生币
type Transaction struct {
	Execer  string `json:"execer"`
	From    string `json:"from"`
	Value   int64  `json:"value"`
	Payload []byte `json:"payload"`
	Nonce   int64  `json:"nonce"`
}

// Hash 交易哈希
func (tx *Transaction) Hash() []byte {
	return common.Keccak256(Encode(tx))
}

// Account 账户
type Account struct {
	Balance int64  `json:"balance"`
	Addr    string `json:"addr"`
}

// ReceiptAccountTransfer 账户余额变化
type ReceiptAccountTransfer struct {
	Prev    *Account `json:"prev"`
	Current *Account `json:"current"`
}

//Encode  编码
func Encode(data interface{}) []byte {
	b, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

//Decode  解码
func Decode(data []byte, msg interface{}) error {
	return json.Unmarshal(data, msg)
}

// MustDecode 解码失败直接 panic
func MustDecode(data []byte, v interface{}) {
	if data == nil {
		return
	}
	err := json.Unmarshal(data, v)
	if err != nil {
		panic(err)
	}
}

//CheckAmount  检测转账金额
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}

//NewErrReceipt  new一个新的Receipt
func NewErrReceipt(err error) *Receipt {
	berr := err.Error()
	errlog := &ReceiptLog{Ty: TyLogErr, Log: []byte(berr)}
	return &Receipt{Ty: ExecErr, KV: nil, Logs: []*ReceiptLog{errlog}}
}

// MergeReceipt 合并两个收据
func MergeReceipt(receipt1, receipt2 *Receipt) *Receipt {
	if receipt2 == nil {
		return receipt1
	}
	if receipt1 == nil {
		return receipt2
	}
	receipt1.Logs = append(receipt1.Logs, receipt2.Logs...)
	receipt1.KV = append(receipt1.KV, receipt2.KV...)
	return receipt1
}
