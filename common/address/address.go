// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package address 地址校验以及执行器地址计算
package address

import (
	"errors"

	"github.com/33cn/coinflip/common"
	ethcom "github.com/ethereum/go-ethereum/common"
	lru "github.com/hashicorp/golang-lru"
)

var addrSeed = []byte("address seed bytes for public key")
var addressCache *lru.Cache
var checkAddressCache *lru.Cache

// ErrCheckAddress 地址格式错误
var ErrCheckAddress = errors.New("ErrCheckAddress")

//MaxExecNameLength 执行器名最大长度
const MaxExecNameLength = 100

func init() {
	addressCache, _ = lru.New(10240)
	checkAddressCache, _ = lru.New(10240)
}

//ExecPubKey 计算执行器的伪公钥
func ExecPubKey(name string) []byte {
	if len(name) > MaxExecNameLength {
		panic("name too long")
	}
	var bname [200]byte
	buf := append(bname[:0], addrSeed...)
	buf = append(buf, []byte(name)...)
	return common.Keccak256(buf)
}

//ExecAddress 计算量有点大，做一次cache
func ExecAddress(name string) string {
	if value, ok := addressCache.Get(name); ok {
		return value.(string)
	}
	addr := PubKeyToAddress(ExecPubKey(name))
	addressCache.Add(name, addr)
	return addr
}

//PubKeyToAddress 取公钥哈希后20字节
func PubKeyToAddress(in []byte) string {
	h := common.Keccak256(in)
	return ethcom.BytesToAddress(h[12:]).Hex()
}

//CheckAddress 检查地址格式, 结果缓存
func CheckAddress(addr string) error {
	if value, ok := checkAddressCache.Get(addr); ok {
		if value == nil {
			return nil
		}
		return value.(error)
	}
	var err error
	if !ethcom.IsHexAddress(addr) || !common.HasHexPrefix(addr) {
		err = ErrCheckAddress
	} else if ethcom.HexToAddress(addr) == (ethcom.Address{}) {
		err = ErrCheckAddress
	}
	checkAddressCache.Add(addr, err)
	return err
}

// Normalize 返回地址的 EIP-55 规范形式, 同一地址的不同大小写写法得到同一个身份
func Normalize(addr string) string {
	return ethcom.HexToAddress(addr).Hex()
}

// FromSeed 由任意字符串生成确定性的地址, 用于测试和本地开发账户
func FromSeed(seed string) string {
	return PubKeyToAddress([]byte(seed))
}
