// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/33cn/coinflip/common/address"
	"github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = address.FromSeed("addr1")
	addr2 = address.FromSeed("addr2")
	addr3 = address.FromSeed("addr3")
)

func GenerAccDb() (*DB, *DB) {
	//构造账户数据库
	stroedb, _ := db.NewGoMemDB("gomemdb", "test", 128)
	accCoin := NewCoinsAccount(types.DefaultSymbol, stroedb)

	stroedb2, _ := db.NewGoMemDB("gomemdb", "test", 128)
	accToken, _ := NewAccountDB("token", "test", stroedb2)
	return accCoin, accToken
}

func (acc *DB) GenerAccData(t *testing.T) {
	_, err := acc.GenesisInit(addr1, 1000*types.Coin)
	require.Nil(t, err)
	_, err = acc.GenesisInit(addr2, 900*types.Coin)
	require.Nil(t, err)
}

func TestNewAccountDB(t *testing.T) {
	_, err := NewAccountDB("co-ins", "bty", nil)
	assert.Equal(t, types.ErrExecNameNotAllow, err)
	_, err = NewAccountDB("coins", "b-ty", nil)
	assert.Equal(t, types.ErrAssetFormat, err)
	acc, err := NewAccountDB("token", "usdt", nil)
	require.Nil(t, err)
	assert.Equal(t, "mavl-token-usdt-"+addr1, string(acc.AccountKey(addr1)))
	assert.Equal(t, "token.usdt", acc.Asset().String())
}

func TestTransfer(t *testing.T) {
	accCoin, _ := GenerAccDb()
	accCoin.GenerAccData(t)

	receipt, err := accCoin.Transfer(addr1, addr3, 10*types.Coin)
	require.Nil(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Len(t, receipt.KV, 2)
	assert.Len(t, receipt.Logs, 2)
	assert.Equal(t, 990*types.Coin, accCoin.GetBalance(addr1))
	assert.Equal(t, 10*types.Coin, accCoin.GetBalance(addr3))

	var rlog types.ReceiptAccountTransfer
	require.Nil(t, types.Decode(receipt.Logs[0].Log, &rlog))
	assert.Equal(t, 1000*types.Coin, rlog.Prev.Balance)
	assert.Equal(t, 990*types.Coin, rlog.Current.Balance)

	_, err = accCoin.Transfer(addr3, addr1, 11*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = accCoin.Transfer(addr1, addr1, types.Coin)
	assert.Equal(t, types.ErrSendSameToRecv, err)
	_, err = accCoin.Transfer(addr1, addr2, 0)
	assert.Equal(t, types.ErrAmount, err)
	_, err = accCoin.Transfer(addr1, addr2, -1)
	assert.Equal(t, types.ErrAmount, err)

	assert.Nil(t, accCoin.CheckTransfer(addr1, addr2, types.Coin))
	assert.Equal(t, types.ErrNoBalance, accCoin.CheckTransfer(addr3, addr2, 100*types.Coin))
}

func TestGenesisOverflow(t *testing.T) {
	_, accToken := GenerAccDb()
	_, err := accToken.GenesisInit(addr1, types.MaxCoin-1)
	require.Nil(t, err)
	_, err = accToken.GenesisInit(addr1, types.MaxCoin-1)
	assert.Equal(t, types.ErrAmount, err)
	assert.Equal(t, types.MaxCoin-1, accToken.GetBalance(addr1))
}

func TestRegistry(t *testing.T) {
	store, _ := db.NewGoMemDB("gomemdb", "test", 128)
	r := NewRegistry("bty")
	assert.True(t, r.Has(r.Native()))

	usdt := types.Asset{Exec: types.TokenExec, Symbol: "usdt"}
	_, err := r.Vault(usdt, store)
	assert.Equal(t, types.ErrAssetNotSupport, err)
	require.Nil(t, r.Register(usdt, nil))
	v, err := r.Vault(usdt, store)
	require.Nil(t, err)
	assert.Equal(t, int64(0), v.GetBalance(addr1))

	assert.Equal(t, types.ErrAssetNotSupport, r.Register(types.NativeAsset("eth"), nil))
	assert.Equal(t, types.ErrAssetFormat, r.Register(types.Asset{Exec: "evm", Symbol: "x"}, nil))
}
