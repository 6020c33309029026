// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"errors"
	"testing"

	"github.com/33cn/coinflip/common/address"
	dbm "github.com/33cn/coinflip/common/db"
	"github.com/33cn/coinflip/system/dapp"
	"github.com/33cn/coinflip/types"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testExec = "kvtest"

var (
	errTestFail = errors.New("ErrTestFail")
	addr1       = address.FromSeed("addr1")
	addr2       = address.FromSeed("addr2")
)

type kvPut struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type kvAction struct {
	Ty   int32  `json:"ty"`
	Put  *kvPut `json:"put,omitempty"`
	Fail *kvPut `json:"fail,omitempty"`
}

func (a *kvAction) GetTy() int32 { return a.Ty }

type kvType struct {
	types.ExecTypeBase
}

func newKvType() *kvType {
	t := &kvType{}
	t.SetChild(t)
	return t
}

func (t *kvType) GetName() string { return testExec }

func (t *kvType) GetPayload() types.ExecutorAction { return &kvAction{} }

func (t *kvType) GetTypeMap() map[string]int32 { return map[string]int32{"Put": 1, "Fail": 2} }

type kvDriver struct {
	dapp.DriverBase
	genesised bool
}

func newKvDriver(sub []byte) (dapp.Driver, error) {
	d := &kvDriver{}
	d.SetChild(d)
	d.SetExecutorType(newKvType())
	return d, nil
}

func (d *kvDriver) GetDriverName() string { return testExec }

func (d *kvDriver) Genesis() (*types.Receipt, error) {
	d.genesised = true
	return nil, d.GetStateDB().Set([]byte("mavl-kvtest-genesis"), []byte("ok"))
}

func (d *kvDriver) Exec_Put(p *kvPut, tx *types.Transaction, index int) (*types.Receipt, error) {
	kv := &types.KeyValue{Key: []byte("mavl-kvtest-" + p.Key), Value: []byte(p.Value)}
	if err := d.GetStateDB().Set(kv.Key, kv.Value); err != nil {
		return nil, err
	}
	return &types.Receipt{KV: []*types.KeyValue{kv}}, nil
}

func (d *kvDriver) Exec_Fail(p *kvPut, tx *types.Transaction, index int) (*types.Receipt, error) {
	if err := d.GetStateDB().Set([]byte("mavl-kvtest-"+p.Key), []byte(p.Value)); err != nil {
		return nil, err
	}
	return nil, errTestFail
}

type kvGet struct {
	Key string `json:"key"`
}

func (d *kvDriver) Query_Get(in *kvGet) (types.Message, error) {
	v, err := d.GetStateDB().Get([]byte("mavl-kvtest-" + in.Key))
	if err != nil {
		return nil, types.ErrNotFound
	}
	return string(v), nil
}

func (d *kvDriver) Query_BlockHash(in *types.KeyValue) (types.Message, error) {
	return d.GetAPI().GetBlockHash(d.GetHeight() - 1), nil
}

func init() {
	dapp.Register(testExec, newKvDriver)
}

func newTestExecutor(t *testing.T) (*Executor, dbm.DB) {
	cfg, sub, err := types.InitCfgString(`
[chain]
genesisTime = 1700000000
blockInterval = 5

[[genesis]]
addr = "` + addr1 + `"
asset = "coins.bty"
amount = 10000000000

[[genesis]]
addr = "` + addr1 + `"
asset = "token.usdt"
amount = 500000000
`)
	require.Nil(t, err)
	db, err := dbm.NewDB("test", dbm.MemDBBackendStr, "", 0)
	require.Nil(t, err)
	exec, err := NewWithDB(cfg, sub, db)
	require.Nil(t, err)
	return exec, db
}

func putTx(from, key, value string, attached int64) *types.Transaction {
	return &types.Transaction{
		Execer:  testExec,
		From:    from,
		Value:   attached,
		Payload: types.Encode(&kvAction{Ty: 1, Put: &kvPut{Key: key, Value: value}}),
	}
}

func TestGenesis(t *testing.T) {
	exec, db := newTestExecutor(t)
	bal, err := exec.Balance(types.NativeAsset("bty"), addr1)
	require.Nil(t, err)
	assert.Equal(t, 100*types.Coin, bal)
	bal, err = exec.Balance(types.Asset{Exec: "token", Symbol: "usdt"}, addr1)
	require.Nil(t, err)
	assert.Equal(t, 5*types.Coin, bal)
	_, err = exec.Balance(types.Asset{Exec: "token", Symbol: "none"}, addr1)
	assert.Equal(t, types.ErrAssetNotSupport, err)

	d, ok := exec.Driver(testExec)
	require.True(t, ok)
	assert.True(t, d.(*kvDriver).genesised)

	// reopening the same db does not mint twice
	exec2, err := NewWithDB(exec.cfg, exec.sub, db)
	require.Nil(t, err)
	bal, err = exec2.Balance(types.NativeAsset("bty"), addr1)
	require.Nil(t, err)
	assert.Equal(t, 100*types.Coin, bal)
}

func TestExecCommitAndRollback(t *testing.T) {
	exec, _ := newTestExecutor(t)

	receipt, err := exec.Exec(putTx(addr1, "a", "1", 0))
	require.Nil(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	v, err := exec.Query(testExec, "Get", &kvGet{Key: "a"})
	require.Nil(t, err)
	assert.Equal(t, "1", v)

	tx := &types.Transaction{
		Execer:  testExec,
		From:    addr1,
		Value:   types.Coin,
		Payload: types.Encode(&kvAction{Ty: 2, Fail: &kvPut{Key: "a", Value: "2"}}),
	}
	_, err = exec.Exec(tx)
	assert.Equal(t, errTestFail, err)
	v, err = exec.Query(testExec, "Get", &kvGet{Key: "a"})
	require.Nil(t, err)
	assert.Equal(t, "1", v)
	// attached value moved back with the rollback
	bal, err := exec.Balance(types.NativeAsset("bty"), addr1)
	require.Nil(t, err)
	assert.Equal(t, 100*types.Coin, bal)
}

func TestExecAttachValue(t *testing.T) {
	exec, _ := newTestExecutor(t)
	_, err := exec.Exec(putTx(addr1, "b", "1", 3*types.Coin))
	require.Nil(t, err)
	bal, err := exec.Balance(types.NativeAsset("bty"), dapp.ExecAddress(testExec))
	require.Nil(t, err)
	assert.Equal(t, 3*types.Coin, bal)

	_, err = exec.Exec(putTx(addr2, "b", "1", types.Coin))
	assert.Equal(t, types.ErrNoBalance, pkgerrors.Cause(err))
	_, err = exec.Exec(putTx(addr1, "b", "1", -1))
	assert.Equal(t, types.ErrTxValue, err)
}

func TestExecRejects(t *testing.T) {
	exec, _ := newTestExecutor(t)
	tx := putTx(addr1, "c", "1", 0)
	tx.Execer = "none"
	_, err := exec.Exec(tx)
	assert.Equal(t, types.ErrExecNameNotAllow, err)

	_, err = exec.Exec(putTx("not-an-address", "c", "1", 0))
	assert.Equal(t, address.ErrCheckAddress, pkgerrors.Cause(err))

	tx = putTx(addr1, "c", "1", 0)
	tx.Payload = []byte(`{"ty":9}`)
	_, err = exec.Exec(tx)
	assert.Equal(t, types.ErrActionNotSupport, err)

	tx.Payload = []byte(`{"ty":1}`)
	_, err = exec.Exec(tx)
	assert.Equal(t, types.ErrActionNotSupport, err)

	tx.Payload = []byte(`not json`)
	_, err = exec.Exec(tx)
	assert.Equal(t, types.ErrDecode, pkgerrors.Cause(err))

	_, err = exec.Query(testExec, "NoSuch", nil)
	assert.Equal(t, types.ErrQueryNotSupport, err)
	_, err = exec.Query("none", "Get", nil)
	assert.Equal(t, types.ErrExecNameNotAllow, err)
}

func TestChainBlockHash(t *testing.T) {
	exec, _ := newTestExecutor(t)
	head := exec.Head()
	assert.Equal(t, int64(1), head.Height)
	assert.Equal(t, int64(1700000005), head.BlockTime)

	assert.Nil(t, exec.chain.BlockHash(1))
	assert.NotNil(t, exec.chain.BlockHash(0))

	require.Nil(t, exec.NextBlock(0))
	h1 := exec.chain.BlockHash(1)
	require.Len(t, h1, 32)
	assert.Equal(t, int64(1700000010), exec.Head().BlockTime)

	v, err := exec.Query(testExec, "BlockHash", nil)
	require.Nil(t, err)
	assert.Equal(t, h1, v)

	for i := 0; i < int(types.MaxBlockHashHistory); i++ {
		require.Nil(t, exec.NextBlock(1))
	}
	assert.Nil(t, exec.chain.BlockHash(1))
	assert.NotNil(t, exec.chain.BlockHash(exec.Head().Height-types.MaxBlockHashHistory))

	before := exec.Head().BlockTime
	require.Nil(t, exec.AdvanceTime(12))
	assert.True(t, exec.Head().BlockTime >= before+12)
}

func TestLoadChainPersist(t *testing.T) {
	db, err := dbm.NewDB("test", dbm.MemDBBackendStr, "", 0)
	require.Nil(t, err)
	c, err := LoadChain(db, 100, 10)
	require.Nil(t, err)
	require.Nil(t, c.NextBlock(0))
	c2, err := LoadChain(db, 100, 10)
	require.Nil(t, err)
	assert.Equal(t, int64(2), c2.Height())
	assert.Equal(t, int64(120), c2.BlockTime())
	assert.Equal(t, c.BlockHash(1), c2.BlockHash(1))
}
