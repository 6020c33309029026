// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAsset(t *testing.T) {
	a, err := ParseAsset("coins.bty")
	require.Nil(t, err)
	assert.True(t, a.IsNative())
	assert.Equal(t, "coins.bty", a.String())
	assert.Equal(t, NativeAsset("bty"), a)

	a, err = ParseAsset("token.USDT")
	require.Nil(t, err)
	assert.False(t, a.IsNative())
	assert.Equal(t, "token.usdt", a.String())

	for _, bad := range []string{"", "bty", "evm.bty", "token.", "token.a.b", "token.to-long-symbol-name-x"} {
		_, err = ParseAsset(bad)
		assert.Equal(t, ErrAssetFormat, err, bad)
	}
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "1.96", FormatAmount(196000000))
	assert.Equal(t, "0", FormatAmount(0))

	v, err := ParseAmount("1.5")
	require.Nil(t, err)
	assert.Equal(t, int64(150000000), v)
	v, err = ParseAmount("0.00000001")
	require.Nil(t, err)
	assert.Equal(t, int64(1), v)

	for _, bad := range []string{"abc", "-1", "0.000000001", "100000000000"} {
		_, err = ParseAmount(bad)
		assert.Equal(t, ErrAmount, err, bad)
	}
}

func TestReceipt(t *testing.T) {
	r1 := &Receipt{Ty: ExecOk, KV: []*KeyValue{{Key: []byte("a"), Value: []byte("1")}}}
	r2 := &Receipt{Ty: ExecOk, Logs: []*ReceiptLog{{Ty: TyLogTransfer}}}
	r := MergeReceipt(r1, r2)
	assert.Len(t, r.KV, 1)
	assert.Len(t, r.Logs, 1)
	assert.Equal(t, r1, MergeReceipt(r1, nil))
	assert.Equal(t, r2, MergeReceipt(nil, r2))

	er := NewErrReceipt(errors.New("ErrX"))
	assert.Equal(t, int32(ExecErr), er.Ty)
	assert.Equal(t, []byte("ErrX"), er.Logs[0].Log)

	assert.False(t, CheckAmount(0))
	assert.False(t, CheckAmount(MaxCoin))
	assert.True(t, CheckAmount(Coin))
}

func TestTxHash(t *testing.T) {
	tx := &Transaction{Execer: "coinflip", From: "0x01", Payload: []byte("{}")}
	h := tx.Hash()
	assert.Len(t, h, 32)
	tx.Nonce = 1
	assert.NotEqual(t, h, tx.Hash())
}
