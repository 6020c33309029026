// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfg = `
Title="local"

[log]
loglevel = "debug"
logConsoleLevel = "info"
logFile = "logs/coinflip.log"
maxFileSize = 300
maxBackups = 100
maxAge = 28

[store]
driver = "memdb"

[chain]
genesisTime = 1700000000

[[genesis]]
addr = "0x0000000000000000000000000000000000000001"
asset = "coins.bty"
amount = 1000000000

[exec.sub.coinflip]
owner = "0x0000000000000000000000000000000000000002"
feeBps = 300
`

func TestInitCfgString(t *testing.T) {
	cfg, sub, err := InitCfgString(testCfg)
	require.Nil(t, err)
	assert.Equal(t, "local", cfg.Title)
	assert.Equal(t, "debug", cfg.Log.Loglevel)
	assert.Equal(t, uint32(300), cfg.Log.MaxFileSize)
	assert.Equal(t, "memdb", cfg.Store.Driver)
	assert.Equal(t, "datadir", cfg.Store.DbPath)
	assert.Equal(t, DefaultSymbol, cfg.Chain.Symbol)
	assert.Equal(t, DefaultBlockInterval, cfg.Chain.BlockInterval)
	assert.Equal(t, int64(1700000000), cfg.Chain.GenesisTime)
	require.Len(t, cfg.Genesis, 1)
	assert.Equal(t, int64(10*Coin), cfg.Genesis[0].Amount)

	var exec struct {
		Owner  string `json:"owner"`
		FeeBps int64  `json:"feeBps"`
	}
	MustDecode(sub.Exec["coinflip"], &exec)
	assert.Equal(t, "0x0000000000000000000000000000000000000002", exec.Owner)
	assert.Equal(t, int64(300), exec.FeeBps)
	assert.Empty(t, sub.Store)
}

func TestInitCfgFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coinflip.toml")
	require.Nil(t, os.WriteFile(path, []byte(testCfg), 0600))
	cfg, _, err := InitCfg(path)
	require.Nil(t, err)
	assert.Equal(t, "local", cfg.Title)

	_, _, err = InitCfg(filepath.Join(t.TempDir(), "missing.toml"))
	assert.NotNil(t, err)

	_, _, err = InitCfgString("Title = ")
	assert.NotNil(t, err)
}

func TestModifySubConfig(t *testing.T) {
	b, err := ModifySubConfig(nil, "signer", "0xabc")
	require.Nil(t, err)
	var m map[string]string
	MustDecode(b, &m)
	assert.Equal(t, "0xabc", m["signer"])
}
