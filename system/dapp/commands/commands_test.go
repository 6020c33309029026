// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/33cn/coinflip/common/address"
	"github.com/33cn/coinflip/system/dapp"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const addr1 = "0x1111111111111111111111111111111111111111"

const confTmpl = `
Title="coinflip"

[log]
logConsoleLevel = "crit"

[store]
driver = "leveldb"
dbPath = "%s"

[chain]
symbol = "bty"
genesisTime = 1514533394
blockInterval = 5

[[genesis]]
addr = "%s"
asset = "coins.bty"
amount = 150000000

[[genesis]]
addr = "%s"
asset = "token.usdt"
amount = 1
`

func writeConf(t *testing.T) string {
	dir := t.TempDir()
	conf := filepath.Join(dir, "coinflip.toml")
	data := fmt.Sprintf(confTmpl, filepath.Join(dir, "datadir"), addr1, addr1)
	require.NoError(t, os.WriteFile(conf, []byte(data), 0600))
	return conf
}

func run(t *testing.T, conf string, args ...string) (string, string) {
	root := &cobra.Command{Use: "coinflip-cli"}
	root.PersistentFlags().String("conf", conf, "config file")
	root.AddCommand(InitCmd(), ChainCmd(), AccountCmd(), VersionCmd())
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String(), errOut.String()
}

func runJSON(t *testing.T, conf string, v interface{}, args ...string) {
	out, errOut := run(t, conf, args...)
	require.Empty(t, errOut)
	require.NoError(t, json.Unmarshal([]byte(out), v))
}

func TestChainCommands(t *testing.T) {
	conf := writeConf(t)

	var head ChainResult
	runJSON(t, conf, &head, "init")
	assert.Equal(t, int64(1), head.Height)
	assert.Equal(t, int64(1514533399), head.BlockTime)
	assert.NotEmpty(t, head.ParentHash)

	head = ChainResult{}
	runJSON(t, conf, &head, "chain", "next", "-n", "3")
	assert.Equal(t, int64(4), head.Height)
	assert.Equal(t, int64(1514533414), head.BlockTime)

	head = ChainResult{}
	runJSON(t, conf, &head, "chain", "next", "-i", "10")
	assert.Equal(t, int64(5), head.Height)
	assert.Equal(t, int64(1514533424), head.BlockTime)

	head = ChainResult{}
	runJSON(t, conf, &head, "chain", "next", "-t", "30")
	assert.Equal(t, int64(11), head.Height)
	assert.Equal(t, int64(1514533454), head.BlockTime)

	head = ChainResult{}
	runJSON(t, conf, &head, "chain", "status")
	assert.Equal(t, int64(11), head.Height)
}

func TestAccountCommands(t *testing.T) {
	conf := writeConf(t)

	var bal BalanceResult
	runJSON(t, conf, &bal, "account", "balance", "-a", addr1)
	assert.Equal(t, "coins.bty", bal.Asset)
	assert.Equal(t, "1.5", bal.Balance)

	runJSON(t, conf, &bal, "account", "balance", "-a", addr1, "-e", "token.USDT")
	assert.Equal(t, "token.usdt", bal.Asset)
	assert.Equal(t, "0.00000001", bal.Balance)

	_, errOut := run(t, conf, "account", "balance", "-a", "0x12")
	assert.Contains(t, errOut, address.ErrCheckAddress.Error())

	var m map[string]string
	runJSON(t, conf, &m, "account", "seed_addr", "-s", "alice")
	assert.Equal(t, address.FromSeed("alice"), m["addr"])

	runJSON(t, conf, &m, "account", "exec_addr", "-e", "coinflip")
	assert.Equal(t, dapp.ExecAddress("coinflip"), m["addr"])
}

func TestMissingConf(t *testing.T) {
	out, errOut := run(t, filepath.Join(t.TempDir(), "none.toml"), "chain", "status")
	assert.Empty(t, out)
	assert.Contains(t, errOut, "read config")
}

func TestVersionCmd(t *testing.T) {
	var info map[string]string
	runJSON(t, "", &info, "version")
	assert.Equal(t, "coinflip-cli", info["title"])
	assert.NotEmpty(t, info["app"])
}
