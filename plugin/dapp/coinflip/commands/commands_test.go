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

	"github.com/33cn/coinflip/common"
	cfexec "github.com/33cn/coinflip/plugin/dapp/coinflip/executor"
	ct "github.com/33cn/coinflip/plugin/dapp/coinflip/types"
	cmdtypes "github.com/33cn/coinflip/system/dapp/commands"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	owner = "0x1111111111111111111111111111111111111111"
	bob   = "0x2222222222222222222222222222222222222222"
	carol = "0x3333333333333333333333333333333333333333"
)

func init() {
	cfexec.Init(ct.CoinflipX)
}

const confTmpl = `
Title="coinflip"

[log]
loglevel = "error"
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
amount = 100000000000

[[genesis]]
addr = "%s"
asset = "coins.bty"
amount = 100000000000

[[genesis]]
addr = "%s"
asset = "coins.bty"
amount = 100000000000

[exec.sub.coinflip]
owner = "%s"
feeBps = 200
`

func writeConf(t *testing.T) string {
	dir := t.TempDir()
	conf := filepath.Join(dir, "coinflip.toml")
	data := fmt.Sprintf(confTmpl, filepath.Join(dir, "datadir"), owner, bob, carol, owner)
	require.NoError(t, os.WriteFile(conf, []byte(data), 0600))
	return conf
}

func newRoot(conf string) *cobra.Command {
	root := &cobra.Command{Use: "coinflip-cli"}
	root.PersistentFlags().String("conf", conf, "config file")
	root.AddCommand(Cmd(), cmdtypes.ChainCmd(), cmdtypes.AccountCmd())
	return root
}

func run(t *testing.T, conf string, args ...string) (string, string) {
	root := newRoot(conf)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String(), errOut.String()
}

func runTx(t *testing.T, conf string, args ...string) *cmdtypes.TxResult {
	out, errOut := run(t, conf, args...)
	require.Empty(t, errOut)
	var res cmdtypes.TxResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	return &res
}

func runQuery(t *testing.T, conf string, v interface{}, args ...string) {
	out, errOut := run(t, conf, args...)
	require.Empty(t, errOut)
	require.NoError(t, json.Unmarshal([]byte(out), v))
}

func logNames(res *cmdtypes.TxResult) []string {
	var names []string
	for _, l := range res.Logs {
		names = append(names, l.Name)
	}
	return names
}

func TestGameLifecycle(t *testing.T) {
	conf := writeConf(t)

	res := runTx(t, conf, "coinflip", "create", "-f", bob, "-s", "1.5", "-d", "heads")
	assert.Contains(t, logNames(res), "LogCoinflipCreate")
	assert.Contains(t, logNames(res), "LogTransfer")

	var game GameResult
	runQuery(t, conf, &game, "coinflip", "query", "game", "-g", "1")
	assert.Equal(t, int64(1), game.GameID)
	assert.Equal(t, bob, game.Creator)
	assert.Equal(t, "1.5", game.StakeStr)
	assert.Equal(t, "created", game.StatusName)
	assert.Equal(t, "heads", game.SideName)

	res = runTx(t, conf, "coinflip", "join", "-f", carol, "-g", "1")
	assert.Contains(t, logNames(res), "LogCoinflipJoin")

	game = GameResult{}
	runQuery(t, conf, &game, "coinflip", "query", "game", "-g", "1")
	assert.Equal(t, "resolving", game.StatusName)
	assert.Equal(t, "3", game.PoolStr)

	run(t, conf, "chain", "next", "-n", "2")
	res = runTx(t, conf, "coinflip", "emergency", "-f", owner, "-g", "1", "-d", "heads")
	assert.Contains(t, logNames(res), "LogCoinflipResolve")

	var claimable AmountResult
	runQuery(t, conf, &claimable, "coinflip", "query", "claimable", "-a", bob)
	assert.Equal(t, "coins.bty", claimable.Asset)
	assert.Equal(t, "2.94", claimable.AmountStr)

	var fees AmountResult
	runQuery(t, conf, &fees, "coinflip", "query", "fees")
	assert.Equal(t, "0.06", fees.AmountStr)

	res = runTx(t, conf, "coinflip", "claim", "-f", bob)
	assert.Contains(t, logNames(res), "LogCoinflipClaim")

	var bal cmdtypes.BalanceResult
	runQuery(t, conf, &bal, "account", "balance", "-a", bob)
	assert.Equal(t, "1001.44", bal.Balance)
	runQuery(t, conf, &bal, "account", "balance", "-a", carol)
	assert.Equal(t, "998.5", bal.Balance)

	var list GamesResult
	runQuery(t, conf, &list, "coinflip", "query", "list", "-a", carol)
	require.Len(t, list.Games, 1)
	assert.Equal(t, "resolved", list.Games[0].StatusName)
}

func TestTxErrorsGoToStderr(t *testing.T) {
	conf := writeConf(t)
	out, errOut := run(t, conf, "coinflip", "join", "-f", carol, "-g", "7")
	assert.Empty(t, out)
	assert.Contains(t, errOut, ct.ErrGameNotFound.Error())

	_, errOut = run(t, conf, "coinflip", "create", "-f", bob, "-s", "1.123456789")
	assert.Contains(t, errOut, "ErrAmount")

	_, errOut = run(t, conf, "coinflip", "create", "-f", bob, "-s", "1", "-d", "edge")
	assert.Contains(t, errOut, ct.ErrInvalidSide.Error())

	_, errOut = run(t, conf, "coinflip", "admin", "pause", "-f", bob)
	assert.Contains(t, errOut, ct.ErrNotOwner.Error())
}

func TestAdminTimelock(t *testing.T) {
	conf := writeConf(t)

	res := runTx(t, conf, "coinflip", "admin", "pause", "-f", owner)
	assert.Equal(t, []string{"LogCoinflipTimelockQueued"}, logNames(res))

	var fp ct.ReqFingerprint
	runQuery(t, conf, &fp, "coinflip", "query", "fingerprint", "-t", ct.GateSetPause, "-j", `{"paused":true}`)
	assert.Equal(t, cfexec.Fingerprint(ct.GateSetPause, &ct.CoinflipSetPause{Paused: true}), fp.Fingerprint)

	var queued ct.ReplyTimelock
	runQuery(t, conf, &queued, "coinflip", "query", "timelock", "-t", ct.GateSetPause, "-j", `{"paused":true}`)
	assert.True(t, queued.ExecuteAfter > 0)

	_, errOut := run(t, conf, "coinflip", "admin", "pause", "-f", owner)
	assert.Contains(t, errOut, ct.ErrTimelockNotReady.Error())

	run(t, conf, "chain", "next", "-t", fmt.Sprint(ct.DefaultTimelockDelay))
	res = runTx(t, conf, "coinflip", "admin", "pause", "-f", owner)
	assert.Contains(t, logNames(res), "LogCoinflipPause")

	var admin ct.ReplyAdmin
	runQuery(t, conf, &admin, "coinflip", "query", "admin")
	assert.True(t, admin.Paused)
	assert.Equal(t, owner, admin.Owner)

	_, errOut = run(t, conf, "coinflip", "create", "-f", bob, "-s", "1")
	assert.Contains(t, errOut, ct.ErrPaused.Error())
}

func TestCommitEpochFromSecret(t *testing.T) {
	conf := writeConf(t)
	secret := "0x" + "ab"
	for i := 0; i < 2; i++ {
		run(t, conf, "coinflip", "admin", "commit", "-f", owner, "-n", "1", "-s", secret)
		run(t, conf, "chain", "next", "-t", fmt.Sprint(ct.DefaultTimelockDelay))
	}
	var epoch ct.ReplyEpoch
	runQuery(t, conf, &epoch, "coinflip", "query", "epoch", "-n", "1")
	b, err := common.FromHex(secret)
	require.NoError(t, err)
	assert.Equal(t, common.ToHex(common.Keccak256(b)), epoch.Commitment)

	_, err = commitment("zz")
	assert.Equal(t, ct.ErrInvalidReveal, err)
}

func TestGateParam(t *testing.T) {
	p, err := gateParam(ct.GateWithdrawFees, []byte(`{"asset":"coins.bty","amount":5}`))
	require.NoError(t, err)
	assert.Equal(t, &ct.CoinflipWithdrawFees{Asset: "coins.bty", Amount: 5}, p)

	_, err = gateParam("unknown", []byte(`{}`))
	assert.Error(t, err)
	_, err = gateParam(ct.GateSetPause, []byte(`{`))
	assert.Error(t, err)
}
