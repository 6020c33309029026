// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 系统级命令以及本地执行器上下文
package commands

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/33cn/coinflip/common"
	"github.com/33cn/coinflip/common/log"
	"github.com/33cn/coinflip/executor"
	"github.com/33cn/coinflip/metrics"
	"github.com/33cn/coinflip/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ExecFunc 在打开的本地链上执行, 返回要输出的结果
type ExecFunc func(exec *executor.Executor) (interface{}, error)

// Callback 结果格式化
type Callback func(res interface{}) (interface{}, error)

// LocalCtx 打开 --conf 指定的本地链, 执行一次命令后关闭
type LocalCtx struct {
	cmd *cobra.Command
	fn  ExecFunc
	cb  Callback
}

// NewLocalCtx new
func NewLocalCtx(cmd *cobra.Command, fn ExecFunc) *LocalCtx {
	return &LocalCtx{cmd: cmd, fn: fn}
}

// SetResultCb 设置结果格式化
func (c *LocalCtx) SetResultCb(cb Callback) {
	c.cb = cb
}

// Open 按配置文件打开本地链
func Open(cmd *cobra.Command) (*executor.Executor, func(), error) {
	conf, _ := cmd.Flags().GetString("conf")
	cfg, sub, err := types.InitCfg(conf)
	if err != nil {
		return nil, nil, err
	}
	log.SetFileLog(cfg.Log)
	stop := metrics.StartMetrics(cfg.Metrics)
	exec, err := executor.New(cfg, sub)
	if err != nil {
		stop()
		return nil, nil, errors.Wrap(err, "open chain")
	}
	closer := func() {
		exec.Close()
		stop()
		log.Close()
	}
	return exec, closer, nil
}

// RunResult 执行并格式化
func (c *LocalCtx) RunResult() (interface{}, error) {
	exec, closer, err := Open(c.cmd)
	if err != nil {
		return nil, err
	}
	defer closer()
	res, err := c.fn(exec)
	if err != nil {
		return nil, err
	}
	if c.cb != nil {
		return c.cb(res)
	}
	return res, nil
}

// Run 结果以 json 输出, 出错输出到 stderr
func (c *LocalCtx) Run() {
	result, err := c.RunResult()
	if err != nil {
		fmt.Fprintln(c.cmd.ErrOrStderr(), err)
		return
	}
	PrintJSON(c.cmd, result)
}

// PrintJSON 缩进 json 输出
func PrintJSON(cmd *cobra.Command, result interface{}) {
	data, err := json.MarshalIndent(result, "", "    ")
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
}

// LogResult 收据日志, 已知类型带名称
type LogResult struct {
	Ty   int32           `json:"ty"`
	Name string          `json:"name,omitempty"`
	Log  json.RawMessage `json:"log"`
}

// TxResult 交易执行结果
type TxResult struct {
	Height    int64        `json:"height"`
	BlockTime int64        `json:"blockTime"`
	Hash      string       `json:"hash"`
	KVs       int          `json:"kvs"`
	Logs      []*LogResult `json:"logs"`
}

var r = rand.New(rand.NewSource(time.Now().UnixNano()))

// SendTx 执行一笔交易, logName 为 nil 时只输出日志类型
func SendTx(cmd *cobra.Command, build func(exec *executor.Executor) (*types.Transaction, error), logName func(ty int32) string) {
	ctx := NewLocalCtx(cmd, func(exec *executor.Executor) (interface{}, error) {
		tx, err := build(exec)
		if err != nil {
			return nil, err
		}
		if tx.Nonce == 0 {
			tx.Nonce = r.Int63()
		}
		head := exec.Head()
		receipt, err := exec.Exec(tx)
		if err != nil {
			return nil, err
		}
		res := &TxResult{Height: head.Height, BlockTime: head.BlockTime, Hash: common.ToHex(tx.Hash()), KVs: len(receipt.KV)}
		for _, l := range receipt.Logs {
			lr := &LogResult{Ty: l.Ty, Log: json.RawMessage("null")}
			if json.Valid(l.Log) {
				lr.Log = json.RawMessage(l.Log)
			}
			if logName != nil {
				lr.Name = logName(l.Ty)
			}
			if l.Ty == types.TyLogTransfer || l.Ty == types.TyLogGenesisTransfer {
				lr.Name = "LogTransfer"
			}
			res.Logs = append(res.Logs, lr)
		}
		return res, nil
	})
	ctx.Run()
}

// GetAmount 读取十进制金额参数, 例如 1.5 表示 1.5 个币
func GetAmount(cmd *cobra.Command, name string) (int64, error) {
	s, _ := cmd.Flags().GetString(name)
	amount, err := types.ParseAmount(s)
	if err != nil {
		return 0, errors.Wrapf(err, "flag %s", name)
	}
	return amount, nil
}
