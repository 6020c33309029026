// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"os"

	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config 节点配置
type Config struct {
	Title   string     `toml:"Title"`
	Log     *Log       `toml:"log"`
	Store   *Store     `toml:"store"`
	Chain   *Chain     `toml:"chain"`
	Metrics *Metrics   `toml:"metrics"`
	Genesis []*Genesis `toml:"genesis"`
}

// Log 日志配置
type Log struct {
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	LogFile         string `toml:"logFile"`
	MaxFileSize     uint32 `toml:"maxFileSize"`
	MaxBackups      uint32 `toml:"maxBackups"`
	MaxAge          uint32 `toml:"maxAge"`
	LocalTime       bool   `toml:"localTime"`
	Compress        bool   `toml:"compress"`
	CallerFile      bool   `toml:"callerFile"`
	CallerFunction  bool   `toml:"callerFunction"`
}

// Store 存储配置
type Store struct {
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	DbCache int32  `toml:"dbCache"`
}

// Chain 本地链参数
type Chain struct {
	Symbol        string `toml:"symbol"`
	GenesisTime   int64  `toml:"genesisTime"`
	BlockInterval int64  `toml:"blockInterval"`
}

// Metrics 指标配置
type Metrics struct {
	Enable   bool  `toml:"enable"`
	Duration int64 `toml:"duration"`
}

// Genesis 创世分配
type Genesis struct {
	Addr   string `toml:"addr"`
	Asset  string `toml:"asset"`
	Amount int64  `toml:"amount"`
}

// ConfigSubModule 子模块配置, 每个执行器一段 json
type ConfigSubModule struct {
	Store map[string][]byte
	Exec  map[string][]byte
}

// subModule 子模块结构体
type subModule struct {
	Store map[string]interface{}
	Exec  map[string]interface{}
}

// InitCfg 初始化配置
func InitCfg(path string) (*Config, *ConfigSubModule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read config %s", path)
	}
	return InitCfgString(string(data))
}

// InitCfgString 初始化配置
func InitCfgString(cfgstring string) (*Config, *ConfigSubModule, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, nil, errors.Wrap(err, "decode config")
	}
	fillDefault(&cfg)
	var sub subModule
	if _, err := tml.Decode(cfgstring, &sub); err != nil {
		return nil, nil, errors.Wrap(err, "decode sub config")
	}
	subcfg, err := parseSubModule(&sub)
	if err != nil {
		return nil, nil, err
	}
	return &cfg, subcfg, nil
}

func fillDefault(cfg *Config) {
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "leveldb"
	}
	if cfg.Store.DbPath == "" {
		cfg.Store.DbPath = "datadir"
	}
	if cfg.Chain == nil {
		cfg.Chain = &Chain{}
	}
	if cfg.Chain.Symbol == "" {
		cfg.Chain.Symbol = DefaultSymbol
	}
	if cfg.Chain.BlockInterval <= 0 {
		cfg.Chain.BlockInterval = DefaultBlockInterval
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &Metrics{}
	}
}

func parseSubModule(cfg *subModule) (*ConfigSubModule, error) {
	var subcfg ConfigSubModule
	var err error
	if subcfg.Store, err = parseItem(cfg.Store); err != nil {
		return nil, err
	}
	if subcfg.Exec, err = parseItem(cfg.Exec); err != nil {
		return nil, err
	}
	return &subcfg, nil
}

func parseItem(data map[string]interface{}) (map[string][]byte, error) {
	subconfig := make(map[string][]byte)
	sub, ok := data["sub"].(map[string]interface{})
	if !ok {
		return subconfig, nil
	}
	for k := range sub {
		b, err := json.Marshal(sub[k])
		if err != nil {
			return nil, errors.Wrapf(err, "encode sub config %s", k)
		}
		subconfig[k] = b
	}
	return subconfig, nil
}

//ModifySubConfig json data modify
func ModifySubConfig(sub []byte, key string, value interface{}) ([]byte, error) {
	data := make(map[string]interface{})
	if len(sub) > 0 {
		if err := json.Unmarshal(sub, &data); err != nil {
			return nil, err
		}
	}
	data[key] = value
	return json.Marshal(data)
}
