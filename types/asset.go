// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"regexp"
	"strings"
)

var symbolRe = regexp.MustCompile(`^[a-z0-9]{1,16}$`)

// Asset 资产, 由发行执行器和符号确定
type Asset struct {
	Exec   string `json:"exec"`
	Symbol string `json:"symbol"`
}

// NativeAsset 原生币
func NativeAsset(symbol string) Asset {
	return Asset{Exec: NativeExec, Symbol: symbol}
}

// ParseAsset 解析 exec.symbol 格式
func ParseAsset(s string) (Asset, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return Asset{}, ErrAssetFormat
	}
	a := Asset{Exec: parts[0], Symbol: strings.ToLower(parts[1])}
	if err := a.Check(); err != nil {
		return Asset{}, err
	}
	return a, nil
}

// Check 检查资产格式
func (a Asset) Check() error {
	if a.Exec != NativeExec && a.Exec != TokenExec {
		return ErrAssetFormat
	}
	if !symbolRe.MatchString(a.Symbol) {
		return ErrAssetFormat
	}
	return nil
}

// IsNative 是否为原生币
func (a Asset) IsNative() bool {
	return a.Exec == NativeExec
}

func (a Asset) String() string {
	return a.Exec + "." + a.Symbol
}
