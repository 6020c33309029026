// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/shopspring/decimal"
)

const coinPrecision = 8

// FormatAmount 将最小单位金额格式化为币, 如 196000000 -> "1.96"
func FormatAmount(amount int64) string {
	return decimal.New(amount, -coinPrecision).String()
}

// ParseAmount 将币数量字符串转为最小单位, 超过 8 位小数报错
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrAmount
	}
	v := d.Shift(coinPrecision)
	if !v.Equal(v.Truncate(0)) {
		return 0, ErrAmount
	}
	if v.IsNegative() || v.GreaterThanOrEqual(decimal.New(MaxCoin, 0)) {
		return 0, ErrAmount
	}
	return v.IntPart(), nil
}
