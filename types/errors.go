// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	// ErrNotFound 数据不存在
	ErrNotFound = errors.New("ErrNotFound")
	// ErrInvalidParam 参数错误
	ErrInvalidParam = errors.New("ErrInvalidParam")
	// ErrAmount 金额错误
	ErrAmount = errors.New("ErrAmount")
	// ErrNoBalance 余额不足
	ErrNoBalance = errors.New("ErrNoBalance")
	// ErrSendSameToRecv 转给自己
	ErrSendSameToRecv = errors.New("ErrSendSameToRecv")
	// ErrActionNotSupport 不支持的 action
	ErrActionNotSupport = errors.New("ErrActionNotSupport")
	// ErrExecNameNotAllow 执行器不存在
	ErrExecNameNotAllow = errors.New("ErrExecNameNotAllow")
	// ErrQueryNotSupport 不支持的查询
	ErrQueryNotSupport = errors.New("ErrQueryNotSupport")
	// ErrAssetNotSupport 资产没有注册
	ErrAssetNotSupport = errors.New("ErrAssetNotSupport")
	// ErrAssetFormat 资产格式错误
	ErrAssetFormat = errors.New("ErrAssetFormat")
	// ErrDecode 解码失败
	ErrDecode = errors.New("ErrDecode")
	// ErrTxValue 交易附带金额错误
	ErrTxValue = errors.New("ErrTxValue")
	// ErrMethodReturnType 方法返回值不符合约定
	ErrMethodReturnType = errors.New("ErrMethodReturnType")
	// ErrExecPanic 执行器内部异常
	ErrExecPanic = errors.New("ErrExecPanic")
	// ErrUnRegistedDriver 执行器未注册
	ErrUnRegistedDriver = errors.New("ErrUnRegistedDriver")
)
