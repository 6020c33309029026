// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"reflect"

	"github.com/pkg/errors"
)

// Message 查询结果
type Message interface{}

// ExecutorAction 执行器 payload 需要实现
type ExecutorAction interface {
	GetTy() int32
}

// ExecutorType 描述执行器的 payload 格式
type ExecutorType interface {
	GetName() string
	// GetPayload 返回一个新的空 action 指针
	GetPayload() ExecutorAction
	// GetTypeMap action 名称 -> ty, 名称同时是 action 结构中对应字段名
	GetTypeMap() map[string]int32
	DecodePayload(tx *Transaction) (ExecutorAction, error)
	DecodePayloadValue(tx *Transaction) (string, reflect.Value, error)
	ActionName(tx *Transaction) string
	CreateTx(action string, param interface{}) (*Transaction, error)
}

// ExecTypeBase ExecutorType 的公共实现
type ExecTypeBase struct {
	child   ExecutorType
	nameMap map[int32]string
}

// SetChild 设置子类
func (base *ExecTypeBase) SetChild(child ExecutorType) {
	base.child = child
	base.nameMap = make(map[int32]string)
	for name, ty := range child.GetTypeMap() {
		base.nameMap[ty] = name
	}
}

// DecodePayload 解码 payload
func (base *ExecTypeBase) DecodePayload(tx *Transaction) (ExecutorAction, error) {
	payload := base.child.GetPayload()
	if err := json.Unmarshal(tx.Payload, payload); err != nil {
		return nil, errors.Wrap(ErrDecode, err.Error())
	}
	return payload, nil
}

// DecodePayloadValue 解码 payload 并取出 ty 对应的字段
func (base *ExecTypeBase) DecodePayloadValue(tx *Transaction) (string, reflect.Value, error) {
	action, err := base.DecodePayload(tx)
	if err != nil {
		return "", nilValue, err
	}
	name, ok := base.nameMap[action.GetTy()]
	if !ok {
		return "", nilValue, ErrActionNotSupport
	}
	field := reflect.ValueOf(action).Elem().FieldByName(name)
	if !field.IsValid() || IsNilVal(field) {
		return "", nilValue, ErrActionNotSupport
	}
	return name, field, nil
}

// ActionName 交易的 action 名称
func (base *ExecTypeBase) ActionName(tx *Transaction) string {
	action, err := base.DecodePayload(tx)
	if err != nil {
		return "unknown"
	}
	if name, ok := base.nameMap[action.GetTy()]; ok {
		return name
	}
	return "unknown"
}

// CreateTx 构造交易 payload, param 为 action 对应字段的值
func (base *ExecTypeBase) CreateTx(action string, param interface{}) (*Transaction, error) {
	ty, ok := base.child.GetTypeMap()[action]
	if !ok {
		return nil, ErrActionNotSupport
	}
	payload := base.child.GetPayload()
	v := reflect.ValueOf(payload).Elem()
	v.FieldByName("Ty").SetInt(int64(ty))
	field := v.FieldByName(action)
	if !field.IsValid() || !reflect.ValueOf(param).Type().AssignableTo(field.Type()) {
		return nil, ErrInvalidParam
	}
	field.Set(reflect.ValueOf(param))
	return &Transaction{Execer: base.child.GetName(), Payload: Encode(payload)}, nil
}

var nilValue = reflect.ValueOf(nil)
