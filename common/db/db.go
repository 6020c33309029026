// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db KV存储接口以及 goleveldb 文件/内存实现
package db

import (
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb/iterator"
)

// ErrNotFoundInDb key 不存在
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

// ErrDBClosed 数据库已关闭
var ErrDBClosed = errors.New("ErrDBClosed")

//const
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

// KV 执行器读写状态所需的最小接口
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
}

// KVDB 带事务和列表查询的状态数据库
type KVDB interface {
	KV
	Begin()
	Commit() error
	Rollback()
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
}

// DB 底层存储
type DB interface {
	KV
	Delete(key []byte) error
	NewBatch(sync bool) Batch
	// NewIterator 返回 prefix 下按 key 升序排列的迭代器
	NewIterator(prefix []byte) iterator.Iterator
	Close()
}

// Batch 批量写
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

//-----------------------------------------------------------------------------

//const
const (
	GoLevelDBBackendStr = "leveldb"
	MemDBBackendStr     = "memdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// NewDB 按 backend 名称创建数据库
func NewDB(name string, backend string, dir string, cache int) (DB, error) {
	creator, ok := backends[backend]
	if !ok {
		return nil, fmt.Errorf("unknown db backend %q", backend)
	}
	return creator(name, dir, cache)
}

func cloneByte(v []byte) []byte {
	if v == nil {
		return nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value
}
