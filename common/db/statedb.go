// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"sync"
)

// StateDB 在底层存储之上提供内存事务：Begin 之后的写入全部进入 txcache，
// Commit 时以一个 batch 写入 maindb，Rollback 直接丢弃
type StateDB struct {
	txcache *GoMemDB
	maindb  DB
	intx    bool
	mu      sync.RWMutex
}

func newMemDB() *GoMemDB {
	memdb, err := NewGoMemDB("", "", 0)
	if err != nil {
		panic(err)
	}
	return memdb
}

// NewStateDB new state db
func NewStateDB(maindb DB) *StateDB {
	return &StateDB{maindb: maindb}
}

// Get get value
func (l *StateDB) Get(key []byte) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.intx && l.txcache != nil {
		if value, err := l.txcache.Get(key); err == nil {
			if isdeleted(value) {
				//表示已经删除了
				return nil, ErrNotFoundInDb
			}
			return value, nil
		}
	}
	return l.maindb.Get(key)
}

// Set set key value, value == nil 表示删除
func (l *StateDB) Set(key []byte, value []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.intx {
		if l.txcache == nil {
			l.txcache = newMemDB()
		}
		if value == nil {
			value = []byte{}
		}
		return l.txcache.Set(key, value)
	}
	if isdeleted(value) {
		return l.maindb.Delete(key)
	}
	return l.maindb.Set(key, value)
}

// List 合并 txcache 与 maindb 后按 key 顺序分页
func (l *StateDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	dblist := make([]DB, 0, 2)
	if l.intx && l.txcache != nil {
		dblist = append(dblist, l.txcache)
	}
	dblist = append(dblist, l.maindb)
	it := NewListHelper(dblist...)
	return it.List(prefix, key, count, direction)
}

// PrefixCount 前缀下的 key 数量
func (l *StateDB) PrefixCount(prefix []byte) (int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	dblist := make([]DB, 0, 2)
	if l.intx && l.txcache != nil {
		dblist = append(dblist, l.txcache)
	}
	dblist = append(dblist, l.maindb)
	return NewListHelper(dblist...).PrefixCount(prefix)
}

//Begin 开启内存事务处理
func (l *StateDB) Begin() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.intx = true
	l.txcache = nil
}

// Rollback reset tx
func (l *StateDB) Rollback() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resetTx()
}

// Commit 将 txcache 写入 maindb
func (l *StateDB) Commit() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.txcache == nil {
		l.resetTx()
		return nil
	}
	batch := l.maindb.NewBatch(true)
	it := l.txcache.NewIterator(nil)
	for it.Next() {
		if isdeleted(it.Value()) {
			batch.Delete(cloneByte(it.Key()))
			continue
		}
		batch.Set(cloneByte(it.Key()), cloneByte(it.Value()))
	}
	it.Release()
	if err := it.Error(); err != nil {
		l.resetTx()
		return err
	}
	err := batch.Write()
	l.resetTx()
	return err
}

// InTx 是否处于事务中
func (l *StateDB) InTx() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.intx
}

func (l *StateDB) resetTx() {
	l.intx = false
	l.txcache = nil
}

func isdeleted(d []byte) bool {
	return len(d) == 0
}
