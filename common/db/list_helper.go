// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"

	"github.com/33cn/coinflip/common/log"
	"github.com/syndtr/goleveldb/leveldb/iterator"
)

var listlog = log.New("module", "db.ListHelper")

// ListHelper 在多个 DB 上做合并列表，排在前面的 DB 覆盖后面的，空值表示已删除
type ListHelper struct {
	dbs []DB
}

//NewListHelper new
func NewListHelper(dbs ...DB) *ListHelper {
	return &ListHelper{dbs: dbs}
}

// mergedIter 按 key 顺序归并多个迭代器, 同一个 key 只取排在最前的 DB 的值
type mergedIter struct {
	its   []iterator.Iterator
	valid []bool
	asc   bool
}

func newMergedIter(dbs []DB, prefix, key []byte, direction int32) *mergedIter {
	m := &mergedIter{
		its:   make([]iterator.Iterator, len(dbs)),
		valid: make([]bool, len(dbs)),
		asc:   direction == ListASC,
	}
	for i, d := range dbs {
		it := d.NewIterator(prefix)
		m.its[i] = it
		m.valid[i] = seekIter(it, key, m.asc)
	}
	return m
}

// seekIter ASC 定位到第一个 > key 的位置, DESC 定位到最后一个 < key 的位置
func seekIter(it iterator.Iterator, key []byte, asc bool) bool {
	if len(key) == 0 {
		if asc {
			return it.First()
		}
		return it.Last()
	}
	if asc {
		if !it.Seek(key) {
			return false
		}
		if bytes.Equal(it.Key(), key) {
			return it.Next()
		}
		return true
	}
	if !it.Seek(key) {
		return it.Last()
	}
	return it.Prev()
}

// next 返回下一个 key 及其值, 没有更多时 ok 为 false
func (m *mergedIter) next() (key, value []byte, ok bool) {
	pick := -1
	for i, it := range m.its {
		if !m.valid[i] {
			continue
		}
		if pick < 0 {
			pick = i
			continue
		}
		c := bytes.Compare(it.Key(), m.its[pick].Key())
		if (m.asc && c < 0) || (!m.asc && c > 0) {
			pick = i
		}
	}
	if pick < 0 {
		return nil, nil, false
	}
	key = cloneByte(m.its[pick].Key())
	value = cloneByte(m.its[pick].Value())
	for i, it := range m.its {
		if m.valid[i] && bytes.Equal(it.Key(), key) {
			if m.asc {
				m.valid[i] = it.Next()
			} else {
				m.valid[i] = it.Prev()
			}
		}
	}
	return key, value, true
}

func (m *mergedIter) release() error {
	var err error
	for _, it := range m.its {
		it.Release()
		if e := it.Error(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

//List 列表: key 为空时从头(ASC)或尾(DESC)开始, 否则从 key 之后(不含)开始; count <= 0 表示全部
func (db *ListHelper) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	m := newMergedIter(db.dbs, prefix, key, direction)
	var values [][]byte
	for count <= 0 || int32(len(values)) < count {
		_, value, ok := m.next()
		if !ok {
			break
		}
		if isdeleted(value) {
			continue
		}
		values = append(values, value)
	}
	if err := m.release(); err != nil {
		listlog.Error("List", "error", err)
		return nil, err
	}
	return values, nil
}

//PrefixCount 前缀数量
func (db *ListHelper) PrefixCount(prefix []byte) (int64, error) {
	m := newMergedIter(db.dbs, prefix, nil, ListASC)
	var n int64
	for {
		_, value, ok := m.next()
		if !ok {
			break
		}
		if !isdeleted(value) {
			n++
		}
	}
	if err := m.release(); err != nil {
		listlog.Error("PrefixCount", "error", err)
		return 0, err
	}
	return n, nil
}
