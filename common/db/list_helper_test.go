// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb/iterator"
)

// stepDB 统计迭代器的移动次数
type stepDB struct {
	DB
	steps *int
}

func (d *stepDB) NewIterator(prefix []byte) iterator.Iterator {
	return &stepIter{Iterator: d.DB.NewIterator(prefix), steps: d.steps}
}

type stepIter struct {
	iterator.Iterator
	steps *int
}

func (it *stepIter) First() bool { *it.steps++; return it.Iterator.First() }
func (it *stepIter) Last() bool { *it.steps++; return it.Iterator.Last() }
func (it *stepIter) Seek(key []byte) bool { *it.steps++; return it.Iterator.Seek(key) }
func (it *stepIter) Next() bool { *it.steps++; return it.Iterator.Next() }
func (it *stepIter) Prev() bool { *it.steps++; return it.Iterator.Prev() }

func gkey(i int) []byte {
	return []byte(fmt.Sprintf("g:%08d", i))
}

func TestListHelperSteps(t *testing.T) {
	steps := 0
	main := newMemDB()
	cache := newMemDB()
	for i := 0; i < 10000; i++ {
		require.Nil(t, main.Set(gkey(i), gkey(i)))
	}
	l := NewListHelper(&stepDB{DB: cache, steps: &steps}, &stepDB{DB: main, steps: &steps})

	page, err := l.List([]byte("g:"), nil, 1, ListASC)
	require.Nil(t, err)
	assert.Equal(t, [][]byte{gkey(0)}, page)
	assert.True(t, steps <= 4, "steps %d", steps)

	steps = 0
	page, err = l.List([]byte("g:"), gkey(5000), 2, ListDESC)
	require.Nil(t, err)
	assert.Equal(t, [][]byte{gkey(4999), gkey(4998)}, page)
	assert.True(t, steps <= 8, "steps %d", steps)

	steps = 0
	page, err = l.List([]byte("g:"), gkey(9998), 10, ListASC)
	require.Nil(t, err)
	assert.Equal(t, [][]byte{gkey(9999)}, page)
	assert.True(t, steps <= 8, "steps %d", steps)
}

func TestListHelperOverlay(t *testing.T) {
	main := newMemDB()
	cache := newMemDB()
	for i := 0; i < 6; i++ {
		require.Nil(t, main.Set(gkey(i), gkey(i)))
	}
	// cache 覆盖 1, 删除 2, 新增 7
	require.Nil(t, cache.Set(gkey(1), []byte("new")))
	require.Nil(t, cache.Set(gkey(2), []byte{}))
	require.Nil(t, cache.Set(gkey(7), gkey(7)))
	l := NewListHelper(cache, main)

	page, err := l.List([]byte("g:"), nil, 0, ListASC)
	require.Nil(t, err)
	assert.Equal(t, [][]byte{gkey(0), []byte("new"), gkey(3), gkey(4), gkey(5), gkey(7)}, page)

	page, err = l.List([]byte("g:"), gkey(4), 3, ListDESC)
	require.Nil(t, err)
	assert.Equal(t, [][]byte{gkey(3), []byte("new"), gkey(0)}, page)

	page, err = l.List([]byte("g:"), gkey(1), 2, ListASC)
	require.Nil(t, err)
	assert.Equal(t, [][]byte{gkey(3), gkey(4)}, page)

	n, err := l.PrefixCount([]byte("g:"))
	require.Nil(t, err)
	assert.Equal(t, int64(6), n)
}
