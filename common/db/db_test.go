// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackends(t *testing.T) map[string]DB {
	mem, err := NewDB("test", MemDBBackendStr, "", 0)
	require.Nil(t, err)
	level, err := NewDB("test", GoLevelDBBackendStr, t.TempDir(), 16)
	require.Nil(t, err)
	t.Cleanup(level.Close)
	return map[string]DB{"memdb": mem, "leveldb": level}
}

func TestBackendGetSetDelete(t *testing.T) {
	for name, d := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := d.Get([]byte("k1"))
			assert.Equal(t, ErrNotFoundInDb, err)

			require.Nil(t, d.Set([]byte("k1"), []byte("v1")))
			v, err := d.Get([]byte("k1"))
			require.Nil(t, err)
			assert.Equal(t, []byte("v1"), v)

			require.Nil(t, d.Delete([]byte("k1")))
			_, err = d.Get([]byte("k1"))
			assert.Equal(t, ErrNotFoundInDb, err)
			// delete of missing key is not an error
			assert.Nil(t, d.Delete([]byte("k1")))
		})
	}
}

func TestBackendBatchAndIterator(t *testing.T) {
	for name, d := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.Nil(t, d.Set([]byte("other"), []byte("x")))
			batch := d.NewBatch(true)
			for i := 3; i > 0; i-- {
				batch.Set([]byte(fmt.Sprintf("key%d", i)), []byte(fmt.Sprintf("value%d", i)))
			}
			batch.Delete([]byte("other"))
			assert.True(t, batch.ValueSize() > 0)
			require.Nil(t, batch.Write())

			it := d.NewIterator([]byte("key"))
			var keys []string
			for it.Next() {
				keys = append(keys, string(it.Key()))
			}
			it.Release()
			require.Nil(t, it.Error())
			assert.Equal(t, []string{"key1", "key2", "key3"}, keys)

			_, err := d.Get([]byte("other"))
			assert.Equal(t, ErrNotFoundInDb, err)
		})
	}
}

func TestUnknownBackend(t *testing.T) {
	_, err := NewDB("test", "nosuchdb", "", 0)
	assert.NotNil(t, err)
}

func TestGoLevelDBReopen(t *testing.T) {
	dir := t.TempDir()
	d, err := NewGoLevelDB("state", dir, 16)
	require.Nil(t, err)
	require.Nil(t, d.Set([]byte("persist"), []byte("yes")))
	d.Close()

	d, err = NewGoLevelDB("state", dir, 16)
	require.Nil(t, err)
	defer d.Close()
	v, err := d.Get([]byte("persist"))
	require.Nil(t, err)
	assert.Equal(t, []byte("yes"), v)
}
