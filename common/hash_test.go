// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeccak256(t *testing.T) {
	// keccak256("")
	assert.Equal(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", HashHex(Keccak256()))
	// keccak256("abc")
	assert.Equal(t, "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45", HashHex(Keccak256([]byte("abc"))))
	// writing in pieces is the same as writing the concatenation
	assert.Equal(t, Keccak256([]byte("abc")), Keccak256([]byte("a"), []byte("bc")))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "", ToHex(nil))
	assert.Equal(t, "0x0102", ToHex([]byte{1, 2}))

	b, err := FromHex("0x0102")
	require.Nil(t, err)
	assert.Equal(t, []byte{1, 2}, b)

	b, err = FromHex("102")
	require.Nil(t, err)
	assert.Equal(t, []byte{1, 2}, b)

	_, err = FromHex("0xzz")
	assert.NotNil(t, err)

	assert.True(t, HasHexPrefix("0xab"))
	assert.False(t, HasHexPrefix("ab"))
}

func TestInt64ToBytes(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 1, 0}, Int64ToBytes(256))
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, Int64ToBytes(-1))
}
