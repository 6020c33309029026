// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecAddress(t *testing.T) {
	a := ExecAddress("coinflip")
	assert.Nil(t, CheckAddress(a))
	assert.Equal(t, a, ExecAddress("coinflip"))
	assert.NotEqual(t, a, ExecAddress("coins"))
	assert.Panics(t, func() { ExecAddress(strings.Repeat("x", MaxExecNameLength+1)) })
}

func TestCheckAddress(t *testing.T) {
	addr := FromSeed("alice")
	assert.Nil(t, CheckAddress(addr))
	assert.Nil(t, CheckAddress(strings.ToLower(addr)))
	// cached result is stable
	assert.Nil(t, CheckAddress(addr))

	for _, bad := range []string{"", "0x", "alice", "0x1234", strings.TrimPrefix(addr, "0x"), "0x0000000000000000000000000000000000000000"} {
		assert.Equal(t, ErrCheckAddress, CheckAddress(bad), bad)
		assert.Equal(t, ErrCheckAddress, CheckAddress(bad), bad)
	}
}

func TestNormalize(t *testing.T) {
	addr := FromSeed("bob")
	assert.Equal(t, addr, Normalize(strings.ToLower(addr)))
	assert.Equal(t, addr, Normalize("0x"+strings.ToUpper(addr[2:])))
}
