// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	assert.Equal(t, version, GetVersion())
	GitCommit = "abc123"
	defer func() { GitCommit = "" }()
	assert.Equal(t, version+"-abc123", GetVersion())

	info := GetInfo("coinflip")
	assert.Equal(t, "coinflip", info.Title)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}
