// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/33cn/coinflip/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, "info")
	l := New("module", "test")
	l.Debug("hidden")
	l.Info("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "module=test")

	buf.Reset()
	SetOutput(&buf, "bogus")
	l.Warn("warn")
	l.Error("error")
	assert.NotContains(t, buf.String(), "warn")
	assert.Contains(t, buf.String(), "error")
}

func TestSetFileLog(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "coinflip.log")
	cfg := &types.Log{Loglevel: "debug", LogConsoleLevel: "crit", LogFile: file, MaxFileSize: 1}
	SetFileLog(cfg)
	New("module", "filetest").Debug("to file", "n", 7)
	require.NoError(t, Close())
	assert.NoError(t, Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Contains(t, string(data), "module=filetest")

	cfg = &types.Log{}
	SetFileLog(cfg)
	assert.Equal(t, "", cfg.Loglevel)
}
