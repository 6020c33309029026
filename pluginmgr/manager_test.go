// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAddCmd(t *testing.T) {
	var inited []string
	Register(&PluginBase{
		Name:     "testplugin",
		ExecName: "testexec",
		Exec:     func(name string) { inited = append(inited, name) },
		Cmd: func() *cobra.Command {
			return &cobra.Command{Use: "testplugin"}
		},
	})
	Register(&PluginBase{Name: "nocmd", ExecName: "nocmdexec"})

	assert.True(t, HasExec("testexec"))
	assert.False(t, HasExec("unknown"))
	assert.Equal(t, []string{"nocmd", "testplugin"}, Names())

	require.Panics(t, func() { Register(&PluginBase{Name: "testplugin"}) })
	require.Panics(t, func() { Register(&PluginBase{}) })

	InitExec()
	InitExec()
	assert.Equal(t, []string{"testexec"}, inited)

	root := &cobra.Command{Use: "root"}
	AddCmd(root)
	cmds := root.Commands()
	require.Len(t, cmds, 1)
	assert.Equal(t, "testplugin", cmds[0].Name())
}
