// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package version 版本信息, 发布时通过 -ldflags 注入 GitCommit
package version

import (
	"fmt"
	"runtime"
)

const version = "0.1.0"

// GitCommit set by build flags
var GitCommit string

// GetVersion 获取版本号
func GetVersion() string {
	if GitCommit != "" {
		return version + "-" + GitCommit
	}
	return version
}

// Info 版本信息
type Info struct {
	Title     string `json:"title"`
	App       string `json:"app"`
	GoVersion string `json:"goVersion"`
	OSArch    string `json:"osArch"`
}

// GetInfo 版本以及运行环境
func GetInfo(title string) *Info {
	return &Info{
		Title:     title,
		App:       GetVersion(),
		GoVersion: runtime.Version(),
		OSArch:    fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
