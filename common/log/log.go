// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log 日志相关接口以及函数
package log

import (
	"io"
	"os"
	"sync"

	"github.com/33cn/coinflip/types"
	log15 "github.com/ethereum/go-ethereum/log"
	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu             sync.Mutex
	fileHandler    log15.Handler
	consoleHandler log15.Handler
	rotateLogger   *lumberjack.Logger
)

func init() {
	// quiet until a config says otherwise
	log15.Root().SetHandler(log15.LvlFilterHandler(log15.LvlError, log15.StreamHandler(os.Stderr, log15.LogfmtFormat())))
}

//SetLogLevel 设置控制台日志输出级别
func SetLogLevel(logLevel string) {
	mu.Lock()
	defer mu.Unlock()
	consoleHandler = nil
	log15.Root().SetHandler(getConsoleLogHandler(logLevel, os.Stdout))
}

//SetFileLog 设置文件日志和控制台日志信息
func SetFileLog(log *types.Log) {
	if log == nil {
		log = &types.Log{LogFile: "logs/coinflip.log"}
	}
	if log.LogFile == "" {
		SetLogLevel(log.LogConsoleLevel)
		return
	}
	mu.Lock()
	defer mu.Unlock()
	resetLog(log)
}

// SetOutput routes all records at or above logLevel to w, mostly for tests
func SetOutput(w io.Writer, logLevel string) {
	mu.Lock()
	defer mu.Unlock()
	log15.Root().SetHandler(log15.LvlFilterHandler(getLevel(logLevel), log15.StreamHandler(w, log15.LogfmtFormat())))
}

// Close flushes and closes the rotated log file if one is open
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if rotateLogger == nil {
		return nil
	}
	err := rotateLogger.Close()
	rotateLogger = nil
	fileHandler = nil
	return err
}

func resetLog(log *types.Log) {
	fillDefaultValue(log)
	consoleHandler = nil
	fileHandler = nil
	log15.Root().SetHandler(log15.MultiHandler(getConsoleLogHandler(log.LogConsoleLevel, os.Stdout), getFileLogHandler(log)))
}

// 默认error级别，防止打印太多日志
func fillDefaultValue(log *types.Log) {
	if log.Loglevel == "" {
		log.Loglevel = log15.LvlError.String()
	}
	if log.LogConsoleLevel == "" {
		log.LogConsoleLevel = log15.LvlError.String()
	}
}

func getConsoleLogHandler(logLevel string, out *os.File) log15.Handler {
	if consoleHandler != nil {
		return consoleHandler
	}
	usecolor := isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
	var w io.Writer = out
	if usecolor {
		w = colorable.NewColorable(out)
	}
	consoleHandler = log15.LvlFilterHandler(
		getLevel(logLevel),
		log15.StreamHandler(w, log15.TerminalFormat(usecolor)),
	)
	return consoleHandler
}

func getFileLogHandler(log *types.Log) log15.Handler {
	if fileHandler != nil {
		return fileHandler
	}
	rotateLogger = &lumberjack.Logger{
		Filename:   log.LogFile,
		MaxSize:    int(log.MaxFileSize),
		MaxBackups: int(log.MaxBackups),
		MaxAge:     int(log.MaxAge),
		LocalTime:  log.LocalTime,
		Compress:   log.Compress,
	}
	fileh := log15.LvlFilterHandler(
		getLevel(log.Loglevel),
		log15.StreamHandler(rotateLogger, log15.LogfmtFormat()),
	)
	if log.CallerFile {
		fileh = log15.CallerFileHandler(fileh)
	}
	if log.CallerFunction {
		fileh = log15.CallerFuncHandler(fileh)
	}
	fileHandler = fileh
	return fileh
}

func getLevel(lvlString string) log15.Lvl {
	lvl, err := log15.LvlFromString(lvlString)
	if err != nil {
		// 日志级别配置不正确时默认为error级别
		return log15.LvlError
	}
	return lvl
}

//New new
func New(ctx ...interface{}) log15.Logger {
	return log15.Root().New(ctx...)
}
