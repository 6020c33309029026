// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 执行统计, 基于 go-metrics 默认注册表
package metrics

import (
	"sync"
	"time"

	"github.com/33cn/coinflip/common/log"
	"github.com/33cn/coinflip/types"
	go_metrics "github.com/rcrowley/go-metrics"
)

var mlog = log.New("module", "metrics")

// Counter 取或注册计数器
func Counter(name string) go_metrics.Counter {
	return go_metrics.GetOrRegisterCounter(name, go_metrics.DefaultRegistry)
}

// Timer 取或注册计时器
func Timer(name string) go_metrics.Timer {
	return go_metrics.GetOrRegisterTimer(name, go_metrics.DefaultRegistry)
}

// Snapshot 当前所有计数器和计时器的次数
func Snapshot() map[string]int64 {
	snap := make(map[string]int64)
	go_metrics.DefaultRegistry.Each(func(name string, i interface{}) {
		switch m := i.(type) {
		case go_metrics.Counter:
			snap[name] = m.Count()
		case go_metrics.Timer:
			snap[name] = m.Count()
		}
	})
	return snap
}

// StartMetrics 根据配置定期把统计写入日志, 返回停止函数
func StartMetrics(cfg *types.Metrics) (stop func()) {
	if cfg == nil || !cfg.Enable {
		mlog.Info("Metrics data is not enabled to emit")
		return func() {}
	}
	d := time.Duration(cfg.Duration) * time.Second
	if d <= 0 {
		d = time.Minute
	}
	done := make(chan struct{})
	var once sync.Once
	go func() {
		ticker := time.NewTicker(d)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				emit()
			case <-done:
				return
			}
		}
	}()
	return func() { once.Do(func() { close(done) }) }
}

func emit() {
	go_metrics.DefaultRegistry.Each(func(name string, i interface{}) {
		switch m := i.(type) {
		case go_metrics.Counter:
			mlog.Info("counter", "name", name, "count", m.Count())
		case go_metrics.Timer:
			t := m.Snapshot()
			mlog.Info("timer", "name", name, "count", t.Count(), "mean", time.Duration(t.Mean()), "p99", time.Duration(t.Percentile(0.99)))
		}
	})
}
