// Package app 通过 fx 组装配置、日志与文件转换服务
package app

import (
	"fmt"

	internalconfig "github.com/weisyn/abi2human/internal/config"
	"github.com/weisyn/abi2human/internal/core/fileops"
	logimpl "github.com/weisyn/abi2human/internal/core/infrastructure/log"
	"github.com/weisyn/abi2human/pkg/interfaces/config"
	"github.com/weisyn/abi2human/pkg/interfaces/infrastructure/log"
	"go.uber.org/fx"
)

// App 组装完成的应用
//
// 命令行工具是一次性运行的进程，没有需要启动或停止的长驻组件，
// 因此这里只构建依赖图，不调用 fx.App.Start。
type App struct {
	Provider config.Provider
	Logger   log.Logger
	Service  *fileops.Service
}

// New 按选项构建应用
func New(opts ...Option) (*App, error) {
	o := newOptions()
	for _, opt := range opts {
		opt(o)
	}

	var a App
	fxApp := fx.New(
		fx.NopLogger,
		// 提供应用配置选项，供config模块使用
		fx.Provide(func() config.AppOptions { return o }),
		internalconfig.Module(),
		logimpl.Module(),
		fileops.Module(),
		fx.Populate(&a.Provider, &a.Logger, &a.Service),
	)
	if err := fxApp.Err(); err != nil {
		return nil, fmt.Errorf("初始化应用失败: %w", err)
	}
	return &a, nil
}

// Close 刷新日志缓冲
func (a *App) Close() {
	// stderr 不支持 fsync，忽略同步错误
	_ = a.Logger.Sync()
}
