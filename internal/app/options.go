package app

import (
	"github.com/weisyn/abi2human/pkg/interfaces/config"
	"github.com/weisyn/abi2human/pkg/types"
)

// Option 应用程序选项函数类型
type Option func(*options)

// options 应用程序选项
// 实现config.AppOptions接口
type options struct {
	// 用户配置（配置文件、环境变量与命令行参数合并后的结果）
	appConfig *types.AppConfig
}

// 编译时校验options是否实现了config.AppOptions接口
var _ config.AppOptions = (*options)(nil)

// newOptions 创建默认选项
func newOptions() *options {
	return &options{
		appConfig: &types.AppConfig{},
	}
}

// WithAppConfig 设置完整的用户配置
func WithAppConfig(appConfig *types.AppConfig) Option {
	return func(o *options) {
		if appConfig != nil {
			o.appConfig = appConfig
		}
	}
}

// WithLog 设置日志配置
func WithLog(userLogConfig *types.UserLogConfig) Option {
	return func(o *options) {
		o.appConfig.Log = userLogConfig
	}
}

// WithConvert 设置转换配置
func WithConvert(userConvertConfig *types.UserConvertConfig) Option {
	return func(o *options) {
		o.appConfig.Convert = userConvertConfig
	}
}

// GetAppConfig 获取应用配置
func (o *options) GetAppConfig() *types.AppConfig {
	return o.appConfig
}
