// Package config provides configuration provider interfaces.
package config

import (
	convertconfig "github.com/weisyn/abi2human/internal/config/convert"
	logconfig "github.com/weisyn/abi2human/internal/config/log"
	"github.com/weisyn/abi2human/pkg/types"
)

// Provider 配置提供者接口
type Provider interface {
	// GetAppConfig 获取原始用户配置
	GetAppConfig() *types.AppConfig

	// GetLog 获取日志配置
	GetLog() *logconfig.LogOptions

	// GetConvert 获取转换配置
	GetConvert() *convertconfig.ConvertOptions
}
