package config

import (
	"github.com/weisyn/abi2human/internal/config/convert"
	"github.com/weisyn/abi2human/internal/config/log"
	"github.com/weisyn/abi2human/pkg/interfaces/config"
	"github.com/weisyn/abi2human/pkg/types"
)

// Provider 实现配置提供者接口
type Provider struct {
	appConfig *types.AppConfig
}

// NewProvider 创建配置提供者
func NewProvider(appConfig *types.AppConfig) config.Provider {
	if appConfig == nil {
		appConfig = &types.AppConfig{}
	}
	return &Provider{
		appConfig: appConfig,
	}
}

// GetAppConfig 获取原始用户配置
func (p *Provider) GetAppConfig() *types.AppConfig {
	return p.appConfig
}

// GetLog 获取日志配置
func (p *Provider) GetLog() *log.LogOptions {
	// log.New会处理默认值应用和用户配置覆盖
	return log.New(p.appConfig.Log).GetOptions()
}

// GetConvert 获取转换配置
func (p *Provider) GetConvert() *convert.ConvertOptions {
	return convert.New(p.appConfig.Convert).GetOptions()
}
