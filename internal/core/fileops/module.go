package fileops

import (
	convertconfig "github.com/weisyn/abi2human/internal/config/convert"
	logimpl "github.com/weisyn/abi2human/internal/core/infrastructure/log"
	"github.com/weisyn/abi2human/pkg/interfaces/infrastructure/log"
	"go.uber.org/fx"
)

// ModuleParams 定义文件转换模块的依赖参数
type ModuleParams struct {
	fx.In

	Logger  log.Logger
	Options *convertconfig.ConvertOptions `optional:"true"`
}

// Module 返回文件转换模块
func Module() fx.Option {
	return fx.Module("fileops",
		fx.Provide(ProvideService),
	)
}

// ProvideService 提供文件转换服务
func ProvideService(params ModuleParams) *Service {
	return New(logimpl.NewModuleLogger(params.Logger, "fileops"), params.Options)
}
