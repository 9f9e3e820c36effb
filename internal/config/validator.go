package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/weisyn/abi2human/pkg/types"
)

// ValidationError 配置验证错误
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("配置验证失败 [%s]: %s", e.Field, e.Message)
}

// ValidateAppConfig 验证用户配置中出现的字段
//
// 只检查显式设置的字段，未设置的字段由默认值保证有效。
// 所有问题一次性返回，便于用户一次修正。
func ValidateAppConfig(appConfig *types.AppConfig) error {
	if appConfig == nil {
		return nil
	}

	var errs []error

	if l := appConfig.Log; l != nil && l.Level != nil {
		if _, ok := types.ParseLogLevel(*l.Level); !ok {
			errs = append(errs, &ValidationError{
				Field:   "log.level",
				Message: fmt.Sprintf("未知的日志级别 %q（可选 debug, info, warn, error, fatal）", *l.Level),
			})
		}
	}

	if c := appConfig.Convert; c != nil {
		if c.Jobs != nil && *c.Jobs < 1 {
			errs = append(errs, &ValidationError{
				Field:   "convert.jobs",
				Message: fmt.Sprintf("并发数必须大于 0，实际为 %d", *c.Jobs),
			})
		}
		if c.Pattern != nil {
			if p := strings.TrimSpace(*c.Pattern); p != "" && !doublestar.ValidatePattern(p) {
				errs = append(errs, &ValidationError{
					Field:   "convert.pattern",
					Message: fmt.Sprintf("文件名模式语法错误: %q", p),
				})
			}
		}
		if c.Suffix != nil && strings.ContainsAny(*c.Suffix, `/\`) {
			errs = append(errs, &ValidationError{
				Field:   "convert.suffix",
				Message: fmt.Sprintf("后缀不能包含路径分隔符: %q", *c.Suffix),
			})
		}
		if c.OutputDirName != nil && strings.ContainsAny(*c.OutputDirName, `/\`) {
			errs = append(errs, &ValidationError{
				Field:   "convert.output_dir_name",
				Message: fmt.Sprintf("输出目录名不能包含路径分隔符: %q", *c.OutputDirName),
			})
		}
	}

	return errors.Join(errs...)
}
