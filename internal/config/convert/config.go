// Package convert 提供 ABI 转换相关的配置
package convert

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/weisyn/abi2human/pkg/types"
)

// ConvertOptions 转换配置选项
type ConvertOptions struct {
	Suffix        string `json:"suffix"`          // 输出文件后缀
	Pretty        bool   `json:"pretty"`          // 是否美化 JSON 输出
	Pattern       string `json:"pattern"`         // 目录模式下的文件名匹配模式
	Raw           bool   `json:"raw"`             // stdout 模式每行一个签名
	Selectors     bool   `json:"selectors"`       // 追加函数选择器/事件 topic
	Repair        bool   `json:"repair"`          // 解析失败时尝试修复 JSON
	Jobs          int    `json:"jobs"`            // 目录转换并发数
	OutputDirName string `json:"output_dir_name"` // 目录模式默认输出子目录名
}

// Config 转换配置实现
type Config struct {
	options *ConvertOptions
}

// New 创建转换配置，用户配置中出现的字段覆盖默认值
func New(userConfig *types.UserConvertConfig) *Config {
	options := createDefaultConvertOptions()
	if userConfig != nil {
		applyUserConvertConfig(options, userConfig)
	}
	return &Config{options: options}
}

// createDefaultConvertOptions 创建默认转换配置
func createDefaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Suffix:        defaultSuffix,
		Pretty:        defaultPretty,
		Pattern:       defaultPattern,
		Jobs:          defaultJobs(),
		OutputDirName: defaultOutputDirName,
	}
}

// applyUserConvertConfig 应用用户转换配置
func applyUserConvertConfig(options *ConvertOptions, c *types.UserConvertConfig) {
	if c.Suffix != nil {
		options.Suffix = *c.Suffix
	}
	if c.Pretty != nil {
		options.Pretty = *c.Pretty
	}
	if c.Pattern != nil {
		options.Pattern = strings.TrimSpace(*c.Pattern)
	}
	if c.Raw != nil {
		options.Raw = *c.Raw
	}
	if c.Selectors != nil {
		options.Selectors = *c.Selectors
	}
	if c.Repair != nil {
		options.Repair = *c.Repair
	}
	// 非正数的并发数没有意义，保留默认值
	if c.Jobs != nil && *c.Jobs > 0 {
		options.Jobs = *c.Jobs
	}
	if c.OutputDirName != nil && *c.OutputDirName != "" {
		options.OutputDirName = *c.OutputDirName
	}
}

// GetOptions 获取完整的转换配置选项
func (c *Config) GetOptions() *ConvertOptions {
	return c.options
}

// Validate 校验配置，目前只检查文件名模式的语法
func (o *ConvertOptions) Validate() error {
	if o.Pattern != "" && !doublestar.ValidatePattern(o.Pattern) {
		return &InvalidPatternError{Pattern: o.Pattern}
	}
	return nil
}

// MatchName 判断文件名是否满足模式，未设置模式时全部匹配
func (o *ConvertOptions) MatchName(name string) bool {
	if o.Pattern == "" {
		return true
	}
	matched, err := doublestar.Match(o.Pattern, name)
	return err == nil && matched
}

// InvalidPatternError 文件名模式语法错误
type InvalidPatternError struct {
	Pattern string
}

func (e *InvalidPatternError) Error() string {
	return "invalid file pattern: " + e.Pattern
}
