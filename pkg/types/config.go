// Package types provides configuration type definitions.
package types

// AppConfig 应用程序根配置
// 只包含JSON配置文件解析所需的结构，不包含任何内部字段
// 默认值和完整配置结构在 internal/config/*/defaults.go 和 internal/config/*/config.go 中定义
//
// 🔧 零值陷阱处理说明：
// 为了区分"用户未设置"和"用户设置为零值"，字段使用指针类型：
// - nil: 表示用户未在配置文件中设置该字段，将使用系统默认值
// - &value: 表示用户明确设置了该值，即使是零值（如0、false、""）也会被采用
type AppConfig struct {
	// 日志配置 - 对应配置文件中的 log 字段
	Log *UserLogConfig `json:"log,omitempty"`

	// 转换配置 - 对应配置文件中的 convert 字段
	Convert *UserConvertConfig `json:"convert,omitempty"`
}

// UserLogConfig 用户日志配置
// 只包含JSON配置文件中实际出现的字段
type UserLogConfig struct {
	Level     *string `json:"level,omitempty"`      // 日志级别：debug, info, warn, error, fatal
	FilePath  *string `json:"file_path,omitempty"`  // 日志文件路径
	ToConsole *bool   `json:"to_console,omitempty"` // 是否输出到控制台（stderr）
}

// UserConvertConfig 用户转换配置
// 只包含JSON配置文件中实际出现的字段
type UserConvertConfig struct {
	Suffix        *string `json:"suffix,omitempty"`          // 输出文件后缀，默认 ".readable"
	Pretty        *bool   `json:"pretty,omitempty"`          // 是否美化 JSON 输出
	Pattern       *string `json:"pattern,omitempty"`         // 目录模式下的文件名过滤
	Raw           *bool   `json:"raw,omitempty"`             // stdout 模式下每行一个签名
	Selectors     *bool   `json:"selectors,omitempty"`       // 追加函数选择器/事件 topic
	Repair        *bool   `json:"repair,omitempty"`          // 解析失败时尝试修复 JSON
	Jobs          *int    `json:"jobs,omitempty"`            // 目录转换并发数
	OutputDirName *string `json:"output_dir_name,omitempty"` // 目录模式默认输出子目录名
}

// 配置辅助函数
// 这些函数帮助创建指针类型的配置值，区分"未设置"和"设置为零值"

// BoolPtr 创建bool指针，用于明确表示用户设置了该值
func BoolPtr(v bool) *bool {
	return &v
}

// IntPtr 创建int指针，用于明确表示用户设置了该值
func IntPtr(v int) *int {
	return &v
}

// StringPtr 创建string指针，用于明确表示用户设置了该值
func StringPtr(v string) *string {
	return &v
}
