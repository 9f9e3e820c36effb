package log

import (
	"go.uber.org/zap/zapcore"
)

// 日志配置默认值
// 命令行工具的标准输出承载转换结果，日志只写 stderr 或文件
const (
	// === 基础日志配置 ===

	// defaultLogLevel 默认日志级别设为"warn"
	// 正常转换不产生日志输出，--log-level debug 可查看每个文件的处理细节
	defaultLogLevel = "warn"

	// defaultToConsole 默认输出到控制台（stderr）
	defaultToConsole = true

	// defaultFilePath 默认不写日志文件
	defaultFilePath = ""

	// === 日志轮转配置 ===

	// defaultMaxSize 单个日志文件最大大小(MB)
	defaultMaxSize = 20

	// defaultMaxBackups 最大备份文件数
	defaultMaxBackups = 3

	// defaultMaxAge 日志文件最大保留天数
	defaultMaxAge = 7

	// defaultCompress 默认压缩历史日志
	defaultCompress = true

	// === 调试配置 ===

	// defaultEnableCaller 默认不输出调用者信息
	defaultEnableCaller = false

	// defaultEnableStacktrace 默认不输出堆栈
	defaultEnableStacktrace = false
)

// 默认的日志级别映射
var defaultLevelMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
	"panic": zapcore.PanicLevel,
	"fatal": zapcore.FatalLevel,
}
