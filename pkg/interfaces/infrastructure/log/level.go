// Package log 定义日志级别与日志记录器接口
//
// 📊 **日志级别**
// - Level：日志级别类型，实际定义位于 pkg/types
// - 级别常量：Debug、Info、Warn、Error、Fatal
package log

import "github.com/weisyn/abi2human/pkg/types"

// 兼容别名（定义位于 pkg/types）
type LogLevel = types.LogLevel

// 常量别名
const (
	DebugLevel = types.DebugLevel
	InfoLevel  = types.InfoLevel
	WarnLevel  = types.WarnLevel
	ErrorLevel = types.ErrorLevel
	FatalLevel = types.FatalLevel
)
