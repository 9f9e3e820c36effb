// Package output 将签名列表写到数据输出（stdout）
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/weisyn/abi2human/internal/core/abi/converter"
)

// Format 输出格式
type Format string

const (
	// FormatJSON 紧凑 JSON 数组，结尾不换行
	FormatJSON Format = "json"
	// FormatPretty 两空格缩进的 JSON 数组，结尾换行
	FormatPretty Format = "pretty"
	// FormatText 每行一个签名，不带 JSON 包装
	FormatText Format = "text"
)

// FormatFor 根据 raw/pretty 选项选择输出格式，raw 优先
func FormatFor(raw, pretty bool) Format {
	switch {
	case raw:
		return FormatText
	case pretty:
		return FormatPretty
	default:
		return FormatJSON
	}
}

// Formatter 输出格式化器
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter 创建格式化器，writer 为 nil 时写 stdout
func NewFormatter(format Format, writer io.Writer) *Formatter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Formatter{
		format: format,
		writer: writer,
	}
}

// Format 返回当前输出格式
func (f *Formatter) Format() Format {
	return f.format
}

// Print 按格式写出签名列表
func (f *Formatter) Print(items []string) error {
	var text string
	switch f.format {
	case FormatText:
		var sb strings.Builder
		for _, item := range items {
			sb.WriteString(item)
			sb.WriteByte('\n')
		}
		text = sb.String()
	case FormatPretty:
		text = converter.Serialize(items, true) + "\n"
	default:
		text = converter.Serialize(items, false)
	}

	if _, err := io.WriteString(f.writer, text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
