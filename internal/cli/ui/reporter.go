// Package ui 在 stderr 上显示面向用户的状态信息
//
// 状态信息不是日志：它们总是写到终端（或被 --quiet 关闭），
// 与 zap 日志的级别与目标互不影响。
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"golang.org/x/term"

	"github.com/weisyn/abi2human/internal/core/fileops"
)

// Reporter 转换状态报告器
type Reporter struct {
	out    io.Writer
	quiet  bool // 只保留错误信息
	styled bool // 使用 pterm 前缀与颜色
}

// NewReporter 创建报告器，输出是终端时启用样式
func NewReporter(out io.Writer, quiet bool) *Reporter {
	if out == nil {
		out = os.Stderr
	}
	return &Reporter{
		out:    out,
		quiet:  quiet,
		styled: isTerminal(out),
	}
}

// isTerminal 判断写入目标是否为终端
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SetStyled 显式开关样式输出
func (r *Reporter) SetStyled(styled bool) {
	r.styled = styled
}

// info 非错误信息，quiet 时不输出
func (r *Reporter) info(emoji, message string) {
	if r.quiet {
		return
	}
	if r.styled {
		pterm.Info.WithWriter(r.out).Println(message)
		return
	}
	fmt.Fprintf(r.out, "%s %s\n", emoji, message)
}

func (r *Reporter) success(message string) {
	if r.quiet {
		return
	}
	if r.styled {
		pterm.Success.WithWriter(r.out).Println(message)
		return
	}
	fmt.Fprintf(r.out, "✅ %s\n", message)
}

// Error 显示错误信息，quiet 时同样输出
func (r *Reporter) Error(message string) {
	if r.styled {
		pterm.Error.WithWriter(r.out).Println(message)
		return
	}
	fmt.Fprintf(r.out, "❌ %s\n", message)
}

// Fail 显示不属于某个文件的错误，如参数错误，quiet 时同样输出
func (r *Reporter) Fail(message string) {
	if r.styled {
		pterm.Error.WithWriter(r.out).Println(message)
		return
	}
	fmt.Fprintf(r.out, "Error: %s\n", message)
}

// Plain 原样输出一行，quiet 时同样输出
func (r *Reporter) Plain(message string) {
	fmt.Fprintln(r.out, message)
}

// DirectoryStart 显示目录转换的起止位置
func (r *Reporter) DirectoryStart(inputDir, outputDir string) {
	r.info("🔄", fmt.Sprintf("Converting ABI files from %s to %s", inputDir, outputDir))
}

// FileConverted 显示单文件转换结果，失败时返回 false
func (r *Reporter) FileConverted(result fileops.Result) bool {
	if !result.Success() {
		r.Error("Error: " + result.Err.Error())
		return false
	}

	message := fmt.Sprintf("Converted %s → %s (%d items)", result.InputPath, result.OutputPath, result.ItemCount)
	if result.Repaired {
		message += " [repaired]"
	}
	r.success(message)
	return true
}

// DirectorySummary 汇总目录转换结果，返回失败数量
//
// 失败列表不受 quiet 影响。
func (r *Reporter) DirectorySummary(results []fileops.Result) int {
	var failed []fileops.Result
	for _, result := range results {
		if !result.Success() {
			failed = append(failed, result)
		}
	}

	if succeeded := len(results) - len(failed); succeeded > 0 {
		r.success(fmt.Sprintf("Successfully converted %d files", succeeded))
	}

	if len(failed) > 0 {
		r.Error(fmt.Sprintf("Failed to convert %d files:", len(failed)))
		for _, result := range failed {
			r.Plain(fmt.Sprintf("  - %s: %s", result.InputPath, result.Err))
		}
	}
	return len(failed)
}
