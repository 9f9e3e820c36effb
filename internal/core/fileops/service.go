// Package fileops 在文件系统与标准流上执行 ABI 转换
//
// 单文件、目录批量与 stdin→stdout 三种入口共享同一套解析与渲染选项。
// 所有失败都以 Result.Err 或返回的 error 表示，本包从不直接写终端。
package fileops

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	convertconfig "github.com/weisyn/abi2human/internal/config/convert"
	"github.com/weisyn/abi2human/internal/core/abi/converter"
	logimpl "github.com/weisyn/abi2human/internal/core/infrastructure/log"
	"github.com/weisyn/abi2human/pkg/interfaces/infrastructure/log"
)

// ErrNoValidEntries 过滤后没有任何签名
var ErrNoValidEntries = errors.New("no valid ABI items found")

// Result 单个文件的转换结果
type Result struct {
	InputPath  string
	OutputPath string // 失败于读取或解析阶段时为预期路径，可能为空
	ItemCount  int
	Repaired   bool // 输入经过 JSON 修复后才解析成功
	Err        error
}

// Success 是否转换成功
func (r Result) Success() bool {
	return r.Err == nil
}

// Service 文件转换服务
type Service struct {
	logger  log.Logger
	options *convertconfig.ConvertOptions
}

// New 创建文件转换服务，options 为 nil 时使用默认转换配置
func New(logger log.Logger, options *convertconfig.ConvertOptions) *Service {
	if logger == nil {
		logger = logimpl.NewNop()
	}
	if options == nil {
		options = convertconfig.New(nil).GetOptions()
	}
	return &Service{
		logger:  logger,
		options: options,
	}
}

// Options 返回当前转换配置
func (s *Service) Options() *convertconfig.ConvertOptions {
	return s.options
}

// Render 解析 ABI 文本并渲染为签名列表
func (s *Service) Render(text string) ([]string, error) {
	items, _, err := s.render(s.logger, text)
	return items, err
}

func (s *Service) render(logger log.Logger, text string) ([]string, bool, error) {
	var opts []converter.Option
	if s.options.Selectors {
		opts = append(opts, converter.WithSelectors())
	}

	if !s.options.Repair {
		entries, err := converter.Parse(text)
		if err != nil {
			return nil, false, err
		}
		return converter.Render(entries, opts...), false, nil
	}

	entries, repaired, err := converter.ParseWithRepair(text)
	if err != nil {
		return nil, false, err
	}
	if repaired {
		logger.Warn("输入不是合法 JSON，已修复后解析")
	}
	return converter.Render(entries, opts...), repaired, nil
}

// ConvertStream 从 r 读取 ABI，将 JSON 数组写入 w 并追加换行
func (s *Service) ConvertStream(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	items, err := s.Render(string(data))
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return ErrNoValidEntries
	}

	if _, err := io.WriteString(w, converter.Serialize(items, s.options.Pretty)+"\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// DefaultOutputPath 默认输出路径：与输入同目录，<文件名主干><后缀>.json
func (s *Service) DefaultOutputPath(inputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}
	return filepath.Join(filepath.Dir(inputPath), stem+s.options.Suffix+".json")
}

// ConvertFile 转换单个文件，outputPath 为空时使用 DefaultOutputPath
func (s *Service) ConvertFile(ctx context.Context, inputPath, outputPath string) Result {
	return s.convertFile(ctx, s.logger, inputPath, outputPath)
}

func (s *Service) convertFile(ctx context.Context, logger log.Logger, inputPath, outputPath string) Result {
	if outputPath == "" {
		outputPath = s.DefaultOutputPath(inputPath)
	}
	result := Result{InputPath: inputPath, OutputPath: outputPath}

	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	logger = logger.With("file", inputPath)

	content, err := os.ReadFile(inputPath)
	if err != nil {
		result.Err = fmt.Errorf("failed to read file: %w", err)
		return result
	}

	items, repaired, err := s.render(logger, string(content))
	if err != nil {
		result.Err = fmt.Errorf("failed to parse ABI: %w", err)
		return result
	}
	result.Repaired = repaired
	result.ItemCount = len(items)

	if len(items) == 0 {
		result.Err = ErrNoValidEntries
		return result
	}

	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			result.Err = fmt.Errorf("failed to create directory: %w", err)
			return result
		}
	}

	if err := os.WriteFile(outputPath, []byte(converter.Serialize(items, s.options.Pretty)), 0o644); err != nil {
		result.Err = fmt.Errorf("failed to write file: %w", err)
		return result
	}

	logger.Debugf("已写入 %s（%d 条）", outputPath, len(items))
	return result
}
