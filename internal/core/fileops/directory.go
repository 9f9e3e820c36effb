package fileops

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// abiExtension 目录模式只处理此扩展名的文件
const abiExtension = ".json"

// ConvertDirectory 转换目录下的所有 ABI 文件（不递归）
//
// 只处理扩展名为 .json 的普通文件，并按文件名模式过滤；
// 每个输出写入 outputDir/<同名文件>。结果按目录中的文件名顺序排列，与并发度无关。
// 目录本身无法读取时返回单个失败结果。
func (s *Service) ConvertDirectory(ctx context.Context, inputDir, outputDir string) []Result {
	logger := s.logger.With("batch_id", uuid.New().String(), "dir", inputDir)

	inputs, err := s.collectInputs(inputDir)
	if err != nil {
		return []Result{{InputPath: inputDir, Err: err}}
	}
	logger.Debugf("待转换文件 %d 个，并发数 %d", len(inputs), s.options.Jobs)

	results := make([]Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	if s.options.Jobs > 0 {
		g.SetLimit(s.options.Jobs)
	}
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			output := filepath.Join(outputDir, filepath.Base(input))
			results[i] = s.convertFile(gctx, logger, input, output)
			// 单个文件失败不影响其余文件
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if !r.Success() {
			failed++
		}
	}
	if failed > 0 {
		logger.Warnf("目录转换完成，失败 %d / %d", failed, len(results))
	} else {
		logger.Infof("目录转换完成，共 %d 个文件", len(results))
	}

	return results
}

// collectInputs 按文件名顺序列出待转换的文件
func (s *Service) collectInputs(inputDir string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var inputs []string
	for _, entry := range entries {
		name := entry.Name()
		if filepath.Ext(name) != abiExtension || !s.options.MatchName(name) {
			continue
		}

		path := filepath.Join(inputDir, name)
		// 跟随符号链接判断是否为普通文件
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		inputs = append(inputs, path)
	}
	return inputs, nil
}
