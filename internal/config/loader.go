package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/weisyn/abi2human/pkg/types"
)

// 环境变量名
const (
	EnvSuffix   = "ABI2HUMAN_SUFFIX"
	EnvPattern  = "ABI2HUMAN_PATTERN"
	EnvJobs     = "ABI2HUMAN_JOBS"
	EnvLogLevel = "ABI2HUMAN_LOG_LEVEL"
	EnvLogFile  = "ABI2HUMAN_LOG_FILE"
)

// LoadAppConfig 加载用户配置
//
// 优先级从低到高：JSON 配置文件 → .env 文件 → 环境变量。
// configPath 为空时跳过配置文件；当前目录没有 .env 时静默跳过。
// 命令行参数由调用方在返回结果上继续覆盖。
func LoadAppConfig(configPath string) (*types.AppConfig, error) {
	appConfig := &types.AppConfig{}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		if err := json.Unmarshal(data, appConfig); err != nil {
			return nil, fmt.Errorf("解析配置文件失败 %s: %w", configPath, err)
		}
	}

	// godotenv 不会覆盖已存在的环境变量
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("加载 .env 文件失败: %w", err)
	}

	if err := ApplyEnv(appConfig, os.LookupEnv); err != nil {
		return nil, err
	}
	return appConfig, nil
}

// ApplyEnv 将环境变量覆盖到用户配置上
func ApplyEnv(appConfig *types.AppConfig, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSuffix); ok {
		ConvertSection(appConfig).Suffix = types.StringPtr(v)
	}
	if v, ok := lookup(EnvPattern); ok {
		ConvertSection(appConfig).Pattern = types.StringPtr(v)
	}
	if v, ok := lookup(EnvJobs); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return &ValidationError{Field: EnvJobs, Message: fmt.Sprintf("不是有效的整数: %q", v)}
		}
		ConvertSection(appConfig).Jobs = types.IntPtr(n)
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		LogSection(appConfig).Level = types.StringPtr(v)
	}
	if v, ok := lookup(EnvLogFile); ok {
		LogSection(appConfig).FilePath = types.StringPtr(v)
	}
	return nil
}

// ConvertSection 返回转换配置段，不存在时创建
func ConvertSection(appConfig *types.AppConfig) *types.UserConvertConfig {
	if appConfig.Convert == nil {
		appConfig.Convert = &types.UserConvertConfig{}
	}
	return appConfig.Convert
}

// LogSection 返回日志配置段，不存在时创建
func LogSection(appConfig *types.AppConfig) *types.UserLogConfig {
	if appConfig.Log == nil {
		appConfig.Log = &types.UserLogConfig{}
	}
	return appConfig.Log
}
