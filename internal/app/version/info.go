// Package version provides version information for the application.
package version

import (
	"fmt"
	"runtime"
	"time"
)

// Name 程序名称
const Name = "abi2human"

// 构建时注入的变量，通过ldflags设置
var (
	// 语义化版本信息
	Version = "1.0.0"

	// 构建信息
	BuildTime = "unknown" // 构建时间戳（RFC3339格式）
	GitCommit = "unknown" // 构建时的提交哈希

	// Go构建信息
	GoVersion = runtime.Version() // Go版本
	GoArch    = runtime.GOARCH    // 目标架构
	GoOS      = runtime.GOOS      // 目标操作系统
)

// BuildInfo 完整构建信息结构
type BuildInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	GoArch    string `json:"go_arch"`
	GoOS      string `json:"go_os"`
}

// GetVersion 获取版本号
func GetVersion() string {
	return Version
}

// GetDisplayVersion 返回 --version 输出，如 "abi2human v1.0.0"
func GetDisplayVersion() string {
	return fmt.Sprintf("%s v%s", Name, Version)
}

// GetBuildInfo 获取完整构建信息
func GetBuildInfo() *BuildInfo {
	return &BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
		GoVersion: GoVersion,
		GoArch:    GoArch,
		GoOS:      GoOS,
	}
}

// GetFullVersion 获取完整版本信息（用于详细输出）
func GetFullVersion() string {
	buildInfo := GetBuildInfo()

	versionStr := GetDisplayVersion()

	if buildInfo.BuildTime != "unknown" {
		if parsedTime, err := time.Parse(time.RFC3339, buildInfo.BuildTime); err == nil {
			versionStr += fmt.Sprintf("\n构建时间: %s", parsedTime.Format("2006-01-02 15:04:05 MST"))
		} else {
			versionStr += fmt.Sprintf("\n构建时间: %s", buildInfo.BuildTime)
		}
	}
	if buildInfo.GitCommit != "unknown" {
		versionStr += fmt.Sprintf("\n提交: %s", buildInfo.GitCommit)
	}

	versionStr += fmt.Sprintf("\nGo版本: %s", buildInfo.GoVersion)
	versionStr += fmt.Sprintf("\n平台: %s/%s", buildInfo.GoOS, buildInfo.GoArch)

	return versionStr
}
