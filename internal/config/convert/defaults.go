package convert

import "runtime"

// 转换配置默认值
const (
	// defaultSuffix 输出文件后缀，写在 .json 扩展名之前
	defaultSuffix = ".readable"

	// defaultPretty 默认输出两空格缩进的 JSON
	defaultPretty = true

	// defaultPattern 默认不过滤文件名
	defaultPattern = ""

	// defaultOutputDirName 目录模式未指定输出目录时使用的子目录名
	defaultOutputDirName = "readable"
)

// defaultJobs 目录转换默认并发数
func defaultJobs() int {
	return runtime.NumCPU()
}
