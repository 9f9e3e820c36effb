package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const counterABI = `{"contractName": "Counter", "abi": [
	{"type": "function", "name": "increment", "stateMutability": "nonpayable", "inputs": [], "outputs": []},
	{"type": "function", "name": "count", "stateMutability": "view", "inputs": [], "outputs": [{"name": "", "type": "uint256"}]},
	{"type": "event", "name": "Incremented", "anonymous": false, "inputs": [{"name": "by", "type": "address", "indexed": true}]}
]}`

const counterPretty = `[
  "function increment()",
  "function count() view returns (uint256)",
  "event Incremented(address indexed by)"
]`

type runResult struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeABI(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestVersion 测试版本输出
func TestVersion(t *testing.T) {
	for _, flag := range []string{"-v", "--version"} {
		res := runCLI(t, "", flag)
		assert.Equal(t, 0, res.code)
		assert.Equal(t, "abi2human v1.0.0\n", res.stdout)
	}
}

// TestStdinMode 无输入参数时从 stdin 读取
func TestStdinMode(t *testing.T) {
	t.Run("pretty", func(t *testing.T) {
		res := runCLI(t, counterABI)
		assert.Equal(t, 0, res.code)
		assert.Equal(t, counterPretty+"\n", res.stdout)
	})

	t.Run("compact 也带换行", func(t *testing.T) {
		res := runCLI(t, counterABI, "--no-pretty")
		assert.Equal(t, 0, res.code)
		assert.Equal(t, `["function increment()","function count() view returns (uint256)","event Incremented(address indexed by)"]`+"\n", res.stdout)
	})

	t.Run("raw", func(t *testing.T) {
		res := runCLI(t, counterABI, "-r")
		assert.Equal(t, 0, res.code)
		assert.Equal(t, "function increment()\nfunction count() view returns (uint256)\nevent Incremented(address indexed by)\n", res.stdout)
	})

	t.Run("解析失败", func(t *testing.T) {
		res := runCLI(t, `[1, 2`)
		assert.Equal(t, 1, res.code)
		assert.Empty(t, res.stdout)
		assert.True(t, strings.HasPrefix(res.stderr, "Error: "))
	})

	t.Run("空结果", func(t *testing.T) {
		res := runCLI(t, `[]`)
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "no valid ABI items found")
	})
}

// TestStdoutMode 文件输出到 stdout
func TestStdoutMode(t *testing.T) {
	dir := t.TempDir()
	input := writeABI(t, dir, "Counter.json", counterABI)

	t.Run("pretty 结尾换行", func(t *testing.T) {
		res := runCLI(t, "", input, "-o")
		assert.Equal(t, 0, res.code)
		assert.Equal(t, counterPretty+"\n", res.stdout)
		assert.Empty(t, res.stderr)
	})

	t.Run("compact 结尾不换行", func(t *testing.T) {
		res := runCLI(t, "", input, "--stdout", "--no-pretty")
		assert.Equal(t, 0, res.code)
		assert.Equal(t, `["function increment()","function count() view returns (uint256)","event Incremented(address indexed by)"]`, res.stdout)
	})

	t.Run("组合短选项 -or", func(t *testing.T) {
		res := runCLI(t, "", input, "-or")
		assert.Equal(t, 0, res.code)
		assert.Equal(t, "function increment()\nfunction count() view returns (uint256)\nevent Incremented(address indexed by)\n", res.stdout)
	})

	t.Run("选择器", func(t *testing.T) {
		res := runCLI(t, "", input, "-or", "--selectors")
		assert.Equal(t, 0, res.code)
		lines := strings.Split(strings.TrimSuffix(res.stdout, "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "function increment() // 0xd09de08a", lines[0])
		assert.Equal(t, "function count() view returns (uint256) // 0x06661abd", lines[1])
	})

	t.Run("没有有效条目", func(t *testing.T) {
		empty := writeABI(t, dir, "Empty.json", `[{"type": "unknown"}]`)
		res := runCLI(t, "", empty, "-o")
		assert.Equal(t, 1, res.code)
		assert.Empty(t, res.stdout)
		assert.Equal(t, "Error: No valid ABI found in file\n", res.stderr)
	})

	t.Run("解析失败", func(t *testing.T) {
		bad := writeABI(t, dir, "Bad.json", `{"abi": 1}`)
		res := runCLI(t, "", bad, "-o")
		assert.Equal(t, 1, res.code)
		assert.True(t, strings.HasPrefix(res.stderr, "Error parsing ABI: "))
	})
}

// TestFileMode 单文件转换
func TestFileMode(t *testing.T) {
	dir := t.TempDir()
	input := writeABI(t, dir, "Counter.json", counterABI)

	t.Run("默认输出路径", func(t *testing.T) {
		res := runCLI(t, "", input)
		assert.Equal(t, 0, res.code)
		assert.Empty(t, res.stdout)

		output := filepath.Join(dir, "Counter.readable.json")
		data, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, counterPretty, string(data))
		assert.Equal(t, "✅ Converted "+input+" → "+output+" (3 items)\n", res.stderr)
	})

	t.Run("自定义后缀与 quiet", func(t *testing.T) {
		res := runCLI(t, "", input, "-s", ".human", "-q")
		assert.Equal(t, 0, res.code)
		assert.Empty(t, res.stderr)
		assert.FileExists(t, filepath.Join(dir, "Counter.human.json"))
	})

	t.Run("显式输出路径", func(t *testing.T) {
		output := filepath.Join(dir, "out", "counter.json")
		res := runCLI(t, "", input, output, "--no-pretty")
		assert.Equal(t, 0, res.code)
		data, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), `["function increment()"`))
	})

	t.Run("输入不存在", func(t *testing.T) {
		missing := filepath.Join(dir, "missing.json")
		res := runCLI(t, "", missing)
		assert.Equal(t, 1, res.code)
		assert.Equal(t, "Error: Input path '"+missing+"' does not exist\n", res.stderr)
	})

	t.Run("--dir 要求目录", func(t *testing.T) {
		res := runCLI(t, "", input, "-d")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "is not a directory")
	})

	t.Run("转换失败", func(t *testing.T) {
		bad := writeABI(t, dir, "Bad.json", `[{"type": "function",}]`)
		res := runCLI(t, "", bad)
		assert.Equal(t, 1, res.code)
		assert.True(t, strings.HasPrefix(res.stderr, "❌ Error: failed to parse ABI: "))
	})

	t.Run("修复畸形输入", func(t *testing.T) {
		bad := writeABI(t, dir, "Trailing.json", `[{"type": "receive", "stateMutability": "payable"},]`)
		res := runCLI(t, "", bad, "--repair", "-q")
		assert.Equal(t, 0, res.code)
		assert.FileExists(t, filepath.Join(dir, "Trailing.readable.json"))
	})
}

// TestDirectoryMode 目录批量转换
func TestDirectoryMode(t *testing.T) {
	t.Run("默认输出目录", func(t *testing.T) {
		dir := t.TempDir()
		writeABI(t, dir, "A.json", counterABI)
		writeABI(t, dir, "B.json", counterABI)
		writeABI(t, dir, "readme.md", "# not an abi")

		res := runCLI(t, "", dir, "-d", "-j", "2")
		assert.Equal(t, 0, res.code)
		assert.FileExists(t, filepath.Join(dir, "readable", "A.json"))
		assert.FileExists(t, filepath.Join(dir, "readable", "B.json"))
		assert.Contains(t, res.stderr, "🔄 Converting ABI files from "+dir+" to "+filepath.Join(dir, "readable"))
		assert.Contains(t, res.stderr, "✅ Successfully converted 2 files")
	})

	t.Run("模式过滤与显式输出目录", func(t *testing.T) {
		dir := t.TempDir()
		out := t.TempDir()
		writeABI(t, dir, "Token.json", counterABI)
		writeABI(t, dir, "Vault.json", counterABI)

		res := runCLI(t, "", dir, out, "-p", "Tok*", "-q")
		assert.Equal(t, 0, res.code)
		assert.Empty(t, res.stderr)
		assert.FileExists(t, filepath.Join(out, "Token.json"))
		assert.NoFileExists(t, filepath.Join(out, "Vault.json"))
	})

	t.Run("部分失败", func(t *testing.T) {
		dir := t.TempDir()
		writeABI(t, dir, "Good.json", counterABI)
		bad := writeABI(t, dir, "Bad.json", `nope`)

		res := runCLI(t, "", dir, "-q")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "❌ Failed to convert 1 files:")
		assert.Contains(t, res.stderr, "  - "+bad+": failed to parse ABI")
		assert.FileExists(t, filepath.Join(dir, "readable", "Good.json"))
	})
}

// TestConfigLayering 配置文件与命令行参数的优先级
func TestConfigLayering(t *testing.T) {
	dir := t.TempDir()
	input := writeABI(t, dir, "Counter.json", counterABI)
	cfg := writeABI(t, dir, "abi2human.config", `{"convert": {"suffix": ".cfg", "pretty": false}}`)

	res := runCLI(t, "", input, "--config", cfg, "-q")
	assert.Equal(t, 0, res.code)
	data, err := os.ReadFile(filepath.Join(dir, "Counter.cfg.json"))
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "\n"))

	// 命令行参数优先于配置文件
	res = runCLI(t, "", input, "--config", cfg, "-s", ".flag", "-q")
	assert.Equal(t, 0, res.code)
	assert.FileExists(t, filepath.Join(dir, "Counter.flag.json"))

	t.Run("配置文件不存在", func(t *testing.T) {
		res := runCLI(t, "", input, "--config", filepath.Join(dir, "none.json"))
		assert.Equal(t, 1, res.code)
		assert.True(t, strings.HasPrefix(res.stderr, "Error: "))
	})

	t.Run("非法日志级别", func(t *testing.T) {
		res := runCLI(t, "", input, "--log-level", "loud")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "log.level")
	})
}

// TestTooManyArgs 参数过多
func TestTooManyArgs(t *testing.T) {
	res := runCLI(t, "", "a", "b", "c")
	assert.Equal(t, 1, res.code)
	assert.True(t, strings.HasPrefix(res.stderr, "Error: "))
}
