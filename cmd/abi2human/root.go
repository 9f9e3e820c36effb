package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/weisyn/abi2human/internal/app"
	"github.com/weisyn/abi2human/internal/app/version"
	"github.com/weisyn/abi2human/internal/cli/output"
	"github.com/weisyn/abi2human/internal/cli/ui"
	internalconfig "github.com/weisyn/abi2human/internal/config"
	"github.com/weisyn/abi2human/internal/core/fileops"
	logimpl "github.com/weisyn/abi2human/internal/core/infrastructure/log"
	"github.com/weisyn/abi2human/pkg/types"
)

// errReported 错误信息已经输出给用户，只需返回非零退出码
var errReported = errors.New("reported")

// GlobalFlags 命令行标志
type GlobalFlags struct {
	Stdout     bool   // 输出到 stdout
	Raw        bool   // 每行一个签名
	Quiet      bool   // 只输出错误
	Dir        bool   // 要求输入为目录
	Pattern    string // 目录模式文件名过滤
	Suffix     string // 输出文件后缀
	NoPretty   bool   // 紧凑 JSON
	Version    bool   // 打印版本
	Selectors  bool   // 追加选择器
	Repair     bool   // 修复畸形 JSON
	Jobs       int    // 目录转换并发数
	ConfigPath string // JSON 配置文件
	LogLevel   string // 日志级别
	LogFile    string // 日志文件
}

// newRootCmd 创建根命令
func newRootCmd() *cobra.Command {
	var flags GlobalFlags

	cmd := &cobra.Command{
		Use:   "abi2human [options] <input> [output]",
		Short: "Convert Ethereum ABI to human-readable format",
		Long: `abi2human v` + version.GetVersion() + ` - Convert Ethereum ABI to human-readable format
Optimized for AI agents to efficiently consume smart contract interfaces

ARGUMENTS:
  input    Input ABI file (.json) or directory; reads stdin when omitted
  output   Output file or directory (optional)`,
		Example: `  # Quick ABI inspection
  abi2human contract.json -o

  # Raw text format
  abi2human contract.json -or

  # Convert and save file
  abi2human contract.json output.json

  # Batch convert directory
  abi2human ./abis/ -d ./readable/

  # Append function selectors and event topics
  abi2human contract.json -o --selectors`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		// 与早期版本保持一致：未知选项被忽略
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.Version {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), version.GetDisplayVersion())
				return err
			}
			return run(cmd, &flags, args)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&flags.Stdout, "stdout", "o", false, "Output to stdout")
	f.BoolVarP(&flags.Raw, "raw", "r", false, "Output raw text format instead of JSON")
	f.BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress non-output messages")
	f.BoolVarP(&flags.Dir, "dir", "d", false, "Process directory")
	f.StringVarP(&flags.Pattern, "pattern", "p", "", "Glob pattern for filtering files")
	f.StringVarP(&flags.Suffix, "suffix", "s", ".readable", "Custom suffix for output files")
	f.BoolVar(&flags.NoPretty, "no-pretty", false, "Disable pretty-printing")
	f.BoolVarP(&flags.Version, "version", "v", false, "Show version")
	f.BoolVar(&flags.Selectors, "selectors", false, "Append function selectors and event topics")
	f.BoolVar(&flags.Repair, "repair", false, "Try to repair malformed JSON before giving up")
	f.IntVarP(&flags.Jobs, "jobs", "j", 0, "Parallel conversions in directory mode (default: number of CPUs)")
	f.StringVar(&flags.ConfigPath, "config", "", "JSON configuration file")
	f.StringVar(&flags.LogLevel, "log-level", "", "Log level: debug|info|warn|error|fatal (default: warn)")
	f.StringVar(&flags.LogFile, "log-file", "", "Write JSON logs to this file (rotated)")

	return cmd
}

// execute 运行命令并返回退出码
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// buildAppConfig 合并配置文件、环境变量与显式给出的命令行参数
func buildAppConfig(cmd *cobra.Command, flags *GlobalFlags) (*types.AppConfig, error) {
	appConfig, err := internalconfig.LoadAppConfig(flags.ConfigPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	convert := internalconfig.ConvertSection(appConfig)
	if changed("suffix") {
		convert.Suffix = types.StringPtr(flags.Suffix)
	}
	if changed("pattern") {
		convert.Pattern = types.StringPtr(flags.Pattern)
	}
	if changed("no-pretty") {
		convert.Pretty = types.BoolPtr(!flags.NoPretty)
	}
	if changed("raw") {
		convert.Raw = types.BoolPtr(flags.Raw)
	}
	if changed("selectors") {
		convert.Selectors = types.BoolPtr(flags.Selectors)
	}
	if changed("repair") {
		convert.Repair = types.BoolPtr(flags.Repair)
	}
	if changed("jobs") {
		convert.Jobs = types.IntPtr(flags.Jobs)
	}

	if changed("log-level") {
		internalconfig.LogSection(appConfig).Level = types.StringPtr(flags.LogLevel)
	}
	if changed("log-file") {
		internalconfig.LogSection(appConfig).FilePath = types.StringPtr(flags.LogFile)
	}
	return appConfig, nil
}

// run 根据输入类型选择 stdin、单文件或目录模式
func run(cmd *cobra.Command, flags *GlobalFlags, args []string) error {
	reporter := ui.NewReporter(cmd.ErrOrStderr(), flags.Quiet)

	appConfig, err := buildAppConfig(cmd, flags)
	if err != nil {
		reporter.Fail(err.Error())
		return errReported
	}

	a, err := app.New(app.WithAppConfig(appConfig))
	if err != nil {
		reporter.Fail(err.Error())
		return errReported
	}
	defer a.Close()

	logger := logimpl.NewModuleLogger(a.Logger, "cli")
	svc := a.Service
	ctx := cmd.Context()

	if len(args) == 0 {
		logger.Debug("未指定输入，从 stdin 读取")
		return runStdin(cmd, svc, reporter)
	}

	input := args[0]
	var outputPath string
	if len(args) > 1 {
		outputPath = args[1]
	}

	info, err := os.Stat(input)
	if err != nil {
		reporter.Fail(fmt.Sprintf("Input path '%s' does not exist", input))
		return errReported
	}

	if info.IsDir() {
		if outputPath == "" {
			outputPath = filepath.Join(input, svc.Options().OutputDirName)
		}
		logger.Debugf("目录模式: %s → %s", input, outputPath)

		reporter.DirectoryStart(input, outputPath)
		results := svc.ConvertDirectory(ctx, input, outputPath)
		if reporter.DirectorySummary(results) > 0 {
			return errReported
		}
		return nil
	}

	if flags.Dir {
		reporter.Fail(fmt.Sprintf("Input path '%s' is not a directory", input))
		return errReported
	}

	if flags.Stdout {
		logger.Debugf("stdout 模式: %s", input)
		return runFileToStdout(cmd, svc, reporter, input)
	}

	logger.Debugf("文件模式: %s", input)
	if !reporter.FileConverted(svc.ConvertFile(ctx, input, outputPath)) {
		return errReported
	}
	return nil
}

// runStdin stdin → stdout
func runStdin(cmd *cobra.Command, svc *fileops.Service, reporter *ui.Reporter) error {
	opts := svc.Options()

	var err error
	if opts.Raw {
		var data []byte
		if data, err = io.ReadAll(cmd.InOrStdin()); err == nil {
			err = printItems(cmd, svc, string(data))
		}
	} else {
		err = svc.ConvertStream(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	if err != nil {
		reporter.Fail(err.Error())
		return errReported
	}
	return nil
}

// runFileToStdout 单文件输出到 stdout
func runFileToStdout(cmd *cobra.Command, svc *fileops.Service, reporter *ui.Reporter, input string) error {
	content, err := os.ReadFile(input)
	if err != nil {
		reporter.Plain(fmt.Sprintf("Error reading file: %v", err))
		return errReported
	}

	if err := printItems(cmd, svc, string(content)); err != nil {
		if errors.Is(err, fileops.ErrNoValidEntries) {
			reporter.Fail("No valid ABI found in file")
		} else {
			reporter.Plain(fmt.Sprintf("Error parsing ABI: %v", err))
		}
		return errReported
	}
	return nil
}

// printItems 渲染并按 raw/pretty 选项写到 stdout
func printItems(cmd *cobra.Command, svc *fileops.Service, text string) error {
	items, err := svc.Render(text)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fileops.ErrNoValidEntries
	}

	opts := svc.Options()
	return output.NewFormatter(output.FormatFor(opts.Raw, opts.Pretty), cmd.OutOrStdout()).Print(items)
}
