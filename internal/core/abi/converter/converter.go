// Package converter 串联解析、抽取、过滤、渲染与序列化。
//
// 数据单向流动：原始文本 → JSON 值树 → ABI 条目 → 签名字符串 → JSON 数组文本。
package converter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/weisyn/abi2human/internal/core/abi/extract"
	"github.com/weisyn/abi2human/internal/core/abi/jsonparser"
	"github.com/weisyn/abi2human/internal/core/abi/signature"
	"github.com/weisyn/abi2human/pkg/types"
)

// abiField 包装对象中保存条目数组的键
const abiField = "abi"

// ErrInvalidRoot 根节点既不是数组也不是带 abi 数组的对象
var ErrInvalidRoot = errors.New("expected array or object with abi field")

// Parse 解析 ABI 文本为条目列表
//
// 接受顶层数组，或包含 "abi" 数组字段的顶层对象。
func Parse(text string) ([]types.Entry, error) {
	root, err := jsonparser.Parse(text)
	if err != nil {
		if errors.Is(err, jsonparser.ErrInvalidRoot) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRoot, err)
		}
		return nil, err
	}

	switch v := root.(type) {
	case jsonparser.List:
		return extract.Entries(v), nil
	case jsonparser.Map:
		list, ok := v.List(abiField)
		if !ok {
			return nil, fmt.Errorf("%w: object has no %q array", ErrInvalidRoot, abiField)
		}
		return extract.Entries(list), nil
	default:
		return nil, ErrInvalidRoot
	}
}

// ParseWithRepair 先按严格语法解析，结构性错误时尝试修复后重试
//
// 修复后仍失败则返回原始错误；根节点形状错误不做修复。
func ParseWithRepair(text string) ([]types.Entry, bool, error) {
	entries, err := Parse(text)
	if err == nil {
		return entries, false, nil
	}

	var perr *jsonparser.ParseError
	if !errors.As(err, &perr) || errors.Is(err, ErrInvalidRoot) {
		return nil, false, err
	}

	repaired, repairErr := jsonrepair.JSONRepair(text)
	if repairErr != nil {
		return nil, false, err
	}
	entries, retryErr := Parse(repaired)
	if retryErr != nil {
		return nil, false, err
	}
	return entries, true, nil
}

// Option 渲染选项
type Option func(*renderOptions)

type renderOptions struct {
	selectors bool
}

// WithSelectors 在签名后追加 " // <选择器>"
func WithSelectors() Option {
	return func(o *renderOptions) {
		o.selectors = true
	}
}

// Render 过滤并渲染条目
//
// 类型为空或为 "unknown" 的条目被跳过；渲染结果为空或以 "{}" 开头的字符串也被丢弃。
// 没有条目留下时返回空切片，由调用方决定是否视为错误。
func Render(entries []types.Entry, opts ...Option) []string {
	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type == "" || e.Type == types.EntryUnknown {
			continue
		}

		formatted := signature.Format(e)
		if formatted == "" || strings.HasPrefix(formatted, "{}") {
			continue
		}

		if o.selectors {
			if sel, ok := signature.Selector(e); ok {
				formatted += " // " + sel
			}
		}
		out = append(out, formatted)
	}
	return out
}

// Signatures 解析并渲染，repair 为 true 时允许修复畸形输入
func Signatures(text string, repair bool, opts ...Option) ([]string, error) {
	var (
		entries []types.Entry
		err     error
	)
	if repair {
		entries, _, err = ParseWithRepair(text)
	} else {
		entries, err = Parse(text)
	}
	if err != nil {
		return nil, err
	}
	return Render(entries, opts...), nil
}
