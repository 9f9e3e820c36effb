// Package signature 将 ABI 条目渲染为规范的人类可读签名。
//
// 渲染是纯函数：相同的条目总是得到相同的字符串，不依赖调用顺序。
package signature

import (
	"strings"

	"github.com/weisyn/abi2human/pkg/types"
)

const paramSeparator = ", "

// Format 按条目类型渲染签名
//
//	constructor(uint256 initialSupply)
//	event Transfer(address indexed from, address indexed to, uint256 value)
//	function balanceOf(address account) view returns (uint256)
//	fallback() external payable
//	receive() external payable
//
// 未识别的类型渲染为 "unknown"。
func Format(e types.Entry) string {
	switch e.Type {
	case types.EntryConstructor:
		return "constructor(" + formatInputs(e.Inputs) + ")"
	case types.EntryEvent:
		return "event " + e.DisplayName() + "(" + formatEventInputs(e.Inputs) + ")"
	case types.EntryFunction:
		return formatFunction(e)
	case types.EntryFallback:
		if e.Mutability() == types.MutabilityPayable {
			return "fallback() external payable"
		}
		return "fallback() external"
	case types.EntryReceive:
		return "receive() external payable"
	default:
		return types.EntryUnknown
	}
}

func formatFunction(e types.Entry) string {
	var sb strings.Builder
	sb.WriteString("function ")
	sb.WriteString(e.DisplayName())
	sb.WriteByte('(')
	sb.WriteString(formatInputs(e.Inputs))
	sb.WriteByte(')')

	if m := e.Mutability(); m != types.MutabilityNonPayable {
		sb.WriteByte(' ')
		sb.WriteString(m)
	}

	if len(e.Outputs) > 0 {
		sb.WriteString(" returns (")
		sb.WriteString(formatOutputs(e.Outputs))
		sb.WriteByte(')')
	}
	return sb.String()
}

// formatInputs 名称字段存在即输出（即使为空串）
func formatInputs(params []types.Parameter) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		if p.Name != nil {
			parts = append(parts, p.Type+" "+*p.Name)
		} else {
			parts = append(parts, p.Type)
		}
	}
	return strings.Join(parts, paramSeparator)
}

func formatEventInputs(params []types.Parameter) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		typ := p.Type
		if p.IsIndexed() {
			typ += " indexed"
		}
		if p.Name != nil {
			parts = append(parts, typ+" "+*p.Name)
		} else {
			parts = append(parts, typ)
		}
	}
	return strings.Join(parts, paramSeparator)
}

// formatOutputs 返回值只在名称非空时输出名称
func formatOutputs(params []types.ReturnParameter) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		if p.HasName() {
			parts = append(parts, p.Type+" "+*p.Name)
		} else {
			parts = append(parts, p.Type)
		}
	}
	return strings.Join(parts, paramSeparator)
}
