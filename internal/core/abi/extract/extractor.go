// Package extract 将 JSON 值树映射为类型化的 ABI 条目。
//
// 抽取是宽松的：不是对象或缺少字符串类型 "type" 字段的元素被静默丢弃，
// 其它字段类型不符时视为缺失，单个坏条目不会中断整个抽取。
package extract

import (
	"github.com/weisyn/abi2human/internal/core/abi/jsonparser"
	"github.com/weisyn/abi2human/pkg/types"
)

// ABI JSON 字段名
const (
	fieldType            = "type"
	fieldName            = "name"
	fieldInputs          = "inputs"
	fieldOutputs         = "outputs"
	fieldStateMutability = "stateMutability"
	fieldAnonymous       = "anonymous"
	fieldPayable         = "payable"
	fieldConstant        = "constant"
	fieldIndexed         = "indexed"
	fieldInternalType    = "internalType"
	fieldComponents      = "components"
)

// Entries 将数组中的每个元素转换为条目，保持输入顺序
func Entries(list jsonparser.List) []types.Entry {
	entries := make([]types.Entry, 0, len(list))
	for _, v := range list {
		obj, ok := v.(jsonparser.Map)
		if !ok {
			continue
		}
		if entry, ok := Entry(obj); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Entry 转换单个条目对象；缺少字符串 "type" 时返回 false
func Entry(obj jsonparser.Map) (types.Entry, bool) {
	typ := obj.String(fieldType)
	if typ == nil {
		return types.Entry{}, false
	}

	return types.Entry{
		Type:            *typ,
		Name:            obj.String(fieldName),
		Inputs:          parameters(obj[fieldInputs]),
		Outputs:         returnParameters(obj[fieldOutputs]),
		StateMutability: obj.String(fieldStateMutability),
		Anonymous:       obj.Bool(fieldAnonymous),
		Payable:         obj.Bool(fieldPayable),
		Constant:        obj.Bool(fieldConstant),
	}, true
}

// parameters 字段不是数组时返回 nil（缺失）；数组中的坏元素被跳过
func parameters(v jsonparser.Value) []types.Parameter {
	list, ok := v.(jsonparser.List)
	if !ok {
		return nil
	}

	params := make([]types.Parameter, 0, len(list))
	for _, item := range list {
		obj, ok := item.(jsonparser.Map)
		if !ok {
			continue
		}
		typ := obj.String(fieldType)
		if typ == nil {
			continue
		}
		params = append(params, types.Parameter{
			Name:         obj.String(fieldName),
			Type:         *typ,
			Indexed:      obj.Bool(fieldIndexed),
			InternalType: obj.String(fieldInternalType),
			Components:   parameters(obj[fieldComponents]),
		})
	}
	return params
}

func returnParameters(v jsonparser.Value) []types.ReturnParameter {
	list, ok := v.(jsonparser.List)
	if !ok {
		return nil
	}

	params := make([]types.ReturnParameter, 0, len(list))
	for _, item := range list {
		obj, ok := item.(jsonparser.Map)
		if !ok {
			continue
		}
		typ := obj.String(fieldType)
		if typ == nil {
			continue
		}
		params = append(params, types.ReturnParameter{
			Name:         obj.String(fieldName),
			Type:         *typ,
			InternalType: obj.String(fieldInternalType),
			Components:   returnParameters(obj[fieldComponents]),
		})
	}
	return params
}
