// Package types 定义合约接口描述（ABI）的类型化模型以及跨包共享的基础类型。
package types

// ABI 条目类型
const (
	EntryConstructor = "constructor"
	EntryFunction    = "function"
	EntryEvent       = "event"
	EntryFallback    = "fallback"
	EntryReceive     = "receive"
	EntryUnknown     = "unknown"
)

// 状态可变性
const (
	MutabilityPure       = "pure"
	MutabilityView       = "view"
	MutabilityNonPayable = "nonpayable"
	MutabilityPayable    = "payable"
)

// Parameter 函数/事件输入参数，也用于 tuple 的 components
//
// 指针与切片字段的 nil 表示输入中没有该字段，缺失本身有语义，不做推断。
type Parameter struct {
	Name         *string     `json:"name,omitempty"`
	Type         string      `json:"type"`
	Indexed      *bool       `json:"indexed,omitempty"` // 仅事件使用
	InternalType *string     `json:"internalType,omitempty"`
	Components   []Parameter `json:"components,omitempty"`
}

// ReturnParameter 函数返回值，结构与 Parameter 相同但没有 indexed
type ReturnParameter struct {
	Name         *string           `json:"name,omitempty"`
	Type         string            `json:"type"`
	InternalType *string           `json:"internalType,omitempty"`
	Components   []ReturnParameter `json:"components,omitempty"`
}

// Entry 一个 ABI 条目
//
// Type 保存输入中的原始文本，未识别的类型同样保留，由格式化器统一渲染为 "unknown"。
// Inputs/Outputs 为 nil 表示字段缺失，非 nil 的空切片表示显式的空数组。
type Entry struct {
	Type            string            `json:"type"`
	Name            *string           `json:"name,omitempty"`
	Inputs          []Parameter       `json:"inputs,omitempty"`
	Outputs         []ReturnParameter `json:"outputs,omitempty"`
	StateMutability *string           `json:"stateMutability,omitempty"`
	Anonymous       *bool             `json:"anonymous,omitempty"`
	Payable         *bool             `json:"payable,omitempty"`  // 旧版标志，仅保留不参与渲染
	Constant        *bool             `json:"constant,omitempty"` // 旧版标志，仅保留不参与渲染
}

// Mutability 返回状态可变性，缺失时按 nonpayable 处理
func (e Entry) Mutability() string {
	if e.StateMutability == nil {
		return MutabilityNonPayable
	}
	return *e.StateMutability
}

// DisplayName 返回条目名称，缺失时为空串
func (e Entry) DisplayName() string {
	if e.Name == nil {
		return ""
	}
	return *e.Name
}

// IsAnonymous 匿名事件没有 topic0
func (e Entry) IsAnonymous() bool {
	return e.Anonymous != nil && *e.Anonymous
}

// IsIndexed 事件参数是否进入日志 topic
func (p Parameter) IsIndexed() bool {
	return p.Indexed != nil && *p.Indexed
}

// HasName 返回值名称存在且非空
func (p ReturnParameter) HasName() bool {
	return p.Name != nil && *p.Name != ""
}
