// Package jsonparser 提供不依赖外部解析库的递归下降 JSON 解析器。
//
// 解析结果是一棵封闭的值树：String、Int、Float、Bool、Null、List、Map。
// 值在解析完成后不可变，由抽取层消费后丢弃。
package jsonparser

// Value JSON 值树节点
//
// 只有本包内定义的七种类型实现该接口，使用方通过 type switch 穷举处理。
type Value interface {
	isValue()
}

// String 字符串值
type String string

// Int 有符号 64 位整数值
type Int int64

// Float 浮点数值
type Float float64

// Bool 布尔值
type Bool bool

// Null null 值
type Null struct{}

// List 有序数组
type List []Value

// Map 对象，键总是字符串；重复键后写覆盖先写
type Map map[string]Value

func (String) isValue() {}
func (Int) isValue()    {}
func (Float) isValue()  {}
func (Bool) isValue()   {}
func (Null) isValue()   {}
func (List) isValue()   {}
func (Map) isValue()    {}

// AsString 取字符串，类型不符时返回 false
func AsString(v Value) (string, bool) {
	if s, ok := v.(String); ok {
		return string(s), true
	}
	return "", false
}

// AsBool 取布尔值，类型不符时返回 false
func AsBool(v Value) (bool, bool) {
	if b, ok := v.(Bool); ok {
		return bool(b), true
	}
	return false, false
}

// AsList 取数组，类型不符时返回 false
func AsList(v Value) (List, bool) {
	if l, ok := v.(List); ok {
		return l, true
	}
	return nil, false
}

// AsMap 取对象，类型不符时返回 false
func AsMap(v Value) (Map, bool) {
	if m, ok := v.(Map); ok {
		return m, true
	}
	return nil, false
}

// String 按键取字符串字段；键不存在或类型不符都返回 nil
func (m Map) String(key string) *string {
	v, ok := m[key]
	if !ok {
		return nil
	}
	s, ok := AsString(v)
	if !ok {
		return nil
	}
	return &s
}

// Bool 按键取布尔字段；键不存在或类型不符都返回 nil
func (m Map) Bool(key string) *bool {
	v, ok := m[key]
	if !ok {
		return nil
	}
	b, ok := AsBool(v)
	if !ok {
		return nil
	}
	return &b
}

// List 按键取数组字段
func (m Map) List(key string) (List, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	return AsList(v)
}
