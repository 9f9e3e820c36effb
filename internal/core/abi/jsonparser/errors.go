package jsonparser

import (
	"errors"
	"fmt"
)

// 解析错误类别，可通过 errors.Is 判断
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnterminatedString  = errors.New("unterminated string")
	ErrInvalidNumber       = errors.New("invalid number")
	ErrInvalidLiteral      = errors.New("invalid literal")
	ErrExpectedToken       = errors.New("expected token")
	ErrInvalidRoot         = errors.New("invalid root")
	ErrMaxDepth            = errors.New("maximum nesting depth exceeded")
)

// endOfInput Found 字段在输入耗尽时的取值
const endOfInput = "EOF"

// ParseError 结构化解析错误
//
// Offset 为出错位置的字符（rune）下标，不是字节下标。
type ParseError struct {
	Kind     error
	Message  string
	Offset   int
	Expected string
	Found    string
}

// Error 实现 error 接口
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (offset %d, found %s)", e.Message, e.Offset, e.Found)
}

// Unwrap 返回错误类别
func (e *ParseError) Unwrap() error {
	return e.Kind
}
