package jsonparser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxDepth 数组/对象的最大嵌套层数
const MaxDepth = 10000

// cursor 单次解析持有的游标，解析结束后丢弃
type cursor struct {
	input []rune
	pos   int
	depth int
}

// Parse 解析完整输入，根节点必须是数组或对象
//
// 根值之后的剩余内容不做检查。
func Parse(text string) (Value, error) {
	c := &cursor{input: []rune(text)}
	c.skipWhitespace()

	switch r, ok := c.current(); {
	case ok && r == '[':
		return parseList(c)
	case ok && r == '{':
		return parseMap(c)
	default:
		return nil, c.fail(ErrInvalidRoot, "Expected JSON array or object", "'[' or '{'")
	}
}

// parseValue 按前瞻字符分派
func parseValue(c *cursor) (Value, error) {
	c.skipWhitespace()

	r, ok := c.current()
	switch {
	case !ok:
		return nil, c.fail(ErrUnexpectedCharacter, "Unexpected character", "value")
	case r == '"':
		s, err := parseString(c)
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case r == '[':
		return parseList(c)
	case r == '{':
		return parseMap(c)
	case r == 't' || r == 'f':
		return parseBool(c)
	case r == 'n':
		return parseNull(c)
	case isDigit(r) || r == '-':
		return parseNumber(c)
	default:
		return nil, c.fail(ErrUnexpectedCharacter, "Unexpected character", "value")
	}
}

func parseList(c *cursor) (Value, error) {
	if err := c.expect('['); err != nil {
		return nil, err
	}
	if err := c.enter(); err != nil {
		return nil, err
	}
	defer c.leave()

	list := List{}

	c.skipWhitespace()
	if c.peekIs(']') {
		c.advance()
		return list, nil
	}

	for {
		v, err := parseValue(c)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
		c.skipWhitespace()

		switch {
		case c.peekIs(','):
			c.advance()
			c.skipWhitespace()
		case c.peekIs(']'):
			c.advance()
			return list, nil
		default:
			return nil, c.fail(ErrExpectedToken, "Expected ',' or ']' in array", "',' or ']'")
		}
	}
}

func parseMap(c *cursor) (Value, error) {
	if err := c.expect('{'); err != nil {
		return nil, err
	}
	if err := c.enter(); err != nil {
		return nil, err
	}
	defer c.leave()

	m := Map{}

	c.skipWhitespace()
	if c.peekIs('}') {
		c.advance()
		return m, nil
	}

	for {
		c.skipWhitespace()
		key, err := parseString(c)
		if err != nil {
			return nil, err
		}

		c.skipWhitespace()
		if err := c.expect(':'); err != nil {
			return nil, err
		}

		v, err := parseValue(c)
		if err != nil {
			return nil, err
		}
		m[key] = v

		c.skipWhitespace()
		switch {
		case c.peekIs(','):
			c.advance()
		case c.peekIs('}'):
			c.advance()
			return m, nil
		default:
			return nil, c.fail(ErrExpectedToken, "Expected ',' or '}' in object", "',' or '}'")
		}
	}
}

// parseString 解析带引号的字符串
//
// 未知转义按字面字符保留；\u 后的非法十六进制或无法映射的码点不产生字符，也不报错。
func parseString(c *cursor) (string, error) {
	if err := c.expect('"'); err != nil {
		return "", err
	}

	var sb strings.Builder
	for {
		r, ok := c.current()
		if !ok {
			return "", c.fail(ErrUnterminatedString, "Unterminated string", `'"'`)
		}

		switch r {
		case '"':
			c.advance()
			return sb.String(), nil
		case '\\':
			c.advance()
			esc, ok := c.current()
			if !ok {
				return "", c.fail(ErrUnterminatedString, "Unexpected end of string", "escape character")
			}
			switch esc {
			case 'n':
				sb.WriteRune('\n')
			case 'r':
				sb.WriteRune('\r')
			case 't':
				sb.WriteRune('\t')
			case 'u':
				c.advance()
				if ch, ok := c.readUnicodeEscape(); ok {
					sb.WriteRune(ch)
				}
				continue
			default:
				// 包括 \\ 与 \"
				sb.WriteRune(esc)
			}
			c.advance()
		default:
			sb.WriteRune(r)
			c.advance()
		}
	}
}

// readUnicodeEscape 读取至多 4 个字符作为十六进制码点
func (c *cursor) readUnicodeEscape() (rune, bool) {
	var hex strings.Builder
	for i := 0; i < 4; i++ {
		r, ok := c.current()
		if !ok {
			break
		}
		hex.WriteRune(r)
		c.advance()
	}

	code, err := strconv.ParseUint(hex.String(), 16, 32)
	if err != nil {
		return 0, false
	}
	ch := rune(code)
	if !utf8.ValidRune(ch) {
		return 0, false
	}
	return ch, true
}

// parseNumber 累积数字字面量；含 '.'、'e'、'E' 时按浮点数解析，否则按 int64
func parseNumber(c *cursor) (Value, error) {
	start := c.pos
	var sb strings.Builder

	if c.peekIs('-') {
		sb.WriteRune('-')
		c.advance()
	}
	for {
		r, ok := c.current()
		if !ok || !isNumberRune(r) {
			break
		}
		sb.WriteRune(r)
		c.advance()
	}

	literal := sb.String()
	if strings.ContainsAny(literal, ".eE") {
		f, err := strconv.ParseFloat(literal, 64)
		// 超出范围时 ParseFloat 返回 ±Inf，与溢出即无穷的语义一致
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, c.failAt(start, ErrInvalidNumber, "Invalid number", "number", literal)
		}
		return Float(f), nil
	}

	n, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		return nil, c.failAt(start, ErrInvalidNumber, "Invalid number", "number", literal)
	}
	return Int(n), nil
}

func parseBool(c *cursor) (Value, error) {
	switch {
	case c.consumeWord("true"):
		return Bool(true), nil
	case c.consumeWord("false"):
		return Bool(false), nil
	default:
		return nil, c.fail(ErrInvalidLiteral, "Invalid boolean", "true or false")
	}
}

func parseNull(c *cursor) (Value, error) {
	if c.consumeWord("null") {
		return Null{}, nil
	}
	return nil, c.fail(ErrInvalidLiteral, "Invalid null", "null")
}

// ========== 游标操作 ==========

func (c *cursor) current() (rune, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	return c.input[c.pos], true
}

func (c *cursor) peekIs(r rune) bool {
	cur, ok := c.current()
	return ok && cur == r
}

func (c *cursor) advance() {
	c.pos++
}

func (c *cursor) skipWhitespace() {
	for {
		r, ok := c.current()
		if !ok || !unicode.IsSpace(r) {
			return
		}
		c.advance()
	}
}

func (c *cursor) expect(r rune) error {
	if c.peekIs(r) {
		c.advance()
		return nil
	}
	expected := fmt.Sprintf("'%c'", r)
	return c.fail(ErrExpectedToken, "Expected "+expected, expected)
}

// consumeWord 匹配整个关键字；失败时回退到起点
func (c *cursor) consumeWord(word string) bool {
	start := c.pos
	for _, expected := range word {
		if !c.peekIs(expected) {
			c.pos = start
			return false
		}
		c.advance()
	}
	return true
}

func (c *cursor) enter() error {
	c.depth++
	if c.depth > MaxDepth {
		return c.fail(ErrMaxDepth, fmt.Sprintf("Nesting deeper than %d levels", MaxDepth), "shallower nesting")
	}
	return nil
}

func (c *cursor) leave() {
	c.depth--
}

func (c *cursor) fail(kind error, msg, expected string) *ParseError {
	found := endOfInput
	if r, ok := c.current(); ok {
		found = strconv.QuoteRune(r)
	}
	return c.failAt(c.pos, kind, msg, expected, found)
}

func (c *cursor) failAt(offset int, kind error, msg, expected, found string) *ParseError {
	return &ParseError{
		Kind:     kind,
		Message:  msg,
		Offset:   offset,
		Expected: expected,
		Found:    found,
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNumberRune(r rune) bool {
	return isDigit(r) || r == '.' || r == 'e' || r == 'E' || r == '+' || r == '-'
}
