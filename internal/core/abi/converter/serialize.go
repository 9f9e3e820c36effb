package converter

import (
	"fmt"
	"strings"
	"unicode"
)

// Serialize 将签名列表序列化为 JSON 字符串数组
//
// pretty 模式每行一个元素、两空格缩进，结尾的 "]" 后不带换行；
// compact 模式没有任何空白。空列表两种模式都输出 "[]"。
func Serialize(items []string, pretty bool) string {
	if len(items) == 0 {
		return "[]"
	}
	if pretty {
		return serializePretty(items)
	}
	return serializeCompact(items)
}

func serializePretty(items []string) string {
	var sb strings.Builder
	sb.WriteString("[\n")
	for i, s := range items {
		sb.WriteString("  \"")
		sb.WriteString(Escape(s))
		sb.WriteByte('"')
		if i < len(items)-1 {
			sb.WriteByte(',')
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte(']')
	return sb.String()
}

func serializeCompact(items []string) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, s := range items {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(Escape(s))
		sb.WriteByte('"')
	}
	sb.WriteByte(']')
	return sb.String()
}

// Escape 转义 JSON 字符串内容
//
// 其它控制字符输出为 \u 加 4 位小写十六进制；非控制字符（包括非 ASCII）原样输出。
func Escape(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if unicode.IsControl(r) {
				fmt.Fprintf(&sb, `\u%04x`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}
