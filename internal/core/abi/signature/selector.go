package signature

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/weisyn/abi2human/pkg/types"
)

const tupleType = "tuple"

// Canonical 返回用于哈希的规范签名，如 transfer(address,uint256)
//
// 只有 function 与 event 有规范签名。tuple 类型按 components 展开为 (t1,t2)，
// 数组后缀保留在右括号之后。
func Canonical(e types.Entry) (string, bool) {
	if e.Type != types.EntryFunction && e.Type != types.EntryEvent {
		return "", false
	}

	parts := make([]string, 0, len(e.Inputs))
	for _, p := range e.Inputs {
		parts = append(parts, canonicalType(p))
	}
	return e.DisplayName() + "(" + strings.Join(parts, ",") + ")", true
}

func canonicalType(p types.Parameter) string {
	if !strings.HasPrefix(p.Type, tupleType) {
		return p.Type
	}

	parts := make([]string, 0, len(p.Components))
	for _, c := range p.Components {
		parts = append(parts, canonicalType(c))
	}
	return "(" + strings.Join(parts, ",") + ")" + strings.TrimPrefix(p.Type, tupleType)
}

// Selector 函数返回 4 字节选择器，非匿名事件返回 32 字节 topic
func Selector(e types.Entry) (string, bool) {
	if e.Type == types.EntryEvent && e.IsAnonymous() {
		return "", false
	}

	sig, ok := Canonical(e)
	if !ok {
		return "", false
	}

	hash := crypto.Keccak256([]byte(sig))
	if e.Type == types.EntryFunction {
		return hexutil.Encode(hash[:4]), true
	}
	return hexutil.Encode(hash), true
}
