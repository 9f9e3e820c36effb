package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weisyn/abi2human/pkg/types"
)

func param(name, typ string) types.Parameter {
	return types.Parameter{Name: types.StringPtr(name), Type: typ}
}

func indexedParam(name, typ string) types.Parameter {
	p := param(name, typ)
	p.Indexed = types.BoolPtr(true)
	return p
}

func output(typ string) types.ReturnParameter {
	return types.ReturnParameter{Type: typ}
}

// TestFormat 测试各类条目的规范签名
func TestFormat(t *testing.T) {
	cases := []struct {
		name  string
		entry types.Entry
		want  string
	}{
		{
			name: "函数：两个命名输入与一个匿名输出",
			entry: types.Entry{
				Type:            types.EntryFunction,
				Name:            types.StringPtr("transfer"),
				Inputs:          []types.Parameter{param("to", "address"), param("amount", "uint256")},
				Outputs:         []types.ReturnParameter{output("bool")},
				StateMutability: types.StringPtr("nonpayable"),
			},
			want: "function transfer(address to, uint256 amount) returns (bool)",
		},
		{
			name: "事件：indexed 参数",
			entry: types.Entry{
				Type: types.EntryEvent,
				Name: types.StringPtr("Transfer"),
				Inputs: []types.Parameter{
					indexedParam("from", "address"),
					indexedParam("to", "address"),
					param("value", "uint256"),
				},
			},
			want: "event Transfer(address indexed from, address indexed to, uint256 value)",
		},
		{
			name: "构造函数",
			entry: types.Entry{
				Type:   types.EntryConstructor,
				Inputs: []types.Parameter{param("initialSupply", "uint256")},
			},
			want: "constructor(uint256 initialSupply)",
		},
		{
			name:  "payable fallback",
			entry: types.Entry{Type: types.EntryFallback, StateMutability: types.StringPtr("payable")},
			want:  "fallback() external payable",
		},
		{
			name:  "非 payable fallback",
			entry: types.Entry{Type: types.EntryFallback},
			want:  "fallback() external",
		},
		{
			name: "receive 忽略其它字段",
			entry: types.Entry{
				Type:            types.EntryReceive,
				Name:            types.StringPtr("ignored"),
				Inputs:          []types.Parameter{param("x", "uint8")},
				StateMutability: types.StringPtr("view"),
			},
			want: "receive() external payable",
		},
		{
			name: "view 函数",
			entry: types.Entry{
				Type:            types.EntryFunction,
				Name:            types.StringPtr("balanceOf"),
				Inputs:          []types.Parameter{param("account", "address")},
				Outputs:         []types.ReturnParameter{output("uint256")},
				StateMutability: types.StringPtr("view"),
			},
			want: "function balanceOf(address account) view returns (uint256)",
		},
		{
			name: "无输入的 payable 函数",
			entry: types.Entry{
				Type:            types.EntryFunction,
				Name:            types.StringPtr("deposit"),
				StateMutability: types.StringPtr("payable"),
			},
			want: "function deposit() payable",
		},
		{
			name: "pure 函数与命名返回值",
			entry: types.Entry{
				Type:            types.EntryFunction,
				Name:            types.StringPtr("split"),
				Inputs:          []types.Parameter{{Type: "bytes32"}},
				Outputs:         []types.ReturnParameter{{Name: types.StringPtr("a"), Type: "uint128"}, {Name: types.StringPtr(""), Type: "uint128"}},
				StateMutability: types.StringPtr("pure"),
			},
			want: "function split(bytes32) pure returns (uint128 a, uint128)",
		},
		{
			name: "空输出列表不产生 returns",
			entry: types.Entry{
				Type:    types.EntryFunction,
				Name:    types.StringPtr("ping"),
				Outputs: []types.ReturnParameter{},
			},
			want: "function ping()",
		},
		{
			name: "输入名称为空串时仍输出分隔空格",
			entry: types.Entry{
				Type:   types.EntryFunction,
				Name:   types.StringPtr("f"),
				Inputs: []types.Parameter{param("", "uint256")},
			},
			want: "function f(uint256 )",
		},
		{
			name: "匿名 indexed 事件参数",
			entry: types.Entry{
				Type:   types.EntryEvent,
				Name:   types.StringPtr("Ping"),
				Inputs: []types.Parameter{{Type: "bytes32", Indexed: types.BoolPtr(true)}, {Type: "uint8", Indexed: types.BoolPtr(false)}},
			},
			want: "event Ping(bytes32 indexed, uint8)",
		},
		{
			name:  "缺少名称的函数",
			entry: types.Entry{Type: types.EntryFunction},
			want:  "function ()",
		},
		{
			name:  "类型字符串原样输出",
			entry: types.Entry{Type: types.EntryConstructor, Inputs: []types.Parameter{{Type: "foo[2][]"}}},
			want:  "constructor(foo[2][])",
		},
		{
			name:  "未知类型",
			entry: types.Entry{Type: "error", Name: types.StringPtr("Unauthorized")},
			want:  "unknown",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Format(tc.entry))
		})
	}
}

// TestFormatIsPure 重复调用结果一致
func TestFormatIsPure(t *testing.T) {
	e := types.Entry{
		Type:    types.EntryFunction,
		Name:    types.StringPtr("approve"),
		Inputs:  []types.Parameter{param("spender", "address"), param("value", "uint256")},
		Outputs: []types.ReturnParameter{output("bool")},
	}

	first := Format(e)
	Format(types.Entry{Type: types.EntryReceive})
	assert.Equal(t, first, Format(e))
}
