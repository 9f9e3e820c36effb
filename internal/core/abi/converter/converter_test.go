package converter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/abi2human/internal/core/abi/jsonparser"
	"github.com/weisyn/abi2human/internal/core/abi/signature"
	"github.com/weisyn/abi2human/pkg/types"
)

const erc20ABI = `[
	{"type": "constructor", "inputs": [{"name": "initialSupply", "type": "uint256"}], "stateMutability": "nonpayable"},
	{"type": "function", "name": "transfer", "stateMutability": "nonpayable",
	 "inputs": [{"name": "to", "type": "address"}, {"name": "amount", "type": "uint256"}],
	 "outputs": [{"name": "", "type": "bool"}]},
	{"type": "function", "name": "balanceOf", "stateMutability": "view",
	 "inputs": [{"name": "account", "type": "address"}],
	 "outputs": [{"type": "uint256"}]},
	{"type": "function", "name": "deposit", "stateMutability": "payable", "inputs": []},
	{"type": "event", "name": "Transfer", "anonymous": false,
	 "inputs": [{"name": "from", "type": "address", "indexed": true},
	            {"name": "to", "type": "address", "indexed": true},
	            {"name": "value", "type": "uint256", "indexed": false}]},
	{"type": "fallback", "stateMutability": "payable"},
	{"type": "receive", "stateMutability": "payable"}
]`

var erc20Signatures = []string{
	"constructor(uint256 initialSupply)",
	"function transfer(address to, uint256 amount) returns (bool)",
	"function balanceOf(address account) view returns (uint256)",
	"function deposit() payable",
	"event Transfer(address indexed from, address indexed to, uint256 value)",
	"fallback() external payable",
	"receive() external payable",
}

// TestParseAndRender 测试完整流水线
func TestParseAndRender(t *testing.T) {
	entries, err := Parse(erc20ABI)
	require.NoError(t, err)
	require.Len(t, entries, 7)
	assert.Equal(t, erc20Signatures, Render(entries))
}

// TestParseWrappedObject {"abi": [...]} 与裸数组等价
func TestParseWrappedObject(t *testing.T) {
	bare, err := Parse(erc20ABI)
	require.NoError(t, err)

	wrapped, err := Parse(`{"contractName": "Token", "abi": ` + erc20ABI + `, "bytecode": "0x00"}`)
	require.NoError(t, err)

	assert.Equal(t, bare, wrapped)
	assert.Equal(t, Render(bare), Render(wrapped))
}

// TestParseShapeErrors 根节点形状错误
func TestParseShapeErrors(t *testing.T) {
	for _, input := range []string{
		`{"contractName": "Token"}`,
		`{"abi": {"type": "function"}}`,
		`{"abi": "[]"}`,
		`"abi"`,
		`12`,
		``,
	} {
		_, err := Parse(input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, ErrInvalidRoot, "input %q", input)
	}
}

// TestParseStructuralError 结构性错误原样传播
func TestParseStructuralError(t *testing.T) {
	_, err := Parse(`[{"type": "function",}]`)
	require.Error(t, err)

	var perr *jsonparser.ParseError
	require.ErrorAs(t, err, &perr)
	assert.NotErrorIs(t, err, ErrInvalidRoot)
}

// TestRenderFilters 过滤规则
func TestRenderFilters(t *testing.T) {
	entries, err := Parse(`[
		{"type": ""},
		{"type": "unknown", "name": "x"},
		{"type": "error", "name": "Unauthorized", "inputs": []},
		{"type": "receive"}
	]`)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	// 未识别但非 "unknown" 的类型仍然输出 "unknown"
	assert.Equal(t, []string{"unknown", "receive() external payable"}, Render(entries))
}

// TestRenderEmpty 空结果不是错误
func TestRenderEmpty(t *testing.T) {
	entries, err := Parse(`[1, "x", {"name": "noType"}]`)
	require.NoError(t, err)
	assert.Empty(t, entries)

	out := Render(entries)
	assert.NotNil(t, out)
	assert.Empty(t, out)
	assert.Equal(t, "[]", Serialize(out, true))
}

// TestRenderWithSelectors 选择器注释
func TestRenderWithSelectors(t *testing.T) {
	entries, err := Parse(erc20ABI)
	require.NoError(t, err)

	out := Render(entries, WithSelectors())
	require.Len(t, out, 7)
	assert.Equal(t, "constructor(uint256 initialSupply)", out[0])
	assert.Equal(t, "function transfer(address to, uint256 amount) returns (bool) // 0xa9059cbb", out[1])
	assert.Equal(t, "function balanceOf(address account) view returns (uint256) // 0x70a08231", out[2])
	assert.Equal(t, "event Transfer(address indexed from, address indexed to, uint256 value) // 0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef", out[4])
	assert.Equal(t, "receive() external payable", out[6])
}

// TestParseWithRepair 修复畸形输入
func TestParseWithRepair(t *testing.T) {
	t.Run("严格输入无需修复", func(t *testing.T) {
		entries, repaired, err := ParseWithRepair(`[{"type": "receive"}]`)
		require.NoError(t, err)
		assert.False(t, repaired)
		assert.Len(t, entries, 1)
	})

	t.Run("尾逗号被修复", func(t *testing.T) {
		_, err := Parse(`[{"type": "receive"},]`)
		require.Error(t, err)

		entries, repaired, err := ParseWithRepair(`[{"type": "receive"},]`)
		require.NoError(t, err)
		assert.True(t, repaired)
		assert.Equal(t, []string{"receive() external payable"}, Render(entries))
	})

	t.Run("形状错误不修复", func(t *testing.T) {
		_, repaired, err := ParseWithRepair(`"not an abi"`)
		require.Error(t, err)
		assert.False(t, repaired)
		assert.ErrorIs(t, err, ErrInvalidRoot)
	})
}

// TestSignatures 解析与渲染的组合入口
func TestSignatures(t *testing.T) {
	out, err := Signatures(erc20ABI, false)
	require.NoError(t, err)
	assert.Equal(t, erc20Signatures, out)

	_, err = Signatures(`[`, false)
	assert.Error(t, err)
}

// TestRoundTripThroughText 条目经文本往返后渲染结果不变
func TestRoundTripThroughText(t *testing.T) {
	entries := []types.Entry{
		{
			Type:            types.EntryFunction,
			Name:            types.StringPtr("swap"),
			Inputs:          []types.Parameter{{Name: types.StringPtr("path"), Type: "address[]"}, {Type: "uint256"}},
			Outputs:         []types.ReturnParameter{{Name: types.StringPtr("out"), Type: "uint256"}, {Name: types.StringPtr(""), Type: "bool"}},
			StateMutability: types.StringPtr("payable"),
		},
		{
			Type: types.EntryEvent,
			Name: types.StringPtr("Log \"quoted\"\tname"),
			Inputs: []types.Parameter{
				{Name: types.StringPtr("a"), Type: "bytes32", Indexed: types.BoolPtr(true)},
				{Name: types.StringPtr("b\\c"), Type: "string", Indexed: types.BoolPtr(false)},
			},
			Anonymous: types.BoolPtr(false),
		},
		{Type: types.EntryConstructor, Inputs: []types.Parameter{{Name: types.StringPtr("é"), Type: "uint8"}}},
		{Type: types.EntryFallback},
		{Type: types.EntryReceive, StateMutability: types.StringPtr("payable")},
	}

	for _, e := range entries {
		text, err := json.Marshal([]types.Entry{e})
		require.NoError(t, err)

		parsed, err := Parse(string(text))
		require.NoError(t, err)
		require.Len(t, parsed, 1)
		assert.Equal(t, signature.Format(e), signature.Format(parsed[0]))
	}
}
