package flowcnt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func reading(packets, bytes uint64, oid string) Reading {
	return Reading{
		Packets: NewCounter(packets),
		Bytes:   NewCounter(bytes),
		Rate:    "10.00",
		OID:     oid,
	}
}

// TestDiff_NoBaseline tests that an absent baseline leaves values untouched
// TestDiff_NoBaseline 测试基线缺失时数值保持不变
func TestDiff_NoBaseline(t *testing.T) {
	current := ReadingSet{
		"": {"bgp": reading(100, 500, "oid:0x1")},
	}

	assert.False(t, Diff(nil, current))
	assert.Equal(t, reading(100, 500, "oid:0x1"), current[""]["bgp"])

	assert.False(t, Diff(ReadingSet{}, current))
	assert.Equal(t, reading(100, 500, "oid:0x1"), current[""]["bgp"])
}

// TestDiff_Normal tests plain delta computation
// TestDiff_Normal 测试普通增量计算
func TestDiff_Normal(t *testing.T) {
	baseline := ReadingSet{
		"": {"bgp": reading(100, 500, "oid:0x1")},
	}
	current := ReadingSet{
		"": {"bgp": reading(150, 620, "oid:0x1")},
	}

	dirty := Diff(baseline, current)

	assert.False(t, dirty)
	assert.Equal(t, NewCounter(50), current[""]["bgp"].Packets)
	assert.Equal(t, NewCounter(120), current[""]["bgp"].Bytes)
	// Rate and identity carry the current values
	// 速率和标识携带当前值
	assert.Equal(t, "10.00", current[""]["bgp"].Rate)
	assert.Equal(t, "oid:0x1", current[""]["bgp"].OID)
	// Baseline untouched in the normal case
	// 正常情况下基线不变
	assert.Equal(t, NewCounter(100), baseline[""]["bgp"].Packets)
}

// TestDiff_IdentityChanged tests the recreated-entity policy
// TestDiff_IdentityChanged 测试实体重建策略
func TestDiff_IdentityChanged(t *testing.T) {
	baseline := ReadingSet{
		"": {"bgp": reading(100, 500, "oid:0x1")},
	}
	current := ReadingSet{
		"": {"bgp": reading(10, 20, "oid:0x2")},
	}

	dirty := Diff(baseline, current)

	assert.True(t, dirty)
	// Current values pass through as a diff against a zero baseline
	// 当前值作为相对零基线的差分原样通过
	assert.Equal(t, NewCounter(10), current[""]["bgp"].Packets)
	assert.Equal(t, NewCounter(20), current[""]["bgp"].Bytes)
	// Baseline drops to zero and takes the new identity
	// 基线归零并采用新标识
	assert.Equal(t, NewCounter(0), baseline[""]["bgp"].Packets)
	assert.Equal(t, NewCounter(0), baseline[""]["bgp"].Bytes)
	assert.Equal(t, "oid:0x2", baseline[""]["bgp"].OID)
}

// TestDiff_IdentityChangeWinsOverRegression tests the precedence order when
// an entity is recreated and its raw values regressed at the same time
// TestDiff_IdentityChangeWinsOverRegression 测试实体重建与数值回退同时
// 发生时的优先级顺序
func TestDiff_IdentityChangeWinsOverRegression(t *testing.T) {
	baseline := ReadingSet{
		"": {"lldp": reading(200, 300, "oid:0x1")},
	}
	current := ReadingSet{
		"": {"lldp": reading(50, 60, "oid:0x2")},
	}

	dirty := Diff(baseline, current)

	assert.True(t, dirty)
	assert.Equal(t, NewCounter(50), current[""]["lldp"].Packets)
	assert.Equal(t, NewCounter(60), current[""]["lldp"].Bytes)
	// The identity-change branch updated the baseline OID, proving it ran
	// first; the regression branch never changes the OID.
	// 标识变化分支更新了基线 OID，证明它先执行；回退分支从不修改 OID。
	assert.Equal(t, "oid:0x2", baseline[""]["lldp"].OID)
}

// TestDiff_RegressionResetsAllFields tests that one regressed field rebases
// every diffable field of the entity
// TestDiff_RegressionResetsAllFields 测试单个字段回退会重置该实体的所有
// 可差分字段
func TestDiff_RegressionResetsAllFields(t *testing.T) {
	baseline := ReadingSet{
		"": {"bgp": reading(200, 300, "oid:0x1")},
	}
	current := ReadingSet{
		"": {"bgp": reading(50, 310, "oid:0x1")},
	}

	dirty := Diff(baseline, current)

	assert.True(t, dirty)
	// Both fields diff from zero even though only packets regressed
	// 即使只有 packets 回退，两个字段都相对零差分
	assert.Equal(t, NewCounter(50), current[""]["bgp"].Packets)
	assert.Equal(t, NewCounter(310), current[""]["bgp"].Bytes)
	assert.Equal(t, NewCounter(0), baseline[""]["bgp"].Packets)
	assert.Equal(t, NewCounter(0), baseline[""]["bgp"].Bytes)
	assert.Equal(t, "oid:0x1", baseline[""]["bgp"].OID)
}

// TestDiff_NeverNegative tests that no diffed output field is ever negative
// TestDiff_NeverNegative 测试任何差分输出字段都不会为负
func TestDiff_NeverNegative(t *testing.T) {
	tests := []struct {
		name     string
		baseline Reading
		current  Reading
	}{
		{"equal values", reading(100, 100, "x"), reading(100, 100, "x")},
		{"normal growth", reading(1, 2, "x"), reading(1000, 2000, "x")},
		{"packets regressed", reading(500, 100, "x"), reading(10, 200, "x")},
		{"bytes regressed", reading(100, 500, "x"), reading(200, 10, "x")},
		{"both regressed", reading(500, 500, "x"), reading(1, 1, "x")},
		{"identity changed", reading(500, 500, "x"), reading(1, 1, "y")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseline := ReadingSet{"": {"e": tt.baseline}}
			current := ReadingSet{"": {"e": tt.current}}
			Diff(baseline, current)

			got := current[""]["e"]
			// Counters are unsigned, so a negative delta would show up as
			// a huge wrapped value; bound by the raw current value instead.
			// 计数器是无符号的，负增量会表现为巨大的回绕值；
			// 因此用原始当前值作为上界。
			assert.LessOrEqual(t, got.Packets.Value, tt.current.Packets.Value)
			assert.LessOrEqual(t, got.Bytes.Value, tt.current.Bytes.Value)
		})
	}
}

// TestDiff_NewEntityPassthrough tests that an entity absent from the
// baseline keeps its absolute values
// TestDiff_NewEntityPassthrough 测试基线中不存在的实体保留其绝对值
func TestDiff_NewEntityPassthrough(t *testing.T) {
	baseline := ReadingSet{
		"": {"bgp": reading(100, 500, "oid:0x1")},
	}
	current := ReadingSet{
		"": {
			"bgp":  reading(150, 620, "oid:0x1"),
			"lldp": reading(7, 9, "oid:0x9"),
		},
	}

	dirty := Diff(baseline, current)

	assert.False(t, dirty)
	assert.Equal(t, NewCounter(50), current[""]["bgp"].Packets)
	assert.Equal(t, NewCounter(7), current[""]["lldp"].Packets)
	assert.Equal(t, NewCounter(9), current[""]["lldp"].Bytes)
}

// TestDiff_RemovedEntityIgnored tests that baseline-only entities never
// reappear in the output
// TestDiff_RemovedEntityIgnored 测试仅存在于基线的实体不会重新出现在输出中
func TestDiff_RemovedEntityIgnored(t *testing.T) {
	baseline := ReadingSet{
		"": {
			"bgp":  reading(100, 500, "oid:0x1"),
			"gone": reading(1, 1, "oid:0x3"),
		},
	}
	current := ReadingSet{
		"": {"bgp": reading(150, 620, "oid:0x1")},
	}

	dirty := Diff(baseline, current)

	assert.False(t, dirty)
	assert.NotContains(t, current[""], "gone")
}

// TestDiff_NamespaceIsolation tests that diffing in one namespace never
// reads or mutates another
// TestDiff_NamespaceIsolation 测试一个命名空间的差分不会读取或修改另一个
func TestDiff_NamespaceIsolation(t *testing.T) {
	baseline := ReadingSet{
		"asic0": {"bgp": reading(100, 500, "oid:0x1")},
		"asic1": {"bgp": reading(999, 999, "oid:0x5")},
	}
	current := ReadingSet{
		"asic0": {"bgp": reading(150, 620, "oid:0x1")},
		"asic1": {"bgp": reading(999, 999, "oid:0x5")},
	}

	dirty := Diff(baseline, current)

	assert.False(t, dirty)
	assert.Equal(t, NewCounter(50), current["asic0"]["bgp"].Packets)
	// Same name in the other namespace diffs against its own baseline
	// 另一命名空间中的同名实体相对自己的基线差分
	assert.Equal(t, NewCounter(0), current["asic1"]["bgp"].Packets)
	assert.Equal(t, NewCounter(999), baseline["asic1"]["bgp"].Packets)
}

// TestDiff_NamespaceOnlyInCurrent tests passthrough for a namespace the
// baseline has never seen
// TestDiff_NamespaceOnlyInCurrent 测试基线从未见过的命名空间原样通过
func TestDiff_NamespaceOnlyInCurrent(t *testing.T) {
	baseline := ReadingSet{
		"asic0": {"bgp": reading(100, 500, "oid:0x1")},
	}
	current := ReadingSet{
		"asic0": {"bgp": reading(150, 620, "oid:0x1")},
		"asic1": {"bgp": reading(10, 20, "oid:0x5")},
	}

	dirty := Diff(baseline, current)

	assert.False(t, dirty)
	assert.Equal(t, NewCounter(10), current["asic1"]["bgp"].Packets)
}

// TestDiff_UnavailableFieldsExcluded tests that sentinel fields never enter
// diff arithmetic
// TestDiff_UnavailableFieldsExcluded 测试占位符字段永远不参与差分运算
func TestDiff_UnavailableFieldsExcluded(t *testing.T) {
	baseline := ReadingSet{
		"": {"bgp": {Packets: NewCounter(100), Bytes: Counter{}, Rate: "1.00", OID: "oid:0x1"}},
	}
	current := ReadingSet{
		"": {"bgp": {Packets: NewCounter(150), Bytes: Counter{}, Rate: "2.00", OID: "oid:0x1"}},
	}

	dirty := Diff(baseline, current)

	assert.False(t, dirty)
	assert.Equal(t, NewCounter(50), current[""]["bgp"].Packets)
	// The unavailable field passes through untouched and is not treated
	// as a regression
	// 不可用字段原样通过，且不被当作回退
	assert.False(t, current[""]["bgp"].Bytes.Valid)
	assert.Equal(t, NotAvailable, current[""]["bgp"].Bytes.String())
}
