package flowcnt

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/livp123/flowstat/internal/config"
	flowerrors "github.com/livp123/flowstat/pkg/errors"
)

// NotAvailable is the display sentinel for a counter field the store
// does not have.
// NotAvailable 是存储中缺失计数器字段的显示占位符。
const NotAvailable = "N/A"

// Counter is a raw counter value with an explicit availability bit.
// An unavailable counter renders as the N/A sentinel and never takes
// part in diff arithmetic.
// Counter 是带有显式可用位的原始计数器值。
// 不可用的计数器显示为 N/A 占位符，且永远不参与差分运算。
type Counter struct {
	Value uint64 `yaml:"value"`
	Valid bool   `yaml:"valid"`
}

// NewCounter returns an available counter holding v.
// NewCounter 返回一个持有 v 的可用计数器。
func NewCounter(v uint64) Counter {
	return Counter{Value: v, Valid: true}
}

// ParseCounter converts a raw store field into a Counter. A missing field
// (ok == false) or a non-decimal value yields an unavailable counter.
// ParseCounter 将原始存储字段转换为 Counter。缺失的字段（ok == false）
// 或非十进制值得到不可用的计数器。
func ParseCounter(raw string, ok bool) Counter {
	if !ok {
		return Counter{}
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return Counter{}
	}
	return Counter{Value: v, Valid: true}
}

// String renders the counter as a plain decimal or the sentinel.
// String 将计数器渲染为纯十进制或占位符。
func (c Counter) String() string {
	if !c.Valid {
		return NotAvailable
	}
	return strconv.FormatUint(c.Value, 10)
}

// MarshalJSON emits the raw number, or the sentinel string when the
// counter is unavailable.
// MarshalJSON 输出原始数字，计数器不可用时输出占位符字符串。
func (c Counter) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return json.Marshal(NotAvailable)
	}
	return json.Marshal(c.Value)
}

// Reading is one entity's sampled counters. Packets and Bytes are the
// only diffable fields; Rate is read precomputed from the store and is
// never compared; OID is the store-assigned identity used to detect
// that an entity was deleted and recreated.
// Reading 是单个实体的一次计数器采样。Packets 和 Bytes 是仅有的
// 可差分字段；Rate 从存储中读取预计算值且永远不参与比较；
// OID 是存储分配的标识，用于检测实体被删除后重建。
type Reading struct {
	Packets Counter `yaml:"packets"`
	Bytes   Counter `yaml:"bytes"`
	Rate    string  `yaml:"rate"`
	OID     string  `yaml:"oid"`
}

// ReadingSet maps namespace -> entity name -> Reading. It is built fresh
// on every run; the same shape is persisted as the baseline snapshot.
// ReadingSet 按 命名空间 -> 实体名 -> Reading 索引。每次运行时重新构建；
// 同样的结构被持久化为基线快照。
type ReadingSet map[string]map[string]Reading

// Type describes one counter family: which name-map table lists its
// entities and how its columns are labeled.
// Type 描述一个计数器族：哪个名称映射表列出其实体，以及各列如何命名。
type Type struct {
	Name         string
	NameMapTable string
	RateField    string
	EntityHeader string
	RateHeader   string
}

var counterTypes = map[string]Type{
	"trap": {
		Name:         "trap",
		NameMapTable: config.TableTrapNameMap,
		RateField:    config.FieldRxRate,
		EntityHeader: "Trap Name",
		RateHeader:   "PPS",
	},
	"route": {
		Name:         "route",
		NameMapTable: config.TableRouteNameMap,
		RateField:    config.FieldRxRate,
		EntityHeader: "Route Pattern",
		RateHeader:   "PPS",
	},
}

// LookupType resolves a counter type by name.
// LookupType 按名称解析计数器类型。
func LookupType(name string) (Type, error) {
	typ, ok := counterTypes[name]
	if !ok {
		return Type{}, flowerrors.NewCounterTypeError(name)
	}
	return typ, nil
}

// TypeNames returns the supported counter type names for help output.
// TypeNames 返回支持的计数器类型名称，用于帮助输出。
func TypeNames() []string {
	names := make([]string, 0, len(counterTypes))
	for name := range counterTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
