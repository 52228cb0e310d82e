package flowcnt

import (
	"encoding/json"
	"io"
	"math/big"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/maruel/natural"
	"github.com/olekukonko/tablewriter"
)

// Renderer turns a diffed ReadingSet into a text table or a JSON record
// list. Namespaces and entity names are sorted in natural (human) order;
// the namespace column only appears on multi-namespace platforms.
// Renderer 将差分后的 ReadingSet 渲染为文本表格或 JSON 记录列表。
// 命名空间和实体名按自然（人类）顺序排序；命名空间列仅在多命名空间
// 平台上出现。
type Renderer struct {
	typ     Type
	multiNS bool
}

// NewRenderer creates a renderer for one counter type.
// NewRenderer 为一种计数器类型创建渲染器。
func NewRenderer(typ Type, multiNS bool) *Renderer {
	return &Renderer{typ: typ, multiNS: multiNS}
}

// record is one JSON output row. The field set mirrors the table columns.
// record 是一行 JSON 输出。字段集合与表格列一一对应。
type record struct {
	Namespace string  `json:"namespace,omitempty"`
	Name      string  `json:"name"`
	Packets   Counter `json:"packets"`
	Bytes     Counter `json:"bytes"`
	Rate      string  `json:"rate"`
}

// Render writes the reading set to w in the requested mode.
// Render 以请求的模式将读数集合写入 w。
func (r *Renderer) Render(w io.Writer, set ReadingSet, asJSON bool) error {
	records := r.sortedRecords(set)
	if asJSON {
		return r.renderJSON(w, records)
	}
	return r.renderTable(w, records)
}

// sortedRecords flattens the set into rows ordered by namespace then
// entity name, both naturally sorted.
// sortedRecords 将集合展平为按命名空间、实体名自然排序的行。
func (r *Renderer) sortedRecords(set ReadingSet) []record {
	namespaces := make([]string, 0, len(set))
	for ns := range set {
		namespaces = append(namespaces, ns)
	}
	sort.Slice(namespaces, func(i, j int) bool {
		return natural.Less(namespaces[i], namespaces[j])
	})

	var records []record
	for _, ns := range namespaces {
		entities := set[ns]
		names := make([]string, 0, len(entities))
		for name := range entities {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			return natural.Less(names[i], names[j])
		})

		for _, name := range names {
			reading := entities[name]
			rec := record{
				Name:    name,
				Packets: reading.Packets,
				Bytes:   reading.Bytes,
				Rate:    reading.Rate,
			}
			if r.multiNS {
				rec.Namespace = ns
			}
			records = append(records, rec)
		}
	}
	return records
}

// headers returns the column labels for this counter type.
// headers 返回该计数器类型的列标题。
func (r *Renderer) headers() []string {
	headers := []string{r.typ.EntityHeader, "Packets", "Bytes", r.typ.RateHeader}
	if r.multiNS {
		headers = append([]string{"Namespace"}, headers...)
	}
	return headers
}

// renderTable prints right-aligned, thousands-separated numbers.
// renderTable 打印右对齐、千位分隔的数字。
func (r *Renderer) renderTable(w io.Writer, records []record) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(r.headers())
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)

	alignment := []int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT}
	if r.multiNS {
		alignment = append([]int{tablewriter.ALIGN_LEFT}, alignment...)
	}
	table.SetColumnAlignment(alignment)

	for _, rec := range records {
		row := []string{rec.Name, formatCounter(rec.Packets), formatCounter(rec.Bytes), rec.Rate}
		if r.multiNS {
			row = append([]string{rec.Namespace}, row...)
		}
		table.Append(row)
	}
	table.Render()
	return nil
}

// renderJSON emits the record list with unformatted numbers.
// renderJSON 以未格式化的数字输出记录列表。
func (r *Renderer) renderJSON(w io.Writer, records []record) error {
	if records == nil {
		records = []record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// formatCounter renders a counter with thousands separators, or the
// sentinel when unavailable.
// formatCounter 以千位分隔渲染计数器，不可用时渲染占位符。
func formatCounter(c Counter) string {
	if !c.Valid {
		return NotAvailable
	}
	// Counters are unsigned 64-bit; go through big.Int so values past
	// the int64 range still format correctly.
	// 计数器为无符号 64 位；经由 big.Int 转换，超出 int64 范围的值
	// 仍能正确格式化。
	return humanize.BigComma(new(big.Int).SetUint64(c.Value))
}
