package flowcnt

import (
	"context"
	"fmt"
	"io"

	"github.com/livp123/flowstat/internal/config"
	"github.com/livp123/flowstat/internal/counterdb"
	"github.com/livp123/flowstat/internal/utils/logger"
)

// Stats ties the collector, diff engine, snapshot store and renderer
// together for one counter type. One invocation performs at most one
// snapshot load and at most one conditional save.
// Stats 将采集器、差分引擎、快照存储和渲染器组合在一起，服务于一种
// 计数器类型。单次调用最多执行一次快照加载和最多一次条件保存。
type Stats struct {
	typ       Type
	collector *Collector
	snapshots *SnapshotStore
	renderer  *Renderer
}

// NewStats builds the full pipeline for one counter type. dial may be
// nil to connect to the real counters database.
// NewStats 为一种计数器类型构建完整管线。dial 为 nil 时连接真实的
// 计数器数据库。
func NewStats(typ Type, cfg *config.Config, dial counterdb.Dialer, uid int) *Stats {
	return &Stats{
		typ:       typ,
		collector: NewCollector(typ, counterdb.NewNamespaces(cfg, dial)),
		snapshots: NewSnapshotStore(cfg.SnapshotDir, typ.Name, uid),
		renderer:  NewRenderer(typ, cfg.MultiNamespace()),
	}
}

// ShowOptions controls one Show invocation.
// ShowOptions 控制一次 Show 调用。
type ShowOptions struct {
	Namespace string
	Filter    string
	JSON      bool
}

// Show collects current readings, diffs them against the persisted
// baseline, rewrites the baseline when the diff engine marked it stale,
// and renders the result. Store errors abort before anything is printed.
// Show 采集当前读数，相对持久化基线做差分，在差分引擎判定基线失效时
// 重写基线，并渲染结果。存储错误在打印任何内容之前终止。
func (s *Stats) Show(ctx context.Context, w io.Writer, opts ShowOptions) error {
	filter, err := CompileFilter(opts.Filter)
	if err != nil {
		return err
	}

	current, err := s.collector.Collect(ctx, opts.Namespace)
	if err != nil {
		return err
	}

	baseline := s.snapshots.Load()
	if Diff(baseline, current) {
		logger.Get(ctx).Debugf("baseline for %s counters went stale, rewriting %s", s.typ.Name, s.snapshots.Path())
		s.snapshots.Save(baseline)
	}

	if err := filter.Apply(current); err != nil {
		return err
	}
	return s.renderer.Render(w, current, opts.JSON)
}

// Clear rebases the local comparison baseline to the current absolute
// readings. The underlying store counters are never touched. With a
// namespace restriction, only that namespace's baseline is replaced;
// other namespaces keep their previous baseline.
// Clear 将本地比较基线重置为当前绝对读数。底层存储计数器永远不会被
// 修改。指定命名空间时仅替换该命名空间的基线；其他命名空间保留原有
// 基线。
func (s *Stats) Clear(ctx context.Context, w io.Writer, namespace string) error {
	current, err := s.collector.Collect(ctx, namespace)
	if err != nil {
		return err
	}

	snap := s.snapshots.Load()
	if snap == nil {
		snap = make(ReadingSet)
	}
	for ns, entities := range current {
		snap[ns] = entities
	}
	s.snapshots.Save(snap)

	fmt.Fprintf(w, "Cleared %s counters\n", s.typ.Name)
	return nil
}

// DeleteBaseline removes any persisted baseline for this type and user.
// DeleteBaseline 删除该类型和用户的所有持久化基线。
func (s *Stats) DeleteBaseline() {
	s.snapshots.Delete()
}
