package flowcnt

import (
	"context"

	"github.com/livp123/flowstat/internal/config"
	"github.com/livp123/flowstat/internal/counterdb"
	"github.com/livp123/flowstat/internal/utils/logger"
)

// Collector reads current counter values from every namespace's store.
// It has no side effects beyond store reads; store errors abort the run.
// Collector 从每个命名空间的存储中读取当前计数器值。
// 除存储读取外没有副作用；存储错误会终止本次运行。
type Collector struct {
	typ        Type
	namespaces *counterdb.Namespaces
}

// NewCollector creates a collector for one counter type.
// NewCollector 为一种计数器类型创建采集器。
func NewCollector(typ Type, namespaces *counterdb.Namespaces) *Collector {
	return &Collector{typ: typ, namespaces: namespaces}
}

// Collect samples every entity of the counter type, visiting all
// configured namespaces or just the named one. A namespace with an empty
// name map yields an empty entity map, not an error.
// Collect 采样该计数器类型的所有实体，访问全部已配置命名空间或仅指定的
// 命名空间。名称映射为空的命名空间得到空实体表，而不是错误。
func (c *Collector) Collect(ctx context.Context, namespace string) (ReadingSet, error) {
	set := make(ReadingSet)
	err := c.namespaces.ForEach(ctx, namespace, func(ctx context.Context, ns string, conn counterdb.Connector) error {
		readings, err := c.collectNamespace(ctx, ns, conn)
		if err != nil {
			return err
		}
		set[ns] = readings
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// collectNamespace reads the name map and then every entity's raw
// counters and precomputed rate for one namespace.
// collectNamespace 读取名称映射，然后读取单个命名空间中每个实体的
// 原始计数器和预计算速率。
func (c *Collector) collectNamespace(ctx context.Context, ns string, conn counterdb.Connector) (map[string]Reading, error) {
	nameMap, err := conn.GetAll(ctx, c.typ.NameMapTable, "")
	if err != nil {
		return nil, err
	}

	readings := make(map[string]Reading, len(nameMap))
	for name, oid := range nameMap {
		packets, hasPackets, err := conn.Get(ctx, config.TableCounters, oid, config.FieldPackets)
		if err != nil {
			return nil, err
		}
		bytes, hasBytes, err := conn.Get(ctx, config.TableCounters, oid, config.FieldBytes)
		if err != nil {
			return nil, err
		}
		rate, hasRate, err := conn.Get(ctx, config.TableRates, oid, c.typ.RateField)
		if err != nil {
			return nil, err
		}
		if !hasRate {
			rate = NotAvailable
		}

		readings[name] = Reading{
			Packets: ParseCounter(packets, hasPackets),
			Bytes:   ParseCounter(bytes, hasBytes),
			Rate:    rate,
			OID:     oid,
		}
	}

	logger.Get(ctx).Debugf("collected %d %s entities from namespace %q", len(readings), c.typ.Name, ns)
	return readings, nil
}
