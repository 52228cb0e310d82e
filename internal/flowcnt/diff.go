package flowcnt

// Diff rewrites current in place so its diffable fields hold the delta
// against baseline, and rewrites baseline in place into the snapshot that
// should be persisted. It returns true when the persisted baseline went
// stale and must be rewritten.
//
// Per entity present on both sides, in order of precedence:
//
//  1. Identity changed: the entity was deleted and recreated, its raw
//     counters restarted at zero. The current values pass through
//     unchanged, the baseline's diffable fields drop to zero and it
//     takes the new identity. Dirty. This wins over the regression
//     check when both apply.
//  2. Regression: any diffable field went backward (device reset or
//     wrap). The baseline's diffable fields all drop to zero, so no
//     field ever shows a negative delta, and the current values pass
//     through unchanged. Dirty. The scan covers every diffable field
//     before anything is mutated.
//  3. Normal: every diffable field becomes current minus baseline.
//     Rate and identity always carry the current value.
//
// Entities or namespaces only present in current pass through with
// absolute values. Entities only present in baseline are left alone and
// never re-added to the output. An empty baseline means no diffing at
// all. Rows are value types, so each side is updated by reassignment and
// the two maps never alias.
//
// Diff 将 current 就地改写为相对 baseline 的增量，并将 baseline 就地
// 改写为应当持久化的快照。当持久化基线失效需要重写时返回 true。
//
// 对两侧都存在的每个实体，按优先级：
//
//  1. 标识变化：实体被删除后重建，原始计数器从零重新开始。当前值原样
//     通过，基线的可差分字段归零并采用新标识。置脏。与回退同时发生时
//     此分支优先。
//  2. 回退：任一可差分字段变小（设备重置或回绕）。基线的所有可差分
//     字段归零，因此任何字段都不会显示负增量，当前值原样通过。置脏。
//     扫描在修改任何字段之前覆盖所有可差分字段。
//  3. 正常：每个可差分字段变为 当前值减基线值。速率和标识始终携带
//     当前值。
//
// 仅存在于 current 的实体或命名空间以绝对值原样通过。仅存在于
// baseline 的实体保持不动，不会被重新加入输出。空基线意味着完全不做
// 差分。行是值类型，两侧都通过重新赋值更新，两个 map 永不别名。
func Diff(baseline, current ReadingSet) bool {
	if len(baseline) == 0 {
		return false
	}

	dirty := false
	for ns, entities := range current {
		base, ok := baseline[ns]
		if !ok {
			continue
		}
		for name, cur := range entities {
			old, ok := base[name]
			if !ok {
				continue
			}

			if cur.OID != old.OID {
				// Recreated entity: diff against a zero baseline
				// 重建的实体：相对零基线差分
				old.Packets = zeroCounter(old.Packets)
				old.Bytes = zeroCounter(old.Bytes)
				old.OID = cur.OID
				base[name] = old
				dirty = true
				continue
			}

			if regressed(old.Packets, cur.Packets) || regressed(old.Bytes, cur.Bytes) {
				// One regressed field rebases every diffable field
				// 单个字段回退会重置所有可差分字段的基线
				old.Packets = zeroCounter(old.Packets)
				old.Bytes = zeroCounter(old.Bytes)
				base[name] = old
				dirty = true
				continue
			}

			cur.Packets = subtract(cur.Packets, old.Packets)
			cur.Bytes = subtract(cur.Bytes, old.Bytes)
			entities[name] = cur
		}
	}
	return dirty
}

// zeroCounter rebases one baseline field to zero, leaving an unavailable
// field unavailable.
// zeroCounter 将一个基线字段重置为零，不可用的字段保持不可用。
func zeroCounter(c Counter) Counter {
	if !c.Valid {
		return c
	}
	return NewCounter(0)
}

// regressed reports whether a raw value went backward. Unavailable
// fields never participate in the comparison.
// regressed 报告原始值是否变小。不可用的字段永远不参与比较。
func regressed(old, cur Counter) bool {
	if !old.Valid || !cur.Valid {
		return false
	}
	return cur.Value < old.Value
}

// subtract computes current minus baseline for one field. If either side
// is unavailable the current value passes through untouched. The caller
// has already ruled out regression, so the result is never negative.
// subtract 计算单个字段的 当前值减基线值。任一侧不可用时当前值原样
// 通过。调用方已排除回退，因此结果永远不为负。
func subtract(cur, old Counter) Counter {
	if !cur.Valid || !old.Valid {
		return cur
	}
	return NewCounter(cur.Value - old.Value)
}
