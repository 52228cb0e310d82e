package flowcnt

import (
	"fmt"
	"os"
	"path/filepath"

	flowerrors "github.com/livp123/flowstat/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SnapshotStore persists the baseline ReadingSet for one counter type and
// one invoking user. The file is an advisory local cache with a single
// assumed writer, not a source of truth: every IO failure is reported as
// a warning and the command keeps going without a baseline.
// SnapshotStore 为单个计数器类型和单个调用用户持久化基线 ReadingSet。
// 该文件是假定单写者的本地建议性缓存，不是数据源：所有 IO 故障都以
// 警告形式报告，命令在没有基线的情况下继续执行。
type SnapshotStore struct {
	path string
}

// NewSnapshotStore derives the snapshot path from the counter type and
// user id, so distinct users and types never collide.
// NewSnapshotStore 从计数器类型和用户 ID 推导快照路径，
// 使不同用户和类型永不冲突。
func NewSnapshotStore(dir, typeName string, uid int) *SnapshotStore {
	return &SnapshotStore{
		path: filepath.Join(dir, fmt.Sprintf("flowstat-%s-%d.yaml", typeName, uid)),
	}
}

// Path returns the snapshot file location.
// Path 返回快照文件位置。
func (s *SnapshotStore) Path() string {
	return s.path
}

// Load reads the persisted baseline. A missing file means no baseline;
// an unreadable or unparsable file is reported and also treated as no
// baseline, never as a fatal error.
// Load 读取持久化的基线。文件不存在表示没有基线；无法读取或解析的
// 文件会被报告，同样按没有基线处理，绝不作为致命错误。
func (s *SnapshotStore) Load() ReadingSet {
	safePath := filepath.Clean(s.path) // Sanitize path to prevent directory traversal
	content, err := os.ReadFile(safePath)
	if err != nil {
		if !os.IsNotExist(err) {
			warn(flowerrors.NewSnapshotReadError(s.path, err))
		}
		return nil
	}

	var snap ReadingSet
	if err := yaml.Unmarshal(content, &snap); err != nil {
		warn(flowerrors.NewSnapshotReadError(s.path, err))
		return nil
	}
	return snap
}

// Save serializes the baseline and replaces the snapshot file.
// Remove-then-write is fine under the single-writer assumption. Failures
// are reported but the data is simply not saved.
// Save 序列化基线并替换快照文件。在单写者假设下先删后写即可。
// 故障会被报告，数据只是未被保存。
func (s *SnapshotStore) Save(snap ReadingSet) {
	content, err := yaml.Marshal(snap)
	if err != nil {
		warn(flowerrors.NewSnapshotWriteError(s.path, err))
		return
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		warn(flowerrors.NewSnapshotWriteError(s.path, err))
		return
	}
	if err := os.WriteFile(s.path, content, 0600); err != nil {
		warn(flowerrors.NewSnapshotWriteError(s.path, err))
	}
}

// Delete removes the snapshot file if present.
// Delete 删除快照文件（如果存在）。
func (s *SnapshotStore) Delete() {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		warn(flowerrors.NewSnapshotWriteError(s.path, err))
	}
}

// warn reports a non-fatal snapshot problem on stderr. Stdout is
// reserved for table/JSON output and must stay machine-parsable.
// warn 在 stderr 上报告非致命的快照问题。Stdout 保留给表格/JSON 输出，
// 必须保持可被机器解析。
func warn(err error) {
	fmt.Fprintf(os.Stderr, "[WARN]  %v\n", err)
}
