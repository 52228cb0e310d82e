package counterdb

import "context"

// Connector is the read-only boundary to one namespace's counters database.
// The database is a hash store: every table row is a hash addressed by
// "TABLE:key" and holds field/value pairs.
// Connector 是到单个命名空间计数器数据库的只读边界。
// 数据库是哈希存储：每个表行是一个以 "TABLE:key" 寻址的哈希，保存字段/值对。
type Connector interface {
	// Get returns one field of a table row. The second return value is
	// false when the field (or the row) does not exist.
	// Get 返回表行的一个字段。当字段（或行）不存在时第二个返回值为 false。
	Get(ctx context.Context, table, key, field string) (string, bool, error)

	// GetAll returns every field of a table row. A missing row yields an
	// empty map, not an error.
	// GetAll 返回表行的所有字段。行不存在时返回空 map，而不是错误。
	GetAll(ctx context.Context, table, key string) (map[string]string, error)

	// Close releases the underlying connection.
	// Close 释放底层连接。
	Close() error
}

// TableKey joins a table name and row key into a database hash key.
// Name-map tables are single hashes addressed by the bare table name,
// so an empty row key yields no separator.
// TableKey 将表名和行键拼接为数据库哈希键。
// 名称映射表是以表名直接寻址的单个哈希，因此空行键不加分隔符。
func TableKey(table, key string) string {
	if key == "" {
		return table
	}
	return table + ":" + key
}
