package mock

import (
	"context"

	"github.com/livp123/flowstat/internal/counterdb"
	"github.com/stretchr/testify/mock"
)

// Connector is a testify mock implementation of counterdb.Connector
type Connector struct {
	mock.Mock
}

func (m *Connector) Get(ctx context.Context, table, key, field string) (string, bool, error) {
	args := m.Called(ctx, table, key, field)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *Connector) GetAll(ctx context.Context, table, key string) (map[string]string, error) {
	args := m.Called(ctx, table, key)
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *Connector) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MemConnector is an in-memory counterdb.Connector backed by nested maps,
// keyed as table -> row key -> field -> value. Used by collector and
// command tests that need a whole fake database rather than expectations.
// MemConnector 是基于嵌套 map 的内存版 counterdb.Connector，
// 按 表 -> 行键 -> 字段 -> 值 索引。用于需要完整假数据库而非
// 期望断言的采集器和命令测试。
type MemConnector struct {
	Tables map[string]map[string]map[string]string
	Closed bool
}

// NewMemConnector creates an empty in-memory connector.
// NewMemConnector 创建空的内存连接器。
func NewMemConnector() *MemConnector {
	return &MemConnector{Tables: make(map[string]map[string]map[string]string)}
}

// Set stores one field value, creating intermediate maps as needed.
// Set 存储一个字段值，按需创建中间 map。
func (m *MemConnector) Set(table, key, field, value string) {
	rows, ok := m.Tables[table]
	if !ok {
		rows = make(map[string]map[string]string)
		m.Tables[table] = rows
	}
	row, ok := rows[key]
	if !ok {
		row = make(map[string]string)
		rows[key] = row
	}
	row[field] = value
}

// Delete removes one field value if present.
// Delete 删除一个字段值（如果存在）。
func (m *MemConnector) Delete(table, key, field string) {
	if rows, ok := m.Tables[table]; ok {
		if row, ok := rows[key]; ok {
			delete(row, field)
		}
	}
}

func (m *MemConnector) Get(ctx context.Context, table, key, field string) (string, bool, error) {
	if rows, ok := m.Tables[table]; ok {
		if row, ok := rows[key]; ok {
			if val, ok := row[field]; ok {
				return val, true, nil
			}
		}
	}
	return "", false, nil
}

func (m *MemConnector) GetAll(ctx context.Context, table, key string) (map[string]string, error) {
	out := make(map[string]string)
	if rows, ok := m.Tables[table]; ok {
		for field, val := range rows[key] {
			out[field] = val
		}
	}
	return out, nil
}

func (m *MemConnector) Close() error {
	m.Closed = true
	return nil
}

var _ counterdb.Connector = (*Connector)(nil)
var _ counterdb.Connector = (*MemConnector)(nil)
