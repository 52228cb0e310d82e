package config

const (
	// DefaultConfigPath is the standard location for the flowstat configuration file.
	// DefaultConfigPath 是 flowstat 配置文件的标准位置。
	DefaultConfigPath = "/etc/flowstat/config.yaml"

	// DefaultStoreAddr is the default address of the counters database.
	// DefaultStoreAddr 是计数器数据库的默认地址。
	DefaultStoreAddr = "localhost:6379"

	// DefaultStoreDB is the database index holding the counter tables.
	// DefaultStoreDB 是存放计数器表的数据库索引。
	DefaultStoreDB = 2

	// Counter DB table names
	// 计数器数据库表名，这些名称与计数器守护进程写入的表保持一致。
	TableCounters     = "COUNTERS"
	TableRates        = "RATES"
	TableTrapNameMap  = "COUNTERS_TRAP_NAME_MAP"
	TableRouteNameMap = "COUNTERS_ROUTE_NAME_MAP"

	// Raw counter and rate field names
	// 原始计数器和速率字段名。
	FieldPackets = "SAI_COUNTER_STAT_PACKETS"
	FieldBytes   = "SAI_COUNTER_STAT_BYTES"
	FieldRxRate  = "RX_PPS"
)
