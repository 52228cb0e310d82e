package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/livp123/flowstat/internal/utils/logger"
	flowerrors "github.com/livp123/flowstat/pkg/errors"
	"gopkg.in/yaml.v3"
)

// NamespaceConfig describes one isolated counter namespace and how to reach
// its counters database.
// NamespaceConfig 描述一个隔离的计数器命名空间及其计数器数据库的连接方式。
type NamespaceConfig struct {
	Name string `yaml:"name"`
	// Name: 命名空间名称（单实例平台为空字符串）
	Addr string `yaml:"addr"`
	// Addr: 该命名空间的数据库地址
	DB int `yaml:"db"`
	// DB: 数据库索引
}

// Config is the top-level flowstat configuration.
// Config 是 flowstat 的顶层配置。
type Config struct {
	// Namespaces lists every counter namespace on the platform.
	// An empty list means a single default namespace.
	// Namespaces 列出平台上的所有计数器命名空间。
	// 空列表表示单个默认命名空间。
	Namespaces []NamespaceConfig `yaml:"namespaces"`

	// SnapshotDir is where per-user baseline snapshots are kept.
	// SnapshotDir 是按用户保存基线快照的目录。
	SnapshotDir string `yaml:"snapshot_dir"`

	Logging logger.LoggingConfig `yaml:"logging"`
}

// Default returns the built-in configuration used when no config file exists.
// Default 返回在没有配置文件时使用的内置配置。
func Default() *Config {
	return &Config{
		Namespaces: []NamespaceConfig{
			{Name: "", Addr: DefaultStoreAddr, DB: DefaultStoreDB},
		},
		SnapshotDir: os.TempDir(),
		Logging: logger.LoggingConfig{
			Enabled: false,
			Level:   "warn",
		},
	}
}

// Load reads the configuration file at path, applying defaults for any
// missing keys. A missing file is not an error: defaults are returned.
// Load 读取指定路径的配置文件，为缺失的键应用默认值。
// 文件不存在不算错误：返回默认配置。
func Load(path string) (*Config, error) {
	cfg := Default()

	safePath := filepath.Clean(path) // Sanitize path to prevent directory traversal
	data, err := os.ReadFile(safePath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// Validate configuration / 验证配置
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for inconsistencies.
// Validate 检查配置的一致性。
func (c *Config) Validate() error {
	seen := make(map[string]bool)
	for _, ns := range c.Namespaces {
		if seen[ns.Name] {
			return flowerrors.NewConfigError("namespaces", fmt.Sprintf("duplicate namespace %q", ns.Name))
		}
		seen[ns.Name] = true
		if ns.Addr == "" {
			return flowerrors.NewConfigError("namespaces", fmt.Sprintf("namespace %q has no database address", ns.Name))
		}
		if ns.DB < 0 {
			return flowerrors.NewConfigError("namespaces", fmt.Sprintf("namespace %q has negative database index %d", ns.Name, ns.DB))
		}
	}
	if c.SnapshotDir == "" {
		return flowerrors.NewConfigError("snapshot_dir", "must not be empty")
	}
	return nil
}

// MultiNamespace reports whether more than one namespace is configured.
// The presenter only shows a namespace column on multi-namespace platforms.
// MultiNamespace 报告是否配置了多个命名空间。
// 展示层仅在多命名空间平台上显示命名空间列。
func (c *Config) MultiNamespace() bool {
	return len(c.Namespaces) > 1
}

// Namespace returns the configuration for the named namespace.
// Namespace 返回指定命名空间的配置。
func (c *Config) Namespace(name string) (NamespaceConfig, bool) {
	for _, ns := range c.Namespaces {
		if ns.Name == name {
			return ns, true
		}
	}
	return NamespaceConfig{}, false
}
