package counterdb

import (
	"context"

	"github.com/livp123/flowstat/internal/config"
	flowerrors "github.com/livp123/flowstat/pkg/errors"
)

// Dialer opens a Connector for one configured namespace.
// Dialer 为一个已配置的命名空间打开 Connector。
type Dialer func(ns config.NamespaceConfig) Connector

// VisitFunc is invoked once per namespace with an open connector.
// VisitFunc 对每个命名空间调用一次，并传入已打开的连接。
type VisitFunc func(ctx context.Context, namespace string, conn Connector) error

// Namespaces enumerates the configured counter namespaces and runs a
// collection routine against each one, sequentially and in config order.
// Namespaces 枚举已配置的计数器命名空间，并按配置顺序依次对每个命名空间
// 运行采集例程。
type Namespaces struct {
	cfg  *config.Config
	dial Dialer
}

// NewNamespaces creates a namespace visitor over the given configuration.
// NewNamespaces 基于给定配置创建命名空间访问器。
func NewNamespaces(cfg *config.Config, dial Dialer) *Namespaces {
	if dial == nil {
		dial = func(ns config.NamespaceConfig) Connector {
			return NewRedisConnector(ns)
		}
	}
	return &Namespaces{cfg: cfg, dial: dial}
}

// ForEach visits every configured namespace, or just the named one when
// only is non-empty. The connector is closed after each visit. The first
// error aborts the walk: a store failure is fatal for the whole run.
// ForEach 访问每个已配置的命名空间；only 非空时仅访问指定命名空间。
// 每次访问后关闭连接。首个错误终止遍历：存储故障对整次运行是致命的。
func (n *Namespaces) ForEach(ctx context.Context, only string, fn VisitFunc) error {
	targets := n.cfg.Namespaces
	if only != "" {
		ns, ok := n.cfg.Namespace(only)
		if !ok {
			return flowerrors.NewNamespaceError(only)
		}
		targets = []config.NamespaceConfig{ns}
	}

	for _, ns := range targets {
		conn := n.dial(ns)
		err := fn(ctx, ns.Name, conn)
		if cerr := conn.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}
	return nil
}
