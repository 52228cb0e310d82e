package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/livp123/flowstat/internal/config"
	"github.com/livp123/flowstat/internal/flowcnt"
	"github.com/livp123/flowstat/internal/utils/logger"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagType      string
	flagClear     bool
	flagDelete    bool
	flagJSON      bool
	flagNamespace string
	flagFilter    string

	// Loaded in PersistentPreRun, consumed by RunE.
	// 在 PersistentPreRun 中加载，由 RunE 使用。
	cfg *config.Config
)

var RootCmd = &cobra.Command{
	Use:   "flowstat",
	Short: "Show flow counters from the counters database",
	Long: `flowstat reports per-entity packet/byte counters from the live counters
database, either as lifetime totals or as a delta since the last --clear.
Clearing only rebases the local comparison baseline: the counters in the
database are never reset.
flowstat 从实时计数器数据库报告每个实体的包/字节计数，
可显示为累计总量或自上次 --clear 以来的增量。
清除只会重置本地比较基线：数据库中的计数器永远不会被重置。`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := flagConfig
		if path == "" {
			path = config.DefaultConfigPath
		}

		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config %s: %w", path, err)
		}

		logger.Init(cfg.Logging)

		// Inject logger into context
		// 将 Logger 注入 Context
		ctx := logger.WithContext(cmd.Context(), logger.Get(nil))
		cmd.SetContext(ctx)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, err := flowcnt.LookupType(flagType)
		if err != nil {
			return err
		}

		stats := flowcnt.NewStats(typ, cfg, nil, os.Getuid())

		if flagDelete {
			// Explicit cache reset, independent of clear/show
			// 显式缓存重置，独立于 clear/show
			stats.DeleteBaseline()
		}

		if flagClear {
			return stats.Clear(cmd.Context(), cmd.OutOrStdout(), flagNamespace)
		}

		return stats.Show(cmd.Context(), cmd.OutOrStdout(), flowcnt.ShowOptions{
			Namespace: flagNamespace,
			Filter:    flagFilter,
			JSON:      flagJSON,
		})
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", fmt.Sprintf("Path to configuration file (default: %s)", config.DefaultConfigPath))

	RootCmd.Flags().StringVarP(&flagType, "type", "t", "", fmt.Sprintf("Counter type to report (%s)", strings.Join(flowcnt.TypeNames(), ", ")))
	RootCmd.Flags().BoolVar(&flagClear, "clear", false, "Rebase the local baseline to the current readings, without touching the database")
	RootCmd.Flags().BoolVar(&flagDelete, "delete", false, "Delete any persisted baseline for this type and user before proceeding")
	RootCmd.Flags().BoolVarP(&flagJSON, "json", "j", false, "Emit JSON records instead of a text table")
	RootCmd.Flags().StringVarP(&flagNamespace, "namespace", "n", "", "Restrict to one namespace (default: all)")
	RootCmd.Flags().StringVar(&flagFilter, "filter", "", `Row filter expression, e.g. 'packets > 1000 && hasPrefix(name, "bgp")'`)

	if err := RootCmd.MarkFlagRequired("type"); err != nil {
		panic(err)
	}
}

func Execute() {
	defer func() {
		_ = logger.Sync()
	}()
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
