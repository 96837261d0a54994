package commands

import (
	"fmt"
	"os"

	"github.com/netxfw/antiddos/cmd/antiddos/commands/antiddos"
	"github.com/netxfw/antiddos/cmd/antiddos/commands/common"
	"github.com/netxfw/antiddos/internal/config"
	"github.com/netxfw/antiddos/internal/metrics"
	"github.com/netxfw/antiddos/internal/runtime"
	"github.com/netxfw/antiddos/internal/utils/logger"
	"github.com/spf13/cobra"
)

// skipConfigAnnotation marks commands that must run without a readable config file.
// skipConfigAnnotation 标记无需可读配置文件即可运行的命令。
const skipConfigAnnotation = "antiddos/skip-config"

var RootCmd = &cobra.Command{
	Use:   "antiddos",
	Short: "Command-line client for the Anti-DDoS cloud service",
	// Short: Anti-DDoS 云服务命令行客户端
	Long: `antiddos manages Anti-DDoS protection of floating IPs through the cloud REST API.
It opens, updates and closes protection, shows reports and tracks asynchronous tasks.
antiddos 通过云服务 REST API 管理浮动 IP 的 Anti-DDoS 防护。
它可以开启、更新和关闭防护，查看报告并跟踪异步任务。`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[skipConfigAnnotation] == "true" {
			initLogging(cmd, config.Defaults())
			return nil
		}

		// Load configuration: defaults < file < environment < flags
		// 加载配置：默认值 < 文件 < 环境变量 < 命令行标志
		cfg, err := config.Load(config.GetConfigPath(), runtime.ConfigPath != "", cmd.Flags())
		if err != nil {
			return err
		}
		if err := cfg.ValidateOutput(); err != nil {
			return err
		}
		common.SetConfig(cfg)
		initLogging(cmd, cfg)
		return nil
	},
}

// initLogging sets up the logger and injects it into the command context.
// initLogging 初始化日志并注入命令 Context。
func initLogging(cmd *cobra.Command, cfg *config.Config) {
	logCfg := cfg.Logging
	if runtime.Debug {
		logCfg.Level = "debug"
	}
	logger.Init(logCfg)

	// Inject logger into context
	// 将 Logger 注入 Context
	ctx := logger.WithContext(cmd.Context(), logger.L())
	cmd.SetContext(ctx)
}

func init() {
	// Config file path
	// 配置文件路径
	RootCmd.PersistentFlags().StringVarP(&runtime.ConfigPath, "config", "c", "", fmt.Sprintf("Path to configuration file (default: %s)", config.DefaultConfigPath))

	// Connection overrides, also read from ANTIDDOS_* / OS_* environment variables
	// 连接参数覆盖，也可通过 ANTIDDOS_* / OS_* 环境变量设置
	RootCmd.PersistentFlags().String("endpoint", "", "Anti-DDoS endpoint, e.g. https://antiddos.example.com/v1/{project_id}")
	RootCmd.PersistentFlags().String("alert-endpoint", "", "Alert endpoint (default: endpoint with /v1/ replaced by /v2/)")
	RootCmd.PersistentFlags().String("project-id", "", "Project ID substituted into {project_id}")
	RootCmd.PersistentFlags().String("token", "", "Authentication token")
	RootCmd.PersistentFlags().StringP("output", "o", config.DefaultFormat, "Output format: table, json, yaml or value")
	RootCmd.PersistentFlags().BoolVar(&runtime.Debug, "debug", false, "Log requests at debug level")

	RootCmd.AddCommand(antiddos.AntiDDoSCmd)
	RootCmd.AddCommand(configCmd)
	RootCmd.AddCommand(versionCmd)
	RootCmd.AddCommand(createCustomCompletionCmd())

	RootCmd.CompletionOptions.DisableDefaultCmd = true
}

// createCustomCompletionCmd creates a completion command without powershell.
// createCustomCompletionCmd 创建不含 powershell 的补全命令。
func createCustomCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generate shell autocompletion script",
		Long: `Generate shell autocompletion script for antiddos.
生成 antiddos 的 shell 自动补全脚本。

Examples:
  antiddos completion bash > /etc/bash_completion.d/antiddos
  antiddos completion zsh  > "${fpath[1]}/_antiddos"
  antiddos completion fish > ~/.config/fish/completions/antiddos.fish`,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		ValidArgs:   []string{"bash", "zsh", "fish"},
		Args:        cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return RootCmd.GenBashCompletionV2(out, true)
			case "zsh":
				return RootCmd.GenZshCompletion(out)
			default:
				return RootCmd.GenFishCompletion(out, true)
			}
		},
	}
}

// flush writes the metrics textfile and syncs the logger. It runs after
// failed commands too, so error responses are counted.
// flush 写入指标 textfile 并刷新日志。命令失败时同样执行，以便统计错误响应。
func flush() {
	if err := metrics.WriteTextfile(common.GetConfig().Metrics.TextfilePath); err != nil {
		logger.L().Warnf("[WARN]  Failed to write metrics textfile: %v", err)
	}
	_ = logger.Sync()
}

func Execute() {
	err := RootCmd.Execute()
	flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
