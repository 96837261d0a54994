package config

import (
	"github.com/netxfw/antiddos/internal/utils/logger"
)

// Config is the effective client configuration.
// Config 是客户端的最终生效配置。
type Config struct {
	Cloud   CloudConfig   `yaml:"cloud"`
	Output  OutputConfig  `yaml:"output"`
	Logging logger.Config `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Journal JournalConfig `yaml:"journal"`
}

// CloudConfig describes how to reach the Anti-DDoS service.
// CloudConfig 描述如何访问 Anti-DDoS 服务。
type CloudConfig struct {
	// Endpoint includes the version and project prefix, e.g. https://antiddos.example.com/v1/{project_id}
	// Endpoint 包含版本和项目前缀。
	Endpoint string `yaml:"endpoint"`
	// AlertEndpoint defaults to Endpoint with /v1/ replaced by /v2/.
	// AlertEndpoint 默认为将 Endpoint 中的 /v1/ 替换为 /v2/。
	AlertEndpoint string `yaml:"alert_endpoint"`
	ProjectID     string `yaml:"project_id"`
	Region        string `yaml:"region"`
	Token         string `yaml:"token"`
	AuthHeader    string `yaml:"auth_header"`
	Timeout       string `yaml:"timeout"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
}

// MetricsConfig controls the node_exporter textfile export.
// MetricsConfig 控制 node_exporter textfile 导出。
type MetricsConfig struct {
	TextfilePath string `yaml:"textfile_path"`
}

// JournalConfig controls the local record of submitted tasks.
// JournalConfig 控制本地已提交任务的记录。
type JournalConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Path       string `yaml:"path"`
	MaxEntries int    `yaml:"max_entries"`
}

// Defaults returns the built-in configuration.
// Defaults 返回内置默认配置。
func Defaults() *Config {
	return &Config{
		Cloud: CloudConfig{
			AuthHeader: DefaultAuthHeader,
			Timeout:    DefaultTimeout,
		},
		Output: OutputConfig{
			Format: DefaultFormat,
		},
		Logging: logger.Config{
			Enabled:    false,
			Level:      "warn",
			Path:       DefaultConfigDir + "/antiddos.log",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     30,
			Compress:   true,
		},
		Journal: JournalConfig{
			Enabled:    true,
			Path:       DefaultJournalPath,
			MaxEntries: 200,
		},
	}
}
