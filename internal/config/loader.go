package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	apierrors "github.com/netxfw/antiddos/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Load builds the effective configuration: defaults, then the YAML file at
// path, then environment variables, then flags that were set on the command
// line. A missing file is only an error when explicit is true.
// Load 构建最终配置：默认值 < YAML 文件 < 环境变量 < 命令行标志。
// 仅当 explicit 为 true 时，配置文件缺失才视为错误。
func Load(path string, explicit bool, flags *pflag.FlagSet) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if err := loadFile(ExpandPath(path), cfg); err != nil {
			if !errors.Is(err, apierrors.ErrConfigNotFound) || explicit {
				return nil, err
			}
		}
	}

	if err := overlay(cfg, flags); err != nil {
		return nil, err
	}

	cfg.Cloud.Endpoint = expandEndpoint(cfg.Cloud.Endpoint, cfg.Cloud.ProjectID)
	if cfg.Cloud.AlertEndpoint == "" {
		cfg.Cloud.AlertEndpoint = deriveAlertEndpoint(cfg.Cloud.Endpoint)
	} else {
		cfg.Cloud.AlertEndpoint = expandEndpoint(cfg.Cloud.AlertEndpoint, cfg.Cloud.ProjectID)
	}
	cfg.Logging.Path = ExpandPath(cfg.Logging.Path)
	cfg.Journal.Path = ExpandPath(cfg.Journal.Path)
	cfg.Metrics.TextfilePath = ExpandPath(cfg.Metrics.TextfilePath)

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	safePath := filepath.Clean(path) // Sanitize path to prevent directory traversal
	data, err := os.ReadFile(safePath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s: %w", apierrors.ErrConfigNotFound, safePath, err)
		}
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: failed to parse %s: %v", apierrors.ErrConfigInvalid, safePath, err)
	}
	return nil
}

// overlay applies environment variables and changed flags on top of cfg.
// overlay 将环境变量和已修改的标志覆盖到 cfg 上。
func overlay(cfg *Config, flags *pflag.FlagSet) error {
	v := viper.New()

	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return err
		}
	}
	if flags != nil {
		for key, name := range flagBindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return err
				}
			}
		}
	}

	set := func(key string, dst *string) {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}
	set(KeyEndpoint, &cfg.Cloud.Endpoint)
	set(KeyAlertEndpoint, &cfg.Cloud.AlertEndpoint)
	set(KeyProjectID, &cfg.Cloud.ProjectID)
	set(KeyRegion, &cfg.Cloud.Region)
	set(KeyToken, &cfg.Cloud.Token)
	set(KeyAuthHeader, &cfg.Cloud.AuthHeader)
	set(KeyTimeout, &cfg.Cloud.Timeout)
	set(KeyFormat, &cfg.Output.Format)
	set(KeyLogLevel, &cfg.Logging.Level)
	set(KeyTextfilePath, &cfg.Metrics.TextfilePath)
	set(KeyJournalPath, &cfg.Journal.Path)
	return nil
}

// TimeoutDuration parses cloud.timeout, falling back to the default.
// TimeoutDuration 解析 cloud.timeout，失败时回退到默认值。
func (c *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Cloud.Timeout)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultTimeout)
	}
	return d
}

// ValidateOutput checks the settings every command needs.
// ValidateOutput 检查所有命令都需要的设置。
func (c *Config) ValidateOutput() error {
	if !slices.Contains(OutputFormats, c.Output.Format) {
		return apierrors.NewConfigError("output.format", c.Output.Format)
	}
	return nil
}

// Validate checks that the configuration can reach the service.
// Validate 检查配置是否足以访问服务。
func (c *Config) Validate() error {
	if err := c.ValidateOutput(); err != nil {
		return err
	}
	if err := validateEndpoint("cloud.endpoint", c.Cloud.Endpoint); err != nil {
		return err
	}
	if err := validateEndpoint("cloud.alert_endpoint", c.Cloud.AlertEndpoint); err != nil {
		return err
	}
	if c.Cloud.Token == "" {
		return fmt.Errorf("%w: cloud.token is required (set it in the config file, ANTIDDOS_TOKEN, OS_AUTH_TOKEN or --token)", apierrors.ErrConfigInvalid)
	}
	if c.Cloud.AuthHeader == "" {
		return apierrors.NewConfigError("cloud.auth_header", c.Cloud.AuthHeader)
	}
	if d, err := time.ParseDuration(c.Cloud.Timeout); err != nil || d <= 0 {
		return apierrors.NewConfigError("cloud.timeout", c.Cloud.Timeout)
	}
	if c.Journal.MaxEntries < 0 {
		return apierrors.NewConfigError("journal.max_entries", c.Journal.MaxEntries)
	}
	return nil
}

func validateEndpoint(field, endpoint string) error {
	if endpoint == "" {
		return fmt.Errorf("%w: %s is required", apierrors.ErrConfigInvalid, field)
	}
	if strings.Contains(endpoint, "{") {
		return fmt.Errorf("%w: %s contains an unresolved placeholder (set cloud.project_id): %s", apierrors.ErrConfigInvalid, field, endpoint)
	}
	u, err := url.Parse(endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apierrors.NewConfigError(field, endpoint)
	}
	return nil
}

// Redacted returns a copy safe to print, with the token masked.
// Redacted 返回可安全打印的副本，令牌被遮蔽。
func (c *Config) Redacted() *Config {
	out := *c
	if out.Cloud.Token != "" {
		out.Cloud.Token = "******"
	}
	return &out
}
