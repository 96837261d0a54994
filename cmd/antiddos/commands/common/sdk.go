package common

import (
	"fmt"

	"github.com/netxfw/antiddos/internal/config"
	"github.com/netxfw/antiddos/internal/httpclient"
	"github.com/netxfw/antiddos/pkg/sdk"
)

var (
	// MockSDK allows tests to inject a mock SDK
	// MockSDK 允许测试注入 Mock SDK
	MockSDK *sdk.SDK

	current *config.Config
)

// SetConfig stores the effective configuration for the running command.
// SetConfig 保存当前命令的生效配置。
func SetConfig(cfg *config.Config) {
	current = cfg
}

// GetConfig returns the stored configuration, or the defaults when none was loaded.
// GetConfig 返回已保存的配置；未加载时返回默认配置。
func GetConfig() *config.Config {
	if current == nil {
		return config.Defaults()
	}
	return current
}

// GetSDK returns an SDK talking to the configured endpoints.
// GetSDK 返回连接到已配置 endpoint 的 SDK。
func GetSDK() (*sdk.SDK, error) {
	if MockSDK != nil {
		return MockSDK, nil
	}
	cfg := GetConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	v1, err := newClient(cfg, cfg.Cloud.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create Anti-DDoS client: %w", err)
	}
	v2, err := newClient(cfg, cfg.Cloud.AlertEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create alert client: %w", err)
	}
	return sdk.NewSDK(v1, v2), nil
}

func newClient(cfg *config.Config, endpoint string) (*httpclient.Client, error) {
	return httpclient.New(httpclient.Options{
		Endpoint:   endpoint,
		Token:      cfg.Cloud.Token,
		AuthHeader: cfg.Cloud.AuthHeader,
		Timeout:    cfg.TimeoutDuration(),
	})
}
