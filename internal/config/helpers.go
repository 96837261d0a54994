package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/netxfw/antiddos/internal/runtime"
)

/**
 * GetConfigPath resolves the configuration file path.
 * It prioritizes the CLI flag (runtime.ConfigPath) over the default.
 * GetConfigPath 解析配置文件路径。
 * 优先使用 CLI 标志 (runtime.ConfigPath)，其次是默认值。
 */
func GetConfigPath() string {
	if runtime.ConfigPath != "" {
		return ExpandPath(runtime.ConfigPath)
	}
	return ExpandPath(DefaultConfigPath)
}

// ExpandPath replaces a leading "~" with the user's home directory.
// ExpandPath 将开头的 "~" 替换为用户主目录。
func ExpandPath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return p
}

// expandEndpoint substitutes the project placeholder and trims trailing slashes.
// expandEndpoint 替换项目占位符并去掉末尾的斜杠。
func expandEndpoint(endpoint, projectID string) string {
	if projectID != "" {
		endpoint = strings.ReplaceAll(endpoint, ProjectIDPlaceholder, projectID)
	}
	return strings.TrimRight(endpoint, "/")
}

// deriveAlertEndpoint maps the v1 Anti-DDoS endpoint to the v2 alert endpoint.
// deriveAlertEndpoint 将 v1 Anti-DDoS endpoint 映射到 v2 告警 endpoint。
func deriveAlertEndpoint(endpoint string) string {
	if strings.Contains(endpoint, "/v1/") {
		return strings.Replace(endpoint, "/v1/", "/v2/", 1)
	}
	return endpoint
}
