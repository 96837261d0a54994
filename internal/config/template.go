package config

import (
	"fmt"

	"github.com/netxfw/antiddos/internal/utils/fileutil"
	"gopkg.in/yaml.v3"
)

// DefaultConfigTemplate defines the default configuration file structure with bilingual comments.
// DefaultConfigTemplate 定义带有双语注释的默认配置文件结构。
const DefaultConfigTemplate = `# Anti-DDoS CLI Configuration File / Anti-DDoS 命令行配置文件
#
# Environment variables override this file, flags override both.
# 环境变量覆盖本文件，命令行标志覆盖两者。

# Cloud Configuration / 云服务配置
cloud:
  # Service endpoint with version and project prefix.
  # {project_id} is replaced by project_id below.
  # 服务地址，包含版本和项目前缀。{project_id} 会被下方的 project_id 替换。
  endpoint: "https://antiddos.example.com/v1/{project_id}"

  # Alert endpoint. Empty means endpoint with /v1/ replaced by /v2/.
  # 告警地址。为空时使用将 /v1/ 替换为 /v2/ 的 endpoint。
  alert_endpoint: ""

  # Project ID (env: ANTIDDOS_PROJECT_ID, OS_PROJECT_ID)
  # 项目 ID
  project_id: ""

  # Region name, informational / 区域名称，仅作记录
  region: ""

  # Auth token (env: ANTIDDOS_TOKEN, OS_AUTH_TOKEN)
  # 认证令牌
  token: ""

  # Header carrying the token. "Authorization" sends "Bearer <token>".
  # 携带令牌的请求头。设置为 "Authorization" 时发送 "Bearer <token>"。
  auth_header: "X-Auth-Token"

  # HTTP timeout per request / 每个请求的 HTTP 超时
  timeout: "30s"

# Output Configuration / 输出配置
output:
  # table, json, yaml or value / 表格、json、yaml 或 value
  format: "table"

# Logging Configuration / 日志配置
logging:
  # Also write logs to a rotated file at path / 同时写入 path 指定的轮转文件
  enabled: false
  # debug, info, warn, error
  level: "warn"
  path: "~/.antiddos/antiddos.log"
  max_size: 10     # MB
  max_backups: 3
  max_age: 30      # days / 天
  compress: true

# Metrics Configuration / 指标配置
metrics:
  # node_exporter textfile path; empty disables the export.
  # node_exporter textfile 路径；为空则不导出。
  textfile_path: ""

# Task Journal / 任务记录
journal:
  # Record tasks returned by open, set and close / 记录 open、set、close 返回的任务
  enabled: true
  path: "~/.antiddos/tasks.yaml"
  max_entries: 200
`

// WriteTemplate writes DefaultConfigTemplate to path. An existing file is
// kept unless force is set.
// WriteTemplate 将 DefaultConfigTemplate 写入 path。除非 force，否则保留已有文件。
func WriteTemplate(path string, force bool) error {
	path = ExpandPath(path)
	if fileutil.FileExists(path) && !force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}
	return fileutil.AtomicWriteFile(path, []byte(DefaultConfigTemplate), 0600)
}

// Marshal renders cfg as YAML.
// Marshal 将 cfg 渲染为 YAML。
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
