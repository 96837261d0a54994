package config

const (
	// DefaultConfigDir holds the config file and the task journal.
	// DefaultConfigDir 存放配置文件和任务日志。
	DefaultConfigDir = "~/.antiddos"

	// DefaultConfigPath is the standard location for the antiddos configuration file.
	// DefaultConfigPath 是 antiddos 配置文件的标准位置。
	DefaultConfigPath = DefaultConfigDir + "/config.yaml"

	// DefaultJournalPath is where submitted tasks are recorded.
	// DefaultJournalPath 是已提交任务的记录位置。
	DefaultJournalPath = DefaultConfigDir + "/tasks.yaml"

	DefaultAuthHeader = "X-Auth-Token"
	DefaultTimeout    = "30s"
	DefaultFormat     = "table"

	// ProjectIDPlaceholder may appear in endpoints and is replaced by cloud.project_id.
	// ProjectIDPlaceholder 可出现在 endpoint 中，会被 cloud.project_id 替换。
	ProjectIDPlaceholder = "{project_id}"
)

// Output formats understood by the renderer.
// 渲染器支持的输出格式。
var OutputFormats = []string{"table", "json", "yaml", "value"}

// Viper keys. Each is bound to environment variables and, where one exists, a flag.
// Viper 键，绑定到环境变量以及对应的命令行标志。
const (
	KeyEndpoint      = "cloud.endpoint"
	KeyAlertEndpoint = "cloud.alert_endpoint"
	KeyProjectID     = "cloud.project_id"
	KeyRegion        = "cloud.region"
	KeyToken         = "cloud.token"
	KeyAuthHeader    = "cloud.auth_header"
	KeyTimeout       = "cloud.timeout"
	KeyFormat        = "output.format"
	KeyLogLevel      = "logging.level"
	KeyTextfilePath  = "metrics.textfile_path"
	KeyJournalPath   = "journal.path"
)

// envBindings lists environment variables per key, highest priority first.
// envBindings 列出每个键对应的环境变量，优先级从高到低。
var envBindings = map[string][]string{
	KeyEndpoint:      {"ANTIDDOS_ENDPOINT"},
	KeyAlertEndpoint: {"ANTIDDOS_ALERT_ENDPOINT"},
	KeyProjectID:     {"ANTIDDOS_PROJECT_ID", "OS_PROJECT_ID"},
	KeyRegion:        {"ANTIDDOS_REGION", "OS_REGION_NAME"},
	KeyToken:         {"ANTIDDOS_TOKEN", "OS_AUTH_TOKEN"},
	KeyAuthHeader:    {"ANTIDDOS_AUTH_HEADER"},
	KeyTimeout:       {"ANTIDDOS_TIMEOUT"},
	KeyFormat:        {"ANTIDDOS_OUTPUT"},
	KeyLogLevel:      {"ANTIDDOS_LOG_LEVEL"},
	KeyTextfilePath:  {"ANTIDDOS_METRICS_TEXTFILE"},
	KeyJournalPath:   {"ANTIDDOS_JOURNAL_PATH"},
}

// flagBindings maps keys to the global flag names of the CLI.
// flagBindings 将键映射到 CLI 的全局标志名。
var flagBindings = map[string]string{
	KeyEndpoint:      "endpoint",
	KeyAlertEndpoint: "alert-endpoint",
	KeyProjectID:     "project-id",
	KeyToken:         "token",
	KeyFormat:        "output",
}
