package runtime

// ConfigPath stores the path to the configuration file provided via CLI flags.
// ConfigPath 存储通过 CLI 标志提供的配置文件路径。
var ConfigPath string

// Debug is true when --debug was passed; it forces the debug log level.
// Debug 在传入 --debug 时为 true，强制使用 debug 日志级别。
var Debug bool
