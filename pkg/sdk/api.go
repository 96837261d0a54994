package sdk

import (
	"time"
)

// =============================================================================
// Data Types - 数据类型
// =============================================================================

// Protection status values as sent by the service.
// 服务端返回的防护状态值。
const (
	StatusNormal         = "normal"
	StatusConfiguring    = "configging"
	StatusNotConfigured  = "notConfig"
	StatusPacketCleaning = "packetcleaning"
	StatusPacketDropping = "packetdropping"
)

// Statuses lists every protection status accepted by the list filter.
// Statuses 列出 list 过滤器接受的全部防护状态。
var Statuses = []string{
	StatusNormal,
	StatusConfiguring,
	StatusNotConfigured,
	StatusPacketCleaning,
	StatusPacketDropping,
}

// ProtectionConfig holds the Anti-DDoS settings of a floating IP.
// HTTPRequestPosID is meaningful only when EnableL7 is true.
// ProtectionConfig 保存浮动 IP 的 Anti-DDoS 设置。仅当 EnableL7 为 true 时 HTTPRequestPosID 才有意义。
type ProtectionConfig struct {
	EnableL7            bool `json:"enable_L7" yaml:"enable_L7"`
	TrafficPosID        int  `json:"traffic_pos_id" yaml:"traffic_pos_id"`
	HTTPRequestPosID    int  `json:"http_request_pos_id" yaml:"http_request_pos_id"`
	CleaningAccessPosID int  `json:"cleaning_access_pos_id" yaml:"cleaning_access_pos_id"`
	AppTypeID           int  `json:"app_type_id" yaml:"app_type_id"`
}

// Protection is a snapshot of one protected floating IP.
// Protection 是一个受保护浮动 IP 的快照。
type Protection struct {
	FloatingIPID      string `json:"floating_ip_id" yaml:"floating_ip_id"`
	FloatingIPAddress string `json:"floating_ip_address" yaml:"floating_ip_address"`
	NetworkType       string `json:"network_type" yaml:"network_type"`
	Status            string `json:"status" yaml:"status"`

	ProtectionConfig `yaml:",inline"`

	// configLoaded is set when the settings came from GET /antiddos/{id}.
	// configLoaded 表示设置来自 GET /antiddos/{id}。
	configLoaded bool
}

// ConfigLoaded reports whether the protection settings were fetched.
// ConfigLoaded 判断防护设置是否已获取。
func (p Protection) ConfigLoaded() bool {
	return p.configLoaded
}

// WithConfig returns a copy of p carrying cfg as its loaded settings.
// WithConfig 返回携带 cfg 设置的 p 的副本。
func (p Protection) WithConfig(cfg ProtectionConfig) Protection {
	p.ProtectionConfig = cfg
	p.configLoaded = true
	return p
}

// TaskRef is returned by open, set and close.
// TaskRef 由 open、set、close 返回。
type TaskRef struct {
	TaskID           string `json:"task_id" yaml:"task_id"`
	ErrorCode        string `json:"error_code,omitempty" yaml:"error_code,omitempty"`
	ErrorDescription string `json:"error_description,omitempty" yaml:"error_description,omitempty"`
}

// Task is the state of an asynchronous operation.
// Task 是异步操作的状态。
type Task struct {
	TaskStatus string `json:"task_status" yaml:"task_status"`
	TaskMsg    string `json:"task_msg" yaml:"task_msg"`
}

// StatusInfo is the response of GET /antiddos/{id}/status.
type StatusInfo struct {
	Status string `json:"status" yaml:"status"`
}

// DailyReportEntry covers five minutes of the past 24 hours.
// DailyReportEntry 覆盖过去 24 小时中的 5 分钟。
type DailyReportEntry struct {
	PeriodStart int64 `json:"period_start" yaml:"period_start"`
	BPSIn       int64 `json:"bps_in" yaml:"bps_in"`
	BPSAttack   int64 `json:"bps_attack" yaml:"bps_attack"`
	TotalBPS    int64 `json:"total_bps" yaml:"total_bps"`
	PPSIn       int64 `json:"pps_in" yaml:"pps_in"`
	PPSAttack   int64 `json:"pps_attack" yaml:"pps_attack"`
	TotalPPS    int64 `json:"total_pps" yaml:"total_pps"`
}

// AttackLog is one Anti-DDoS event. Status is 1 for cleaning, 2 for dropping.
// AttackLog 是一次 Anti-DDoS 事件。Status 为 1 表示清洗，2 表示黑洞。
type AttackLog struct {
	StartTime      int64 `json:"start_time" yaml:"start_time"`
	EndTime        int64 `json:"end_time" yaml:"end_time"`
	Status         int   `json:"status" yaml:"status"`
	TriggerBPS     int64 `json:"trigger_bps" yaml:"trigger_bps"`
	TriggerPPS     int64 `json:"trigger_pps" yaml:"trigger_pps"`
	TriggerHTTPPPS int64 `json:"trigger_http_pps" yaml:"trigger_http_pps"`
}

// WeekData summarises one day of the weekly report.
type WeekData struct {
	DDoSInterceptTimes int   `json:"ddos_intercept_times" yaml:"ddos_intercept_times"`
	DDoSBlackholeTimes int   `json:"ddos_blackhole_times" yaml:"ddos_blackhole_times"`
	MaxAttackBPS       int64 `json:"max_attack_bps" yaml:"max_attack_bps"`
	MaxAttackConns     int64 `json:"max_attack_conns" yaml:"max_attack_conns"`
	PeriodStartDate    int64 `json:"period_start_date" yaml:"period_start_date"`
}

// TopAttacked is one entry of the weekly top-10 list.
type TopAttacked struct {
	FloatingIPAddress string `json:"floating_ip_address" yaml:"floating_ip_address"`
	Times             int    `json:"times" yaml:"times"`
}

// WeeklyReport is the response of GET /antiddos/weekly.
// WeeklyReport 是 GET /antiddos/weekly 的响应。
type WeeklyReport struct {
	DDoSInterceptTimes int           `json:"ddos_intercept_times" yaml:"ddos_intercept_times"`
	WeekData           []WeekData    `json:"weekdata" yaml:"weekdata"`
	Top10              []TopAttacked `json:"top10" yaml:"top10"`
}

// TrafficLimit, HTTPLimit and ConnectionLimit describe one position of each scale.
// TrafficLimit、HTTPLimit 和 ConnectionLimit 描述各档位的取值。
type TrafficLimit struct {
	TrafficPosID     int   `json:"traffic_pos_id" yaml:"traffic_pos_id"`
	TrafficPerSecond int64 `json:"traffic_per_second" yaml:"traffic_per_second"`
	PacketPerSecond  int64 `json:"packet_per_second" yaml:"packet_per_second"`
}

type HTTPLimit struct {
	HTTPRequestPosID    int   `json:"http_request_pos_id" yaml:"http_request_pos_id"`
	HTTPPacketPerSecond int64 `json:"http_packet_per_second" yaml:"http_packet_per_second"`
}

type ConnectionLimit struct {
	CleaningAccessPosID    int   `json:"cleaning_access_pos_id" yaml:"cleaning_access_pos_id"`
	NewConnectionLimited   int64 `json:"new_connection_limited" yaml:"new_connection_limited"`
	TotalConnectionLimited int64 `json:"total_connection_limited" yaml:"total_connection_limited"`
}

// ConfigList is the response of GET /antiddos/query_config_list.
// ConfigList 是 GET /antiddos/query_config_list 的响应。
type ConfigList struct {
	TrafficLimitedList    []TrafficLimit    `json:"traffic_limited_list" yaml:"traffic_limited_list"`
	HTTPLimitedList       []HTTPLimit       `json:"http_limited_list" yaml:"http_limited_list"`
	ConnectionLimitedList []ConnectionLimit `json:"connection_limited_list" yaml:"connection_limited_list"`
}

// AlertConfig is the alert notification setting of the project.
// AlertConfig 是项目的告警通知设置。
type AlertConfig struct {
	WarnConfig  map[string]bool `json:"warn_config" yaml:"warn_config"`
	TopicURN    string          `json:"topic_urn" yaml:"topic_urn"`
	DisplayName string          `json:"display_name" yaml:"display_name"`
}

// ListOptions filters GET /antiddos. Unset fields are omitted from the query.
// ListOptions 过滤 GET /antiddos。未设置的字段不会出现在查询参数中。
type ListOptions struct {
	Status string
	IP     string
	Limit  *int
	Offset *int
}

// LogOptions pages GET /antiddos/{id}/logs.
// LogOptions 用于 GET /antiddos/{id}/logs 的分页。
type LogOptions struct {
	SortDir string
	Limit   *int
	Offset  *int
}

// WeeklyOptions selects the period of the weekly report; nil PeriodStart means the current week.
// WeeklyOptions 选择周报的统计周期；PeriodStart 为 nil 表示本周。
type WeeklyOptions struct {
	PeriodStart *time.Time
}
