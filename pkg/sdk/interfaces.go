package sdk

import (
	"context"
	"net/url"
)

// =============================================================================
// Core Interfaces - 核心接口
// =============================================================================

// Requester performs one JSON request relative to a service endpoint.
// internal/httpclient.Client is the production implementation.
// Requester 针对服务 endpoint 执行一次 JSON 请求。生产实现为 internal/httpclient.Client。
type Requester interface {
	Do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error
}

// AntiDDoSAPI covers the v1 Anti-DDoS endpoints.
// AntiDDoSAPI 覆盖 v1 Anti-DDoS 接口。
type AntiDDoSAPI interface {
	// Find resolves a floating IP id or (partial) address to exactly one record.
	// Find 将浮动 IP ID 或（部分）地址解析为唯一一条记录。
	Find(ctx context.Context, token string) (Protection, error)

	// Get fetches the protection settings of a floating IP.
	// Get 获取浮动 IP 的防护设置。
	Get(ctx context.Context, floatingIPID string) (Protection, error)

	// Open, Update and Close submit asynchronous tasks.
	// Open、Update 和 Close 提交异步任务。
	Open(ctx context.Context, floatingIPID string, opts ProtectionOptions) (TaskRef, error)
	Update(ctx context.Context, floatingIPID string, opts ProtectionOptions) (TaskRef, error)
	Close(ctx context.Context, floatingIPID string) (TaskRef, error)

	// List returns the matching records and the total reported by the service.
	// List 返回匹配的记录以及服务端报告的总数。
	List(ctx context.Context, opts ListOptions) ([]Protection, int, error)

	TaskStatus(ctx context.Context, taskID string) (Task, error)
	Status(ctx context.Context, floatingIPID string) (StatusInfo, error)
	DailyReport(ctx context.Context, floatingIPID string) ([]DailyReportEntry, error)
	Logs(ctx context.Context, floatingIPID string, opts LogOptions) ([]AttackLog, int, error)
	WeeklyReport(ctx context.Context, opts WeeklyOptions) (WeeklyReport, error)
	ConfigList(ctx context.Context) (ConfigList, error)
}

// AlertAPI covers the v2 alert configuration endpoint.
// AlertAPI 覆盖 v2 告警配置接口。
type AlertAPI interface {
	Get(ctx context.Context) (AlertConfig, error)
}
