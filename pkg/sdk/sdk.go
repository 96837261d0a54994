package sdk

// SDK provides a structured high-level API for interacting with the Anti-DDoS service.
// SDK 提供了一个结构化的高级 API，用于与 Anti-DDoS 服务交互。
type SDK struct {
	AntiDDoS AntiDDoSAPI
	Alert    AlertAPI
}

// NewSDK creates a new SDK instance. The alert API lives under a different
// version prefix, so it gets its own requester.
// NewSDK 创建一个新的 SDK 实例。告警接口使用不同的版本前缀，因此使用独立的 requester。
func NewSDK(antiddos Requester, alert Requester) *SDK {
	return &SDK{
		AntiDDoS: &antiddosImpl{req: antiddos},
		Alert:    &alertImpl{req: alert},
	}
}
