package sdk

import (
	"net/url"
	"strconv"

	apierrors "github.com/netxfw/antiddos/pkg/errors"
)

// ProtectionOptions are the settings sent by open and set.
// A nil field is unset and omitted; it differs from false or 0.
// ProtectionOptions 是 open 和 set 发送的设置。nil 字段表示未设置并被省略，不同于 false 或 0。
type ProtectionOptions struct {
	EnableL7            *bool
	TrafficPosID        *int
	HTTPRequestPosID    *int
	CleaningAccessPosID *int
	AppTypeID           *int
}

// ProtectionPayload is the JSON body of POST and PUT /antiddos/{id}.
// ProtectionPayload 是 POST 和 PUT /antiddos/{id} 的 JSON 请求体。
type ProtectionPayload struct {
	EnableL7            *bool `json:"enable_L7,omitempty"`
	TrafficPosID        *int  `json:"traffic_pos_id,omitempty"`
	HTTPRequestPosID    *int  `json:"http_request_pos_id,omitempty"`
	CleaningAccessPosID *int  `json:"cleaning_access_pos_id,omitempty"`
	AppTypeID           *int  `json:"app_type_id,omitempty"`
}

// Bool, Int and String return pointers to their argument.
// Bool、Int 和 String 返回参数的指针。
func Bool(v bool) *bool       { return &v }
func Int(v int) *int          { return &v }
func String(v string) *string { return &v }

// Validate checks every set position against its scale.
// Validate 检查每个已设置的位置是否在对应范围内。
func (o ProtectionOptions) Validate() error {
	if o.TrafficPosID != nil {
		if _, err := TrafficScale.Value(*o.TrafficPosID); err != nil {
			return err
		}
	}
	if o.HTTPRequestPosID != nil {
		if _, err := HTTPRateScale.Value(*o.HTTPRequestPosID); err != nil {
			return err
		}
	}
	if o.CleaningAccessPosID != nil && (*o.CleaningAccessPosID < 1 || *o.CleaningAccessPosID > MaxCleaningAccessPos) {
		return apierrors.NewPositionError("cleaning access", *o.CleaningAccessPosID, MaxCleaningAccessPos)
	}
	if o.AppTypeID != nil && (*o.AppTypeID < MinAppType || *o.AppTypeID > MaxAppType) {
		return apierrors.NewArgumentError("app_type_id", *o.AppTypeID)
	}
	return nil
}

// BuildProtectionPayload drops unset fields. The HTTP request position is
// only sent when Layer-7 defense is explicitly enabled.
// BuildProtectionPayload 丢弃未设置的字段。仅当显式启用 L7 防护时才发送 HTTP 请求档位。
func BuildProtectionPayload(o ProtectionOptions) ProtectionPayload {
	p := ProtectionPayload{
		EnableL7:            o.EnableL7,
		TrafficPosID:        o.TrafficPosID,
		CleaningAccessPosID: o.CleaningAccessPosID,
		AppTypeID:           o.AppTypeID,
	}
	if o.EnableL7 != nil && *o.EnableL7 {
		p.HTTPRequestPosID = o.HTTPRequestPosID
	}
	return p
}

// Merge fills every unset field of o from the current settings.
// PUT replaces the whole configuration, so set sends a complete payload.
// Merge 用当前设置填充 o 中未设置的字段。PUT 会替换整个配置，因此 set 需发送完整请求体。
func (o ProtectionOptions) Merge(current ProtectionConfig) ProtectionOptions {
	if o.EnableL7 == nil {
		o.EnableL7 = Bool(current.EnableL7)
	}
	if o.TrafficPosID == nil && current.TrafficPosID > 0 {
		o.TrafficPosID = Int(current.TrafficPosID)
	}
	if o.HTTPRequestPosID == nil && current.HTTPRequestPosID > 0 {
		o.HTTPRequestPosID = Int(current.HTTPRequestPosID)
	}
	if o.CleaningAccessPosID == nil && current.CleaningAccessPosID > 0 {
		o.CleaningAccessPosID = Int(current.CleaningAccessPosID)
	}
	if o.AppTypeID == nil {
		o.AppTypeID = Int(current.AppTypeID)
	}
	return o
}

// Query renders the list filter; empty fields are dropped.
// Query 生成列表过滤参数；空字段被丢弃。
func (o ListOptions) Query() url.Values {
	q := url.Values{}
	if o.Status != "" {
		q.Set("status", o.Status)
	}
	if o.IP != "" {
		q.Set("ip", o.IP)
	}
	setInt(q, "limit", o.Limit)
	setInt(q, "offset", o.Offset)
	return q
}

// Query renders the log paging parameters; empty fields are dropped.
// Query 生成日志分页参数；空字段被丢弃。
func (o LogOptions) Query() url.Values {
	q := url.Values{}
	if o.SortDir != "" {
		q.Set("sort_dir", o.SortDir)
	}
	setInt(q, "limit", o.Limit)
	setInt(q, "offset", o.Offset)
	return q
}

// Query sends the period start as epoch milliseconds.
// Query 以毫秒时间戳发送统计周期起点。
func (o WeeklyOptions) Query() url.Values {
	q := url.Values{}
	if o.PeriodStart != nil {
		q.Set("period_start_date", strconv.FormatInt(o.PeriodStart.UnixMilli(), 10))
	}
	return q
}

func setInt(q url.Values, key string, v *int) {
	if v != nil {
		q.Set(key, strconv.Itoa(*v))
	}
}
