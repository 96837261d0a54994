package sdk

import (
	"strconv"

	"github.com/netxfw/antiddos/internal/utils/fmtutil"
)

// CCDefense renders the Layer-7 toggle.
// CCDefense 显示 L7 防护开关。
func (c ProtectionConfig) CCDefense() string {
	if c.EnableL7 {
		return "Enabled"
	}
	return "Disabled"
}

// MaximumServiceTraffic renders the traffic position, e.g. "10Mbit/s".
// MaximumServiceTraffic 显示流量档位，例如 "10Mbit/s"。
func (c ProtectionConfig) MaximumServiceTraffic() (string, error) {
	return TrafficScale.Display(c.TrafficPosID)
}

// HTTPRequestRate renders the HTTP rate position, e.g. "100/s".
// It is empty when Layer-7 defense is disabled.
// HTTPRequestRate 显示 HTTP 请求档位，例如 "100/s"。L7 防护关闭时为空。
func (c ProtectionConfig) HTTPRequestRate() (string, error) {
	if !c.EnableL7 {
		return "", nil
	}
	return HTTPRateScale.Display(c.HTTPRequestPosID)
}

// Configured reports whether the record has protection settings worth showing.
// Configured 判断记录是否有值得显示的防护设置。
func (p Protection) Configured() bool {
	return p.configLoaded && p.Status != StatusNotConfigured
}

// StartTime formats the period start in local time.
func (e DailyReportEntry) StartTime() string {
	return fmtutil.FormatTimeMillis(e.PeriodStart)
}

// StatusText maps the numeric log status: 1 cleaning, 2 dropping, anything else empty.
// StatusText 映射数字日志状态：1 为 cleaning，2 为 dropping，其余为空。
func (l AttackLog) StatusText() string {
	switch l.Status {
	case 1:
		return "cleaning"
	case 2:
		return "dropping"
	default:
		return ""
	}
}

func (l AttackLog) StartTimeText() string {
	return fmtutil.FormatTimeMillis(l.StartTime)
}

func (l AttackLog) EndTimeText() string {
	return fmtutil.FormatTimeMillis(l.EndTime)
}

// WeeklyData renders each day as sorted key='value' pairs, one day per line,
// with period_start_date shown as local time. The report is not modified.
// WeeklyData 将每天的数据渲染为排序的 key='value' 对，每天一行，
// period_start_date 显示为本地时间。报告本身不会被修改。
func (r WeeklyReport) WeeklyData() string {
	rows := make([]map[string]string, 0, len(r.WeekData))
	for _, d := range r.WeekData {
		rows = append(rows, map[string]string{
			"ddos_intercept_times": strconv.Itoa(d.DDoSInterceptTimes),
			"ddos_blackhole_times": strconv.Itoa(d.DDoSBlackholeTimes),
			"max_attack_bps":       strconv.FormatInt(d.MaxAttackBPS, 10),
			"max_attack_conns":     strconv.FormatInt(d.MaxAttackConns, 10),
			"period_start_date":    fmtutil.FormatTimeMillis(d.PeriodStartDate),
		})
	}
	return fmtutil.FormatListOfDicts(rows)
}

// Top10Data renders the most attacked addresses, one per line.
// Top10Data 渲染受攻击最多的地址，每行一个。
func (r WeeklyReport) Top10Data() string {
	rows := make([]map[string]string, 0, len(r.Top10))
	for _, t := range r.Top10 {
		rows = append(rows, map[string]string{
			"floating_ip_address": t.FloatingIPAddress,
			"times":               strconv.Itoa(t.Times),
		})
	}
	return fmtutil.FormatListOfDicts(rows)
}

// TrafficLimits, HTTPLimits and ConnectionLimits render each scale list.
// TrafficLimits、HTTPLimits 和 ConnectionLimits 渲染各档位列表。
func (c ConfigList) TrafficLimits() string {
	rows := make([]map[string]string, 0, len(c.TrafficLimitedList))
	for _, t := range c.TrafficLimitedList {
		rows = append(rows, map[string]string{
			"traffic_pos_id":     strconv.Itoa(t.TrafficPosID),
			"traffic_per_second": strconv.FormatInt(t.TrafficPerSecond, 10),
			"packet_per_second":  strconv.FormatInt(t.PacketPerSecond, 10),
		})
	}
	return fmtutil.FormatListOfDicts(rows)
}

func (c ConfigList) HTTPLimits() string {
	rows := make([]map[string]string, 0, len(c.HTTPLimitedList))
	for _, h := range c.HTTPLimitedList {
		rows = append(rows, map[string]string{
			"http_request_pos_id":    strconv.Itoa(h.HTTPRequestPosID),
			"http_packet_per_second": strconv.FormatInt(h.HTTPPacketPerSecond, 10),
		})
	}
	return fmtutil.FormatListOfDicts(rows)
}

func (c ConfigList) ConnectionLimits() string {
	rows := make([]map[string]string, 0, len(c.ConnectionLimitedList))
	for _, cl := range c.ConnectionLimitedList {
		rows = append(rows, map[string]string{
			"cleaning_access_pos_id":   strconv.Itoa(cl.CleaningAccessPosID),
			"new_connection_limited":   strconv.FormatInt(cl.NewConnectionLimited, 10),
			"total_connection_limited": strconv.FormatInt(cl.TotalConnectionLimited, 10),
		})
	}
	return fmtutil.FormatListOfDicts(rows)
}

// WarnConfigText renders the alert switches as sorted key='value' pairs.
// WarnConfigText 将告警开关渲染为按键排序的 key='value' 对。
func (a AlertConfig) WarnConfigText() string {
	m := make(map[string]string, len(a.WarnConfig))
	for k, v := range a.WarnConfig {
		m[k] = strconv.FormatBool(v)
	}
	return fmtutil.FormatDict(m)
}
