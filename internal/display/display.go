// Package display maps typed resources to column names and display rows.
// Package display 将类型化资源映射为列名和显示行。
package display

import (
	"fmt"
	"strconv"

	"github.com/netxfw/antiddos/internal/utils/fmtutil"
	"github.com/netxfw/antiddos/pkg/sdk"
	"github.com/netxfw/antiddos/pkg/storage"
)

var (
	ListColumns = []string{
		"Floating IP ID",
		"Floating IP Address",
		"Network Type",
		"Status",
	}

	SettingsColumns = []string{
		"CC Defense",
		"Maximum Service Traffic",
		"HTTP Request Rate",
	}

	// ShowColumns is the record followed by its protection settings.
	// ShowColumns 为记录列加上防护设置列。
	ShowColumns = append(append([]string{}, ListColumns...), SettingsColumns...)

	TaskColumns = []string{"Task Status", "Task Message"}

	// TaskDetailColumns adds what the local journal knows about a task.
	// TaskDetailColumns 增加本地任务记录中的信息。
	TaskDetailColumns = append(append([]string{}, TaskColumns...), "Floating IP ID", "Action", "Created At")

	StatusColumns = []string{"Status"}

	DailyColumns = []string{
		"Start Time",
		"BPS In",
		"BPS Attack",
		"BPS Total",
		"PPS In",
		"PPS Attack",
		"PPS Total",
	}

	LogColumns = []string{
		"Start Time",
		"End Time",
		"AntiDDos Status",
		"Trigger BPS",
		"Trigger PPS",
		"Trigger HTTP PPS",
	}

	WeeklyColumns = []string{"DDOS intercept times", "Weekly data", "top10"}

	ConfigListColumns = []string{"Traffic limited list", "HTTP limited list", "Connection limited list"}

	AlertColumns = []string{"Topic URN", "Display Name", "Warn Config"}

	JournalColumns = []string{"Task ID", "Floating IP ID", "Action", "Created At"}
)

// Confirmation is printed by every command that submits a task.
// Confirmation 由所有提交任务的命令输出。
func Confirmation(taskID string) string {
	return fmt.Sprintf("Request Received, task id: %s", taskID)
}

func ListRow(p sdk.Protection) []string {
	return []string{p.FloatingIPID, p.FloatingIPAddress, p.NetworkType, p.Status}
}

// ShowRow renders the record and, when configured, its settings.
// An invalid position from the service is returned as an error.
// ShowRow 渲染记录及其防护设置（如已配置）。服务端返回的非法档位会作为错误返回。
func ShowRow(p sdk.Protection) ([]string, error) {
	row := ListRow(p)
	if !p.Configured() {
		return append(row, "", "", ""), nil
	}

	traffic, err := p.MaximumServiceTraffic()
	if err != nil {
		return nil, err
	}
	rate, err := p.HTTPRequestRate()
	if err != nil {
		return nil, err
	}
	return append(row, p.CCDefense(), traffic, rate), nil
}

func TaskRow(t sdk.Task) []string {
	return []string{t.TaskStatus, t.TaskMsg}
}

func StatusRow(s sdk.StatusInfo) []string {
	return []string{s.Status}
}

func DailyRow(e sdk.DailyReportEntry) []string {
	return []string{
		e.StartTime(),
		i64(e.BPSIn),
		i64(e.BPSAttack),
		i64(e.TotalBPS),
		i64(e.PPSIn),
		i64(e.PPSAttack),
		i64(e.TotalPPS),
	}
}

func LogRow(l sdk.AttackLog) []string {
	return []string{
		l.StartTimeText(),
		l.EndTimeText(),
		l.StatusText(),
		i64(l.TriggerBPS),
		i64(l.TriggerPPS),
		i64(l.TriggerHTTPPPS),
	}
}

func WeeklyRow(r sdk.WeeklyReport) []string {
	return []string{strconv.Itoa(r.DDoSInterceptTimes), r.WeeklyData(), r.Top10Data()}
}

func ConfigListRow(c sdk.ConfigList) []string {
	return []string{c.TrafficLimits(), c.HTTPLimits(), c.ConnectionLimits()}
}

func AlertRow(a sdk.AlertConfig) []string {
	return []string{a.TopicURN, a.DisplayName, a.WarnConfigText()}
}

// TaskDetailRow matches TaskDetailColumns.
func TaskDetailRow(t sdk.Task, rec storage.TaskRecord) []string {
	return append(TaskRow(t), JournalRow(rec)[1:]...)
}

func JournalRow(rec storage.TaskRecord) []string {
	return []string{rec.TaskID, rec.FloatingIPID, string(rec.Action), rec.CreatedAt.Local().Format(fmtutil.TimeLayout)}
}

func i64(v int64) string {
	return strconv.FormatInt(v, 10)
}
