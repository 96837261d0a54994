package display

import (
	"testing"
	"time"

	apierrors "github.com/netxfw/antiddos/pkg/errors"
	"github.com/netxfw/antiddos/pkg/sdk"
	"github.com/netxfw/antiddos/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(status string) sdk.Protection {
	return sdk.Protection{
		FloatingIPID:      "1867f954-fc11-4202-8247-6af2144867ea",
		FloatingIPAddress: "192.168.42.221",
		NetworkType:       "EIP",
		Status:            status,
	}
}

func TestConfirmation(t *testing.T) {
	assert.Equal(t, "Request Received, task id: fake_task_id", Confirmation("fake_task_id"))
}

// TestColumnsMatchRows tests that every row has one value per column
// TestColumnsMatchRows 测试每行的值数量与列数一致
func TestColumnsMatchRows(t *testing.T) {
	show, err := ShowRow(record(sdk.StatusNormal))
	require.NoError(t, err)

	assert.Len(t, ListRow(record(sdk.StatusNormal)), len(ListColumns))
	assert.Len(t, show, len(ShowColumns))
	assert.Len(t, TaskRow(sdk.Task{}), len(TaskColumns))
	assert.Len(t, StatusRow(sdk.StatusInfo{}), len(StatusColumns))
	assert.Len(t, DailyRow(sdk.DailyReportEntry{}), len(DailyColumns))
	assert.Len(t, LogRow(sdk.AttackLog{}), len(LogColumns))
	assert.Len(t, WeeklyRow(sdk.WeeklyReport{}), len(WeeklyColumns))
	assert.Len(t, ConfigListRow(sdk.ConfigList{}), len(ConfigListColumns))
	assert.Len(t, AlertRow(sdk.AlertConfig{}), len(AlertColumns))
	assert.Len(t, JournalRow(storage.TaskRecord{}), len(JournalColumns))
	assert.Len(t, TaskDetailRow(sdk.Task{}, storage.TaskRecord{}), len(TaskDetailColumns))
	assert.Equal(t, len(ListColumns)+len(SettingsColumns), len(ShowColumns))
}

// TestShowRow tests settings rendering for configured and unconfigured records
// TestShowRow 测试已配置和未配置记录的设置渲染
func TestShowRow(t *testing.T) {
	row, err := ShowRow(record(sdk.StatusNotConfigured).WithConfig(sdk.ProtectionConfig{}))
	require.NoError(t, err)
	assert.Equal(t, []string{"1867f954-fc11-4202-8247-6af2144867ea", "192.168.42.221", "EIP", "notConfig", "", "", ""}, row)

	row, err = ShowRow(record(sdk.StatusNormal).WithConfig(sdk.ProtectionConfig{EnableL7: true, TrafficPosID: 1, HTTPRequestPosID: 1}))
	require.NoError(t, err)
	assert.Equal(t, []string{"Enabled", "10Mbit/s", "100/s"}, row[4:])

	row, err = ShowRow(record(sdk.StatusNormal).WithConfig(sdk.ProtectionConfig{EnableL7: false, TrafficPosID: 9, HTTPRequestPosID: 3}))
	require.NoError(t, err)
	assert.Equal(t, []string{"Disabled", "300Mbit/s", ""}, row[4:])

	_, err = ShowRow(record(sdk.StatusNormal).WithConfig(sdk.ProtectionConfig{TrafficPosID: 0}))
	assert.ErrorIs(t, err, apierrors.ErrInvalidPosition)
}

func TestDailyAndLogRows(t *testing.T) {
	row := DailyRow(sdk.DailyReportEntry{BPSIn: 1, BPSAttack: 2, TotalBPS: 3, PPSIn: 4, PPSAttack: 5, TotalPPS: 6})
	assert.Equal(t, []string{"", "1", "2", "3", "4", "5", "6"}, row)

	row = LogRow(sdk.AttackLog{Status: 2, TriggerBPS: 10, TriggerPPS: 20, TriggerHTTPPPS: 30})
	assert.Equal(t, []string{"", "", "dropping", "10", "20", "30"}, row)
}

// TestAlertRow tests that the warn config is sorted by key
// TestAlertRow 测试告警配置按键排序
func TestAlertRow(t *testing.T) {
	row := AlertRow(sdk.AlertConfig{
		TopicURN:    "urn:smn:region:project:topic",
		DisplayName: "ops",
		WarnConfig:  map[string]bool{"waf": false, "antiDDoS": true},
	})
	assert.Equal(t, []string{"urn:smn:region:project:topic", "ops", "antiDDoS='true', waf='false'"}, row)
}

func TestJournalRow(t *testing.T) {
	at := time.Date(2026, 10, 1, 8, 0, 0, 0, time.Local)
	row := JournalRow(storage.TaskRecord{TaskID: "t1", FloatingIPID: "fip", Action: storage.TaskActionClose, CreatedAt: at})
	assert.Equal(t, []string{"t1", "fip", "close", "2026-10-01 08:00:00"}, row)
}

func TestTaskDetailRow(t *testing.T) {
	at := time.Date(2026, 10, 1, 8, 0, 0, 0, time.Local)
	row := TaskDetailRow(sdk.Task{TaskStatus: "success", TaskMsg: "ok"},
		storage.TaskRecord{TaskID: "t1", FloatingIPID: "fip", Action: storage.TaskActionOpen, CreatedAt: at})
	assert.Equal(t, []string{"success", "ok", "fip", "open", "2026-10-01 08:00:00"}, row)
}
