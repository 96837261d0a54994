package antiddos

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/netxfw/antiddos/cmd/antiddos/commands/common"
	apierrors "github.com/netxfw/antiddos/pkg/errors"
	"github.com/netxfw/antiddos/pkg/sdk"
	"github.com/netxfw/antiddos/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestStatusCmd tests the status command
// TestStatusCmd 测试 status 命令
func TestStatusCmd(t *testing.T) {
	api, _, _ := setupMockSDK(t, "value")
	api.On("Find", fipAddress).Return(record(sdk.StatusNormal), nil)
	api.On("Status", fipID).Return(sdk.StatusInfo{Status: sdk.StatusPacketCleaning}, nil)

	output, err := executeCommand(AntiDDoSCmd, "status", fipAddress)
	require.NoError(t, err)
	assert.Equal(t, "packetcleaning\n", output)
	api.AssertExpectations(t)
}

func TestDailyCmd(t *testing.T) {
	api, _, _ := setupMockSDK(t, "value")
	api.On("Find", fipID).Return(record(sdk.StatusNormal), nil)
	api.On("DailyReport", fipID).Return([]sdk.DailyReportEntry{
		{BPSIn: 1, BPSAttack: 2, TotalBPS: 3, PPSIn: 4, PPSAttack: 5, TotalPPS: 6},
		{TotalBPS: 10},
	}, nil)

	output, err := executeCommand(AntiDDoSCmd, "daily", fipID)
	require.NoError(t, err)
	// 起始时间为 0 时显示为空
	assert.Equal(t, " 1 2 3 4 5 6\n 0 0 10 0 0 0\n", output)
}

// TestLogsCmd tests that paging flags reach the SDK
// TestLogsCmd 测试分页标志传递给 SDK
func TestLogsCmd(t *testing.T) {
	api, _, _ := setupMockSDK(t, "value")
	api.On("Find", fipID).Return(record(sdk.StatusNormal), nil)
	api.On("Logs", fipID, sdk.LogOptions{SortDir: "desc", Limit: sdk.Int(5)}).
		Return([]sdk.AttackLog{{Status: 1, TriggerBPS: 100, TriggerPPS: 200, TriggerHTTPPPS: 300}}, 1, nil)

	output, err := executeCommand(AntiDDoSCmd, "logs", fipID, "--sort-dir", "desc", "--limit", "5")
	require.NoError(t, err)
	assert.Equal(t, "  cleaning 100 200 300\n", output)
	api.AssertExpectations(t)

	_, err = executeCommand(AntiDDoSCmd, "logs", fipID, "--sort-dir", "up")
	assert.ErrorIs(t, err, apierrors.ErrInvalidArgument)
}

// TestWeeklyCmd tests the start date and the rendered report
// TestWeeklyCmd 测试起始日期和报告渲染
func TestWeeklyCmd(t *testing.T) {
	api, _, _ := setupMockSDK(t, "value")
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.Local)
	api.On("WeeklyReport", mock.MatchedBy(func(o sdk.WeeklyOptions) bool {
		return o.PeriodStart != nil && o.PeriodStart.Equal(start)
	})).Return(sdk.WeeklyReport{
		DDoSInterceptTimes: 3,
		Top10:              []sdk.TopAttacked{{FloatingIPAddress: "10.0.0.1", Times: 3}},
	}, nil)

	output, err := executeCommand(AntiDDoSCmd, "weekly", "--start-date", "2026-10-01")
	require.NoError(t, err)
	assert.Equal(t, "3\n\nfloating_ip_address='10.0.0.1', times='3'\n", output)
	api.AssertExpectations(t)

	_, err = executeCommand(AntiDDoSCmd, "weekly", "--start-date", "yesterday")
	assert.ErrorIs(t, err, apierrors.ErrInvalidArgument)
}

func TestWeeklyCmdCurrentWeek(t *testing.T) {
	api, _, _ := setupMockSDK(t, "value")
	api.On("WeeklyReport", sdk.WeeklyOptions{}).Return(sdk.WeeklyReport{}, nil)

	_, err := executeCommand(AntiDDoSCmd, "weekly")
	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestConfigListCmd(t *testing.T) {
	api, _, _ := setupMockSDK(t, "value")
	api.On("ConfigList").Return(sdk.ConfigList{
		TrafficLimitedList: []sdk.TrafficLimit{{TrafficPosID: 1, TrafficPerSecond: 10, PacketPerSecond: 2000}},
	}, nil)

	output, err := executeCommand(AntiDDoSCmd, "config-list")
	require.NoError(t, err)
	assert.Equal(t, "packet_per_second='2000', traffic_per_second='10', traffic_pos_id='1'\n\n\n", output)
}

// TestTaskShowCmd tests the task show command
// TestTaskShowCmd 测试 task show 命令
func TestTaskShowCmd(t *testing.T) {
	api, _, _ := setupMockSDK(t, "value")
	api.On("TaskStatus", "fake_task_id").Return(sdk.Task{TaskStatus: "success", TaskMsg: "ok"}, nil)
	api.On("TaskStatus", "missing").Return(sdk.Task{}, apierrors.ErrTaskNotFound)

	output, err := executeCommand(AntiDDoSCmd, "task", "show", "fake_task_id")
	require.NoError(t, err)
	assert.Equal(t, "success\nok\n", output)

	_, err = executeCommand(AntiDDoSCmd, "task", "show", "missing")
	assert.ErrorIs(t, err, apierrors.ErrTaskNotFound)
}

// TestTaskListCmd tests listing the local journal, newest first
// TestTaskListCmd 测试列出本地任务记录（最新的在前）
func TestTaskListCmd(t *testing.T) {
	_, _, journal := setupMockSDK(t, "value")
	now := time.Now()
	require.NoError(t, journal.Append(storage.TaskRecord{TaskID: "t1", FloatingIPID: "fip-1", Action: storage.TaskActionOpen, CreatedAt: now.Add(-time.Minute)}))
	require.NoError(t, journal.Append(storage.TaskRecord{TaskID: "t2", FloatingIPID: "fip-1", Action: storage.TaskActionClose, CreatedAt: now}))

	output, err := executeCommand(AntiDDoSCmd, "task", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "t2 fip-1 close ")
	assert.Contains(t, lines[1], "t1 fip-1 open ")
}

// TestTaskShowCmdLocalTask tests that journal details are added for local tasks
// TestTaskShowCmdLocalTask 测试本机提交的任务会附加任务记录信息
func TestTaskShowCmdLocalTask(t *testing.T) {
	api, _, journal := setupMockSDK(t, "value")
	at := time.Date(2026, 10, 1, 8, 0, 0, 0, time.Local)
	require.NoError(t, journal.Append(storage.TaskRecord{TaskID: "t1", FloatingIPID: "fip-1", Action: storage.TaskActionSet, CreatedAt: at}))
	api.On("TaskStatus", "t1").Return(sdk.Task{TaskStatus: "running", TaskMsg: ""}, nil)

	output, err := executeCommand(AntiDDoSCmd, "task", "show", "t1")
	require.NoError(t, err)
	assert.Equal(t, "running\n\nfip-1\nset\n2026-10-01 08:00:00\n", output)
}

// TestTaskShowCmdCorruptJournal tests that an unreadable journal does not fail the command
// TestTaskShowCmdCorruptJournal 测试任务记录损坏时命令仍然成功
func TestTaskShowCmdCorruptJournal(t *testing.T) {
	api, _, journal := setupMockSDK(t, "value")
	require.NoError(t, os.WriteFile(journal.Path(), []byte("tasks: ["), 0600))
	api.On("TaskStatus", "t1").Return(sdk.Task{TaskStatus: "success", TaskMsg: "ok"}, nil)

	output, err := executeCommand(AntiDDoSCmd, "task", "show", "t1")
	require.NoError(t, err)
	assert.Equal(t, "success\nok\n", output)
}

// TestTaskListCmdEmpty tests the empty journal message in table format only
// TestTaskListCmdEmpty 测试空任务记录仅在表格格式下输出提示
func TestTaskListCmdEmpty(t *testing.T) {
	_, _, journal := setupMockSDK(t, "table")
	output, err := executeCommand(AntiDDoSCmd, "task", "list")
	require.NoError(t, err)
	assert.Equal(t, "No tasks recorded in "+journal.Path()+"\n", output)

	common.GetConfig().Output.Format = "json"
	output, err = executeCommand(AntiDDoSCmd, "task", "list")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", output)
}

func TestTaskListCmdJournalDisabled(t *testing.T) {
	setupMockSDK(t, "table")
	common.MockJournal = nil
	cfg := common.GetConfig()
	cfg.Journal.Enabled = false

	_, err := executeCommand(AntiDDoSCmd, "task", "list")
	assert.ErrorIs(t, err, common.ErrJournalDisabled)
}

// TestAlertShowCmd tests that warn config is rendered sorted by key
// TestAlertShowCmd 测试告警配置按键排序渲染
func TestAlertShowCmd(t *testing.T) {
	_, alert, _ := setupMockSDK(t, "value")
	alert.On("Get").Return(sdk.AlertConfig{
		TopicURN:    "urn:smn:region:project:antiddos",
		DisplayName: "ops",
		WarnConfig: map[string]bool{
			"weak_password": false,
			"antiDDoS":      true,
			"back_doors":    false,
		},
	}, nil)

	output, err := executeCommand(AntiDDoSCmd, "alert", "show")
	require.NoError(t, err)
	assert.Equal(t, "urn:smn:region:project:antiddos\nops\nantiDDoS='true', back_doors='false', weak_password='false'\n", output)
	alert.AssertExpectations(t)
}
