package common

import (
	"errors"
	"time"

	"github.com/netxfw/antiddos/internal/metrics"
	"github.com/netxfw/antiddos/internal/utils/logger"
	"github.com/netxfw/antiddos/pkg/sdk"
	"github.com/netxfw/antiddos/pkg/storage"
	"github.com/spf13/cobra"
)

var (
	// MockJournal allows tests to inject a journal
	// MockJournal 允许测试注入任务记录
	MockJournal storage.Journal

	// ErrJournalDisabled is returned when the task journal is turned off.
	// ErrJournalDisabled 表示任务记录已关闭。
	ErrJournalDisabled = errors.New("task journal is disabled (journal.enabled: false)")
)

// GetJournal returns the local task journal.
// GetJournal 返回本地任务记录。
func GetJournal() (storage.Journal, error) {
	if MockJournal != nil {
		return MockJournal, nil
	}
	cfg := GetConfig()
	if !cfg.Journal.Enabled {
		return nil, ErrJournalDisabled
	}
	return storage.NewYAMLJournal(cfg.Journal.Path, cfg.Journal.MaxEntries), nil
}

// RecordTask counts a submitted task and appends it to the journal.
// A journal failure is logged and never fails the command.
// RecordTask 统计已提交的任务并写入任务记录。记录失败只写日志，不影响命令结果。
func RecordTask(cmd *cobra.Command, action storage.TaskAction, floatingIPID string, ref sdk.TaskRef) {
	log := logger.Get(cmd.Context())
	metrics.ObserveTask(string(action))

	journal, err := GetJournal()
	if err != nil {
		log.Debugf("[JOURNAL] Skipping task %s: %v", ref.TaskID, err)
		return
	}
	rec := storage.TaskRecord{
		TaskID:       ref.TaskID,
		FloatingIPID: floatingIPID,
		Action:       action,
		CreatedAt:    time.Now(),
	}
	if err := journal.Append(rec); err != nil {
		log.Warnf("[WARN]  Failed to record task %s in %s: %v", ref.TaskID, journal.Path(), err)
	}
}
