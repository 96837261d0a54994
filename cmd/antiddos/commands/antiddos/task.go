package antiddos

import (
	"github.com/netxfw/antiddos/cmd/antiddos/commands/common"
	"github.com/netxfw/antiddos/internal/display"
	"github.com/netxfw/antiddos/internal/output"
	"github.com/netxfw/antiddos/internal/utils/logger"
	apierrors "github.com/netxfw/antiddos/pkg/errors"
	"github.com/netxfw/antiddos/pkg/storage"
	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Asynchronous task management",
	Long: `Asynchronous task management
异步任务管理`,
}

var taskShowCmd = &cobra.Command{
	Use:   "show <task_id>",
	Short: "Show the status of a task",
	Long: `Show the status of a task returned by open, set or close
显示 open、set 或 close 返回的任务状态`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := common.GetSDK()
		if err != nil {
			return err
		}
		task, err := s.AntiDDoS.TaskStatus(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printer, err := common.NewPrinter(cmd)
		if err != nil {
			return err
		}
		if rec, ok := localTask(cmd, args[0]); ok {
			return printer.One(display.TaskDetailColumns, display.TaskDetailRow(task, rec))
		}
		return printer.One(display.TaskColumns, display.TaskRow(task))
	},
}

// localTask looks the task up in the journal. Tasks submitted elsewhere are
// simply not found; journal failures are logged and ignored.
// localTask 在本地任务记录中查找任务。其他地方提交的任务查不到；记录读取失败仅写日志。
func localTask(cmd *cobra.Command, taskID string) (storage.TaskRecord, bool) {
	log := logger.Get(cmd.Context())
	journal, err := common.GetJournal()
	if err != nil {
		log.Debugf("[TASK] Journal unavailable: %v", err)
		return storage.TaskRecord{}, false
	}
	rec, err := journal.Get(taskID)
	if err != nil {
		if !apierrors.IsNotFound(err) {
			log.Warnf("[WARN]  Failed to read task journal %s: %v", journal.Path(), err)
		}
		return storage.TaskRecord{}, false
	}
	return rec, true
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks submitted from this machine",
	Long: `List tasks submitted from this machine, newest first
列出本机提交的任务（最新的在前）`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		journal, err := common.GetJournal()
		if err != nil {
			return err
		}
		records, err := journal.List()
		if err != nil {
			return err
		}
		printer, err := common.NewPrinter(cmd)
		if err != nil {
			return err
		}
		if len(records) == 0 && printer.Format() == output.FormatTable {
			return printer.Message("No tasks recorded in " + journal.Path())
		}
		rows := make([][]string, 0, len(records))
		for _, rec := range records {
			rows = append(rows, display.JournalRow(rec))
		}
		return printer.List(display.JournalColumns, rows)
	},
}

func init() {
	taskCmd.AddCommand(taskShowCmd)
	taskCmd.AddCommand(taskListCmd)
	AntiDDoSCmd.AddCommand(taskCmd)
}
