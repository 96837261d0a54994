package antiddos

import (
	"github.com/netxfw/antiddos/cmd/antiddos/commands/common"
	"github.com/netxfw/antiddos/internal/display"
	"github.com/netxfw/antiddos/internal/utils/logger"
	"github.com/netxfw/antiddos/pkg/sdk"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status <floating_ip>",
	Short: "Show the defense status of a floating IP",
	Long: `Show the defense status of a floating IP
显示浮动 IP 的防御状态`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, p, err := resolve(cmd, args[0])
		if err != nil {
			return err
		}
		info, err := s.AntiDDoS.Status(cmd.Context(), p.FloatingIPID)
		if err != nil {
			return err
		}
		printer, err := common.NewPrinter(cmd)
		if err != nil {
			return err
		}
		return printer.One(display.StatusColumns, display.StatusRow(info))
	},
}

var dailyCmd = &cobra.Command{
	Use:   "daily <floating_ip>",
	Short: "Show the traffic report of the last 24 hours",
	Long: `Show the traffic report of a floating IP for the last 24 hours
显示浮动 IP 最近 24 小时的流量报告`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, p, err := resolve(cmd, args[0])
		if err != nil {
			return err
		}
		entries, err := s.AntiDDoS.DailyReport(cmd.Context(), p.FloatingIPID)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, display.DailyRow(e))
		}
		printer, err := common.NewPrinter(cmd)
		if err != nil {
			return err
		}
		return printer.List(display.DailyColumns, rows)
	},
}

var logsCmd = &cobra.Command{
	Use:   "logs <floating_ip>",
	Short: "Show attack logs of a floating IP",
	Long: `Show the attack logs of a floating IP
显示浮动 IP 的攻击日志`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts sdk.LogOptions
		opts.SortDir, _ = cmd.Flags().GetString("sort-dir")
		if err := common.ValidateSortDir(opts.SortDir); err != nil {
			return err
		}
		var err error
		if opts.Limit, opts.Offset, err = paging(cmd); err != nil {
			return err
		}

		s, p, err := resolve(cmd, args[0])
		if err != nil {
			return err
		}
		logs, total, err := s.AntiDDoS.Logs(cmd.Context(), p.FloatingIPID, opts)
		if err != nil {
			return err
		}
		logger.Get(cmd.Context()).Debugf("[LOGS] %d of %d attack logs returned", len(logs), total)

		rows := make([][]string, 0, len(logs))
		for _, l := range logs {
			rows = append(rows, display.LogRow(l))
		}
		printer, err := common.NewPrinter(cmd)
		if err != nil {
			return err
		}
		return printer.List(display.LogColumns, rows)
	},
}

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Show the weekly defense report of all floating IPs",
	Long: `Show the weekly defense report of all floating IPs
显示所有浮动 IP 的每周防护报告

Without --start-date the service reports the last seven days.
未指定 --start-date 时，服务端返回最近七天的报告。`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts sdk.WeeklyOptions
		if cmd.Flags().Changed("start-date") {
			raw, _ := cmd.Flags().GetString("start-date")
			start, err := common.ParseDate(raw)
			if err != nil {
				return err
			}
			opts.PeriodStart = &start
		}

		s, err := common.GetSDK()
		if err != nil {
			return err
		}
		report, err := s.AntiDDoS.WeeklyReport(cmd.Context(), opts)
		if err != nil {
			return err
		}
		printer, err := common.NewPrinter(cmd)
		if err != nil {
			return err
		}
		return printer.One(display.WeeklyColumns, display.WeeklyRow(report))
	},
}

var configListCmd = &cobra.Command{
	Use:   "config-list",
	Short: "Show the available protection thresholds",
	Long: `Show the traffic, HTTP and connection thresholds offered by the service
显示服务端提供的流量、HTTP 和连接阈值`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := common.GetSDK()
		if err != nil {
			return err
		}
		list, err := s.AntiDDoS.ConfigList(cmd.Context())
		if err != nil {
			return err
		}
		printer, err := common.NewPrinter(cmd)
		if err != nil {
			return err
		}
		return printer.One(display.ConfigListColumns, display.ConfigListRow(list))
	},
}

// resolve returns the SDK and the single record token refers to.
// resolve 返回 SDK 以及 token 对应的唯一记录。
func resolve(cmd *cobra.Command, token string) (*sdk.SDK, sdk.Protection, error) {
	s, err := common.GetSDK()
	if err != nil {
		return nil, sdk.Protection{}, err
	}
	p, err := s.AntiDDoS.Find(cmd.Context(), token)
	if err != nil {
		return nil, sdk.Protection{}, err
	}
	return s, p, nil
}

func init() {
	logsCmd.Flags().String("sort-dir", "", "Sort direction by start time: asc or desc")
	addPagingFlags(logsCmd)
	weeklyCmd.Flags().String("start-date", "", "First day of the report, YYYY-MM-DD")

	AntiDDoSCmd.AddCommand(statusCmd)
	AntiDDoSCmd.AddCommand(dailyCmd)
	AntiDDoSCmd.AddCommand(logsCmd)
	AntiDDoSCmd.AddCommand(weeklyCmd)
	AntiDDoSCmd.AddCommand(configListCmd)
}
