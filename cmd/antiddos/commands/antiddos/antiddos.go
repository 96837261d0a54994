package antiddos

import (
	"github.com/netxfw/antiddos/cmd/antiddos/commands/common"
	"github.com/netxfw/antiddos/internal/display"
	"github.com/netxfw/antiddos/internal/filter"
	"github.com/netxfw/antiddos/internal/utils/logger"
	"github.com/netxfw/antiddos/pkg/sdk"
	"github.com/netxfw/antiddos/pkg/storage"
	"github.com/spf13/cobra"
)

var AntiDDoSCmd = &cobra.Command{
	Use:   "antiddos",
	Short: "Manage Anti-DDoS protection of floating IPs",
	Long: `Manage Anti-DDoS protection of floating IPs
管理浮动 IP 的 Anti-DDoS 防护

A floating IP may be given by its ID or by a full or partial IPv4 address.
浮动 IP 可以使用 ID 或完整/部分 IPv4 地址指定。`,
}

var openCmd = &cobra.Command{
	Use:   "open <floating_ip>",
	Short: "Open Anti-DDoS protection",
	Long: `Open Anti-DDoS protection for a floating IP
为浮动 IP 开启 Anti-DDoS 防护

CC defense is enabled unless --disable-CC is given.
除非指定 --disable-CC，否则启用 CC 防护。`,
	Example: `  antiddos antiddos open 192.168.42.221 --maximum-service-traffic 70 --http-request-rate 240
  antiddos antiddos open 1867f954-fc11-4202-8247-6af2144867ea --disable-CC --traffic-pos 4`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := protectionOptions(cmd, true)
		if err != nil {
			return err
		}
		return submit(cmd, args[0], storage.TaskActionOpen, func(s *sdk.SDK, p sdk.Protection) (sdk.TaskRef, error) {
			return s.AntiDDoS.Open(cmd.Context(), p.FloatingIPID, opts)
		})
	},
}

var closeCmd = &cobra.Command{
	Use:   "close <floating_ip>",
	Short: "Close Anti-DDoS protection",
	Long: `Close Anti-DDoS protection for a floating IP
关闭浮动 IP 的 Anti-DDoS 防护`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return submit(cmd, args[0], storage.TaskActionClose, func(s *sdk.SDK, p sdk.Protection) (sdk.TaskRef, error) {
			return s.AntiDDoS.Close(cmd.Context(), p.FloatingIPID)
		})
	},
}

var setCmd = &cobra.Command{
	Use:   "set <floating_ip>",
	Short: "Update Anti-DDoS protection settings",
	Long: `Update Anti-DDoS protection settings of a floating IP
更新浮动 IP 的 Anti-DDoS 防护设置

Settings not given on the command line keep their current values.
命令行未指定的设置保持当前值。`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := protectionOptions(cmd, false)
		if err != nil {
			return err
		}
		return submit(cmd, args[0], storage.TaskActionSet, func(s *sdk.SDK, p sdk.Protection) (sdk.TaskRef, error) {
			ctx := cmd.Context()
			if !p.ConfigLoaded() {
				if p, err = s.AntiDDoS.Get(ctx, p.FloatingIPID); err != nil {
					return sdk.TaskRef{}, err
				}
			}
			return s.AntiDDoS.Update(ctx, p.FloatingIPID, opts.Merge(p.ProtectionConfig))
		})
	},
}

var showCmd = &cobra.Command{
	Use:   "show <floating_ip>",
	Short: "Show Anti-DDoS protection of a floating IP",
	Long: `Show Anti-DDoS protection and settings of a floating IP
显示浮动 IP 的 Anti-DDoS 防护及其设置`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, p, err := resolve(cmd, args[0])
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		// 通过 IP 找到的记录不含防护设置
		if !p.ConfigLoaded() && p.Status != sdk.StatusNotConfigured {
			settings, err := s.AntiDDoS.Get(ctx, p.FloatingIPID)
			if err != nil {
				return err
			}
			p = p.WithConfig(settings.ProtectionConfig)
		}

		row, err := display.ShowRow(p)
		if err != nil {
			return err
		}
		printer, err := common.NewPrinter(cmd)
		if err != nil {
			return err
		}
		return printer.One(display.ShowColumns, row)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List Anti-DDoS protection of floating IPs",
	Long: `List Anti-DDoS protection of floating IPs
列出浮动 IP 的 Anti-DDoS 防护

--filter takes a boolean expression over id, address, network_type and status.
--filter 接受基于 id、address、network_type 和 status 的布尔表达式。`,
	Example: `  antiddos antiddos list --status normal
  antiddos antiddos list --ip 192.168. --filter 'network_type == "EIP"'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := listOptions(cmd)
		if err != nil {
			return err
		}
		var flt *filter.Filter
		if src, _ := cmd.Flags().GetString("filter"); src != "" {
			if flt, err = filter.Compile(src); err != nil {
				return err
			}
		}

		s, err := common.GetSDK()
		if err != nil {
			return err
		}
		items, total, err := s.AntiDDoS.List(cmd.Context(), opts)
		if err != nil {
			return err
		}
		logger.Get(cmd.Context()).Debugf("[LIST] %d of %d records returned", len(items), total)
		if flt != nil {
			if items, err = flt.Apply(items); err != nil {
				return err
			}
		}

		rows := make([][]string, 0, len(items))
		for _, p := range items {
			rows = append(rows, display.ListRow(p))
		}
		printer, err := common.NewPrinter(cmd)
		if err != nil {
			return err
		}
		return printer.List(display.ListColumns, rows)
	},
}

// submit resolves token, runs a mutating call and prints the confirmation.
// submit 解析 token，执行变更操作并输出确认信息。
func submit(cmd *cobra.Command, token string, action storage.TaskAction, call func(*sdk.SDK, sdk.Protection) (sdk.TaskRef, error)) error {
	s, p, err := resolve(cmd, token)
	if err != nil {
		return err
	}
	ref, err := call(s, p)
	if err != nil {
		return err
	}
	common.RecordTask(cmd, action, p.FloatingIPID, ref)

	printer, err := common.NewPrinter(cmd)
	if err != nil {
		return err
	}
	return printer.Message(display.Confirmation(ref.TaskID))
}

func listOptions(cmd *cobra.Command) (sdk.ListOptions, error) {
	f := cmd.Flags()
	var opts sdk.ListOptions
	opts.Status, _ = f.GetString("status")
	opts.IP, _ = f.GetString("ip")
	if err := common.ValidateStatus(opts.Status); err != nil {
		return opts, err
	}
	var err error
	if opts.Limit, opts.Offset, err = paging(cmd); err != nil {
		return opts, err
	}
	return opts, nil
}

// paging reads --limit and --offset; unset flags stay nil and are not sent.
// paging 读取 --limit 和 --offset；未设置的标志保持 nil，不会发送。
func paging(cmd *cobra.Command) (limit, offset *int, err error) {
	f := cmd.Flags()
	if f.Changed("limit") {
		v, _ := f.GetInt("limit")
		if err := common.ValidateLimit(v); err != nil {
			return nil, nil, err
		}
		limit = sdk.Int(v)
	}
	if f.Changed("offset") {
		v, _ := f.GetInt("offset")
		if err := common.ValidateOffset(v); err != nil {
			return nil, nil, err
		}
		offset = sdk.Int(v)
	}
	return limit, offset, nil
}

func addPagingFlags(cmd *cobra.Command) {
	cmd.Flags().Int("limit", 0, "Maximum number of records to return")
	cmd.Flags().Int("offset", 0, "Number of records to skip")
}

func init() {
	addProtectionFlags(openCmd)
	// open 必须指定最大业务流量
	openCmd.MarkFlagsOneRequired(flagTrafficPos, flagMaxTraffic)
	addProtectionFlags(setCmd)

	listCmd.Flags().String("status", "", "Filter by protection status")
	listCmd.Flags().String("ip", "", "Filter by (partial) floating IP address")
	listCmd.Flags().String("filter", "", "Boolean expression applied to the returned records")
	addPagingFlags(listCmd)

	AntiDDoSCmd.AddCommand(openCmd)
	AntiDDoSCmd.AddCommand(closeCmd)
	AntiDDoSCmd.AddCommand(setCmd)
	AntiDDoSCmd.AddCommand(showCmd)
	AntiDDoSCmd.AddCommand(listCmd)
}
