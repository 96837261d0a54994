package antiddos

import (
	"github.com/netxfw/antiddos/cmd/antiddos/commands/common"
	"github.com/netxfw/antiddos/internal/display"
	"github.com/spf13/cobra"
)

var alertCmd = &cobra.Command{
	Use:   "alert",
	Short: "Alert configuration",
	Long: `Alert configuration
告警配置`,
}

var alertShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the alert configuration",
	Long: `Show the alert configuration of the project
显示项目的告警配置`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := common.GetSDK()
		if err != nil {
			return err
		}
		alert, err := s.Alert.Get(cmd.Context())
		if err != nil {
			return err
		}
		printer, err := common.NewPrinter(cmd)
		if err != nil {
			return err
		}
		return printer.One(display.AlertColumns, display.AlertRow(alert))
	},
}

func init() {
	alertCmd.AddCommand(alertShowCmd)
	AntiDDoSCmd.AddCommand(alertCmd)
}
