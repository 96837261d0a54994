package common

import (
	"github.com/netxfw/antiddos/internal/output"
	"github.com/spf13/cobra"
)

// NewPrinter returns a printer writing to the command's output in the configured format.
// NewPrinter 返回按配置格式写入命令输出的 Printer。
func NewPrinter(cmd *cobra.Command) (*output.Printer, error) {
	return output.New(cmd.OutOrStdout(), GetConfig().Output.Format)
}
