package antiddos

import (
	"fmt"

	"github.com/netxfw/antiddos/pkg/sdk"
	"github.com/spf13/cobra"
)

const (
	flagEnableCC        = "enable-CC"
	flagDisableCC       = "disable-CC"
	flagTrafficPos      = "traffic-pos"
	flagMaxTraffic      = "maximum-service-traffic"
	flagHTTPRequestPos  = "http-request-pos"
	flagHTTPRequestRate = "http-request-rate"
	flagCleaningAccess  = "cleaning-access-pos"
	flagAppType         = "app-type"
)

// addProtectionFlags registers the settings flags shared by open and set.
// addProtectionFlags 注册 open 和 set 共用的防护设置标志。
func addProtectionFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Bool(flagEnableCC, false, "Enable CC defense (Layer-7 protection)")
	f.Bool(flagDisableCC, false, "Disable CC defense (Layer-7 protection)")
	f.Int(flagTrafficPos, 0, fmt.Sprintf("Maximum service traffic position, 1-%d", sdk.TrafficScale.Len()))
	f.Int(flagMaxTraffic, 0, fmt.Sprintf("Maximum service traffic in Mbit/s, one of %s", sdk.TrafficScale.Choices()))
	f.Int(flagHTTPRequestPos, 0, fmt.Sprintf("HTTP request rate position, 1-%d, only used with CC defense", sdk.HTTPRateScale.Len()))
	f.Int(flagHTTPRequestRate, 0, fmt.Sprintf("HTTP request rate per second, one of %s, only used with CC defense", sdk.HTTPRateScale.Choices()))
	f.Int(flagCleaningAccess, 0, fmt.Sprintf("Cleaning access position, 1-%d", sdk.MaxCleaningAccessPos))
	f.Int(flagAppType, 0, fmt.Sprintf("Application type, %d or %d", sdk.MinAppType, sdk.MaxAppType))

	cmd.MarkFlagsMutuallyExclusive(flagEnableCC, flagDisableCC)
	cmd.MarkFlagsMutuallyExclusive(flagTrafficPos, flagMaxTraffic)
	cmd.MarkFlagsMutuallyExclusive(flagHTTPRequestPos, flagHTTPRequestRate)
}

// protectionOptions reads the flags that were set. With defaultCC, CC defense
// is enabled unless --disable-CC is given; otherwise an unset toggle stays nil.
// protectionOptions 读取已设置的标志。defaultCC 为 true 时，除非指定 --disable-CC，
// 否则启用 CC 防护；为 false 时未设置的开关保持 nil。
func protectionOptions(cmd *cobra.Command, defaultCC bool) (sdk.ProtectionOptions, error) {
	f := cmd.Flags()
	var opts sdk.ProtectionOptions

	switch {
	case f.Changed(flagDisableCC):
		v, _ := f.GetBool(flagDisableCC)
		opts.EnableL7 = sdk.Bool(!v)
	case f.Changed(flagEnableCC):
		v, _ := f.GetBool(flagEnableCC)
		opts.EnableL7 = sdk.Bool(v)
	case defaultCC:
		opts.EnableL7 = sdk.Bool(true)
	}

	var err error
	if opts.TrafficPosID, err = position(cmd, flagTrafficPos, flagMaxTraffic, sdk.TrafficScale); err != nil {
		return opts, err
	}
	if opts.HTTPRequestPosID, err = position(cmd, flagHTTPRequestPos, flagHTTPRequestRate, sdk.HTTPRateScale); err != nil {
		return opts, err
	}
	if f.Changed(flagCleaningAccess) {
		v, _ := f.GetInt(flagCleaningAccess)
		opts.CleaningAccessPosID = sdk.Int(v)
	}
	if f.Changed(flagAppType) {
		v, _ := f.GetInt(flagAppType)
		opts.AppTypeID = sdk.Int(v)
	}
	return opts, opts.Validate()
}

// position takes either a raw position or a value that is mapped onto scale.
func position(cmd *cobra.Command, posFlag, valueFlag string, scale sdk.Scale) (*int, error) {
	f := cmd.Flags()
	if f.Changed(posFlag) {
		v, _ := f.GetInt(posFlag)
		return sdk.Int(v), nil
	}
	if f.Changed(valueFlag) {
		v, _ := f.GetInt(valueFlag)
		pos, err := scale.Position(v)
		if err != nil {
			return nil, err
		}
		return sdk.Int(pos), nil
	}
	return nil, nil
}
