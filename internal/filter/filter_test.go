package filter

import (
	"testing"

	apierrors "github.com/netxfw/antiddos/pkg/errors"
	"github.com/netxfw/antiddos/pkg/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var records = []sdk.Protection{
	{FloatingIPID: "fip-1", FloatingIPAddress: "192.168.42.221", NetworkType: "EIP", Status: sdk.StatusNormal},
	{FloatingIPID: "fip-2", FloatingIPAddress: "192.168.42.22", NetworkType: "EIP", Status: sdk.StatusNotConfigured},
	{FloatingIPID: "fip-3", FloatingIPAddress: "10.0.0.8", NetworkType: "ELB", Status: sdk.StatusNormal},
}

func ids(items []sdk.Protection) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.FloatingIPID)
	}
	return out
}

// TestApply tests filtering records with expressions
// TestApply 测试使用表达式过滤记录
func TestApply(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"status", `status == "normal"`, []string{"fip-1", "fip-3"}},
		{"prefix", `address startsWith "192.168."`, []string{"fip-1", "fip-2"}},
		{"combined", `network_type == "EIP" && status != "notConfig"`, []string{"fip-1"}},
		{"membership", `id in ["fip-2", "fip-3"]`, []string{"fip-2", "fip-3"}},
		{"none", `false`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.src, f.String())

			got, err := f.Apply(records)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`status`, `unknown_field == "x"`, `status ==`} {
		_, err := Compile(src)
		assert.ErrorIs(t, err, apierrors.ErrInvalidArgument, src)
	}
}
