package sdk

import (
	"encoding/json"
	"net/url"
	"testing"
	"time"

	apierrors "github.com/netxfw/antiddos/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalMap(t *testing.T, v interface{}) map[string]interface{} {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

// TestBuildProtectionPayload_L7Disabled tests that the HTTP position is omitted without L7
// TestBuildProtectionPayload_L7Disabled 测试关闭 L7 时省略 HTTP 档位
func TestBuildProtectionPayload_L7Disabled(t *testing.T) {
	p := BuildProtectionPayload(ProtectionOptions{
		EnableL7:            Bool(false),
		TrafficPosID:        Int(1),
		HTTPRequestPosID:    Int(1),
		CleaningAccessPosID: Int(1),
		AppTypeID:           Int(0),
	})

	got := marshalMap(t, p)
	assert.Equal(t, map[string]interface{}{
		"enable_L7":              false,
		"traffic_pos_id":         float64(1),
		"cleaning_access_pos_id": float64(1),
		"app_type_id":            float64(0),
	}, got)
	assert.NotContains(t, got, "http_request_pos_id")
}

func TestBuildProtectionPayload_L7Enabled(t *testing.T) {
	got := marshalMap(t, BuildProtectionPayload(ProtectionOptions{
		EnableL7:         Bool(true),
		TrafficPosID:     Int(2),
		HTTPRequestPosID: Int(3),
	}))
	assert.Equal(t, map[string]interface{}{
		"enable_L7":           true,
		"traffic_pos_id":      float64(2),
		"http_request_pos_id": float64(3),
	}, got)
}

// TestBuildProtectionPayload_Unset tests that unset fields are dropped and
// that an unset L7 flag also drops the HTTP position
// TestBuildProtectionPayload_Unset 测试未设置字段被丢弃，未设置 L7 时也丢弃 HTTP 档位
func TestBuildProtectionPayload_Unset(t *testing.T) {
	assert.Empty(t, marshalMap(t, BuildProtectionPayload(ProtectionOptions{})))

	got := marshalMap(t, BuildProtectionPayload(ProtectionOptions{HTTPRequestPosID: Int(4)}))
	assert.Empty(t, got)
}

// TestProtectionOptions_Validate tests position bounds
// TestProtectionOptions_Validate 测试档位范围
func TestProtectionOptions_Validate(t *testing.T) {
	assert.NoError(t, ProtectionOptions{}.Validate())
	assert.NoError(t, ProtectionOptions{TrafficPosID: Int(9), HTTPRequestPosID: Int(15), CleaningAccessPosID: Int(8), AppTypeID: Int(1)}.Validate())

	tests := []struct {
		name string
		opts ProtectionOptions
		want error
	}{
		{"traffic zero", ProtectionOptions{TrafficPosID: Int(0)}, apierrors.ErrInvalidPosition},
		{"traffic too big", ProtectionOptions{TrafficPosID: Int(10)}, apierrors.ErrInvalidPosition},
		{"http too big", ProtectionOptions{HTTPRequestPosID: Int(16)}, apierrors.ErrInvalidPosition},
		{"cleaning too big", ProtectionOptions{CleaningAccessPosID: Int(9)}, apierrors.ErrInvalidPosition},
		{"app type", ProtectionOptions{AppTypeID: Int(2)}, apierrors.ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.opts.Validate(), tt.want)
		})
	}
}

// TestProtectionOptions_Merge tests filling unset fields from the current settings
// TestProtectionOptions_Merge 测试用当前设置填充未设置的字段
func TestProtectionOptions_Merge(t *testing.T) {
	current := ProtectionConfig{EnableL7: true, TrafficPosID: 3, HTTPRequestPosID: 4, CleaningAccessPosID: 5, AppTypeID: 1}

	merged := ProtectionOptions{TrafficPosID: Int(7)}.Merge(current)
	assert.Equal(t, 7, *merged.TrafficPosID)
	assert.True(t, *merged.EnableL7)
	assert.Equal(t, 4, *merged.HTTPRequestPosID)
	assert.Equal(t, 5, *merged.CleaningAccessPosID)
	assert.Equal(t, 1, *merged.AppTypeID)

	merged = ProtectionOptions{EnableL7: Bool(false)}.Merge(current)
	assert.False(t, *merged.EnableL7)
	assert.NotContains(t, marshalMap(t, BuildProtectionPayload(merged)), "http_request_pos_id")

	// 服务端未返回的档位保持未设置
	merged = ProtectionOptions{}.Merge(ProtectionConfig{})
	assert.Nil(t, merged.TrafficPosID)
	assert.Nil(t, merged.HTTPRequestPosID)
}

// TestListOptions_Query tests that unset filters are dropped
// TestListOptions_Query 测试未设置的过滤条件被丢弃
func TestListOptions_Query(t *testing.T) {
	assert.Empty(t, ListOptions{}.Query())
	assert.Equal(t, url.Values{"ip": {"10."}}, ListOptions{IP: "10."}.Query())
	assert.Equal(t, url.Values{
		"status": {"normal"},
		"ip":     {"192.168"},
		"limit":  {"10"},
		"offset": {"0"},
	}, ListOptions{Status: "normal", IP: "192.168", Limit: Int(10), Offset: Int(0)}.Query())
}

func TestLogOptions_Query(t *testing.T) {
	assert.Empty(t, LogOptions{}.Query())
	assert.Equal(t, url.Values{"sort_dir": {"asc"}, "limit": {"5"}}, LogOptions{SortDir: "asc", Limit: Int(5)}.Query())
}

func TestWeeklyOptions_Query(t *testing.T) {
	assert.Empty(t, WeeklyOptions{}.Query())
	start := time.Date(2016, 9, 26, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, url.Values{"period_start_date": {"1474848000000"}}, WeeklyOptions{PeriodStart: &start}.Query())
}
