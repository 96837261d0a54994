package sdk_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/netxfw/antiddos/internal/httpclient"
	apierrors "github.com/netxfw/antiddos/pkg/errors"
	"github.com/netxfw/antiddos/pkg/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	query  string
	body   map[string]interface{}
}

type recorder struct {
	mu    sync.Mutex
	calls []recorded
}

func (r *recorder) list() []recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recorded(nil), r.calls...)
}

// newServerSDK wires a real SDK to an httptest server answering from routes.
// newServerSDK 将真实 SDK 连接到按 routes 应答的 httptest 服务。
func newServerSDK(t *testing.T, routes map[string]string) (*sdk.SDK, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := recorded{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery}
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			assert.NoError(t, json.Unmarshal(data, &call.body))
		}
		rec.mu.Lock()
		rec.calls = append(rec.calls, call)
		rec.mu.Unlock()

		resp, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error_code":"10001404","error_description":"not found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(resp))
	}))
	t.Cleanup(srv.Close)

	v1, err := httpclient.New(httpclient.Options{Endpoint: srv.URL + "/v1/p1", Token: "tok"})
	require.NoError(t, err)
	v2, err := httpclient.New(httpclient.Options{Endpoint: srv.URL + "/v2/p1", Token: "tok"})
	require.NoError(t, err)
	return sdk.NewSDK(v1, v2), rec
}

// TestClose_DeletesAndReturnsTask tests DELETE /antiddos/{id}
// TestClose_DeletesAndReturnsTask 测试 DELETE /antiddos/{id}
func TestClose_DeletesAndReturnsTask(t *testing.T) {
	s, rec := newServerSDK(t, map[string]string{
		"DELETE /v1/p1/antiddos/fip-1": `{"error_code":"","error_description":"","task_id":"task-42"}`,
	})

	ref, err := s.AntiDDoS.Close(context.Background(), "fip-1")
	require.NoError(t, err)
	assert.Equal(t, "task-42", ref.TaskID)
	require.Len(t, rec.list(), 1)
	assert.Equal(t, http.MethodDelete, rec.list()[0].method)
}

// TestOpen_Payload tests the body sent by open with L7 disabled
// TestOpen_Payload 测试关闭 L7 时 open 发送的请求体
func TestOpen_Payload(t *testing.T) {
	s, rec := newServerSDK(t, map[string]string{
		"POST /v1/p1/antiddos/fip-1": `{"task_id":"t-open"}`,
	})

	ref, err := s.AntiDDoS.Open(context.Background(), "fip-1", sdk.ProtectionOptions{
		EnableL7:         sdk.Bool(false),
		TrafficPosID:     sdk.Int(1),
		HTTPRequestPosID: sdk.Int(1),
		AppTypeID:        sdk.Int(0),
	})
	require.NoError(t, err)
	assert.Equal(t, "t-open", ref.TaskID)

	body := rec.list()[0].body
	assert.Equal(t, false, body["enable_L7"])
	assert.Equal(t, float64(1), body["traffic_pos_id"])
	assert.Equal(t, float64(0), body["app_type_id"])
	assert.NotContains(t, body, "http_request_pos_id")
}

func TestOpen_InvalidPositionNotSent(t *testing.T) {
	s, rec := newServerSDK(t, nil)
	_, err := s.AntiDDoS.Open(context.Background(), "fip-1", sdk.ProtectionOptions{TrafficPosID: sdk.Int(12)})
	assert.ErrorIs(t, err, apierrors.ErrInvalidPosition)
	assert.Empty(t, rec.list())
}

// TestUpdate_EmbeddedError tests that an error inside a 2xx task response is surfaced
// TestUpdate_EmbeddedError 测试 2xx 任务响应中的错误会被返回
func TestUpdate_EmbeddedError(t *testing.T) {
	s, rec := newServerSDK(t, map[string]string{
		"PUT /v1/p1/antiddos/fip-1": `{"error_code":"10001011","error_description":"EIP is being configured","task_id":""}`,
	})
	_, err := s.AntiDDoS.Update(context.Background(), "fip-1", sdk.ProtectionOptions{EnableL7: sdk.Bool(true), TrafficPosID: sdk.Int(2)})
	require.Error(t, err)
	assert.True(t, apierrors.IsAPIError(err))
	assert.Contains(t, err.Error(), "EIP is being configured")
	assert.Equal(t, http.MethodPut, rec.list()[0].method)
}

// TestList_Query tests the list query and decoding
// TestList_Query 测试列表查询和解码
func TestList_Query(t *testing.T) {
	s, rec := newServerSDK(t, map[string]string{
		"GET /v1/p1/antiddos": `{"total":12,"ddosStatus":[{"floating_ip_id":"a","floating_ip_address":"10.0.0.1","network_type":"EIP","status":"normal"}]}`,
	})

	items, total, err := s.AntiDDoS.List(context.Background(), sdk.ListOptions{Status: "normal", Limit: sdk.Int(1)})
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	require.Len(t, items, 1)
	assert.Equal(t, "10.0.0.1", items[0].FloatingIPAddress)
	assert.Equal(t, "limit=1&status=normal", rec.list()[0].query)
}

// TestReports tests the read-only report endpoints
// TestReports 测试只读报告接口
func TestReports(t *testing.T) {
	s, rec := newServerSDK(t, map[string]string{
		"GET /v1/p1/antiddos/fip-1/status":       `{"status":"normal"}`,
		"GET /v1/p1/antiddos/fip-1/daily":        `{"data":[{"period_start":1474880400000,"bps_in":1,"bps_attack":2,"total_bps":3,"pps_in":4,"pps_attack":5,"total_pps":6}]}`,
		"GET /v1/p1/antiddos/fip-1/logs":         `{"total":1,"logs":[{"start_time":1474880400000,"end_time":1474880700000,"status":1,"trigger_bps":10,"trigger_pps":20,"trigger_http_pps":30}]}`,
		"GET /v1/p1/antiddos/weekly":             `{"ddos_intercept_times":1,"weekdata":[{"ddos_intercept_times":1,"period_start_date":1474848000000}],"top10":[{"floating_ip_address":"10.0.0.1","times":1}]}`,
		"GET /v1/p1/antiddos/query_config_list":  `{"traffic_limited_list":[{"traffic_pos_id":1,"traffic_per_second":10,"packet_per_second":2000}],"http_limited_list":[],"connection_limited_list":[]}`,
		"GET /v1/p1/query_task_status":           `{"task_status":"running","task_msg":""}`,
		"GET /v2/p1/warnalert/alertconfig/query": `{"warn_config":{"antiDDoS":true,"waf":false},"topic_urn":"urn:smn:topic","display_name":"ops"}`,
	})
	ctx := context.Background()

	st, err := s.AntiDDoS.Status(ctx, "fip-1")
	require.NoError(t, err)
	assert.Equal(t, "normal", st.Status)

	daily, err := s.AntiDDoS.DailyReport(ctx, "fip-1")
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, int64(3), daily[0].TotalBPS)

	logs, total, err := s.AntiDDoS.Logs(ctx, "fip-1", sdk.LogOptions{SortDir: "desc"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "cleaning", logs[0].StatusText())

	start := time.UnixMilli(1474848000000)
	weekly, err := s.AntiDDoS.WeeklyReport(ctx, sdk.WeeklyOptions{PeriodStart: &start})
	require.NoError(t, err)
	assert.Equal(t, 1, weekly.DDoSInterceptTimes)

	cl, err := s.AntiDDoS.ConfigList(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), cl.TrafficLimitedList[0].PacketPerSecond)

	task, err := s.AntiDDoS.TaskStatus(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, "running", task.TaskStatus)

	alert, err := s.Alert.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "antiDDoS='true', waf='false'", alert.WarnConfigText())

	queries := map[string]string{}
	for _, c := range rec.list() {
		queries[c.path] = c.query
	}
	assert.Equal(t, "sort_dir=desc", queries["/v1/p1/antiddos/fip-1/logs"])
	assert.Equal(t, "period_start_date=1474848000000", queries["/v1/p1/antiddos/weekly"])
	assert.Equal(t, "task_id=task-1", queries["/v1/p1/query_task_status"])
}

func TestTaskStatus_NotFound(t *testing.T) {
	s, _ := newServerSDK(t, nil)
	_, err := s.AntiDDoS.TaskStatus(context.Background(), "nope")
	assert.ErrorIs(t, err, apierrors.ErrTaskNotFound)
}
