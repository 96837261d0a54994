package mock

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/netxfw/antiddos/pkg/sdk"
	"github.com/stretchr/testify/mock"
)

// MockRequester is a mock implementation of the Requester interface.
// The first return value is the response: a JSON string, []byte, or any value
// that is round-tripped through encoding/json into out.
// MockRequester 是 Requester 接口的模拟实现。
// 第一个返回值为响应：JSON 字符串、[]byte，或经 encoding/json 写入 out 的任意值。
type MockRequester struct {
	mock.Mock
}

func (m *MockRequester) Do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	// An empty query is passed as nil so expectations can use a plain nil.
	var q interface{}
	if len(query) > 0 {
		q = query
	}
	args := m.Called(method, path, q, body)
	if out != nil && args.Get(0) != nil {
		var data []byte
		switch v := args.Get(0).(type) {
		case string:
			data = []byte(v)
		case []byte:
			data = v
		default:
			var err error
			if data, err = json.Marshal(v); err != nil {
				return err
			}
		}
		if err := json.Unmarshal(data, out); err != nil {
			return err
		}
	}
	return args.Error(1)
}

// MockAntiDDoSAPI is a mock implementation of the AntiDDoSAPI interface
type MockAntiDDoSAPI struct {
	mock.Mock
}

func (m *MockAntiDDoSAPI) Find(ctx context.Context, token string) (sdk.Protection, error) {
	args := m.Called(token)
	return args.Get(0).(sdk.Protection), args.Error(1)
}

func (m *MockAntiDDoSAPI) Get(ctx context.Context, floatingIPID string) (sdk.Protection, error) {
	args := m.Called(floatingIPID)
	return args.Get(0).(sdk.Protection), args.Error(1)
}

func (m *MockAntiDDoSAPI) Open(ctx context.Context, floatingIPID string, opts sdk.ProtectionOptions) (sdk.TaskRef, error) {
	args := m.Called(floatingIPID, opts)
	return args.Get(0).(sdk.TaskRef), args.Error(1)
}

func (m *MockAntiDDoSAPI) Update(ctx context.Context, floatingIPID string, opts sdk.ProtectionOptions) (sdk.TaskRef, error) {
	args := m.Called(floatingIPID, opts)
	return args.Get(0).(sdk.TaskRef), args.Error(1)
}

func (m *MockAntiDDoSAPI) Close(ctx context.Context, floatingIPID string) (sdk.TaskRef, error) {
	args := m.Called(floatingIPID)
	return args.Get(0).(sdk.TaskRef), args.Error(1)
}

func (m *MockAntiDDoSAPI) List(ctx context.Context, opts sdk.ListOptions) ([]sdk.Protection, int, error) {
	args := m.Called(opts)
	return args.Get(0).([]sdk.Protection), args.Int(1), args.Error(2)
}

func (m *MockAntiDDoSAPI) TaskStatus(ctx context.Context, taskID string) (sdk.Task, error) {
	args := m.Called(taskID)
	return args.Get(0).(sdk.Task), args.Error(1)
}

func (m *MockAntiDDoSAPI) Status(ctx context.Context, floatingIPID string) (sdk.StatusInfo, error) {
	args := m.Called(floatingIPID)
	return args.Get(0).(sdk.StatusInfo), args.Error(1)
}

func (m *MockAntiDDoSAPI) DailyReport(ctx context.Context, floatingIPID string) ([]sdk.DailyReportEntry, error) {
	args := m.Called(floatingIPID)
	return args.Get(0).([]sdk.DailyReportEntry), args.Error(1)
}

func (m *MockAntiDDoSAPI) Logs(ctx context.Context, floatingIPID string, opts sdk.LogOptions) ([]sdk.AttackLog, int, error) {
	args := m.Called(floatingIPID, opts)
	return args.Get(0).([]sdk.AttackLog), args.Int(1), args.Error(2)
}

func (m *MockAntiDDoSAPI) WeeklyReport(ctx context.Context, opts sdk.WeeklyOptions) (sdk.WeeklyReport, error) {
	args := m.Called(opts)
	return args.Get(0).(sdk.WeeklyReport), args.Error(1)
}

func (m *MockAntiDDoSAPI) ConfigList(ctx context.Context) (sdk.ConfigList, error) {
	args := m.Called()
	return args.Get(0).(sdk.ConfigList), args.Error(1)
}

// MockAlertAPI is a mock implementation of the AlertAPI interface
type MockAlertAPI struct {
	mock.Mock
}

func (m *MockAlertAPI) Get(ctx context.Context) (sdk.AlertConfig, error) {
	args := m.Called()
	return args.Get(0).(sdk.AlertConfig), args.Error(1)
}

// NewMockSDK returns an SDK whose APIs are mocks, plus the mocks for setting expectations.
// NewMockSDK 返回由模拟对象组成的 SDK，以及用于设置期望的模拟对象。
func NewMockSDK() (*sdk.SDK, *MockAntiDDoSAPI, *MockAlertAPI) {
	a := new(MockAntiDDoSAPI)
	al := new(MockAlertAPI)
	return &sdk.SDK{AntiDDoS: a, Alert: al}, a, al
}
