package sdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/netxfw/antiddos/internal/utils/iputil"
	"github.com/netxfw/antiddos/internal/utils/logger"
	apierrors "github.com/netxfw/antiddos/pkg/errors"
)

// antiddosImpl implements AntiDDoSAPI interface.
// antiddosImpl 实现 AntiDDoSAPI 接口。
type antiddosImpl struct {
	req Requester
}

// reservedIDs are path segments under /antiddos that name collections, not records.
var reservedIDs = map[string]bool{
	"":                  true,
	"weekly":            true,
	"query_config_list": true,
}

func protectionPath(floatingIPID string) string {
	return "/antiddos/" + url.PathEscape(floatingIPID)
}

// Find resolves token to exactly one record.
// A token that is not IP-shaped is fetched directly by id; an error reported
// by the service is logged and treated as "not found". An IP-shaped token is
// matched by substring, and several matches are narrowed to the one whose
// address equals the token.
// Find 将 token 解析为唯一一条记录。
// 非 IP 形式的 token 按 ID 直接获取，服务端返回的错误仅记录日志并视为未找到。
// IP 形式的 token 按子串匹配，多个结果时收窄为地址完全相等的那一条。
func (a *antiddosImpl) Find(ctx context.Context, token string) (Protection, error) {
	log := logger.Get(ctx)

	if !iputil.IsIPPrefix(token) {
		if reservedIDs[token] {
			return Protection{}, apierrors.NewNotFoundError(token)
		}
		p, err := a.Get(ctx, token)
		if err == nil {
			return p, nil
		}
		if !apierrors.IsAPIError(err) {
			return Protection{}, err
		}
		log.Debugf("[FIND] Lookup of %q by id failed: %v", token, err)
		return Protection{}, apierrors.NewNotFoundError(token)
	}

	results, _, err := a.List(ctx, ListOptions{IP: token})
	if err != nil {
		return Protection{}, err
	}

	switch len(results) {
	case 0:
		return Protection{}, apierrors.NewNotFoundError(token)
	case 1:
		return results[0], nil
	}

	var exact []Protection
	for _, r := range results {
		if r.FloatingIPAddress == token {
			exact = append(exact, r)
		}
	}
	if len(exact) == 1 {
		return exact[0], nil
	}
	log.Debugf("[FIND] %d records match %q, %d exactly", len(results), token, len(exact))
	if len(exact) == 0 {
		return Protection{}, apierrors.NewNotUniqueError(token, len(results))
	}
	return Protection{}, apierrors.NewNotUniqueError(token, len(exact))
}

// Get fetches the settings. The response does not carry the floating IP id,
// so the requested id is filled in.
// Get 获取防护设置。响应中不含浮动 IP ID，因此使用请求的 ID 填充。
func (a *antiddosImpl) Get(ctx context.Context, floatingIPID string) (Protection, error) {
	var out Protection
	if err := a.req.Do(ctx, http.MethodGet, protectionPath(floatingIPID), nil, nil, &out); err != nil {
		return Protection{}, err
	}
	out.FloatingIPID = floatingIPID
	out.configLoaded = true
	return out, nil
}

func (a *antiddosImpl) Open(ctx context.Context, floatingIPID string, opts ProtectionOptions) (TaskRef, error) {
	return a.submit(ctx, http.MethodPost, floatingIPID, opts)
}

func (a *antiddosImpl) Update(ctx context.Context, floatingIPID string, opts ProtectionOptions) (TaskRef, error) {
	return a.submit(ctx, http.MethodPut, floatingIPID, opts)
}

func (a *antiddosImpl) submit(ctx context.Context, method, floatingIPID string, opts ProtectionOptions) (TaskRef, error) {
	if err := opts.Validate(); err != nil {
		return TaskRef{}, err
	}
	var ref TaskRef
	if err := a.req.Do(ctx, method, protectionPath(floatingIPID), nil, BuildProtectionPayload(opts), &ref); err != nil {
		return TaskRef{}, err
	}
	return ref, checkTaskRef(method, floatingIPID, ref)
}

func (a *antiddosImpl) Close(ctx context.Context, floatingIPID string) (TaskRef, error) {
	var ref TaskRef
	if err := a.req.Do(ctx, http.MethodDelete, protectionPath(floatingIPID), nil, nil, &ref); err != nil {
		return TaskRef{}, err
	}
	return ref, checkTaskRef(http.MethodDelete, floatingIPID, ref)
}

// checkTaskRef turns an error embedded in a 2xx task response into an error.
// checkTaskRef 将 2xx 任务响应中携带的错误转换为 error。
func checkTaskRef(method, floatingIPID string, ref TaskRef) error {
	if ref.ErrorCode != "" {
		return &apierrors.APIError{
			StatusCode: http.StatusOK,
			Method:     method,
			Path:       protectionPath(floatingIPID),
			Code:       ref.ErrorCode,
			Message:    ref.ErrorDescription,
		}
	}
	if ref.TaskID == "" {
		return fmt.Errorf("%w: %s %s returned no task id", apierrors.ErrUnexpectedPayload, method, protectionPath(floatingIPID))
	}
	return nil
}

func (a *antiddosImpl) List(ctx context.Context, opts ListOptions) ([]Protection, int, error) {
	var out struct {
		Total      int          `json:"total"`
		DDoSStatus []Protection `json:"ddosStatus"`
	}
	if err := a.req.Do(ctx, http.MethodGet, "/antiddos", opts.Query(), nil, &out); err != nil {
		return nil, 0, err
	}
	if out.DDoSStatus == nil {
		out.DDoSStatus = []Protection{}
	}
	return out.DDoSStatus, out.Total, nil
}

func (a *antiddosImpl) TaskStatus(ctx context.Context, taskID string) (Task, error) {
	var out Task
	err := a.req.Do(ctx, http.MethodGet, "/query_task_status", url.Values{"task_id": {taskID}}, nil, &out)
	if err != nil {
		var apiErr *apierrors.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return Task{}, fmt.Errorf("%w: %s: %w", apierrors.ErrTaskNotFound, taskID, err)
		}
		return Task{}, err
	}
	return out, nil
}

func (a *antiddosImpl) Status(ctx context.Context, floatingIPID string) (StatusInfo, error) {
	var out StatusInfo
	err := a.req.Do(ctx, http.MethodGet, protectionPath(floatingIPID)+"/status", nil, nil, &out)
	return out, err
}

func (a *antiddosImpl) DailyReport(ctx context.Context, floatingIPID string) ([]DailyReportEntry, error) {
	var out struct {
		Data []DailyReportEntry `json:"data"`
	}
	if err := a.req.Do(ctx, http.MethodGet, protectionPath(floatingIPID)+"/daily", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (a *antiddosImpl) Logs(ctx context.Context, floatingIPID string, opts LogOptions) ([]AttackLog, int, error) {
	var out struct {
		Total int         `json:"total"`
		Logs  []AttackLog `json:"logs"`
	}
	if err := a.req.Do(ctx, http.MethodGet, protectionPath(floatingIPID)+"/logs", opts.Query(), nil, &out); err != nil {
		return nil, 0, err
	}
	return out.Logs, out.Total, nil
}

func (a *antiddosImpl) WeeklyReport(ctx context.Context, opts WeeklyOptions) (WeeklyReport, error) {
	var out WeeklyReport
	err := a.req.Do(ctx, http.MethodGet, "/antiddos/weekly", opts.Query(), nil, &out)
	return out, err
}

func (a *antiddosImpl) ConfigList(ctx context.Context) (ConfigList, error) {
	var out ConfigList
	err := a.req.Do(ctx, http.MethodGet, "/antiddos/query_config_list", nil, nil, &out)
	return out, err
}
