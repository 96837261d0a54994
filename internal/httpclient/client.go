package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/netxfw/antiddos/internal/metrics"
	"github.com/netxfw/antiddos/internal/utils/logger"
	"github.com/netxfw/antiddos/internal/version"
	apierrors "github.com/netxfw/antiddos/pkg/errors"
)

const (
	// RequestIDHeader carries a per-request UUID for correlation with server logs.
	// RequestIDHeader 携带每个请求的 UUID，便于与服务端日志关联。
	RequestIDHeader = "X-Client-Request-Id"

	defaultAuthHeader = "X-Auth-Token"
	defaultTimeout    = 30 * time.Second
	maxBodySize       = 10 << 20
	maxErrorText      = 200
)

// Options configures a Client.
// Options 配置 Client。
type Options struct {
	// Endpoint is the base URL including the version and project prefix.
	// Endpoint 是包含版本和项目前缀的基础 URL。
	Endpoint string
	Token    string
	// AuthHeader defaults to X-Auth-Token. "Authorization" sends a bearer token.
	// AuthHeader 默认为 X-Auth-Token。设置为 "Authorization" 时发送 Bearer 令牌。
	AuthHeader string
	Timeout    time.Duration
	UserAgent  string
	// HTTPClient overrides the underlying client, mainly for tests.
	HTTPClient *http.Client
}

// Client performs single, synchronous JSON requests against one endpoint.
// It never retries.
// Client 针对单个 endpoint 执行同步 JSON 请求，不做重试。
type Client struct {
	base       *url.URL
	token      string
	authHeader string
	userAgent  string
	http       *http.Client
}

// New creates a Client from opts.
// New 根据 opts 创建 Client。
func New(opts Options) (*Client, error) {
	if opts.Endpoint == "" {
		return nil, apierrors.NewArgumentError("endpoint", opts.Endpoint)
	}
	base, err := url.Parse(strings.TrimRight(opts.Endpoint, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, apierrors.NewArgumentError("endpoint", opts.Endpoint)
	}

	c := &Client{
		base:       base,
		token:      opts.Token,
		authHeader: opts.AuthHeader,
		userAgent:  opts.UserAgent,
		http:       opts.HTTPClient,
	}
	if c.authHeader == "" {
		c.authHeader = defaultAuthHeader
	}
	if c.userAgent == "" {
		c.userAgent = "antiddos-cli/" + version.Version
	}
	if c.http == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		c.http = &http.Client{Timeout: timeout}
	}
	return c, nil
}

// Endpoint returns the base URL requests are sent to.
// Endpoint 返回请求发送到的基础 URL。
func (c *Client) Endpoint() string {
	return c.base.String()
}

// Do sends one request. path is relative to the endpoint; query may be nil.
// body, when non-nil, is sent as JSON. out, when non-nil, receives the decoded
// response. Non-2xx responses become *errors.APIError.
// Do 发送一个请求。path 相对于 endpoint；query 可为 nil。
// body 非 nil 时以 JSON 发送；out 非 nil 时接收解码后的响应。非 2xx 响应返回 *errors.APIError。
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	log := logger.Get(ctx)

	target := c.resolve(path, query)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
		log.Debugf("[API] %s %s body=%s", method, target, payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		if strings.EqualFold(c.authHeader, "Authorization") {
			req.Header.Set("Authorization", "Bearer "+c.token)
		} else {
			req.Header.Set(c.authHeader, c.token)
		}
	}

	label := EndpointLabel(path)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveRequest(method, label, 0, time.Since(start))
		log.Debugf("[API] %s %s failed: %v", method, target, err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	elapsed := time.Since(start)
	metrics.ObserveRequest(method, label, resp.StatusCode, elapsed)
	log.Debugf("[API] %s %s -> %d (%s, request id %s)", method, target, resp.StatusCode, elapsed, req.Header.Get(RequestIDHeader))
	if err != nil {
		return fmt.Errorf("%s %s: failed to read response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(method, path, resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", apierrors.ErrUnexpectedPayload, method, path, err)
	}
	return nil
}

// resolve joins the endpoint with path. path is already escaped, so ids
// escaped by the caller keep their encoding on the wire.
// resolve 拼接 endpoint 与 path。path 已转义，调用方转义的 ID 在请求中保持编码。
func (c *Client) resolve(path string, query url.Values) string {
	u := *c.base
	raw := strings.TrimRight(c.base.EscapedPath(), "/") + "/" + strings.TrimLeft(path, "/")
	if p, err := url.PathUnescape(raw); err == nil {
		u.Path, u.RawPath = p, raw
	} else {
		u.Path, u.RawPath = raw, ""
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// errorBody covers the error shapes the service is known to return.
// errorBody 覆盖服务端已知的几种错误格式。
type errorBody struct {
	ErrorCode        string          `json:"error_code"`
	ErrorDescription string          `json:"error_description"`
	ErrorMsg         string          `json:"error_msg"`
	Code             json.RawMessage `json:"code"`
	Message          string          `json:"message"`
	Error            *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func parseAPIError(method, path string, status int, data []byte) error {
	apiErr := &apierrors.APIError{StatusCode: status, Method: method, Path: path}

	var eb errorBody
	if err := json.Unmarshal(data, &eb); err == nil {
		switch {
		case eb.ErrorCode != "":
			apiErr.Code = eb.ErrorCode
			apiErr.Message = eb.ErrorDescription
			if apiErr.Message == "" {
				apiErr.Message = eb.ErrorMsg
			}
		case eb.Error != nil:
			apiErr.Code = eb.Error.Code
			apiErr.Message = eb.Error.Message
		case eb.Message != "":
			apiErr.Code = strings.Trim(string(eb.Code), `"`)
			apiErr.Message = eb.Message
		}
		return apiErr
	}

	text := strings.TrimSpace(string(data))
	if len(text) > maxErrorText {
		cut := maxErrorText
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	apiErr.Message = text
	return apiErr
}

// EndpointLabel collapses per-resource paths to a bounded metrics label.
// EndpointLabel 将按资源区分的路径折叠为有限的指标标签。
func EndpointLabel(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) >= 2 && segments[0] == "antiddos" {
		switch segments[1] {
		case "weekly", "query_config_list":
		default:
			segments[1] = "{id}"
		}
	}
	return "/" + strings.Join(segments, "/")
}
