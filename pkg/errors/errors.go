package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrNotUniqueMatch    = errors.New("more than one match found")
	ErrInvalidPosition   = errors.New("invalid position index")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrConfigNotFound    = errors.New("config not found")
	ErrConfigInvalid     = errors.New("invalid configuration")
	ErrTaskNotFound      = errors.New("task not found")
	ErrUnexpectedPayload = errors.New("unexpected response payload")
)

// APIError is returned for every non-2xx response of the Anti-DDoS service.
// APIError 表示 Anti-DDoS 服务返回的非 2xx 响应。
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	// Code and Message come from the error body when the server sends one.
	// Code 和 Message 来自服务端返回的错误体（如果有）。
	Code    string
	Message string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Code != "" {
		return fmt.Sprintf("%s %s: HTTP %d (%s): %s", e.Method, e.Path, e.StatusCode, e.Code, msg)
	}
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.Path, e.StatusCode, msg)
}

// Is lets errors.Is(err, ErrNotFound) match a 404 response.
// Is 使 errors.Is(err, ErrNotFound) 能匹配 404 响应。
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// IsNotFound reports whether err means the requested object does not exist.
// IsNotFound 判断 err 是否表示对象不存在。
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrTaskNotFound)
}

// IsAPIError reports whether err carries a response from the service.
// IsAPIError 判断 err 是否来自服务端的响应。
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

func NewNotFoundError(token string) error {
	return fmt.Errorf("%w: AntiDDos with ID or IP '%s' not exists", ErrNotFound, token)
}

func NewNotUniqueError(token string, matches int) error {
	return fmt.Errorf("%w: %d floating IPs match '%s', use the floating IP ID instead", ErrNotUniqueMatch, matches, token)
}

func NewPositionError(scale string, pos int, size int) error {
	return fmt.Errorf("%w: %s position %d out of range 1-%d", ErrInvalidPosition, scale, pos, size)
}

func NewArgumentError(field string, value interface{}) error {
	return fmt.Errorf("%w: %s=%v", ErrInvalidArgument, field, value)
}

func NewConfigError(field string, value interface{}) error {
	return fmt.Errorf("%w: field=%s value=%v", ErrConfigInvalid, field, value)
}
