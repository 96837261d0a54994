package common

import (
	"fmt"
	"slices"
	"strings"
	"time"

	apierrors "github.com/netxfw/antiddos/pkg/errors"
	"github.com/netxfw/antiddos/pkg/sdk"
)

const (
	// MinLimit 最小分页大小
	// MinLimit minimum page size
	MinLimit = 1

	// MaxLimit 最大分页大小
	// MaxLimit maximum page size
	MaxLimit = 100

	// DateLayout 日期参数格式
	// DateLayout format of date arguments
	DateLayout = "2006-01-02"
)

// SortDirections 日志排序方向
// SortDirections sort directions accepted by the logs endpoint
var SortDirections = []string{"asc", "desc"}

// ValidateLimit 验证分页大小
// ValidateLimit validates a page size
func ValidateLimit(limit int) error {
	if limit < MinLimit || limit > MaxLimit {
		return fmt.Errorf("%w: limit %d out of range %d-%d", apierrors.ErrInvalidArgument, limit, MinLimit, MaxLimit)
	}
	return nil
}

// ValidateOffset 验证分页偏移
// ValidateOffset validates a page offset
func ValidateOffset(offset int) error {
	if offset < 0 {
		return apierrors.NewArgumentError("offset", offset)
	}
	return nil
}

// ValidateStatus 验证防护状态过滤值
// ValidateStatus validates a protection status filter
func ValidateStatus(status string) error {
	if status == "" || slices.Contains(sdk.Statuses, status) {
		return nil
	}
	return fmt.Errorf("%w: status %q, expected one of %s", apierrors.ErrInvalidArgument, status, strings.Join(sdk.Statuses, ", "))
}

// ValidateSortDir 验证排序方向
// ValidateSortDir validates a sort direction
func ValidateSortDir(dir string) error {
	if dir == "" || slices.Contains(SortDirections, dir) {
		return nil
	}
	return apierrors.NewArgumentError("sort-dir", dir)
}

// ParseDate 将 YYYY-MM-DD 解析为本地时间零点
// ParseDate parses YYYY-MM-DD as local midnight
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q, expected %s", apierrors.ErrInvalidArgument, s, DateLayout)
	}
	return t, nil
}
