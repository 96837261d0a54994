package common

import (
	"testing"
	"time"

	apierrors "github.com/netxfw/antiddos/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidateLimit 测试分页大小验证
// TestValidateLimit tests page size validation
func TestValidateLimit(t *testing.T) {
	tests := []struct {
		limit   int
		wantErr bool
	}{
		{0, true},
		{1, false},
		{100, false},
		{101, true},
		{-5, true},
	}
	for _, tt := range tests {
		err := ValidateLimit(tt.limit)
		if tt.wantErr {
			assert.ErrorIs(t, err, apierrors.ErrInvalidArgument, tt.limit)
		} else {
			assert.NoError(t, err, tt.limit)
		}
	}
	assert.NoError(t, ValidateOffset(0))
	assert.Error(t, ValidateOffset(-1))
}

func TestValidateStatusAndSortDir(t *testing.T) {
	assert.NoError(t, ValidateStatus(""))
	assert.NoError(t, ValidateStatus("notConfig"))
	assert.ErrorIs(t, ValidateStatus("broken"), apierrors.ErrInvalidArgument)

	assert.NoError(t, ValidateSortDir("asc"))
	assert.NoError(t, ValidateSortDir(""))
	assert.ErrorIs(t, ValidateSortDir("up"), apierrors.ErrInvalidArgument)
}

// TestParseDate 测试日期解析
// TestParseDate tests date parsing
func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-10-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.Local), got)

	_, err = ParseDate("01/10/2026")
	assert.ErrorIs(t, err, apierrors.ErrInvalidArgument)
}
