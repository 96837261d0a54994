// Package fmtutil provides formatting utilities for human-readable output.
// Package fmtutil 提供用于人类可读输出的格式化工具。
package fmtutil

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// TimeLayout is the layout used for every timestamp shown to the user.
// TimeLayout 是所有展示给用户的时间戳使用的格式。
const TimeLayout = "2006-01-02 15:04:05"

// FormatTimeMillis formats epoch milliseconds as local time.
// Zero means "not set" and is rendered as an empty string.
// FormatTimeMillis 将毫秒时间戳格式化为本地时间，0 表示未设置，返回空字符串。
func FormatTimeMillis(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).Local().Format(TimeLayout)
}

// FormatDict formats a map as key='value' pairs sorted by key.
// FormatDict 将 map 格式化为按键排序的 key='value' 对。
func FormatDict(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s='%s'", k, m[k]))
	}
	return strings.Join(parts, ", ")
}

// FormatListOfDicts formats each map with FormatDict, one per line.
// FormatListOfDicts 使用 FormatDict 格式化每个 map，每行一个。
func FormatListOfDicts(items []map[string]string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, FormatDict(item))
	}
	return strings.Join(lines, "\n")
}
