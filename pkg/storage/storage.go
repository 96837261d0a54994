package storage

import (
	"time"
)

// TaskAction names the mutating call that produced a task.
// TaskAction 表示产生任务的变更操作。
type TaskAction string

const (
	TaskActionOpen  TaskAction = "open"
	TaskActionSet   TaskAction = "set"
	TaskActionClose TaskAction = "close"
)

// TaskRecord is one task submitted by this client.
// TaskRecord 表示本客户端提交的一个任务。
type TaskRecord struct {
	TaskID       string     `yaml:"task_id" json:"task_id"`
	FloatingIPID string     `yaml:"floating_ip_id" json:"floating_ip_id"`
	Action       TaskAction `yaml:"action" json:"action"`
	CreatedAt    time.Time  `yaml:"created_at" json:"created_at"`
}

// Journal is the interface for persisting submitted tasks
// Journal 是用于持久化已提交任务的接口。
type Journal interface {
	// Append records a task; the oldest entries are dropped past the cap.
	// Append 记录一个任务；超出上限时丢弃最旧的记录。
	Append(rec TaskRecord) error
	// List returns all records, newest first.
	// List 返回所有记录，最新的在前。
	List() ([]TaskRecord, error)
	// Get returns the record with the given task id.
	// Get 返回指定任务 ID 的记录。
	Get(taskID string) (TaskRecord, error)
	// Path names where the journal is kept.
	// Path 返回任务记录的存放位置。
	Path() string
}

// DefaultMaxEntries bounds the journal when no cap is configured.
// DefaultMaxEntries 是未配置上限时的默认记录数。
const DefaultMaxEntries = 200
