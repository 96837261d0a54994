package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/netxfw/antiddos/internal/utils/fileutil"
	apierrors "github.com/netxfw/antiddos/pkg/errors"
	"gopkg.in/yaml.v3"
)

// YAMLJournal implements the Journal interface using a local YAML file
// YAMLJournal 使用本地 YAML 文件实现 Journal 接口。
type YAMLJournal struct {
	mu         sync.RWMutex
	path       string
	maxEntries int
}

// NewYAMLJournal creates a new YAML-based task journal.
// NewYAMLJournal 创建一个新的基于 YAML 的任务日志。
func NewYAMLJournal(path string, maxEntries int) *YAMLJournal {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &YAMLJournal{path: path, maxEntries: maxEntries}
}

// fileData internal structure for YAML serialization
// fileData 用于 YAML 序列化的内部结构
type fileData struct {
	Tasks []TaskRecord `yaml:"tasks"`
}

// Append adds a record, replacing an existing record with the same task id.
// Append 添加记录，若任务 ID 已存在则替换。
func (s *YAMLJournal) Append(rec TaskRecord) error {
	if rec.TaskID == "" {
		return apierrors.NewArgumentError("task_id", rec.TaskID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.updateFile(func(data *fileData) {
		for i, existing := range data.Tasks {
			if existing.TaskID == rec.TaskID {
				data.Tasks[i] = rec
				return
			}
		}
		data.Tasks = append(data.Tasks, rec)
		if len(data.Tasks) > s.maxEntries {
			data.Tasks = data.Tasks[len(data.Tasks)-s.maxEntries:]
		}
	})
}

// List reads all records from the YAML file, newest first.
// A missing file is an empty journal.
// List 从 YAML 文件读取所有记录，最新的在前。文件不存在视为空。
func (s *YAMLJournal) List() ([]TaskRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := s.readFile()
	if err != nil {
		if os.IsNotExist(err) {
			return []TaskRecord{}, nil
		}
		return nil, err
	}

	tasks := data.Tasks
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks, nil
}

// Get returns the record for taskID or ErrTaskNotFound.
// Get 返回 taskID 对应的记录，不存在时返回 ErrTaskNotFound。
func (s *YAMLJournal) Get(taskID string) (TaskRecord, error) {
	tasks, err := s.List()
	if err != nil {
		return TaskRecord{}, err
	}
	for _, t := range tasks {
		if t.TaskID == taskID {
			return t, nil
		}
	}
	return TaskRecord{}, fmt.Errorf("%w: %s", apierrors.ErrTaskNotFound, taskID)
}

// Path returns the journal file location.
// Path 返回日志文件路径。
func (s *YAMLJournal) Path() string {
	return s.path
}

func (s *YAMLJournal) readFile() (fileData, error) {
	var data fileData
	safePath := filepath.Clean(s.path)    // Sanitize path to prevent directory traversal
	content, err := os.ReadFile(safePath) // #nosec G304 // path is sanitized with filepath.Clean
	if err != nil {
		return data, err
	}
	err = yaml.Unmarshal(content, &data)
	return data, err
}

func (s *YAMLJournal) updateFile(updater func(*fileData)) error {
	typed, err := s.readFile()
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read task journal %s: %w", s.path, err)
		}
		// Initialize empty fileData if file doesn't exist
		// 如果文件不存在，初始化空的 fileData
		typed = fileData{}
	}
	updater(&typed)

	content, err := yaml.Marshal(&typed)
	if err != nil {
		return err
	}
	return fileutil.AtomicWriteFile(s.path, content, 0600)
}
