package metrics

import (
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile exports the default registry in the node_exporter textfile
// format. An empty path is a no-op.
// WriteTextfile 以 node_exporter textfile 格式导出默认注册表。路径为空时不做任何事。
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
