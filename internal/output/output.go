// Package output renders column/row tuples as table, json, yaml or bare values.
// Package output 将列/行数据渲染为 table、json、yaml 或纯值格式。
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	apierrors "github.com/netxfw/antiddos/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatValue = "value"
)

// Formats lists every supported output format.
// Formats 列出所有支持的输出格式。
var Formats = []string{FormatTable, FormatJSON, FormatYAML, FormatValue}

// Printer writes command results in one format.
// Printer 以指定格式输出命令结果。
type Printer struct {
	w      io.Writer
	format string
	header lipgloss.Style
}

// New returns a printer for format. An unknown format is an error.
// New 返回指定格式的 Printer，未知格式返回错误。
func New(w io.Writer, format string) (*Printer, error) {
	if format == "" {
		format = FormatTable
	}
	if !slices.Contains(Formats, format) {
		return nil, apierrors.NewArgumentError("output", format)
	}
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:      w,
		format: format,
		header: r.NewStyle().Bold(true),
	}, nil
}

// Format returns the selected format.
func (p *Printer) Format() string {
	return p.format
}

// Message prints a plain line, such as a task confirmation, in every format.
// Message 输出一行纯文本（如任务确认信息），与格式无关。
func (p *Printer) Message(msg string) error {
	_, err := fmt.Fprintln(p.w, msg)
	return err
}

// One renders a single record. The table format shows one Field/Value pair per line.
// One 渲染单条记录。table 格式按 Field/Value 每行一个字段显示。
func (p *Printer) One(columns, row []string) error {
	if len(columns) != len(row) {
		return fmt.Errorf("%w: %d columns, %d values", apierrors.ErrInvalidArgument, len(columns), len(row))
	}
	switch p.format {
	case FormatJSON:
		return p.writeJSON(orderedRow{columns: columns, values: row})
	case FormatYAML:
		return p.writeYAML(mappingNode(columns, row))
	case FormatValue:
		for _, v := range row {
			if _, err := fmt.Fprintln(p.w, v); err != nil {
				return err
			}
		}
		return nil
	default:
		rows := make([][]string, len(columns))
		for i, c := range columns {
			rows[i] = []string{c, row[i]}
		}
		return p.writeTable([]string{"Field", "Value"}, rows)
	}
}

// List renders many records with the same columns.
// List 渲染多条同列记录。
func (p *Printer) List(columns []string, rows [][]string) error {
	for _, row := range rows {
		if len(row) != len(columns) {
			return fmt.Errorf("%w: %d columns, %d values", apierrors.ErrInvalidArgument, len(columns), len(row))
		}
	}
	switch p.format {
	case FormatJSON:
		items := make([]orderedRow, 0, len(rows))
		for _, row := range rows {
			items = append(items, orderedRow{columns: columns, values: row})
		}
		return p.writeJSON(items)
	case FormatYAML:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, row := range rows {
			seq.Content = append(seq.Content, mappingNode(columns, row))
		}
		return p.writeYAML(seq)
	case FormatValue:
		for _, row := range rows {
			if _, err := fmt.Fprintln(p.w, strings.Join(row, " ")); err != nil {
				return err
			}
		}
		return nil
	default:
		return p.writeTable(columns, rows)
	}
}

func (p *Printer) writeJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.w, string(data))
	return err
}

func (p *Printer) writeYAML(node *yaml.Node) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return err
	}
	return enc.Close()
}

// orderedRow marshals as a JSON object keeping column order.
// orderedRow 序列化为保持列顺序的 JSON 对象。
type orderedRow struct {
	columns []string
	values  []string
}

func (o orderedRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range o.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(o.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func mappingNode(columns, row []string) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for i, c := range columns {
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: row[i]},
		)
	}
	return m
}
