package sdk

import (
	"slices"
	"strconv"

	apierrors "github.com/netxfw/antiddos/pkg/errors"
)

// Scale is a fixed ordered list of allowed values. The service stores the
// 1-based position of a value instead of the value itself.
// Scale 是固定的有序取值列表。服务端保存取值的位置（从 1 开始）而非取值本身。
type Scale struct {
	Name   string
	Unit   string
	Values []int
}

var (
	// TrafficScale is the maximum service traffic in Mbit/s.
	// TrafficScale 是最大业务流量（Mbit/s）。
	TrafficScale = Scale{
		Name:   "traffic",
		Unit:   "Mbit/s",
		Values: []int{10, 30, 50, 70, 100, 150, 200, 250, 300},
	}

	// HTTPRateScale is the HTTP request rate per second.
	// HTTPRateScale 是每秒 HTTP 请求数。
	HTTPRateScale = Scale{
		Name:   "http request rate",
		Unit:   "/s",
		Values: []int{100, 150, 240, 350, 480, 550, 700, 850, 1000, 1500, 2000, 3000, 5000, 10000, 20000},
	}
)

// Cleaning-access and app-type positions have no published values, only bounds.
// 清洗接入档位和应用类型没有公开的取值，只有范围。
const (
	MaxCleaningAccessPos = 8
	MinAppType           = 0
	MaxAppType           = 1
)

// Len returns the number of positions.
func (s Scale) Len() int {
	return len(s.Values)
}

// Value returns the value at the 1-based position pos.
// An out-of-range position is an error, never clamped.
// Value 返回 1 起始位置 pos 上的取值。越界位置返回错误，不做截断。
func (s Scale) Value(pos int) (int, error) {
	if pos < 1 || pos > len(s.Values) {
		return 0, apierrors.NewPositionError(s.Name, pos, len(s.Values))
	}
	return s.Values[pos-1], nil
}

// Display returns the value at pos with its unit, e.g. "10Mbit/s".
// Display 返回位置 pos 上带单位的取值，例如 "10Mbit/s"。
func (s Scale) Display(pos int) (string, error) {
	v, err := s.Value(pos)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(v) + s.Unit, nil
}

// Position returns the 1-based position of value.
// Position 返回 value 的位置（从 1 开始）。
func (s Scale) Position(value int) (int, error) {
	i := slices.Index(s.Values, value)
	if i < 0 {
		return 0, apierrors.NewArgumentError(s.Name, value)
	}
	return i + 1, nil
}

// Choices renders the allowed values for help texts.
// Choices 生成用于帮助文本的可选值。
func (s Scale) Choices() string {
	out := ""
	for i, v := range s.Values {
		if i > 0 {
			out += ","
		}
		out += strconv.Itoa(v)
	}
	return "{" + out + "}"
}
