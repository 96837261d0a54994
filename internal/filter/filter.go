// Package filter applies user supplied boolean expressions to protection records.
// Package filter 对防护记录应用用户提供的布尔表达式。
package filter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	apierrors "github.com/netxfw/antiddos/pkg/errors"
	"github.com/netxfw/antiddos/pkg/sdk"
)

// Env is the variable set visible to a filter expression, e.g.
// `status == "normal" && address startsWith "10."`.
// Env 是过滤表达式可见的变量集合。
type Env struct {
	ID          string `expr:"id"`
	Address     string `expr:"address"`
	NetworkType string `expr:"network_type"`
	Status      string `expr:"status"`
}

// Filter is a compiled expression.
// Filter 是编译后的表达式。
type Filter struct {
	src     string
	program *vm.Program
}

// Compile checks src against Env and requires a boolean result.
// Compile 基于 Env 编译 src，并要求结果为布尔值。
func Compile(src string) (*Filter, error) {
	program, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: filter %q: %v", apierrors.ErrInvalidArgument, src, err)
	}
	return &Filter{src: src, program: program}, nil
}

func (f *Filter) String() string {
	return f.src
}

// Match evaluates the expression for one record.
// Match 对单条记录求值。
func (f *Filter) Match(p sdk.Protection) (bool, error) {
	out, err := expr.Run(f.program, Env{
		ID:          p.FloatingIPID,
		Address:     p.FloatingIPAddress,
		NetworkType: p.NetworkType,
		Status:      p.Status,
	})
	if err != nil {
		return false, fmt.Errorf("filter %q on %s: %w", f.src, p.FloatingIPID, err)
	}
	matched, _ := out.(bool)
	return matched, nil
}

// Apply keeps the records the expression accepts, in order.
// Apply 按原顺序保留表达式接受的记录。
func (f *Filter) Apply(items []sdk.Protection) ([]sdk.Protection, error) {
	kept := make([]sdk.Protection, 0, len(items))
	for _, p := range items {
		ok, err := f.Match(p)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, p)
		}
	}
	return kept, nil
}
