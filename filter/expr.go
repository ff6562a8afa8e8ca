package filter

import (
	"context"

	"github.com/rushteam/dinekit/core"
	"github.com/rushteam/dinekit/pkg/dsl"
)

// ExprFilter 用 CEL 表达式描述“保留条件”，表达式为 false 的餐厅被过滤。
//
// 示例：
//   - `item.stars >= 4.0`
//   - `!("Alcohol" in item.attributes) || item.attributes.Alcohol != "u'none'"`
type ExprFilter struct {
	prg *dsl.Program
}

// NewExprFilter 编译表达式；编译失败直接返回错误，避免运行期每个 Item 都报错。
func NewExprFilter(expr string) (*ExprFilter, error) {
	prg, err := dsl.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &ExprFilter{prg: prg}, nil
}

func (f *ExprFilter) Name() string {
	return "filter.expr"
}

// Expr 返回原始表达式。
func (f *ExprFilter) Expr() string {
	return f.prg.String()
}

func (f *ExprFilter) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	item *core.Item,
) (bool, error) {
	keep, err := f.prg.Evaluate(item, rctx)
	if err != nil {
		return false, err
	}
	return !keep, nil
}
