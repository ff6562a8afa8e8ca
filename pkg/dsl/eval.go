package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/dinekit/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvErr  error
	celEnvOnce sync.Once
)

func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = cel.NewEnv(
			cel.Variable("item", cel.DynType),
			cel.Variable("label", cel.DynType),
			cel.Variable("rctx", cel.DynType),
		)
	})
	return celEnv, celEnvErr
}

// Program 是编译好的布尔表达式，可对多个 Item 重复求值（线程安全）。
//
// 表达式语法（CEL 标准语法）：
//   - 数值：item.stars >= 4.0
//   - 属性：item.attributes.RestaurantsPriceRange2 == "1"
//   - 文本：item.categories.contains("Italian")
//   - 标签：label.recall_source == "nearby"
//   - 上下文：rctx.user_id == "alice"
//
// 不存在的 map key 在 CEL 中会报错，请先用 `"key" in item.attributes` 判断。
type Program struct {
	expr string
	prg  cel.Program
}

// Compile 编译表达式；空表达式返回 nil Program，Evaluate 恒为 true。
func Compile(expr string) (*Program, error) {
	if expr == "" {
		return nil, nil
	}
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %w", issues.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	return &Program{expr: expr, prg: prg}, nil
}

// String 返回原始表达式。
func (p *Program) String() string {
	if p == nil {
		return ""
	}
	return p.expr
}

// Evaluate 对 item 求值，结果必须为布尔值。
func (p *Program) Evaluate(item *core.Item, rctx *core.RecommendContext) (bool, error) {
	if p == nil {
		return true, nil
	}
	out, _, err := p.prg.Eval(buildInput(item, rctx))
	if err != nil {
		return false, fmt.Errorf("eval error: %w", err)
	}
	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return result, nil
}

// Eval 编译并执行一次表达式，便于一次性判断。
func Eval(expr string, item *core.Item, rctx *core.RecommendContext) (bool, error) {
	p, err := Compile(expr)
	if err != nil {
		return false, err
	}
	return p.Evaluate(item, rctx)
}

// buildInput 构建 CEL 表达式的输入数据
func buildInput(item *core.Item, rctx *core.RecommendContext) map[string]any {
	labels := make(map[string]any)
	itemMap := map[string]any{
		"id":         "",
		"score":      0.0,
		"neighbours": []string{},
	}
	if item != nil {
		for k, v := range item.Labels {
			labels[k] = v.Value
		}
		itemMap["id"] = item.ID
		itemMap["score"] = item.Score
		if item.Neighbours != nil {
			itemMap["neighbours"] = item.Neighbours
		}
		if r := item.Restaurant; r != nil {
			attrs := make(map[string]any, len(r.Attributes))
			for k, v := range r.Attributes {
				attrs[k] = v
			}
			itemMap["name"] = r.Name
			itemMap["city"] = r.City
			itemMap["stars"] = r.Stars
			itemMap["latitude"] = r.Latitude
			itemMap["longitude"] = r.Longitude
			itemMap["categories"] = r.Categories
			itemMap["attributes"] = attrs
		}
	}

	rctxMap := map[string]any{}
	if rctx != nil {
		rctxMap["user_id"] = rctx.UserID
		rctxMap["friend_id"] = rctx.FriendID
		rctxMap["request_id"] = rctx.RequestID
		if rctx.Params != nil {
			rctxMap["params"] = rctx.Params
		}
	}

	return map[string]any{
		"item":  itemMap,
		"label": labels,
		"rctx":  rctxMap,
	}
}
