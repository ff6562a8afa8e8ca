// Package filter 在召回之后剔除不该展示的餐厅：黑名单（内存或 Store）与 CEL 表达式。
package filter

import (
	"context"

	"github.com/rushteam/dinekit/core"
)

// Filter 判断一个餐厅候选是否应被剔除：true 剔除，false 保留。
// 出错时 FilterNode 记日志并保留该候选。
type Filter interface {
	// Name 同时作为 filtered label 的 Source
	Name() string

	ShouldFilter(ctx context.Context, rctx *core.RecommendContext, item *core.Item) (bool, error)
}
