package pipeline

import (
	"context"

	"github.com/rushteam/dinekit/core"
)

// Kind 用于标记 Node 类型，方便观测/编排（例如按阶段打日志）。
type Kind string

const (
	KindRecall      Kind = "recall"      // 召回阶段：decision_tree / nearby / friend 生成候选
	KindFilter      Kind = "filter"      // 过滤阶段：剔除不符合约束的候选
	KindReRank      Kind = "rerank"      // 重排阶段：截断等
	KindPostProcess Kind = "postprocess" // 后处理阶段：补充邻居等渲染信息
)

// Node 是 Pipeline 的最小可扩展单元。
// 统一采用“输入 items -> 输出 items”的形态，方便 Recall 生成、Filter 截断、ReRank 重排等操作。
type Node interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		rctx *core.RecommendContext,
		items []*core.Item,
	) ([]*core.Item, error)
}

// NodeBuilder 根据配置构建 Node。
type NodeBuilder func(cfg map[string]any) (Node, error)
