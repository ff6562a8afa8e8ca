package recall

import (
	"context"

	"go.uber.org/zap"

	"github.com/rushteam/dinekit/core"
	"github.com/rushteam/dinekit/dataset"
	"github.com/rushteam/dinekit/graph"
	"github.com/rushteam/dinekit/pipeline"
	"github.com/rushteam/dinekit/trie"
)

// DecisionTree 是基于属性 Trie 的召回源：用 rctx.Preferences 严格匹配 Trie，
// 得到的餐厅名再映射回完整记录。
//
// Graph 非空且 rctx.UserID 非空时，会把用户与匹配到的餐厅连边（用户“注册”这些推荐），
// 之后 friend 召回才能以该用户为起点建立好友关系。
type DecisionTree struct {
	Trie    *trie.AttributeTrie
	Records []*core.Restaurant
	Graph   *graph.RelationGraph
	Logger  *zap.Logger
}

func (r *DecisionTree) Name() string        { return "recall.decision_tree" }
func (r *DecisionTree) Kind() pipeline.Kind { return pipeline.KindRecall }

func (r *DecisionTree) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	return process(ctx, r, rctx, items)
}

func (r *DecisionTree) Recall(ctx context.Context, rctx *core.RecommendContext) ([]*core.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.Trie == nil || rctx == nil || len(rctx.Preferences) == 0 {
		return nil, nil
	}

	names := r.Trie.MatchSequence(rctx.Preferences)
	records := dataset.ByNames(names, r.Records)
	logger(r.Logger).Debug("decision tree matched",
		zap.Strings("preferences", rctx.Preferences),
		zap.Int("names", len(names)),
		zap.Int("records", len(records)))

	if r.Graph != nil && rctx.UserID != "" && len(records) > 0 {
		if err := r.Graph.LinkUserToRestaurants(rctx.UserID, uniqueNames(records)); err != nil {
			return nil, err
		}
	}
	return toItems(records, core.CategoryDecisionTree), nil
}

func uniqueNames(records []*core.Restaurant) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.Name]; ok {
			continue
		}
		seen[r.Name] = struct{}{}
		out = append(out, r.Name)
	}
	return out
}

func logger(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

var (
	_ Source        = (*DecisionTree)(nil)
	_ pipeline.Node = (*DecisionTree)(nil)
)
