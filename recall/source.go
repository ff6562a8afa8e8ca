package recall

import (
	"context"

	"github.com/rushteam/dinekit/core"
	"github.com/rushteam/dinekit/pkg/utils"
)

// Source 表示一个可复用的召回源（decision_tree / nearby / friend）。
// 每个 Source 同时实现 pipeline.Node：Process 把召回结果追加并去重到已有 items 之后。
type Source interface {
	Name() string
	Recall(ctx context.Context, rctx *core.RecommendContext) ([]*core.Item, error)
}

// toItems 把餐厅记录包装为 Item 并打上召回来源标签。
func toItems(records []*core.Restaurant, category core.Category) []*core.Item {
	items := core.ItemsFromRestaurants(records)
	for _, it := range items {
		it.PutLabel(utils.LabelRecallSource, utils.RecallLabel(string(category)))
	}
	return items
}

// process 是各 Source 作为 Node 时的通用实现。
func process(ctx context.Context, s Source, rctx *core.RecommendContext, items []*core.Item) ([]*core.Item, error) {
	recalled, err := s.Recall(ctx, rctx)
	if err != nil {
		return nil, err
	}
	return core.MergeItems(items, recalled), nil
}
