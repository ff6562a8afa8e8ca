package recall

import (
	"context"

	"go.uber.org/zap"

	"github.com/rushteam/dinekit/core"
	"github.com/rushteam/dinekit/graph"
	"github.com/rushteam/dinekit/pipeline"
	"github.com/rushteam/dinekit/pkg/conv"
)

// Nearby 是附近召回源：rctx.Location 半径内、被交互数据中某个用户关联过的餐厅。
// 结果按首次命中顺序返回，不按距离排序。
//
// 请求级参数（rctx.Params）可覆盖默认值：
//   - radius_km：半径（公里）
//   - limit：返回条数上限
type Nearby struct {
	Graph        *graph.RelationGraph
	Records      []*core.Restaurant
	Interactions []core.Interaction
	RadiusKm     float64 // <= 0 时为 1
	Limit        int     // <= 0 时为 5
	Logger       *zap.Logger
}

func (r *Nearby) Name() string        { return "recall.nearby" }
func (r *Nearby) Kind() pipeline.Kind { return pipeline.KindRecall }

func (r *Nearby) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	return process(ctx, r, rctx, items)
}

func (r *Nearby) Recall(ctx context.Context, rctx *core.RecommendContext) ([]*core.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.Graph == nil || rctx == nil || rctx.Location == nil {
		return nil, nil
	}

	radius := r.RadiusKm
	if radius <= 0 {
		radius = graph.DefaultRadiusKm
	}
	limit := r.Limit
	if limit <= 0 {
		limit = graph.DefaultNearbyLimit
	}
	radius = conv.ConfigGetFloat64(rctx.Params, "radius_km", radius)
	limit = int(conv.ConfigGetInt64(rctx.Params, "limit", int64(limit)))

	records, err := r.Graph.NearbyRestaurants(*rctx.Location, r.Records, r.Interactions,
		graph.WithRadiusKm(radius), graph.WithLimit(limit))
	if err != nil {
		return nil, err
	}
	logger(r.Logger).Debug("nearby recalled",
		zap.Float64("lat", rctx.Location.Lat),
		zap.Float64("lon", rctx.Location.Lon),
		zap.Float64("radius_km", radius),
		zap.Int("records", len(records)))
	return toItems(records, core.CategoryNearby), nil
}

var (
	_ Source        = (*Nearby)(nil)
	_ pipeline.Node = (*Nearby)(nil)
)
