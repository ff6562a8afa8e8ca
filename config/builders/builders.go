// Package builders 注册内置 Node 的配置构建逻辑。
package builders

import (
	"fmt"

	"github.com/rushteam/dinekit/config"
	"github.com/rushteam/dinekit/filter"
	"github.com/rushteam/dinekit/pipeline"
	"github.com/rushteam/dinekit/pkg/conv"
	"github.com/rushteam/dinekit/recall"
	"github.com/rushteam/dinekit/render"
	"github.com/rushteam/dinekit/rerank"
)

func init() {
	config.Register("recall.decision_tree", BuildDecisionTreeNode)
	config.Register("recall.trie", BuildDecisionTreeNode)
	config.Register("recall.nearby", BuildNearbyNode)
	config.Register("recall.friend", BuildFriendNode)
	config.Register("recall.fanout", BuildFanoutNode)
	config.Register("filter", BuildFilterNode)
	config.Register("rerank.topn", BuildTopNNode)
	config.Register("postprocess.neighbours", BuildNeighboursNode)
}

// sourceBuilders 是 recall.fanout 中 sources[].type 可用的召回源。
var sourceBuilders = map[string]func(env *config.Env, cfg map[string]any) recall.Source{
	"decision_tree": func(env *config.Env, cfg map[string]any) recall.Source { return newDecisionTree(env, cfg) },
	"trie":          func(env *config.Env, cfg map[string]any) recall.Source { return newDecisionTree(env, cfg) },
	"nearby":        func(env *config.Env, cfg map[string]any) recall.Source { return newNearby(env, cfg) },
	"friend":        func(env *config.Env, cfg map[string]any) recall.Source { return newFriend(env, cfg) },
}

func newDecisionTree(env *config.Env, cfg map[string]any) *recall.DecisionTree {
	src := &recall.DecisionTree{
		Trie:    env.Trie,
		Records: env.Records,
		Logger:  env.Logger,
	}
	if conv.ConfigGet(cfg, "link_user", true) {
		src.Graph = env.Graph
	}
	return src
}

func newNearby(env *config.Env, cfg map[string]any) *recall.Nearby {
	return &recall.Nearby{
		Graph:        env.Graph,
		Records:      env.Records,
		Interactions: env.Interactions,
		RadiusKm:     conv.ConfigGetFloat64(cfg, "radius_km", 0),
		Limit:        int(conv.ConfigGetInt64(cfg, "limit", 0)),
		Logger:       env.Logger,
	}
}

func newFriend(env *config.Env, _ map[string]any) *recall.Friend {
	return &recall.Friend{
		Graph:   env.Graph,
		Records: env.Records,
		Logger:  env.Logger,
	}
}

func BuildDecisionTreeNode(env *config.Env, cfg map[string]any) (pipeline.Node, error) {
	if env.Trie == nil {
		return nil, fmt.Errorf("recall.decision_tree: trie not available")
	}
	return newDecisionTree(env, cfg), nil
}

func BuildNearbyNode(env *config.Env, cfg map[string]any) (pipeline.Node, error) {
	if env.Graph == nil {
		return nil, fmt.Errorf("recall.nearby: graph not available")
	}
	return newNearby(env, cfg), nil
}

func BuildFriendNode(env *config.Env, cfg map[string]any) (pipeline.Node, error) {
	if env.Graph == nil {
		return nil, fmt.Errorf("recall.friend: graph not available")
	}
	return newFriend(env, cfg), nil
}

func BuildFanoutNode(env *config.Env, cfg map[string]any) (pipeline.Node, error) {
	sourcesConfig := conv.SliceAnyToMaps(cfg["sources"])
	if len(sourcesConfig) == 0 {
		return nil, fmt.Errorf("sources not found or invalid")
	}
	sources := make([]recall.Source, 0, len(sourcesConfig))
	for _, sc := range sourcesConfig {
		sourceType := conv.ConfigGet(sc, "type", "")
		build, ok := sourceBuilders[sourceType]
		if !ok {
			return nil, fmt.Errorf("unknown source type: %s", sourceType)
		}
		sources = append(sources, build(env, sc))
	}
	return &recall.Fanout{
		Sources:       sources,
		Dedup:         conv.ConfigGet(cfg, "dedup", true),
		MaxConcurrent: int(conv.ConfigGetInt64(cfg, "max_concurrent", 0)),
		IgnoreErrors:  conv.ConfigGet(cfg, "ignore_errors", false),
		Logger:        env.Logger,
	}, nil
}

func BuildFilterNode(env *config.Env, cfg map[string]any) (pipeline.Node, error) {
	filtersConfig := conv.SliceAnyToMaps(cfg["filters"])
	if len(filtersConfig) == 0 {
		return nil, fmt.Errorf("filters not found or invalid")
	}

	filters := make([]filter.Filter, 0, len(filtersConfig))
	for _, fc := range filtersConfig {
		switch filterType := conv.ConfigGet(fc, "type", ""); filterType {
		case "blacklist":
			names := conv.SliceAnyToString(fc["names"])
			key := conv.ConfigGet(fc, "key", "")
			var adapter *filter.StoreAdapter
			if key != "" && env.Store != nil {
				adapter = filter.NewStoreAdapter(env.Store)
			}
			filters = append(filters, filter.NewBlacklistFilter(names, adapter, key))

		case "expr":
			f, err := filter.NewExprFilter(conv.ConfigGet(fc, "expr", ""))
			if err != nil {
				return nil, err
			}
			filters = append(filters, f)

		default:
			return nil, fmt.Errorf("unknown filter type: %s", filterType)
		}
	}
	return &filter.FilterNode{Filters: filters, Logger: env.Logger}, nil
}

func BuildTopNNode(_ *config.Env, cfg map[string]any) (pipeline.Node, error) {
	return &rerank.TopNNode{N: int(conv.ConfigGetInt64(cfg, "n", 0))}, nil
}

func BuildNeighboursNode(env *config.Env, _ map[string]any) (pipeline.Node, error) {
	return &render.NeighboursNode{Graph: env.Graph}, nil
}
