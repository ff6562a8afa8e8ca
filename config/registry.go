package config

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/rushteam/dinekit/core"
	"github.com/rushteam/dinekit/graph"
	"github.com/rushteam/dinekit/pipeline"
	"github.com/rushteam/dinekit/trie"
)

// 使用配置驱动时，需在 main 或入口处 import _ "github.com/rushteam/dinekit/config/builders"
// 以触发内置 Node（recall.decision_tree、recall.nearby、recall.friend 等）的 init 注册。

// Env 是构建 Node 时共享的运行时依赖：同一次会话的关系图、属性 Trie 与数据。
type Env struct {
	Graph        *graph.RelationGraph
	Trie         *trie.AttributeTrie
	Records      []*core.Restaurant
	Interactions []core.Interaction
	// Store 可选，filter 的 blacklist 从这里读取黑名单
	Store  core.Store
	Logger *zap.Logger
}

// NodeBuilder 根据 Env 与 config 构建 Node。
// 各组件在 init 中调用 Register(typeName, builder) 即可被配置驱动。
type NodeBuilder func(env *Env, cfg map[string]any) (pipeline.Node, error)

var (
	defaultBuilders   = make(map[string]NodeBuilder)
	defaultBuildersMu sync.RWMutex
)

// Register 注册一种 Node 的构建逻辑，供 Factory 与配置驱动使用。
func Register(typeName string, builder NodeBuilder) {
	if typeName == "" || builder == nil {
		return
	}
	defaultBuildersMu.Lock()
	defer defaultBuildersMu.Unlock()
	defaultBuilders[typeName] = builder
}

// Lookup 返回已注册的构建器。
func Lookup(typeName string) (NodeBuilder, bool) {
	defaultBuildersMu.RLock()
	defer defaultBuildersMu.RUnlock()
	b, ok := defaultBuilders[typeName]
	return b, ok
}

// SupportedTypes 返回当前已注册的 Node 类型列表（排序），用于错误提示与校验。
func SupportedTypes() []string {
	defaultBuildersMu.RLock()
	defer defaultBuildersMu.RUnlock()
	types := make([]string, 0, len(defaultBuilders))
	for t := range defaultBuilders {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Factory 返回绑定了 env 的 NodeFactory，包含所有通过 Register 注册的 Node 类型。
func Factory(env *Env) *pipeline.NodeFactory {
	if env == nil {
		env = &Env{}
	}
	defaultBuildersMu.RLock()
	defer defaultBuildersMu.RUnlock()
	f := pipeline.NewNodeFactory()
	for typeName, builder := range defaultBuilders {
		builder := builder
		f.Register(typeName, func(cfg map[string]any) (pipeline.Node, error) {
			return builder(env, cfg)
		})
	}
	return f
}

// BuildPipeline 校验并构建 Pipeline，日志使用 env.Logger。
func BuildPipeline(env *Env, cfg *pipeline.Config) (*pipeline.Pipeline, error) {
	if cfg == nil {
		cfg = &pipeline.Config{}
	}
	if err := ValidatePipelineConfig(cfg); err != nil {
		return nil, err
	}
	p, err := cfg.BuildPipeline(Factory(env))
	if err != nil {
		return nil, err
	}
	if env != nil {
		p.Logger = env.Logger
	}
	return p, nil
}

// ValidatePipelineConfig 校验 pipeline 配置中所有 node 类型均已注册；若有未支持类型则返回包含已支持列表的错误。
func ValidatePipelineConfig(cfg *pipeline.Config) error {
	if cfg == nil {
		return nil
	}
	for _, nc := range cfg.Pipeline.Nodes {
		if nc.Type == "" {
			continue
		}
		if _, ok := Lookup(nc.Type); !ok {
			return fmt.Errorf("unsupported node type %q (supported: %v)", nc.Type, SupportedTypes())
		}
	}
	return nil
}
