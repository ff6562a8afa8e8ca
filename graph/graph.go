// Package graph 实现用户与餐厅之间的无向关系图。
//
// 顶点按 kind 分为 user 与 restaurant（按约定构成二部图，好友关系是 user-user 边）。
// 顶点保存在一个数组 arena 中，邻接集合只保存顶点的整数句柄，边总是双向写入。
// 图只追加、不删除；每次会话从数据集与交互数据重新构建。
package graph

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rushteam/dinekit/core"
)

// Kind 区分用户顶点与餐厅顶点，创建后不可修改。
type Kind string

const (
	// KindAny 仅用于 AllVertices 的过滤参数，表示不过滤
	KindAny        Kind = ""
	KindUser       Kind = "user"
	KindRestaurant Kind = "restaurant"
)

type handle int

type vertex struct {
	item       string
	kind       Kind
	neighbours map[handle]struct{}
}

// RelationGraph 是用户-餐厅关系图。
//
// 不变式：
//   - 顶点不与自身相邻
//   - 邻接关系总是双向的（A 邻接 B 当且仅当 B 邻接 A）
//   - 标识符在 user 与 restaurant 之间共享同一命名空间
//
// 所有公开方法由一把实例级读写锁保护；包内组合操作使用不加锁的内部版本。
type RelationGraph struct {
	mu       sync.RWMutex
	vertices []vertex
	index    map[string]handle
}

func New() *RelationGraph {
	return &RelationGraph{index: make(map[string]handle)}
}

// AddVertex 添加顶点；id 已存在时什么也不做（kind 也不会被更新）。
func (g *RelationGraph) AddVertex(id string, kind Kind) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertex(id, kind)
}

// AddEdge 在两个已存在的顶点之间添加无向边；边已存在时幂等。
// id1 == id2 返回 INVALID_INPUT；任一顶点不存在返回 UNKNOWN_VERTEX，且不修改图。
func (g *RelationGraph) AddEdge(id1, id2 string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.addEdge(id1, id2)
}

// AreAdjacent 判断两个顶点是否相邻；任一顶点不存在时返回 false。
func (g *RelationGraph) AreAdjacent(id1, id2 string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	h1, ok1 := g.index[id1]
	h2, ok2 := g.index[id2]
	if !ok1 || !ok2 {
		return false
	}
	_, ok := g.vertices[h1].neighbours[h2]
	return ok
}

// NeighboursOf 返回相邻顶点的标识符（排序）；顶点不存在时返回 UNKNOWN_VERTEX。
func (g *RelationGraph) NeighboursOf(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.neighboursOf(id, KindAny)
}

// AllVertices 返回所有顶点标识符（排序）；kind 非 KindAny 时只返回该类顶点。
func (g *RelationGraph) AllVertices(kind Kind) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for _, v := range g.vertices {
		if kind == KindAny || v.kind == kind {
			out = append(out, v.item)
		}
	}
	sort.Strings(out)
	return out
}

// KindOf 返回顶点的 kind。
func (g *RelationGraph) KindOf(id string) (Kind, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	h, ok := g.index[id]
	if !ok {
		return KindAny, false
	}
	return g.vertices[h].kind, true
}

// Len 返回顶点数量。
func (g *RelationGraph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vertices)
}

func (g *RelationGraph) addVertex(id string, kind Kind) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = handle(len(g.vertices))
	g.vertices = append(g.vertices, vertex{
		item:       id,
		kind:       kind,
		neighbours: make(map[handle]struct{}),
	})
}

func (g *RelationGraph) addEdge(id1, id2 string) error {
	if id1 == id2 {
		return core.NewDomainError(core.ModuleGraph, core.ErrorCodeInvalidInput,
			fmt.Sprintf("graph: self loop on %q", id1))
	}
	h1, ok := g.index[id1]
	if !ok {
		return unknownVertex(id1)
	}
	h2, ok := g.index[id2]
	if !ok {
		return unknownVertex(id2)
	}
	g.vertices[h1].neighbours[h2] = struct{}{}
	g.vertices[h2].neighbours[h1] = struct{}{}
	return nil
}

func (g *RelationGraph) neighboursOf(id string, kind Kind) ([]string, error) {
	h, ok := g.index[id]
	if !ok {
		return nil, unknownVertex(id)
	}
	out := make([]string, 0, len(g.vertices[h].neighbours))
	for n := range g.vertices[h].neighbours {
		v := g.vertices[n]
		if kind == KindAny || v.kind == kind {
			out = append(out, v.item)
		}
	}
	sort.Strings(out)
	return out, nil
}

func unknownVertex(id string) error {
	return core.NewDomainError(core.ModuleGraph, core.ErrorCodeUnknownVertex,
		fmt.Sprintf("graph: unknown vertex %q", id))
}
