// Package trie 实现按属性序列逐层筛选餐厅的前缀树（decision tree）。
//
// 每条插入序列约定为 [cuisine, takeout, star, alcohol, wifi, credit card, groups, price, name]，
// 但 Trie 本身与 schema 无关，可以接受任意 token 序列。
// 子节点保持插入顺序（不排序、不压缩、不平衡），另有 label 索引用于查找。
package trie

import (
	"fmt"
	"sync"

	"github.com/rushteam/dinekit/core"
)

// DefaultMaxMatches 是 MatchSequence 返回候选的上限。
const DefaultMaxMatches = 10

type node struct {
	label    string
	children []*node
	index    map[string]*node
}

func newNode(label string) *node {
	return &node{label: label}
}

func (n *node) child(label string) (*node, bool) {
	c, ok := n.index[label]
	return c, ok
}

func (n *node) addChild(label string) *node {
	c := newNode(label)
	if n.index == nil {
		n.index = make(map[string]*node)
	}
	n.children = append(n.children, c)
	n.index[label] = c
	return c
}

// AttributeTrie 是属性前缀树。根节点 label 为空，其余节点 label 非空；
// 同一节点下不存在重复 label 的子节点。
// 属性完全相同的两家餐厅只有名字叶子不同；名字也相同时会合并到同一叶子。
type AttributeTrie struct {
	mu         sync.RWMutex
	root       *node
	size       int
	maxMatches int
}

// Option 配置 AttributeTrie。
type Option func(*AttributeTrie)

// WithMaxMatches 设置 MatchSequence 返回候选的上限（<= 0 时使用默认值 10）。
func WithMaxMatches(n int) Option {
	return func(t *AttributeTrie) {
		if n > 0 {
			t.maxMatches = n
		}
	}
}

func New(opts ...Option) *AttributeTrie {
	t := &AttributeTrie{
		root:       newNode(""),
		maxMatches: DefaultMaxMatches,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// InsertSequence 从根开始逐个 token 下行：存在同 label 子节点则复用，否则新建。
// 空序列不做任何事；含空 token 的序列返回 INVALID_INPUT，Trie 保持不变。
func (t *AttributeTrie) InsertSequence(tokens []string) error {
	for i, tok := range tokens {
		if tok == "" {
			return core.NewDomainError(core.ModuleTrie, core.ErrorCodeInvalidInput,
				fmt.Sprintf("trie: empty token at position %d", i))
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	cur := t.root
	for _, tok := range tokens {
		next, ok := cur.child(tok)
		if !ok {
			next = cur.addChild(tok)
			t.size++
		}
		cur = next
	}
	return nil
}

// MatchSequence 严格匹配：任一 token 找不到对应子节点即返回空结果。
// 全部 token 消费完后，返回当前节点前 maxMatches 个子节点的 label（插入顺序）；
// 当前节点没有子节点（已到叶子）时同样返回空结果，不回显叶子自身的 label。
func (t *AttributeTrie) MatchSequence(tokens []string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cur, ok := t.walk(tokens)
	if !ok || len(cur.children) == 0 {
		return []string{}
	}
	n := len(cur.children)
	if n > t.maxMatches {
		n = t.maxMatches
	}
	out := make([]string, 0, n)
	for _, c := range cur.children[:n] {
		out = append(out, c.label)
	}
	return out
}

// Children 返回 prefix 所在节点的全部子节点 label（插入顺序，不截断）；
// prefix 不存在时返回 nil, false。
func (t *AttributeTrie) Children(prefix []string) ([]string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cur, ok := t.walk(prefix)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(cur.children))
	for _, c := range cur.children {
		out = append(out, c.label)
	}
	return out, true
}

// Len 返回节点数（不含根）。
func (t *AttributeTrie) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

func (t *AttributeTrie) walk(tokens []string) (*node, bool) {
	cur := t.root
	for _, tok := range tokens {
		next, ok := cur.child(tok)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
