// Package dinekit 是一个餐厅推荐工具包：属性 Trie 做偏好匹配，用户-餐厅关系图做附近与好友推荐。
//
// 设计要点：
// - Pipeline-first: 推荐通过 Node 串联（Recall → Filter → ReRank → PostProcess）
// - Labels-first: recall_source 等 labels 全链路透传与 merge，渲染分类由此得出
// - 图与 Trie 各自持有实例级锁，可被并发召回共享
package dinekit

import (
	"github.com/rushteam/dinekit/pipeline"
	"github.com/rushteam/dinekit/session"
)

// 轻量 facade：便于用户直接 import "dinekit" 使用核心抽象。
type (
	Pipeline = pipeline.Pipeline
	Node     = pipeline.Node
	Kind     = pipeline.Kind

	Session = session.Session
	Query   = session.Query
	Result  = session.Result
)

const (
	KindRecall      = pipeline.KindRecall
	KindFilter      = pipeline.KindFilter
	KindReRank      = pipeline.KindReRank
	KindPostProcess = pipeline.KindPostProcess
)

// NewSession 构建推荐会话，见 session.New。
var NewSession = session.New
