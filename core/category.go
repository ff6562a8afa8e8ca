package core

// Category 是推荐结果的来源分类，渲染端据此选择标记样式。
type Category string

const (
	CategoryDecisionTree Category = "decision_tree"
	CategoryNearby       Category = "nearby"
	CategoryFriend       Category = "friend"
)

// Priority 越大越优先：同一餐厅命中多个来源时，按 friend > nearby > decision_tree 选取展示分类。
func (c Category) Priority() int {
	switch c {
	case CategoryFriend:
		return 3
	case CategoryNearby:
		return 2
	case CategoryDecisionTree:
		return 1
	default:
		return 0
	}
}
