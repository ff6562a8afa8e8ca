package utils

// Label 是推荐链路中的一等公民：可解释、可追踪、可透传。
// 渲染阶段依据 recall_source 决定标记的分类（friend / decision_tree / nearby）。
type Label struct {
	Value  string `json:"value"`
	Source string `json:"source"` // recall / filter / rerank / session ...
}

// 常用 label key
const (
	LabelRecallSource = "recall_source"
	LabelFiltered     = "filtered"
)

// RecallLabel 构造召回来源 Label。
func RecallLabel(source string) Label {
	return Label{Value: source, Source: "recall"}
}

// MergeLabel 用于合并同名 Label，遵循“保留历史、可追踪”的默认策略。
// - Value: 以 '|' 累积（相同值不重复累积）
// - Source: 以 ',' 累积
func MergeLabel(existing Label, incoming Label) Label {
	if existing.Value == "" {
		return incoming
	}
	if incoming.Value == "" || incoming == existing {
		return existing
	}

	merged := existing
	merged.Value = existing.Value + "|" + incoming.Value
	switch {
	case existing.Source == "":
		merged.Source = incoming.Source
	case incoming.Source == "":
		merged.Source = existing.Source
	default:
		merged.Source = existing.Source + "," + incoming.Source
	}
	return merged
}
