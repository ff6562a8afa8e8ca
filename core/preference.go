package core

// 属性 token：Trie 的固定 8 槽位 schema（菜系之后依次为以下 7 项），
// 数据集抽取（dataset.AttributeSequence）与用户偏好（Preference.Sequence）共用同一套取值。
const (
	TokenTakeout   = "takeout"
	TokenNoTakeout = "no takeout"

	TokenHighStar = "high star"
	TokenLowStar  = "low star"

	TokenAlcohol   = "alcohol"
	TokenNoAlcohol = "no alcohol"

	TokenWiFi   = "wifi"
	TokenNoWiFi = "no wifi"

	TokenCreditCard   = "credit card"
	TokenNoCreditCard = "no credit card"

	TokenGroups   = "groups"
	TokenNoGroups = "no groups"
)

// HighStarThreshold 以上（含）的评分归为 high star。
const HighStarThreshold = 3.0

// PriceToken 把 1~4 的价位映射为 "$".."$$$$"，越界返回 false。
func PriceToken(tier int) (string, bool) {
	switch tier {
	case 1:
		return "$", true
	case 2:
		return "$$", true
	case 3:
		return "$$$", true
	case 4:
		return "$$$$", true
	default:
		return "", false
	}
}

// Preference 是偏好表单的结构化答案。
type Preference struct {
	Cuisine    string `json:"cuisine" yaml:"cuisine"`
	Takeout    bool   `json:"takeout" yaml:"takeout"`
	HighStar   bool   `json:"high_star" yaml:"high_star"`
	Alcohol    bool   `json:"alcohol" yaml:"alcohol"`
	WiFi       bool   `json:"wifi" yaml:"wifi"`
	CreditCard bool   `json:"credit_card" yaml:"credit_card"`
	Groups     bool   `json:"groups" yaml:"groups"`
	Price      int    `json:"price" yaml:"price"` // 1~4
}

// Sequence 返回用于 Trie 匹配的偏好序列：
// [cuisine, takeout, star, alcohol, wifi, credit card, groups, price]。
// 价位越界时省略最后一项，匹配会停在价位层并返回该层的候选价位。
func (p Preference) Sequence() []string {
	seq := []string{
		p.Cuisine,
		pick(p.Takeout, TokenTakeout, TokenNoTakeout),
		pick(p.HighStar, TokenHighStar, TokenLowStar),
		pick(p.Alcohol, TokenAlcohol, TokenNoAlcohol),
		pick(p.WiFi, TokenWiFi, TokenNoWiFi),
		pick(p.CreditCard, TokenCreditCard, TokenNoCreditCard),
		pick(p.Groups, TokenGroups, TokenNoGroups),
	}
	if price, ok := PriceToken(p.Price); ok {
		seq = append(seq, price)
	}
	return seq
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
