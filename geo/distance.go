// Package geo 提供 nearby 召回所需的距离计算与区域坐标查询。
package geo

import (
	"github.com/tidwall/geodesic"

	"github.com/rushteam/dinekit/core"
)

// Distance 返回两点在 WGS-84 椭球上的测地线距离（公里，Karney 反解）。
// 近对跖点同样收敛，不需要球面退化。
func Distance(a, b core.Location) float64 {
	var s12 float64
	geodesic.WGS84.Inverse(a.Lat, a.Lon, b.Lat, b.Lon, &s12, nil, nil)
	return s12 / 1000
}

// Within 判断 b 是否在 a 的 radiusKm 范围内（含边界）。
func Within(a, b core.Location, radiusKm float64) bool {
	return Distance(a, b) <= radiusKm
}
