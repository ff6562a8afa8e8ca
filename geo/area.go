package geo

import (
	"fmt"
	"sort"

	"github.com/rushteam/dinekit/core"
)

// Areas 是纳什维尔各街区的中心坐标，用于把用户选择的区域名解析为位置。
var Areas = map[string]core.Location{
	"Downtown":          {Lat: 36.1627, Lon: -86.7816},
	"East Nashville":    {Lat: 36.1771, Lon: -86.7538},
	"The Gulch":         {Lat: 36.1525, Lon: -86.7889},
	"Germantown":        {Lat: 36.1771, Lon: -86.7907},
	"12 South":          {Lat: 36.1230, Lon: -86.7909},
	"Green Hills":       {Lat: 36.1069, Lon: -86.8190},
	"Belmont-Hillsboro": {Lat: 36.1314, Lon: -86.7996},
	"Joelton":           {Lat: 36.3239, Lon: -86.8689},
}

// LookupArea 返回区域中心坐标；未知区域返回 NOT_FOUND。
func LookupArea(name string) (core.Location, error) {
	loc, ok := Areas[name]
	if !ok {
		return core.Location{}, core.NewDomainError(core.ModuleGeo, core.ErrorCodeNotFound,
			fmt.Sprintf("geo: unknown area %q", name))
	}
	return loc, nil
}

// AreaNames 返回所有区域名（排序）。
func AreaNames() []string {
	names := make([]string, 0, len(Areas))
	for name := range Areas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
