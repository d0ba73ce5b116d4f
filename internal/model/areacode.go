package model

// AreaCode is one row of the upstream area-code table.
type AreaCode struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// areaNameIndex maps the region names the client app sends to the upstream
// area codes from the areaCode1 table. Compile-time data, not runtime state;
// codes 9..30 are unassigned upstream.
var areaNameIndex = map[string]int{
	"서울": 1,
	"인천": 2,
	"대전": 3,
	"대구": 4,
	"광주": 5,
	"부산": 6,
	"울산": 7,
	"세종": 8,
	"경기": 31,
	"강원": 32,
	"충북": 33,
	"충남": 34,
	"경북": 35,
	"경남": 36,
	"전북": 37,
	"전남": 38,
	"제주": 39,
}

// AreaCodeForRegion resolves a Korean region name to its area code.
func AreaCodeForRegion(name string) (int, bool) {
	code, ok := areaNameIndex[name]
	return code, ok
}
