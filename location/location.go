// Package location resolves the administrative codes embedded in SumStock
// search URLs to prefecture/city names and normalizes free-text addresses
// to a city-level key.
//
// The URL-derived code is the authoritative source of classification.
// Address text mined from the page is informational only; callers surface
// a disagreement as a warning and keep the URL-derived result.
package location

import (
	"regexp"
	"sort"
	"strings"
)

// Other is the sentinel returned for codes outside the supported set.
const Other = "その他"

// Location is the resolved (prefecture, city) pair for one search URL.
type Location struct {
	PrefCode   string
	Prefecture string
	CityCode   string
	City       string
}

// Known reports whether the location resolved to a mapped city.
func (l Location) Known() bool {
	return l.City != Other
}

// searchPath matches the /search/{region}/{prefecture}/{city} triple.
// The city segment is a 5-digit code whose first two digits repeat the
// prefecture code.
var searchPath = regexp.MustCompile(`/search/(\d{2})/(\d{2})/(\d{5})`)

// prefectures maps 2-digit prefecture codes to names, scoped to the
// Kanto prefectures the vendor serves.
var prefectures = map[string]string{
	"11": "埼玉県",
	"12": "千葉県",
	"13": "東京都",
	"14": "神奈川県",
}

// cities maps 5-digit administrative city codes to city names, per the
// MLIT register for the supported prefectures.
var cities = map[string]string{
	// 埼玉県
	"11100": "さいたま市",
	"11101": "さいたま市西区",
	"11102": "さいたま市北区",
	"11103": "さいたま市大宮区",
	"11104": "さいたま市見沼区",
	"11105": "さいたま市中央区",
	"11106": "さいたま市桜区",
	"11107": "さいたま市浦和区",
	"11108": "さいたま市南区",
	"11109": "さいたま市緑区",
	"11110": "さいたま市岩槻区",
	// 千葉県
	"12100": "千葉市",
	"12101": "千葉市中央区",
	"12102": "千葉市花見川区",
	"12103": "千葉市稲毛区",
	"12104": "千葉市若葉区",
	"12105": "千葉市緑区",
	"12106": "千葉市美浜区",
	"12202": "銚子市",
	"12203": "市川市",
	"12204": "船橋市",
	"12205": "館山市",
	"12206": "木更津市",
	"12207": "松戸市",
	"12208": "野田市",
	"12209": "茂原市",
	"12210": "成田市",
	"12211": "佐倉市",
	"12212": "東金市",
	"12213": "旭市",
	"12214": "習志野市",
	"12215": "柏市",
	"12216": "勝浦市",
	"12217": "市原市",
	"12218": "流山市",
	"12219": "八千代市",
	"12220": "我孫子市",
	"12221": "鴨川市",
	"12222": "鎌ケ谷市",
	"12223": "君津市",
	"12224": "富津市",
	"12225": "浦安市",
	"12226": "四街道市",
	"12227": "袖ケ浦市",
	"12228": "八街市",
	"12229": "印西市",
	"12230": "白井市",
	"12231": "富里市",
	"12232": "南房総市",
	"12233": "匝瑳市",
	"12234": "香取市",
	"12235": "山武市",
	"12236": "いすみ市",
	"12237": "大網白里市",
	// 東京都
	"13101": "千代田区",
	"13102": "中央区",
	"13103": "港区",
	"13104": "新宿区",
	"13105": "文京区",
	"13106": "台東区",
	"13107": "墨田区",
	"13108": "江東区",
	"13109": "品川区",
	"13110": "目黒区",
	"13111": "大田区",
	"13112": "世田谷区",
	"13113": "渋谷区",
	"13114": "中野区",
	"13115": "杉並区",
	"13116": "豊島区",
	"13117": "北区",
	"13118": "荒川区",
	"13119": "板橋区",
	"13120": "練馬区",
	"13121": "足立区",
	"13122": "葛飾区",
	"13123": "江戸川区",
	"13201": "八王子市",
	"13202": "立川市",
	"13203": "武蔵野市",
	"13204": "三鷹市",
	"13205": "青梅市",
	"13206": "府中市",
	"13207": "昭島市",
	"13208": "調布市",
	"13209": "町田市",
	"13210": "小金井市",
	"13211": "小平市",
	"13212": "日野市",
	"13213": "東村山市",
	"13214": "国分寺市",
	"13215": "国立市",
	"13218": "福生市",
	"13219": "狛江市",
	"13220": "東大和市",
	"13221": "清瀬市",
	"13222": "東久留米市",
	"13223": "武蔵村山市",
	"13224": "多摩市",
	"13225": "稲城市",
	"13227": "羽村市",
	"13228": "あきる野市",
	"13229": "西東京市",
	// 神奈川県
	"14100": "横浜市",
	"14101": "横浜市鶴見区",
	"14102": "横浜市神奈川区",
	"14103": "横浜市西区",
	"14104": "横浜市中区",
	"14105": "横浜市南区",
	"14106": "横浜市保土ケ谷区",
	"14107": "横浜市磯子区",
	"14108": "横浜市金沢区",
	"14109": "横浜市港北区",
	"14110": "横浜市戸塚区",
	"14111": "横浜市港南区",
	"14112": "横浜市旭区",
	"14113": "横浜市緑区",
	"14114": "横浜市瀬谷区",
	"14115": "横浜市栄区",
	"14116": "横浜市泉区",
	"14117": "横浜市青葉区",
	"14118": "横浜市都筑区",
}

// byLength lists city names longest first so that ward-level names
// (千葉市中央区) match before their parent city (千葉市).
var (
	byLength   []string
	nameToCode = make(map[string]string)
)

func init() {
	for code, name := range cities {
		if _, dup := nameToCode[name]; !dup {
			nameToCode[name] = code
			byLength = append(byLength, name)
		}
	}
	sort.Slice(byLength, func(i, j int) bool {
		a, b := byLength[i], byLength[j]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
}

// ResolveURL parses the code triple out of a search URL and resolves the
// city code against the static table. Unmapped or unparseable URLs resolve
// to the Other sentinel; the caller is expected to log a warning, not fail.
func ResolveURL(rawURL string) Location {
	m := searchPath.FindStringSubmatch(rawURL)
	if m == nil {
		return Location{Prefecture: Other, City: Other}
	}
	loc := Location{PrefCode: m[2], CityCode: m[3]}
	city, ok := cities[loc.CityCode]
	if !ok {
		loc.Prefecture = Other
		loc.City = Other
		return loc
	}
	loc.City = city
	if pref, ok := prefectures[loc.PrefCode]; ok {
		loc.Prefecture = pref
	} else {
		loc.Prefecture = Other
	}
	return loc
}

// cityKey captures text up to and including the first municipality suffix
// (市/区/町/村), skipping a leading prefecture part. This is a heuristic
// over free text, not a full address parser: names that embed a suffix
// token mid-word can mis-truncate.
var cityKey = regexp.MustCompile(`([^都道府県]+?[市区町村])`)

// NormalizeAddress reduces a free-text address to its city-level key,
// e.g. "松戸市中金杉1丁目" → "松戸市". Text without a municipality suffix
// is returned trimmed but otherwise unchanged.
func NormalizeAddress(text string) string {
	text = strings.TrimSpace(text)
	if m := cityKey.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return text
}

// Mismatch reports whether the address-derived city disagrees with the
// URL-derived classification. The URL stays authoritative either way; the
// caller only logs. Addresses without a municipality token, and ward-level
// classifications whose parent city matches the address key, do not count
// as mismatches.
func Mismatch(loc Location, address string) bool {
	if !loc.Known() {
		return false
	}
	m := cityKey.FindStringSubmatch(strings.TrimSpace(address))
	if m == nil {
		return false
	}
	key := m[1]
	return key != loc.City && !strings.HasPrefix(loc.City, key)
}

// AddressCodes maps a free-text address to the (prefecture, city) API
// codes used by the land-price service, e.g. "松戸市中金杉1丁目" →
// ("12", "207"). Longest city names match first so ward-level entries win
// over their parent city.
func AddressCodes(address string) (prefCode, cityCode string, ok bool) {
	if address == "" {
		return "", "", false
	}
	for _, name := range byLength {
		if strings.Contains(address, name) {
			code := nameToCode[name]
			return code[:2], code[2:], true
		}
	}
	return "", "", false
}
