// internal/matrix/axes.go
package matrix

import (
	"strconv"

	"github.com/imadgeboyega/destiny-fusion/internal/astro"
	"github.com/imadgeboyega/destiny-fusion/internal/saju"
)

// Domain groups cells for the per-domain breakdown
type Domain string

const (
	Personality Domain = "personality"
	Wealth      Domain = "wealth"
	Career      Domain = "career"
	Love        Domain = "love"
	Health      Domain = "health"
	Growth      Domain = "growth"
)

// Domains in report order
var Domains = []Domain{Personality, Wealth, Career, Love, Health, Growth}

type axisValue struct {
	key    string
	ko     string
	en     string
	domain Domain
}

func av(key, ko, en string, d Domain) axisValue {
	return axisValue{key: key, ko: ko, en: en, domain: d}
}

var sajuElementAxis = []axisValue{
	av(string(saju.Wood), "목", "Wood", ""),
	av(string(saju.Fire), "화", "Fire", ""),
	av(string(saju.Earth), "토", "Earth", ""),
	av(string(saju.Metal), "금", "Metal", ""),
	av(string(saju.Water), "수", "Water", ""),
}

var westernElementAxis = []axisValue{
	av(string(astro.Fire), "불", "Fire signs", ""),
	av(string(astro.Earth), "흙", "Earth signs", ""),
	av(string(astro.Air), "바람", "Air signs", ""),
	av(string(astro.Water), "물", "Water signs", ""),
}

var tenGodAxis = []axisValue{
	av(string(saju.Bigyeon), "비견", "Companion", Personality),
	av(string(saju.Geopjae), "겁재", "Rival", Wealth),
	av(string(saju.Siksin), "식신", "Expression", Growth),
	av(string(saju.Sanggwan), "상관", "Rebel", Career),
	av(string(saju.Pyeonjae), "편재", "Windfall", Wealth),
	av(string(saju.Jeongjae), "정재", "Steady wealth", Wealth),
	av(string(saju.Pyeongwan), "편관", "Authority", Career),
	av(string(saju.Jeonggwan), "정관", "Office", Career),
	av(string(saju.Pyeonin), "편인", "Intuition", Growth),
	av(string(saju.Jeongin), "정인", "Mentor", Growth),
}

var planetAxis = []axisValue{
	av(string(astro.Sun), "태양", "the Sun", Personality),
	av(string(astro.Moon), "달", "the Moon", Health),
	av(string(astro.Mercury), "수성", "Mercury", Career),
	av(string(astro.Venus), "금성", "Venus", Love),
	av(string(astro.Mars), "화성", "Mars", Love),
	av(string(astro.Jupiter), "목성", "Jupiter", Wealth),
	av(string(astro.Saturn), "토성", "Saturn", Career),
	av(string(astro.Uranus), "천왕성", "Uranus", Growth),
	av(string(astro.Neptune), "해왕성", "Neptune", Growth),
	av(string(astro.Pluto), "명왕성", "Pluto", Growth),
}

var houseDomains = [12]Domain{
	Personality, Wealth, Growth, Personality, Love, Health,
	Love, Wealth, Growth, Career, Career, Growth,
}

var houseAxis = func() []axisValue {
	out := make([]axisValue, 12)
	for i := range out {
		n := strconv.Itoa(i + 1)
		out[i] = av(n, n+"하우스", "house "+n, houseDomains[i])
	}
	return out
}()

// Cycle is a Saju timing cycle
type Cycle string

const (
	CycleDaeun Cycle = "daeun"
	CycleSeun  Cycle = "seun"
	CycleWolun Cycle = "wolun"
	CycleIlun  Cycle = "ilun"
)

// Cycles in table order
var Cycles = []Cycle{CycleDaeun, CycleSeun, CycleWolun, CycleIlun}

var cycleAxis = []axisValue{
	av(string(CycleDaeun), "대운", "the decade cycle", ""),
	av(string(CycleSeun), "세운", "the annual cycle", ""),
	av(string(CycleWolun), "월운", "the monthly cycle", ""),
	av(string(CycleIlun), "일운", "the daily cycle", ""),
}

var transitAxis = []axisValue{
	av(string(astro.JupiterReturn), "목성회귀", "a Jupiter return", Wealth),
	av(string(astro.SaturnReturn), "토성회귀", "a Saturn return", Career),
	av(string(astro.MercuryRetrograde), "수성역행", "Mercury retrograde", Career),
	av(string(astro.VenusRetrograde), "금성역행", "Venus retrograde", Love),
	av(string(astro.MarsRetrograde), "화성역행", "Mars retrograde", Health),
	av(string(astro.Eclipse), "일월식", "an eclipse", Growth),
	av(string(astro.Direct), "순행", "direct motion", ""),
}

var relationAxis = []axisValue{
	av(string(saju.RelSamhap), "삼합", "Triad harmony", ""),
	av(string(saju.RelYukhap), "육합", "Six harmony", Love),
	av(string(saju.RelBanghap), "방합", "Directional union", ""),
	av(string(saju.RelChung), "충", "Clash", ""),
	av(string(saju.RelHyeong), "형", "Punishment", Health),
	av(string(saju.RelPa), "파", "Break", ""),
	av(string(saju.RelHae), "해", "Harm", ""),
}

var aspectAxis = []axisValue{
	av(string(astro.Conjunction), "합", "conjunction", ""),
	av(string(astro.Sextile), "섹스타일", "sextile", ""),
	av(string(astro.Square), "스퀘어", "square", ""),
	av(string(astro.Trine), "트라인", "trine", ""),
	av(string(astro.Opposition), "대립", "opposition", ""),
	av(string(astro.Quincunx), "퀸컹스", "quincunx", ""),
	av(string(astro.Semisextile), "세미섹스타일", "semisextile", ""),
}

var stageAxis = []axisValue{
	av(string(saju.StageBirth), "장생", "Birth", ""),
	av(string(saju.StageBathing), "목욕", "Bathing", ""),
	av(string(saju.StageDressing), "관대", "Coming of age", ""),
	av(string(saju.StagePrimeOffice), "건록", "Prime office", ""),
	av(string(saju.StageEmperor), "제왕", "Peak", ""),
	av(string(saju.StageDecline), "쇠", "Decline", ""),
	av(string(saju.StageSickness), "병", "Sickness", ""),
	av(string(saju.StageDeath), "사", "Rest", ""),
	av(string(saju.StageStorage), "묘", "Storage", ""),
	av(string(saju.StageExtinction), "절", "Severance", ""),
	av(string(saju.StageGestation), "태", "Conception", ""),
	av(string(saju.StageNurture), "양", "Nurture", ""),
}

var patternAxis = []axisValue{
	av(string(saju.GeokJeonggwan), "정관격", "the direct officer pattern", Career),
	av(string(saju.GeokPyeongwan), "편관격", "the authority pattern", Career),
	av(string(saju.GeokJeongjae), "정재격", "the direct wealth pattern", Wealth),
	av(string(saju.GeokPyeonjae), "편재격", "the windfall pattern", Wealth),
	av(string(saju.GeokSiksin), "식신격", "the expression pattern", Growth),
	av(string(saju.GeokSanggwan), "상관격", "the rebel pattern", Career),
	av(string(saju.GeokJeongin), "정인격", "the mentor pattern", Growth),
	av(string(saju.GeokPyeonin), "편인격", "the intuition pattern", Growth),
	av(yongsinKey(saju.Wood), "용신 목", "a wood balance need", Health),
	av(yongsinKey(saju.Fire), "용신 화", "a fire balance need", Health),
	av(yongsinKey(saju.Earth), "용신 토", "an earth balance need", Health),
	av(yongsinKey(saju.Metal), "용신 금", "a metal balance need", Health),
	av(yongsinKey(saju.Water), "용신 수", "a water balance need", Health),
}

func yongsinKey(e saju.Element) string { return "yongsin-" + string(e) }

var progressionAxis = []axisValue{
	av(string(astro.SecondaryProgression), "2차 진행", "secondary progression", ""),
	av(string(astro.SolarArc), "솔라아크", "solar arc", ""),
	av(string(astro.SolarReturn), "솔라리턴", "a solar return", ""),
	av(string(astro.LunarReturn), "루나리턴", "a lunar return", ""),
	av(string(astro.ProgressedMoon), "진행 달", "the progressed moon", ""),
}

var harmonicRowAxis = []axisValue{av("harmonic", "하모닉", "Harmonic resonance", Growth)}

var harmonicAxis = func() []axisValue {
	out := make([]axisValue, 12)
	for i := range out {
		n := strconv.Itoa(i + 1)
		out[i] = av(n, "H"+n, "harmonic "+n, "")
	}
	return out
}()

// harmonic number each pattern resonates with
var patternHarmonic = map[saju.Geokguk]int{
	saju.GeokJeonggwan: 4,
	saju.GeokPyeongwan: 8,
	saju.GeokJeongjae:  2,
	saju.GeokPyeonjae:  11,
	saju.GeokSiksin:    5,
	saju.GeokSanggwan:  7,
	saju.GeokJeongin:   3,
	saju.GeokPyeonin:   12,
}

var shinsalAxis = []axisValue{
	av(string(saju.CheonEul), "천을귀인", "Nobleman", Career),
	av(string(saju.MunChang), "문창귀인", "Literary star", Growth),
	av(string(saju.Yeokma), "역마", "Travelling horse", Career),
	av(string(saju.Dohwa), "도화", "Peach blossom", Love),
	av(string(saju.Hwagae), "화개", "Canopy", Growth),
	av(string(saju.Yangin), "양인", "Blade", Health),
	av(string(saju.Goegang), "괴강", "Iron will", Personality),
	av(string(saju.Baekho), "백호", "White tiger", Health),
	av(string(saju.Hongyeom), "홍염", "Red flame", Love),
	av(string(saju.Gwimungwan), "귀문관", "Spirit gate", Health),
	av(string(saju.Geopsal), "겁살", "Robbery star", Wealth),
	av(string(saju.Mangsin), "망신", "Disgrace star", Personality),
}

var asteroidAxis = []axisValue{
	av(string(astro.Ceres), "세레스", "Ceres", Health),
	av(string(astro.Pallas), "팔라스", "Pallas", Career),
	av(string(astro.Juno), "주노", "Juno", Love),
	av(string(astro.Vesta), "베스타", "Vesta", Growth),
}

var pointAxis = []axisValue{
	av(string(astro.Chiron), "키론", "Chiron", Health),
	av(string(astro.Lilith), "릴리스", "Lilith", Love),
	av(string(astro.PartOfFortune), "행운점", "the Part of Fortune", Wealth),
	av(string(astro.Vertex), "버텍스", "the Vertex", Love),
	av(string(astro.NorthNode), "북교점", "the North Node", Growth),
	av(string(astro.SouthNode), "남교점", "the South Node", Personality),
}
