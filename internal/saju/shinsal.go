// internal/saju/shinsal.go
// Guardian and ill-omen spirits (신살)

package saju

// Shinsal is a named auspicious or inauspicious marker of a chart
type Shinsal string

const (
	CheonEul   Shinsal = "cheoneul"   // 천을귀인 nobleman
	MunChang   Shinsal = "munchang"   // 문창귀인 literary star
	Yeokma     Shinsal = "yeokma"     // 역마 travelling horse
	Dohwa      Shinsal = "dohwa"      // 도화 peach blossom
	Hwagae     Shinsal = "hwagae"     // 화개 canopy
	Yangin     Shinsal = "yangin"     // 양인 blade
	Goegang    Shinsal = "goegang"    // 괴강
	Baekho     Shinsal = "baekho"     // 백호
	Hongyeom   Shinsal = "hongyeom"   // 홍염
	Gwimungwan Shinsal = "gwimungwan" // 귀문관
	Geopsal    Shinsal = "geopsal"    // 겁살
	Mangsin    Shinsal = "mangsin"    // 망신
)

// ShinsalList in table order
var ShinsalList = []Shinsal{CheonEul, MunChang, Yeokma, Dohwa, Hwagae, Yangin, Goegang, Baekho, Hongyeom, Gwimungwan, Geopsal, Mangsin}

// Valid reports whether s is a known marker
func (s Shinsal) Valid() bool {
	for _, k := range ShinsalList {
		if k == s {
			return true
		}
	}
	return false
}

// triad group of a branch keyed by the group's middle (cardinal) branch
var triadOf = map[Branch]Branch{
	In: O, O: O, Sul: O,
	Shin: Ja, Ja: Ja, Jin: Ja,
	Sa: Yu, Yu: Yu, Chuk: Yu,
	Hae: Myo, Myo: Myo, Mi: Myo,
}

var dohwaByTriad = map[Branch]Branch{O: Myo, Ja: Yu, Yu: O, Myo: Ja}
var yeokmaByTriad = map[Branch]Branch{O: Shin, Ja: In, Yu: Hae, Myo: Sa}
var hwagaeByTriad = map[Branch]Branch{O: Sul, Ja: Jin, Yu: Chuk, Myo: Mi}

var cheonEulByStem = map[Stem][2]Branch{
	Gap: {Chuk, Mi}, Mu: {Chuk, Mi}, Gyeong: {Chuk, Mi},
	Eul: {Ja, Shin}, Gi: {Ja, Shin},
	Byeong: {Hae, Yu}, Jeong: {Hae, Yu},
	Im: {Sa, Myo}, Gye: {Sa, Myo},
	Sin: {O, In},
}

// DetectShinsal derives the triad-based markers from the day branch and the nobleman from the day stem
func DetectShinsal(p Profile) []Shinsal {
	all := p.Pillars.All()
	present := make(map[Branch]bool, 4)
	for _, pl := range all {
		present[pl.Branch] = true
	}
	found := make(map[Shinsal]bool)
	if group, ok := triadOf[p.Pillars.Day.Branch]; ok {
		for i, pl := range all {
			if i == 2 {
				continue
			}
			switch pl.Branch {
			case dohwaByTriad[group]:
				found[Dohwa] = true
			case yeokmaByTriad[group]:
				found[Yeokma] = true
			case hwagaeByTriad[group]:
				found[Hwagae] = true
			}
		}
	}
	if nobles, ok := cheonEulByStem[p.DayMaster.Name]; ok {
		if present[nobles[0]] || present[nobles[1]] {
			found[CheonEul] = true
		}
	}

	var out []Shinsal
	for _, s := range ShinsalList {
		if found[s] {
			out = append(out, s)
		}
	}
	return out
}

// ResolvedShinsal prefers the caller's list and derives one otherwise
func ResolvedShinsal(p Profile) []Shinsal {
	if len(p.Shinsal) > 0 {
		return p.Shinsal
	}
	return DetectShinsal(p)
}
