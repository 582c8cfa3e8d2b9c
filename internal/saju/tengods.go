// internal/saju/tengods.go
// Ten gods (십신) derived from the day master

package saju

// TenGod is the role another stem or branch plays relative to the day master
type TenGod string

const (
	Bigyeon    TenGod = "bigyeon"    // 비견 companion
	Geopjae    TenGod = "geopjae"    // 겁재 rob wealth
	Siksin     TenGod = "siksin"     // 식신 eating god
	Sanggwan   TenGod = "sanggwan"   // 상관 hurting officer
	Pyeonjae   TenGod = "pyeonjae"   // 편재 indirect wealth
	Jeongjae   TenGod = "jeongjae"   // 정재 direct wealth
	Pyeongwan  TenGod = "pyeongwan"  // 편관 seven killings
	Jeonggwan  TenGod = "jeonggwan"  // 정관 direct officer
	Pyeonin    TenGod = "pyeonin"    // 편인 indirect resource
	Jeongin    TenGod = "jeongin"    // 정인 direct resource
)

// TenGods in conventional order
var TenGods = []TenGod{Bigyeon, Geopjae, Siksin, Sanggwan, Pyeonjae, Jeongjae, Pyeongwan, Jeonggwan, Pyeonin, Jeongin}

// Valid reports whether g is a known ten god
func (g TenGod) Valid() bool {
	return g.Index() >= 0
}

// Index returns the conventional position of g, or -1
func (g TenGod) Index() int {
	for i, tg := range TenGods {
		if tg == g {
			return i
		}
	}
	return -1
}

// TenGodOf returns the role of an (element, polarity) pair relative to the day master
func TenGodOf(dm DayMaster, e Element, yy YinYang) (TenGod, bool) {
	same := dm.YinYang == yy
	pick := func(a, b TenGod) (TenGod, bool) {
		if same {
			return a, true
		}
		return b, true
	}
	switch RelationBetween(dm.Element, e) {
	case RelationSame:
		return pick(Bigyeon, Geopjae)
	case RelationGenerates:
		return pick(Siksin, Sanggwan)
	case RelationControls:
		return pick(Pyeonjae, Jeongjae)
	case RelationControlledBy:
		return pick(Pyeongwan, Jeonggwan)
	case RelationGeneratedBy:
		return pick(Pyeonin, Jeongin)
	}
	return "", false
}

// TenGodDistribution counts the roles of the seven stems and branches other than the day stem
func TenGodDistribution(p Profile) map[TenGod]int {
	dist := make(map[TenGod]int)
	add := func(e Element, yy YinYang) {
		if g, ok := TenGodOf(p.DayMaster, e, yy); ok {
			dist[g]++
		}
	}
	for i, pl := range p.Pillars.All() {
		if i != 2 && pl.Stem.Index() >= 0 {
			add(pl.Stem.Element(), pl.Stem.YinYang())
		}
		if pl.Branch.Index() >= 0 {
			add(pl.Branch.Element(), pl.Branch.YinYang())
		}
	}
	return dist
}

// DominantTenGod returns the most frequent role, ties in conventional order
func DominantTenGod(dist map[TenGod]int) (TenGod, bool) {
	best, bestCount := TenGod(""), 0
	for _, g := range TenGods {
		if n := dist[g]; n > bestCount {
			best, bestCount = g, n
		}
	}
	return best, bestCount > 0
}

// ResolvedTenGods prefers the caller's distribution and derives one otherwise
func ResolvedTenGods(p Profile) map[TenGod]int {
	if len(p.TenGods) > 0 {
		return p.TenGods
	}
	if !p.HasDayMaster() {
		return nil
	}
	return TenGodDistribution(p)
}

// Geokguk is a named structural pattern of a chart
type Geokguk string

const (
	GeokJeonggwan Geokguk = "jeonggwan" // 정관격
	GeokPyeongwan Geokguk = "pyeongwan" // 편관격
	GeokJeongjae  Geokguk = "jeongjae"  // 정재격
	GeokPyeonjae  Geokguk = "pyeonjae"  // 편재격
	GeokSiksin    Geokguk = "siksin"    // 식신격
	GeokSanggwan  Geokguk = "sanggwan"  // 상관격
	GeokJeongin   Geokguk = "jeongin"   // 정인격
	GeokPyeonin   Geokguk = "pyeonin"   // 편인격
)

// Geokguks in table order
var Geokguks = []Geokguk{GeokJeonggwan, GeokPyeongwan, GeokJeongjae, GeokPyeonjae, GeokSiksin, GeokSanggwan, GeokJeongin, GeokPyeonin}

// Valid reports whether g is a known pattern
func (g Geokguk) Valid() bool {
	for _, k := range Geokguks {
		if k == g {
			return true
		}
	}
	return false
}
