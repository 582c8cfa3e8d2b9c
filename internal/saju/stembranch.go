// internal/saju/stembranch.go
// Heavenly stems, earthly branches and the sixty-term cycle

package saju

import "encoding/json"

// Stem is a heavenly stem, written in Hanja
type Stem string

// Branch is an earthly branch, written in Hanja
type Branch string

const (
	Gap    Stem = "甲"
	Eul    Stem = "乙"
	Byeong Stem = "丙"
	Jeong  Stem = "丁"
	Mu     Stem = "戊"
	Gi     Stem = "己"
	Gyeong Stem = "庚"
	Sin    Stem = "辛"
	Im     Stem = "壬"
	Gye    Stem = "癸"
)

const (
	Ja   Branch = "子"
	Chuk Branch = "丑"
	In   Branch = "寅"
	Myo  Branch = "卯"
	Jin  Branch = "辰"
	Sa   Branch = "巳"
	O    Branch = "午"
	Mi   Branch = "未"
	Shin Branch = "申"
	Yu   Branch = "酉"
	Sul  Branch = "戌"
	Hae  Branch = "亥"
)

// Stems in cycle order
var Stems = []Stem{Gap, Eul, Byeong, Jeong, Mu, Gi, Gyeong, Sin, Im, Gye}

// Branches in cycle order
var Branches = []Branch{Ja, Chuk, In, Myo, Jin, Sa, O, Mi, Shin, Yu, Sul, Hae}

var stemAliases = map[string]Stem{
	"갑": Gap, "을": Eul, "병": Byeong, "정": Jeong, "무": Mu,
	"기": Gi, "경": Gyeong, "신": Sin, "임": Im, "계": Gye,
}

var branchAliases = map[string]Branch{
	"자": Ja, "축": Chuk, "인": In, "묘": Myo, "진": Jin, "사": Sa,
	"오": O, "미": Mi, "신": Shin, "유": Yu, "술": Sul, "해": Hae,
}

// ParseStem accepts Hanja or Hangul spelling
func ParseStem(s string) (Stem, bool) {
	if st := Stem(s); st.Index() >= 0 {
		return st, true
	}
	st, ok := stemAliases[s]
	return st, ok
}

// ParseBranch accepts Hanja or Hangul spelling
func ParseBranch(s string) (Branch, bool) {
	if br := Branch(s); br.Index() >= 0 {
		return br, true
	}
	br, ok := branchAliases[s]
	return br, ok
}

// UnmarshalJSON stores Hangul spellings as their Hanja stem.
// Unknown text is kept verbatim for the validator to reject.
func (s *Stem) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if st, ok := ParseStem(raw); ok {
		*s = st
		return nil
	}
	*s = Stem(raw)
	return nil
}

// UnmarshalJSON stores Hangul spellings as their Hanja branch
func (b *Branch) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if br, ok := ParseBranch(raw); ok {
		*b = br
		return nil
	}
	*b = Branch(raw)
	return nil
}

// Index returns the cycle position of s, or -1
func (s Stem) Index() int {
	for i, st := range Stems {
		if st == s {
			return i
		}
	}
	return -1
}

// Index returns the cycle position of b, or -1
func (b Branch) Index() int {
	for i, br := range Branches {
		if br == b {
			return i
		}
	}
	return -1
}

// Element of the stem: two consecutive stems per element
func (s Stem) Element() Element {
	i := s.Index()
	if i < 0 {
		return ""
	}
	return Elements[i/2]
}

// YinYang of the stem: even positions are yang
func (s Stem) YinYang() YinYang {
	if s.Index()%2 == 0 {
		return Yang
	}
	return Yin
}

var branchElements = [12]Element{Water, Earth, Wood, Wood, Earth, Fire, Fire, Earth, Metal, Metal, Earth, Water}

// Element of the branch's main qi
func (b Branch) Element() Element {
	i := b.Index()
	if i < 0 {
		return ""
	}
	return branchElements[i]
}

// YinYang of the branch by position
func (b Branch) YinYang() YinYang {
	if b.Index()%2 == 0 {
		return Yang
	}
	return Yin
}

// Offset moves n steps through the branch cycle, wrapping in both directions
func (b Branch) Offset(n int) Branch {
	return Branches[mod(b.Index()+n, 12)]
}

// Offset moves n steps through the stem cycle, wrapping in both directions
func (s Stem) Offset(n int) Stem {
	return Stems[mod(s.Index()+n, 10)]
}

// Pillar is one stem/branch pair
type Pillar struct {
	Stem   Stem   `json:"stem" validate:"required,stem"`
	Branch Branch `json:"branch" validate:"required,branch"`
}

// Valid reports whether both halves are known
func (p Pillar) Valid() bool {
	return p.Stem.Index() >= 0 && p.Branch.Index() >= 0
}

// Advance moves the pillar n steps through the sixty-term cycle
func (p Pillar) Advance(n int) Pillar {
	return Pillar{Stem: p.Stem.Offset(n), Branch: p.Branch.Offset(n)}
}

// SexagenaryIndex is the pillar's 0..59 position, or -1 for a pair that never occurs
func (p Pillar) SexagenaryIndex() int {
	s, b := p.Stem.Index(), p.Branch.Index()
	if s < 0 || b < 0 || s%2 != b%2 {
		return -1
	}
	for i := 0; i < 60; i++ {
		if i%10 == s && i%12 == b {
			return i
		}
	}
	return -1
}

// PillarAt returns the pair at position i of the sixty-term cycle
func PillarAt(i int) Pillar {
	i = mod(i, 60)
	return Pillar{Stem: Stems[i%10], Branch: Branches[i%12]}
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
