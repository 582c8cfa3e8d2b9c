// internal/saju/relations.go
// Relations among the four pillar branches

package saju

// BranchRelation is a classical interaction between earthly branches
type BranchRelation string

const (
	RelSamhap  BranchRelation = "samhap"  // 삼합 triad
	RelYukhap  BranchRelation = "yukhap"  // 육합 six harmony
	RelBanghap BranchRelation = "banghap" // 방합 directional
	RelChung   BranchRelation = "chung"   // 충 clash
	RelHyeong  BranchRelation = "hyeong"  // 형 punishment
	RelPa      BranchRelation = "pa"      // 파 break
	RelHae     BranchRelation = "hae"     // 해 harm
)

// BranchRelations in table order
var BranchRelations = []BranchRelation{RelSamhap, RelYukhap, RelBanghap, RelChung, RelHyeong, RelPa, RelHae}

type branchPair [2]Branch

var yukhapPairs = []branchPair{{Ja, Chuk}, {In, Hae}, {Myo, Sul}, {Jin, Yu}, {Sa, Shin}, {O, Mi}}
var chungPairs = []branchPair{{Ja, O}, {Chuk, Mi}, {In, Shin}, {Myo, Yu}, {Jin, Sul}, {Sa, Hae}}
var paPairs = []branchPair{{Ja, Yu}, {Chuk, Jin}, {In, Hae}, {Myo, O}, {Sa, Shin}, {Mi, Sul}}
var haePairs = []branchPair{{Ja, Mi}, {Chuk, O}, {In, Sa}, {Myo, Jin}, {Shin, Hae}, {Yu, Sul}}

var samhapGroups = [][3]Branch{{Shin, Ja, Jin}, {Hae, Myo, Mi}, {In, O, Sul}, {Sa, Yu, Chuk}}
var banghapGroups = [][3]Branch{{In, Myo, Jin}, {Sa, O, Mi}, {Shin, Yu, Sul}, {Hae, Ja, Chuk}}

// punishment sets: a full triad, or the paired 子卯
var hyeongGroups = [][]Branch{{In, Sa, Shin}, {Chuk, Sul, Mi}, {Ja, Myo}}

// self punishment needs the branch twice
var selfHyeong = []Branch{Jin, O, Yu, Hae}

// DetectRelations finds every relation present among the given branches.
// The result follows BranchRelations order with no duplicates.
func DetectRelations(branches []Branch) []BranchRelation {
	counts := make(map[Branch]int, len(branches))
	for _, b := range branches {
		if b.Index() >= 0 {
			counts[b]++
		}
	}
	has := func(b Branch) bool { return counts[b] > 0 }
	pairHit := func(pairs []branchPair) bool {
		for _, p := range pairs {
			if has(p[0]) && has(p[1]) {
				return true
			}
		}
		return false
	}
	groupHit := func(groups [][3]Branch) bool {
		for _, g := range groups {
			if has(g[0]) && has(g[1]) && has(g[2]) {
				return true
			}
		}
		return false
	}

	found := map[BranchRelation]bool{
		RelSamhap:  groupHit(samhapGroups),
		RelYukhap:  pairHit(yukhapPairs),
		RelBanghap: groupHit(banghapGroups),
		RelChung:   pairHit(chungPairs),
		RelPa:      pairHit(paPairs),
		RelHae:     pairHit(haePairs),
	}
	for _, g := range hyeongGroups {
		all := true
		for _, b := range g {
			all = all && has(b)
		}
		if all {
			found[RelHyeong] = true
		}
	}
	for _, b := range selfHyeong {
		if counts[b] >= 2 {
			found[RelHyeong] = true
		}
	}

	var out []BranchRelation
	for _, r := range BranchRelations {
		if found[r] {
			out = append(out, r)
		}
	}
	return out
}

// ResolvedRelations prefers the caller's relation list and detects one from the pillars otherwise
func ResolvedRelations(p Profile) []BranchRelation {
	if len(p.Relations) > 0 {
		return p.Relations
	}
	all := p.Pillars.All()
	branches := make([]Branch, 0, len(all))
	for _, pl := range all {
		branches = append(branches, pl.Branch)
	}
	return DetectRelations(branches)
}
