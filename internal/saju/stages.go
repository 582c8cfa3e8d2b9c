// internal/saju/stages.go
// Twelve life-energy stages (십이운성)

package saju

// Stage is one of the twelve life-energy phases
type Stage string

const (
	StageBirth       Stage = "birth"        // 장생
	StageBathing     Stage = "bathing"      // 목욕
	StageDressing    Stage = "dressing"     // 관대
	StagePrimeOffice Stage = "prime-office" // 건록
	StageEmperor     Stage = "emperor"      // 제왕
	StageDecline     Stage = "decline"      // 쇠
	StageSickness    Stage = "sickness"     // 병
	StageDeath       Stage = "death"        // 사
	StageStorage     Stage = "storage"      // 묘
	StageExtinction  Stage = "extinction"   // 절
	StageGestation   Stage = "gestation"    // 태
	StageNurture     Stage = "nurture"      // 양
)

// Stages in cycle order
var Stages = []Stage{
	StageBirth, StageBathing, StageDressing, StagePrimeOffice,
	StageEmperor, StageDecline, StageSickness, StageDeath,
	StageStorage, StageExtinction, StageGestation, StageNurture,
}

// birthBranch is where each element's cycle begins. Earth shares fire's start.
var birthBranch = map[Element]Branch{
	Wood:  Hae,
	Fire:  In,
	Earth: In,
	Metal: Sa,
	Water: Shin,
}

// stageTable is built once from birthBranch
var stageTable = buildStageTable()

func buildStageTable() map[Element][12]Stage {
	table := make(map[Element][12]Stage, len(Elements))
	for _, e := range Elements {
		var row [12]Stage
		start := birthBranch[e].Index()
		for i := range Stages {
			row[mod(start+i, 12)] = Stages[i]
		}
		table[e] = row
	}
	return table
}

// TwelveStage returns the life-energy stage of element e at branch b
func TwelveStage(e Element, b Branch) (Stage, bool) {
	row, ok := stageTable[e]
	if !ok || b.Index() < 0 {
		return "", false
	}
	return row[b.Index()], true
}

// Index returns the stage's position in the cycle, or -1
func (s Stage) Index() int {
	for i, st := range Stages {
		if st == s {
			return i
		}
	}
	return -1
}

// PillarStages returns the day master's stage at each of the four branches.
// Unresolvable branches are left empty.
func PillarStages(p Profile) [4]Stage {
	var out [4]Stage
	for i, pl := range p.Pillars.All() {
		if st, ok := TwelveStage(p.DayMaster.Element, pl.Branch); ok {
			out[i] = st
		}
	}
	return out
}
