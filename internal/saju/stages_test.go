package saju

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwelveStageStartingBranches(t *testing.T) {
	tests := []struct {
		element Element
		birth   Branch
		prime   Branch
	}{
		{Wood, Hae, In},
		{Fire, In, Sa},
		{Earth, In, Sa},
		{Metal, Sa, Shin},
		{Water, Shin, Hae},
	}
	for _, tt := range tests {
		t.Run(string(tt.element), func(t *testing.T) {
			st, ok := TwelveStage(tt.element, tt.birth)
			require.True(t, ok)
			assert.Equal(t, StageBirth, st)

			st, ok = TwelveStage(tt.element, tt.prime)
			require.True(t, ok)
			assert.Equal(t, StagePrimeOffice, st)
		})
	}
}

func TestTwelveStageIsPeriodic(t *testing.T) {
	for _, e := range Elements {
		seen := map[Stage]bool{}
		for _, b := range Branches {
			st, ok := TwelveStage(e, b)
			require.True(t, ok)
			seen[st] = true

			again, _ := TwelveStage(e, b.Offset(12))
			assert.Equal(t, st, again)

			next, _ := TwelveStage(e, b.Offset(1))
			assert.Equal(t, Stages[(st.Index()+1)%12], next, "%s at %s", e, b)
		}
		assert.Len(t, seen, 12, "every stage appears once for %s", e)
	}
}

func TestTwelveStageUnknownInput(t *testing.T) {
	_, ok := TwelveStage("aether", Ja)
	assert.False(t, ok)
	_, ok = TwelveStage(Wood, "x")
	assert.False(t, ok)
}

func TestPillarStages(t *testing.T) {
	p := newProfile(t, "甲子", "丙寅", "甲辰", "庚午", ElementCounts{})
	stages := PillarStages(p)
	// wood: 亥 birth, so 子 bathing, 寅 prime-office, 辰 decline, 午 death
	assert.Equal(t, [4]Stage{StageBathing, StagePrimeOffice, StageDecline, StageDeath}, stages)
}
