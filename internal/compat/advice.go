// internal/compat/advice.go
package compat

var adviceTiers = []struct {
	min  int
	text string
}{
	{85, "An exceptional pairing. Your charts reinforce each other; keep nurturing what already flows easily."},
	{70, "A strong, supportive match. Lean on your shared strengths and talk openly about the few rough edges."},
	{55, "A workable match with real potential. Growth comes from accepting the places where you differ."},
	{0, "A challenging combination. It asks for patience and deliberate effort from both sides."},
}

// Advice picks the fixed advice tier for an overall score
func Advice(overall int) string {
	for _, tier := range adviceTiers {
		if overall >= tier.min {
			return tier.text
		}
	}
	return adviceTiers[len(adviceTiers)-1].text
}

func observations(sa SajuAnalysis, aa *AstrologyAnalysis, b Breakdown) (strengths, challenges []string) {
	strengths, challenges = []string{}, []string{}

	switch {
	case sa.DayMasterHarmony >= 70:
		strengths = append(strengths, "Your day master elements support each other naturally")
	case sa.DayMasterHarmony <= 40:
		challenges = append(challenges, "Your day masters sit in a control relation, so mutual understanding takes work")
	}

	if sa.YinYangBalance == 100 {
		strengths = append(strengths, "Complementary yin-yang polarity balances your energies")
	} else {
		challenges = append(challenges, "Shared yin-yang polarity can amplify the same tendencies in both of you")
	}

	if sa.PillarSynergy >= 50 {
		strengths = append(strengths, "Several pillars share branches, giving a familiar rhythm")
	}

	switch {
	case sa.ElementBalance >= 65:
		strengths = append(strengths, "Each chart fills elements the other is missing")
	case sa.ElementBalance <= 40:
		challenges = append(challenges, "Both charts crowd the same elements, leaving gaps unfilled")
	}

	if aa != nil {
		if v := aa.SunMoonHarmony; v != nil {
			switch {
			case *v >= 80:
				strengths = append(strengths, "Sun and moon placements harmonize emotionally")
			case *v <= 40:
				challenges = append(challenges, "Sun and moon elements clash, so emotional needs may be misread")
			}
		}
		if v := aa.VenusMarsSynergy; v != nil {
			switch {
			case *v >= 80:
				strengths = append(strengths, "Venus and Mars placements spark strong attraction")
			case *v <= 40:
				challenges = append(challenges, "Venus and Mars pull in different directions in romance")
			}
		}
	}

	if b.ElementalHarmony >= 70 {
		strengths = append(strengths, "Saju and astrology elements align across both systems")
	}
	return strengths, challenges
}
