package risk

import "fmt"

// ScoreTier classifies a composite signal score into one of three bands.
// All multiplier lookups key off the tier, not the raw score.
type ScoreTier string

const (
	HiddenGem ScoreTier = "HIDDEN_GEM" // score >= 85
	Mega      ScoreTier = "MEGA"       // 75 <= score < 85
	Ultra     ScoreTier = "ULTRA"      // 65 <= score < 75
)

// MinSignalScore is the floor below which the upstream pipeline should have
// already rejected the signal. The engine re-checks it rather than inventing
// a fourth tier.
const MinSignalScore = 65.0

// tierBounds is evaluated top-down, highest threshold first, so each lower
// bound is inclusive.
var tierBounds = []struct {
	min  float64
	tier ScoreTier
}{
	{85, HiddenGem},
	{75, Mega},
	{65, Ultra},
}

// TierForScore maps a composite score to its tier. Scores outside [0, 100]
// or below MinSignalScore fail with ErrInvalidInput.
func TierForScore(score float64) (ScoreTier, error) {
	if score < 0 || score > 100 {
		return "", fmt.Errorf("%w: score %.2f outside [0, 100]", ErrInvalidInput, score)
	}
	for _, b := range tierBounds {
		if score >= b.min {
			return b.tier, nil
		}
	}
	return "", fmt.Errorf("%w: score %.2f below signal threshold %.0f", ErrInvalidInput, score, MinSignalScore)
}

func (t ScoreTier) String() string { return string(t) }
