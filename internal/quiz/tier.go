package quiz

import "fmt"

// Tier is the display bucket for a completed quiz.
type Tier int

const (
	TierKeepLearning Tier = iota
	TierGood
	TierExcellent
)

// Accuracy thresholds, both inclusive.
const (
	ExcellentThreshold = 0.8
	GoodThreshold      = 0.6
)

// TierFor maps an accuracy in [0, 1] to a tier.
func TierFor(accuracy float64) Tier {
	switch {
	case accuracy >= ExcellentThreshold:
		return TierExcellent
	case accuracy >= GoodThreshold:
		return TierGood
	default:
		return TierKeepLearning
	}
}

func (t Tier) String() string {
	switch t {
	case TierExcellent:
		return "excellent"
	case TierGood:
		return "good"
	default:
		return "keep-learning"
	}
}

// ParseTier is the inverse of Tier.String.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "excellent":
		return TierExcellent, nil
	case "good":
		return TierGood, nil
	case "keep-learning":
		return TierKeepLearning, nil
	}
	return TierKeepLearning, fmt.Errorf("unknown tier %q", s)
}

// Emoji returns the badge shown with the tier.
func (t Tier) Emoji() string {
	switch t {
	case TierExcellent:
		return "🌟"
	case TierGood:
		return "👍"
	default:
		return "📚"
	}
}

// Message returns the encouragement line for topic.
func (t Tier) Message(topic string) string {
	switch t {
	case TierExcellent:
		return fmt.Sprintf("Excellent! You've mastered %s concepts!", topic)
	case TierGood:
		return fmt.Sprintf("Good work! Keep studying %s!", topic)
	default:
		return fmt.Sprintf("Keep learning - %s is fascinating!", topic)
	}
}
