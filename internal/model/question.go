package model

// Tier identifies a difficulty tier in the question corpus.
type Tier string

// Difficulty tiers, in corpus order.
const (
	TierPreliminary   Tier = "preliminary"
	TierQuarterfinals Tier = "quarterfinals"
	TierSemifinals    Tier = "semifinals"
	TierFinals        Tier = "finals"
)

// Tiers lists the difficulty tiers in the order they appear in the corpus
// file. Iteration order matters: dedupe keeps the first occurrence across
// tiers, and the classifier processes tiers in this order.
var Tiers = []Tier{TierPreliminary, TierQuarterfinals, TierSemifinals, TierFinals}

// ValidTier reports whether t is one of the known difficulty tiers.
func ValidTier(t Tier) bool {
	for _, known := range Tiers {
		if t == known {
			return true
		}
	}
	return false
}

// Question is a single quiz-bee question as produced by the extraction step.
// Questions are immutable during classification; only the editor endpoint
// rewrites them.
type Question struct {
	Number   int    `json:"number"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	ID       string `json:"id"`
}

// CombinedText returns the question and answer joined with a space, the text
// blob every dimension is matched against.
func (q Question) CombinedText() string {
	return q.Question + " " + q.Answer
}
