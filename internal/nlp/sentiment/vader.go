package sentiment

import (
	"math"
	"regexp"
	"strings"
)

// polarityScores computes VADER-style polarity measures for text.
// Each lexicon hit contributes its valence, adjusted by booster words and
// flipped (and damped) by negations in the three preceding tokens; the
// compound score normalizes the valence sum into [-1, 1].
func polarityScores(text string) (pos, neu, neg, compound float64) {
	tokens := wordRe.FindAllString(strings.ToLower(text), -1)
	if len(tokens) == 0 {
		return 0, 0, 0, 0
	}

	valences := make([]float64, 0, len(tokens))
	for i, tok := range tokens {
		valence, ok := lexicon[tok]
		if !ok {
			valences = append(valences, 0)
			continue
		}
		for back := 1; back <= negationWindow && i-back >= 0; back++ {
			prev := tokens[i-back]
			if boost, ok := boosters[prev]; ok {
				if valence > 0 {
					valence += boost
				} else {
					valence -= boost
				}
			}
			if negations[prev] {
				valence = -valence * negationDamp
			}
		}
		valences = append(valences, valence)
	}

	var sum, posSum, negSum float64
	neuCount := 0.0
	for _, v := range valences {
		sum += v
		switch {
		case v > 0:
			posSum += v + 1
		case v < 0:
			negSum += -v + 1
		default:
			neuCount++
		}
	}

	compound = sum / math.Sqrt(sum*sum+compoundAlpha)
	total := posSum + negSum + neuCount
	if total > 0 {
		pos = posSum / total
		neg = negSum / total
		neu = neuCount / total
	}
	return pos, neu, neg, compound
}

const (
	// compoundAlpha is the VADER normalization constant.
	compoundAlpha  = 15.0
	negationWindow = 3
	negationDamp   = 0.74
	boosterStep    = 0.293
)

var wordRe = regexp.MustCompile(`[a-z']+`)

var boosters = map[string]float64{
	"very":       boosterStep,
	"really":     boosterStep,
	"extremely":  boosterStep,
	"absolutely": boosterStep,
	"incredibly": boosterStep,
	"totally":    boosterStep,
	"so":         boosterStep,
	"quite":      boosterStep * 0.5,
	"slightly":   -boosterStep,
	"somewhat":   -boosterStep * 0.5,
	"barely":     -boosterStep,
}

var negations = map[string]bool{
	"not": true, "no": true, "never": true, "nothing": true,
	"nobody": true, "neither": true, "without": true, "don't": true,
	"doesn't": true, "didn't": true, "can't": true, "cannot": true,
	"won't": true, "isn't": true, "aren't": true, "wasn't": true,
	"weren't": true, "shouldn't": true, "couldn't": true, "wouldn't": true,
}
