package feedback

import "math"

// WeightedScore computes an entry's score as the weight-normalized mean of
// its answered score questions. Comment questions never contribute. Score
// questions without an answer count as skipped and carry no weight.
func WeightedScore(card Card, entry Entry) ScoreSummary {
	answered := make(map[string]float64, len(entry.Answers))
	for _, answer := range entry.Answers {
		answered[answer.QuestionID] = answer.Score
	}

	summary := ScoreSummary{EntryID: entry.ID}

	var weightedSum, weightSum float64
	for _, question := range card.Questions {
		if question.Kind != KindScore {
			continue
		}
		score, ok := answered[question.ID]
		if !ok {
			summary.Skipped++
			continue
		}
		summary.Answered++
		weightedSum += score * question.Weight
		weightSum += question.Weight
	}

	if weightSum > 0 {
		summary.WeightedScore = math.Round(weightedSum/weightSum*100) / 100
	}
	return summary
}
