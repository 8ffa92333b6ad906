package feedback

import "testing"

func reviewCard() Card {
	return Card{
		ID: "card-1",
		Questions: []Question{
			{ID: "q1", Kind: KindScore, Prompt: "Quality of work", Weight: 2},
			{ID: "q2", Kind: KindScore, Prompt: "Collaboration", Weight: 1},
			{ID: "q3", Kind: KindComment, Prompt: "Anything else?"},
		},
	}
}

func TestWeightedScore(t *testing.T) {
	entry := Entry{
		ID: "entry-1",
		Answers: []Answer{
			{QuestionID: "q1", Score: 8},
			{QuestionID: "q2", Score: 5},
			{QuestionID: "q3", Comment: "solid quarter"},
		},
	}

	summary := WeightedScore(reviewCard(), entry)

	// (8*2 + 5*1) / 3 = 7
	if summary.WeightedScore != 7 {
		t.Fatalf("expected weighted score 7, got %v", summary.WeightedScore)
	}
	if summary.Answered != 2 || summary.Skipped != 0 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
}

func TestWeightedScoreSkipsUnanswered(t *testing.T) {
	entry := Entry{
		ID:      "entry-2",
		Answers: []Answer{{QuestionID: "q1", Score: 6}},
	}

	summary := WeightedScore(reviewCard(), entry)

	if summary.WeightedScore != 6 {
		t.Fatalf("expected 6, got %v", summary.WeightedScore)
	}
	if summary.Answered != 1 || summary.Skipped != 1 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
}

func TestWeightedScoreNoScoreQuestions(t *testing.T) {
	card := Card{Questions: []Question{{ID: "q1", Kind: KindComment, Prompt: "Notes"}}}
	entry := Entry{Answers: []Answer{{QuestionID: "q1", Comment: "fine"}}}

	summary := WeightedScore(card, entry)
	if summary.WeightedScore != 0 || summary.Answered != 0 || summary.Skipped != 0 {
		t.Fatalf("expected zero summary, got %+v", summary)
	}
}

func TestWeightedScoreRounds(t *testing.T) {
	card := Card{Questions: []Question{
		{ID: "q1", Kind: KindScore, Weight: 1},
		{ID: "q2", Kind: KindScore, Weight: 2},
	}}
	entry := Entry{Answers: []Answer{
		{QuestionID: "q1", Score: 7},
		{QuestionID: "q2", Score: 8},
	}}

	summary := WeightedScore(card, entry)

	// (7 + 16) / 3 = 7.666..., rounded to two decimals
	if summary.WeightedScore != 7.67 {
		t.Fatalf("expected 7.67, got %v", summary.WeightedScore)
	}
}
