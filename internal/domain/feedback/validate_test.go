package feedback

import "testing"

func TestValidateCard(t *testing.T) {
	input := CardInput{
		Title:   "Quarterly Review",
		Subject: SubjectTeamMember,
		Questions: []Question{
			{ID: "q1", Kind: KindScore, Prompt: "Quality of work", Weight: 2},
			{ID: "q2", Kind: KindComment, Prompt: "Anything else?"},
		},
	}

	out, errs := ValidateCard(input)
	if errs.Has() {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if len(out.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(out.Questions))
	}
}

func TestValidateCardCollectsFailures(t *testing.T) {
	input := CardInput{
		Title:   "x",
		Subject: "Manager",
		Questions: []Question{
			{ID: "q1", Kind: "rating", Prompt: "Quality", Weight: 1},
			{ID: "q1", Kind: KindScore, Prompt: "Again", Weight: 0},
		},
	}

	_, errs := ValidateCard(input)

	for _, path := range []string{"title", "subject", "questions.0.kind", "questions.1.id", "questions.1.weight"} {
		if errs[path] == "" {
			t.Fatalf("expected error at %q, got %v", path, errs)
		}
	}
}

func TestValidateCardRequiresQuestions(t *testing.T) {
	_, errs := ValidateCard(CardInput{Title: "Empty Card", Subject: SubjectApplicant})
	if errs["questions"] == "" {
		t.Fatalf("expected questions error, got %v", errs)
	}
}

func TestValidateEntry(t *testing.T) {
	card := reviewCard()
	input := EntryInput{
		CardID:     "card-1",
		EmployeeID: "emp-1",
		Answers: []Answer{
			{QuestionID: "q1", Score: 9},
			{QuestionID: "q3", Comment: "keep it up"},
		},
	}

	out, errs := ValidateEntry(input, card)
	if errs.Has() {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if len(out.Answers) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(out.Answers))
	}
}

func TestValidateEntryScoreBounds(t *testing.T) {
	card := reviewCard()

	tests := []struct {
		name  string
		score float64
		valid bool
	}{
		{name: "lower bound", score: 1, valid: true},
		{name: "upper bound", score: 10, valid: true},
		{name: "zero", score: 0, valid: false},
		{name: "eleven", score: 11, valid: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			input := EntryInput{
				CardID:     "card-1",
				EmployeeID: "emp-1",
				Answers:    []Answer{{QuestionID: "q1", Score: tc.score}},
			}
			_, errs := ValidateEntry(input, card)
			if tc.valid && errs.Has() {
				t.Fatalf("expected score %v to pass, got %v", tc.score, errs)
			}
			if !tc.valid && errs["answers.0.score"] == "" {
				t.Fatalf("expected score error for %v, got %v", tc.score, errs)
			}
		})
	}
}

func TestValidateEntryUnknownQuestion(t *testing.T) {
	input := EntryInput{
		CardID:     "card-1",
		EmployeeID: "emp-1",
		Answers:    []Answer{{QuestionID: "q99", Score: 5}},
	}

	_, errs := ValidateEntry(input, reviewCard())
	if errs["answers.0.questionId"] == "" {
		t.Fatalf("expected unknown question error, got %v", errs)
	}
}
