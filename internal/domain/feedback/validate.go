package feedback

import (
	"strconv"
	"strings"

	"github.com/bangasho83/hummane/internal/validate"
)

const (
	KindScore   = "score"
	KindComment = "comment"

	SubjectTeamMember = "Team Member"
	SubjectApplicant  = "Applicant"

	minScore = 1
	maxScore = 10
)

var (
	QuestionKinds = []string{KindScore, KindComment}
	Subjects      = []string{SubjectTeamMember, SubjectApplicant}
)

func ValidateCard(input CardInput) (CardInput, validate.Errors) {
	c := validate.NewChecker()

	out := CardInput{
		Title:       c.String("title", input.Title, 2, 120),
		Subject:     c.Enum("subject", input.Subject, Subjects, true),
		Description: c.String("description", input.Description, 0, 2000),
	}

	if len(input.Questions) == 0 {
		c.Add("questions", "must contain at least one question")
		return out, c.Errors()
	}

	seen := make(map[string]bool, len(input.Questions))
	out.Questions = make([]Question, 0, len(input.Questions))
	for i, q := range input.Questions {
		prefix := validate.Join("questions", strconv.Itoa(i))

		question := Question{
			ID:     c.Token(validate.Join(prefix, "id"), q.ID, 40),
			Kind:   c.Enum(validate.Join(prefix, "kind"), q.Kind, QuestionKinds, true),
			Prompt: c.String(validate.Join(prefix, "prompt"), q.Prompt, 2, 500),
			Weight: q.Weight,
		}
		if question.Kind == KindScore {
			question.Weight = c.Positive(validate.Join(prefix, "weight"), q.Weight, 100)
		}
		if question.ID != "" {
			if seen[question.ID] {
				c.Add(validate.Join(prefix, "id"), "must be unique within the card")
			}
			seen[question.ID] = true
		}
		out.Questions = append(out.Questions, question)
	}

	return out, c.Errors()
}

// ValidateEntry checks an entry against the card it answers. Every answer
// must reference a question on the card, and score answers must fall in the
// 1 to 10 band.
func ValidateEntry(input EntryInput, card Card) (EntryInput, validate.Errors) {
	c := validate.NewChecker()

	out := EntryInput{
		CardID:     c.String("cardId", input.CardID, 1, 64),
		EmployeeID: c.String("employeeId", input.EmployeeID, 1, 64),
		ReviewerID: c.String("reviewerId", input.ReviewerID, 0, 64),
		Note:       c.String("note", input.Note, 0, 5000),
	}

	questions := make(map[string]Question, len(card.Questions))
	for _, q := range card.Questions {
		questions[q.ID] = q
	}

	out.Answers = make([]Answer, 0, len(input.Answers))
	for i, answer := range input.Answers {
		prefix := validate.Join("answers", strconv.Itoa(i))

		questionID := strings.TrimSpace(answer.QuestionID)
		question, known := questions[questionID]
		if !known {
			c.Add(validate.Join(prefix, "questionId"), "must reference a question on the card")
			continue
		}

		normalized := Answer{QuestionID: questionID}
		switch question.Kind {
		case KindScore:
			normalized.Score = c.Number(validate.Join(prefix, "score"), answer.Score, minScore, maxScore)
		case KindComment:
			normalized.Comment = c.String(validate.Join(prefix, "comment"), answer.Comment, 1, 5000)
		}
		out.Answers = append(out.Answers, normalized)
	}

	return out, c.Errors()
}
