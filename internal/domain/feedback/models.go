package feedback

import "time"

// Card is a reusable review template. Questions live on the card as a JSON
// document; entries answer them by question id.
type Card struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"companyId"`
	Title       string     `json:"title"`
	Subject     string     `json:"subject"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Question struct {
	ID     string  `json:"id"`
	Kind   string  `json:"kind"`
	Prompt string  `json:"prompt"`
	Weight float64 `json:"weight"`
}

// Entry is one filled-in card. EmployeeID is a soft reference to the review
// subject: an employee for team-member cards, an applicant for applicant
// cards.
type Entry struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"companyId"`
	CardID     string    `json:"cardId"`
	EmployeeID string    `json:"employeeId"`
	ReviewerID string    `json:"reviewerId,omitempty"`
	Answers    []Answer  `json:"answers"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Answer struct {
	QuestionID string  `json:"questionId"`
	Score      float64 `json:"score,omitempty"`
	Comment    string  `json:"comment,omitempty"`
}

type CardInput struct {
	Title       string     `json:"title"`
	Subject     string     `json:"subject"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

type EntryInput struct {
	CardID     string   `json:"cardId"`
	EmployeeID string   `json:"employeeId"`
	ReviewerID string   `json:"reviewerId"`
	Answers    []Answer `json:"answers"`
	Note       string   `json:"note"`
}

// ScoreSummary is the weighted score view for one entry.
type ScoreSummary struct {
	EntryID       string  `json:"entryId"`
	WeightedScore float64 `json:"weightedScore"`
	Answered      int     `json:"answered"`
	Skipped       int     `json:"skipped"`
}
