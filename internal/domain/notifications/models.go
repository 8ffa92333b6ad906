package notifications

import (
	"context"
	"time"
)

const (
	KindSuccess = "success"
	KindError   = "error"
	KindInfo    = "info"
)

var Kinds = []string{KindSuccess, KindError, KindInfo}

// Notification is one toast-style message. Kind is one of Kinds.
type Notification struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId,omitempty"`
	UserID    string    `json:"userId,omitempty"`
	Text      string    `json:"text"`
	Kind      string    `json:"kind"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}
