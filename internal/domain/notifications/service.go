package notifications

import (
	"context"
	"log/slog"
)

type Service struct {
	store       StoreAPI
	hub         *Hub
	Mailer      Mailer
	DefaultFrom string
}

func New(store StoreAPI, hub *Hub, mailer Mailer) *Service {
	return &Service{store: store, hub: hub, Mailer: mailer, DefaultFrom: "no-reply@hummane.app"}
}

// Notify persists the notification, broadcasts it to live subscribers, and
// optionally emails the recipient. Email delivery failures are logged and
// never fail the notify call.
func (s *Service) Notify(ctx context.Context, companyID, userID, text, kind, email string) (Notification, error) {
	if kind == "" {
		kind = KindInfo
	}

	id, err := s.store.Create(ctx, companyID, userID, text, kind)
	if err != nil {
		return Notification{}, err
	}

	n := s.hub.Publish(Notification{
		ID:        id,
		CompanyID: companyID,
		UserID:    userID,
		Text:      text,
		Kind:      kind,
	})

	if s.Mailer != nil && email != "" {
		if err := s.Mailer.Send(ctx, s.DefaultFrom, email, "Notification", text); err != nil {
			slog.Warn("notification email send failed", "err", err)
		}
	}
	return n, nil
}

func (s *Service) List(ctx context.Context, companyID, userID string, limit, offset int) ([]Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.List(ctx, companyID, userID, limit, offset)
}

func (s *Service) UnreadCount(ctx context.Context, companyID, userID string) (int, error) {
	return s.store.CountUnread(ctx, companyID, userID)
}

func (s *Service) MarkRead(ctx context.Context, companyID, id string) error {
	return s.store.MarkRead(ctx, companyID, id)
}

func (s *Service) MarkAllRead(ctx context.Context, companyID, userID string) error {
	return s.store.MarkAllRead(ctx, companyID, userID)
}

// Subscribe exposes the hub for transports that stream live notifications.
func (s *Service) Subscribe() (<-chan Notification, func()) {
	return s.hub.Subscribe()
}
