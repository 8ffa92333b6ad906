package notificationshandler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bangasho83/hummane/internal/domain/auth"
	"github.com/bangasho83/hummane/internal/domain/notifications"
	"github.com/bangasho83/hummane/internal/transport/http/middleware"
)

type fakeStore struct {
	created int
}

func (s *fakeStore) Create(_ context.Context, companyID, userID, text, kind string) (string, error) {
	s.created++
	return "n-1", nil
}

func (s *fakeStore) List(context.Context, string, string, int, int) ([]notifications.Notification, error) {
	return []notifications.Notification{}, nil
}

func (s *fakeStore) CountUnread(context.Context, string, string) (int, error) { return 0, nil }
func (s *fakeStore) MarkRead(context.Context, string, string) error           { return nil }
func (s *fakeStore) MarkAllRead(context.Context, string, string) error        { return nil }

func newTestRouter(svc *notifications.Service) http.Handler {
	handler := NewHandler(svc)
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := middleware.WithUser(req.Context(), auth.UserContext{
				UserID:    "user-1",
				CompanyID: "company-1",
			})
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	handler.RegisterRoutes(r)
	return r
}

func TestStreamDeliversCompanyScopedEvents(t *testing.T) {
	hub := notifications.NewHub()
	svc := notifications.New(&fakeStore{}, hub, nil)
	router := newTestRouter(svc)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/notifications/stream", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		router.ServeHTTP(rec, req)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for hub.SubscriberCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("stream never subscribed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	hub.Publish(notifications.Notification{CompanyID: "company-1", UserID: "user-1", Text: "for me"})
	hub.Publish(notifications.Notification{CompanyID: "company-2", UserID: "user-1", Text: "other company"})
	hub.Publish(notifications.Notification{CompanyID: "company-1", UserID: "user-9", Text: "other user"})
	hub.Publish(notifications.Notification{CompanyID: "company-1", Text: "broadcast"})

	// Give the handler a moment to drain its channel before closing the
	// stream.
	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	body := rec.Body.String()
	if rec.Header().Get("Content-Type") != "text/event-stream" {
		t.Fatalf("expected event-stream content type, got %q", rec.Header().Get("Content-Type"))
	}
	if !strings.Contains(body, "for me") {
		t.Fatalf("expected addressed event in stream, got %q", body)
	}
	if !strings.Contains(body, "broadcast") {
		t.Fatalf("expected broadcast event in stream, got %q", body)
	}
	if strings.Contains(body, "other company") || strings.Contains(body, "other user") {
		t.Fatalf("expected company and user filtering, got %q", body)
	}
	if !strings.Contains(body, "data: ") {
		t.Fatalf("expected SSE framing, got %q", body)
	}
}

func TestStreamReleasesSubscriberOnDisconnect(t *testing.T) {
	hub := notifications.NewHub()
	svc := notifications.New(&fakeStore{}, hub, nil)
	router := newTestRouter(svc)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/notifications/stream", nil).WithContext(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for hub.SubscriberCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("stream never subscribed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	<-done
	if hub.SubscriberCount() != 0 {
		t.Fatalf("expected unsubscribe on disconnect, got %d subscribers", hub.SubscriberCount())
	}
}
