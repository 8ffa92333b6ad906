package notifications

import (
	"testing"
	"time"
)

func TestHubDeliversToAllSubscribers(t *testing.T) {
	hub := NewHub()

	ch1, cancel1 := hub.Subscribe()
	ch2, cancel2 := hub.Subscribe()
	defer cancel1()
	defer cancel2()

	published := hub.Publish(Notification{Text: "employee added", Kind: KindSuccess})
	if published.ID == "" {
		t.Fatal("expected publish to assign an id")
	}

	for _, ch := range []<-chan Notification{ch1, ch2} {
		select {
		case got := <-ch:
			if got.Text != "employee added" || got.Kind != KindSuccess {
				t.Fatalf("unexpected notification: %+v", got)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for notification")
		}
	}
}

func TestHubDefaultsKindToInfo(t *testing.T) {
	hub := NewHub()
	if got := hub.Publish(Notification{Text: "hello"}); got.Kind != KindInfo {
		t.Fatalf("expected default kind %q, got %q", KindInfo, got.Kind)
	}
}

func TestHubUnsubscribe(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe()
	cancel()
	cancel()

	if _, open := <-ch; open {
		t.Fatal("expected channel closed after unsubscribe")
	}
	if n := hub.SubscriberCount(); n != 0 {
		t.Fatalf("expected 0 subscribers, got %d", n)
	}

	// Publishing with no subscribers must not panic or block.
	hub.Publish(Notification{Text: "nobody listening"})
}

func TestHubSlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub()

	_, cancel := hub.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Publish(Notification{Text: "burst"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}
