package auth

import (
	"testing"
	"time"
)

func TestSession_Expired(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	s := Session{ID: "s", ExpiresAt: now.Add(time.Minute)}
	if s.Expired(now) {
		t.Fatalf("did not expect session to be expired")
	}
	if !s.Expired(now.Add(time.Minute)) {
		t.Fatalf("expected session to be expired at its expiry instant")
	}
	if !(Session{}).Expired(now) {
		t.Fatalf("expected zero session to be expired")
	}
}
