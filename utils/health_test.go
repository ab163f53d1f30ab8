package utils

import (
	"testing"
	"time"
)

func TestHealthStatusSnapshot(t *testing.T) {
	if got := GetHealthStatus(); got.Mongo || got.Redis || !got.CheckedAt.IsZero() {
		t.Fatalf("expected zero snapshot before any check, got %+v", got)
	}

	checked := time.Now()
	setHealth(HealthStatus{Mongo: true, Redis: false, CheckedAt: checked})

	got := GetHealthStatus()
	if !got.Mongo || got.Redis {
		t.Fatalf("snapshot not stored: %+v", got)
	}
	if !got.CheckedAt.Equal(checked) {
		t.Fatalf("expected CheckedAt %v, got %v", checked, got.CheckedAt)
	}
}
