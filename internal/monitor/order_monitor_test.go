package monitor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/seaside-kitchen/storefront/internal/config"
	"github.com/seaside-kitchen/storefront/internal/models"
)

func TestMonitorFetchesImmediatelyOnStart(t *testing.T) {
	var calls atomic.Int32
	m := NewOrderMonitor(&config.MonitorConfig{IntervalSeconds: 3600}, func(ctx context.Context) ([]models.Order, error) {
		calls.Add(1)
		return []models.Order{{ID: 1, Status: "pending"}}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Start(ctx) }()

	deadline := time.After(2 * time.Second)
	for calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("monitor never fetched")
		case <-time.After(10 * time.Millisecond):
		}
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("start returned error: %v", err)
	}

	snap := m.Snapshot()
	if len(snap.Orders) != 1 || snap.Orders[0].ID != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap.Orders)
	}
	if snap.LastFetched.IsZero() {
		t.Fatal("last fetched not recorded")
	}
	if !snap.NextFetch.After(snap.LastFetched) {
		t.Fatal("next fetch must be after last fetch")
	}
}

func TestMonitorKeepsLastGoodSnapshotOnFailure(t *testing.T) {
	var calls atomic.Int32
	m := NewOrderMonitor(&config.MonitorConfig{IntervalSeconds: 1}, func(ctx context.Context) ([]models.Order, error) {
		if calls.Add(1) == 2 {
			return nil, errors.New("db gone")
		}
		return []models.Order{{ID: 42, Status: "preparing"}}, nil
	})

	ctx := context.Background()
	if err := m.Refresh(ctx); err != nil {
		t.Fatalf("first refresh failed: %v", err)
	}
	good := m.Snapshot()
	if err := m.Refresh(ctx); err == nil {
		t.Fatal("expected refresh error")
	}

	snap := m.Snapshot()
	if len(snap.Orders) != 1 || snap.Orders[0].ID != 42 {
		t.Fatalf("failed fetch must keep the last good orders, got %+v", snap.Orders)
	}
	if snap.LastError == "" {
		t.Fatal("failed fetch must surface an error indicator")
	}
	if !snap.LastFetched.Equal(good.LastFetched) {
		t.Fatal("failure must not move last_fetched")
	}
	if snap.LastAttempt.Before(snap.LastFetched) {
		t.Fatal("failed attempt must still be recorded")
	}
	if !snap.NextFetch.After(good.NextFetch) && !snap.NextFetch.Equal(good.NextFetch) {
		t.Fatal("failure must keep the next fetch scheduled")
	}

	// The indicator clears as soon as a fetch succeeds again.
	if err := m.Refresh(ctx); err != nil {
		t.Fatalf("recovery refresh failed: %v", err)
	}
	if snap = m.Snapshot(); snap.LastError != "" {
		t.Fatalf("recovered board must clear the error, got %q", snap.LastError)
	}
}

func TestMonitorLastFetchWins(t *testing.T) {
	var calls atomic.Int32
	m := NewOrderMonitor(nil, func(ctx context.Context) ([]models.Order, error) {
		n := calls.Add(1)
		return []models.Order{{ID: uint(n)}}, nil
	})

	ctx := context.Background()
	if err := m.Refresh(ctx); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if err := m.Refresh(ctx); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	snap := m.Snapshot()
	if len(snap.Orders) != 1 || snap.Orders[0].ID != 2 {
		t.Fatalf("expected latest result to win, got %+v", snap.Orders)
	}
}

func TestMonitorSnapshotIsACopy(t *testing.T) {
	m := NewOrderMonitor(nil, func(ctx context.Context) ([]models.Order, error) {
		return []models.Order{{ID: 1, Status: "pending"}}, nil
	})
	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	first := m.Snapshot()
	first.Orders[0].Status = "mutated"

	second := m.Snapshot()
	if second.Orders[0].Status != "pending" {
		t.Fatal("snapshot must not share backing storage with callers")
	}
}
