package monitor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/seaside-kitchen/storefront/internal/config"
	"github.com/seaside-kitchen/storefront/internal/logger"
	"github.com/seaside-kitchen/storefront/internal/models"
)

const defaultInterval = 15 * time.Second

// FetchFunc loads the current in-flight orders.
type FetchFunc func(ctx context.Context) ([]models.Order, error)

// Snapshot is one point-in-time view of the live order board. LastError
// carries the most recent fetch failure and is empty while the board is
// healthy; the orders themselves are always from the last successful fetch.
type Snapshot struct {
	Orders      []models.Order `json:"orders"`
	LastFetched time.Time      `json:"last_fetched"`
	LastAttempt time.Time      `json:"last_attempt"`
	NextFetch   time.Time      `json:"next_fetch"`
	LastError   string         `json:"last_error,omitempty"`
}

// OrderMonitor polls the order store on a fixed interval and keeps the
// latest successful result. Reads never block on a fetch in progress; a
// failed fetch keeps the previous orders and records the error.
type OrderMonitor struct {
	name     string
	interval time.Duration
	fetch    FetchFunc

	mu       sync.RWMutex
	snapshot Snapshot
}

// NewOrderMonitor creates an order monitor.
func NewOrderMonitor(cfg *config.MonitorConfig, fetch FetchFunc) *OrderMonitor {
	interval := defaultInterval
	if cfg != nil && cfg.IntervalSeconds > 0 {
		interval = time.Duration(cfg.IntervalSeconds) * time.Second
	}
	return &OrderMonitor{
		name:     "order-monitor",
		interval: interval,
		fetch:    fetch,
	}
}

// Name is the service name.
func (m *OrderMonitor) Name() string {
	if m == nil || m.name == "" {
		return "order-monitor"
	}
	return m.name
}

// Start fetches once immediately, then on every interval tick until the
// context ends.
func (m *OrderMonitor) Start(ctx context.Context) error {
	if m == nil || m.fetch == nil {
		return errors.New("order monitor not initialized")
	}
	m.refresh(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.refresh(ctx)
		}
	}
}

// Stop satisfies the service interface; the polling loop exits with the
// context passed to Start.
func (m *OrderMonitor) Stop(ctx context.Context) error {
	return nil
}

// Snapshot returns the latest successful fetch result.
func (m *OrderMonitor) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := Snapshot{
		Orders:      make([]models.Order, len(m.snapshot.Orders)),
		LastFetched: m.snapshot.LastFetched,
		LastAttempt: m.snapshot.LastAttempt,
		NextFetch:   m.snapshot.NextFetch,
		LastError:   m.snapshot.LastError,
	}
	copy(out.Orders, m.snapshot.Orders)
	return out
}

// Refresh forces a fetch outside the tick schedule.
func (m *OrderMonitor) Refresh(ctx context.Context) error {
	return m.refresh(ctx)
}

func (m *OrderMonitor) refresh(ctx context.Context) error {
	orders, err := m.fetch(ctx)
	now := time.Now()
	if err != nil {
		logger.Warnw("order_monitor_fetch_failed", "error", err)
		m.mu.Lock()
		m.snapshot.LastAttempt = now
		m.snapshot.NextFetch = now.Add(m.interval)
		m.snapshot.LastError = err.Error()
		m.mu.Unlock()
		return err
	}

	m.mu.Lock()
	m.snapshot = Snapshot{
		Orders:      orders,
		LastFetched: now,
		LastAttempt: now,
		NextFetch:   now.Add(m.interval),
	}
	m.mu.Unlock()
	return nil
}
