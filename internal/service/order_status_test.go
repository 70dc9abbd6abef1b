package service

import (
	"testing"

	"github.com/seaside-kitchen/storefront/internal/constants"
)

func TestCanTransitionAdjacentStepsOnly(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{constants.OrderStatusPending, constants.OrderStatusConfirmed, true},
		{constants.OrderStatusPending, constants.OrderStatusPreparing, false},
		{constants.OrderStatusPending, constants.OrderStatusDelivered, false},
		{constants.OrderStatusConfirmed, constants.OrderStatusPreparing, true},
		{constants.OrderStatusConfirmed, constants.OrderStatusPending, false},
		{constants.OrderStatusPreparing, constants.OrderStatusOutForDelivery, true},
		{constants.OrderStatusOutForDelivery, constants.OrderStatusDelivered, true},
		{constants.OrderStatusOutForDelivery, constants.OrderStatusConfirmed, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.allowed {
			t.Fatalf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestCanTransitionCancelFromAnyNonTerminal(t *testing.T) {
	for _, from := range []string{
		constants.OrderStatusPending,
		constants.OrderStatusConfirmed,
		constants.OrderStatusPreparing,
		constants.OrderStatusOutForDelivery,
	} {
		if !CanTransition(from, constants.OrderStatusCancelled) {
			t.Fatalf("expected cancel allowed from %s", from)
		}
	}
}

func TestTerminalStatusesHaveNoExit(t *testing.T) {
	for _, terminal := range []string{constants.OrderStatusDelivered, constants.OrderStatusCancelled} {
		if !IsTerminalStatus(terminal) {
			t.Fatalf("expected %s to be terminal", terminal)
		}
		for _, to := range constants.OrderStatuses {
			if CanTransition(terminal, to) {
				t.Fatalf("unexpected transition %s -> %s", terminal, to)
			}
		}
		if nexts := NextStatuses(terminal); nexts != nil {
			t.Fatalf("expected no next statuses for %s, got %v", terminal, nexts)
		}
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	if CanTransition("shipped", constants.OrderStatusDelivered) {
		t.Fatal("unknown source status must not transition")
	}
	if CanTransition(constants.OrderStatusPending, "shipped") {
		t.Fatal("unknown target status must not transition")
	}
	if IsValidStatus("shipped") {
		t.Fatal("shipped is not a valid status")
	}
}

func TestNextStatusesLifecycleOrder(t *testing.T) {
	nexts := NextStatuses(constants.OrderStatusPending)
	if len(nexts) != 2 || nexts[0] != constants.OrderStatusConfirmed || nexts[1] != constants.OrderStatusCancelled {
		t.Fatalf("unexpected next statuses for pending: %v", nexts)
	}
}

func TestFormatStatus(t *testing.T) {
	cases := map[string]string{
		constants.OrderStatusPending:        "Pending",
		constants.OrderStatusOutForDelivery: "Out For Delivery",
		constants.OrderStatusCancelled:      "Cancelled",
	}
	for status, want := range cases {
		if got := FormatStatus(status); got != want {
			t.Fatalf("FormatStatus(%s) = %q, want %q", status, got, want)
		}
	}
}
