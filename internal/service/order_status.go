package service

import (
	"strings"

	"github.com/seaside-kitchen/storefront/internal/constants"
)

// allowedTransitions encodes the order lifecycle: one step forward at a
// time, cancel allowed from any non-terminal status.
var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusConfirmed: true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusConfirmed: {
		constants.OrderStatusPreparing: true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusPreparing: {
		constants.OrderStatusOutForDelivery: true,
		constants.OrderStatusCancelled:      true,
	},
	constants.OrderStatusOutForDelivery: {
		constants.OrderStatusDelivered: true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusDelivered: {},
	constants.OrderStatusCancelled: {},
}

// IsValidStatus reports whether status is a known order status.
func IsValidStatus(status string) bool {
	_, ok := allowedTransitions[status]
	return ok
}

// IsTerminalStatus reports whether no further transition exists.
func IsTerminalStatus(status string) bool {
	nexts, ok := allowedTransitions[status]
	return ok && len(nexts) == 0
}

// CanTransition reports whether from→to is a legal transition.
func CanTransition(from, to string) bool {
	nexts, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return nexts[to]
}

// NextStatuses returns the legal targets for a status, in lifecycle order.
func NextStatuses(from string) []string {
	nexts, ok := allowedTransitions[from]
	if !ok || len(nexts) == 0 {
		return nil
	}
	out := make([]string, 0, len(nexts))
	for _, status := range constants.OrderStatuses {
		if nexts[status] {
			out = append(out, status)
		}
	}
	return out
}

// FormatStatus renders a status code for display: underscores become
// spaces and each word is title-cased, so "out_for_delivery" reads
// "Out For Delivery".
func FormatStatus(status string) string {
	words := strings.Split(status, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
