package entities

import (
	"sort"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
)

// PaymentStatus represents payment request status
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusExpired   PaymentStatus = "EXPIRED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
	// PaymentStatusSubmitted is a local sub-state: a settlement write was
	// submitted and confirmed but the mirror has not observed the on-chain
	// transition yet. Never read from or written to the chain.
	PaymentStatusSubmitted PaymentStatus = "SUBMITTED"
)

// ZeroAddress is the zero-address sentinel meaning "unpaid" in the customer slot.
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// chainStatusLabels maps the gateway's status enum ordinals.
var chainStatusLabels = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusCompleted,
	PaymentStatusFailed,
	PaymentStatusExpired,
	PaymentStatusRefunded,
}

// StatusFromChain converts the gateway's uint8 status ordinal
func StatusFromChain(ordinal uint8) PaymentStatus {
	if int(ordinal) < len(chainStatusLabels) {
		return chainStatusLabels[ordinal]
	}
	return PaymentStatusFailed
}

// PaymentRecord is a read-only mirror of an on-chain payment request.
// Amounts are decimal strings in the smallest unit; AmountUSD carries
// 8 implied decimals.
type PaymentRecord struct {
	ID        string        `json:"id"`
	Merchant  string        `json:"merchant"`
	Customer  null.String   `json:"customer,omitempty"`
	Token     string        `json:"token"`
	Amount    string        `json:"amount"`
	AmountUSD string        `json:"amountUsd"`
	Status    PaymentStatus `json:"status"`
	ExpiresAt int64         `json:"expiresAt"`
}

// IsZero reports whether the record is the gateway's empty sentinel,
// i.e. the identifier resolved to nothing.
func (r *PaymentRecord) IsZero() bool {
	return r == nil || r.Merchant == "" || strings.EqualFold(r.Merchant, ZeroAddress)
}

// DeriveDisplayStatus combines the on-chain status with the local clock.
// A Pending record past its expiry is displayed as Expired; the derived
// state is display-only and never fed back on-chain. Statuses other than
// Pending are returned untouched.
func DeriveDisplayStatus(r *PaymentRecord, now time.Time) PaymentStatus {
	if r == nil {
		return PaymentStatusFailed
	}
	if r.Status == PaymentStatusPending && r.ExpiresAt < now.Unix() {
		return PaymentStatusExpired
	}
	return r.Status
}

// statusPriority orders actionable/urgent items first.
var statusPriority = map[PaymentStatus]int{
	PaymentStatusPending:   0,
	PaymentStatusFailed:    1,
	PaymentStatusExpired:   2,
	PaymentStatusRefunded:  3,
	PaymentStatusCompleted: 4,
}

// SortByUrgency sorts records by display-status priority
// (Pending < Failed < Expired < Refunded < Completed), ties broken by
// descending expiry timestamp so newer links surface first.
func SortByUrgency(records []*PaymentRecord, now time.Time) {
	sort.SliceStable(records, func(i, j int) bool {
		pi := statusPriority[DeriveDisplayStatus(records[i], now)]
		pj := statusPriority[DeriveDisplayStatus(records[j], now)]
		if pi != pj {
			return pi < pj
		}
		return records[i].ExpiresAt > records[j].ExpiresAt
	})
}

// TimeLeft returns the remaining validity in whole seconds, floored at zero.
func (r *PaymentRecord) TimeLeft(now time.Time) int64 {
	remaining := r.ExpiresAt - now.Unix()
	if remaining < 0 {
		return 0
	}
	return remaining
}
