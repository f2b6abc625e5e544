package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromChain(t *testing.T) {
	assert.Equal(t, PaymentStatusPending, StatusFromChain(0))
	assert.Equal(t, PaymentStatusCompleted, StatusFromChain(1))
	assert.Equal(t, PaymentStatusFailed, StatusFromChain(2))
	assert.Equal(t, PaymentStatusExpired, StatusFromChain(3))
	assert.Equal(t, PaymentStatusRefunded, StatusFromChain(4))
	assert.Equal(t, PaymentStatusFailed, StatusFromChain(9))
}

func TestDeriveDisplayStatus_PendingPastExpiry(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	rec := &PaymentRecord{Status: PaymentStatusPending, ExpiresAt: now.Unix() - 1}
	assert.Equal(t, PaymentStatusExpired, DeriveDisplayStatus(rec, now))
}

func TestDeriveDisplayStatus_PendingStillValid(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	rec := &PaymentRecord{Status: PaymentStatusPending, ExpiresAt: now.Unix() + 60}
	assert.Equal(t, PaymentStatusPending, DeriveDisplayStatus(rec, now))
}

func TestDeriveDisplayStatus_ClockNeverAltersNonPending(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	for _, status := range []PaymentStatus{
		PaymentStatusCompleted,
		PaymentStatusFailed,
		PaymentStatusExpired,
		PaymentStatusRefunded,
	} {
		rec := &PaymentRecord{Status: status, ExpiresAt: now.Unix() - 100}
		assert.Equal(t, status, DeriveDisplayStatus(rec, now), "status %s", status)
	}
}

func TestDeriveDisplayStatus_NilRecord(t *testing.T) {
	assert.Equal(t, PaymentStatusFailed, DeriveDisplayStatus(nil, time.Now()))
}

func TestSortByUrgency(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	completed := &PaymentRecord{ID: "a", Status: PaymentStatusCompleted, ExpiresAt: now.Unix() + 100}
	pending := &PaymentRecord{ID: "b", Status: PaymentStatusPending, ExpiresAt: now.Unix() + 100}
	expired := &PaymentRecord{ID: "c", Status: PaymentStatusExpired, ExpiresAt: now.Unix() - 100}

	records := []*PaymentRecord{completed, pending, expired}
	SortByUrgency(records, now)

	assert.Equal(t, "b", records[0].ID)
	assert.Equal(t, "c", records[1].ID)
	assert.Equal(t, "a", records[2].ID)
}

func TestSortByUrgency_TiesByDescendingExpiry(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	older := &PaymentRecord{ID: "old", Status: PaymentStatusPending, ExpiresAt: now.Unix() + 10}
	newer := &PaymentRecord{ID: "new", Status: PaymentStatusPending, ExpiresAt: now.Unix() + 500}

	records := []*PaymentRecord{older, newer}
	SortByUrgency(records, now)

	assert.Equal(t, "new", records[0].ID)
	assert.Equal(t, "old", records[1].ID)
}

func TestSortByUrgency_UsesDerivedStatus(t *testing.T) {
	// A Pending record past expiry sorts as Expired, behind a live Pending one.
	now := time.Unix(1_700_000_000, 0)
	lapsed := &PaymentRecord{ID: "lapsed", Status: PaymentStatusPending, ExpiresAt: now.Unix() - 5}
	live := &PaymentRecord{ID: "live", Status: PaymentStatusPending, ExpiresAt: now.Unix() + 5}

	records := []*PaymentRecord{lapsed, live}
	SortByUrgency(records, now)

	assert.Equal(t, "live", records[0].ID)
}

func TestPaymentRecord_IsZero(t *testing.T) {
	assert.True(t, (*PaymentRecord)(nil).IsZero())
	assert.True(t, (&PaymentRecord{}).IsZero())
	assert.True(t, (&PaymentRecord{Merchant: ZeroAddress}).IsZero())
	assert.False(t, (&PaymentRecord{Merchant: "0x3FA38C1B92dE06c744784B18DEf8C3088E1C96f1"}).IsZero())
}

func TestPaymentRecord_TimeLeft(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	rec := &PaymentRecord{ExpiresAt: now.Unix() + 125}
	assert.Equal(t, int64(125), rec.TimeLeft(now))

	rec.ExpiresAt = now.Unix() - 10
	assert.Equal(t, int64(0), rec.TimeLeft(now))
}
