package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"walletwave.backend/internal/domain/entities"
	"walletwave.backend/pkg/redis"
)

const (
	recordKeyPrefix    = "payment:record:"
	merchantKeyPrefix  = "payment:merchant:"
	activeKeyPrefix    = "merchant:active:"
	copiedKeyPrefix    = "payment:copied:"
	submittedKeyPrefix = "payment:submitted:"
	pendingIndexKey    = "payments:pending"

	// submittedWindow bounds how long an optimistic settlement marker can
	// outlive the confirmed write before the chain read wins outright.
	submittedWindow = 5 * time.Minute
)

// PaymentStore mirrors on-chain payment state in Redis. Entries expire after
// the configured staleness window, so a missing key means "re-read the chain",
// never "does not exist".
type PaymentStore struct {
	staleAfter time.Duration
}

// NewPaymentStore creates a mirror store with the given staleness window.
func NewPaymentStore(staleAfter time.Duration) *PaymentStore {
	return &PaymentStore{staleAfter: staleAfter}
}

func recordKey(paymentID string) string {
	return recordKeyPrefix + strings.ToLower(paymentID)
}

func merchantKey(address string) string {
	return merchantKeyPrefix + strings.ToLower(address)
}

// GetRecord returns the mirrored record, or nil when absent or stale.
func (s *PaymentStore) GetRecord(ctx context.Context, paymentID string) (*entities.PaymentRecord, error) {
	raw, err := redis.Get(ctx, recordKey(paymentID))
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var record entities.PaymentRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("corrupt payment mirror entry: %w", err)
	}
	return &record, nil
}

// PutRecord mirrors a freshly read record and indexes it for the refresh
// sweep while it is still pending.
func (s *PaymentStore) PutRecord(ctx context.Context, record *entities.PaymentRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if err := redis.Set(ctx, recordKey(record.ID), raw, s.staleAfter); err != nil {
		return err
	}

	if record.Status == entities.PaymentStatusPending {
		return redis.ZAdd(ctx, pendingIndexKey, float64(record.ExpiresAt), strings.ToLower(record.ID))
	}
	return redis.ZRem(ctx, pendingIndexKey, strings.ToLower(record.ID))
}

// Invalidate drops the mirrored record so the next read goes to the chain.
// Called after every confirmed write that touches the payment.
func (s *PaymentStore) Invalidate(ctx context.Context, paymentID string) error {
	return redis.Del(ctx, recordKey(paymentID))
}

// GetMerchantPaymentIDs returns the mirrored id list for a merchant, or nil
// when absent or stale.
func (s *PaymentStore) GetMerchantPaymentIDs(ctx context.Context, merchant string) ([]string, error) {
	raw, err := redis.Get(ctx, merchantKey(merchant))
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("corrupt merchant mirror entry: %w", err)
	}
	return ids, nil
}

// PutMerchantPaymentIDs mirrors a merchant's payment id list.
func (s *PaymentStore) PutMerchantPaymentIDs(ctx context.Context, merchant string, ids []string) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return redis.Set(ctx, merchantKey(merchant), raw, s.staleAfter)
}

// InvalidateMerchant drops a merchant's mirrored id list, used after a
// creation write lands so the new link shows up on the next list.
func (s *PaymentStore) InvalidateMerchant(ctx context.Context, merchant string) error {
	return redis.Del(ctx, merchantKey(merchant))
}

// GetMerchantActive returns the mirrored active flag. The second return
// reports whether a fresh value was present.
func (s *PaymentStore) GetMerchantActive(ctx context.Context, merchant string) (bool, bool, error) {
	raw, err := redis.Get(ctx, activeKeyPrefix+strings.ToLower(merchant))
	if err == goredis.Nil {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return raw == "1", true, nil
}

// PutMerchantActive mirrors the registry's active flag.
func (s *PaymentStore) PutMerchantActive(ctx context.Context, merchant string, active bool) error {
	value := "0"
	if active {
		value = "1"
	}
	return redis.Set(ctx, activeKeyPrefix+strings.ToLower(merchant), value, s.staleAfter)
}

// InvalidateMerchantActive drops the mirrored active flag, used after a
// confirmed onboarding write.
func (s *PaymentStore) InvalidateMerchantActive(ctx context.Context, merchant string) error {
	return redis.Del(ctx, activeKeyPrefix+strings.ToLower(merchant))
}

// PendingPastExpiry lists mirrored pending payments whose expiry is at or
// before now. The refresh sweep uses this to invalidate records whose
// display status flipped to expired.
func (s *PaymentStore) PendingPastExpiry(ctx context.Context, now time.Time) ([]string, error) {
	return redis.ZRangeByScoreMax(ctx, pendingIndexKey, float64(now.Unix()))
}

// RemoveFromPendingIndex drops payments from the pending sweep index.
func (s *PaymentStore) RemoveFromPendingIndex(ctx context.Context, paymentIDs ...string) error {
	if len(paymentIDs) == 0 {
		return nil
	}
	members := make([]interface{}, len(paymentIDs))
	for i, id := range paymentIDs {
		members[i] = strings.ToLower(id)
	}
	return redis.ZRem(ctx, pendingIndexKey, members...)
}

// MarkLinkCopied records a copy acknowledgement. The flag expires on its
// own after the acknowledgement window.
func (s *PaymentStore) MarkLinkCopied(ctx context.Context, paymentID string) error {
	return redis.Set(ctx, copiedKeyPrefix+strings.ToLower(paymentID), "1", entities.LinkCopyWindow)
}

// IsLinkCopied reports whether a copy acknowledgement is still in its window.
func (s *PaymentStore) IsLinkCopied(ctx context.Context, paymentID string) (bool, error) {
	_, err := redis.Get(ctx, copiedKeyPrefix+strings.ToLower(paymentID))
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// MarkSubmitted records that a settlement write was confirmed while the
// mirror may still read the payment as pending.
func (s *PaymentStore) MarkSubmitted(ctx context.Context, paymentID string) error {
	return redis.Set(ctx, submittedKeyPrefix+strings.ToLower(paymentID), "1", submittedWindow)
}

// IsSubmitted reports whether an optimistic settlement marker is active.
func (s *PaymentStore) IsSubmitted(ctx context.Context, paymentID string) (bool, error) {
	_, err := redis.Get(ctx, submittedKeyPrefix+strings.ToLower(paymentID))
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ClearSubmitted drops the optimistic marker once the chain reflects the
// settled status.
func (s *PaymentStore) ClearSubmitted(ctx context.Context, paymentID string) error {
	return redis.Del(ctx, submittedKeyPrefix+strings.ToLower(paymentID))
}
