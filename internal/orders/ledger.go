// Package orders records acknowledged print orders.
package orders

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"photoprint-backend/internal/wizard"
)

var (
	ErrNotFound  = errors.New("orders: order not found")
	ErrDuplicate = errors.New("orders: order already recorded")
)

// Ledger stores receipts by order number. Each receipt belongs to the
// session that submitted it; Get only returns receipts owned by sessionID.
type Ledger interface {
	Record(ctx context.Context, sessionID string, r wizard.Receipt) error
	Get(ctx context.Context, sessionID, orderNumber string) (wizard.Receipt, error)
	Recent(ctx context.Context, limit int) ([]wizard.Receipt, error)
}

type entry struct {
	sessionID string
	receipt   wizard.Receipt
}

// MemoryLedger keeps receipts for the lifetime of the process.
type MemoryLedger struct {
	mu       sync.RWMutex
	receipts map[string]entry
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{receipts: make(map[string]entry)}
}

func (l *MemoryLedger) Record(ctx context.Context, sessionID string, r wizard.Receipt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.receipts[r.OrderNumber]; ok {
		return ErrDuplicate
	}
	l.receipts[r.OrderNumber] = entry{sessionID: sessionID, receipt: r}
	return nil
}

// Get returns ErrNotFound both for unknown numbers and for orders placed by
// another session.
func (l *MemoryLedger) Get(ctx context.Context, sessionID, orderNumber string) (wizard.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return wizard.Receipt{}, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	e, ok := l.receipts[strings.TrimSpace(orderNumber)]
	if !ok || sessionID == "" || e.sessionID != sessionID {
		return wizard.Receipt{}, ErrNotFound
	}
	return e.receipt, nil
}

// Recent returns up to limit receipts, newest first.
func (l *MemoryLedger) Recent(ctx context.Context, limit int) ([]wizard.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.RLock()
	out := make([]wizard.Receipt, 0, len(l.receipts))
	for _, e := range l.receipts {
		out = append(out, e.receipt)
	}
	l.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].OrderNumber > out[j].OrderNumber
		}
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
