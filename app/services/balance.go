package services

import "sync"

// BalanceStore is the slice of storage the balance service needs.
type BalanceStore interface {
	CurrentBalance() (int64, error)
}

// BalanceService serves the running balance. It caches the last computed
// fold and recomputes lazily after a ledger write invalidates it, so the
// cached value always equals the full fold over live entries.
type BalanceService struct {
	store BalanceStore

	mu     sync.Mutex
	cached int64
	valid  bool
}

// NewBalanceService returns a BalanceService reading from store.
func NewBalanceService(store BalanceStore) *BalanceService {
	return &BalanceService{store: store}
}

// Current returns the running balance: the sum of signed contributions of
// every live ledger entry.
func (b *BalanceService) Current() (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.valid {
		return b.cached, nil
	}
	balance, err := b.store.CurrentBalance()
	if err != nil {
		return 0, err
	}
	b.cached = balance
	b.valid = true
	return balance, nil
}

// Invalidate marks the cached balance stale. Called after every write that
// touches the ledger.
func (b *BalanceService) Invalidate() {
	b.mu.Lock()
	b.valid = false
	b.mu.Unlock()
}
