package worker

import (
	"context"
	"fmt"
	"time"

	"enhancives/internal/repository"
)

// ListingSweeper periodically marks stale marketplace listings unavailable so
// abandoned accounts do not clutter the browse view.
type ListingSweeper struct {
	listingRepo repository.ListingRepository
	maxAge      time.Duration
	ticker      *time.Ticker
}

func NewListingSweeper(store repository.Store, interval, maxAge time.Duration) *ListingSweeper {
	return &ListingSweeper{
		listingRepo: store.Listings(),
		maxAge:      maxAge,
		ticker:      time.NewTicker(interval),
	}
}

func (w *ListingSweeper) StartWorker(ctx context.Context) {
	defer w.ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.ticker.C:
			w.sweep()
		}
	}
}

func (w *ListingSweeper) sweep() {
	cutoff := time.Now().Add(-w.maxAge)
	expired, err := w.listingRepo.ExpireOlderThan(cutoff)
	if err != nil {
		fmt.Printf("[ListingSweeper] Error expiring listings: %v\n", err)
		return
	}

	if expired > 0 {
		fmt.Printf("[ListingSweeper] Marked %d listings unavailable\n", expired)
	}
}
