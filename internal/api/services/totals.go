package services

import (
	"context"
	"sort"

	goredis "github.com/redis/go-redis/v9"

	"enhancives/internal/api/ws"
	"enhancives/internal/domain"
	"enhancives/internal/metrics"
	r "enhancives/internal/redis"
	"enhancives/internal/repository"
)

// Gap is how far a target still is from its cap.
type Gap struct {
	Target string `json:"target"`
	Needed int    `json:"needed"`
}

// Analysis is the cap-analysis view: every total classified against its cap,
// the status partition counts, and the remaining gaps.
type Analysis struct {
	Classified map[string]domain.TargetAnalysis `json:"classified"`
	Summary    domain.CapSummary                `json:"summary"`
	Gaps       []Gap                            `json:"gaps"`
}

type TotalsService struct {
	itemRepo  repository.ItemRepository
	equipRepo repository.EquipmentRepository
	cache     *r.JSONCache[map[string]int]
	hub       *ws.Hub
}

func NewTotalsService(store repository.Store, rdb *goredis.Client) *TotalsService {
	return &TotalsService{
		itemRepo:  store.Items(),
		equipRepo: store.Equipment(),
		cache:     r.TotalsCache(rdb),
		hub:       ws.GetHub(),
	}
}

// Totals returns the per-target aggregate for the user's equipped items,
// served from cache when possible.
func (s *TotalsService) Totals(ctx context.Context, username string) (map[string]int, error) {
	if cached, err := s.cache.Get(ctx, username); err == nil && cached != nil {
		return *cached, nil
	}

	totals, err := s.calculate(username)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, username, &totals)
	return totals, nil
}

func (s *TotalsService) calculate(username string) (map[string]int, error) {
	items, err := s.itemRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}

	index, err := s.equipRepo.Get(username)
	if err != nil {
		return nil, err
	}

	metrics.TotalsCalculations.Inc()
	return domain.CalculateTotals(items, index), nil
}

// Analysis classifies every total against its cap.
func (s *TotalsService) Analysis(ctx context.Context, username string) (*Analysis, error) {
	totals, err := s.Totals(ctx, username)
	if err != nil {
		return nil, err
	}

	classified := domain.Classify(totals)

	gaps := make([]Gap, 0)
	for target, entry := range classified {
		if entry.Needed > 0 {
			gaps = append(gaps, Gap{Target: target, Needed: entry.Needed})
		}
	}
	sort.Slice(gaps, func(i, j int) bool { return gaps[i].Target < gaps[j].Target })

	return &Analysis{
		Classified: classified,
		Summary:    domain.Summarize(classified),
		Gaps:       gaps,
	}, nil
}

// Invalidate drops the cached aggregate after a mutation and pushes the fresh
// totals to a connected websocket client, best effort.
func (s *TotalsService) Invalidate(ctx context.Context, username string) {
	_ = s.cache.Delete(ctx, username)

	if s.hub == nil || !s.hub.IsConnected(username) {
		return
	}
	if totals, err := s.calculate(username); err == nil {
		_ = s.hub.SendTotalsUpdate(username, totals)
	}
}
