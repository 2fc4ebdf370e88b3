package services

import (
	"context"
	"time"

	"enhancives/internal/domain"
	"enhancives/internal/repository"
)

// BackupEnvelope is the import/export payload: the full item catalog plus the
// equipment index, with a version tag for forward compatibility.
type BackupEnvelope struct {
	Version    string                 `json:"version"`
	ExportDate time.Time              `json:"export_date"`
	Items      []*domain.Item         `json:"items"`
	Equipment  *domain.EquipmentIndex `json:"equipment"`
}

const backupVersion = "1.0"

// ImportResult reports how an import merged into the existing catalog.
type ImportResult struct {
	Added      int `json:"added"`
	Duplicates int `json:"duplicates"`
}

type BackupService struct {
	itemRepo  repository.ItemRepository
	equipRepo repository.EquipmentRepository
	totals    *TotalsService
}

func NewBackupService(store repository.Store, totals *TotalsService) *BackupService {
	return &BackupService{
		itemRepo:  store.Items(),
		equipRepo: store.Equipment(),
		totals:    totals,
	}
}

func (s *BackupService) Export(ctx context.Context, username string) (*BackupEnvelope, error) {
	items, err := s.itemRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}

	index, err := s.equipRepo.Get(username)
	if err != nil {
		return nil, err
	}

	return &BackupEnvelope{
		Version:    backupVersion,
		ExportDate: time.Now().UTC(),
		Items:      items,
		Equipment:  index,
	}, nil
}

// Import merges the envelope's items into the catalog, skipping items whose
// name and target set already exist, and replaces the equipment index when
// the envelope carries one. Imported items get fresh ids.
func (s *BackupService) Import(ctx context.Context, username string, envelope *BackupEnvelope) (*ImportResult, error) {
	existing, err := s.itemRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(existing))
	for _, item := range existing {
		seen[item.DedupKey()] = struct{}{}
	}

	result := &ImportResult{}
	for _, item := range envelope.Items {
		key := item.DedupKey()
		if _, dup := seen[key]; dup {
			result.Duplicates++
			continue
		}

		imported := &domain.Item{
			Username:   username,
			Name:       item.Name,
			Location:   item.Location,
			Permanence: item.Permanence,
			Notes:      item.Notes,
			Targets:    item.Targets,
		}
		if err := imported.Validate(); err != nil {
			return nil, err
		}
		if err := s.itemRepo.Create(imported); err != nil {
			return nil, err
		}
		seen[key] = struct{}{}
		result.Added++
	}

	if envelope.Equipment != nil {
		if err := s.equipRepo.Save(username, envelope.Equipment); err != nil {
			return nil, err
		}
	}

	s.totals.Invalidate(ctx, username)
	return result, nil
}
