package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dodibois40/atelier-planning/internal/db"
	"github.com/Dodibois40/atelier-planning/internal/importer"
	"github.com/Dodibois40/atelier-planning/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

// NewImportService creates an ImportService. All writes of one import run
// inside a single transaction; a failing row rolls the whole file back.
func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportSiteFile(ctx context.Context, path string) (*ImportResult, error) {
	sf, err := importer.LoadSiteFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading site file: %w", err)
	}
	return s.importSiteFile(ctx, sf)
}

func (s *importService) importSiteFile(ctx context.Context, sf *importer.SiteFile) (*ImportResult, error) {
	if errs := importer.ValidateSiteFile(sf); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	converted := importer.Convert(sf)
	result := &ImportResult{}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		workers := repository.NewSQLiteWorkerRepo(tx)
		affairs := repository.NewSQLiteAffairRepo(tx)

		for _, w := range converted.Workers {
			if err := workers.Create(ctx, w); err != nil {
				return fmt.Errorf("creating worker %q: %w", w.Name, err)
			}
			result.WorkerCount++
		}
		for _, a := range converted.Affairs {
			if err := affairs.Create(ctx, a); err != nil {
				return fmt.Errorf("creating affair %s: %w", a.Number, err)
			}
			result.AffairCount++
			result.PhaseCount += len(a.Phases)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return errors.New("import validation failed:\n  - " + strings.Join(msgs, "\n  - "))
}
