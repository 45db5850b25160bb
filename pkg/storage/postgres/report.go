package postgres

import (
	"context"
	"fmt"
	"taxipark/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

// StoreReport upserts the report of a park. Storing a report of a park that
// does not exist fails with serrors.ErrNotFound.
func (p *PgSQL) StoreReport(ctx context.Context, report domain.ParkReport) error {
	var row PgReport
	if err := row.FromDomain(report); err != nil {
		return err
	}

	_, err := p.Builder.Insert(tableParkReports).
		Rows(row).
		OnConflict(goqu.DoUpdate("park_id", goqu.Record{
			"report":     goqu.I("excluded.report"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return mapError(err, "could not store park report into pg")
	}

	return nil
}

// ReportByParkID returns nil when the park has no report yet.
func (p *PgSQL) ReportByParkID(ctx context.Context, id domain.ParkID) (*domain.ParkReport, error) {
	var row PgReport
	found, err := p.Builder.From(tableParkReports).
		Where(goqu.I("park_id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch park report: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
