package gsheets

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/ktourstory/reservation-sync/internal/reservation"
)

// Store is the persistence surface the reconciler needs. *Worksheet
// implements it; tests use an in-memory fake.
type Store interface {
	ReadAllRows(ctx context.Context) ([][]string, error)
	AppendRows(ctx context.Context, rows [][]string) error
	InsertRowAt(ctx context.Context, index int, row []string) error
	UpdateRowAt(ctx context.Context, index int, row []string) error
}

var _ Store = (*Worksheet)(nil)

// Reconciler partitions scraped batches against the persisted worksheet by
// reservation number and appends only unseen records.
type Reconciler struct {
	store Store
}

// NewReconciler creates a Reconciler over a store.
func NewReconciler(store Store) *Reconciler {
	return &Reconciler{store: store}
}

// Reconcile partitions batch into records not yet in the store and records
// already known, appending the former in one batched write.
//
// Records with an empty reservation number can be neither confirmed new nor
// confirmed duplicate, so they are dropped from both partitions with a
// warning. A reservation number repeated within the batch counts as new only
// on its first occurrence; later occurrences land in the existing partition,
// keeping non-empty numbers unique in the store. The store is read exactly
// once, before the write, so a run never re-derives duplicates against rows
// it just wrote itself.
func (r *Reconciler) Reconcile(ctx context.Context, batch []reservation.Record) (newRecords, existingRecords []reservation.Record, err error) {
	if len(batch) == 0 {
		return nil, nil, nil
	}

	rows, err := r.store.ReadAllRows(ctx)
	if err != nil {
		return nil, nil, err
	}

	rows, err = r.ensureHeader(ctx, rows)
	if err != nil {
		return nil, nil, err
	}

	// Index every known reservation number from the data rows.
	known := make(map[string]bool)
	for _, row := range rows[1:] {
		if len(row) > reservation.ColReservationNo && row[reservation.ColReservationNo] != "" {
			known[row[reservation.ColReservationNo]] = true
		}
	}

	for _, record := range batch {
		switch {
		case record.ReservationNo == "":
			slog.Warn("dropping reservation with empty reservation number",
				"customer", record.CustomerName, "date", record.Date)
		case known[record.ReservationNo]:
			record.MarkNew(false)
			existingRecords = append(existingRecords, record)
		default:
			record.MarkNew(true)
			newRecords = append(newRecords, record)
			// A number seen again later in the same batch is a duplicate,
			// not a second new reservation.
			known[record.ReservationNo] = true
		}
	}

	if len(newRecords) > 0 {
		toAppend := make([][]string, len(newRecords))
		for i := range newRecords {
			toAppend[i] = newRecords[i].Row()
		}
		if err := r.store.AppendRows(ctx, toAppend); err != nil {
			return nil, nil, fmt.Errorf("failed to append new records: %w", err)
		}
	}

	return newRecords, existingRecords, nil
}

// ensureHeader makes the first row equal the expected schema and returns the
// rows as they stand afterwards.
//
// An empty sheet and a sheet whose first row is data both get the header
// inserted at position 0 without disturbing existing rows; a stale header is
// replaced in place.
func (r *Reconciler) ensureHeader(ctx context.Context, rows [][]string) ([][]string, error) {
	if len(rows) > 0 && slices.Equal(rows[0], reservation.Headers) {
		return rows, nil
	}

	if len(rows) > 0 && looksLikeHeader(rows[0]) {
		if err := r.store.UpdateRowAt(ctx, 0, reservation.Headers); err != nil {
			return nil, fmt.Errorf("failed to repair header row: %w", err)
		}
		repaired := slices.Clone(rows)
		repaired[0] = reservation.Headers
		return repaired, nil
	}

	if err := r.store.InsertRowAt(ctx, 0, reservation.Headers); err != nil {
		return nil, fmt.Errorf("failed to insert header row: %w", err)
	}
	return append([][]string{reservation.Headers}, rows...), nil
}

// looksLikeHeader reports whether a mismatched first row is a stale header
// rather than a data row: any cell matching a known column name marks it as
// a header from an older schema revision.
func looksLikeHeader(row []string) bool {
	for _, cell := range row {
		if slices.Contains(reservation.Headers, cell) {
			return true
		}
	}
	return false
}
