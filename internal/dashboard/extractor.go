package dashboard

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/ktourstory/reservation-sync/internal/pricing"
	"github.com/ktourstory/reservation-sync/internal/reservation"
)

// timeRequestPrefix is the literal the dashboard prepends to the requested
// time slot.
const timeRequestPrefix = "Time Request:"

// fieldTimeout bounds each per-field text lookup independently.
const fieldTimeout = 2 * time.Second

// ExtractContext carries the listing context shared by every record in a
// detail list.
type ExtractContext struct {
	Team string
	Date string // YYYY-MM-DD
}

// Extract pulls structured reservation records from the detail list nodes.
//
// A field lookup failing for one node drops that node with a warning and
// extraction continues; one malformed listing must not abort the batch.
// Output preserves listing order.
func Extract(ctx context.Context, nodes []Node, ectx ExtractContext, table pricing.Table) []reservation.Record {
	records := make([]reservation.Record, 0, len(nodes))

	for i, node := range nodes {
		record, err := extractOne(ctx, node, ectx, table)
		if err != nil {
			slog.Warn("skipping malformed reservation listing",
				"index", i, "date", ectx.Date, "error", err)
			continue
		}
		records = append(records, record)
	}

	return records
}

func extractOne(ctx context.Context, node Node, ectx ExtractContext, table pricing.Table) (reservation.Record, error) {
	var record reservation.Record

	name, err := node.Text(ctx, selDetailName, fieldTimeout)
	if err != nil {
		return record, err
	}
	reservationNo, err := node.Text(ctx, selDetailReservationNo, fieldTimeout)
	if err != nil {
		return record, err
	}
	nationality, err := node.Text(ctx, selDetailNationality, fieldTimeout)
	if err != nil {
		return record, err
	}
	timeText, err := node.Text(ctx, selDetailTime, fieldTimeout)
	if err != nil {
		return record, err
	}
	product, err := node.Text(ctx, selDetailProduct, fieldTimeout)
	if err != nil {
		return record, err
	}
	channel, err := node.Text(ctx, selDetailChannel, fieldTimeout)
	if err != nil {
		return record, err
	}
	partySize, err := node.Text(ctx, selDetailPartySize, fieldTimeout)
	if err != nil {
		return record, err
	}

	record = reservation.Record{
		Date:          ectx.Date,
		Team:          ectx.Team,
		CustomerName:  strings.TrimSpace(name),
		ReservationNo: strings.TrimSpace(reservationNo),
		Channel:       strings.TrimSpace(channel),
		PartySize:     strings.TrimSpace(partySize),
		Nationality:   strings.TrimSpace(nationality),
		Product:       strings.TrimSpace(product),
		Time:          strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(timeText), timeRequestPrefix)),
		Price:         pricing.Resolve(strings.TrimSpace(product), table),
		CapturedAt:    time.Now(),
	}
	return record, nil
}
