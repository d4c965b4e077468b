// Package reservation defines the canonical reservation record and its
// spreadsheet row schema.
package reservation

import "time"

// Headers is the fixed worksheet header row. Column order is part of the
// persisted schema and must not change between runs.
var Headers = []string{
	"날짜",
	"팀",
	"고객명",
	"예약번호",
	"채널",
	"인원구분",
	"국적",
	"예약상품",
	"예약시간",
	"금액",
}

// ColReservationNo is the column index of the reservation number, the sole
// deduplication key.
const ColReservationNo = 3

// Record is one reservation scraped from the dashboard.
type Record struct {
	Date          string // YYYY-MM-DD
	Team          string
	CustomerName  string // raw display name, may embed "(N)" party-size suffix
	ReservationNo string
	Channel       string
	PartySize     string
	Nationality   string
	Product       string // raw product description
	Time          string
	Price         string // formatted total, e.g. "110,000"

	// IsNew is nil until reconciliation assigns the record to a partition.
	IsNew *bool

	CapturedAt time.Time
}

// Row converts the record to a worksheet row in Headers order.
func (r *Record) Row() []string {
	return []string{
		r.Date,
		r.Team,
		r.CustomerName,
		r.ReservationNo,
		r.Channel,
		r.PartySize,
		r.Nationality,
		r.Product,
		r.Time,
		r.Price,
	}
}

// MarkNew sets the reconciliation partition flag.
func (r *Record) MarkNew(isNew bool) {
	r.IsNew = &isNew
}
