package slack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ktourstory/reservation-sync/internal/reservation"
)

func sample(no, name, date, price string) reservation.Record {
	return reservation.Record{
		Date:          date,
		Team:          "TEAM 1",
		CustomerName:  name,
		ReservationNo: no,
		Channel:       "KT",
		PartySize:     "성인 2",
		Nationality:   "KOREA",
		Product:       "AB: CUT",
		Time:          "10:00",
		Price:         price,
	}
}

func TestFormatDailySummaryEmpty(t *testing.T) {
	msg := FormatDailySummary(nil, nil, "2026-08-31", false, "")

	assert.Contains(t, msg, "[2026-08-31] 당일 예약현황")
	assert.Contains(t, msg, "예약이 없습니다.")
	assert.Contains(t, msg, "새로 추가된 예약이 없습니다.")

	// No subtotal lines when both sections are empty.
	assert.NotContains(t, msg, "당일 예상 매출")
	assert.NotContains(t, msg, "새 예약 매출")
	assert.NotContains(t, msg, "<!channel>")
	assert.NotContains(t, msg, "시트 바로가기")
}

func TestFormatDailySummarySections(t *testing.T) {
	today := []reservation.Record{
		sample("A1", "Zhang Qingrong (1)", "2026-08-31", "50,000"),
		sample("A2", "Kim Minji", "2026-08-31", "110,000"),
	}
	newOnes := []reservation.Record{
		sample("B1", "Sato Yuki", "2026-09-02", "50,000"),
	}

	msg := FormatDailySummary(today, newOnes, "2026-08-31", true, "https://example.com/sheet")

	assert.True(t, strings.HasPrefix(msg, "<!channel>"))
	assert.Contains(t, msg, "*1. Zhang Qingrong (1)*")
	assert.Contains(t, msg, "*2. Kim Minji*")
	assert.Contains(t, msg, "💵 당일 예상 매출: *160,000원* (2건)")

	// New section carries the date per entry and its own subtotal.
	assert.Contains(t, msg, "📅 2026-09-02 | 🕐 10:00 | 🧭 KT | 👤 성인 2")
	assert.Contains(t, msg, "💰 새 예약 매출: *50,000원* (1건)")

	assert.Contains(t, msg, "<https://example.com/sheet|시트 바로가기>")
}

func TestFormatDailySummaryNonDefaultTeam(t *testing.T) {
	record := sample("A1", "Lee Harin", "2026-08-31", "50,000")
	record.Team = "TEAM 2"

	msg := FormatDailySummary([]reservation.Record{record}, nil, "2026-08-31", false, "")
	assert.Contains(t, msg, "*1. Lee Harin* (TEAM 2)")
}

func TestFormatDailySummaryGarbledPrice(t *testing.T) {
	today := []reservation.Record{
		sample("A1", "One", "2026-08-31", "abc"),
		sample("A2", "Two", "2026-08-31", "30,000"),
	}

	// "abc" contributes zero to the subtotal without raising.
	msg := FormatDailySummary(today, nil, "2026-08-31", false, "")
	assert.Contains(t, msg, "💵 당일 예상 매출: *30,000원* (2건)")
	assert.Contains(t, msg, "💰 0원")
}

func TestFormatDailySummaryMissingFields(t *testing.T) {
	record := reservation.Record{Date: "2026-08-31", ReservationNo: "A1"}

	msg := FormatDailySummary([]reservation.Record{record}, nil, "2026-08-31", false, "")
	assert.Contains(t, msg, "*1. 고객*")
	assert.Contains(t, msg, "🕐 시간미정 | 🧭 - | 👤 -")
}
