// Package slack formats reservation summaries and delivers them to a Slack
// incoming webhook.
package slack

import (
	"fmt"
	"strings"

	"github.com/ktourstory/reservation-sync/internal/pricing"
	"github.com/ktourstory/reservation-sync/internal/reservation"
)

const divider = "━━━━━━━━━━━━━━━━━━"

// defaultTeam is the team label suppressed in entry headings; only
// off-default teams are called out next to the customer name.
const defaultTeam = "TEAM 1"

// FormatDailySummary renders the run summary: today's reservations with
// their revenue subtotal, then newly discovered reservations across all
// scraped dates with theirs. Entries keep input order.
func FormatDailySummary(todayRecords, newRecords []reservation.Record, todayDate string, notifyEveryone bool, sheetURL string) string {
	var message []string

	if notifyEveryone {
		message = append(message, "<!channel>")
	}

	message = append(message,
		fmt.Sprintf("📅 *[%s] 당일 예약현황*", todayDate),
		divider,
	)

	if len(todayRecords) > 0 {
		for i, record := range todayRecords {
			message = appendEntry(message, record, i+1, false)
		}
		total := sumPrices(todayRecords)
		message = append(message,
			fmt.Sprintf("💵 당일 예상 매출: *%s원* (%d건)", pricing.FormatAmount(total), len(todayRecords)))
	} else {
		message = append(message, "예약이 없습니다.\n")
	}

	message = append(message,
		"\n🆕 *[새로 추가된 예약]*",
		divider,
	)

	if len(newRecords) > 0 {
		for i, record := range newRecords {
			message = appendEntry(message, record, i+1, true)
		}
		total := sumPrices(newRecords)
		message = append(message,
			divider,
			fmt.Sprintf("💰 새 예약 매출: *%s원* (%d건)", pricing.FormatAmount(total), len(newRecords)))
	} else {
		message = append(message, "새로 추가된 예약이 없습니다.")
	}

	if sheetURL != "" {
		message = append(message, fmt.Sprintf("\n🔗 <%s|시트 바로가기>", sheetURL))
	}

	return strings.Join(message, "\n")
}

// appendEntry renders one reservation block. The new-reservation section
// includes the date per entry and spreads the product and price over
// separate lines.
func appendEntry(message []string, record reservation.Record, idx int, newSection bool) []string {
	name := record.CustomerName
	if name == "" {
		name = "고객"
	}
	if record.Team != "" && record.Team != defaultTeam {
		message = append(message, fmt.Sprintf("*%d. %s* (%s)", idx, name, record.Team))
	} else {
		message = append(message, fmt.Sprintf("*%d. %s*", idx, name))
	}

	timeStr := orDefault(record.Time, "시간미정")
	channel := orDefault(record.Channel, "-")
	people := orDefault(record.PartySize, "-")

	if newSection {
		message = append(message, fmt.Sprintf("📅 %s | 🕐 %s | 🧭 %s | 👤 %s", record.Date, timeStr, channel, people))
	} else {
		message = append(message, fmt.Sprintf("🕐 %s | 🧭 %s | 👤 %s", timeStr, channel, people))
	}

	product := orDefault(record.Product, "-")
	price := pricing.FormatAmount(pricing.ParseAmount(record.Price))

	if newSection {
		message = append(message,
			fmt.Sprintf("✂️ %s", product),
			fmt.Sprintf("💰 %s원", price),
			"")
	} else {
		message = append(message, fmt.Sprintf("✂️ %s | 💰 %s원\n", product, price))
	}

	return message
}

// sumPrices totals the formatted price fields of a section. Garbled prices
// contribute zero rather than failing the summary.
func sumPrices(records []reservation.Record) int {
	total := 0
	for _, record := range records {
		total += pricing.ParseAmount(record.Price)
	}
	return total
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
