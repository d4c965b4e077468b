// Package runner orchestrates a full scrape-and-reconcile run: browser
// session, per-date navigation and extraction, one reconciliation pass and
// one summary notification.
package runner

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ktourstory/reservation-sync/internal/browser"
	"github.com/ktourstory/reservation-sync/internal/dashboard"
	"github.com/ktourstory/reservation-sync/internal/gsheets"
	"github.com/ktourstory/reservation-sync/internal/pricing"
	"github.com/ktourstory/reservation-sync/internal/reservation"
	"github.com/ktourstory/reservation-sync/internal/slack"
	"github.com/ktourstory/reservation-sync/pkg/config"
)

const dateLayout = "2006-01-02"

// defaultTeam labels records scraped from the default team group.
const defaultTeam = "TEAM 1"

// Run executes one scrape-and-reconcile run. day optionally narrows the run
// to a single day of the current month; otherwise every date from today to
// the end of the month is scraped.
//
// Any failure aborts the remaining dates but still triggers a best-effort
// failure notification, and the browser is torn down regardless of outcome.
func Run(ctx context.Context, cfg *config.Config, day string) (err error) {
	notifier := slack.NewNotifier(cfg.Slack.WebhookURL)
	defer func() {
		if err != nil {
			notifier.Send(fmt.Sprintf("⚠️ 예약 수집 실패: %v", err))
		}
	}()

	dates, err := targetDates(time.Now(), day)
	if err != nil {
		return err
	}

	table, err := pricing.LoadTable(cfg.Sheets.PriceTablePath)
	if err != nil {
		return err
	}

	fmt.Println("==================================================")
	fmt.Println("Ktourstory 예약 정보 수집 시작")
	fmt.Println("==================================================")

	fmt.Println("\n[1/6] 브라우저 실행 중...")
	b, err := browser.Launch(ctx, cfg.Headless)
	if err != nil {
		return err
	}
	defer func() {
		fmt.Println("\n브라우저 종료 중...")
		b.Close()
		fmt.Println("[OK] 브라우저 종료 완료")
	}()
	fmt.Println("[OK] 브라우저 실행 완료")

	nav := dashboard.NewNavigator(b.Page())

	fmt.Println("\n[2/6] 로그인 중...")
	if err := nav.Open(ctx, cfg.Dashboard.TargetURL); err != nil {
		return err
	}
	nav.CloseLoginDialog(ctx)
	if err := nav.Login(ctx, cfg.Dashboard.LoginID, cfg.Dashboard.LoginPassword); err != nil {
		return err
	}
	fmt.Println("[OK] 로그인 완료")

	fmt.Printf("\n[3/6] 날짜별 예약 수집 중 (%d일)...\n", len(dates))
	var all []reservation.Record
	for _, date := range dates {
		records, err := scrapeDate(ctx, nav, date, table)
		if err != nil {
			return fmt.Errorf("failed to scrape %s: %w", date.Format(dateLayout), err)
		}
		fmt.Printf("  %s: %d건\n", date.Format(dateLayout), len(records))
		all = append(all, records...)
	}
	fmt.Printf("[OK] 수집 완료 (총 %d건)\n", len(all))

	fmt.Println("\n[4/6] Google Sheets 열기...")
	ws, err := gsheets.OpenWorksheet(ctx, gsheets.ClientConfig{
		CredentialsFile:  cfg.Sheets.CredentialsFile,
		SpreadsheetTitle: cfg.Sheets.SpreadsheetTitle,
		WorksheetName:    cfg.Sheets.WorksheetName,
	})
	if err != nil {
		return err
	}
	fmt.Println("[OK] 시트 연결 완료")

	fmt.Println("\n[5/6] 기존 예약과 대조 중...")
	newRecords, existingRecords, err := gsheets.NewReconciler(ws).Reconcile(ctx, all)
	if err != nil {
		return err
	}
	fmt.Printf("[OK] 대조 완료 (신규 %d건, 기존 %d건)\n", len(newRecords), len(existingRecords))

	fmt.Println("\n[6/6] Slack 알림 전송 중...")
	today := time.Now().Format(dateLayout)
	sheetURL := cfg.Slack.SheetURL
	if sheetURL == "" {
		sheetURL = ws.URL()
	}
	message := slack.FormatDailySummary(
		filterByDate(all, today),
		newRecords,
		today,
		cfg.Slack.NotifyEveryone,
		sheetURL,
	)
	notifier.Send(message)

	fmt.Println("\n==================================================")
	fmt.Println("모든 작업 완료!")
	fmt.Println("==================================================")
	return nil
}

// scrapeDate selects one date in the calendar and, if the date shows any
// reservation, drills into the detail list and extracts its records.
func scrapeDate(ctx context.Context, nav *dashboard.Navigator, date time.Time, table pricing.Table) ([]reservation.Record, error) {
	if err := nav.OpenCalendar(ctx); err != nil {
		return nil, err
	}
	if err := nav.SelectDate(ctx, strconv.Itoa(date.Day())); err != nil {
		return nil, err
	}

	if !nav.HasReservations(ctx) {
		return nil, nil
	}

	if err := nav.OpenStoreListing(ctx); err != nil {
		return nil, err
	}
	if err := nav.ExpandTeam(ctx); err != nil {
		return nil, err
	}

	nodes, err := nav.ReservationNodes(ctx)
	if err != nil {
		return nil, err
	}

	return dashboard.Extract(ctx, nodes, dashboard.ExtractContext{
		Team: defaultTeam,
		Date: date.Format(dateLayout),
	}, table), nil
}

// targetDates builds the date list for a run: the single given day of the
// current month, or today through the end of the month.
func targetDates(now time.Time, day string) ([]time.Time, error) {
	if day != "" {
		d, err := strconv.Atoi(day)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q: %w", day, err)
		}
		lastDay := endOfMonth(now).Day()
		if d < 1 || d > lastDay {
			return nil, fmt.Errorf("day %d is out of range for %s", d, now.Format("2006-01"))
		}
		return []time.Time{time.Date(now.Year(), now.Month(), d, 0, 0, 0, 0, now.Location())}, nil
	}

	var dates []time.Time
	last := endOfMonth(now)
	for d := now; !d.After(last); d = d.AddDate(0, 0, 1) {
		dates = append(dates, time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location()))
	}
	return dates, nil
}

// endOfMonth returns the last day of the month of t.
func endOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
}

// filterByDate returns the records applying to one calendar date, in input
// order.
func filterByDate(records []reservation.Record, date string) []reservation.Record {
	var out []reservation.Record
	for _, record := range records {
		if record.Date == date {
			out = append(out, record)
		}
	}
	return out
}
