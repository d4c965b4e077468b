package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const (
	// The store-listing and team-expand clicks are flaky under load, so they
	// get a bounded retry. Everything else fails on the first miss.
	flakyClickAttempts = 3
	flakyClickBackoff  = 2 * time.Second
)

// Navigator drives the dashboard through the click sequence that brings the
// reservation detail list into a scrapeable state.
type Navigator struct {
	page Page
}

// NewNavigator creates a Navigator over a page.
func NewNavigator(page Page) *Navigator {
	return &Navigator{page: page}
}

// Open navigates to the dashboard URL.
func (n *Navigator) Open(ctx context.Context, url string) error {
	if err := n.page.Navigate(ctx, url); err != nil {
		return fmt.Errorf("failed to open dashboard: %w", err)
	}
	return nil
}

// CloseLoginDialog dismisses the login dialog backdrop if one is showing.
// Best effort: the dialog is not always present.
func (n *Navigator) CloseLoginDialog(ctx context.Context) {
	if err := n.page.Click(ctx, selLoginBackdrop, 1*time.Second); err != nil {
		return
	}
	_ = n.page.WaitHidden(ctx, selLoginBackdrop, 5*time.Second)
}

// Login opens the login affordance, fills credentials and submits, then
// waits for the post-login user menu. A failure here is fatal to the run.
func (n *Navigator) Login(ctx context.Context, email, password string) error {
	if err := n.page.Click(ctx, selLoginIcon, 10*time.Second); err != nil {
		return fmt.Errorf("login icon not clickable: %w", err)
	}
	if err := n.page.Fill(ctx, selLoginEmail, email, 5*time.Second); err != nil {
		return fmt.Errorf("failed to fill email: %w", err)
	}
	if err := n.page.Fill(ctx, selLoginPassword, password, 5*time.Second); err != nil {
		return fmt.Errorf("failed to fill password: %w", err)
	}
	// The submit button sits under the dialog backdrop, so a plain click is
	// intercepted. Submit through the DOM instead.
	if err := n.page.Evaluate(ctx, jsClickLoginSubmit); err != nil {
		return fmt.Errorf("failed to submit login form: %w", err)
	}
	if err := n.page.WaitVisible(ctx, selPostLoginMenu, 10*time.Second); err != nil {
		return fmt.Errorf("post-login menu never appeared: %w", err)
	}
	return nil
}

// OpenCalendar clicks the date button at the top of the page to open the
// calendar picker.
func (n *Navigator) OpenCalendar(ctx context.Context) error {
	if err := n.page.Click(ctx, selDateButton, 10*time.Second); err != nil {
		return fmt.Errorf("date button not clickable: %w", err)
	}
	return nil
}

// SelectDate clicks a day-of-month cell in the open calendar and confirms
// with the OK button.
func (n *Navigator) SelectDate(ctx context.Context, day string) error {
	if err := n.page.Click(ctx, xpCalendarDay(day), 5*time.Second); err != nil {
		return fmt.Errorf("calendar day %s not clickable: %w", day, err)
	}
	if err := n.page.Click(ctx, xpCalendarOK, 5*time.Second); err != nil {
		return fmt.Errorf("calendar OK button not clickable: %w", err)
	}
	return nil
}

// HasReservations probes whether the selected date shows any reservation.
// A timeout means "no reservations", not an error.
func (n *Navigator) HasReservations(ctx context.Context) bool {
	return n.page.WaitVisible(ctx, selReservationItem, 3*time.Second) == nil
}

// OpenStoreListing clicks the store entry to drill into its reservations.
func (n *Navigator) OpenStoreListing(ctx context.Context) error {
	return n.clickWithRetry(ctx, xpStoreListing, 10*time.Second, "store listing")
}

// ExpandTeam expands the team group that holds the reservation details.
func (n *Navigator) ExpandTeam(ctx context.Context) error {
	return n.clickWithRetry(ctx, xpTeamChip, 5*time.Second, "team chip")
}

// ReservationNodes waits for the detail list and returns its items in
// listing order. Requires ExpandTeam to have succeeded.
func (n *Navigator) ReservationNodes(ctx context.Context) ([]Node, error) {
	nodes, err := n.page.Nodes(ctx, selDetailItem, 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("reservation details never appeared: %w", err)
	}
	return nodes, nil
}

// clickWithRetry clicks a known-flaky element with a fixed number of
// attempts and fixed backoff between them.
func (n *Navigator) clickWithRetry(ctx context.Context, selector string, timeout time.Duration, label string) error {
	var err error
	for attempt := 1; attempt <= flakyClickAttempts; attempt++ {
		err = n.page.Click(ctx, selector, timeout)
		if err == nil {
			return nil
		}
		slog.Warn("flaky click failed, retrying",
			"element", label, "attempt", attempt, "error", err)
		if attempt < flakyClickAttempts {
			time.Sleep(flakyClickBackoff)
		}
	}
	return fmt.Errorf("%s not clickable after %d attempts: %w", label, flakyClickAttempts, err)
}
