package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPage records calls and fails selectors on demand.
type scriptedPage struct {
	clicks      []string
	fills       map[string]string
	evaluated   []string
	visible     map[string]bool
	failClicks  map[string]int // selector -> remaining failures
	clickCounts map[string]int
}

func newScriptedPage() *scriptedPage {
	return &scriptedPage{
		fills:       make(map[string]string),
		visible:     make(map[string]bool),
		failClicks:  make(map[string]int),
		clickCounts: make(map[string]int),
	}
}

func (p *scriptedPage) Navigate(context.Context, string) error { return nil }

func (p *scriptedPage) WaitVisible(_ context.Context, selector string, _ time.Duration) error {
	if p.visible[selector] {
		return nil
	}
	return errors.New("timeout waiting for visibility")
}

func (p *scriptedPage) WaitHidden(context.Context, string, time.Duration) error { return nil }

func (p *scriptedPage) Click(_ context.Context, selector string, _ time.Duration) error {
	p.clickCounts[selector]++
	if p.failClicks[selector] > 0 {
		p.failClicks[selector]--
		return errors.New("element not clickable")
	}
	p.clicks = append(p.clicks, selector)
	return nil
}

func (p *scriptedPage) Fill(_ context.Context, selector, value string, _ time.Duration) error {
	p.fills[selector] = value
	return nil
}

func (p *scriptedPage) Evaluate(_ context.Context, expression string) error {
	p.evaluated = append(p.evaluated, expression)
	return nil
}

func (p *scriptedPage) Nodes(context.Context, string, time.Duration) ([]Node, error) {
	return nil, nil
}

func TestLoginSequence(t *testing.T) {
	page := newScriptedPage()
	page.visible[selPostLoginMenu] = true
	nav := NewNavigator(page)

	err := nav.Login(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, []string{selLoginIcon}, page.clicks)
	assert.Equal(t, "user@example.com", page.fills[selLoginEmail])
	assert.Equal(t, "secret", page.fills[selLoginPassword])
	assert.Equal(t, []string{jsClickLoginSubmit}, page.evaluated)
}

func TestLoginFailsWhenMenuNeverAppears(t *testing.T) {
	page := newScriptedPage()
	nav := NewNavigator(page)

	err := nav.Login(context.Background(), "user@example.com", "secret")
	assert.Error(t, err)
}

func TestSelectDateClicksDayThenOK(t *testing.T) {
	page := newScriptedPage()
	nav := NewNavigator(page)

	require.NoError(t, nav.SelectDate(context.Background(), "14"))
	require.Len(t, page.clicks, 2)
	assert.Equal(t, xpCalendarDay("14"), page.clicks[0])
	assert.Equal(t, xpCalendarOK, page.clicks[1])
}

func TestHasReservationsProbe(t *testing.T) {
	page := newScriptedPage()
	nav := NewNavigator(page)

	// Timeout means "no reservations", never an error.
	assert.False(t, nav.HasReservations(context.Background()))

	page.visible[selReservationItem] = true
	assert.True(t, nav.HasReservations(context.Background()))
}

func TestOpenStoreListingRetriesFlakyClick(t *testing.T) {
	page := newScriptedPage()
	page.failClicks[xpStoreListing] = 2
	nav := NewNavigator(page)

	err := nav.OpenStoreListing(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, page.clickCounts[xpStoreListing])
}

func TestExpandTeamGivesUpAfterBoundedRetries(t *testing.T) {
	page := newScriptedPage()
	page.failClicks[xpTeamChip] = flakyClickAttempts
	nav := NewNavigator(page)

	err := nav.ExpandTeam(context.Background())
	assert.Error(t, err)
	assert.Equal(t, flakyClickAttempts, page.clickCounts[xpTeamChip])
}

func TestOpenCalendarFailsLoudly(t *testing.T) {
	page := newScriptedPage()
	page.failClicks[selDateButton] = 1
	nav := NewNavigator(page)

	// Not a flagged flaky transition, so no retry.
	err := nav.OpenCalendar(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 1, page.clickCounts[selDateButton])
}
