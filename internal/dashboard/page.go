// Package dashboard drives the booking dashboard UI and extracts reservation
// records from its rendered state.
//
// All DOM access goes through the Page and Node capability interfaces so the
// navigation and extraction logic never depends on a concrete automation
// library and can be unit-tested against fixture trees.
package dashboard

import (
	"context"
	"time"
)

// Page is the capability surface required from a browser page: bounded
// visibility waits, clicks, text fills, script evaluation and node listing.
type Page interface {
	Navigate(ctx context.Context, url string) error
	WaitVisible(ctx context.Context, selector string, timeout time.Duration) error
	WaitHidden(ctx context.Context, selector string, timeout time.Duration) error
	Click(ctx context.Context, selector string, timeout time.Duration) error
	Fill(ctx context.Context, selector, value string, timeout time.Duration) error
	Evaluate(ctx context.Context, expression string) error
	Nodes(ctx context.Context, selector string, timeout time.Duration) ([]Node, error)
}

// Node is one matched DOM element. Text resolves a labeled field relative to
// the node with its own short bounded wait.
type Node interface {
	Text(ctx context.Context, selector string, timeout time.Duration) (string, error)
}
