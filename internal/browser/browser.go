// Package browser launches a controllable Chrome instance via chromedp and
// adapts it to the dashboard page/node capability interfaces.
package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"

	"github.com/ktourstory/reservation-sync/internal/dashboard"
)

const navigateTimeout = 30 * time.Second

// Browser owns a headless Chrome process and its single page. It is held
// exclusively by the orchestrator for the duration of a run.
type Browser struct {
	page        *Page
	cancelCtx   context.CancelFunc
	cancelAlloc context.CancelFunc
}

// Launch starts Chrome and returns a ready browser. The caller must Close it
// regardless of how the run ends.
func Launch(ctx context.Context, headless bool) (*Browser, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancelCtx := chromedp.NewContext(allocCtx)

	// Start the browser process eagerly so launch failures surface here
	// instead of on the first navigation.
	if err := chromedp.Run(browserCtx); err != nil {
		cancelCtx()
		cancelAlloc()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	return &Browser{
		page:        &Page{ctx: browserCtx},
		cancelCtx:   cancelCtx,
		cancelAlloc: cancelAlloc,
	}, nil
}

// Page returns the browser's single controllable page.
func (b *Browser) Page() *Page {
	return b.page
}

// Close tears down the page and the Chrome process.
func (b *Browser) Close() {
	b.cancelCtx()
	b.cancelAlloc()
}

// Page adapts a chromedp tab to the dashboard.Page interface.
type Page struct {
	ctx context.Context
}

var _ dashboard.Page = (*Page)(nil)

// run executes chromedp actions against the tab with a bounded timeout,
// honouring cancellation of the caller's context.
func (p *Page) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithTimeout(p.ctx, timeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()
	return chromedp.Run(runCtx, actions...)
}

// Navigate loads a URL and waits for the page to be ready.
func (p *Page) Navigate(ctx context.Context, url string) error {
	return p.run(ctx, navigateTimeout, chromedp.Navigate(url))
}

// WaitVisible blocks until the selector is visible or the timeout elapses.
func (p *Page) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	return p.run(ctx, timeout, chromedp.WaitVisible(selector, queryOption(selector)))
}

// WaitHidden blocks until the selector is no longer visible.
func (p *Page) WaitHidden(ctx context.Context, selector string, timeout time.Duration) error {
	return p.run(ctx, timeout, chromedp.WaitNotVisible(selector, queryOption(selector)))
}

// Click waits for the first element matching the selector and clicks it.
func (p *Page) Click(ctx context.Context, selector string, timeout time.Duration) error {
	return p.run(ctx, timeout, chromedp.Click(selector, queryOption(selector)))
}

// Fill clears an input and types a value into it.
func (p *Page) Fill(ctx context.Context, selector, value string, timeout time.Duration) error {
	return p.run(ctx, timeout,
		chromedp.Clear(selector, queryOption(selector)),
		chromedp.SendKeys(selector, value, queryOption(selector)),
	)
}

// Evaluate runs a JavaScript expression in the page, discarding the result.
func (p *Page) Evaluate(ctx context.Context, expression string) error {
	return p.run(ctx, 5*time.Second, chromedp.Evaluate(expression, nil))
}

// Nodes waits for at least one match and returns all matched elements in
// document order.
func (p *Page) Nodes(ctx context.Context, selector string, timeout time.Duration) ([]dashboard.Node, error) {
	var nodes []*cdp.Node
	if err := p.run(ctx, timeout, chromedp.Nodes(selector, &nodes, chromedp.ByQueryAll)); err != nil {
		return nil, err
	}

	out := make([]dashboard.Node, len(nodes))
	for i, n := range nodes {
		out[i] = &node{page: p, node: n}
	}
	return out, nil
}

// node scopes element queries to one matched DOM node.
type node struct {
	page *Page
	node *cdp.Node
}

var _ dashboard.Node = (*node)(nil)

// Text returns the text content of the first descendant matching the
// selector, with its own bounded wait.
func (n *node) Text(ctx context.Context, selector string, timeout time.Duration) (string, error) {
	var text string
	err := n.page.run(ctx, timeout,
		chromedp.Text(selector, &text, chromedp.ByQuery, chromedp.FromNode(n.node)),
	)
	if err != nil {
		return "", err
	}
	return text, nil
}

// queryOption picks the chromedp query strategy for a selector. XPath
// selectors are required for text-content matches the dashboard needs.
func queryOption(selector string) chromedp.QueryOption {
	if strings.HasPrefix(selector, "//") {
		return chromedp.BySearch
	}
	return chromedp.ByQuery
}
