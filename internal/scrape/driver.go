// Package scrape drives pagination: fetch a page, parse it, follow its
// next link, until the page budget runs out or the listing ends.
package scrape

import (
	"context"
	"time"

	"github.com/brogergvhs/langtally/internal/listing"
)

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Delayer pauses between page fetches.
type Delayer interface {
	Delay(d time.Duration)
}

type DelayFunc func(time.Duration)

func (f DelayFunc) Delay(d time.Duration) { f(d) }

// SleepDelayer blocks the calling goroutine; it cannot be interrupted.
var SleepDelayer Delayer = DelayFunc(time.Sleep)

// Observer is told about every parsed page. n is 1-based.
type Observer interface {
	PageFetched(n int, url string, titles, size int)
	Done(pages int)
}

type Driver struct {
	fetcher  Fetcher
	parser   listing.Parser
	delayer  Delayer
	observer Observer
	log      interface{ Debugf(string, ...any) }
}

type Option func(*Driver)

func WithDelayer(d Delayer) Option {
	return func(dr *Driver) { dr.delayer = d }
}

func WithObserver(o Observer) Option {
	return func(dr *Driver) { dr.observer = o }
}

func WithLogger(l interface{ Debugf(string, ...any) }) Option {
	return func(dr *Driver) { dr.log = l }
}

func New(f Fetcher, p listing.Parser, opts ...Option) *Driver {
	d := &Driver{
		fetcher: f,
		parser:  p,
		delayer: SleepDelayer,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// ScrapePages collects titles from up to maxPages pages starting at
// startURL, in fetch order. It stops after the first page without a next
// link and waits delay before each follow-up fetch. A fetch error ends the
// run and the titles gathered so far are dropped.
func (d *Driver) ScrapePages(ctx context.Context, startURL string, maxPages int, delay time.Duration) ([]string, error) {
	var titles []string
	url := startURL
	pages := 0

	for i := 0; i < maxPages; i++ {
		body, err := d.fetcher.Fetch(ctx, url)
		if err != nil {
			d.debugf("page %d: fetch %s failed after %d pages: %v\n", i+1, url, pages, err)
			return nil, err
		}

		page := d.parser.Parse(body)
		titles = append(titles, page.Titles...)
		pages++

		d.debugf("page %d: %s -> %d titles, next=%q\n", i+1, url, len(page.Titles), page.NextURL)
		if d.observer != nil {
			d.observer.PageFetched(i+1, url, len(page.Titles), len(body))
		}

		if !page.HasNext() || i == maxPages-1 {
			break
		}

		url = page.NextURL
		d.delayer.Delay(delay)
	}

	if d.observer != nil {
		d.observer.Done(pages)
	}

	return titles, nil
}

func (d *Driver) debugf(format string, args ...any) {
	if d.log != nil {
		d.log.Debugf(format, args...)
	}
}
