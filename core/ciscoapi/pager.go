package ciscoapi

import (
	"context"
	"errors"

	"golang.org/x/oauth2"
)

// ErrNoMorePages is returned by Pager.Next after the last page or an error.
var ErrNoMorePages = errors.New("ciscoapi: no more pages")

// Pager walks the pages of one query in order, fetching each page only
// when it is requested.
type Pager struct {
	client *Client
	query  string
	token  *oauth2.Token
	next   int
	done   bool
}

// Next fetches the next page. After the last page, or after any error,
// it returns ErrNoMorePages.
func (p *Pager) Next(ctx context.Context) (*Page, error) {
	if p.done {
		return nil, ErrNoMorePages
	}

	page, err := p.client.FetchPage(ctx, p.query, p.next, p.token)
	if err != nil {
		p.done = true
		return nil, err
	}

	requested := p.next
	p.next++
	// The requested index bounds the walk; the echoed PageIndex is not trusted.
	if page.Last() || requested >= page.LastIndex || len(page.Records)+page.Dropped == 0 {
		p.done = true
	}
	return page, nil
}

// Done reports whether the pager is exhausted.
func (p *Pager) Done() bool {
	return p.done
}
