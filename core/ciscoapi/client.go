package ciscoapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"eox-sync/core/metrics"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	eoxPath     = "/supporttools/eox/rest/5/EOXByProductID"
	breakerName = "cisco-eox"
	// maxErrorBody limits how much of an error response ends up in messages.
	maxErrorBody = 512
)

// Client calls the Cisco EoX API. Requests are rate limited and guarded by
// a circuit breaker.
type Client struct {
	cfg        Config
	httpClient *http.Client
	tokens     *TokenProvider
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[*Page]
	logger     *zap.Logger
}

// NewClient creates a new EoX API client.
func NewClient(cfg Config, tokens *TokenProvider, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout()}
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}
	cooldown := time.Duration(cfg.BreakerCooldownSeconds) * time.Second
	if cooldown <= 0 {
		cooldown = time.Minute
	}

	c := &Client{
		cfg:        cfg,
		httpClient: httpClient,
		tokens:     tokens,
		limiter:    rate.NewLimiter(limit, burst),
		logger:     logger,
	}

	c.breaker = gobreaker.NewCircuitBreaker[*Page](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
			logger.Warn("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
		// Cancellation is not a vendor failure
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	return c
}

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// Pages returns a pager over every page of the query result.
func (c *Client) Pages(query string, token *oauth2.Token) *Pager {
	return &Pager{client: c, query: query, token: token, next: 1}
}

// FetchPage retrieves one page of the EOXByProductID result for query.
// Records carrying an EOXError are dropped from the returned page.
func (c *Client) FetchPage(ctx context.Context, query string, index int, token *oauth2.Token) (*Page, error) {
	page, err := c.breaker.Execute(func() (*Page, error) {
		return c.fetch(ctx, query, index, token)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, NewCallFailed("circuit breaker is open, the Cisco EoX API failed repeatedly", err)
		}
		return nil, err
	}
	return page, nil
}

// PageURL builds the request URL for one page of a query.
func (c *Client) PageURL(query string, index int) string {
	return fmt.Sprintf("%s%s/%d/%s?responseencoding=json",
		strings.TrimRight(c.cfg.BaseURL, "/"), eoxPath, index, url.PathEscape(query))
}

func (c *Client) fetch(ctx context.Context, query string, index int, token *oauth2.Token) (*Page, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, NewCallFailed(fmt.Sprintf("request cancelled: %v", err), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.PageURL(query, index), nil)
	if err != nil {
		return nil, NewCallFailed(fmt.Sprintf("invalid request: %v", err), err)
	}
	req.Header.Set("Accept", "application/json")
	if token != nil {
		token.SetAuthHeader(req)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.APIRequestDuration.WithLabelValues("eox").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APIRequests.WithLabelValues("eox", "error").Inc()
		return nil, NewCallFailed(err.Error(), err)
	}
	defer resp.Body.Close()

	metrics.APIRequests.WithLabelValues("eox", fmt.Sprint(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewCallFailed(fmt.Sprintf("failed to read response: %v", err), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewCallFailed(fmt.Sprintf("HTTP %d: %s", resp.StatusCode, truncate(string(body), maxErrorBody)), nil)
	}

	var decoded Response
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, NewCallFailed(fmt.Sprintf("invalid response body: %v", err), err)
	}

	if decoded.EOXError != nil {
		detail := decoded.EOXError.ErrorDescription
		if detail == "" {
			detail = decoded.EOXError.ErrorID
		}
		return nil, NewCallFailed(detail, nil)
	}

	page := &Page{
		Query:     query,
		Index:     decoded.Pagination.PageIndex,
		LastIndex: decoded.Pagination.LastIndex,
		Records:   make([]Record, 0, len(decoded.Records)),
		Raw:       body,
	}
	if page.Index == 0 {
		page.Index = index
	}

	for _, rec := range decoded.Records {
		if rec.EOXError != nil {
			page.Dropped++
			c.logger.Debug("Dropping record with error",
				zap.String("query", query),
				zap.String("error_id", rec.EOXError.ErrorID),
				zap.String("error", rec.EOXError.ErrorDescription))
			continue
		}
		page.Records = append(page.Records, rec)
	}

	c.logger.Debug("Fetched EoX page",
		zap.String("query", query),
		zap.Int("page", page.Index),
		zap.Int("last_page", page.LastIndex),
		zap.Int("records", len(page.Records)),
		zap.Int("dropped", page.Dropped))

	return page, nil
}

// Ping verifies that the vendor API is reachable with the configured
// credentials. Credential rejections keep their type; every other failure
// is reported as unreachable.
func (c *Client) Ping(ctx context.Context) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		if IsCredentials(err) {
			return err
		}
		return &UnreachableError{Detail: err.Error(), Err: err}
	}

	if _, err := c.FetchPage(ctx, "WS-C2960-24TT-L", 1, token); err != nil {
		return &UnreachableError{Detail: err.Error(), Err: err}
	}
	return nil
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
