package ciscoapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"eox-sync/core/metrics"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/sync/singleflight"
)

// TokenProvider obtains bearer tokens through the client-credentials grant.
// Every call to Token performs a fresh grant; concurrent callers share the
// request that is already in flight.
type TokenProvider struct {
	cfg        Config
	httpClient *http.Client
	group      singleflight.Group
	logger     *zap.Logger
}

// NewTokenProvider creates a new token provider.
func NewTokenProvider(cfg Config, httpClient *http.Client, logger *zap.Logger) *TokenProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout()}
	}
	return &TokenProvider{cfg: cfg, httpClient: httpClient, logger: logger}
}

// Token performs the grant and returns the bearer token.
func (p *TokenProvider) Token(ctx context.Context) (*oauth2.Token, error) {
	if !p.cfg.HasCredentials() {
		return nil, &CredentialsError{Detail: "client id and client secret are required"}
	}

	v, err, shared := p.group.Do("token", func() (any, error) {
		return p.fetch(ctx)
	})
	if shared {
		p.logger.Debug("Shared in-flight token request")
	}
	if err != nil {
		return nil, err
	}
	return v.(*oauth2.Token), nil
}

func (p *TokenProvider) fetch(ctx context.Context) (*oauth2.Token, error) {
	cc := clientcredentials.Config{
		ClientID:     p.cfg.ClientID,
		ClientSecret: p.cfg.ClientSecret,
		TokenURL:     p.cfg.TokenURL,
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	start := time.Now()
	tok, err := cc.Token(context.WithValue(ctx, oauth2.HTTPClient, p.httpClient))
	metrics.APIRequestDuration.WithLabelValues("token").Observe(time.Since(start).Seconds())

	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) {
			status := "error"
			if re.Response != nil {
				status = fmt.Sprint(re.Response.StatusCode)
			}
			metrics.APIRequests.WithLabelValues("token", status).Inc()
			p.logger.Warn("Token request rejected", zap.String("status", status), zap.String("error_code", re.ErrorCode))
			return nil, &CredentialsError{Detail: describeRetrieveError(re), Err: err}
		}
		metrics.APIRequests.WithLabelValues("token", "error").Inc()
		p.logger.Warn("Token endpoint unreachable", zap.Error(err))
		return nil, &UnreachableError{Detail: err.Error(), Err: err}
	}

	metrics.APIRequests.WithLabelValues("token", "200").Inc()
	return tok, nil
}

func describeRetrieveError(re *oauth2.RetrieveError) string {
	switch {
	case re.ErrorDescription != "":
		return re.ErrorDescription
	case re.ErrorCode != "":
		return re.ErrorCode
	case re.Response != nil:
		return fmt.Sprintf("token endpoint returned %s", re.Response.Status)
	default:
		return "token request rejected"
	}
}
