package eox

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"eox-sync/core/ciscoapi"
	"eox-sync/core/database"
	"eox-sync/core/reconcile"
	"eox-sync/feature/notifications"
	"eox-sync/feature/products"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testQuery  = "WS-C2960-*"
	pingQuery = "WS-C2960-24TT-L"
)

var fixtureIDs = []string{"WS-C2950G-48-EI-WS", "WS-C2950T-48-SI-WS", "WS-C2950G-24-EI"}

func loadFixture(t *testing.T) string {
	body, err := os.ReadFile("testdata/cisco_eox_response_page_1_of_1.json")
	require.NoError(t, err)
	return string(body)
}

// vendor stands in for the Cisco token endpoint and EoX API.
type vendor struct {
	server      *httptest.Server
	tokenHits   atomic.Int32
	apiHits     atomic.Int32
	rejectToken atomic.Bool
	// api answers query requests; the connectivity check always succeeds.
	api func(w http.ResponseWriter, r *http.Request, page int, query string)
}

func newVendor(t *testing.T, fixture string) *vendor {
	v := &vendor{}
	v.api = func(w http.ResponseWriter, r *http.Request, page int, query string) {
		fmt.Fprint(w, fixture)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		v.tokenHits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if v.rejectToken.Load() {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":"invalid_client","error_description":"Invalid value for 'client_id' parameter."}`)
			return
		}
		fmt.Fprint(w, `{"access_token":"tok","token_type":"Bearer","expires_in":3599}`)
	})
	mux.HandleFunc("/supporttools/eox/rest/5/EOXByProductID/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/supporttools/eox/rest/5/EOXByProductID/")
		var page int
		var query string
		if i := strings.Index(rest, "/"); i > 0 {
			fmt.Sscanf(rest[:i], "%d", &page)
			query = rest[i+1:]
		}
		if query == pingQuery {
			fmt.Fprint(w, fixture)
			return
		}
		v.apiHits.Add(1)
		v.api(w, r, page, query)
	})

	v.server = httptest.NewServer(mux)
	t.Cleanup(v.server.Close)
	return v
}

func (v *vendor) config() ciscoapi.Config {
	return ciscoapi.Config{
		TokenURL:     v.server.URL + "/oauth2/token",
		BaseURL:      v.server.URL,
		ClientID:     "id",
		ClientSecret: "secret",
	}
}

// env wires the real client, stores and orchestrator against a vendor.
type env struct {
	vendor        *vendor
	products      *products.Repository
	notifications *notifications.Repository
	client        *ciscoapi.Client
	reconciler    *Reconciler
	orchestrator  *Orchestrator
}

func newEnv(t *testing.T, archive *Archiver) *env {
	ctx := context.Background()
	log := zap.NewNop()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	e := &env{
		vendor:        newVendor(t, loadFixture(t)),
		products:      products.NewRepository(db),
		notifications: notifications.NewRepository(db),
	}
	require.NoError(t, e.products.Migrate(ctx))
	require.NoError(t, e.notifications.Migrate(ctx))

	cfg := e.vendor.config()
	tokens := ciscoapi.NewTokenProvider(cfg, e.vendor.server.Client(), log)
	e.client = ciscoapi.NewClient(cfg, tokens, e.vendor.server.Client(), log)
	e.reconciler = NewReconciler(tokens, e.client, e.products, archive, log)
	e.orchestrator = NewOrchestrator(e.reconciler, e.client, e.notifications.Publisher(NotificationTitle), log)
	return e
}

func baseConfig() Config {
	return Config{
		APIEnabled:            true,
		PeriodicSyncEnabled:   true,
		AutoCreateNewProducts: true,
		APIQueries:            testQuery,
		Vendor:                "Cisco Systems",
	}
}

func (e *env) productCount(t *testing.T) int64 {
	n, err := e.products.Count(context.Background())
	require.NoError(t, err)
	return n
}

func (e *env) notificationCount(t *testing.T) int64 {
	n, err := e.notifications.Count(context.Background())
	require.NoError(t, err)
	return n
}

func actionTypes(out *Outcome) []reconcile.ActionType {
	var types []reconcile.ActionType
	for _, q := range out.Queries {
		for _, a := range q.Actions {
			types = append(types, a.Type)
		}
	}
	return types
}

// stubReconciler returns fixed results per query.
type stubReconciler struct {
	results map[string]*reconcile.Result
	err     error
	calls   []string
}

func (s *stubReconciler) Reconcile(ctx context.Context, req Request) (*reconcile.Result, error) {
	s.calls = append(s.calls, req.Query)
	if s.err != nil {
		return nil, s.err
	}
	if r, ok := s.results[req.Query]; ok {
		return r, nil
	}
	return &reconcile.Result{Actions: []reconcile.Action{}}, nil
}

// stubNotifier records emitted messages.
type stubNotifier struct {
	messages []string
	errors   []bool
	err      error
}

func (s *stubNotifier) Emit(ctx context.Context, message string, isError bool) error {
	s.messages = append(s.messages, message)
	s.errors = append(s.errors, isError)
	return s.err
}

type stubChecker struct{ err error }

func (s stubChecker) Ping(ctx context.Context) error { return s.err }
