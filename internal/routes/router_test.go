package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"airport-booking/concourse/internal/api"
	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/config"
	"airport-booking/concourse/internal/constants"
	"airport-booking/concourse/internal/db"
	"airport-booking/concourse/internal/db/dbtest"
	"airport-booking/concourse/internal/metrics"
	"airport-booking/concourse/internal/models/entities"
	gormModels "airport-booking/concourse/internal/models/gorm"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServer struct {
	handler    http.Handler
	orm        *gorm.DB
	fixture    *dbtest.Fixture
	metrics    *metrics.MetricsRegistry
	userToken  string
	adminToken string
}

// envelope mirrors dtos.APIResponse with a raw payload so tests can decode it into views
type envelope struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func setupServer(t *testing.T, rateLimit config.RateLimitConfig) *testServer {
	t.Helper()

	orm := dbtest.Open(t)
	fx := dbtest.Seed(t, orm)
	sqlDB, err := db.WrapSQLX(orm, "sqlite3")
	require.NoError(t, err)

	signer := common.NewTokenSigner([]byte("router-test"), time.Hour, common.NewMemoryTokenStore(time.Minute))
	m := metrics.NewMetricsRegistry(prometheus.NewRegistry())

	deps, err := api.InitDependencies(api.Infra{ORM: orm, SQL: sqlDB, Signer: signer, Metrics: m})
	require.NoError(t, err)

	userToken, err := signer.Issue(fx.User.ID, false)
	require.NoError(t, err)
	adminToken, err := signer.Issue(fx.Admin.ID, true)
	require.NoError(t, err)

	return &testServer{
		handler: RegisterRoutes(deps, RouterConfig{
			CORSOrigins: []string{"http://localhost:8081"},
			RateLimit:   rateLimit,
			UpSince:     time.Now(),
		}),
		orm:        orm,
		fixture:    fx,
		metrics:    m,
		userToken:  userToken.Token,
		adminToken: adminToken.Token,
	}
}

var generousLimit = config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec.Code, env
}

func book(row, seat int, flight uint) map[string]any {
	return map[string]any{"tickets": []map[string]any{{"row": row, "seat": seat, "flight": flight}}}
}

func TestRouter_AnonymousIsRejected(t *testing.T) {
	s := setupServer(t, generousLimit)

	for _, path := range []string{"/api/v1/flights", "/api/v1/orders", "/api/v1/users/me", "/api/v1/airports"} {
		code, env := s.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, code, path)
		assert.Equal(t, constants.MsgAuthRequired, env.Message, path)
	}
}

func TestRouter_MutationsRequireAdmin(t *testing.T) {
	s := setupServer(t, generousLimit)
	body := map[string]any{"name": "Gatwick", "closest_big_city": "London"}

	code, env := s.do(t, http.MethodPost, "/api/v1/airports", s.userToken, body)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, constants.MsgAdminRequired, env.Message)

	// forbidden is decided before the body is looked at
	code, _ = s.do(t, http.MethodPost, "/api/v1/flights", s.userToken, map[string]any{})
	assert.Equal(t, http.StatusForbidden, code)

	code, env = s.do(t, http.MethodPost, "/api/v1/airports", s.adminToken, body)
	require.Equal(t, http.StatusCreated, code)
	var airport struct {
		ID             uint   `json:"id"`
		ClosestBigCity string `json:"closest_big_city"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &airport))
	assert.NotZero(t, airport.ID)
	assert.Equal(t, "London", airport.ClosestBigCity)
}

func TestRouter_ImmutableResourcesReturn405(t *testing.T) {
	s := setupServer(t, generousLimit)
	routePath := fmt.Sprintf("/api/v1/routes/%d", s.fixture.Route.ID)
	airplanePath := fmt.Sprintf("/api/v1/airplanes/%d", s.fixture.Airplane.ID)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPut, routePath},
		{http.MethodPatch, routePath},
		{http.MethodDelete, routePath},
		{http.MethodDelete, airplanePath},
	} {
		code, _ := s.do(t, tc.method, tc.path, s.adminToken, map[string]any{})
		assert.Equal(t, http.StatusMethodNotAllowed, code, tc.method+" "+tc.path)
	}
}

func TestRouter_BookingScenario(t *testing.T) {
	s := setupServer(t, generousLimit)
	flightPath := fmt.Sprintf("/api/v1/flights/%d", s.fixture.Flight.ID)

	type detail struct {
		TicketsAvailable int `json:"tickets_available"`
		TakenPlaces      []struct {
			Row  int `json:"row"`
			Seat int `json:"seat"`
		} `json:"taken_places"`
	}

	code, env := s.do(t, http.MethodGet, flightPath, s.userToken, nil)
	require.Equal(t, http.StatusOK, code)
	var before detail
	require.NoError(t, json.Unmarshal(env.Data, &before))
	assert.Equal(t, 20, before.TicketsAvailable)
	assert.Empty(t, before.TakenPlaces)

	code, env = s.do(t, http.MethodPost, "/api/v1/orders", s.userToken, book(1, 1, s.fixture.Flight.ID))
	require.Equal(t, http.StatusCreated, code, env.Errors)
	var order struct {
		ID      uint `json:"id"`
		Tickets []struct {
			Row    int  `json:"row"`
			Seat   int  `json:"seat"`
			Flight uint `json:"flight"`
		} `json:"tickets"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &order))
	require.Len(t, order.Tickets, 1)
	assert.Equal(t, s.fixture.Flight.ID, order.Tickets[0].Flight)

	code, env = s.do(t, http.MethodGet, flightPath, s.userToken, nil)
	require.Equal(t, http.StatusOK, code)
	var after detail
	require.NoError(t, json.Unmarshal(env.Data, &after))
	assert.Equal(t, 19, after.TicketsAvailable)
	require.Len(t, after.TakenPlaces, 1)
	assert.Equal(t, 1, after.TakenPlaces[0].Row)
	assert.Equal(t, 1, after.TakenPlaces[0].Seat)

	code, env = s.do(t, http.MethodGet, "/api/v1/flights", s.userToken, nil)
	require.Equal(t, http.StatusOK, code)
	var listView []struct {
		ID               uint `json:"id"`
		TicketsAvailable int  `json:"tickets_available"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &listView))
	require.Len(t, listView, 1)
	assert.Equal(t, 19, listView[0].TicketsAvailable)

	assert.Equal(t, float64(1), testutil.ToFloat64(s.metrics.OrdersTotal.WithLabelValues(metrics.OutcomeCreated)))
}

func TestRouter_OrderErrorsAreKeyedByTicket(t *testing.T) {
	s := setupServer(t, generousLimit)
	flightID := s.fixture.Flight.ID
	dbtest.Book(t, s.orm, s.fixture.User.ID, flightID, [2]int{2, 5})

	tests := []struct {
		name     string
		body     any
		wantKey  string
		contains string
	}{
		{name: "empty order", body: map[string]any{"tickets": []any{}}, wantKey: "tickets", contains: constants.MsgEmptyOrder},
		{name: "row out of range", body: book(20, 35, flightID), wantKey: "tickets[0].row", contains: "(1, 2)"},
		{name: "seat out of range", body: book(1, 11, flightID), wantKey: "tickets[0].seat", contains: "(1, 10)"},
		{name: "seat taken", body: book(2, 5, flightID), wantKey: "tickets[0]", contains: constants.MsgSeatAlreadyBooked},
		{name: "unknown flight", body: book(1, 1, 9999), wantKey: "tickets[0].flight"},
		{name: "malformed body", body: "not an object", wantKey: "non_field_errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := s.do(t, http.MethodPost, "/api/v1/orders", s.userToken, tt.body)
			assert.Equal(t, http.StatusBadRequest, code)
			require.Contains(t, env.Errors, tt.wantKey)
			assert.Contains(t, env.Errors[tt.wantKey], tt.contains)
		})
	}

	var orders int64
	require.NoError(t, s.orm.Model(&gormModels.Order{}).Count(&orders).Error)
	assert.Equal(t, int64(1), orders, "failed submissions must not leave orders behind")
}

// Requests are serialized by the single test connection; the second one sees the
// first ticket and gets the seat-taken 400.
func TestRouter_SameSeatFromTwoClients(t *testing.T) {
	s := setupServer(t, generousLimit)
	flightID := s.fixture.Flight.ID

	const callers = 2
	body := mustJSON(t, book(1, 1, flightID))
	codes := make([]int, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewReader(body))
			req.Header.Set("Authorization", "Bearer "+s.userToken)
			rec := httptest.NewRecorder()
			s.handler.ServeHTTP(rec, req)
			codes[i] = rec.Code
		}(i)
	}
	wg.Wait()

	assert.ElementsMatch(t, []int{http.StatusCreated, http.StatusBadRequest}, codes)

	var tickets int64
	require.NoError(t, s.orm.Model(&gormModels.Ticket{}).Where("flight_id = ?", flightID).Count(&tickets).Error)
	assert.Equal(t, int64(1), tickets)
}

func TestRouter_OrdersAreScopedToCaller(t *testing.T) {
	s := setupServer(t, generousLimit)
	dbtest.Book(t, s.orm, s.fixture.User.ID, s.fixture.Flight.ID, [2]int{1, 1}, [2]int{1, 2})

	type page struct {
		Count   int64 `json:"count"`
		Results []struct {
			Tickets []struct {
				Flight struct {
					Route string `json:"route"`
				} `json:"flight"`
			} `json:"tickets"`
		} `json:"results"`
	}

	code, env := s.do(t, http.MethodGet, "/api/v1/orders", s.userToken, nil)
	require.Equal(t, http.StatusOK, code)
	var mine page
	require.NoError(t, json.Unmarshal(env.Data, &mine))
	assert.Equal(t, int64(1), mine.Count)
	require.Len(t, mine.Results, 1)
	require.Len(t, mine.Results[0].Tickets, 2)
	assert.Equal(t, "Boryspil-Heathrow", mine.Results[0].Tickets[0].Flight.Route)

	code, env = s.do(t, http.MethodGet, "/api/v1/orders", s.adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	var theirs page
	require.NoError(t, json.Unmarshal(env.Data, &theirs))
	assert.Equal(t, int64(0), theirs.Count)

	code, _ = s.do(t, http.MethodGet, "/api/v1/orders?page=0", s.userToken, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRouter_UserLifecycle(t *testing.T) {
	s := setupServer(t, generousLimit)

	code, env := s.do(t, http.MethodPost, "/api/v1/users/register", "", map[string]any{
		"email": "Traveller@Example.com", "password": "long-enough", "first_name": "Ada",
	})
	require.Equal(t, http.StatusCreated, code, env.Errors)

	code, env = s.do(t, http.MethodPost, "/api/v1/users/token", "", map[string]any{
		"email": "traveller@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, constants.MsgInvalidCredentials, env.Message)

	code, env = s.do(t, http.MethodPost, "/api/v1/users/token", "", map[string]any{
		"email": "traveller@example.com", "password": "long-enough",
	})
	require.Equal(t, http.StatusOK, code)
	var token struct {
		Access string `json:"access"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &token))

	code, env = s.do(t, http.MethodGet, "/api/v1/users/me", token.Access, nil)
	require.Equal(t, http.StatusOK, code)
	var me struct {
		Email   string `json:"email"`
		IsStaff bool   `json:"is_staff"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "traveller@example.com", me.Email)
	assert.False(t, me.IsStaff)

	code, _ = s.do(t, http.MethodPost, "/api/v1/users/logout", token.Access, nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = s.do(t, http.MethodGet, "/api/v1/users/me", token.Access, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestRouter_AuthEndpointsAreRateLimited(t *testing.T) {
	s := setupServer(t, config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1})
	creds := map[string]any{"email": "nobody@example.com", "password": "whatever1"}

	code, _ := s.do(t, http.MethodPost, "/api/v1/users/token", "", creds)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = s.do(t, http.MethodPost, "/api/v1/users/token", "", creds)
	assert.Equal(t, http.StatusTooManyRequests, code)

	// authenticated routes are not limited
	for i := 0; i < 3; i++ {
		code, _ = s.do(t, http.MethodGet, "/api/v1/flights", s.userToken, nil)
		assert.Equal(t, http.StatusOK, code)
	}
}

func TestRouter_NotFound(t *testing.T) {
	s := setupServer(t, generousLimit)

	code, env := s.do(t, http.MethodGet, "/api/v1/flights/9999", s.userToken, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, string(constants.APIStatusError), env.Status)

	code, _ = s.do(t, http.MethodGet, "/api/v1/nothing-here", s.userToken, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRouter_FlightFilterValidation(t *testing.T) {
	s := setupServer(t, generousLimit)

	code, env := s.do(t, http.MethodGet, "/api/v1/flights?departure_date=tomorrow", s.userToken, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, constants.MsgInvalidDate, env.Errors["departure_date"])

	date := dbtest.Tomorrow().Format(constants.DateLayout)
	code, env = s.do(t, http.MethodGet, "/api/v1/flights?from=kyiv&departure_date="+date, s.userToken, nil)
	require.Equal(t, http.StatusOK, code)
	var list []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)
}

func TestRouter_HealthCheck(t *testing.T) {
	s := setupServer(t, generousLimit)

	req := httptest.NewRequest(http.MethodGet, "/healthCheck", nil)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var health entities.HealthCheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "ok", health.Services["database"].Status)
	assert.Equal(t, "disabled", health.Services["redis"].Status)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}
