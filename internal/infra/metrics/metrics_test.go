package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"carmarket/config"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics() *Metrics {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "market"

	return New(cfg)
}

func TestMiddleware_RecordsRouteTemplate(t *testing.T) {
	m := newTestMetrics()

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/v1/offers/:id/messages", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/offers/abc/messages", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	got := testutil.ToFloat64(m.requests.WithLabelValues("market", http.MethodGet, "/api/v1/offers/:id/messages", "200"))
	assert.Equal(t, float64(2), got)
}

func TestMiddleware_RecordsRenderedErrorStatus(t *testing.T) {
	m := newTestMetrics()

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "gone")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	got := testutil.ToFloat64(m.requests.WithLabelValues("market", http.MethodGet, "/missing", "404"))
	assert.Equal(t, float64(1), got)
}

func TestDomainCounters(t *testing.T) {
	m := newTestMetrics()

	m.RequestCreated()
	m.OfferSubmitted()
	m.OfferStatusChanged("accepted")
	m.MessagePosted("dealer")
	m.MessagePosted("dealer")
	m.RequestsExpired(3)
	m.NotificationsSent(4, 1)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestsCreated))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.offersSubmitted))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.offerTransitions.WithLabelValues("accepted")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.messagesPosted.WithLabelValues("dealer")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.requestsExpired))
	assert.Equal(t, float64(4), testutil.ToFloat64(m.notificationsSent.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.notificationsSent.WithLabelValues("failure")))
}

func TestHandler_Exposes(t *testing.T) {
	m := newTestMetrics()
	m.RequestCreated()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "carmarket_buyer_requests_created_total 1"))
}
