package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Counters(t *testing.T) {
	r := New("styllo")
	r.SummaryComputed()
	r.SummaryComputed()
	r.ClosingRecorded("Matched")
	r.ClosingRecorded("Short")
	r.ClosingRecorded("Short")
	r.ObserveRequest("GET", "/api/caixa/resumo", 200, 15*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.summaries))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.closings.WithLabelValues("Short")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.requests.WithLabelValues("GET", "/api/caixa/resumo", "200")))
}

func TestRegistry_Handler(t *testing.T) {
	r := New("styllo")
	r.ClosingRecorded("Over")

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `styllo_cash_closings_total{status="Over"} 1`))
}
