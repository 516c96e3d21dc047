package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RecordProjection(t *testing.T) {
	r := NewRegistry()

	r.RecordProjection("baseline", 2*time.Millisecond, nil)
	r.RecordProjection("baseline", 3*time.Millisecond, nil)
	r.RecordProjection("crisis", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(r.Projections.WithLabelValues("baseline")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.Projections.WithLabelValues("crisis")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ProjectionErrors.WithLabelValues("crisis")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.ProjectionDuration))
}

func TestRegistry_RecordRecommendationAndRequest(t *testing.T) {
	r := NewRegistry()

	r.RecordRecommendation("SAFE", "low")
	r.RecordRequest("/advisor.v1.AdvisorService/Recommend", "OK", time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.Recommendations.WithLabelValues("SAFE", "low")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.RPCRequests.WithLabelValues("/advisor.v1.AdvisorService/Recommend", "OK")))
}

func TestRegistry_Handler(t *testing.T) {
	r := NewRegistry()
	r.RecordRecommendation("DYNAMIC", "high")

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `advisor_recommendations_total{profile="DYNAMIC",risk="high"} 1`)
}
