package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordActivityLogged(t *testing.T) {
	before := testutil.ToFloat64(co2eLogged.WithLabelValues("Food"))
	RecordActivityLogged("Food", 2.5)
	RecordActivityLogged("Food", -1) // ignored

	assert.InDelta(t, before+2.5, testutil.ToFloat64(co2eLogged.WithLabelValues("Food")), 1e-9)
}

func TestInstrumentUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Instrument())
	r.GET("/userlog/:page", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/userlog/:page", "200"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/userlog/3", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/userlog/:page", "200")))
}
