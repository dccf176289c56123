package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordRender(t *testing.T) {
	before := testutil.ToFloat64(RendersTotal.WithLabelValues("html"))
	RecordRender("html")
	assert.Equal(t, before+1, testutil.ToFloat64(RendersTotal.WithLabelValues("html")))
}

func TestRecordSync(t *testing.T) {
	okBefore := testutil.ToFloat64(SyncTotal.WithLabelValues("success"))
	failBefore := testutil.ToFloat64(SyncTotal.WithLabelValues("failure"))

	RecordSync(true, 10*time.Millisecond)
	RecordSync(false, 20*time.Millisecond)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(SyncTotal.WithLabelValues("success")))
	assert.Equal(t, failBefore+1, testutil.ToFloat64(SyncTotal.WithLabelValues("failure")))
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/health", "200"))
	RecordHTTPRequest("GET", "/api/health", 200, time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/health", "200")))
}
