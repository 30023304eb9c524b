package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordDigestLoad(t *testing.T) {
	before := testutil.ToFloat64(DigestLoadTotal.WithLabelValues("not_found"))
	RecordDigestLoad("not_found", 0.01)
	assert.Equal(t, before+1, testutil.ToFloat64(DigestLoadTotal.WithLabelValues("not_found")))
}

func TestRecordCache(t *testing.T) {
	hits := testutil.ToFloat64(CacheRequestsTotal.WithLabelValues("digest_index", "hit"))
	misses := testutil.ToFloat64(CacheRequestsTotal.WithLabelValues("digest_index", "miss"))

	RecordCacheHit("digest_index")
	RecordCacheMiss("digest_index")
	RecordCacheMiss("digest_index")

	assert.Equal(t, hits+1, testutil.ToFloat64(CacheRequestsTotal.WithLabelValues("digest_index", "hit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(CacheRequestsTotal.WithLabelValues("digest_index", "miss")))
}

func TestRecordNavigationDegraded(t *testing.T) {
	before := testutil.ToFloat64(NavigationDegradedTotal)
	RecordNavigationDegraded()
	assert.Equal(t, before+1, testutil.ToFloat64(NavigationDegradedTotal))
}
