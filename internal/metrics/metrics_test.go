// Bookrec - Book Recommendation Service
// Copyright 2026 Bookrec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bookrec/bookrec

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/recommend", "200"))

	RecordAPIRequest("GET", "/recommend", "200", 25*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/recommend", "200"))
	if after != before+1 {
		t.Errorf("counter = %v, want %v", after, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	base := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != base+1 {
		t.Errorf("active gauge = %v, want %v", got, base+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != base {
		t.Errorf("active gauge = %v, want %v", got, base)
	}
}

func TestRecordRecommendationOutcomes(t *testing.T) {
	servedBefore := testutil.ToFloat64(RecommendQueriesTotal.WithLabelValues(OutcomeServed))
	noMatchBefore := testutil.ToFloat64(RecommendQueriesTotal.WithLabelValues(OutcomeNoMatch))

	RecordRecommendation(OutcomeServed, 5)
	RecordRecommendation(OutcomeNoMatch, 0)
	RecordRecommendation(OutcomeNotReady, 0)

	if got := testutil.ToFloat64(RecommendQueriesTotal.WithLabelValues(OutcomeServed)); got != servedBefore+1 {
		t.Errorf("served counter = %v", got)
	}
	if got := testutil.ToFloat64(RecommendQueriesTotal.WithLabelValues(OutcomeNoMatch)); got != noMatchBefore+1 {
		t.Errorf("no_match counter = %v", got)
	}
}

func TestRecommendResultsHistogramOnlyOnServed(t *testing.T) {
	var before dto.Metric
	if err := RecommendResultsReturned.Write(&before); err != nil {
		t.Fatal(err)
	}

	RecordRecommendation(OutcomeNotReady, 0)

	var after dto.Metric
	if err := RecommendResultsReturned.Write(&after); err != nil {
		t.Fatal(err)
	}
	if after.GetHistogram().GetSampleCount() != before.GetHistogram().GetSampleCount() {
		t.Error("histogram observed for not_ready outcome")
	}

	RecordRecommendation(OutcomeServed, 3)
	if err := RecommendResultsReturned.Write(&after); err != nil {
		t.Fatal(err)
	}
	if after.GetHistogram().GetSampleCount() != before.GetHistogram().GetSampleCount()+1 {
		t.Error("histogram not observed for served outcome")
	}
}

func TestSetCatalogState(t *testing.T) {
	SetCatalogState(true, 271360, 50)

	if got := testutil.ToFloat64(CatalogLoaded); got != 1 {
		t.Errorf("loaded gauge = %v, want 1", got)
	}
	if got := testutil.ToFloat64(CatalogTitles); got != 271360 {
		t.Errorf("titles gauge = %v", got)
	}
	if got := testutil.ToFloat64(CatalogTopBooks); got != 50 {
		t.Errorf("top books gauge = %v", got)
	}

	SetCatalogState(false, 0, 0)
	if got := testutil.ToFloat64(CatalogLoaded); got != 0 {
		t.Errorf("loaded gauge = %v, want 0", got)
	}
}
