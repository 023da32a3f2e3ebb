package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewManagerRegistersOnCustomRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewManager(
		WithPrometheusRegistry(reg),
		WithNamespace("test"),
		WithSubsystem("balancer"),
	)
	if m == nil {
		t.Fatal("manager is nil")
	}

	m.jobsSubmitted.Inc()
	m.balanceScore.Observe(0.25)
	m.httpRequests.WithLabelValues("balance", "POST", "200").Inc()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if len(families) == 0 {
		t.Fatal("no metric families registered")
	}

	found := map[string]bool{}
	for _, f := range families {
		found[f.GetName()] = true
	}
	for _, want := range []string{
		"test_balancer_jobs_submitted_total",
		"test_balancer_balance_score",
		"test_balancer_http_requests_total",
	} {
		if !found[want] {
			t.Errorf("expected metric %s to be registered", want)
		}
	}
}

func TestGlobalHelpersDoNotPanic(t *testing.T) {
	RecordJobSubmitted()
	RecordJobCompleted()
	RecordJobFailed()
	RecordJobRejected()
	ObserveBalanceScore(0.5)
	ObserveBalanceDuration(12)
	ObserveSwapPasses(3)
	UpdateQueueSize(1)
	UpdateQueueCapacity(100)
	UpdateQueueUtilization(0.01)
	RecordEnqueue()
	RecordDequeue()
	UpdateWorkerActiveCount(4)
	UpdateResultsStored(2)
	RecordHTTPRequest("jobs", "POST", "202")
	RecordHTTPRequestDuration("jobs", "POST", "202", 3)
}
