package observability

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/docket-run/docket/pkg/domain"
)

// Metrics holds the Prometheus collectors for project processing.
type Metrics struct {
	projectsProcessed prometheus.Counter
	actionsApplied    *prometheus.CounterVec
	processDuration   prometheus.Histogram

	mu     sync.Mutex
	starts map[string]time.Time
}

// NewMetrics creates and registers the collectors on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		projectsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "docket_projects_processed_total",
			Help: "Total number of projects processed",
		}),
		actionsApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "docket_actions_applied_total",
			Help: "Total number of actions applied, by action type",
		}, []string{"action"}),
		processDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "docket_process_duration_seconds",
			Help: "Duration of single-project processing",
		}),
		starts: make(map[string]time.Time),
	}
	reg.MustRegister(m.projectsProcessed, m.actionsApplied, m.processDuration)
	return m
}

// Hooks adapts the collectors to engine lifecycle hooks.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnProjectEnter: func(ctx context.Context, e *domain.ProjectEvent) {
			m.mu.Lock()
			m.starts[e.Project] = time.Now()
			m.mu.Unlock()
		},
		OnProjectLeave: func(ctx context.Context, e *domain.ProjectEvent) {
			m.mu.Lock()
			start, ok := m.starts[e.Project]
			delete(m.starts, e.Project)
			m.mu.Unlock()

			if ok {
				m.processDuration.Observe(time.Since(start).Seconds())
			}
			m.projectsProcessed.Inc()
		},
		OnActionApply: func(ctx context.Context, e *domain.ActionEvent) {
			m.actionsApplied.WithLabelValues(e.Action).Inc()
		},
	}
}
