package metrics

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Collector struct {
	mutex     sync.Mutex
	registry  *prometheus.Registry
	observers []Observer

	SessionsCreated prometheus.Counter
	SessionsRemoved *prometheus.CounterVec

	MachineConfigurations *prometheus.CounterVec
	PlugboardChanges      *prometheus.CounterVec
	EncryptedMessages     prometheus.Counter
	EncryptedCharacters   prometheus.Counter
	EncryptionDurations   prometheus.Histogram

	ReaperRemovals prometheus.Counter
	ReaperErrors   prometheus.Counter

	APIRateLimited prometheus.Counter

	SessionRepositorySize prometheus.Gauge
}

func New() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())

	c := &Collector{
		registry: registry,

		SessionsCreated: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "sessions_created_total",
			Help: "The total number of created machine sessions",
		}),
		SessionsRemoved: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "sessions_removed_total",
			Help: "The total number of removed machine sessions",
		}, []string{"reason"}),
		MachineConfigurations: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "machine_configurations_total",
			Help: "The total number of machine configuration attempts",
		}, []string{"outcome"}),
		PlugboardChanges: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "plugboard_changes_total",
			Help: "The total number of plugboard change attempts",
		}, []string{"op", "outcome"}),
		EncryptedMessages: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "encrypted_messages_total",
			Help: "The total number of encrypted messages",
		}),
		EncryptedCharacters: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "encrypted_characters_total",
			Help: "The total number of key presses processed by machines",
		}),
		EncryptionDurations: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "encryption_duration_seconds",
			Help:    "Duration of message encryption",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		ReaperRemovals: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "reaper_removals_total",
			Help: "The total number of idle sessions removed by reaper",
		}),
		ReaperErrors: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "reaper_errors_total",
			Help: "The total number of errors occurred during reaper runs",
		}),
		APIRateLimited: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "api_rate_limited_total",
			Help: "The total number of API requests rejected by rate limiter",
		}),
		SessionRepositorySize: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "repo_sessions_size",
			Help: "The number of sessions stored in the repository",
		}),
	}
	return c
}

func (c *Collector) GetRegistry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) AddObserver(observer Observer) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.observers = append(c.observers, observer)
}

func (c *Collector) Observe(ctx context.Context) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	for _, observer := range c.observers {
		go observer.Observe(ctx, c)
	}
}
