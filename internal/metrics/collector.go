// Package metrics exposes Prometheus metrics for the agent gateway: tool
// invocation counts and latencies, policy vetoes, and static agent info.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Collector owns a private Prometheus registry for the agent process.
type Collector struct {
	logger   *logrus.Logger
	registry *prometheus.Registry

	invocationsTotal   *prometheus.CounterVec
	invocationDuration *prometheus.HistogramVec
	blockedTotal       *prometheus.CounterVec
	toolsRegistered    prometheus.Gauge
	agentInfo          *prometheus.GaugeVec
}

// NewCollector builds and registers the agent metrics.
func NewCollector(logger *logrus.Logger, agentName, version, ledger string) *Collector {
	if logger == nil {
		logger = logrus.New()
	}
	registry := prometheus.NewRegistry()

	c := &Collector{
		logger:   logger,
		registry: registry,

		invocationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hedera_agent_tool_invocations_total",
			Help: "Total tool invocations by tool name and result status",
		}, []string{"tool", "status"}),

		invocationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hedera_agent_tool_duration_seconds",
			Help:    "Tool invocation latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"tool"}),

		blockedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hedera_agent_policy_vetoes_total",
			Help: "Invocations blocked by a policy, by policy name",
		}, []string{"policy"}),

		toolsRegistered: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hedera_agent_tools_registered",
			Help: "Number of registered tools",
		}),

		agentInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hedera_agent_info",
			Help: "Agent information",
		}, []string{"agent_name", "version", "ledger"}),
	}

	registry.MustRegister(
		c.invocationsTotal,
		c.invocationDuration,
		c.blockedTotal,
		c.toolsRegistered,
		c.agentInfo,
	)
	c.agentInfo.WithLabelValues(agentName, version, ledger).Set(1)

	logger.Info("Metrics collector initialized")
	return c
}

// SetToolCount records how many tools the registry serves.
func (c *Collector) SetToolCount(n int) {
	c.toolsRegistered.Set(float64(n))
}

// ObserveInvocation records one finished tool invocation. Status is the raw
// result status ("SUCCESS", a network rejection code, or the error sentinel);
// bytes-mode results report "BYTES_RETURNED".
func (c *Collector) ObserveInvocation(tool, status string, duration time.Duration) {
	c.invocationsTotal.WithLabelValues(tool, status).Inc()
	c.invocationDuration.WithLabelValues(tool).Observe(duration.Seconds())
}

// ObserveVeto records a policy block.
func (c *Collector) ObserveVeto(policy string) {
	c.blockedTotal.WithLabelValues(policy).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
