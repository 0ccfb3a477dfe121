// Package metrics 提供 Prometheus 指标采集功能
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "prd_coach"
)

var (
	// HTTP 请求指标
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)

	HTTPRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_size_bytes",
			Help:      "HTTP request size in bytes",
			Buckets:   prometheus.ExponentialBuckets(100, 10, 6),
		},
		[]string{"method", "path"},
	)

	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "response_size_bytes",
			Help:      "HTTP response size in bytes",
			Buckets:   prometheus.ExponentialBuckets(100, 10, 6),
		},
		[]string{"method", "path"},
	)

	// LLM 指标
	LLMCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "call_duration_seconds",
			Help:      "Completion API call duration in seconds",
			Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"operation", "model"},
	)

	LLMCallTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "call_total",
			Help:      "Total number of completion API calls",
		},
		[]string{"operation", "model", "status"}, // status: ok/rate_limited/quota_exhausted/error
	)

	// 提示词模板指标
	PromptRenderTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "prompt",
			Name:      "render_total",
			Help:      "Prompt template renders by outcome",
		},
		[]string{"prompt", "status"},
	)

	PromptRenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "prompt",
			Name:      "render_duration_seconds",
			Help:      "Prompt template render duration in seconds",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05},
		},
		[]string{"prompt"},
	)

	PromptRenderedChars = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "prompt",
			Name:      "rendered_chars",
			Help:      "Total characters across rendered prompt messages",
			Buckets:   prometheus.ExponentialBuckets(256, 4, 6),
		},
		[]string{"prompt"},
	)

	// 业务指标
	FeedbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "feedback",
			Name:      "requests_total",
			Help:      "Feedback requests by outcome",
		},
		[]string{"outcome"},
	)

	OutlineParseTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "outline",
			Name:      "parse_total",
			Help:      "Outline parse attempts by outcome",
		},
		[]string{"outcome"}, // outcome: parsed/empty_input/prompt_error/upstream_error/malformed
	)

	OutlineSections = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "outline",
			Name:      "sections",
			Help:      "Number of sections extracted from a custom outline",
			Buckets:   []float64{0, 1, 3, 5, 8, 12, 20},
		},
	)

	// 限流指标
	RateLimitRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ratelimit",
			Name:      "rejected_total",
			Help:      "Requests rejected by the inbound rate limiter",
		},
		[]string{"path"},
	)
)
