package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Skill Metrics
var (
	SkillXPGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSkillXPGranted,
			Help: HelpTextSkillXPGranted,
		},
		[]string{LabelSkill},
	)

	SkillLevelUps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSkillLevelUps,
			Help: HelpTextSkillLevelUps,
		},
		[]string{LabelSkill},
	)

	SkillLevelReached = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameSkillLevelReached,
			Help:    HelpTextSkillLevelReached,
			Buckets: LevelBuckets,
		},
		[]string{LabelSkill},
	)

	SkillBonusDrops = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSkillBonusDrops,
			Help: HelpTextSkillBonusDrops,
		},
		[]string{LabelItem},
	)

	SkillPlayerLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSkillPlayerLoads,
			Help: HelpTextSkillPlayerLoads,
		},
		[]string{LabelSkill},
	)

	SkillAdjustments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSkillAdjustments,
			Help: HelpTextSkillAdjustments,
		},
		[]string{LabelSkill, LabelOperation},
	)
)

// Cache Metrics, refreshed by the cache stats job
var (
	SkillCacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameSkillCacheEntries,
			Help: HelpTextSkillCacheEntries,
		},
		[]string{LabelSkill},
	)

	SkillCacheHits = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameSkillCacheHits,
			Help: HelpTextSkillCacheHits,
		},
		[]string{LabelSkill},
	)

	SkillCacheMisses = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameSkillCacheMisses,
			Help: HelpTextSkillCacheMisses,
		},
		[]string{LabelSkill},
	)
)
