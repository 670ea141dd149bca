package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Skill metric names
const (
	MetricNameSkillXPGranted    = "skill_xp_granted_total"
	MetricNameSkillLevelUps     = "skill_level_ups_total"
	MetricNameSkillBonusDrops   = "skill_bonus_drops_total"
	MetricNameSkillPlayerLoads  = "skill_player_loads_total"
	MetricNameSkillAdjustments  = "skill_adjustments_total"
	MetricNameSkillLevelReached = "skill_level_reached"
	MetricNameSkillCacheEntries = "skill_cache_entries"
	MetricNameSkillCacheHits    = "skill_cache_hits"
	MetricNameSkillCacheMisses  = "skill_cache_misses"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Skill metric help text
const (
	HelpTextSkillXPGranted    = "Total XP granted by ore breaks"
	HelpTextSkillLevelUps     = "Total number of level ups"
	HelpTextSkillBonusDrops   = "Total number of bonus items dropped"
	HelpTextSkillPlayerLoads  = "Total number of player skill loads"
	HelpTextSkillAdjustments  = "Total number of administrative skill adjustments"
	HelpTextSkillLevelReached = "Distribution of levels reached on level up"
	HelpTextSkillCacheEntries = "Players currently held in the progress cache"
	HelpTextSkillCacheHits    = "Progress cache hits since start"
	HelpTextSkillCacheMisses  = "Progress cache misses since start"
)

// Label names
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelSkill     = "skill"
	LabelItem      = "item"
	LabelOperation = "operation"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// LevelBuckets groups reached levels for the level histogram
var LevelBuckets = []float64{2, 5, 10, 20, 30, 40, 50, 75, 100}

// UnmatchedRoute labels requests that no route matched
const UnmatchedRoute = "unmatched"

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
