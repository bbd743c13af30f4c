package datadog

import (
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/rs/zerolog/log"
)

var (
	dogstatsd *statsd.Client
	verbose   bool
)

// InitMetrics sets up the package-level DogStatsD client. When it
// fails, the emit helpers stay nil-safe no-ops so metrics can never
// take the face down.
func InitMetrics(agentAddr, namespace string, tags []string, logFailures bool) {
	var err error
	dogstatsd, err = statsd.New(agentAddr)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to create DogStatsD client")
		return
	}

	dogstatsd.Namespace = namespace
	dogstatsd.Tags = tags
	verbose = logFailures

	log.Info().
		Str("addr", agentAddr).
		Str("namespace", namespace).
		Strs("tags", tags).
		Msg("Datadog metrics initialized")
}

func Gauge(name string, value float64, tags ...string) {
	if dogstatsd != nil {
		err := dogstatsd.Gauge(name, value, tags, 1)
		if err != nil && verbose {
			log.Warn().Err(err).Str("metric", name).Msg("Failed to emit gauge metric")
		}
	}
}

func Count(name string, value int64, tags ...string) {
	if dogstatsd != nil {
		err := dogstatsd.Count(name, value, tags, 1)
		if err != nil && verbose {
			log.Warn().Err(err).Str("metric", name).Msg("Failed to emit count metric")
		}
	}
}

func Timing(name string, value time.Duration, tags ...string) {
	if dogstatsd != nil {
		err := dogstatsd.Timing(name, value, tags, 1)
		if err != nil && verbose {
			log.Warn().Err(err).Str("metric", name).Msg("Failed to emit timing metric")
		}
	}
}
