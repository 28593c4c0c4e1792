package metric

import "time"

type (
	Metrics interface {
		With(labels Labels) Metrics
		Increment(metricName string)
		Count(metricName string, count int)
		Duration(metricName string, duration time.Duration)
	}

	Labels map[string]string
)
