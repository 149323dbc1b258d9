/*Package metrics wraps datadog-go for engine metric recording
Naming convention of metric:
- Internal process time: *.time
- Event counts: *.count
- Amounts: *.amount
*/
package metrics

import (
	"fmt"
	"time"

	"github.com/DataDog/datadog-go/statsd"

	"github.com/x-xyz/gbm/base/env"
	"github.com/x-xyz/gbm/base/log"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)
	BumpTime(key string, tags ...string) Ender
}

type Config struct {
	// DatadogHost empty routes metrics to the debug log.
	DatadogHost string
	DatadogPort int
	Env         string
	App         string
}

type statsCli interface {
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// Metrics prefixes every key with the package name and attaches the
// env/app tags.
type Metrics struct {
	pkgName string
	ddTags  []string
	client  statsCli
}

// New creates a metric client with pkgName as key prefix
func New(pkgName string, cfg Config) (Service, error) {
	var client statsCli = &LogClient{}
	if cfg.DatadogHost != "" {
		port := cfg.DatadogPort
		if port == 0 {
			port = 8125
		}
		addr := fmt.Sprintf("%s:%d", cfg.DatadogHost, port)
		log.Log().WithField("addr", addr).Info("connecting to datadog agent")
		dd, err := statsd.New(addr)
		if err != nil {
			return nil, err
		}
		client = dd
	}
	return newMetrics(pkgName, cfg, client), nil
}

func newMetrics(pkgName string, cfg Config, client statsCli) *Metrics {
	envName := cfg.Env
	if envName == "" {
		envName = env.EnvName()
	}
	ddTags := []string{
		// using host removes all tags associated with host
		// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
		"host:",
		"env:" + envName,
		"app:" + cfg.App,
	}
	if pod := env.PodName(); pod != "" {
		ddTags = append(ddTags, "pod:"+pod)
	}
	return &Metrics{
		pkgName: pkgName,
		ddTags:  ddTags,
		client:  client,
	}
}

func (mt *Metrics) tags(tags []string) []string {
	res := make([]string, len(mt.ddTags), len(mt.ddTags)+len(tags)/2)
	copy(res, mt.ddTags)
	return append(res, parseTag(tags)...)
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	if err := mt.client.Count(mt.pkgName+`.`+key, int64(val), mt.tags(tags), 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpSum"}).Error("Bump fail")
	}
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	if err := mt.client.Histogram(mt.pkgName+`.`+key, val, mt.tags(tags), 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpHistogram"}).Error("Bump fail")
	}
}

// BumpTime starts a timer, End records it:
//
//     defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		start:  time.Now(),
		key:    mt.pkgName + `.` + key,
		tags:   mt.tags(tags),
		client: mt.client,
	}
}

// parseTag turns k1, v1, k2, v2 into k1:v1, k2:v2. A dangling key is
// dropped.
func parseTag(tags []string) []string {
	arr := make([]string, 0, len(tags)/2)
	for i := 0; i+1 < len(tags); i += 2 {
		arr = append(arr, tags[i]+":"+tags[i+1])
	}
	return arr
}

type timeTracker struct {
	start  time.Time
	key    string
	tags   []string
	client statsCli
}

func (t *timeTracker) End() {
	dur := float64(time.Since(t.start)) / float64(time.Millisecond)
	if err := t.client.TimeInMilliseconds(t.key, dur, t.tags, 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": t.key, "val": dur, "func": "BumpTime"}).Error("Bump fail")
	}
}

// LogClient writes metrics to the debug log.
type LogClient struct{}

func (lc *LogClient) Count(name string, value int64, tags []string, rate float64) error {
	log.Log().WithFields(log.Fields{"key": name, "val": value, "tags": tags}).Debug("metric count")
	return nil
}

func (lc *LogClient) Histogram(name string, value float64, tags []string, rate float64) error {
	log.Log().WithFields(log.Fields{"key": name, "val": value, "tags": tags}).Debug("metric histogram")
	return nil
}

func (lc *LogClient) TimeInMilliseconds(name string, value float64, tags []string, rate float64) error {
	log.Log().WithFields(log.Fields{"key": name, "time_ms": value, "tags": tags}).Debug("metric time")
	return nil
}
