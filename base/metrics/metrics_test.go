package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countCall struct {
	name  string
	value int64
	tags  []string
}

type recordingCli struct {
	LogClient
	counts []countCall
	times  []string
}

func (r *recordingCli) Count(name string, value int64, tags []string, rate float64) error {
	r.counts = append(r.counts, countCall{name, value, tags})
	return nil
}

func (r *recordingCli) TimeInMilliseconds(name string, value float64, tags []string, rate float64) error {
	r.times = append(r.times, name)
	return nil
}

func TestBumpSum(t *testing.T) {
	t.Setenv("PODNAME", "")
	cli := &recordingCli{}
	m := newMetrics("gbm", Config{Env: "dev", App: "gbm"}, cli)

	m.BumpSum("event.count", 2, "type", "bid")
	m.BumpSum("event.count", 1, "type", "claim", "dangling")
	m.BumpTime("call.time").End()

	assert.Equal(t, []countCall{
		{"gbm.event.count", 2, []string{"host:", "env:dev", "app:gbm", "type:bid"}},
		{"gbm.event.count", 1, []string{"host:", "env:dev", "app:gbm", "type:claim"}},
	}, cli.counts)
	assert.Equal(t, []string{"gbm.call.time"}, cli.times)
}

func TestNewWithoutAgent(t *testing.T) {
	m, err := New("gbm", Config{})
	assert.NoError(t, err)
	m.BumpHistogram("bid.amount", 12.5)
}

func TestEnvFallback(t *testing.T) {
	t.Setenv("ENV_NAME", "staging")
	t.Setenv("PODNAME", "gbm-0")
	m := newMetrics("gbm", Config{App: "gbm"}, &recordingCli{})
	assert.Equal(t, []string{"host:", "env:staging", "app:gbm", "pod:gbm-0"}, m.ddTags)
}
