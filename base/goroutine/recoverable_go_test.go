package goroutine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoverableGo(t *testing.T) {
	res := []string{}

	<-RecoverableGo(
		func() {
			res = append(res, "run task")
			panic("panic")
		},
		WithBeforeStart(func() {
			res = append(res, "before start")
		}),
		WithAfterEnded(func() {
			res = append(res, "after ended")
		}),
		WithAfterRecovered(func(p interface{}, stack []byte) {
			res = append(res, "after recovered")
			res = append(res, p.(string))
		}),
	)

	assert.Equal(t, []string{
		"before start",
		"run task",
		"after ended",
		"after recovered",
		"panic",
	}, res)
}

func TestRecoverableGoClosesOnReturn(t *testing.T) {
	ev, ok := <-RecoverableGo(func() {})
	assert.False(t, ok)
	assert.Nil(t, ev)
}

func TestRun(t *testing.T) {
	assert.Nil(t, Run(func() {}))

	ev := Run(func() { panic("boom") })
	if assert.NotNil(t, ev) {
		assert.Equal(t, "boom", ev.Panic)
		assert.NotEmpty(t, ev.Stack)
	}
}
