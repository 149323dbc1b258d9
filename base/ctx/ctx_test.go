package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestWithValue() {
	bg := Background()
	ctx := WithValue(bg, "foo", "bar")
	ts.Equal("bar", ctx.Value("foo"))
}

func (ts *testsuite) TestWithCancel() {
	c, cancel := WithCancel(WithValue(Background(), "foo", "bar"))
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	select {
	case <-c.Done():
	case <-time.After(time.Second):
		ts.Fail("not cancelled")
	}
	ts.ErrorIs(c.Err(), context.Canceled)
	ts.Equal("bar", c.Value("foo"))
}

func (ts *testsuite) TestWithTimeout() {
	c, cancel := WithTimeout(Background(), 10*time.Millisecond)
	defer cancel()
	<-c.Done()
	ts.ErrorIs(c.Err(), context.DeadlineExceeded)
}

func (ts *testsuite) TestFrom() {
	parent := context.WithValue(context.Background(), "foo", "bar")
	c := From(parent)
	ts.Equal("bar", c.Value("foo"))

	bg := WithValue(Background(), "a", "b")
	ts.Equal("b", From(bg).Value("a"))
	ts.Equal(bg.Logger, From(bg).Logger)
}

func (ts *testsuite) TestWithOperation() {
	bg := WithValue(Background(), "a", "b")
	c := WithOperation(bg, "bid", "0xabc")
	ts.Equal("b", c.Value("a"))
	ts.Nil(c.Err())
}
