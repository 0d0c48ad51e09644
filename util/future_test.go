package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFutureWait(t *testing.T) {
	rq := require.New(t)

	release := make(chan struct{})
	f := Go(func() (int, error) {
		<-release
		return 42, nil
	})
	rq.False(f.Resolved())

	close(release)
	v, err := f.Wait()
	rq.NoError(err)
	rq.Equal(42, v)
	rq.True(f.Resolved())

	// Waiting again returns the same result.
	v, err = f.Wait()
	rq.NoError(err)
	rq.Equal(42, v)
}

func TestFutureError(t *testing.T) {
	rq := require.New(t)

	boom := errors.New("boom")
	f := Go(func() (string, error) { return "", boom })
	<-f.Done()
	_, err := f.Wait()
	rq.ErrorIs(err, boom)
}

func TestTern(t *testing.T) {
	rq := require.New(t)
	rq.Equal("a", Tern(true, "a", "b"))
	rq.Equal(2, Tern(false, 1, 2))
}
