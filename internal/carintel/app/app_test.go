package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Vlok123/carintel/internal/pkg/config"
	"github.com/Vlok123/carintel/pkg/logger"
)

type fakeServer struct {
	startErr error
	shutdown chan struct{}
}

func (f *fakeServer) Start(ctx context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}

	<-ctx.Done()

	return nil
}

func (f *fakeServer) Shutdown(_ context.Context) error {
	close(f.shutdown)

	return nil
}

func TestRunReturnsOnStartError(t *testing.T) {
	fs := &fakeServer{
		startErr: errors.New("listen tcp :80: bind: permission denied"),
		shutdown: make(chan struct{}),
	}

	ca := CarIntelApp{
		s:   fs,
		lg:  logger.NewNop(),
		cfg: config.Config{},
	}

	done := make(chan struct{})

	go func() {
		ca.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after server start failure")
	}

	select {
	case <-fs.shutdown:
	default:
		t.Fatal("Run exited without shutting the server down")
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	fs := &fakeServer{shutdown: make(chan struct{})}

	ca := CarIntelApp{
		s:   fs,
		lg:  logger.NewNop(),
		cfg: config.Config{},
	}

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})

	go func() {
		ca.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after context cancellation")
	}

	select {
	case <-fs.shutdown:
	default:
		t.Fatal("server was not shut down")
	}
}
