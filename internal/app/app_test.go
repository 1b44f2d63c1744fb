package app

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/wordpay/internal/callback"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWait_DrainsCallbackQueue() {
	ctx, cancel := context.WithCancel(context.Background())
	s.app.queue = callback.NewQueue(2, 10)
	s.app.startCallbackQueue(ctx)

	done := make(chan struct{}, 3)
	for i := 0; i < 3; i++ {
		s.Require().NoError(s.app.queue.TryEnqueue(func(context.Context) error {
			time.Sleep(10 * time.Millisecond)
			done <- struct{}{}
			return nil
		}))
	}

	cancel()
	s.Require().NoError(s.app.Wait(ctx, cancel))
	s.Len(done, 3)
	s.ErrorIs(s.app.queue.TryEnqueue(func(context.Context) error { return nil }), callback.ErrQueueClosed)
}

func (s *ApplicationSuite) TestCallbackURL() {
	addr := &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 43210}

	s.Equal("http://127.0.0.1:43210/payments/callback", callbackURL("", addr))
	s.Equal("https://pay.example.com/payments/callback", callbackURL("https://pay.example.com", addr))
}

func (s *ApplicationSuite) TestCallbackURL_ResolvesEphemeralPort() {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	defer l.Close()

	url := callbackURL("", l.Addr())
	s.NotContains(url, ":0/")
	s.Contains(url, "/payments/callback")
}
