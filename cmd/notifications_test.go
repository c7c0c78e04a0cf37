package cmd

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"accessctl/internal/client"
	"accessctl/internal/mockserver"
)

func TestWatchUnread(t *testing.T) {
	srv := httptest.NewServer(mockserver.New(nil).Handler())
	defer srv.Close()

	quiet := logrus.New()
	quiet.SetLevel(logrus.PanicLevel)
	api := client.New(client.ClientConfig{BaseURL: srv.URL, Logger: quiet})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var counts []int
	err := watchUnread(ctx, api, 10*time.Millisecond, func(n int, err error) {
		if err != nil {
			t.Errorf("poll error: %v", err)
		}
		counts = append(counts, n)
		if len(counts) == 3 {
			cancel()
		}
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("watchUnread() error = %v, want context.Canceled", err)
	}
	if len(counts) != 3 {
		t.Fatalf("got %d polls, want 3", len(counts))
	}
	for _, n := range counts {
		if n != 7 {
			t.Errorf("unread = %d, want 7", n)
		}
	}
}
