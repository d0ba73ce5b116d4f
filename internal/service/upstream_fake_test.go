package service

import (
	"context"
	"io"
	"sync"
	"time"

	"FestivalSync/internal/config"
	"FestivalSync/internal/model"

	"github.com/sirupsen/logrus"
)

// fakeUpstream is a function-field test double for the upstream client. It
// records every endpoint it is asked for so tests can assert on call counts.
type fakeUpstream struct {
	mu        sync.Mutex
	calls     []string
	fetchFunc func(ctx context.Context, endpoint string, params map[string]string) (*model.ResponseBody, error)
}

func (f *fakeUpstream) Fetch(ctx context.Context, endpoint string, params map[string]string) (*model.ResponseBody, error) {
	f.mu.Lock()
	f.calls = append(f.calls, endpoint)
	f.mu.Unlock()
	if f.fetchFunc != nil {
		return f.fetchFunc(ctx, endpoint, params)
	}
	return &model.ResponseBody{}, nil
}

func (f *fakeUpstream) callCount(endpoint string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == endpoint {
			n++
		}
	}
	return n
}

func bodyWith(records ...model.FestivalRecord) *model.ResponseBody {
	return &model.ResponseBody{
		Items:      model.ItemList{Item: records},
		TotalCount: len(records),
	}
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestService(fake *fakeUpstream, now time.Time) *FestivalService {
	cfg := &config.TourAPIConfig{EnrichConcurrency: 4}
	svc := NewFestivalService(fake, cfg, quietLogger())
	svc.now = func() time.Time { return now }
	return svc
}
