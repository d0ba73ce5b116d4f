package service

import (
	"context"
	"sync"

	"FestivalSync/internal/interfaces"
	"FestivalSync/internal/model"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// AreaCodeService serves the static area-code reference table. The table is
// fetched lazily on first use and then held for the process lifetime — there
// is no refresh path, which is an accepted staleness risk for data that
// changes on the order of years.
type AreaCodeService struct {
	client interfaces.UpstreamClient
	logger *logrus.Logger

	group singleflight.Group
	mu    sync.RWMutex
	table []model.AreaCode
}

func NewAreaCodeService(client interfaces.UpstreamClient, logger *logrus.Logger) *AreaCodeService {
	return &AreaCodeService{
		client: client,
		logger: logger,
	}
}

// List returns the cached table, populating it on first call. Concurrent
// cold-start callers share one upstream fetch and all receive its result.
func (s *AreaCodeService) List(ctx context.Context) ([]model.AreaCode, error) {
	s.mu.RLock()
	table := s.table
	s.mu.RUnlock()
	if table != nil {
		return table, nil
	}

	v, err, _ := s.group.Do("areaCode1", func() (interface{}, error) {
		// Re-check under the flight: a previous flight may have landed
		// between the fast path and Do.
		s.mu.RLock()
		cached := s.table
		s.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		body, err := s.client.Fetch(ctx, "areaCode1", map[string]string{
			"numOfRows": "50",
		})
		if err != nil {
			return nil, err
		}

		rows := body.Records()
		fetched := make([]model.AreaCode, 0, len(rows))
		for _, row := range rows {
			if row.Code == "" {
				continue
			}
			fetched = append(fetched, model.AreaCode{Code: row.Code, Name: row.Name})
		}

		s.mu.Lock()
		s.table = fetched
		s.mu.Unlock()
		s.logger.WithField("count", len(fetched)).Info("area code table populated")
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.AreaCode), nil
}
