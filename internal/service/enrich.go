package service

import (
	"context"

	"FestivalSync/internal/model"

	"golang.org/x/sync/errgroup"
)

const detailEndpoint = "detailIntro1"

// enrichRecord recovers missing period fields with one detail lookup. It is
// lazy: a record with either period field already present is left alone, and
// any failure (transport, decode, empty result) is non-fatal — the record
// keeps its empty fields and renders as the period sentinel later.
func (s *FestivalService) enrichRecord(ctx context.Context, r *model.FestivalRecord) {
	if r.HasPeriod() || r.ContentID == "" {
		return
	}

	body, err := s.client.Fetch(ctx, detailEndpoint, map[string]string{
		"contentId":     r.ContentID,
		"contentTypeId": festivalContentTypeID,
	})
	if err != nil {
		s.logger.WithError(err).WithField("content_id", r.ContentID).Warn("period enrichment failed")
		return
	}
	items := body.Records()
	if len(items) == 0 {
		s.logger.WithField("content_id", r.ContentID).Debug("period enrichment returned no rows")
		return
	}

	r.EventStartDate = items[0].EventStartDate
	r.EventEndDate = items[0].EventEndDate
}

// enrichRecords fans the per-record lookups out across a bounded worker
// group. Each worker writes back through its own index, so the slice keeps
// its input order no matter which lookup finishes first.
func (s *FestivalService) enrichRecords(ctx context.Context, records []model.FestivalRecord) {
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.EnrichConcurrency)
	for i := range records {
		rec := &records[i]
		g.Go(func() error {
			s.enrichRecord(gCtx, rec)
			return nil // enrichment failures never cancel the batch
		})
	}
	_ = g.Wait()
}
