package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"FestivalSync/internal/config"
	"FestivalSync/internal/interfaces"
	"FestivalSync/internal/model"

	"github.com/sirupsen/logrus"
)

// festivalContentTypeID is the upstream content type for festival/event rows.
const festivalContentTypeID = "15"

const (
	defaultPageSize = 10
	defaultRadius   = "5000"
)

// ErrUnknownRegion means the region-name lookup received a name outside the
// static index. It is a caller error, not an upstream failure.
var ErrUnknownRegion = errors.New("unknown region name")

// FestivalService runs the aggregation pipeline: upstream fetches, sanitize,
// dedupe, enrich, categorize, paginate.
type FestivalService struct {
	client interfaces.UpstreamClient
	cfg    *config.TourAPIConfig
	logger *logrus.Logger
	now    func() time.Time
}

func NewFestivalService(client interfaces.UpstreamClient, cfg *config.TourAPIConfig, logger *logrus.Logger) *FestivalService {
	return &FestivalService{
		client: client,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// ListParams are the festival-list inputs after handler-side parsing.
type ListParams struct {
	EventStartDate string // YYYYMMDD; empty derives Jan 1 of the current year
	AreaCode       string // empty means unfiltered
	Page           int
	PageSize       int
}

// FestivalList is the normalized list response.
type FestivalList struct {
	Items       []model.FestivalRecord `json:"items"`
	TotalCount  int                    `json:"totalCount"`
	CurrentPage int                    `json:"currentPage"`
	HasMore     bool                   `json:"hasMore"`
}

// SearchResult is the keyword-search response in its compact projection.
type SearchResult struct {
	Items       []model.SearchResultItem `json:"items"`
	CurrentPage int                      `json:"currentPage"`
	HasMore     bool                     `json:"hasMore"`
}

// ListFestivals fetches one page of festivals and runs it through the full
// ordering pipeline: sanitize, dedupe, categorize against the current moment.
func (s *FestivalService) ListFestivals(ctx context.Context, p ListParams) (*FestivalList, error) {
	p = normalizeListParams(p, s.now())

	body, err := s.client.Fetch(ctx, "searchFestival1", map[string]string{
		"eventStartDate": p.EventStartDate,
		"areaCode":       p.AreaCode,
		"pageNo":         strconv.Itoa(p.Page),
		"numOfRows":      strconv.Itoa(p.PageSize),
	})
	if err != nil {
		return nil, err
	}

	fetched := body.Records()
	items := make([]model.FestivalRecord, len(fetched))
	copy(items, fetched)

	SanitizeRecords(items)
	items = DedupeRecords(items)
	items = CategorizeRecords(items, s.now())

	return &FestivalList{
		Items:       items,
		TotalCount:  body.TotalCount,
		CurrentPage: p.Page,
		HasMore:     HasMorePages(len(fetched), p.PageSize),
	}, nil
}

// GetIntro returns the introduction detail rows for one content ID.
func (s *FestivalService) GetIntro(ctx context.Context, contentID string) ([]model.FestivalRecord, error) {
	body, err := s.client.Fetch(ctx, detailEndpoint, map[string]string{
		"contentId":     contentID,
		"contentTypeId": festivalContentTypeID,
	})
	if err != nil {
		return nil, err
	}
	items := body.Records()
	SanitizeRecords(items)
	return items, nil
}

// GetCommon returns the common detail for one content ID, recovering the
// period fields through enrichment when the common payload lacks both.
func (s *FestivalService) GetCommon(ctx context.Context, contentID string) ([]model.FestivalRecord, error) {
	body, err := s.client.Fetch(ctx, "detailCommon1", map[string]string{
		"contentId":    contentID,
		"defaultYN":    "Y",
		"firstImageYN": "Y",
		"addrinfoYN":   "Y",
		"overviewYN":   "Y",
	})
	if err != nil {
		return nil, err
	}
	items := body.Records()
	if len(items) > 0 {
		s.enrichRecord(ctx, &items[0])
	}
	SanitizeRecords(items)
	return items, nil
}

// NearbyParams are the location-search inputs. Latitude and longitude are
// validated by the handler; Radius is in meters.
type NearbyParams struct {
	Latitude  string
	Longitude string
	Radius    string
	Page      int
	PageSize  int
}

// SearchNearby lists festivals around a coordinate.
func (s *FestivalService) SearchNearby(ctx context.Context, p NearbyParams) (*FestivalList, error) {
	if p.Radius == "" {
		p.Radius = defaultRadius
	}
	page, pageSize := normalizePage(p.Page, p.PageSize)

	// Upstream axis naming: mapX is longitude, mapY latitude.
	body, err := s.client.Fetch(ctx, "locationBasedList1", map[string]string{
		"mapX":          p.Longitude,
		"mapY":          p.Latitude,
		"radius":        p.Radius,
		"contentTypeId": festivalContentTypeID,
		"pageNo":        strconv.Itoa(page),
		"numOfRows":     strconv.Itoa(pageSize),
	})
	if err != nil {
		return nil, err
	}

	items := body.Records()
	SanitizeRecords(items)

	return &FestivalList{
		Items:       items,
		TotalCount:  body.TotalCount,
		CurrentPage: page,
		HasMore:     HasMorePages(len(items), pageSize),
	}, nil
}

// SearchParams are the keyword-search inputs.
type SearchParams struct {
	Keyword  string
	Page     int
	PageSize int
}

// SearchByKeyword searches festivals by keyword and projects each hit into
// the compact item shape. Hits without period fields get one detail lookup
// each, fanned out across a bounded worker group; hits the lookups cannot
// fill fall back to the period sentinel.
func (s *FestivalService) SearchByKeyword(ctx context.Context, p SearchParams) (*SearchResult, error) {
	page, pageSize := normalizePage(p.Page, p.PageSize)

	body, err := s.client.Fetch(ctx, "searchKeyword1", map[string]string{
		"keyword":       p.Keyword,
		"contentTypeId": festivalContentTypeID,
		"pageNo":        strconv.Itoa(page),
		"numOfRows":     strconv.Itoa(pageSize),
	})
	if err != nil {
		return nil, err
	}

	fetched := body.Records()
	records := make([]model.FestivalRecord, len(fetched))
	copy(records, fetched)

	SanitizeRecords(records)
	records = DedupeRecords(records)
	s.enrichRecords(ctx, records)

	items := make([]model.SearchResultItem, len(records))
	for i, r := range records {
		items[i] = model.ProjectSearchItem(r)
	}

	return &SearchResult{
		Items:       items,
		CurrentPage: page,
		// The heuristic looks at the raw page, not the deduplicated one.
		HasMore: HasMorePages(len(fetched), pageSize),
	}, nil
}

// RegionParams are the region-name search inputs.
type RegionParams struct {
	RegionName string
	Page       int
	PageSize   int
}

// ListByRegion resolves a Korean region name through the static index and
// runs the festival-list pipeline filtered to that area.
func (s *FestivalService) ListByRegion(ctx context.Context, p RegionParams) (*FestivalList, error) {
	code, ok := model.AreaCodeForRegion(p.RegionName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, p.RegionName)
	}
	return s.ListFestivals(ctx, ListParams{
		AreaCode: strconv.Itoa(code),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
}

func normalizeListParams(p ListParams, now time.Time) ListParams {
	if p.EventStartDate == "" {
		// Default window: everything from Jan 1 of the current year.
		p.EventStartDate = fmt.Sprintf("%d0101", now.Year())
	}
	p.Page, p.PageSize = normalizePage(p.Page, p.PageSize)
	return p
}

func normalizePage(page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return page, pageSize
}
