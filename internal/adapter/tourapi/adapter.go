package tourapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"FestivalSync/internal/config"
	"FestivalSync/internal/interfaces"
	"FestivalSync/internal/model"
	"FestivalSync/internal/utils/httpclient"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const resultCodeOK = "0000"

// Adapter is the one upstream client: it issues a single GET per Fetch
// against {base_url}/{endpoint}, attaching the fixed identification
// parameters every KorService1 call requires.
type Adapter struct {
	cfg        *config.TourAPIConfig
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *logrus.Logger
}

func NewAdapter(cfg *config.TourAPIConfig, logger *logrus.Logger) interfaces.UpstreamClient {
	rps := cfg.RateLimit
	if rps <= 0 {
		rps = 10
	}
	return &Adapter{
		cfg:        cfg,
		httpClient: httpclient.NewHTTPClient(cfg, logger),
		limiter:    rate.NewLimiter(rate.Limit(rps), rps),
		logger:     logger,
	}
}

// Fetch performs one upstream call. Empty param values are dropped so
// optional filters (areaCode and friends) can be passed through unchecked.
func (a *Adapter) Fetch(ctx context.Context, endpoint string, params map[string]string) (*model.ResponseBody, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}

	q := url.Values{}
	q.Set("serviceKey", a.cfg.ServiceKey)
	q.Set("MobileOS", a.cfg.MobileOS)
	q.Set("MobileApp", a.cfg.MobileApp)
	q.Set("_type", "json")
	for k, v := range params {
		if v != "" {
			q.Set(k, v)
		}
	}

	reqURL := fmt.Sprintf("%s/%s?%s", a.cfg.BaseURL, endpoint, q.Encode())
	a.logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"params":   params,
	}).Debug("tour api request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &TransportError{
			Endpoint: endpoint,
			Err:      fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var parsed model.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		// Auth and quota refusals come back as XML regardless of _type=json.
		return nil, &DecodeError{Endpoint: endpoint, Err: err}
	}

	if code := parsed.Response.Header.ResultCode; code != "" && code != resultCodeOK {
		return nil, &TransportError{
			Endpoint: endpoint,
			Err:      fmt.Errorf("result code %s: %s", code, parsed.Response.Header.ResultMsg),
		}
	}

	return &parsed.Response.Body, nil
}

// IsUpstreamError reports whether err came from the upstream boundary, as
// opposed to a caller-side parameter problem.
func IsUpstreamError(err error) bool {
	var te *TransportError
	var de *DecodeError
	return errors.As(err, &te) || errors.As(err, &de)
}
