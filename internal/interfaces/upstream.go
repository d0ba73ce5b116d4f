package interfaces

import (
	"context"

	"FestivalSync/internal/model"
)

// UpstreamClient performs one labeled call against the tourism data provider.
// endpoint is the bare operation name (e.g. "searchFestival1"); params are
// the endpoint-specific query values. Fixed identification parameters and the
// response timeout are the implementation's concern. A nil error guarantees a
// decoded body, though the body's item list may still be empty.
type UpstreamClient interface {
	Fetch(ctx context.Context, endpoint string, params map[string]string) (*model.ResponseBody, error)
}
