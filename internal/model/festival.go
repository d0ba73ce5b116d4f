package model

// NoPeriodInfo is rendered in place of a period field the upstream never
// provided and enrichment could not recover. It is deliberately not an empty
// string so clients can tell "unknown" from "blank".
const NoPeriodInfo = "기간 정보 없음"

// FestivalRecord is one point-of-interest/event row from the tourism API.
// The upstream serializes every field as a string; an empty string means the
// field was absent. ContentID is the only field the pipeline requires — it
// keys both deduplication and enrichment.
type FestivalRecord struct {
	ContentID     string `json:"contentid"`
	ContentTypeID string `json:"contenttypeid,omitempty"`
	Title         string `json:"title,omitempty"`
	Addr1         string `json:"addr1,omitempty"`
	Addr2         string `json:"addr2,omitempty"`
	AreaCode      string `json:"areacode,omitempty"`
	SigunguCode   string `json:"sigungucode,omitempty"`
	MapX          string `json:"mapx,omitempty"` // longitude
	MapY          string `json:"mapy,omitempty"` // latitude
	Dist          string `json:"dist,omitempty"` // meters, only on nearby search rows
	Tel           string `json:"tel,omitempty"`
	FirstImage    string `json:"firstimage,omitempty"`
	FirstImage2   string `json:"firstimage2,omitempty"`

	EventStartDate string `json:"eventstartdate,omitempty"` // YYYYMMDD
	EventEndDate   string `json:"eventenddate,omitempty"`   // YYYYMMDD
	EventPlace     string `json:"eventplace,omitempty"`

	UseTimeFestival string `json:"usetimefestival,omitempty"`
	PlayTime        string `json:"playtime,omitempty"`
	Sponsor1        string `json:"sponsor1,omitempty"`
	Sponsor1Tel     string `json:"sponsor1tel,omitempty"`
	Overview        string `json:"overview,omitempty"`
	Homepage        string `json:"homepage,omitempty"`

	// areaCode1 rows come back through the same envelope with just these two.
	Code string `json:"code,omitempty"`
	Name string `json:"name,omitempty"`
}

// HasPeriod reports whether the record carries at least one period field.
// Enrichment only fires when this is false: a half-filled period is never
// overwritten by a secondary lookup.
func (r *FestivalRecord) HasPeriod() bool {
	return r.EventStartDate != "" || r.EventEndDate != ""
}

// SearchResultItem is the compact projection returned by keyword search.
type SearchResultItem struct {
	Title          string `json:"title"`
	Latitude       string `json:"latitude"`
	Longitude      string `json:"longitude"`
	FirstImage     string `json:"firstimage"`
	EventStartDate string `json:"eventstartdate"`
	EventEndDate   string `json:"eventenddate"`
	Addr1          string `json:"addr1"`
	ContentID      string `json:"contentId"`
}

// ProjectSearchItem flattens a record into the keyword-search shape,
// substituting the period sentinel for fields that stayed empty.
func ProjectSearchItem(r FestivalRecord) SearchResultItem {
	item := SearchResultItem{
		Title:          r.Title,
		Latitude:       r.MapY,
		Longitude:      r.MapX,
		FirstImage:     r.FirstImage,
		EventStartDate: r.EventStartDate,
		EventEndDate:   r.EventEndDate,
		Addr1:          r.Addr1,
		ContentID:      r.ContentID,
	}
	if item.EventStartDate == "" {
		item.EventStartDate = NoPeriodInfo
	}
	if item.EventEndDate == "" {
		item.EventEndDate = NoPeriodInfo
	}
	return item
}
