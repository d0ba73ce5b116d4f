package service

import (
	"regexp"
	"strings"

	"FestivalSync/internal/model"
)

const (
	insecureScheme = "http://"
	secureScheme   = "https://"
)

// lineBreakTag matches the <br> variants the upstream embeds in free-text
// fields.
var lineBreakTag = regexp.MustCompile(`(?i)<br\s*/?>`)

// SanitizeRecord normalizes one record in place: image URLs are rewritten to
// https and line-break markup in the free-text fields becomes a single space.
// Absent fields are no-ops and a second pass changes nothing.
func SanitizeRecord(r *model.FestivalRecord) {
	r.FirstImage = secureURL(r.FirstImage)
	r.FirstImage2 = secureURL(r.FirstImage2)

	r.UseTimeFestival = stripLineBreaks(r.UseTimeFestival)
	r.PlayTime = stripLineBreaks(r.PlayTime)
	r.Tel = stripLineBreaks(r.Tel)
	r.Sponsor1Tel = stripLineBreaks(r.Sponsor1Tel)
}

// SanitizeRecords applies SanitizeRecord across a slice.
func SanitizeRecords(records []model.FestivalRecord) {
	for i := range records {
		SanitizeRecord(&records[i])
	}
}

func secureURL(u string) string {
	if strings.HasPrefix(u, insecureScheme) {
		return secureScheme + strings.TrimPrefix(u, insecureScheme)
	}
	return u
}

func stripLineBreaks(s string) string {
	if s == "" {
		return s
	}
	return lineBreakTag.ReplaceAllString(s, " ")
}
