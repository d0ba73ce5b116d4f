package service

import "FestivalSync/internal/model"

// DedupeRecords collapses duplicate content IDs, keeping the first occurrence
// and its position. Records without a content ID cannot be keyed and pass
// through untouched — they are never deduplicated against each other.
func DedupeRecords(records []model.FestivalRecord) []model.FestivalRecord {
	if len(records) == 0 {
		return records
	}
	seen := make(map[string]struct{}, len(records))
	out := make([]model.FestivalRecord, 0, len(records))
	for _, r := range records {
		if r.ContentID == "" {
			out = append(out, r)
			continue
		}
		if _, dup := seen[r.ContentID]; dup {
			continue
		}
		seen[r.ContentID] = struct{}{}
		out = append(out, r)
	}
	return out
}
