package service

import (
	"testing"

	"FestivalSync/internal/model"
)

func TestDedupeRecordsKeepsFirstOccurrence(t *testing.T) {
	in := []model.FestivalRecord{
		{ContentID: "100", Title: "first"},
		{ContentID: "200", Title: "second"},
		{ContentID: "100", Title: "duplicate of first"},
		{ContentID: "300", Title: "third"},
		{ContentID: "200", Title: "duplicate of second"},
	}

	out := DedupeRecords(in)

	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	wantIDs := []string{"100", "200", "300"}
	for i, want := range wantIDs {
		if out[i].ContentID != want {
			t.Errorf("out[%d].ContentID = %q, want %q", i, out[i].ContentID, want)
		}
	}
	if out[0].Title != "first" {
		t.Errorf("kept record = %q, want the first occurrence", out[0].Title)
	}
}

func TestDedupeRecordsPassesEmptyIDsThrough(t *testing.T) {
	in := []model.FestivalRecord{
		{ContentID: "", Title: "no id a"},
		{ContentID: "100"},
		{ContentID: "", Title: "no id b"},
		{ContentID: "100"},
	}

	out := DedupeRecords(in)

	if len(out) != 3 {
		t.Fatalf("len = %d, want 3 (empty ids are never deduplicated)", len(out))
	}
	if out[0].Title != "no id a" || out[2].Title != "no id b" {
		t.Errorf("empty-id records lost or reordered: %+v", out)
	}
}

func TestDedupeRecordsEmptyInput(t *testing.T) {
	if out := DedupeRecords(nil); len(out) != 0 {
		t.Errorf("DedupeRecords(nil) = %v, want empty", out)
	}
}
