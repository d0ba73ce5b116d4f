package model

import (
	"bytes"
	"encoding/json"
)

// APIResponse is the outer envelope every KorService1 endpoint shares:
// {"response": {"header": {...}, "body": {...}}}.
type APIResponse struct {
	Response struct {
		Header ResponseHeader `json:"header"`
		Body   ResponseBody   `json:"body"`
	} `json:"response"`
}

// ResponseHeader carries the upstream result code. "0000" is success;
// anything else is an application-level refusal (quota, bad key, ...).
type ResponseHeader struct {
	ResultCode string `json:"resultCode"`
	ResultMsg  string `json:"resultMsg"`
}

// ResponseBody is the paged payload section of the envelope.
type ResponseBody struct {
	Items      ItemList `json:"items"`
	NumOfRows  int      `json:"numOfRows"`
	PageNo     int      `json:"pageNo"`
	TotalCount int      `json:"totalCount"`
}

// Records returns the item rows, never nil-panicking on an absent list.
func (b *ResponseBody) Records() []FestivalRecord {
	return b.Items.Item
}

// ItemList wraps the "items" node. The upstream is irregular here: an empty
// result set is serialized as the string "" instead of an object, so a plain
// struct decode would fail on the exact responses that matter most.
type ItemList struct {
	Item RecordList `json:"item"`
}

func (l *ItemList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if isEmptyNode(trimmed) {
		l.Item = nil
		return nil
	}
	type plain ItemList
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return err
	}
	l.Item = p.Item
	return nil
}

// RecordList decodes the "item" node, which may be an array, a bare object
// when exactly one row matched, or missing entirely.
type RecordList []FestivalRecord

func (r *RecordList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if isEmptyNode(trimmed) {
		*r = nil
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var many []FestivalRecord
		if err := json.Unmarshal(trimmed, &many); err != nil {
			return err
		}
		*r = many
		return nil
	}
	var one FestivalRecord
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return err
	}
	*r = RecordList{one}
	return nil
}

func isEmptyNode(trimmed []byte) bool {
	switch string(trimmed) {
	case "", "null", `""`:
		return true
	}
	return false
}
