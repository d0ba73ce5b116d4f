package tourapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"FestivalSync/internal/config"

	"github.com/sirupsen/logrus"
)

func newTestAdapter(baseURL string) *Adapter {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.TourAPIConfig{
		BaseURL:    baseURL,
		ServiceKey: "test-key",
		MobileOS:   "AND",
		MobileApp:  "MyApp",
		Timeout:    5,
		RateLimit:  100,
	}
	return NewAdapter(cfg, logger).(*Adapter)
}

func TestFetchAttachesIdentificationParams(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"response":{"header":{"resultCode":"0000","resultMsg":"OK"},"body":{"items":"","totalCount":0}}}`))
	}))
	defer srv.Close()

	adapter := newTestAdapter(srv.URL)
	body, err := adapter.Fetch(context.Background(), "searchFestival1", map[string]string{
		"eventStartDate": "20240101",
		"areaCode":       "", // empty optional params must be dropped
	})
	if err != nil {
		t.Fatal(err)
	}
	if body.TotalCount != 0 || len(body.Records()) != 0 {
		t.Errorf("body = %+v", body)
	}

	want := map[string]string{
		"serviceKey":     "test-key",
		"MobileOS":       "AND",
		"MobileApp":      "MyApp",
		"_type":          "json",
		"eventStartDate": "20240101",
	}
	for k, v := range want {
		if got := gotQuery[k]; len(got) != 1 || got[0] != v {
			t.Errorf("query[%q] = %v, want %q", k, got, v)
		}
	}
	if _, ok := gotQuery["areaCode"]; ok {
		t.Error("empty areaCode was sent upstream")
	}
}

func TestFetchNonSuccessStatusIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestAdapter(srv.URL).Fetch(context.Background(), "searchFestival1", nil)
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("err = %v, want TransportError", err)
	}
	if te.Endpoint != "searchFestival1" {
		t.Errorf("endpoint = %q", te.Endpoint)
	}
}

func TestFetchNonJSONBodyIsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Auth refusals come back as XML regardless of _type=json.
		w.Write([]byte(`<OpenAPI_ServiceResponse><cmmMsgHeader>SERVICE KEY IS NOT REGISTERED</cmmMsgHeader></OpenAPI_ServiceResponse>`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(srv.URL).Fetch(context.Background(), "areaCode1", nil)
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want DecodeError", err)
	}
}

func TestFetchUpstreamResultCodeIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":{"header":{"resultCode":"22","resultMsg":"LIMITED NUMBER OF SERVICE REQUESTS EXCEEDS"},"body":{"items":"","totalCount":0}}}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(srv.URL).Fetch(context.Background(), "searchKeyword1", nil)
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("err = %v, want TransportError", err)
	}
	if !IsUpstreamError(err) {
		t.Error("IsUpstreamError = false")
	}
}
