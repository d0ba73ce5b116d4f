package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"FestivalSync/internal/model"
)

func TestAreaCodeListSingleFlightUnderConcurrentColdStart(t *testing.T) {
	var fetches int32
	fake := &fakeUpstream{
		fetchFunc: func(context.Context, string, map[string]string) (*model.ResponseBody, error) {
			atomic.AddInt32(&fetches, 1)
			time.Sleep(20 * time.Millisecond) // widen the race window
			return bodyWith(
				model.FestivalRecord{Code: "1", Name: "서울"},
				model.FestivalRecord{Code: "6", Name: "부산"},
			), nil
		},
	}
	svc := NewAreaCodeService(fake, quietLogger())

	const callers = 20
	results := make([][]model.AreaCode, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.List(context.Background())
		}(i)
	}
	wg.Wait()

	if n := atomic.LoadInt32(&fetches); n != 1 {
		t.Errorf("upstream fetches = %d, want 1", n)
	}
	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
		if len(results[i]) != 2 || results[i][0].Code != "1" || results[i][1].Name != "부산" {
			t.Errorf("caller %d got %v", i, results[i])
		}
	}
}

func TestAreaCodeListReusesCacheOnLaterCalls(t *testing.T) {
	fake := &fakeUpstream{
		fetchFunc: func(context.Context, string, map[string]string) (*model.ResponseBody, error) {
			return bodyWith(model.FestivalRecord{Code: "39", Name: "제주"}), nil
		},
	}
	svc := NewAreaCodeService(fake, quietLogger())

	for i := 0; i < 3; i++ {
		codes, err := svc.List(context.Background())
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if len(codes) != 1 || codes[0].Code != "39" {
			t.Fatalf("call %d got %v", i, codes)
		}
	}

	if n := fake.callCount("areaCode1"); n != 1 {
		t.Errorf("upstream fetches = %d, want 1", n)
	}
}

func TestAreaCodeListFailedPopulationIsNotCached(t *testing.T) {
	fail := true
	fake := &fakeUpstream{
		fetchFunc: func(context.Context, string, map[string]string) (*model.ResponseBody, error) {
			if fail {
				return nil, errors.New("upstream down")
			}
			return bodyWith(model.FestivalRecord{Code: "1", Name: "서울"}), nil
		},
	}
	svc := NewAreaCodeService(fake, quietLogger())

	if _, err := svc.List(context.Background()); err == nil {
		t.Fatal("want error on first call")
	}

	fail = false
	codes, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if len(codes) != 1 {
		t.Errorf("second call got %v", codes)
	}
}
