package scheduling

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func testClient(url string) *Client {
	c := NewClient(url, "test-key", "svc-1", "staff-1", zap.NewNop())
	return c
}

func TestFetchSlots_OK(t *testing.T) {
	var gotQuery SlotQuery
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected Authorization header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotQuery); err != nil {
			t.Errorf("failed to decode query: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"slots":[{"startTimeMillis":1773478800000},{"startTimeMillis":1773482400000}]}}`))
	}))
	defer srv.Close()

	slots, err := testClient(srv.URL).FetchSlots(context.Background(), SlotQuery{
		Resource:        "room-a",
		Timezone:        "UTC",
		DurationMinutes: 60,
		StartDate:       "2026-03-01",
		EndDate:         "2026-04-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[0].StartTimeMillis != 1773478800000 {
		t.Fatalf("unexpected first slot start %d", slots[0].StartTimeMillis)
	}

	// Fixed identifiers are injected when the query leaves them empty.
	if gotQuery.ServiceID != "svc-1" || gotQuery.StaffID != "staff-1" {
		t.Fatalf("expected injected identifiers, got %+v", gotQuery)
	}
}

func TestFetchSlots_ErrorsListMeansNoAvailability(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors":[{"message":"resource not bookable"}]}`))
	}))
	defer srv.Close()

	slots, err := testClient(srv.URL).FetchSlots(context.Background(), SlotQuery{Resource: "room-a"})
	if err != nil {
		t.Fatalf("protocol errors must not be a hard failure, got %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(slots))
	}
}

func TestFetchSlots_MissingSlotsFieldMeansNoAvailability(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	slots, err := testClient(srv.URL).FetchSlots(context.Background(), SlotQuery{Resource: "room-a"})
	if err != nil {
		t.Fatalf("missing data.slots must not be a hard failure, got %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(slots))
	}
}

func TestFetchSlots_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).FetchSlots(context.Background(), SlotQuery{Resource: "room-a"}); err == nil {
		t.Fatal("expected error for non-success status")
	}
}

func TestFetchSlots_UndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway timeout</html>`))
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).FetchSlots(context.Background(), SlotQuery{Resource: "room-a"}); err == nil {
		t.Fatal("expected error for undecodable body")
	}
}

func TestFetchSlots_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	if _, err := testClient(srv.URL).FetchSlots(context.Background(), SlotQuery{Resource: "room-a"}); err == nil {
		t.Fatal("expected transport error")
	}
}
