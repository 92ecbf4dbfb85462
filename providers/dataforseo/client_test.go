package dataforseo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchVolumeLive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		login, password, ok := r.BasicAuth()
		if !ok || login != "test-login" || password != "test-password" {
			t.Errorf("expected basic auth test-login/test-password, got %s/%s", login, password)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected Content-Type 'application/json', got %s", r.Header.Get("Content-Type"))
		}
		if r.URL.Path != "/v3/keywords_data/google_ads/search_volume/live" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		var tasks []SearchVolumeTask
		if err := json.NewDecoder(r.Body).Decode(&tasks); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if len(tasks) != 1 {
			t.Fatalf("expected exactly one task, got %d", len(tasks))
		}
		task := tasks[0]
		if task.LocationCode != 2840 {
			t.Errorf("LocationCode = %d, want 2840", task.LocationCode)
		}
		if !task.SearchPartners {
			t.Error("expected search_partners=true")
		}
		if len(task.Keywords) != 2 {
			t.Errorf("Keywords = %v, want 2 entries", task.Keywords)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status_code": 20000,
			"status_message": "Ok.",
			"tasks": [{"result": [
				{"keyword": "running shoes", "search_volume": 12000, "competition": "MEDIUM", "competition_index": 70, "cpc": 3.5}
			]}]
		}`))
	}))
	defer server.Close()

	client := NewClient("test-login", "test-password").WithBaseURL(server.URL)
	resp, err := client.SearchVolumeLive(context.Background(), SearchVolumeTask{
		LocationCode:   2840,
		Keywords:       []string{"running shoes", "trail shoes"},
		DateFrom:       "2021-08-01",
		SearchPartners: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.StatusCode != StatusOK {
		t.Errorf("StatusCode = %d, want %d", resp.StatusCode, StatusOK)
	}
	if len(resp.Tasks) != 1 || len(resp.Tasks[0].Result) != 1 {
		t.Fatalf("unexpected task shape: %+v", resp.Tasks)
	}

	kw := resp.Tasks[0].Result[0]
	if kw.Keyword == nil || *kw.Keyword != "running shoes" {
		t.Errorf("unexpected keyword result: %+v", kw)
	}
	if kw.SearchVolume == nil || *kw.SearchVolume != 12000 {
		t.Errorf("unexpected search volume: %+v", kw.SearchVolume)
	}
}

func TestSearchVolumeLiveNonSuccessStatusIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status_code": 40101, "status_message": "Authentication failed.", "tasks": []}`))
	}))
	defer server.Close()

	client := NewClient("l", "p").WithBaseURL(server.URL)
	resp, err := client.SearchVolumeLive(context.Background(), SearchVolumeTask{Keywords: []string{"a"}})
	if err != nil {
		t.Fatalf("API-level failures must be returned in the envelope, got error: %v", err)
	}
	if resp.StatusCode != 40101 || resp.StatusMessage != "Authentication failed." {
		t.Errorf("unexpected envelope: %+v", resp)
	}
}

func TestSearchVolumeLiveHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("l", "p").WithBaseURL(server.URL)
	if _, err := client.SearchVolumeLive(context.Background(), SearchVolumeTask{Keywords: []string{"a"}}); err == nil {
		t.Error("expected error for non-2xx HTTP status")
	}
}

func TestSearchVolumeLiveMissingCredentials(t *testing.T) {
	client := NewClient("", "")
	if _, err := client.SearchVolumeLive(context.Background(), SearchVolumeTask{Keywords: []string{"a"}}); err == nil {
		t.Error("expected error when credentials are not set")
	}
}
