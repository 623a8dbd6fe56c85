package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/mhollis/gardenshare/internal/handler"
)

func TestIntegration_LoginPlanCompleteStatsLogout(t *testing.T) {
	identity, watering := newTestServices(t)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, identity, watering, false)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("create cookie jar: %v", err)
	}
	client := &http.Client{Jar: jar}

	postJSON := func(path string, payload any) *http.Response {
		t.Helper()
		body, _ := json.Marshal(payload)
		resp, err := client.Post(srv.URL+path, "application/json", bytes.NewReader(body))
		if err != nil {
			t.Fatalf("POST %s: %v", path, err)
		}
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	// 1. Sign in; first login creates the account and sets the cookie.
	resp := postJSON("/api/auth/login", map[string]string{
		"email": "integ@example.com",
		"name":  "Integration Gardener",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}
	var loginBody struct {
		User struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&loginBody); err != nil {
		t.Fatalf("decode login body: %v", err)
	}
	if loginBody.User.ID == "" {
		t.Fatal("expected a user id from login")
	}

	// 2. The session is live.
	resp, err = client.Get(srv.URL + "/api/auth/me")
	if err != nil {
		t.Fatalf("GET /api/auth/me: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", resp.StatusCode)
	}

	// 3. Plan tomorrow, then log a watering for today.
	resp = postJSON("/api/calendar/"+relativeDate(1)+"/plan", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("plan: expected 200, got %d", resp.StatusCode)
	}
	resp = postJSON("/api/calendar/"+relativeDate(0)+"/complete", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("complete: expected 200, got %d", resp.StatusCode)
	}

	// 4. The activity feed has both actions, newest first.
	resp, err = client.Get(srv.URL + "/api/activity")
	if err != nil {
		t.Fatalf("GET /api/activity: %v", err)
	}
	var activityBody struct {
		Activities []struct {
			Action   string `json:"action"`
			UserName string `json:"userName"`
		} `json:"activities"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&activityBody); err != nil {
		t.Fatalf("decode activity body: %v", err)
	}
	resp.Body.Close()
	if len(activityBody.Activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(activityBody.Activities))
	}
	if activityBody.Activities[0].Action != "completed" || activityBody.Activities[1].Action != "planned" {
		t.Fatalf("expected [completed, planned], got %+v", activityBody.Activities)
	}
	if activityBody.Activities[0].UserName != "Integration Gardener" {
		t.Fatalf("expected resolved user name, got %q", activityBody.Activities[0].UserName)
	}

	// 5. Statistics reflect the completion and a one-day streak.
	resp, err = client.Get(srv.URL + "/api/stats")
	if err != nil {
		t.Fatalf("GET /api/stats: %v", err)
	}
	var statsBody struct {
		UserStats []struct {
			Name           string `json:"name"`
			TotalCompleted int    `json:"totalCompleted"`
			Streak         int    `json:"streak"`
		} `json:"userStats"`
		TotalWaterings int `json:"totalWaterings"`
		ActiveUsers    int `json:"activeUsers"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&statsBody); err != nil {
		t.Fatalf("decode stats body: %v", err)
	}
	resp.Body.Close()
	if statsBody.TotalWaterings != 1 || statsBody.ActiveUsers != 1 {
		t.Fatalf("unexpected totals %+v", statsBody)
	}
	if len(statsBody.UserStats) != 1 || statsBody.UserStats[0].TotalCompleted != 1 || statsBody.UserStats[0].Streak != 1 {
		t.Fatalf("unexpected user stats %+v", statsBody.UserStats)
	}

	// 6. Dashboard counters.
	resp, err = client.Get(srv.URL + "/api/dashboard")
	if err != nil {
		t.Fatalf("GET /api/dashboard: %v", err)
	}
	var dashBody struct {
		WeekCompleted int `json:"weekCompleted"`
		Planned       int `json:"planned"`
		Completed     int `json:"completed"`
		Gardeners     int `json:"gardeners"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&dashBody); err != nil {
		t.Fatalf("decode dashboard body: %v", err)
	}
	resp.Body.Close()
	if dashBody.Completed != 1 || dashBody.Planned != 1 || dashBody.WeekCompleted != 1 || dashBody.Gardeners != 1 {
		t.Fatalf("unexpected dashboard %+v", dashBody)
	}

	// 7. Logout invalidates the session.
	resp = postJSON("/api/auth/logout", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("logout: expected 204, got %d", resp.StatusCode)
	}
	resp, err = client.Get(srv.URL + "/api/auth/me")
	if err != nil {
		t.Fatalf("GET /api/auth/me after logout: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("me after logout: expected 401, got %d", resp.StatusCode)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	identity, watering := newTestServices(t)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, identity, watering, false)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	body := bytes.NewReader([]byte(`{"email":"","name":"Rosa"}`))
	resp, err := http.Post(srv.URL+"/api/auth/login", "application/json", body)
	if err != nil {
		t.Fatalf("POST /api/auth/login: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}
