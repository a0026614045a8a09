//go:build integration

package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

func baseURL() string {
	if v := os.Getenv("NIGHTJAR_TEST_BASE_URL"); strings.TrimSpace(v) != "" {
		return strings.TrimRight(v, "/")
	}
	return "http://127.0.0.1:18080"
}

// TestAssessmentJourneyIntegration drives the full participant flow against a
// running server: register, pull day 1, answer the insomnia gateway question,
// confirm the ISI day unlocks, then advance and reset the journey.
func TestAssessmentJourneyIntegration(t *testing.T) {
	client := &http.Client{Timeout: 5 * time.Second}
	base := baseURL()

	userEmail := fmt.Sprintf("integration_%d@example.com", time.Now().UnixNano())
	password := "Secret123!"

	var registerResp struct {
		Token  string `json:"token"`
		UserID string `json:"user_id"`
	}
	doJSON(t, client, http.MethodPost, base+"/api/auth/register", "", map[string]string{
		"email":    userEmail,
		"password": password,
	}, &registerResp)
	if registerResp.Token == "" || registerResp.UserID == "" {
		t.Fatalf("unexpected register response: %+v", registerResp)
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	doJSON(t, client, http.MethodPost, base+"/api/auth/login", "", map[string]string{
		"email":    userEmail,
		"password": password,
	}, &loginResp)
	token := loginResp.Token
	if token == "" {
		t.Fatalf("login did not return token")
	}

	type scheduleResp struct {
		DayNumber int  `json:"day_number"`
		Unlocked  bool `json:"unlocked"`
		Entries   []struct {
			Question struct {
				ID string `json:"id"`
			} `json:"question"`
		} `json:"entries"`
	}

	var day1 scheduleResp
	doJSON(t, client, http.MethodGet, base+"/api/schedule?day=1", token, nil, &day1)
	if day1.DayNumber != 1 || !day1.Unlocked {
		t.Fatalf("unexpected day 1 schedule: %+v", day1)
	}
	if len(day1.Entries) == 0 || day1.Entries[0].Question.ID != "SL_BEDTIME" {
		t.Fatalf("day 1 does not open with the sleep log")
	}

	var day6 scheduleResp
	doJSON(t, client, http.MethodGet, base+"/api/schedule?day=6", token, nil, &day6)
	if day6.Unlocked {
		t.Fatalf("day 6 unlocked before any gateway answer")
	}

	doJSON(t, client, http.MethodPost, base+"/api/responses", token, map[string]any{
		"question_id":  "3",
		"day_number":   1,
		"string_value": "Yes",
	}, nil)

	var gatewaysResp struct {
		States map[string]struct {
			Triggered bool `json:"triggered"`
		} `json:"gateway_states"`
	}
	doJSON(t, client, http.MethodGet, base+"/api/gateways", token, nil, &gatewaysResp)
	if !gatewaysResp.States["insomnia"].Triggered {
		t.Fatalf("insomnia not triggered after q3=Yes: %+v", gatewaysResp.States)
	}

	doJSON(t, client, http.MethodGet, base+"/api/schedule?day=6", token, nil, &day6)
	if !day6.Unlocked {
		t.Fatalf("day 6 still locked after insomnia triggered")
	}
	isiCount := 0
	for _, e := range day6.Entries {
		if strings.HasPrefix(e.Question.ID, "ISI_") {
			isiCount++
		}
	}
	if isiCount != 7 {
		t.Fatalf("ISI questions on unlocked day 6 = %d, want 7", isiCount)
	}

	var completeResp struct {
		CurrentDay int `json:"current_day"`
	}
	doJSON(t, client, http.MethodPost, base+"/api/journey/complete", token, map[string]int{
		"day_number": 1,
	}, &completeResp)
	if completeResp.CurrentDay != 2 {
		t.Fatalf("pointer after completing day 1 = %d, want 2", completeResp.CurrentDay)
	}

	doJSON(t, client, http.MethodPost, base+"/api/journey/reset", token, nil, nil)
	var progress struct {
		CurrentDay    int   `json:"current_day"`
		CompletedDays []int `json:"completed_days"`
	}
	doJSON(t, client, http.MethodGet, base+"/api/journey", token, nil, &progress)
	if progress.CurrentDay != 1 || len(progress.CompletedDays) != 0 {
		t.Fatalf("journey after reset: %+v", progress)
	}

	doJSON(t, client, http.MethodGet, base+"/api/schedule?day=6", token, nil, &day6)
	if day6.Unlocked {
		t.Fatalf("day 6 still unlocked after reset wiped gateway states")
	}
}

func doJSON(t *testing.T, client *http.Client, method, url, token string, body any, out any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if strings.TrimSpace(token) != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		t.Fatalf("unexpected status %d for %s: %s", resp.StatusCode, url, string(bodyBytes))
	}
	if out != nil {
		decoder := json.NewDecoder(resp.Body)
		if err := decoder.Decode(out); err != nil && err != io.EOF {
			t.Fatalf("decode response from %s: %v", url, err)
		}
	}
}
