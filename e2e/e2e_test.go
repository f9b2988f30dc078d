package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/input"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
)

func TestE2E_CompleteWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "data.db")

	s, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	frames := server.NewFrameBuffer()
	telemetry := server.NewTelemetryHandler()

	srv := server.New(server.Config{
		Store:     s,
		Frames:    frames,
		Telemetry: telemetry,
	})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	client := ts.Client()

	var profileID string

	t.Run("CreateProfile", func(t *testing.T) {
		resp, err := client.Post(
			ts.URL+"/api/profiles",
			"application/json",
			strings.NewReader(`{"name": "workflow", "smoothing": 0.3, "invert_scroll": true}`),
		)
		if err != nil {
			t.Fatalf("create profile error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
		}

		var created struct {
			ID           string  `json:"id"`
			Smoothing    float64 `json:"smoothing"`
			InvertScroll bool    `json:"invert_scroll"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
			t.Fatalf("decode error = %v", err)
		}
		if created.Smoothing != 0.3 || !created.InvertScroll {
			t.Errorf("unexpected profile tuning: %+v", created)
		}
		profileID = created.ID
	})

	// Run the pipeline against a mock camera and detector, driving the
	// pointer through a recorder instead of the OS.
	recorder := input.NewRecorder()

	profile, err := s.Profiles().GetByID(profileID)
	if err != nil {
		t.Fatalf("failed to load created profile: %v", err)
	}

	controlCfg := control.DefaultConfig(1920, 1080)
	controlCfg.Smoothing = profile.Smoothing
	controlCfg.InvertScroll = profile.InvertScroll

	application, err := app.New(app.Config{
		Store:     s,
		ProfileID: profileID,
		Control:   controlCfg,
		Injector:  recorder,
		Frames:    frames,
		Telemetry: telemetry.Publish,
	})
	if err != nil {
		t.Fatalf("app.New() error = %v", err)
	}

	mat := gocv.NewMatWithSize(720, 1280, gocv.MatTypeCV8UC3)
	defer mat.Close()

	mockDetector := detector.NewMockDetector()
	mockDetector.SetHands([]detector.HandLandmarks{detector.PointingHandLandmarks()})

	application.SetCamera(capture.NewMockCamera([]*gocv.Mat{&mat}, true))
	application.SetDetector(mockDetector)

	t.Run("PointerSession", func(t *testing.T) {
		if err := application.Start(); err != nil {
			t.Fatalf("Start() error = %v", err)
		}

		// Drive frames through the controller directly; the gesture sequence
		// is move, pinch (click), release.
		frame := mat.Clone()
		defer frame.Close()

		application.ProcessFrame(&frame, []detector.HandLandmarks{detector.PointingHandLandmarks()})
		application.ProcessFrame(&frame, []detector.HandLandmarks{detector.LeftPinchHandLandmarks()})
		application.ProcessFrame(&frame, []detector.HandLandmarks{detector.PointingHandLandmarks()})

		if len(recorder.Moves()) != 3 {
			t.Errorf("expected 3 pointer moves, got %d", len(recorder.Moves()))
		}
		if len(recorder.Clicks()) != 1 {
			t.Errorf("expected 1 click, got %d", len(recorder.Clicks()))
		}

		application.Stop()
	})

	t.Run("SessionRecorded", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/sessions")
		if err != nil {
			t.Fatalf("list sessions error = %v", err)
		}
		defer resp.Body.Close()

		var listResp struct {
			Sessions []struct {
				ID         string `json:"id"`
				ProfileID  string `json:"profile_id"`
				Frames     int64  `json:"frames"`
				LeftClicks int64  `json:"left_clicks"`
			} `json:"sessions"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
			t.Fatalf("decode error = %v", err)
		}

		if len(listResp.Sessions) != 1 {
			t.Fatalf("expected 1 session, got %d", len(listResp.Sessions))
		}
		if listResp.Sessions[0].ProfileID != profileID {
			t.Errorf("session profile_id = %s, want %s", listResp.Sessions[0].ProfileID, profileID)
		}
		if listResp.Sessions[0].Frames != 3 {
			t.Errorf("session frames = %d, want 3", listResp.Sessions[0].Frames)
		}
		if listResp.Sessions[0].LeftClicks != 1 {
			t.Errorf("session left_clicks = %d, want 1", listResp.Sessions[0].LeftClicks)
		}
	})

	t.Run("StreamServesPublishedFrame", func(t *testing.T) {
		data, seq := frames.Latest()
		if seq == 0 {
			t.Fatal("expected a published frame after the pointer session")
		}
		if len(data) < 2 || data[0] != 0xFF || data[1] != 0xD8 {
			t.Error("published frame is not a JPEG")
		}
	})

	t.Run("APIStillWorks", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/health")
		if err != nil {
			t.Fatalf("health check error = %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("health check failed after app operations")
		}
		resp.Body.Close()
	})
}

func TestE2E_ProfileTuningRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()
	s, err := store.New(filepath.Join(tmpDir, "data.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	srv := server.New(server.Config{Store: s})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	client := ts.Client()

	resp, err := client.Post(
		ts.URL+"/api/profiles",
		"application/json",
		strings.NewReader(`{"name": "tuned"}`),
	)
	if err != nil {
		t.Fatalf("create profile error = %v", err)
	}

	var created struct {
		ID string `json:"id"`
	}
	json.NewDecoder(resp.Body).Decode(&created)
	resp.Body.Close()

	req, _ := http.NewRequest(http.MethodPut, ts.URL+"/api/profiles/"+created.ID,
		strings.NewReader(`{"scroll_sensitivity": 50, "margin": 160}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("update profile error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	resp.Body.Close()

	// The stored tuning must be usable as a controller configuration.
	profile, err := s.Profiles().GetByID(created.ID)
	if err != nil {
		t.Fatalf("failed to load profile: %v", err)
	}

	cfg := control.DefaultConfig(1920, 1080)
	cfg.Smoothing = profile.Smoothing
	cfg.Margin = profile.Margin
	cfg.LeftPinchThreshold = profile.LeftThreshold
	cfg.RightPinchThreshold = profile.RightThreshold
	cfg.ScrollSensitivity = profile.ScrollSensitivity

	if err := cfg.Validate(); err != nil {
		t.Errorf("stored profile produced an invalid controller config: %v", err)
	}
	if cfg.ScrollSensitivity != 50 || cfg.Margin != 160 {
		t.Errorf("tuning not applied: sensitivity=%v margin=%d", cfg.ScrollSensitivity, cfg.Margin)
	}
}
