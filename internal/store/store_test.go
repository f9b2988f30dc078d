package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func TestNew(t *testing.T) {
	s := newTestStore(t)

	if s.DB() == nil {
		t.Fatal("expected non-nil database connection")
	}
}

func TestProfileCRUD(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	p := DefaultProfile(uuid.New().String(), "precision")
	p.Smoothing = 0.15
	p.InvertScroll = true

	if err := repo.Create(p); err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}

	got, err := repo.GetByID(p.ID)
	if err != nil {
		t.Fatalf("failed to get profile: %v", err)
	}
	if got.Name != "precision" {
		t.Errorf("expected name 'precision', got %q", got.Name)
	}
	if got.Smoothing != 0.15 {
		t.Errorf("expected smoothing 0.15, got %v", got.Smoothing)
	}
	if !got.InvertScroll {
		t.Error("expected invert_scroll to survive a round trip")
	}
	if got.Margin != 120 || got.LeftThreshold != 0.035 || got.RightThreshold != 0.04 {
		t.Errorf("unexpected defaults: margin=%d left=%v right=%v",
			got.Margin, got.LeftThreshold, got.RightThreshold)
	}

	byName, err := repo.GetByName("precision")
	if err != nil {
		t.Fatalf("failed to get profile by name: %v", err)
	}
	if byName.ID != p.ID {
		t.Errorf("expected ID %q, got %q", p.ID, byName.ID)
	}

	p.Name = "relaxed"
	p.ScrollSensitivity = 20
	if err := repo.Update(p); err != nil {
		t.Fatalf("failed to update profile: %v", err)
	}

	got, err = repo.GetByID(p.ID)
	if err != nil {
		t.Fatalf("failed to get updated profile: %v", err)
	}
	if got.Name != "relaxed" || got.ScrollSensitivity != 20 {
		t.Errorf("update not persisted: name=%q sensitivity=%v", got.Name, got.ScrollSensitivity)
	}

	if err := repo.Delete(p.ID); err != nil {
		t.Fatalf("failed to delete profile: %v", err)
	}

	if _, err := repo.GetByID(p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestProfileNotFound(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	if _, err := repo.GetByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByName("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := repo.Update(DefaultProfile("missing", "ghost")); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on update, got %v", err)
	}
	if err := repo.Delete("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on delete, got %v", err)
	}
}

func TestProfileList(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	for _, name := range []string{"one", "two", "three"} {
		if err := repo.Create(DefaultProfile(uuid.New().String(), name)); err != nil {
			t.Fatalf("failed to create profile %q: %v", name, err)
		}
	}

	profiles, err := repo.List()
	if err != nil {
		t.Fatalf("failed to list profiles: %v", err)
	}
	if len(profiles) != 3 {
		t.Errorf("expected 3 profiles, got %d", len(profiles))
	}
}

func TestProfileNameUnique(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	if err := repo.Create(DefaultProfile(uuid.New().String(), "dup")); err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
	if err := repo.Create(DefaultProfile(uuid.New().String(), "dup")); err == nil {
		t.Error("expected error creating profile with duplicate name")
	}
}

func TestSettings(t *testing.T) {
	s := newTestStore(t)
	repo := s.Settings()

	if _, err := repo.Get("camera_index"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unset key, got %v", err)
	}

	if err := repo.Set("camera_index", "1"); err != nil {
		t.Fatalf("failed to set setting: %v", err)
	}

	got, err := repo.Get("camera_index")
	if err != nil {
		t.Fatalf("failed to get setting: %v", err)
	}
	if got != "1" {
		t.Errorf("expected '1', got %q", got)
	}

	// Set on an existing key replaces the value.
	if err := repo.Set("camera_index", "2"); err != nil {
		t.Fatalf("failed to overwrite setting: %v", err)
	}
	got, err = repo.Get("camera_index")
	if err != nil {
		t.Fatalf("failed to get overwritten setting: %v", err)
	}
	if got != "2" {
		t.Errorf("expected '2', got %q", got)
	}

	if err := repo.Delete("camera_index"); err != nil {
		t.Fatalf("failed to delete setting: %v", err)
	}
	if _, err := repo.Get("camera_index"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestStore(t)

	profile := DefaultProfile(uuid.New().String(), "default")
	if err := s.Profiles().Create(profile); err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}

	repo := s.Sessions()
	sess := &Session{ID: uuid.New().String(), ProfileID: profile.ID}
	if err := repo.Create(sess); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	got, err := repo.GetByID(sess.ID)
	if err != nil {
		t.Fatalf("failed to get session: %v", err)
	}
	if got.EndedAt != nil {
		t.Error("expected open session to have no end time")
	}
	if got.ProfileID != profile.ID {
		t.Errorf("expected profile ID %q, got %q", profile.ID, got.ProfileID)
	}

	if err := repo.Finish(sess.ID, 1800, 12, 3, 40); err != nil {
		t.Fatalf("failed to finish session: %v", err)
	}

	got, err = repo.GetByID(sess.ID)
	if err != nil {
		t.Fatalf("failed to get finished session: %v", err)
	}
	if got.EndedAt == nil {
		t.Fatal("expected finished session to have an end time")
	}
	if got.Frames != 1800 || got.LeftClicks != 12 || got.RightClicks != 3 || got.ScrollEvents != 40 {
		t.Errorf("counters not persisted: frames=%d left=%d right=%d scroll=%d",
			got.Frames, got.LeftClicks, got.RightClicks, got.ScrollEvents)
	}

	if err := repo.Finish("missing", 0, 0, 0, 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound finishing unknown session, got %v", err)
	}
}

func TestSessionSurvivesProfileDelete(t *testing.T) {
	s := newTestStore(t)

	profile := DefaultProfile(uuid.New().String(), "doomed")
	if err := s.Profiles().Create(profile); err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}

	sess := &Session{ID: uuid.New().String(), ProfileID: profile.ID}
	if err := s.Sessions().Create(sess); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	if err := s.Profiles().Delete(profile.ID); err != nil {
		t.Fatalf("failed to delete profile: %v", err)
	}

	got, err := s.Sessions().GetByID(sess.ID)
	if err != nil {
		t.Fatalf("expected session to survive profile delete: %v", err)
	}
	if got.ProfileID != "" {
		t.Errorf("expected profile reference cleared, got %q", got.ProfileID)
	}
}

func TestSessionList(t *testing.T) {
	s := newTestStore(t)
	repo := s.Sessions()

	for i := 0; i < 3; i++ {
		if err := repo.Create(&Session{ID: uuid.New().String()}); err != nil {
			t.Fatalf("failed to create session: %v", err)
		}
	}

	sessions, err := repo.List()
	if err != nil {
		t.Fatalf("failed to list sessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Errorf("expected 3 sessions, got %d", len(sessions))
	}
}
