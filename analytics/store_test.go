package analytics

import (
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "analytics_test.db")

	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func testVisit(visitorID, path, locale string, ts time.Time) *Visit {
	return &Visit{
		VisitorID: visitorID,
		IPHash:    "deadbeef",
		Browser:   "Firefox",
		OS:        "Linux",
		Device:    "Desktop",
		Locale:    locale,
		Path:      path,
		Referrer:  "Direct",
		Timestamp: ts,
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	val, err := s.GetSetting("missing")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if val != "" {
		t.Errorf("missing setting = %q, want empty", val)
	}

	if err := s.SetSetting("hash_salt", "abc"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := s.SetSetting("hash_salt", "def"); err != nil {
		t.Fatalf("SetSetting upsert failed: %v", err)
	}

	val, err = s.GetSetting("hash_salt")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if val != "def" {
		t.Errorf("setting = %q, want %q", val, "def")
	}
}

func TestSaveVisitAndGetStats(t *testing.T) {
	s := setupTestStore(t)
	now := time.Now().UTC()

	visits := []*Visit{
		testVisit("visitor-1", "/en/blog/first", "en", now),
		testVisit("visitor-1", "/en/blog/second", "en", now),
		testVisit("visitor-2", "/en/blog/first", "en", now),
		testVisit("visitor-3", "/fa/blog/first", "fa", now),
	}
	for _, v := range visits {
		if err := s.SaveVisit(v); err != nil {
			t.Fatalf("SaveVisit failed: %v", err)
		}
	}

	stats, err := s.GetStats(now.AddDate(0, 0, -1), now.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}

	if stats.TotalViews != 4 {
		t.Errorf("TotalViews = %d, want 4", stats.TotalViews)
	}
	if stats.UniqueVisitors != 3 {
		t.Errorf("UniqueVisitors = %d, want 3", stats.UniqueVisitors)
	}
	if len(stats.TopPages) == 0 || stats.TopPages[0].Path != "/en/blog/first" {
		t.Errorf("TopPages[0] should be /en/blog/first, got %+v", stats.TopPages)
	}
	if len(stats.LocaleStats) != 2 {
		t.Errorf("LocaleStats count = %d, want 2", len(stats.LocaleStats))
	}
	if stats.LocaleStats[0].Name != "en" || stats.LocaleStats[0].Count != 3 {
		t.Errorf("LocaleStats[0] = %+v, want en/3", stats.LocaleStats[0])
	}
	if len(stats.DailyViews) != 1 {
		t.Errorf("DailyViews count = %d, want 1", len(stats.DailyViews))
	}
}

func TestGetStatsOutsideRange(t *testing.T) {
	s := setupTestStore(t)
	now := time.Now().UTC()

	if err := s.SaveVisit(testVisit("visitor-1", "/en/blog/old", "en", now.AddDate(0, 0, -30))); err != nil {
		t.Fatalf("SaveVisit failed: %v", err)
	}

	stats, err := s.GetStats(now.AddDate(0, 0, -7), now)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}

	if stats.TotalViews != 0 {
		t.Errorf("TotalViews = %d, want 0 for out-of-range visit", stats.TotalViews)
	}
}

func TestRealtimeVisitors(t *testing.T) {
	s := setupTestStore(t)
	now := time.Now().UTC()

	if err := s.SaveVisit(testVisit("recent", "/en/blog/a", "en", now)); err != nil {
		t.Fatalf("SaveVisit failed: %v", err)
	}
	if err := s.SaveVisit(testVisit("stale", "/en/blog/b", "en", now.Add(-time.Hour))); err != nil {
		t.Fatalf("SaveVisit failed: %v", err)
	}

	count, err := s.GetRealtimeVisitors()
	if err != nil {
		t.Fatalf("GetRealtimeVisitors failed: %v", err)
	}
	if count != 1 {
		t.Errorf("realtime visitors = %d, want 1", count)
	}
}

func TestCleanupOldVisits(t *testing.T) {
	s := setupTestStore(t)
	now := time.Now().UTC()

	if err := s.SaveVisit(testVisit("old", "/en/blog/old", "en", now.AddDate(0, 0, -400))); err != nil {
		t.Fatalf("SaveVisit failed: %v", err)
	}
	if err := s.SaveVisit(testVisit("new", "/en/blog/new", "en", now)); err != nil {
		t.Fatalf("SaveVisit failed: %v", err)
	}

	if err := s.CleanupOldVisits(365); err != nil {
		t.Fatalf("CleanupOldVisits failed: %v", err)
	}

	stats, err := s.GetStats(now.AddDate(-2, 0, 0), now.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalViews != 1 {
		t.Errorf("TotalViews = %d after cleanup, want 1", stats.TotalViews)
	}
}
