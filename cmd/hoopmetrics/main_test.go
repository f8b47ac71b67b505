package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/hoopmetrics/internal/config"
	"github.com/verte-zerg/hoopmetrics/internal/entry"
	"github.com/verte-zerg/hoopmetrics/internal/model"
	"github.com/verte-zerg/hoopmetrics/internal/session"
	"github.com/verte-zerg/hoopmetrics/internal/store"
)

func setupCLI(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return filepath.Join(t.TempDir(), "hoop.db")
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestAddHistoryRemove(t *testing.T) {
	db := setupCLI(t)
	if _, err := runCLI(t, "add", "--db", db, "--made", "7", "--attempted", "10", "--type", "3pt", "--date", "2025-02-01", "--location", "Rec Center"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := runCLI(t, "add", "--db", db, "--made", "5", "--attempted", "10", "--date", "2025-03-01"); err != nil {
		t.Fatalf("add: %v", err)
	}

	out, err := runCLI(t, "history", "--db", db)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "Rec Center") || !strings.Contains(out, "70.0%") {
		t.Fatalf("unexpected history output:\n%s", out)
	}
	if strings.Index(out, "Mar 1, 2025") > strings.Index(out, "Feb 1, 2025") {
		t.Fatalf("expected newest first:\n%s", out)
	}

	out, err = runCLI(t, "history", "--db", db, "--search", "rec")
	if err != nil {
		t.Fatalf("history search: %v", err)
	}
	if strings.Contains(out, "Mar 1, 2025") {
		t.Fatalf("search did not filter:\n%s", out)
	}

	if _, err := runCLI(t, "remove", "--db", db, "0"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	out, err = runCLI(t, "export", "--db", db)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var got []model.Session
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode export: %v\n%s", err, out)
	}
	if len(got) != 1 || got[0].Date != "2025-03-01" || got[0].ShotType != model.ShotTwo {
		t.Fatalf("unexpected remaining sessions %+v", got)
	}
}

func TestAddValidationError(t *testing.T) {
	db := setupCLI(t)
	_, err := runCLI(t, "add", "--db", db, "--made", "11", "--attempted", "10")
	if !errors.Is(err, entry.ErrMadeExceedsAttempted) {
		t.Fatalf("expected ErrMadeExceedsAttempted, got %v", err)
	}
}

func TestRemoveOutOfRange(t *testing.T) {
	db := setupCLI(t)
	_, err := runCLI(t, "remove", "--db", db, "3")
	if !errors.Is(err, session.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestCompareOutput(t *testing.T) {
	db := setupCLI(t)
	if _, err := runCLI(t, "add", "--db", db, "--made", "5", "--attempted", "10"); err != nil {
		t.Fatalf("add: %v", err)
	}
	out, err := runCLI(t, "compare", "--db", db, "--sort", "percentage")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	for _, want := range []string{"Your NBA Rankings", "#5 of 16", "YOU (You)", "FG% v"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestCompareSortsByPercentageByDefault(t *testing.T) {
	db := setupCLI(t)
	if _, err := runCLI(t, "add", "--db", db, "--made", "5", "--attempted", "10"); err != nil {
		t.Fatalf("add: %v", err)
	}
	out, err := runCLI(t, "compare", "--db", db)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if !strings.Contains(out, "FG% v") {
		t.Fatalf("expected FG%% descending marker in output:\n%s", out)
	}
	if strings.Contains(out, "Career Points v") {
		t.Fatalf("unexpected career points sort in output:\n%s", out)
	}
}

func TestStatsShowsLastSaved(t *testing.T) {
	db := setupCLI(t)
	out, err := runCLI(t, "stats", "--db", db)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if strings.Contains(out, "Last saved") {
		t.Fatalf("unexpected save time on empty db:\n%s", out)
	}
	if _, err := runCLI(t, "add", "--db", db, "--made", "3", "--attempted", "4", "--type", "ft"); err != nil {
		t.Fatalf("add: %v", err)
	}
	out, err = runCLI(t, "stats", "--db", db)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	for _, want := range []string{"FT%: 75.0% (3/4)", "Last saved:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestStatsRecentZeroHidesTrend(t *testing.T) {
	db := setupCLI(t)
	for _, made := range []string{"3", "5", "7"} {
		if _, err := runCLI(t, "add", "--db", db, "--made", made, "--attempted", "10"); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	out, err := runCLI(t, "stats", "--db", db, "--recent", "0")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if strings.Contains(out, "Recent Sessions") {
		t.Fatalf("expected no trend for --recent 0:\n%s", out)
	}
	out, err = runCLI(t, "stats", "--db", db, "--recent", "2")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !strings.Contains(out, "Recent Sessions (2)") {
		t.Fatalf("expected two-session trend:\n%s", out)
	}
}

func TestCompareRejectsUnknownSort(t *testing.T) {
	db := setupCLI(t)
	if _, err := runCLI(t, "compare", "--db", db, "--sort", "height"); err == nil {
		t.Fatalf("expected error for unknown sort column")
	}
}

func TestSeedAndReset(t *testing.T) {
	db := setupCLI(t)
	if _, err := runCLI(t, "seed", "--db", db, "--count", "6"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	out, err := runCLI(t, "export", "--db", db, "--format", "yaml")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if strings.Count(out, "shotsAttempted:") != 6 {
		t.Fatalf("expected 6 sessions in yaml:\n%s", out)
	}
	if _, err := runCLI(t, "reset", "--db", db); err == nil {
		t.Fatalf("expected reset without --yes to fail")
	}
	if _, err := runCLI(t, "reset", "--db", db, "--yes"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	out, err = runCLI(t, "export", "--db", db)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Fatalf("expected empty export, got %q", out)
	}
}

func TestConfigOverridesDefaultType(t *testing.T) {
	db := setupCLI(t)
	cfgPath := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(cfgPath, []byte("[session]\ntype = \"ft\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := runCLI(t, "add", "--db", db, "--made", "8", "--attempted", "10"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := runCLI(t, "add", "--db", db, "--made", "1", "--attempted", "2", "--type", "3pt"); err != nil {
		t.Fatalf("add: %v", err)
	}
	out, err := runCLI(t, "export", "--db", db)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var got []model.Session
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].ShotType != model.ShotFree || got[1].ShotType != model.ShotThree {
		t.Fatalf("unexpected shot types %+v", got)
	}
}

func TestConfigStorageKey(t *testing.T) {
	db := setupCLI(t)
	cfgPath := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(cfgPath, []byte("[storage]\nkey = \"practiceLog\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := runCLI(t, "add", "--db", db, "--made", "4", "--attempted", "8"); err != nil {
		t.Fatalf("add: %v", err)
	}
	out, err := runCLI(t, "stats", "--db", db)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !strings.Contains(out, "Last saved") {
		t.Fatalf("expected save time for custom key:\n%s", out)
	}

	kv, err := store.Open(db)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()
	data, err := kv.Get(ctx, "practiceLog")
	if err != nil {
		t.Fatalf("get custom key: %v", err)
	}
	var saved []model.Session
	if err := json.Unmarshal(data, &saved); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(saved) != 1 || saved[0].ShotsMade != 4 {
		t.Fatalf("unexpected saved sessions %+v", saved)
	}
	if _, err := kv.Get(ctx, session.StorageKey); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected default key untouched, got %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if _, err := runCLI(t, "reset", "--db", db, "--yes"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	kv, err = store.Open(db)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = kv.Close() }()
	if _, err := kv.Get(ctx, "practiceLog"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected custom key deleted, got %v", err)
	}
}

func TestExportSessionsYAML(t *testing.T) {
	var buf bytes.Buffer
	sessions := []model.Session{{ID: 1, Date: "2025-01-01", ShotsMade: 7, ShotsAttempted: 10, ShotType: model.ShotThree, Percentage: 70}}
	if err := exportSessions(&buf, sessions, "yaml"); err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(buf.String(), `percentage: "70.0"`) {
		t.Fatalf("unexpected yaml:\n%s", buf.String())
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Compare.Sort != nil || cfg.Session.Type != nil || cfg.Storage.Key != nil {
		t.Fatalf("expected all values commented out, got %+v", cfg)
	}
}
