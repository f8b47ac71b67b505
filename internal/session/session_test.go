package session

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/hoopmetrics/internal/model"
	"github.com/verte-zerg/hoopmetrics/internal/store"
)

type memBackend struct {
	data   map[string][]byte
	getErr error
	putErr error
	puts   int
}

func newMemBackend() *memBackend {
	return &memBackend{data: map[string][]byte{}}
}

func (m *memBackend) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return v, nil
}

func (m *memBackend) Put(_ context.Context, key string, value []byte) error {
	m.puts++
	if m.putErr != nil {
		return m.putErr
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func shot(id int64, st model.ShotType, made, attempted int, pct model.Percent) model.Session {
	return model.Session{
		ID:             id,
		Date:           "2025-03-01",
		ShotType:       st,
		ShotsMade:      made,
		ShotsAttempted: attempted,
		Percentage:     pct,
	}
}

func TestRehydrateAbsentKeyIsEmpty(t *testing.T) {
	s := New(newMemBackend())
	if err := s.Rehydrate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d", s.Len())
	}
}

func TestRehydrateCorruptDataFailsOpen(t *testing.T) {
	b := newMemBackend()
	b.data[StorageKey] = []byte("{not json")
	var warnings []string
	s := New(b, WithWarnings(func(msg string) { warnings = append(warnings, msg) }))
	if err := s.Rehydrate(context.Background()); err == nil {
		t.Fatalf("expected informational error")
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d", s.Len())
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %v", warnings)
	}
}

func TestRehydrateReadErrorFailsOpen(t *testing.T) {
	b := newMemBackend()
	b.getErr = errors.New("disk gone")
	s := New(b)
	if err := s.Rehydrate(context.Background()); err == nil {
		t.Fatalf("expected informational error")
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store")
	}
}

func TestRehydrateAcceptsStringPercentages(t *testing.T) {
	b := newMemBackend()
	b.data[StorageKey] = []byte(`[{"id":1,"date":"2025-01-01","shotsMade":7,"shotsAttempted":10,"shotType":"3pt","location":"Gym","notes":"","percentage":"70.0"}]`)
	s := New(b)
	if err := s.Rehydrate(context.Background()); err != nil {
		t.Fatalf("rehydrate: %v", err)
	}
	got := s.Sessions()
	if len(got) != 1 || got[0].Percentage != 70.0 || got[0].ShotType != model.ShotThree {
		t.Fatalf("unexpected sessions %+v", got)
	}
}

func TestAddPersistsSnapshot(t *testing.T) {
	b := newMemBackend()
	s := New(b)
	ctx := context.Background()
	if err := s.Add(ctx, shot(1, model.ShotTwo, 5, 10, 50)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Add(ctx, shot(2, model.ShotFree, 8, 10, 80)); err != nil {
		t.Fatalf("add: %v", err)
	}
	raw := string(b.data[StorageKey])
	if !strings.HasPrefix(raw, "[") || !strings.Contains(raw, `"percentage":50.0`) {
		t.Fatalf("unexpected snapshot %s", raw)
	}

	reloaded := New(b)
	if err := reloaded.Rehydrate(ctx); err != nil {
		t.Fatalf("rehydrate: %v", err)
	}
	got := reloaded.Sessions()
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("order not preserved: %+v", got)
	}
}

func TestAddKeepsSessionWhenPersistFails(t *testing.T) {
	b := newMemBackend()
	b.putErr = errors.New("quota")
	s := New(b)
	if err := s.Add(context.Background(), shot(1, model.ShotTwo, 1, 2, 50)); err == nil {
		t.Fatalf("expected persist error")
	}
	if s.Len() != 1 {
		t.Fatalf("expected in-memory session to remain")
	}
}

func TestRemoveAtScenario(t *testing.T) {
	b := newMemBackend()
	s := New(b)
	ctx := context.Background()
	for i, sess := range []model.Session{
		shot(1, model.ShotTwo, 5, 10, 50),
		shot(2, model.ShotThree, 3, 10, 30),
		shot(3, model.ShotFree, 9, 10, 90),
	} {
		if err := s.Add(ctx, sess); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
	if err := s.RemoveAt(ctx, 0); err != nil {
		t.Fatalf("remove: %v", err)
	}
	got := s.Sessions()
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Fatalf("unexpected remaining %+v", got)
	}

	var persisted []model.Session
	if err := json.Unmarshal(b.data[StorageKey], &persisted); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if len(persisted) != 2 || persisted[0].ID != 2 || persisted[1].ID != 3 {
		t.Fatalf("unexpected persisted snapshot %+v", persisted)
	}

	agg := s.Stats()
	if agg.FG2A != 0 || agg.FGA != 10 || agg.FG3A != 10 || agg.FTA != 10 || agg.TotalPoints != 18 {
		t.Fatalf("stats not refreshed: %+v", agg)
	}
}

func TestRemoveAtMiddleKeepsOrder(t *testing.T) {
	s := New(newMemBackend())
	ctx := context.Background()
	for i, sess := range []model.Session{
		shot(1, model.ShotTwo, 5, 10, 50),
		shot(2, model.ShotThree, 3, 10, 30),
		shot(3, model.ShotFree, 9, 10, 90),
	} {
		if err := s.Add(ctx, sess); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
	if err := s.RemoveAt(ctx, 1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	got := s.Sessions()
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("unexpected remaining %+v", got)
	}
	if agg := s.Stats(); agg.FG3A != 0 || agg.FGA != 10 || agg.FTA != 10 {
		t.Fatalf("stats not refreshed: %+v", agg)
	}
}

func TestRemoveAtOutOfRange(t *testing.T) {
	b := newMemBackend()
	s := New(b)
	ctx := context.Background()
	if err := s.Add(ctx, shot(1, model.ShotTwo, 1, 1, 100)); err != nil {
		t.Fatalf("add: %v", err)
	}
	puts := b.puts
	for _, idx := range []int{-1, 1, 5} {
		err := s.RemoveAt(ctx, idx)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("index %d: expected ErrIndexOutOfRange, got %v", idx, err)
		}
	}
	if s.Len() != 1 || b.puts != puts {
		t.Fatalf("store changed on invalid remove")
	}
}

func TestStatsCacheInvalidatedOnWrite(t *testing.T) {
	s := New(newMemBackend())
	ctx := context.Background()
	if got := s.Stats(); got.ShotsAttempted != 0 {
		t.Fatalf("expected empty stats, got %+v", got)
	}
	if err := s.Add(ctx, shot(1, model.ShotTwo, 4, 8, 50)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := s.Stats(); got.ShotsAttempted != 8 || got.TotalPoints != 8 {
		t.Fatalf("stale stats %+v", got)
	}
}

func TestSessionsReturnsCopy(t *testing.T) {
	s := New(newMemBackend())
	if err := s.Add(context.Background(), shot(1, model.ShotTwo, 1, 2, 50)); err != nil {
		t.Fatalf("add: %v", err)
	}
	got := s.Sessions()
	got[0].ShotsMade = 99
	if s.Sessions()[0].ShotsMade != 1 {
		t.Fatalf("Sessions leaked internal slice")
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	db, err := store.Open(filepath.Join(t.TempDir(), "hoop.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()
	ctx := context.Background()
	s := New(db)
	if err := s.Add(ctx, shot(42, model.ShotThree, 2, 5, 40)); err != nil {
		t.Fatalf("add: %v", err)
	}
	reloaded := New(db)
	if err := reloaded.Rehydrate(ctx); err != nil {
		t.Fatalf("rehydrate: %v", err)
	}
	got := reloaded.Sessions()
	if len(got) != 1 || got[0].ID != 42 || got[0].Percentage != 40 {
		t.Fatalf("unexpected sessions %+v", got)
	}
}

func TestReplaceAndCustomKey(t *testing.T) {
	b := newMemBackend()
	s := New(b, WithKey("other"))
	if err := s.Replace(context.Background(), nil); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if string(b.data["other"]) != "[]" {
		t.Fatalf("expected empty array, got %q", b.data["other"])
	}
	if s.Key() != "other" {
		t.Fatalf("unexpected key %q", s.Key())
	}
	if _, ok := b.data[StorageKey]; ok {
		t.Fatalf("default key should stay unused")
	}
	if New(b).Key() != StorageKey {
		t.Fatalf("expected default key")
	}
}
