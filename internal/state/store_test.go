package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/onnk5188-hash/notion/internal/domain/timer"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "state.json"))
}

func TestWriteReadRoundTrip(t *testing.T) {
	store := testStore(t)

	start := time.Date(2024, 3, 9, 14, 30, 0, 0, time.FixedZone("CET", 3600))
	sess := &timer.Session{Project: "Acme", Task: "Design", Start: start}

	if err := store.Write(sess); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got := store.Read()
	if got == nil {
		t.Fatal("Read returned nil after Write")
	}
	if got.Project != "Acme" || got.Task != "Design" {
		t.Errorf("Read = %+v, want project=Acme task=Design", got)
	}
	if !got.Start.Equal(start) {
		t.Errorf("Start = %v, want %v", got.Start, start)
	}
}

func TestReadMissingFile(t *testing.T) {
	store := testStore(t)

	if got := store.Read(); got != nil {
		t.Errorf("Read on missing file = %+v, want nil", got)
	}
}

func TestReadCorruptFile(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"garbage", "not json at all"},
		{"truncated", `{"project": "Acme", "ta`},
		{"missing keys", `{"project": "Acme"}`},
		{"wrong types", `{"project": 1, "task": 2, "start": 3}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := testStore(t)
			if err := os.WriteFile(store.Path(), []byte(tc.content), 0o644); err != nil {
				t.Fatalf("seeding file: %v", err)
			}
			if got := store.Read(); got != nil {
				t.Errorf("Read = %+v, want nil", got)
			}
		})
	}
}

func TestWriteOverwrites(t *testing.T) {
	store := testStore(t)

	first := &timer.Session{Project: "Acme", Task: "Design", Start: time.Now()}
	if err := store.Write(first); err != nil {
		t.Fatalf("Write: %v", err)
	}

	second := &timer.Session{Project: "Beta", Task: "Review", Start: time.Now()}
	if err := store.Write(second); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got := store.Read()
	if got == nil || got.Project != "Beta" || got.Task != "Review" {
		t.Errorf("Read = %+v, want the second session", got)
	}
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	store := testStore(t)

	sess := &timer.Session{Project: "Acme", Task: "Design", Start: time.Now()}
	if err := store.Write(sess); err != nil {
		t.Fatalf("Write: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("dir contains %v, want only the state file", names)
	}
}

func TestClear(t *testing.T) {
	store := testStore(t)

	sess := &timer.Session{Project: "Acme", Task: "Design", Start: time.Now()}
	if err := store.Write(sess); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got := store.Read(); got != nil {
		t.Errorf("Read after Clear = %+v, want nil", got)
	}
}

func TestClearAbsentIsNoop(t *testing.T) {
	store := testStore(t)

	if err := store.Clear(); err != nil {
		t.Errorf("Clear on absent file: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Errorf("second Clear: %v", err)
	}
}
