package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/onnk5188-hash/notion/config"
	"github.com/onnk5188-hash/notion/internal/domain/timer"
)

func execute(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()

	deps := &Dependencies{Config: cfg}
	root := NewRootCmd(deps)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		StateFile: filepath.Join(t.TempDir(), "state.json"),
	}
}

func TestStartThenStatus(t *testing.T) {
	cfg := testConfig(t)

	out, err := execute(t, cfg, "start", "Acme", "Design")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if !strings.Contains(out, "Started 'Acme' / 'Design'") {
		t.Errorf("start output = %q", out)
	}

	out, err = execute(t, cfg, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out, "project='Acme'") || !strings.Contains(out, "task='Design'") {
		t.Errorf("status output = %q", out)
	}
}

func TestStatusIdle(t *testing.T) {
	cfg := testConfig(t)

	out, err := execute(t, cfg, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out, "No active session") {
		t.Errorf("status output = %q", out)
	}
}

func TestStartWhileRunning(t *testing.T) {
	cfg := testConfig(t)

	if _, err := execute(t, cfg, "start", "Acme", "Design"); err != nil {
		t.Fatalf("first start: %v", err)
	}

	_, err := execute(t, cfg, "start", "Beta", "Review")
	if !errors.Is(err, timer.ErrAlreadyRunning) {
		t.Errorf("second start: got %v, want ErrAlreadyRunning", err)
	}
}

func TestStartRequiresTwoArgs(t *testing.T) {
	cfg := testConfig(t)

	if _, err := execute(t, cfg, "start", "Acme"); err == nil {
		t.Error("start with one arg should fail")
	}
}

func TestStopWithoutCredentials(t *testing.T) {
	cfg := testConfig(t)

	if _, err := execute(t, cfg, "start", "Acme", "Design"); err != nil {
		t.Fatalf("start: %v", err)
	}

	_, err := execute(t, cfg, "stop")
	var missing *config.MissingError
	if !errors.As(err, &missing) {
		t.Fatalf("stop: got %v, want MissingError", err)
	}
	if missing.Name != "NOTION_TOKEN" {
		t.Errorf("missing credential = %q, want NOTION_TOKEN", missing.Name)
	}

	// The credential check must run before any state effect.
	out, err := execute(t, cfg, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out, "project='Acme'") {
		t.Errorf("session lost after rejected stop: %q", out)
	}
}

func TestStopWhileIdle(t *testing.T) {
	cfg := testConfig(t)
	cfg.Token = "tok"
	cfg.DatabaseID = "db"

	_, err := execute(t, cfg, "stop")
	if !errors.Is(err, timer.ErrNoActiveSession) {
		t.Errorf("stop while idle: got %v, want ErrNoActiveSession", err)
	}
}

func TestCredentialFlags(t *testing.T) {
	cfg := testConfig(t)

	_, err := execute(t, cfg, "--token", "flag-tok", "--database-id", "flag-db", "stop")
	// Credentials resolve from the flags, so the failure is the missing
	// session, not the missing credentials.
	if !errors.Is(err, timer.ErrNoActiveSession) {
		t.Errorf("stop with flags: got %v, want ErrNoActiveSession", err)
	}
}

func TestDoctorReportsMissingCredentials(t *testing.T) {
	cfg := testConfig(t)

	out, err := execute(t, cfg, "doctor")
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if !strings.Contains(out, "Notion token") || !strings.Contains(out, "not set") {
		t.Errorf("doctor output = %q", out)
	}
	if !strings.Contains(out, "Some prerequisites are missing") {
		t.Errorf("doctor summary missing: %q", out)
	}
}
