package audio

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-ps"
)

func TestResolveTool(t *testing.T) {
	orig := lookPathFunc
	defer func() { lookPathFunc = orig }()

	t.Run("prefers ffmpeg", func(t *testing.T) {
		lookPathFunc = func(name string) (string, error) {
			return "/usr/bin/" + name, nil
		}
		tool, err := resolveTool()
		if err != nil {
			t.Fatalf("resolveTool failed: %v", err)
		}
		if tool.name != "ffmpeg" {
			t.Errorf("tool = %q, want ffmpeg", tool.name)
		}
	})

	t.Run("falls through to arecord", func(t *testing.T) {
		lookPathFunc = func(name string) (string, error) {
			if name == "arecord" {
				return "/usr/bin/arecord", nil
			}
			return "", fmt.Errorf("not found")
		}
		tool, err := resolveTool()
		if err != nil {
			t.Fatalf("resolveTool failed: %v", err)
		}
		if tool.name != "arecord" {
			t.Errorf("tool = %q, want arecord", tool.name)
		}
	})

	t.Run("errors when nothing is installed", func(t *testing.T) {
		lookPathFunc = func(name string) (string, error) {
			return "", fmt.Errorf("not found")
		}
		if _, err := resolveTool(); err == nil {
			t.Error("expected an error with no capture tool on PATH")
		}
	})
}

func TestStartWithoutToolStaysIdle(t *testing.T) {
	orig := lookPathFunc
	defer func() { lookPathFunc = orig }()
	lookPathFunc = func(name string) (string, error) {
		return "", fmt.Errorf("not found")
	}

	r := NewRecorder(t.TempDir())
	if _, err := r.Start(); err == nil {
		t.Fatal("Start without a capture tool should fail")
	}
	if r.Recording() {
		t.Error("a failed start must leave the recorder idle")
	}
}

func TestStopWhenIdle(t *testing.T) {
	r := NewRecorder(t.TempDir())
	if _, err := r.Stop(); err == nil {
		t.Error("Stop with no recording in progress should fail")
	}
}

func TestLockfileHolder(t *testing.T) {
	origFind := findProcessFunc
	defer func() { findProcessFunc = origFind }()

	t.Run("missing lockfile", func(t *testing.T) {
		if _, live := lockfileHolder(filepath.Join(t.TempDir(), lockfileName)); live {
			t.Error("missing lockfile should report no holder")
		}
	})

	t.Run("stale lockfile removed", func(t *testing.T) {
		findProcessFunc = func(pid int) (ps.Process, error) {
			return nil, nil
		}
		path := filepath.Join(t.TempDir(), lockfileName)
		if err := writeLockfile(path, 12345); err != nil {
			t.Fatalf("failed to write lockfile: %v", err)
		}

		if _, live := lockfileHolder(path); live {
			t.Error("dead pid should report no holder")
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("stale lockfile should be removed")
		}
	})

	t.Run("garbage lockfile removed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), lockfileName)
		if err := os.WriteFile(path, []byte("not-a-pid"), 0600); err != nil {
			t.Fatalf("failed to write lockfile: %v", err)
		}
		if _, live := lockfileHolder(path); live {
			t.Error("garbage lockfile should report no holder")
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("garbage lockfile should be removed")
		}
	})
}

func TestFetch(t *testing.T) {
	payload := []byte("RIFF....fake wav data")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	mediaDir := t.TempDir()
	path, err := Fetch(context.Background(), srv.URL+"/section1.mp3", mediaDir)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	if filepath.Base(path) != "section1.mp3" {
		t.Errorf("fetched name = %q, want section1.mp3", filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read fetched file: %v", err)
	}
	if string(data) != string(payload) {
		t.Error("fetched content does not match served payload")
	}
}

func TestFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	mediaDir := t.TempDir()
	if _, err := Fetch(context.Background(), srv.URL+"/missing.mp3", mediaDir); err == nil {
		t.Fatal("fetch of a 404 should fail")
	}

	// No partial files left behind.
	entries, err := os.ReadDir(mediaDir)
	if err != nil {
		t.Fatalf("failed to read media dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("media dir should be empty, has %d entries", len(entries))
	}
}

func TestFetchRejectsBadURL(t *testing.T) {
	for _, u := range []string{"", "ftp://example.com/a.mp3", "not a url at all\x00"} {
		if _, err := Fetch(context.Background(), u, t.TempDir()); err == nil {
			t.Errorf("fetch of %q should fail", u)
		}
	}
}
