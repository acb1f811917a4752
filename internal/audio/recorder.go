// Package audio holds the two platform touchpoints of the speaking and
// listening screens: microphone capture through an external recording tool,
// and fetching practice audio from a user-supplied URL.
package audio

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/bandprep/internal/logger"
)

const lockfileName = "bandprep-recorder.lock"

var (
	lookPathFunc    = exec.LookPath
	findProcessFunc = ps.FindProcess
)

// captureTool describes one supported recording backend. The args produce a
// WAV capture from the default input device; the output path is appended.
type captureTool struct {
	name string
	args []string
}

var captureTools = []captureTool{
	{name: "ffmpeg", args: []string{"-f", "alsa", "-i", "default", "-y"}},
	{name: "arecord", args: []string{"-f", "cd"}},
	{name: "rec", args: nil},
}

// DetectCaptureTool reports which recording backend would be used, for
// diagnostics.
func DetectCaptureTool() (string, error) {
	tool, err := resolveTool()
	if err != nil {
		return "", err
	}
	return tool.name, nil
}

// resolveTool finds the first available capture backend on PATH.
func resolveTool() (captureTool, error) {
	for _, tool := range captureTools {
		if _, err := lookPathFunc(tool.name); err == nil {
			return tool, nil
		}
	}
	return captureTool{}, fmt.Errorf("no audio capture tool found (tried ffmpeg, arecord, rec)")
}

// Recorder captures microphone audio into the media directory. At most one
// recording runs at a time; a lockfile guards against a second bandprep
// process capturing concurrently.
type Recorder struct {
	mediaDir string
	cmd      *exec.Cmd
	outPath  string
}

func NewRecorder(mediaDir string) *Recorder {
	return &Recorder{mediaDir: mediaDir}
}

// Recording reports whether a capture is in progress in this process.
func (r *Recorder) Recording() bool {
	return r.cmd != nil
}

// Start begins a capture and returns the output path it will write. A
// failed start leaves the recorder idle.
func (r *Recorder) Start() (string, error) {
	if r.Recording() {
		return "", fmt.Errorf("a recording is already in progress")
	}

	lockPath := filepath.Join(r.mediaDir, lockfileName)
	if holder, live := lockfileHolder(lockPath); live {
		return "", fmt.Errorf("another recording is in progress (pid %d)", holder)
	}

	tool, err := resolveTool()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(r.mediaDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	outPath := filepath.Join(r.mediaDir, "speaking-"+time.Now().Format("20060102-150405")+".wav")
	args := append(append([]string{}, tool.args...), outPath)
	cmd := exec.Command(tool.name, args...)
	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("failed to start %s: %w", tool.name, err)
	}

	if err := writeLockfile(lockPath, cmd.Process.Pid); err != nil {
		logger.Warn("Failed to write recorder lockfile", "error", err)
	}

	r.cmd = cmd
	r.outPath = outPath
	return outPath, nil
}

// Stop ends the capture and finalizes whatever was recorded up to this
// point, returning the output path. Stopping an idle recorder is an error.
func (r *Recorder) Stop() (string, error) {
	if !r.Recording() {
		return "", fmt.Errorf("no recording in progress")
	}

	// SIGINT lets the tool flush and close the container cleanly.
	if err := r.cmd.Process.Signal(os.Interrupt); err != nil {
		r.cmd.Process.Kill()
	}
	// The exit status is uninteresting: interrupted capture tools commonly
	// report non-zero even on a clean stop.
	r.cmd.Wait()

	os.Remove(filepath.Join(r.mediaDir, lockfileName))

	path := r.outPath
	r.cmd = nil
	r.outPath = ""
	return path, nil
}

func writeLockfile(path string, pid int) error {
	return os.WriteFile(path, []byte(strconv.Itoa(pid)), 0600)
}

// lockfileHolder reads a recorder lockfile and reports whether the process
// it names is still a live capture. Stale lockfiles are removed.
func lockfileHolder(path string) (int, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil {
		os.Remove(path)
		return 0, false
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil || !knownCaptureExecutable(process.Executable()) {
		os.Remove(path)
		return 0, false
	}

	return pid, true
}

func knownCaptureExecutable(name string) bool {
	for _, tool := range captureTools {
		if strings.HasPrefix(name, tool.name) {
			return true
		}
	}
	return false
}
