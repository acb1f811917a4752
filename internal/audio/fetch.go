package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/julianstephens/bandprep/internal/constants"
)

// FetchTimeout bounds a single audio download.
const FetchTimeout = 60 * time.Second

// Fetch downloads the audio at rawURL into the media directory and returns
// the local file path. Any failure leaves the media directory unchanged
// apart from a possible partial temp file, which is cleaned up.
func Fetch(ctx context.Context, rawURL, mediaDir string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", fmt.Errorf("invalid audio URL %q", rawURL)
	}

	ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch audio: server returned %s", resp.Status)
	}

	if err := os.MkdirAll(mediaDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	outPath := filepath.Join(mediaDir, fetchFileName(parsed))

	// Download into a temp file first so a broken transfer never leaves a
	// truncated track behind.
	tmp, err := os.CreateTemp(mediaDir, "fetch-*.part")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to download audio: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to finalize download: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to move download into place: %w", err)
	}

	return outPath, nil
}

// fetchFileName derives a local name from the URL path, falling back to a
// dated default when the path carries no usable name.
func fetchFileName(u *url.URL) string {
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return "listening-" + time.Now().Format(constants.DateFormat) + ".audio"
	}
	return name
}
