// Package update checks GitHub for a newer ignitegen release.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/semver"

	"github.com/ssidorov-gg/apache-ignite/internal/version"
)

const (
	cacheTTL  = 24 * time.Hour
	cacheFile = "update-check.json"
)

// ReleasesURL is the endpoint queried for the latest release.
var ReleasesURL = "https://api.github.com/repos/ssidorov-gg/apache-ignite/releases/latest"

// Info is the result of an update check.
type Info struct {
	LatestVersion   string    `json:"latest_version"`
	CurrentVersion  string    `json:"current_version"`
	ReleaseURL      string    `json:"release_url,omitempty"`
	CheckedAt       time.Time `json:"checked_at"`
	UpdateAvailable bool      `json:"update_available"`
}

type release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Checker queries the release endpoint and caches the answer on disk.
type Checker struct {
	// Dir holds the cache file. Empty selects the user cache directory.
	Dir    string
	Client *http.Client
	Now    func() time.Time
}

// CheckWithCache checks for updates with the default checker.
func CheckWithCache(ctx context.Context) (*Info, error) {
	return (&Checker{}).Check(ctx)
}

// Check returns the cached answer when it is younger than a day and asks
// GitHub otherwise. Cache write failures are ignored.
func (c *Checker) Check(ctx context.Context) (*Info, error) {
	dir, err := c.dir()
	if err != nil {
		return nil, err
	}

	if info, err := loadCache(dir); err == nil && c.now().Sub(info.CheckedAt) < cacheTTL {
		info.CurrentVersion = version.Version
		info.UpdateAvailable = compareVersions(info.CurrentVersion, info.LatestVersion) < 0
		return info, nil
	}

	info, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	_ = saveCache(dir, info)
	return info, nil
}

func (c *Checker) fetch(ctx context.Context) (*Info, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ReleasesURL, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "ignitegen/"+version.Version)

	client := c.Client
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, err
	}

	latest := strings.TrimPrefix(rel.TagName, "v")
	return &Info{
		LatestVersion:   latest,
		CurrentVersion:  version.Version,
		ReleaseURL:      rel.HTMLURL,
		CheckedAt:       c.now(),
		UpdateAvailable: compareVersions(version.Version, latest) < 0,
	}, nil
}

func (c *Checker) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Checker) dir() (string, error) {
	if c.Dir != "" {
		return c.Dir, nil
	}
	return cacheDir()
}

// cacheDir returns $XDG_CACHE_HOME/ignitegen, falling back to ~/.cache.
func cacheDir() (string, error) {
	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		cacheHome = filepath.Join(home, ".cache")
	}
	return filepath.Join(cacheHome, "ignitegen"), nil
}

func loadCache(dir string) (*Info, error) {
	data, err := os.ReadFile(filepath.Join(dir, cacheFile))
	if err != nil {
		return nil, err
	}

	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func saveCache(dir string, info *Info) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, cacheFile), data, 0o644)
}

// compareVersions orders two release versions, with or without the v
// prefix. A dev build is newer than any release; unparseable versions sort
// first.
func compareVersions(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "dev":
		return 1
	case b == "dev":
		return -1
	}
	return semver.Compare(canonical(a), canonical(b))
}

func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
