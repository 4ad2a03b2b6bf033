package npa

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/muurk/rpmlog/internal/logging"
)

var (
	clientPattern = regexp.MustCompile(
		`^[^:]*:\s+npa_client\s+\(name: (?P<name>[^\)]*)\)\s+\(handle: (?P<handle>[^\)]+)\)\s+\(resource: (?P<resource>[^\)]+)\)`)
	resourcePattern = regexp.MustCompile(
		`^[^:]*:\s+npa_resource\s+\(name: "(?P<name>[^"]+)"\)\s+\(handle: (?P<handle>[^\)]+)`)
)

// LoadStats counts what a dump scan found.
type LoadStats struct {
	Lines     int // Lines scanned
	Clients   int // Client records stored
	Resources int // Resource records stored
	Skipped   int // Lines that matched a pattern but carried an unparsable handle
}

// String returns a one-line summary
func (s LoadStats) String() string {
	return fmt.Sprintf("%d clients, %d resources from %d lines", s.Clients, s.Resources, s.Lines)
}

// Load scans an NPA dump and moves the resolver to the loaded state. Lines
// that match neither record pattern are ignored. A later record for the same
// handle replaces the earlier one.
func (r *Resolver) Load(src io.Reader) (LoadStats, error) {
	var stats LoadStats

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		stats.Lines++
		line := scanner.Text()

		if m := clientPattern.FindStringSubmatch(line); m != nil {
			handle, err := parseHandle(m[clientPattern.SubexpIndex("handle")])
			if err != nil {
				stats.Skipped++
				logging.Debug("Skipping NPA client line", zap.Int("line", stats.Lines), zap.Error(err))
				continue
			}
			resource, err := parseHandle(m[clientPattern.SubexpIndex("resource")])
			if err != nil {
				stats.Skipped++
				logging.Debug("Skipping NPA client line", zap.Int("line", stats.Lines), zap.Error(err))
				continue
			}
			r.clientNames[handle] = m[clientPattern.SubexpIndex("name")]
			r.clientResources[handle] = resource
			stats.Clients++
			continue
		}

		if m := resourcePattern.FindStringSubmatch(line); m != nil {
			handle, err := parseHandle(m[resourcePattern.SubexpIndex("handle")])
			if err != nil {
				stats.Skipped++
				logging.Debug("Skipping NPA resource line", zap.Int("line", stats.Lines), zap.Error(err))
				continue
			}
			r.resourceNames[handle] = m[resourcePattern.SubexpIndex("name")]
			stats.Resources++
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read NPA dump: %w", err)
	}

	prev := r.state
	r.state = StateLoaded
	if prev != StateLoaded {
		logging.LogStateChange("npa", prev.String(), StateLoaded.String())
	}
	logging.Info("NPA dump loaded",
		zap.Int("clients", stats.Clients),
		zap.Int("resources", stats.Resources),
		zap.Int("skipped", stats.Skipped),
	)
	return stats, nil
}

// LoadFile opens path on fs and loads it.
func (r *Resolver) LoadFile(fs afero.Fs, path string) (LoadStats, error) {
	f, err := fs.Open(path)
	if err != nil {
		return LoadStats{}, fmt.Errorf("failed to open NPA dump: %w", err)
	}
	defer f.Close()

	stats, err := r.Load(f)
	if err != nil {
		return stats, fmt.Errorf("%s: %w", path, err)
	}
	return stats, nil
}

// parseHandle accepts hex with or without a 0x prefix.
func parseHandle(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid handle %q: %w", s, err)
	}
	return uint32(v), nil
}
