package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Line-oriented key:value resource. Keys the game does not know are skipped,
// keys that fail to parse keep their default.

const DefaultResource = "config.yml"

var (
	ErrConfigNotFound = errors.New("configuration not found")
	ErrConfigFormat   = errors.New("malformed configuration")
)

var setters = map[string]func(*Builder, int) *Builder{
	"minimum":  (*Builder).Minimum,
	"maximum":  (*Builder).Maximum,
	"attempts": (*Builder).Attempts,
}

// Load reads name from fsys. The returned Configuration is always usable:
// every key that is missing or broken falls back to its default, and the
// problems are reported together in the error.
func Load(fsys fs.FS, name string) (Configuration, error) {
	b := NewBuilder()

	f, err := fsys.Open(name)
	if err != nil {
		return b.Build(), fmt.Errorf("%w: %w", ErrConfigNotFound, err)
	}
	defer f.Close()

	var errs []error
	sc := bufio.NewScanner(f)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			errs = append(errs, fmt.Errorf("%w: line %d: expected key:value, got %q", ErrConfigFormat, lineNo, line))
			continue
		}
		key = strings.TrimSpace(key)
		set, known := setters[key]
		if !known {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: line %d: %s: %w", ErrConfigFormat, lineNo, key, err))
			continue
		}
		set(b, n)
	}
	if err := sc.Err(); err != nil {
		errs = append(errs, fmt.Errorf("read %s: %w", name, err))
	}
	return b.Build(), errors.Join(errs...)
}

// Resolve maps a resource identifier onto a filesystem and a name inside it.
// Paths that exist on disk, or that carry a directory, are read from disk;
// a bare name that is not on disk is looked up in fallback.
func Resolve(resource string, fallback fs.FS) (fs.FS, string) {
	dir, base := filepath.Dir(resource), filepath.Base(resource)
	if _, err := os.Stat(resource); err == nil || fallback == nil || base != resource {
		return os.DirFS(dir), base
	}
	return fallback, resource
}
