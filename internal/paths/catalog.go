// Package paths resolves the locations of the bead catalog and config file.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DataDir is the conventional directory holding the catalog.
	DataDir = "data"
	// CatalogFile is the conventional catalog file name.
	CatalogFile = "beads.csv"
	// AppName names the per-user config directory.
	AppName = "beadmatch"
)

// ResolveCatalogPath turns a user-supplied path into a catalog file path.
//   - "" resolves to data/beads.csv
//   - a path ending in .csv is returned cleaned
//   - a directory containing beads.csv resolves to that file
//   - any other directory resolves to <dir>/data/beads.csv
//
// A leading "~/" is expanded to the home directory.
func ResolveCatalogPath(p string) string {
	p = ExpandHome(strings.TrimSpace(p))
	if p == "" {
		return filepath.Join(DataDir, CatalogFile)
	}
	if strings.EqualFold(filepath.Ext(p), ".csv") {
		return filepath.Clean(p)
	}
	direct := filepath.Join(p, CatalogFile)
	if isFile(direct) {
		return direct
	}
	return filepath.Join(p, DataDir, CatalogFile)
}

// FindCatalog picks the catalog path. An explicit path always wins. Otherwise
// the first existing candidate among data/beads.csv next to configFile and
// data/beads.csv in the working directory is used; if neither exists the
// working-directory candidate is returned so the error names it.
func FindCatalog(explicit, configFile string) string {
	if strings.TrimSpace(explicit) != "" {
		return ResolveCatalogPath(explicit)
	}
	local := ResolveCatalogPath("")
	if configFile != "" {
		candidate := ResolveCatalogPath(filepath.Dir(configFile))
		if isFile(candidate) {
			return candidate
		}
	}
	return local
}

// ConfigDir returns the per-user configuration directory for beadmatch.
func ConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "."+AppName)
	}
	return filepath.Join(dir, AppName)
}

// DefaultConfigPath returns the per-user config file path.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}
