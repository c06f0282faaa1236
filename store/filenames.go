package store

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

const backupTimeLayout = "20060102T150405Z"

// Backup identifies one preserved revision of a document path.
type Backup struct {
	Path   string
	Time   time.Time
	Digest string
}

// FormatBackupName derives the backup filename for path from the commit
// time and the new revision's digest, of which the first 8 hex
// characters are embedded.
func FormatBackupName(path string, ts time.Time, digest string) string {
	return fmt.Sprintf("%s.bak.%s.%s", path, ts.UTC().Format(backupTimeLayout), digest[:8])
}

// ParseBackupName splits a backup filename into the original path, the
// commit time, and the digest prefix.
func ParseBackupName(name string) (string, time.Time, string, error) {
	i := strings.LastIndex(name, ".bak.")
	if i < 0 {
		return "", time.Time{}, "", fmt.Errorf("not a backup name: %q", name)
	}
	orig := name[:i]
	rest := name[i+len(".bak."):]
	parts := strings.SplitN(rest, ".", 2)
	if len(parts) != 2 {
		return "", time.Time{}, "", fmt.Errorf("not a backup name: %q", name)
	}
	ts, err := time.Parse(backupTimeLayout, parts[0])
	if err != nil {
		return "", time.Time{}, "", fmt.Errorf("bad backup timestamp in %q: %w", name, err)
	}
	if len(parts[1]) != 8 {
		return "", time.Time{}, "", fmt.Errorf("bad backup digest in %q", name)
	}
	return orig, ts, parts[1], nil
}

// ListBackups returns the backups of path in its directory, oldest
// first.
func (s *Store) ListBackups(path string) ([]Backup, error) {
	dir := filepath.Dir(path)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	base := filepath.Base(path)
	var res []Backup
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), base+".bak.") {
			continue
		}
		full := filepath.Join(dir, e.Name())
		_, ts, digest, err := ParseBackupName(e.Name())
		if err != nil {
			continue
		}
		res = append(res, Backup{Path: full, Time: ts, Digest: digest})
	}
	slices.SortFunc(res, func(a, b Backup) int {
		return a.Time.Compare(b.Time)
	})
	return res, nil
}
