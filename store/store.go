package store

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jsonplan/go-jsonplan/debug"
	"github.com/jsonplan/go-jsonplan/encode"
	"github.com/jsonplan/go-jsonplan/format"
	"github.com/jsonplan/go-jsonplan/ir"
	"github.com/jsonplan/go-jsonplan/parse"
)

// Store reads and writes document revisions. If logger is nil,
// slog.Default() is used.
type Store struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{logger: logger}
}

type commitOpts struct {
	backup bool
}

type CommitOption func(*commitOpts)

// WithBackup controls whether Commit preserves the prior revision's
// bytes. It defaults to true.
func WithBackup(v bool) CommitOption {
	return func(o *commitOpts) { o.backup = v }
}

// Load reads and decodes the document at path, returning the tree and
// the raw bytes. The input format follows the file extension. Syntax
// failures return a *ParseError.
func (s *Store) Load(path string) (*ir.Node, []byte, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	node, err := parse.Parse(d, parse.ParseFormat(format.Detect(path)))
	if err != nil {
		return nil, nil, &ParseError{Path: path, Err: err}
	}
	return node, d, nil
}

// Commit serializes doc, writes it to a temporary file in path's
// directory, syncs, optionally preserves path's prior bytes at a backup
// name, and renames the temporary file onto path. It returns the final
// path and the full hex digest of the bytes written.
//
// On any failure before the rename, path is untouched. The temporary
// file is removed best effort.
func (s *Store) Commit(path string, doc *ir.Node, opts ...CommitOption) (string, string, error) {
	cOpts := &commitOpts{backup: true}
	for _, opt := range opts {
		opt(cOpts)
	}

	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf); err != nil {
		return "", "", err
	}
	sum := sha256.Sum256(buf.Bytes())
	digest := hex.EncodeToString(sum[:])

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return "", "", err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return "", "", err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return "", "", err
	}
	if err := tmp.Close(); err != nil {
		return "", "", err
	}

	if cOpts.backup {
		if err := s.backup(path, digest); err != nil {
			return "", "", err
		}
	}

	if err := os.Rename(tmpName, path); err != nil {
		return "", "", err
	}
	s.logger.Debug("committed revision", "path", path, "digest", digest, "bytes", buf.Len())
	if debug.Store() {
		debug.Logf("store: commit %s digest %s\n", path, digest)
	}
	return path, digest, nil
}

// backup copies path's current bytes to the backup name derived from
// digest. A missing path means a first commit and no backup.
func (s *Store) backup(path, digest string) error {
	prior, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	name := FormatBackupName(path, time.Now().UTC(), digest)
	if err := os.WriteFile(name, prior, 0644); err != nil {
		return fmt.Errorf("backup %s: %w", name, err)
	}
	s.logger.Debug("wrote backup", "path", path, "backup", name)
	return nil
}
