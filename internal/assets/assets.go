// Package assets copies the site's static files (images, fonts, icons) into
// the build output.
package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// File describes one copied asset.
type File struct {
	RelPath string // Slash-separated path relative to the source root.
	Size    int64
	Hash    string // SHA-256 hex digest of the content.
	Copied  bool   // False when an identical file was already in place.
}

// Options controls Copy.
type Options struct {
	Src     string
	Dst     string
	Include []string
	Exclude []string
}

// Copy mirrors every file under opts.Src that passes the include and
// exclude filters into opts.Dst. Files whose destination already has the
// same content are left untouched. A missing source directory is not an
// error.
func Copy(opts Options) ([]File, error) {
	root, err := filepath.Abs(opts.Src)
	if err != nil {
		return nil, fmt.Errorf("assets: resolve source: %w", err)
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var files []File
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if path != root && shouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if !MatchesInclude(relPath, opts.Include) || MatchesExclude(relPath, opts.Exclude) {
			return nil
		}

		f, err := copyFile(path, filepath.Join(opts.Dst, relPath))
		if err != nil {
			return err
		}
		f.RelPath = filepath.ToSlash(relPath)
		files = append(files, f)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assets: copying %s: %w", opts.Src, err)
	}
	return files, nil
}

func copyFile(src, dst string) (File, error) {
	hash, size, err := hashFile(src)
	if err != nil {
		return File{}, err
	}
	f := File{Size: size, Hash: hash}

	if existing, _, err := hashFile(dst); err == nil && existing == hash {
		return f, nil
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return File{}, err
	}
	in, err := os.Open(src)
	if err != nil {
		return File{}, err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return File{}, err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return File{}, err
	}
	if err := out.Close(); err != nil {
		return File{}, err
	}
	f.Copied = true
	return f, nil
}

// hashFile computes the SHA-256 digest and size of the given file.
func hashFile(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return "", 0, err
	}
	return hex.EncodeToString(h.Sum(nil)), n, nil
}

// HashBytes returns the short content fingerprint used for cache busting.
func HashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])[:10]
}
