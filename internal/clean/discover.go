// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package clean

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Discover walks root recursively and returns the files whose extension is
// in exts, as slash-separated paths relative to root, sorted
// lexicographically. A missing root yields no files and no error.
// Unreadable subdirectories are skipped.
func Discover(fs afero.Fs, root string, exts []string) ([]string, error) {
	ok, err := afero.DirExists(fs, root)
	if err != nil || !ok {
		return nil, nil
	}

	var files []string
	err = afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if info.IsDir() || !hasExt(path, exts) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func hasExt(path string, exts []string) bool {
	ext := filepath.Ext(path)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// excludeDir drops files that live under dir, which happens when the
// output directory is nested inside the input directory.
func excludeDir(files []string, root, dir string) []string {
	if dir == "" {
		return files
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return files
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return files
	}
	rel, err := filepath.Rel(absRoot, absDir)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return files
	}
	prefix := filepath.ToSlash(rel) + "/"

	kept := files[:0:0]
	for _, f := range files {
		if !strings.HasPrefix(f, prefix) {
			kept = append(kept, f)
		}
	}
	return kept
}
