// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inventory

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// PEMPattern is the file name pattern collected from directories.
const PEMPattern = "*.pem"

// Resolve returns the certificate files to scan for path.
//
// A regular file is returned as is with single set to true. For a
// directory, files matching [PEMPattern] are collected from the directory
// itself, or from the whole tree when recursive is set. The result is
// sorted so that scans are reproducible. A missing path yields an error
// matching [ErrPathNotFound].
func Resolve(path string, recursive bool) (paths []string, single bool, err error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
		return nil, false, err
	}

	if !info.IsDir() {
		return []string{path}, true, nil
	}

	if recursive {
		paths, err = walkPEM(path)
	} else {
		paths, err = listPEM(path)
	}
	if err != nil {
		return nil, false, err
	}

	slices.Sort(paths)
	return paths, false, nil
}

// listPEM matches names in dir only. Matching on names rather than with
// filepath.Glob keeps glob metacharacters in dir from being interpreted.
func listPEM(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !matchPEM(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

func walkPEM(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !matchPEM(d.Name()) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	return paths, err
}

func matchPEM(name string) bool {
	ok, _ := filepath.Match(PEMPattern, name)
	return ok
}
