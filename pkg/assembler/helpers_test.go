// Copyright (C) 2024  R. Silvestre

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package assembler_test

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

var (
	sourceDirsMu sync.Mutex
	sourceDirs   = map[*testing.T]string{}
)

// writeSourceFile drops name into a per-test temporary directory, chdir's
// the process there so relative artifact names in tests behave exactly
// like a real invocation, and restores the original directory on cleanup.
// Multiple calls within the same test share the same temporary directory,
// so files written by earlier calls remain visible to later ones.
func writeSourceFile(t *testing.T, name, content string) {
	t.Helper()

	sourceDirsMu.Lock()
	dir, ok := sourceDirs[t]
	sourceDirsMu.Unlock()

	if !ok {
		dir = t.TempDir()

		orig, err := os.Getwd()
		if err != nil {
			t.Fatalf("Getwd: %v", err)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatalf("Chdir: %v", err)
		}

		sourceDirsMu.Lock()
		sourceDirs[t] = dir
		sourceDirsMu.Unlock()

		t.Cleanup(func() {
			os.Chdir(orig)
			sourceDirsMu.Lock()
			delete(sourceDirs, t)
			sourceDirsMu.Unlock()
		})
	}

	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

// assertFileContains reads name from the current directory and fails the
// test unless it contains want.
func assertFileContains(t *testing.T, name, want string) {
	t.Helper()
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	if !strings.Contains(string(data), want) {
		t.Fatalf("%s does not contain %q:\n%s", name, want, data)
	}
}

// assertFileMissing fails the test if name exists in the current
// directory.
func assertFileMissing(t *testing.T, name string) {
	t.Helper()
	if _, err := os.Stat(name); err == nil {
		t.Fatalf("%s exists but should have been omitted", name)
	}
}

// chdir switches the process to dir and returns the previous working
// directory, for tests that need an empty directory rather than one
// pre-populated by writeSourceFile.
func chdir(t *testing.T, dir string) string {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	return orig
}
