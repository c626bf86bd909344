// SPDX-License-Identifier: MIT

// Package testutil provides golden-file helpers for wasmbind tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// Case represents a parsed test case from a txtar archive.
type Case struct {
	// Name is the test case name (the filename without extension).
	Name string

	// Description is the comment block before any files.
	Description string

	// Flags contains any flags parsed from a "Flags: ..." line in the
	// description.
	Flags []string

	// InputName is the name of the input file, e.g. "input.rs".
	InputName string

	// Input is the contents of the input file.
	Input []byte

	// Want maps relative paths (e.g., "plan.txt") to expected content.
	Want map[string][]byte
}

// ParseCase parses a txtar archive into a test Case.
// The archive should contain:
//   - A description comment (text before first file)
//   - One "input.<ext>" file with source text
//   - One or more "want/<filename>" files with expected output
//
// The description may contain a "Flags: flag1, flag2" line to pass flags
// to the generate function.
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Want:        make(map[string][]byte),
	}
	c.parseFlags()

	for _, f := range ar.Files {
		switch {
		case strings.HasPrefix(f.Name, "input."):
			if c.Input != nil {
				return nil, fmt.Errorf("second input file %q in archive", f.Name)
			}
			c.InputName = f.Name
			c.Input = f.Data
		case strings.HasPrefix(f.Name, "want/"):
			c.Want[strings.TrimPrefix(f.Name, "want/")] = f.Data
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q (expected input.* or want/*)", f.Name)
		}
	}

	if c.Input == nil {
		return nil, fmt.Errorf("missing input.* in archive")
	}
	if len(c.Want) == 0 {
		return nil, fmt.Errorf("missing want/* files in archive")
	}
	return c, nil
}

func (c *Case) parseFlags() {
	for _, line := range strings.Split(c.Description, "\n") {
		line = strings.TrimSpace(line)
		flagStr, ok := strings.CutPrefix(line, "Flags:")
		if !ok {
			continue
		}
		for _, f := range strings.Split(flagStr, ",") {
			if f = strings.TrimSpace(f); f != "" {
				c.Flags = append(c.Flags, f)
			}
		}
		break
	}
}

// GenerateFunc produces output files from one input.
type GenerateFunc func(input []byte, flags []string) (map[string][]byte, error)

// Run executes the test case and compares generated output against the
// expected files.
func (c *Case) Run(t *testing.T, generate GenerateFunc) {
	t.Helper()

	got, err := generate(c.Input, c.Flags)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	for wantFile := range c.Want {
		if _, ok := got[wantFile]; !ok {
			t.Errorf("missing output file: %q", wantFile)
		}
	}
	for gotFile := range got {
		if _, ok := c.Want[gotFile]; !ok {
			t.Errorf("unexpected output file: %q", gotFile)
		}
	}

	for wantFile, wantContent := range c.Want {
		gotContent, ok := got[wantFile]
		if !ok {
			continue
		}
		if diff := cmp.Diff(normalizeContent(wantContent), normalizeContent(gotContent)); diff != "" {
			t.Errorf("file %q mismatch (-want +got):\n%s", wantFile, diff)
		}
	}
}

// normalizeContent trims trailing whitespace from each line and trailing
// newlines from the content.
func normalizeContent(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// UpdateArchive returns ar with its want/* files replaced by got.
func UpdateArchive(ar *txtar.Archive, got map[string][]byte) *txtar.Archive {
	result := &txtar.Archive{Comment: ar.Comment}
	for _, f := range ar.Files {
		if strings.HasPrefix(f.Name, "input.") {
			result.Files = append(result.Files, f)
			break
		}
	}

	names := make([]string, 0, len(got))
	for name := range got {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		content := got[name]
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content = append(content, '\n')
		}
		result.Files = append(result.Files, txtar.File{Name: "want/" + name, Data: content})
	}
	return result
}

// RunDir runs every *.txtar case in dir as a subtest. With update set,
// the archives are rewritten from the generated output instead.
func RunDir(t *testing.T, dir string, update bool, generate GenerateFunc) {
	t.Helper()

	files, err := filepath.Glob(filepath.Join(dir, "*.txtar"))
	if err != nil {
		t.Fatalf("glob %q: %v", dir, err)
	}
	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}
	sort.Strings(files)

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		t.Run(name, func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatalf("parse txtar: %v", err)
			}
			tc, err := ParseCase(name, ar)
			if err != nil {
				t.Fatalf("parse case: %v", err)
			}

			if update {
				got, err := generate(tc.Input, tc.Flags)
				if err != nil {
					t.Fatalf("generate: %v", err)
				}
				if err := os.WriteFile(file, txtar.Format(UpdateArchive(ar, got)), 0o644); err != nil {
					t.Fatalf("write updated file: %v", err)
				}
				t.Logf("updated %s", file)
				return
			}
			tc.Run(t, generate)
		})
	}
}
