package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/seitarof/gen-res/internal/generator"
	"github.com/seitarof/gen-res/internal/hierarchy"
	"github.com/seitarof/gen-res/internal/resolver"
	"github.com/seitarof/gen-res/internal/schema"
)

func newRunner() Runner {
	return NewRunner(
		schema.NewLoader(),
		generator.New(resolver.New(), generator.NewFileWriter()),
	)
}

// Each archive holds types.json and the expected types.res. The archive
// comment, when present, lists extra command line flags.
func TestRunner_Run_Golden(t *testing.T) {
	archives, err := filepath.Glob(filepath.Join("testdata", "golden", "*.txtar"))
	if err != nil {
		t.Fatalf("Glob() error = %v", err)
	}
	if len(archives) == 0 {
		t.Fatal("no golden archives found")
	}

	for _, path := range archives {
		t.Run(strings.TrimSuffix(filepath.Base(path), ".txtar"), func(t *testing.T) {
			ar, err := txtar.ParseFile(path)
			if err != nil {
				t.Fatalf("ParseFile() error = %v", err)
			}
			files := map[string][]byte{}
			for _, f := range ar.Files {
				files[f.Name] = f.Data
			}
			want, ok := files["types.res"]
			if !ok {
				t.Fatalf("%s: missing types.res", path)
			}

			dir := t.TempDir()
			in := filepath.Join(dir, "types.json")
			out := filepath.Join(dir, "types.res")
			if err := os.WriteFile(in, files["types.json"], 0o644); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			args := []string{"--input", in, "--output", out}
			if comment := strings.TrimSpace(string(ar.Comment)); strings.HasPrefix(comment, "--") {
				args = append(args, strings.Fields(comment)...)
			}
			cfg, err := ParseArgs(args)
			if err != nil {
				t.Fatalf("ParseArgs() error = %v", err)
			}
			if err := newRunner().Run(cfg); err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			got, err := os.ReadFile(out)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if string(got) != string(want) {
				t.Fatalf("generated bindings differ\n--- got ---\n%s\n--- want ---\n%s", got, want)
			}
		})
	}
}

func TestRunner_Run_UnresolvedBaseWritesNothing(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "types.json")
	out := filepath.Join(dir, "types.res")
	doc := `{"classes":[{"name":"Player","base_types":[{"name":"Entity"}],"constants":[],"functions":[],"properties":[]}]}`
	if err := os.WriteFile(in, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	err := newRunner().Run(&Config{Input: in, Output: out})
	if !errors.Is(err, hierarchy.ErrUnresolvedBase) {
		t.Fatalf("Run() error = %v, want ErrUnresolvedBase", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatalf("output should not exist after a failed run, stat error = %v", statErr)
	}
}

func TestRunner_Run_MissingInput(t *testing.T) {
	dir := t.TempDir()
	err := newRunner().Run(&Config{Input: filepath.Join(dir, "missing.json"), Output: filepath.Join(dir, "types.res")})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Run() error = %v, want not-exist error", err)
	}
}
