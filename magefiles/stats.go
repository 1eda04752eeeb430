package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// goStats counts Go source lines by kind and by package directory.
type goStats struct {
	Prod, Test, Gen int
	Packages        map[string]int
}

// Stats prints Go lines of code, split into production, test and generated
// lines, as one JSON record.
func Stats() error {
	st, err := collectStats(".")
	if err != nil {
		return err
	}
	line, err := json.Marshal(st.record())
	if err != nil {
		return err
	}
	fmt.Println(string(line))
	return nil
}

func collectStats(root string) (goStats, error) {
	st := goStats{Packages: make(map[string]int)}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			// Build tooling, artifacts and hidden or reference trees.
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
				name == "vendor" || name == binaryDir || name == "magefiles") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, ".go") {
			return nil
		}
		n, err := countLines(path)
		if err != nil {
			return nil
		}
		switch {
		case strings.HasSuffix(name, "_gen.go"), strings.HasSuffix(name, "_gen_test.go"):
			st.Gen += n
		case strings.HasSuffix(name, "_test.go"):
			st.Test += n
		default:
			st.Prod += n
		}
		rel, err := filepath.Rel(root, filepath.Dir(path))
		if err != nil {
			return nil
		}
		st.Packages[filepath.ToSlash(rel)] += n
		return nil
	})
	return st, err
}

func (st goStats) record() map[string]any {
	return map[string]any{
		"go_loc_prod": st.Prod,
		"go_loc_test": st.Test,
		"go_loc_gen":  st.Gen,
		"go_loc":      st.Prod + st.Test,
		"go_loc_pkg":  st.Packages,
	}
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	return count, scanner.Err()
}
