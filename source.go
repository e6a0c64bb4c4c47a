package figsync

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"gopkg.in/yaml.v3"

	core "github.com/yacobolo/figsync/internal/figsync"
)

// SourceConfig selects the local token files overlaid on the built-in table
type SourceConfig struct {
	SourceDir string   // Directory the include patterns are relative to
	Includes  []string // Glob patterns (supports **)
}

// LoadSource starts from the built-in design table and overlays every token
// file under cfg.SourceDir matching cfg.Includes, pattern by pattern and in
// path order within a pattern. YAML files hold token tables; CSS files
// contribute custom properties holding hex colors or linear gradients. Files
// ignored by the directory's .gitignore are skipped. A file that cannot be
// read or parsed becomes a warning.
func LoadSource(cfg SourceConfig) (Source, []string, error) {
	src := core.DefaultSource()
	if cfg.SourceDir == "" || len(cfg.Includes) == 0 {
		return src, nil, nil
	}

	files, err := sourceFiles(cfg.SourceDir, cfg.Includes)
	if err != nil {
		return src, nil, err
	}

	var warnings []string
	for _, file := range files {
		overlay, err := readSourceFile(file)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Failed to load %s: %v", file, err))
			continue
		}
		src = src.Merge(overlay)
	}
	return src, warnings, nil
}

// sourceFiles expands includes below dir, dropping duplicates, directories
// and gitignored paths.
func sourceFiles(dir string, includes []string) ([]string, error) {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		gi = nil
	}

	var files []string
	seen := make(map[string]bool)
	for _, pattern := range includes {
		matches, err := doublestar.FilepathGlob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}
		sort.Strings(matches)

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			if gi != nil {
				if rel, err := filepath.Rel(dir, match); err == nil && gi.MatchesPath(rel) {
					continue
				}
			}
			files = append(files, match)
		}
	}
	return files, nil
}

func readSourceFile(path string) (Source, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("read file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var src Source
		if err := yaml.Unmarshal(content, &src); err != nil {
			return Source{}, fmt.Errorf("parse yaml: %w", err)
		}
		return src, nil
	case ".css":
		props := core.ParseCustomProperties(string(content))
		return Source{Colors: core.ColorTokensFromCSS(props)}, nil
	default:
		return Source{}, fmt.Errorf("unsupported token file type %q", filepath.Ext(path))
	}
}
