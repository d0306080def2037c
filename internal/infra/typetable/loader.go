// Package typetable loads user overrides for the hand-curated MIME lookup
// tables. The built-in defaults are known to be incomplete, so both the
// extension map and the archive set can be extended from a YAML file.
package typetable

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/loan-mgt/ipfs-viewer/internal/domain"
)

type yamlTable struct {
	// Extensions maps full MIME strings to file extensions (no dot).
	Extensions map[string]string `yaml:"extensions"`

	// Archives lists extra full MIME strings classified as archives.
	Archives []string `yaml:"archives"`
}

// Load reads a YAML override file and merges it over the built-in defaults.
// Override extensions win on conflict; archive entries are additive.
func Load(path string) (domain.TypeTable, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.TypeTable{}, &domain.OpError{
			Op:   "typetable.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto yamlTable
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.TypeTable{}, &domain.OpError{
			Op:   "typetable.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return merge(path, domain.DefaultTypeTable(), dto)
}

func merge(path string, base domain.TypeTable, dto yamlTable) (domain.TypeTable, error) {
	for mime, ext := range dto.Extensions {
		m := domain.CanonicalMime(mime)
		e := strings.TrimSpace(strings.TrimPrefix(ext, "."))
		if m == "" || !strings.Contains(m, "/") {
			return domain.TypeTable{}, invalidField(path, fmt.Sprintf("extensions[%q]", mime), "key must be a full MIME string")
		}
		if e == "" {
			return domain.TypeTable{}, invalidField(path, fmt.Sprintf("extensions[%q]", mime), "extension is required")
		}
		base.Extensions[m] = e
	}

	known := make(map[string]struct{}, len(base.ArchiveTypes))
	for _, m := range base.ArchiveTypes {
		known[domain.CanonicalMime(m)] = struct{}{}
	}
	for i, mime := range dto.Archives {
		m := domain.CanonicalMime(mime)
		if m == "" || !strings.Contains(m, "/") {
			return domain.TypeTable{}, invalidField(path, fmt.Sprintf("archives[%d]", i), "entry must be a full MIME string")
		}
		if _, ok := known[m]; ok {
			continue
		}
		known[m] = struct{}{}
		base.ArchiveTypes = append(base.ArchiveTypes, m)
	}

	return base, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "typetable.load",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("%s: %s", field, msg),
	}
}
