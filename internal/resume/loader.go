package resume

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/go-cvgen/internal/yamlutil"
)

// Sentinel errors for data loading.
var (
	ErrDataNotFound = errors.New("resume data file not found")
	ErrDataParse    = errors.New("failed to parse resume data")
)

// dataFilePrefix and dataFileExt form the per-language file name scheme:
// resume_<lang>.yaml under the data directory.
const (
	dataFilePrefix = "resume_"
	dataFileExt    = ".yaml"
)

// Loader reads language-keyed resume documents and caches them per
// language. The cache is owned by whoever constructs the Loader; call
// Reset at the start of each build invocation so no state leaks across
// builds. Cached documents are read-only snapshots: filtering always
// copies (see FilterForVariant), never mutates the cached load.
type Loader struct {
	dataDir string
	cache   map[string]*Document
}

// NewLoader creates a Loader reading resume_<lang>.yaml files from dataDir.
func NewLoader(dataDir string) *Loader {
	return &Loader{
		dataDir: dataDir,
		cache:   make(map[string]*Document),
	}
}

// Reset clears the per-language cache.
func (l *Loader) Reset() {
	l.cache = make(map[string]*Document)
}

// Path returns the data file path for a language code.
func (l *Loader) Path(lang string) string {
	return filepath.Join(l.dataDir, dataFilePrefix+lang+dataFileExt)
}

// Load returns the cached document for lang, reading it on first use.
// A missing or unreadable file yields an empty document together with the
// error, so callers can warn and let downstream steps proceed with
// defaults. The empty document is cached like any other result.
func (l *Loader) Load(lang string) (*Document, error) {
	if doc, ok := l.cache[lang]; ok {
		return doc, nil
	}

	path := l.Path(lang)
	data, err := os.ReadFile(path) // #nosec G304 -- data dir is operator-provided
	if err != nil {
		empty := &Document{}
		l.cache[lang] = empty
		if os.IsNotExist(err) {
			return empty, fmt.Errorf("%w: %s", ErrDataNotFound, path)
		}
		return empty, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc Document
	if err := yamlutil.Unmarshal(data, &doc); err != nil {
		empty := &Document{}
		l.cache[lang] = empty
		return empty, fmt.Errorf("%w: %s: %v", ErrDataParse, path, err)
	}

	l.cache[lang] = &doc
	return &doc, nil
}

// Languages discovers the language codes with a data file present,
// sorted for deterministic build order.
func (l *Loader) Languages() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(l.dataDir, dataFilePrefix+"*"+dataFileExt))
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", l.dataDir, err)
	}

	langs := make([]string, 0, len(matches))
	for _, m := range matches {
		base := strings.TrimSuffix(filepath.Base(m), dataFileExt)
		lang := strings.TrimPrefix(base, dataFilePrefix)
		if lang != "" {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	return langs, nil
}
