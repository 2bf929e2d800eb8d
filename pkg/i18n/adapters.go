package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// TranslationAdapter loads translations keyed by language.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from an in-memory map.
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements the TranslationAdapter interface
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// EmbeddedFsAdapter reads every catalog in one directory of a file system,
// usually an embed.FS compiled into the binary. Files whose extension the
// parser does not support are skipped. Catalogs for the same language are
// merged, later files winning on duplicate top-level keys.
type EmbeddedFsAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewEmbeddedFsAdapter creates a new EmbeddedFsAdapter instance.
// Returns nil if parser or fsys is nil, or dir is empty.
func NewEmbeddedFsAdapter(parser Parser, fsys fs.FS, dir string) *EmbeddedFsAdapter {
	if parser == nil || fsys == nil || dir == "" {
		return nil
	}

	return &EmbeddedFsAdapter{
		parser: parser,
		fsys:   fsys,
		dir:    dir,
	}
}

// Load implements the TranslationAdapter interface
func (a *EmbeddedFsAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingTranslationsCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadEmbeddedDirectory, err)
	}

	all := make(map[string]map[string]any)
	processed := 0

	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingTranslationsCancelled, err)
		}

		filePath := path.Join(a.dir, entry.Name())
		if err := a.processFile(ctx, filePath, all); err != nil {
			return nil, fmt.Errorf("%s: %w", filePath, err)
		}
		processed++
	}

	if processed == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, a.dir)
	}

	return all, nil
}

func (a *EmbeddedFsAdapter) processFile(ctx context.Context, filePath string, all map[string]map[string]any) error {
	content, err := fs.ReadFile(a.fsys, filePath)
	if err != nil {
		return errors.Join(ErrFailedToReadEmbeddedFile, err)
	}

	translations, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return errors.Join(ErrFailedToParseEmbeddedFile, err)
	}

	for lang, values := range translations {
		if all[lang] == nil {
			all[lang] = make(map[string]any, len(values))
		}
		maps.Copy(all[lang], values)
	}

	return nil
}

// MultiAdapter merges the catalogs of several adapters. Adapters are loaded in
// order and later ones win on duplicate top-level keys of a language.
type MultiAdapter struct {
	adapters []TranslationAdapter
}

func NewMultiAdapter(adapters ...TranslationAdapter) *MultiAdapter {
	return &MultiAdapter{adapters: adapters}
}

// Load implements the TranslationAdapter interface
func (a *MultiAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	all := make(map[string]map[string]any)
	for _, adapter := range a.adapters {
		if adapter == nil {
			return nil, ErrNilAdapter
		}
		translations, err := adapter.Load(ctx)
		if err != nil {
			return nil, err
		}
		for lang, values := range translations {
			if all[lang] == nil {
				all[lang] = make(map[string]any, len(values))
			}
			maps.Copy(all[lang], values)
		}
	}
	return all, nil
}
