package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// TranslationAdapter interface defines how translations are loaded
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter is a simple adapter that uses an in-memory map as the translation source
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

// FileAdapter loads a single bundle file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a new FileAdapter instance
// Returns nil if parser is nil or path is empty
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

// Load implements the TranslationAdapter interface
func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	content, err := readWithContext(ctx, func() ([]byte, error) { return os.ReadFile(a.path) })
	if err != nil {
		return nil, err
	}
	return parseContent(ctx, a.parser, a.path, content)
}

// DirectoryAdapter loads every supported file of a directory and merges them.
type DirectoryAdapter struct {
	parser Parser
	path   string
}

// NewDirectoryAdapter creates a new DirectoryAdapter instance
// Returns nil if parser is nil or path is empty
func NewDirectoryAdapter(parser Parser, path string) *DirectoryAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &DirectoryAdapter{parser: parser, path: path}
}

// Load implements the TranslationAdapter interface
func (a *DirectoryAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	info, err := os.Stat(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToAccessDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, a.path)
	}
	return loadTree(ctx, os.DirFS(a.path), ".", a.parser, a.path)
}

// FSAdapter loads bundles from a directory of an fs.FS, typically an embed.FS.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter creates a new FSAdapter instance
// Returns nil if parser or fsys is nil, or dir is empty
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if parser == nil || fsys == nil || dir == "" {
		return nil
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

// Load implements the TranslationAdapter interface
func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	return loadTree(ctx, a.fsys, a.dir, a.parser, a.dir)
}

// loadTree parses every supported file directly under dir in name order, so
// later files override earlier ones. Files that fail are
// skipped as long as at least one succeeds; otherwise all failures are returned.
func loadTree(ctx context.Context, fsys fs.FS, dir string, parser Parser, label string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	all := make(map[string]map[string]any)
	var failures []error
	loaded := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !parser.SupportsFileExtension(filepath.Ext(name)) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
		}

		filePath := path.Join(dir, name)
		content, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			failures = append(failures, errors.Join(ErrFailedToReadFile, err))
			continue
		}
		bundle, err := parseContent(ctx, parser, name, content)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		for lang, messages := range bundle {
			if all[lang] == nil {
				all[lang] = make(map[string]any)
			}
			mergeMessages(all[lang], messages)
		}
		loaded++
	}

	if loaded == 0 {
		failures = append([]error{fmt.Errorf("%w in %s", ErrNoTranslationFiles, label)}, failures...)
		return nil, errors.Join(failures...)
	}
	return all, nil
}

func parseContent(ctx context.Context, parser Parser, name string, content []byte) (map[string]map[string]any, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, name)
	}
	bundle, err := parseNamed(ctx, parser, name, string(content))
	if err != nil {
		return nil, errors.Join(fmt.Errorf("%w: %s", ErrFailedToParseFile, name), err)
	}
	return bundle, nil
}

// readWithContext runs a blocking read and gives up when ctx is done first.
func readWithContext(ctx context.Context, read func() ([]byte, error)) ([]byte, error) {
	type result struct {
		content []byte
		err     error
	}
	done := make(chan result, 1)
	go func() {
		content, err := read()
		done <- result{content: content, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingFileCancelled, ctx.Err())
	case r := <-done:
		if r.err != nil {
			return nil, errors.Join(ErrFailedToReadFile, r.err)
		}
		return r.content, nil
	}
}

// mergeMessages copies src into dst, descending into nested groups so that
// two files may contribute to the same group.
func mergeMessages(dst, src map[string]any) {
	for key, val := range src {
		srcGroup, srcIsGroup := val.(map[string]any)
		dstGroup, dstIsGroup := dst[key].(map[string]any)
		if srcIsGroup && dstIsGroup {
			mergeMessages(dstGroup, srcGroup)
			continue
		}
		dst[key] = val
	}
}
