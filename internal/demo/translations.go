package demo

import (
	"context"
	"embed"
	"io/fs"

	"github.com/dmitrymomot/valtree/pkg/i18n"
)

//go:embed translations/*
var translationFiles embed.FS

// Translations returns the embedded message bundles (en JSON, de YAML, fr TOML).
func Translations() fs.FS {
	sub, err := fs.Sub(translationFiles, "translations")
	if err != nil {
		panic(err)
	}
	return sub
}

// NewTranslator loads bundles from dir, or the embedded ones when dir is empty.
func NewTranslator(ctx context.Context, dir string, opts ...i18n.Option) (*i18n.Translator, error) {
	var adapter i18n.TranslationAdapter
	if dir == "" {
		adapter = i18n.NewFSAdapter(i18n.NewMultiParser(), Translations(), ".")
	} else {
		adapter = i18n.NewDirectoryAdapter(i18n.NewMultiParser(), dir)
	}
	return i18n.NewTranslator(ctx, adapter, opts...)
}
