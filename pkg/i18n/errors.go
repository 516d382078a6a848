package i18n

import "errors"

// Errors carry a stable message; the underlying cause is attached with errors.Join.
var (
	ErrNilAdapter = errors.New("translation adapter is nil")

	// JSON operations
	ErrFailedToMarshalJSON  = errors.New("failed to marshal translations to JSON")
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// TOML operations
	ErrTOMLParsingCancelled = errors.New("toml parsing cancelled")
	ErrFailedToParseTOML    = errors.New("failed to parse TOML content")

	// Shared parser result checks
	ErrInvalidBundleStructure = errors.New("invalid translation bundle structure")
	ErrNoTranslations         = errors.New("no translations found")

	// File operations
	ErrLoadingFileCancelled = errors.New("loading translation file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
	ErrEmptyFile            = errors.New("translation file is empty")

	// Directory and fs.FS operations
	ErrFailedToAccessDirectory   = errors.New("failed to access directory")
	ErrNotADirectory             = errors.New("path is not a directory")
	ErrLoadingDirectoryCancelled = errors.New("loading from directory cancelled")
	ErrFailedToReadDirectory     = errors.New("failed to read directory")
	ErrNoTranslationFiles        = errors.New("no valid translation files found")
)
