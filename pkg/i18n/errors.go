package i18n

import "errors"

var (
	ErrNilAdapter         = errors.New("i18n: adapter is nil")
	ErrFailedToParseJSON  = errors.New("i18n: failed to parse JSON catalog")
	ErrFailedToParseYAML  = errors.New("i18n: failed to parse YAML catalog")
	ErrInvalidCatalog     = errors.New("i18n: catalog must map languages to objects")
	ErrFailedToReadFile   = errors.New("i18n: failed to read translation file")
	ErrUnsupportedFile    = errors.New("i18n: unsupported translation file extension")
	ErrLoadingCancelled   = errors.New("i18n: loading translations cancelled")
	ErrFailedToReadFSRoot = errors.New("i18n: failed to read translations directory")
)
