package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyRequest    = errors.New("request is required")
	ErrRequestTooLong  = errors.New("request is too long")
	ErrInvalidSavePath = errors.New("invalid save path")
	ErrEmptyFileName   = errors.New("file name is required")
	ErrInvalidFileName = errors.New("invalid file name")
	ErrEmptyFile       = errors.New("file is empty")
	ErrFileTooLarge    = errors.New("file is too large")
)
