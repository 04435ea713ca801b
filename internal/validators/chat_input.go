// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-agent-console/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldRequest targets the free-form instruction of a process request.
	FieldRequest = "request"

	// FieldSavePath targets the optional output location of a process request.
	FieldSavePath = "save_path"

	// FieldFileName targets the name of an uploaded file.
	FieldFileName = "file_name"

	// FieldFileContent targets the body of an uploaded file.
	FieldFileContent = "file_content"
)

const (
	// MaxRequestLength is the longest accepted request, in runes.
	MaxRequestLength = 16_000

	// MaxUploadSize is the largest accepted upload, in bytes.
	MaxUploadSize = 10 << 20
)

// ChatInputValidator validates what visitors submit from the chat view:
// [models.ProcessRequest] and [models.UploadFile].
type ChatInputValidator struct {
}

func NewChatInputValidator() Validator {
	return &ChatInputValidator{}
}

func (v *ChatInputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProcessRequest:
		return v.validateProcessRequest(ctx, value, fields...)
	case *models.ProcessRequest:
		return v.validateProcessRequest(ctx, *value, fields...)

	case models.UploadFile:
		return v.validateUploadFile(ctx, value, fields...)
	case *models.UploadFile:
		return v.validateUploadFile(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateProcessRequest checks a chat instruction.
//
// Default validated fields: Request, SavePath. An empty SavePath is valid;
// a non-empty one must be a relative path that stays inside the backend
// output directory.
func (v *ChatInputValidator) validateProcessRequest(_ context.Context, req models.ProcessRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequest, FieldSavePath}
	}

	for _, f := range fields {
		switch f {
		case FieldRequest:
			if strings.TrimSpace(req.Request) == "" {
				return ErrEmptyRequest
			}
			if utf8.RuneCountInString(req.Request) > MaxRequestLength {
				return ErrRequestTooLong
			}
		case FieldSavePath:
			if req.SavePath == "" {
				continue
			}
			if !isRelativeCleanPath(req.SavePath) {
				return ErrInvalidSavePath
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUploadFile checks an uploaded file.
//
// Default validated fields: FileName, FileContent.
func (v *ChatInputValidator) validateUploadFile(_ context.Context, file models.UploadFile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFileName, FieldFileContent}
	}

	for _, f := range fields {
		switch f {
		case FieldFileName:
			if strings.TrimSpace(file.Name) == "" {
				return ErrEmptyFileName
			}
			if strings.ContainsAny(file.Name, `/\`) || file.Name == "." || file.Name == ".." {
				return ErrInvalidFileName
			}
		case FieldFileContent:
			if len(file.Content) == 0 {
				return ErrEmptyFile
			}
			if len(file.Content) > MaxUploadSize {
				return ErrFileTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isRelativeCleanPath(p string) bool {
	p = strings.ReplaceAll(p, `\`, "/")
	if path.IsAbs(p) || strings.Contains(p, ":") {
		return false
	}
	clean := path.Clean(p)
	return clean != ".." && !strings.HasPrefix(clean, "../")
}
