// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-agent-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChatInputValidator(t *testing.T) {
	v := NewChatInputValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewChatInputValidator()
	ctx := context.Background()

	req := models.ProcessRequest{Request: "build a todo app"}
	file := models.UploadFile{Name: "notes.md", Content: []byte("# notes")}

	assert.NoError(t, v.Validate(ctx, req))
	assert.NoError(t, v.Validate(ctx, &req))
	assert.NoError(t, v.Validate(ctx, file))
	assert.NoError(t, v.Validate(ctx, &file))

	assert.ErrorIs(t, v.Validate(ctx, "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
}

func TestValidate_ProcessRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.ProcessRequest
		fields  []string
		wantErr error
	}{
		{name: "valid", req: models.ProcessRequest{Request: "hi"}},
		{name: "valid with save path", req: models.ProcessRequest{Request: "hi", SavePath: "out/app"}},
		{name: "empty", req: models.ProcessRequest{}, wantErr: ErrEmptyRequest},
		{name: "whitespace", req: models.ProcessRequest{Request: " \n\t"}, wantErr: ErrEmptyRequest},
		{name: "too long", req: models.ProcessRequest{Request: strings.Repeat("a", MaxRequestLength+1)}, wantErr: ErrRequestTooLong},
		{name: "max length multibyte", req: models.ProcessRequest{Request: strings.Repeat("가", MaxRequestLength)}},
		{name: "absolute save path", req: models.ProcessRequest{Request: "hi", SavePath: "/etc"}, wantErr: ErrInvalidSavePath},
		{name: "escaping save path", req: models.ProcessRequest{Request: "hi", SavePath: "out/../../x"}, wantErr: ErrInvalidSavePath},
		{name: "windows drive", req: models.ProcessRequest{Request: "hi", SavePath: `C:\temp`}, wantErr: ErrInvalidSavePath},
		{name: "backslash escape", req: models.ProcessRequest{Request: "hi", SavePath: `..\x`}, wantErr: ErrInvalidSavePath},
		{name: "only save path field", req: models.ProcessRequest{SavePath: "ok"}, fields: []string{FieldSavePath}},
		{name: "unknown field", req: models.ProcessRequest{Request: "hi"}, fields: []string{"nope"}, wantErr: ErrUnknownField},
	}

	v := NewChatInputValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_UploadFile(t *testing.T) {
	tests := []struct {
		name    string
		file    models.UploadFile
		fields  []string
		wantErr error
	}{
		{name: "valid", file: models.UploadFile{Name: "main.go", Content: []byte("package main")}},
		{name: "no name", file: models.UploadFile{Content: []byte("x")}, wantErr: ErrEmptyFileName},
		{name: "path in name", file: models.UploadFile{Name: "../main.go", Content: []byte("x")}, wantErr: ErrInvalidFileName},
		{name: "dot dot", file: models.UploadFile{Name: "..", Content: []byte("x")}, wantErr: ErrInvalidFileName},
		{name: "empty", file: models.UploadFile{Name: "a.txt"}, wantErr: ErrEmptyFile},
		{name: "too large", file: models.UploadFile{Name: "a.bin", Content: make([]byte, MaxUploadSize+1)}, wantErr: ErrFileTooLarge},
		{name: "only name", file: models.UploadFile{Name: "a.txt"}, fields: []string{FieldFileName}},
		{name: "unknown field", file: models.UploadFile{Name: "a"}, fields: []string{FieldRequest}, wantErr: ErrUnknownField},
	}

	v := NewChatInputValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.file, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
