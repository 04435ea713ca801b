package views

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-agent-console/internal/adapter"
	"github.com/MKhiriev/go-agent-console/internal/app"
	"github.com/MKhiriev/go-agent-console/internal/logger"
	"github.com/MKhiriev/go-agent-console/internal/state"
	"github.com/MKhiriev/go-agent-console/internal/validators"
	"github.com/MKhiriev/go-agent-console/models"
)

const (
	actionClear = "clear"

	multipartMemory = 32 << 20
)

// ChatView shows the transcript of the visitor session and handles the
// chat, upload and clear forms.
type ChatView struct {
	tmpl      *template.Template
	validator validators.Validator
	chatPath  string
}

type chatData struct {
	Messages models.ChatTranscript
}

// Render implements router.Component.
func (v *ChatView) Render(w io.Writer, r *http.Request) error {
	chat, err := chatStore(r)
	if err != nil {
		return fmt.Errorf("chat view: %w", err)
	}

	var data chatData
	if id := sessionID(r); id != "" {
		data.Messages = chat.Transcript(id)
	}

	return v.tmpl.Execute(w, data)
}

// Submit implements router.Submitter. Every outcome, including validation
// and backend failures, is recorded in the transcript and the visitor is
// redirected back to the chat.
func (v *ChatView) Submit(w http.ResponseWriter, r *http.Request) error {
	chat, err := chatStore(r)
	if err != nil {
		return fmt.Errorf("chat view: %w", err)
	}
	api, err := backend(r)
	if err != nil {
		return fmt.Errorf("chat view: %w", err)
	}

	session := ensureSession(w, r, v.chatPath)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err = v.upload(r, api, chat, session)
	} else {
		err = v.process(r, api, chat, session)
	}
	if err != nil {
		return err
	}

	http.Redirect(w, r, v.chatPath, http.StatusSeeOther)
	return nil
}

func (v *ChatView) process(r *http.Request, api adapter.BackendAdapter, chat *state.ChatStore, session string) error {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		return chat.Append(session, errorMessage(app.MsgInvalidDataProvided))
	}

	if r.PostFormValue("action") == actionClear {
		chat.Clear(session)
		return nil
	}

	req := models.ProcessRequest{
		Request:  strings.TrimSpace(r.PostFormValue("request")),
		SavePath: strings.TrimSpace(r.PostFormValue("save_path")),
	}
	if err := v.validator.Validate(r.Context(), req); err != nil {
		log.Debug().Err(err).Msg("invalid chat request")
		if errors.Is(err, validators.ErrEmptyRequest) {
			return chat.Append(session, errorMessage(app.MsgEmptyRequest))
		}
		return chat.Append(session, errorMessage(err.Error()))
	}

	if err := chat.Append(session, models.ChatMessage{Role: models.RoleUser, Content: req.Request}); err != nil {
		return err
	}

	resp, err := api.Process(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("process request failed")
		return chat.Append(session, errorMessage(backendErrorText(err)))
	}

	return chat.Append(session, agentMessage(resp))
}

func (v *ChatView) upload(r *http.Request, api adapter.BackendAdapter, chat *state.ChatStore, session string) error {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(nil, r.Body, validators.MaxUploadSize+multipartMemory)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		log.Debug().Err(err).Msg("invalid upload form")
		return chat.Append(session, errorMessage(app.MsgInvalidDataProvided))
	}

	f, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return chat.Append(session, errorMessage(app.MsgEmptyUpload))
	}
	if err != nil {
		return chat.Append(session, errorMessage(app.MsgInvalidDataProvided))
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, validators.MaxUploadSize+1))
	if err != nil {
		return fmt.Errorf("read uploaded file: %w", err)
	}

	file := models.UploadFile{Name: header.Filename, Content: content}
	if err = v.validator.Validate(r.Context(), file); err != nil {
		log.Debug().Err(err).Str("file", file.Name).Msg("invalid upload")
		return chat.Append(session, errorMessage(err.Error()))
	}

	if err = chat.Append(session, models.ChatMessage{Role: models.RoleUser, Content: "upload: " + file.Name}); err != nil {
		return err
	}

	resp, err := api.Upload(r.Context(), file)
	if err != nil {
		log.Error().Err(err).Str("file", file.Name).Msg("upload failed")
		return chat.Append(session, errorMessage(backendErrorText(err)))
	}

	return chat.Append(session, agentMessage(resp))
}

func agentMessage(resp models.AgentResponse) models.ChatMessage {
	return models.ChatMessage{
		Role:    models.RoleAgent,
		Content: resp.Message,
		Status:  resp.Status,
	}
}

func errorMessage(text string) models.ChatMessage {
	return models.ChatMessage{Role: models.RoleError, Content: text}
}

// backendErrorText prefers the backend's own explanation over the
// transport error text.
func backendErrorText(err error) string {
	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) {
		if respErr.Detail != "" {
			return respErr.Detail
		}
		return fmt.Sprintf("%s (%d)", app.MsgBackendUnavailable, respErr.StatusCode)
	}
	return app.MsgBackendUnavailable
}
