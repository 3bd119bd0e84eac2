package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/colet-sistemas/solicita/pkg/domain/model"
	"github.com/colet-sistemas/solicita/pkg/domain/types"
	"github.com/colet-sistemas/solicita/pkg/usecase"
	"github.com/colet-sistemas/solicita/pkg/utils/apperr"
	"github.com/m-mizutani/goerr/v2"
)

const maxSubmissionBytes = 64 << 20

type handlers struct {
	intake *usecase.Intake
}

func (h *handlers) users(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.intake.Users())
}

func (h *handlers) clients(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.intake.Clients())
}

func (h *handlers) databases(w http.ResponseWriter, r *http.Request) {
	client := r.URL.Query().Get("client")
	dbs, err := h.intake.Databases(client)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, dbs)
}

func (h *handlers) modules(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.intake.ERPModules())
}

func (h *handlers) operatingSystems(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.intake.OperatingSystems())
}

func (h *handlers) categories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.intake.Categories())
}

// submit accepts the multipart intake form, composes the document and
// streams it back as the download; nothing is stored server-side
func (h *handlers) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxSubmissionBytes); err != nil {
		respondError(w, r, goerr.Wrap(model.ErrInvalidRecord, "unparseable form",
			goerr.V("cause", err.Error())))
		return
	}

	sub := submissionFromForm(r)

	if r.MultipartForm != nil {
		for _, fh := range r.MultipartForm.File["attachments"] {
			att, err := readAttachment(fh)
			if err != nil {
				respondError(w, r, err)
				return
			}
			sub.Attachments = append(sub.Attachments, att)
		}
	}

	artifact, err := h.intake.Submit(r.Context(), sub)
	if err != nil {
		respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.Header().Set("X-Document-Pages", fmt.Sprintf("%d", artifact.PageCount))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(artifact.Data); err != nil {
		apperr.Handle(r.Context(), goerr.Wrap(err, "failed to stream artifact"))
	}
}

func submissionFromForm(r *http.Request) *model.Submission {
	v := r.FormValue
	return &model.Submission{
		User:              types.UserID(v("user")),
		Category:          types.Category(v("category")),
		Title:             v("title"),
		Description:       v("description"),
		OccurredAt:        v("occurredAt"),
		Severity:          v("severity"),
		Urgency:           v("urgency"),
		Trend:             v("trend"),
		AffectsOthers:     v("affectsOthers"),
		ClientName:        v("client"),
		DatabaseID:        v("database"),
		ERPModule:         v("erpModule"),
		ModuleVersion:     v("moduleVersion"),
		ProgramCodes:      v("programCodes"),
		ScreenName:        v("screenName"),
		OperatingSystem:   v("operatingSystem"),
		CurrentProcess:    v("currentProcess"),
		FutureProcess:     v("futureProcess"),
		OperationalImpact: v("operationalImpact"),
	}
}

func readAttachment(fh *multipart.FileHeader) (model.Attachment, error) {
	f, err := fh.Open()
	if err != nil {
		return model.Attachment{}, goerr.Wrap(err, "failed to open attachment",
			goerr.V("filename", fh.Filename))
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return model.Attachment{}, goerr.Wrap(err, "failed to read attachment",
			goerr.V("filename", fh.Filename))
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	return model.Attachment{
		Filename: fh.Filename,
		MimeType: mimeType,
		Size:     int64(len(data)),
		Data:     data,
	}, nil
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	apperr.Handle(r.Context(), err)

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrUserNotFound), errors.Is(err, model.ErrClientNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrInvalidRecord), errors.Is(err, model.ErrUnknownCategory):
		status = http.StatusBadRequest
	}

	respondJSON(w, status, map[string]string{"error": err.Error()})
}
