package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	server "github.com/colet-sistemas/solicita/pkg/controller/http"
	"github.com/colet-sistemas/solicita/pkg/domain/model"
	"github.com/colet-sistemas/solicita/pkg/service/layout"
	"github.com/colet-sistemas/solicita/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	renderer, err := layout.NewRenderer()
	gt.NoError(t, err)
	intake := usecase.NewIntake(model.DefaultCatalog(), usecase.NewCompose(renderer))
	return server.NewRouter(context.Background(), intake)
}

func getJSON(t *testing.T, router http.Handler, path string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if out != nil && rec.Code == http.StatusOK {
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	var body map[string]string
	rec := getJSON(t, router, "/health", &body)
	gt.Equal(t, rec.Code, http.StatusOK)
	gt.Equal(t, body["status"], "healthy")
	gt.Equal(t, body["service"], "solicita")
}

func TestOptionListEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("users", func(t *testing.T) {
		var users []map[string]any
		rec := getJSON(t, router, "/api/users", &users)
		gt.Equal(t, rec.Code, http.StatusOK)
		gt.Equal(t, strings.Split(rec.Header().Get("Content-Type"), ";")[0], "application/json")
		gt.True(t, len(users) > 0)
	})

	t.Run("clients", func(t *testing.T) {
		var clients []string
		rec := getJSON(t, router, "/api/clients", &clients)
		gt.Equal(t, rec.Code, http.StatusOK)
		gt.True(t, len(clients) > 0)
	})

	t.Run("databases for a known client", func(t *testing.T) {
		var dbs []string
		rec := getJSON(t, router, "/api/databases?client=Natur+(7)", &dbs)
		gt.Equal(t, rec.Code, http.StatusOK)
		gt.Equal(t, len(dbs), 1)
	})

	t.Run("databases for an unknown client", func(t *testing.T) {
		rec := getJSON(t, router, "/api/databases?client=Cliente+Fantasma", nil)
		gt.Equal(t, rec.Code, http.StatusNotFound)
	})

	t.Run("modules and operating systems", func(t *testing.T) {
		var modules []string
		gt.Equal(t, getJSON(t, router, "/api/modules", &modules).Code, http.StatusOK)
		gt.True(t, len(modules) > 0)

		var systems []string
		gt.Equal(t, getJSON(t, router, "/api/operating-systems", &systems).Code, http.StatusOK)
		gt.True(t, len(systems) > 0)
	})

	t.Run("categories", func(t *testing.T) {
		var cats []map[string]string
		rec := getJSON(t, router, "/api/categories", &cats)
		gt.Equal(t, rec.Code, http.StatusOK)
		gt.Equal(t, len(cats), 2)
		gt.Equal(t, cats[0]["id"], "bug")
		gt.Equal(t, cats[0]["title"], "Reportar Bug")
	})
}

func submissionForm(t *testing.T, fields map[string]string, attachments map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		gt.NoError(t, w.WriteField(k, v))
	}
	for name, data := range attachments {
		fw, err := w.CreateFormFile("attachments", name)
		gt.NoError(t, err)
		_, err = fw.Write(data)
		gt.NoError(t, err)
	}
	gt.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func bugForm() map[string]string {
	return map[string]string{
		"user":        "cristiane",
		"category":    "bug",
		"title":       "Erro no módulo financeiro!!",
		"description": "O relatório de contas a pagar não abre",
		"occurredAt":  "2024-03-05T14:30",
		"severity":    "4",
		"urgency":     "3",
		"trend":       "2",
		"client":      "Natur (7)",
	}
}

func TestSubmitSolicitation(t *testing.T) {
	router := newTestRouter(t)

	post := func(t *testing.T, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/api/solicitations", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid submission streams the document", func(t *testing.T) {
		body, contentType := submissionForm(t, bugForm(), nil)
		rec := post(t, body, contentType)

		gt.Equal(t, rec.Code, http.StatusOK)
		gt.Equal(t, rec.Header().Get("Content-Type"), "application/pdf")
		gt.Equal(t, rec.Header().Get("Content-Disposition"),
			`attachment; filename="Reportar_Bug_20240305_Erro_no_m_dulo_fina.pdf"`)
		gt.True(t, rec.Header().Get("X-Document-Pages") != "")

		data, err := io.ReadAll(rec.Body)
		gt.NoError(t, err)
		gt.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	})

	t.Run("attachments travel with the form", func(t *testing.T) {
		body, contentType := submissionForm(t, bugForm(), map[string][]byte{
			"log_erro.txt": []byte("stack trace"),
		})
		rec := post(t, body, contentType)
		gt.Equal(t, rec.Code, http.StatusOK)
		// placeholder card forces an attachments page
		gt.True(t, rec.Header().Get("X-Document-Pages") != "1")
	})

	t.Run("unknown category is a bad request", func(t *testing.T) {
		fields := bugForm()
		fields["category"] = "feature"
		body, contentType := submissionForm(t, fields, nil)
		rec := post(t, body, contentType)
		gt.Equal(t, rec.Code, http.StatusBadRequest)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		fields := bugForm()
		fields["user"] = "nobody"
		body, contentType := submissionForm(t, fields, nil)
		rec := post(t, body, contentType)
		gt.Equal(t, rec.Code, http.StatusNotFound)
	})

	t.Run("missing title is a bad request", func(t *testing.T) {
		fields := bugForm()
		delete(fields, "title")
		body, contentType := submissionForm(t, fields, nil)
		rec := post(t, body, contentType)
		gt.Equal(t, rec.Code, http.StatusBadRequest)
	})

	t.Run("non-multipart body is rejected", func(t *testing.T) {
		rec := post(t, bytes.NewBufferString(`{"user":"cristiane"}`), "application/json")
		gt.Equal(t, rec.Code, http.StatusBadRequest)
	})
}
