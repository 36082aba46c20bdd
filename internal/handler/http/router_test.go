package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presencelab/presence-gateway-go/internal/config"
	"github.com/presencelab/presence-gateway-go/internal/pkg/analyzer"
	"github.com/presencelab/presence-gateway-go/internal/pkg/sessionstore"
	"github.com/presencelab/presence-gateway-go/internal/service/projection"
	sessionService "github.com/presencelab/presence-gateway-go/internal/service/session"
)

const routerResultJSON = `{
	"status": "success",
	"filename": "presences.xlsx",
	"report_id": "rep-7",
	"analysis": {
		"total_records": 2,
		"employees": 1,
		"date_range": {"start": "2025-03-01", "end": "2025-03-31"}
	},
	"detailed_stats": {
		"total_retards": "00:30",
		"total_heures_sup_50": "00:00",
		"total_heures_sup_100": "00:00",
		"total_temps_travail": "160:00",
		"moyenne_temps_travail": "160:00",
		"stats_par_employe": [
			{"nom": "Alice", "retards": "00:30", "heures_sup": "00:00", "temps_travail": "160:00", "jours_travailles": 20}
		],
		"daily_records": [
			{"Date": "2025-03-03", "Name": "Alice", "Retard": "00:30", "Depart_Anticipe": "00:00",
			 "Heures_Sup_50": "00:00", "Heures_Sup_100": "00:00", "Pause_Effective": "01:00",
			 "Temps_Travail": "08:00", "Penalites": "00:00"}
		]
	},
	"message": "ok"
}`

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/employees", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"employees": []string{"Alice"}})
	})
	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Write([]byte(routerResultJSON))
	})
	mux.HandleFunc("/download/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Write([]byte("xlsx-bytes"))
	})
	upstream := httptest.NewServer(mux)
	t.Cleanup(upstream.Close)

	cfg := &config.Config{
		App:       config.AppConfig{Env: "test", FrontendURL: "http://localhost:5173"},
		Analyzer:  config.AnalyzerConfig{BaseURL: upstream.URL},
		Session:   config.SessionConfig{TTL: time.Hour},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
	}

	store := sessionstore.NewStore(cfg.Session.TTL)
	client := analyzer.NewClient(cfg.Analyzer.BaseURL)
	svc := sessionService.NewSessionService(store, client, projection.NewProjectionService())

	return NewRouter(cfg,
		NewSessionHandler(svc),
		NewExceptionHandler(svc),
		NewEditHandler(svc),
	)
}

func uploadRequest(t *testing.T, target string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "presences.xlsx")
	require.NoError(t, err)
	_, err = part.Write([]byte("spreadsheet"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	require.True(t, envelope.Success)
	return envelope.Data
}

func createRouterSession(t *testing.T, router http.Handler) string {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "/api/v1/sessions"))
	require.Equal(t, http.StatusCreated, rec.Code)
	data := decodeData(t, rec)
	id, ok := data["session_id"].(string)
	require.True(t, ok)
	return id
}

func TestRouter_CreateSession(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "/api/v1/sessions"))

	require.Equal(t, http.StatusCreated, rec.Code)
	data := decodeData(t, rec)
	assert.NotEmpty(t, data["session_id"])
	assert.Equal(t, []any{"Alice"}, data["employees"])
}

func TestRouter_CreateSession_MissingFile(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader("not-multipart"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ExceptionFlow(t *testing.T) {
	router := newTestRouter(t)
	id := createRouterSession(t, router)

	body := strings.NewReader(`{"employee_name": "Alice", "day": 0, "enabled": true}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/sessions/"+id+"/exceptions/rest-days", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+id+"/exceptions/holidays", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	holidayID, ok := decodeData(t, rec)["id"].(string)
	require.True(t, ok)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/sessions/"+id+"/exceptions/holidays/"+holidayID, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ExceptionValidation(t *testing.T) {
	router := newTestRouter(t)
	id := createRouterSession(t, router)

	body := strings.NewReader(`{"employee_name": "", "day": 9, "enabled": true}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/sessions/"+id+"/exceptions/rest-days", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRouter_SubmitAndNavigate(t *testing.T) {
	router := newTestRouter(t)
	id := createRouterSession(t, router)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+id+"/analysis", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+id+"/view", strings.NewReader(`{"view": "roster"}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, "roster", data["view"])

	// Individual straight from roster fails only without the roster hop;
	// jumping from aggregate is rejected.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+id+"/view", strings.NewReader(`{"view": "aggregate"}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+id+"/view", strings.NewReader(`{"view": "individual", "employee_ref": "x"}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRouter_ViewWithoutResult(t *testing.T) {
	router := newTestRouter(t)
	id := createRouterSession(t, router)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+id+"/view", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRouter_UnknownSession(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/nope/exceptions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_DownloadReport(t *testing.T) {
	router := newTestRouter(t)
	id := createRouterSession(t, router)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+id+"/analysis", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+id+"/report", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "rapport_presence_")
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "xlsx-bytes", string(body))
}
