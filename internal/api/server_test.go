package api_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"nuros/internal/analysis"
	"nuros/internal/api"
	"nuros/internal/logging"
	"nuros/internal/risk"
	"nuros/internal/testsupport"
)

const sampleRate = 16000

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestServer(t *testing.T) *api.Server {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	session := analysis.NewSession(cfg, risk.ZeroNoise(), logging.NewNop())
	return api.NewServer(cfg, session, logging.NewNop())
}

func postAnalyze(t *testing.T, server *api.Server, wav []byte, fields map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if wav != nil {
		part, err := writer.CreateFormFile("audio", "clip.wav")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(wav); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v\nbody: %s", err, rec.Body.String())
	}
	return rec, env
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if !env.Success {
		t.Fatalf("success = false: %s", rec.Body.String())
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	server := newTestServer(t)
	wav := testsupport.EncodeWAV(t, testsupport.Tone(sampleRate, 2.0, 150, 0.8), sampleRate)

	rec, env := postAnalyze(t, server, wav, map[string]string{
		"subject_id": "PAT-WEB00001",
		"life_stage": "Menopause",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}
	if !env.Success {
		t.Fatalf("success = false: %s", env.Error)
	}

	var result analysis.Result
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.SubjectID != "PAT-WEB00001" {
		t.Fatalf("subject = %q, want the submitted id", result.SubjectID)
	}
	if result.Assessment.LifeStage != risk.LifeStageMenopause {
		t.Fatalf("life stage = %s, want Menopause", result.Assessment.LifeStage)
	}
	if result.Drift != nil {
		t.Fatal("first upload should have no drift verdict")
	}
}

func TestAnalyzeRemembersBaselinePerSubject(t *testing.T) {
	server := newTestServer(t)
	wav := testsupport.EncodeWAV(t, testsupport.Tone(sampleRate, 2.0, 150, 0.8), sampleRate)
	fields := map[string]string{"subject_id": "PAT-WEB00002"}

	if rec, _ := postAnalyze(t, server, wav, fields); rec.Code != http.StatusOK {
		t.Fatalf("first upload status = %d", rec.Code)
	}
	_, env := postAnalyze(t, server, wav, fields)

	var result analysis.Result
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Drift == nil {
		t.Fatal("second upload for the same subject should carry a drift verdict")
	}
	if result.Drift.Alert {
		t.Fatalf("identical clip alerted: %s", result.Drift.Message)
	}
}

func TestAnalyzeRequiresAudioField(t *testing.T) {
	server := newTestServer(t)

	rec, env := postAnalyze(t, server, nil, map[string]string{"subject_id": "PAT-WEB00003"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Success || env.Error == "" {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
}

func TestAnalyzeRejectsUnvoicedAudio(t *testing.T) {
	server := newTestServer(t)
	wav := testsupport.EncodeWAV(t, testsupport.Silence(sampleRate, 2.0), sampleRate)

	rec, env := postAnalyze(t, server, wav, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422\nbody: %s", rec.Code, rec.Body.String())
	}
	if env.Success {
		t.Fatal("success = true for unvoiced audio")
	}
}

func TestAnalyzeRejectsUnknownLifeStage(t *testing.T) {
	server := newTestServer(t)
	wav := testsupport.EncodeWAV(t, testsupport.Tone(sampleRate, 2.0, 150, 0.8), sampleRate)

	rec, _ := postAnalyze(t, server, wav, map[string]string{"life_stage": "unknown"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
