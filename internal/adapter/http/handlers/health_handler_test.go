package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"lotwise/internal/infrastructure/catalog"
)

func TestHealthHandler_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, catalog.ZoningFile), []byte("r_code,min_lot_sqm,avg_lot_sqm,min_frontage_m\n"), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	r := gin.New()
	r.GET("/v1/health", NewHealthHandler(dir).Health)

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Status       string          `json:"status"`
		Version      string          `json:"version"`
		CatalogsDir  string          `json:"catalogs_dir"`
		FilesPresent map[string]bool `json:"files_present"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}

	if body.Status != "ok" || body.CatalogsDir != dir {
		t.Fatalf("unexpected body: %+v", body)
	}
	if !body.FilesPresent[catalog.ZoningFile] {
		t.Fatalf("expected zoning file to be reported present: %+v", body.FilesPresent)
	}
	if body.FilesPresent[catalog.DutyFile] {
		t.Fatalf("expected duty file to be reported absent: %+v", body.FilesPresent)
	}
}
