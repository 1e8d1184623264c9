package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"lotwise/internal/infrastructure/catalog"
)

const serviceVersion = "0.0.1"

// HealthHandler reports service liveness plus catalog file presence, so a
// silently empty catalog (duty = 0, no zoning enrichment) is diagnosable.

type HealthHandler struct {
	catalogDir string
}

func NewHealthHandler(catalogDir string) *HealthHandler {
	return &HealthHandler{catalogDir: catalogDir}
}

// Health reports service status and catalog availability.
//
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	files := map[string]bool{
		catalog.ZoningFile: fileExists(filepath.Join(h.catalogDir, catalog.ZoningFile)),
		catalog.CostFile:   fileExists(filepath.Join(h.catalogDir, catalog.CostFile)),
		catalog.DutyFile:   fileExists(filepath.Join(h.catalogDir, catalog.DutyFile)),
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"version":       serviceVersion,
		"catalogs_dir":  h.catalogDir,
		"files_present": files,
	})
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
