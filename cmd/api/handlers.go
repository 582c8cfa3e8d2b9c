package main

import (
	"log"
	"net/http"
	"time"

	"github.com/imadgeboyega/destiny-fusion/internal/common/utils"
	"github.com/imadgeboyega/destiny-fusion/internal/fusion"
	"github.com/imadgeboyega/destiny-fusion/internal/matrix"
)

// healthCheck returns server health status
func healthCheck(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(startTime).String(),
	})
}

// apiInfo returns API information
func apiInfo(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 API info request from %s", r.RemoteAddr)

	base := fusion.BasePath
	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"name":         "Destiny Fusion API",
		"version":      "1.0.0",
		"status":       "running",
		"matrixLayers": matrix.LayerCount(),
		"endpoints": map[string]interface{}{
			"health":  "GET /health",
			"metrics": "GET /metrics",
			"fusion": map[string]string{
				"compatibility": "POST " + base + "/compatibility",
				"matrix":        "POST " + base + "/matrix",
				"matrixSummary": "GET " + base + "/matrix/summary",
				"daeun":         "POST " + base + "/daeun",
				"seun":          "POST " + base + "/seun",
				"yongsin":       "POST " + base + "/yongsin",
				"cacheStats":    "GET " + base + "/cache/stats",
				"cacheClear":    "DELETE " + base + "/cache",
			},
		},
	})
}
