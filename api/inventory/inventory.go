package inventory

import (
	"fmt"
	"log"
	"net/http"
)

// StartInventoryService exposes the upload and generation endpoints. One
// upload produces one flat CSV per processor plus an appended verification
// report; nothing is persisted beyond those files.
func StartInventoryService(cfg *Config, port int) {
	mux := http.NewServeMux()
	mux.HandleFunc("/inventory/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Inventory Service is active"))
	})
	mux.HandleFunc("/inventory/upload/category", UploadCategorySheet(cfg, "Category Pages", "category_pages_output.csv"))
	mux.HandleFunc("/inventory/upload/beauty", UploadCategorySheet(cfg, "Beauty Pages", "beauty_pages_output.csv"))
	mux.HandleFunc("/inventory/upload/pla", UploadPLAWorkbook(cfg))
	mux.HandleFunc("/inventory/upload/hp-targeting", UploadHPTargeting(cfg))
	mux.HandleFunc("/inventory/generate/fixed-properties", GenerateFixedHandler(cfg))

	addr := fmt.Sprintf(":%d", port)
	log.Println("Inventory Service started on", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Inventory Service failed: %v", err)
	}
}
