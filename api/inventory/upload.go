package inventory

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"AdServeDesk/internal/checksum"
	"AdServeDesk/internal/logger"
	"AdServeDesk/internal/tabular"

	"github.com/google/uuid"
)

// writeRun lands one processor's outputs: the flat CSV and the appended
// verification report. The returned digest lets consumers verify the file
// they pick up.
func writeRun(cfg *Config, filename string, rows []Row, s *Summary, withTotals bool) (string, string, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return "", "", fmt.Errorf("create output dir: %w", err)
	}
	out := filepath.Join(cfg.OutputDir, filename)
	if err := WriteLedgerCSV(out, rows, withTotals); err != nil {
		return "", "", err
	}
	digest, err := checksum.SumFile(out)
	if err != nil {
		return "", "", fmt.Errorf("digest output %s: %w", out, err)
	}
	s.Add("Output Checksum", digest)
	if err := s.AppendTo(filepath.Join(cfg.OutputDir, cfg.VerificationFile)); err != nil {
		return "", "", err
	}
	return out, digest, nil
}

func audit(msg string) {
	if logger.GlobalLogger != nil {
		logger.GlobalLogger.LogAudit(msg)
	} else {
		log.Println(msg)
	}
}

// UploadCategorySheet handles one category-style sheet (category pages,
// beauty pages): multipart file in, canonical ledger CSV out.
func UploadCategorySheet(cfg *Config, label, outName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			http.Error(w, "Failed to parse multipart form", http.StatusBadRequest)
			return
		}
		files := r.MultipartForm.File["file"]
		if len(files) == 0 {
			http.Error(w, "No file uploaded", http.StatusBadRequest)
			return
		}
		file, err := files[0].Open()
		if err != nil {
			http.Error(w, "Failed to open file: "+files[0].Filename, http.StatusBadRequest)
			return
		}
		defer file.Close()

		wb, err := ParseWorkbook(file, fileExt(files[0].Filename))
		if err != nil {
			http.Error(w, "Invalid file: "+err.Error(), http.StatusBadRequest)
			return
		}
		grid, ok := wb.First()
		if !ok {
			http.Error(w, "Empty workbook", http.StatusBadRequest)
			return
		}

		batchID := uuid.New().String()
		rows, summary, err := ProcessCategoryPages(grid, label)
		if err != nil {
			http.Error(w, "Processing failed: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}
		out, digest, err := writeRun(cfg, outName, rows, summary, true)
		if err != nil {
			http.Error(w, "Failed to write output: "+err.Error(), http.StatusInternalServerError)
			return
		}
		audit(fmt.Sprintf("%s processed: batch=%s rows=%d output=%s checksum=%s", label, batchID, len(rows), out, digest))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":  true,
			"batch_id": batchID,
			"label":    label,
			"rows":     len(rows),
			"output":   out,
			"checksum": digest,
		})
	}
}

// monthFromEvents derives the processing month from the earliest date in the
// event map when the caller did not pass month/year explicitly.
func monthFromEvents(events EventMap) (month, year int, ok bool) {
	var earliest time.Time
	for date := range events {
		t, err := time.Parse("2006-01-02", date)
		if err != nil {
			continue
		}
		if earliest.IsZero() || t.Before(earliest) {
			earliest = t
		}
	}
	if earliest.IsZero() {
		return 0, 0, false
	}
	return int(earliest.Month()), earliest.Year(), true
}

// UploadPLAWorkbook runs the three paid-listing processors (PLA targets,
// monetised search, monetised zero-slot) off one workbook with a "data"
// sheet and an optional "eventname" sheet. Month and year come from the
// form or, failing that, the event map.
func UploadPLAWorkbook(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			http.Error(w, "Failed to parse multipart form", http.StatusBadRequest)
			return
		}
		files := r.MultipartForm.File["file"]
		if len(files) == 0 {
			http.Error(w, "No file uploaded", http.StatusBadRequest)
			return
		}
		file, err := files[0].Open()
		if err != nil {
			http.Error(w, "Failed to open file: "+files[0].Filename, http.StatusBadRequest)
			return
		}
		defer file.Close()

		wb, err := ParseWorkbook(file, fileExt(files[0].Filename))
		if err != nil {
			http.Error(w, "Invalid file: "+err.Error(), http.StatusBadRequest)
			return
		}
		grid, ok := wb.Sheet(dataSheetName)
		if !ok {
			if grid, ok = wb.First(); !ok {
				http.Error(w, "Empty workbook", http.StatusBadRequest)
				return
			}
		}
		events := wb.EventMap()

		month, _ := strconv.Atoi(r.FormValue("month"))
		year, _ := strconv.Atoi(r.FormValue("year"))
		if month == 0 || year == 0 {
			if m, y, ok := monthFromEvents(events); ok {
				month, year = m, y
			} else {
				now := time.Now()
				month, year = int(now.Month()), now.Year()
			}
		}

		tb, err := tabular.InferHeader(tabular.Prune(grid))
		if err != nil {
			http.Error(w, "Unusable data sheet: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}

		batchID := uuid.New().String()
		outputs := map[string]interface{}{}
		var failures []string

		type plaRun struct {
			name    string
			outName string
			run     func() ([]Row, *Summary, error)
		}
		runs := []plaRun{
			{"pla", "plasdb_output.csv", func() ([]Row, *Summary, error) {
				return ProcessPLA(tb, cfg, month, year, events)
			}},
			{"monetised", "monetised_output.csv", func() ([]Row, *Summary, error) {
				return ProcessMonetised(tb, cfg, "MONETISED", monetisedSDAColumn, month, year, events)
			}},
			{"monetised_zeroslot", "monetised_zeroslot_output.csv", func() ([]Row, *Summary, error) {
				return ProcessMonetised(tb, cfg, "MONETISED_ZEROSLOT", FindZeroSlotColumn(tb), month, year, events)
			}},
		}
		for _, pr := range runs {
			rows, summary, err := pr.run()
			if err != nil {
				audit(fmt.Sprintf("PLA batch %s: %s failed: %v", batchID, pr.name, err))
				failures = append(failures, fmt.Sprintf("%s: %v", pr.name, err))
				continue
			}
			out, digest, err := writeRun(cfg, pr.outName, rows, summary, false)
			if err != nil {
				failures = append(failures, fmt.Sprintf("%s: %v", pr.name, err))
				continue
			}
			outputs[pr.name] = map[string]interface{}{"output": out, "rows": len(rows), "checksum": digest}
		}
		if len(outputs) == 0 {
			http.Error(w, "All processors failed: "+fmt.Sprint(failures), http.StatusUnprocessableEntity)
			return
		}
		audit(fmt.Sprintf("PLA workbook processed: batch=%s month=%d year=%d ok=%d failed=%d",
			batchID, month, year, len(outputs), len(failures)))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":  true,
			"batch_id": batchID,
			"month":    month,
			"year":     year,
			"outputs":  outputs,
			"failures": failures,
		})
	}
}

// UploadHPTargeting handles the homepage-targeting CSV feed.
func UploadHPTargeting(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			http.Error(w, "Failed to parse multipart form", http.StatusBadRequest)
			return
		}
		files := r.MultipartForm.File["file"]
		if len(files) == 0 {
			http.Error(w, "No file uploaded", http.StatusBadRequest)
			return
		}
		if fileExt(files[0].Filename) != ".csv" {
			http.Error(w, "HP targeting feed must be a CSV", http.StatusBadRequest)
			return
		}
		file, err := files[0].Open()
		if err != nil {
			http.Error(w, "Failed to open file: "+files[0].Filename, http.StatusBadRequest)
			return
		}
		defer file.Close()

		reader := csv.NewReader(file)
		reader.FieldsPerRecord = -1
		records, err := reader.ReadAll()
		if err != nil {
			http.Error(w, "Invalid CSV: "+err.Error(), http.StatusBadRequest)
			return
		}

		batchID := uuid.New().String()
		rows, summary, err := ProcessHPTargeting(records, cfg)
		if err != nil {
			http.Error(w, "Processing failed: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}
		out, digest, err := writeRun(cfg, "hp_targeting_output.csv", rows, summary, false)
		if err != nil {
			http.Error(w, "Failed to write output: "+err.Error(), http.StatusInternalServerError)
			return
		}
		audit(fmt.Sprintf("HP targeting processed: batch=%s rows=%d skipped reported in %s",
			batchID, len(rows), cfg.VerificationFile))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":  true,
			"batch_id": batchID,
			"rows":     len(rows),
			"output":   out,
			"checksum": digest,
		})
	}
}

// GenerateFixedHandler expands the fixed-properties template for a month
// named in the request; no input file is involved.
func GenerateFixedHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		var req struct {
			Month string `json:"month"`
			Year  int    `json:"year"`
		}
		if r.Header.Get("Content-Type") == "application/json" {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "Invalid JSON", http.StatusBadRequest)
				return
			}
		} else {
			req.Month = r.FormValue("month")
			req.Year, _ = strconv.Atoi(r.FormValue("year"))
		}
		if req.Month == "" {
			http.Error(w, "month required", http.StatusBadRequest)
			return
		}
		if req.Year == 0 {
			req.Year = time.Now().Year()
		}

		out, count, err := RunFixedProperties(cfg, req.Month, req.Year)
		if err != nil {
			http.Error(w, "Generation failed: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}
		audit(fmt.Sprintf("Fixed properties generated: month=%s year=%d rows=%d", req.Month, req.Year, count))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"month":   req.Month,
			"year":    req.Year,
			"rows":    count,
			"output":  out,
		})
	}
}
