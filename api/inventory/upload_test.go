package inventory

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	cfg := NewDefaultConfig()
	cfg.OutputDir = t.TempDir()
	return cfg
}

func multipartBody(t *testing.T, filename, content string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestMonthFromEvents(t *testing.T) {
	m, y, ok := monthFromEvents(EventMap{
		"2025-06-15": "SALE",
		"2025-05-02": "EORS",
		"garbage":    "IGNORED",
	})
	require.True(t, ok)
	assert.Equal(t, 5, m)
	assert.Equal(t, 2025, y)

	_, _, ok = monthFromEvents(EventMap{"garbage": "X"})
	assert.False(t, ok)
	_, _, ok = monthFromEvents(nil)
	assert.False(t, ok)
}

func TestUploadCategorySheetHandler(t *testing.T) {
	cfg := testConfig(t)
	sheet := strings.Join([]string{
		"Date,Event,Jeans",
		"2025-05-01,ALL,1000",
		"Rate,,100000",
		"No of slot,,2",
		"Allocation,,GROUP A",
		"Total_revenue,,1",
		"Total_impressions,,1",
		"Discount,,0",
		"Page,,HOME",
	}, "\n")
	body, contentType := multipartBody(t, "category.csv", sheet, nil)

	req := httptest.NewRequest(http.MethodPost, "/inventory/upload/category", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	UploadCategorySheet(cfg, "Category Pages", "category_pages_output.csv")(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(1), resp["rows"])
	assert.NotEmpty(t, resp["batch_id"])

	_, err := os.Stat(filepath.Join(cfg.OutputDir, "category_pages_output.csv"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(cfg.OutputDir, cfg.VerificationFile))
	assert.NoError(t, err)
}

func TestUploadCategorySheetRejectsGet(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/inventory/upload/category", nil)
	UploadCategorySheet(testConfig(t), "Category Pages", "out.csv")(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestUploadCategorySheetNoFile(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/inventory/upload/category", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()

	UploadCategorySheet(testConfig(t), "Category Pages", "out.csv")(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadPLAWorkbookHandler(t *testing.T) {
	cfg := testConfig(t)
	sheet := strings.Join([]string{
		"Business Unit,PLA TARGET,Floor Price PLA,SDA,SDA(0th slot)",
		"Personal Care,1,500,3.1,0.31",
	}, "\n")
	body, contentType := multipartBody(t, "pla.csv", sheet, map[string]string{
		"month": "5",
		"year":  "2025",
	})

	req := httptest.NewRequest(http.MethodPost, "/inventory/upload/pla", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	UploadPLAWorkbook(cfg)(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(5), resp["month"])

	outputs, ok := resp["outputs"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, outputs, "pla")
	assert.Contains(t, outputs, "monetised")
	assert.Contains(t, outputs, "monetised_zeroslot")

	for _, name := range []string{"plasdb_output.csv", "monetised_output.csv", "monetised_zeroslot_output.csv"} {
		_, err := os.Stat(filepath.Join(cfg.OutputDir, name))
		assert.NoError(t, err, name)
	}
}

func TestUploadHPTargetingHandler(t *testing.T) {
	cfg := testConfig(t)
	csvBody := "date,impressions,event,rate\n2025-05-01,2.5,MEGA SALE,120\n"
	body, contentType := multipartBody(t, "hp.csv", csvBody, nil)

	req := httptest.NewRequest(http.MethodPost, "/inventory/upload/hp-targeting", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	UploadHPTargeting(cfg)(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	_, err := os.Stat(filepath.Join(cfg.OutputDir, "hp_targeting_output.csv"))
	assert.NoError(t, err)
}

func TestUploadHPTargetingRejectsNonCSV(t *testing.T) {
	body, contentType := multipartBody(t, "hp.xlsx", "whatever", nil)
	req := httptest.NewRequest(http.MethodPost, "/inventory/upload/hp-targeting", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	UploadHPTargeting(testConfig(t))(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateFixedHandlerJSON(t *testing.T) {
	cfg := testConfig(t)
	payload, _ := json.Marshal(map[string]interface{}{"month": "April", "year": 2025})

	req := httptest.NewRequest(http.MethodPost, "/inventory/generate/fixed-properties", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	GenerateFixedHandler(cfg)(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(30*7), resp["rows"])

	_, err := os.Stat(filepath.Join(cfg.OutputDir, "fixed_properties_output.csv"))
	assert.NoError(t, err)
}

func TestGenerateFixedHandlerValidation(t *testing.T) {
	cfg := testConfig(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/inventory/generate/fixed-properties", strings.NewReader("month=&year="))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	GenerateFixedHandler(cfg)(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "month is required")

	rec = httptest.NewRecorder()
	payload, _ := json.Marshal(map[string]interface{}{"month": "Smarch", "year": 2025})
	req = httptest.NewRequest(http.MethodPost, "/inventory/generate/fixed-properties", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	GenerateFixedHandler(cfg)(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
