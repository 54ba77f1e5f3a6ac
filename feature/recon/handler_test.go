package recon

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"mini-reconcile/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	handler := NewHandler(newTestService(t, nil), zap.NewNop())
	handler.RegisterRoutes(app)
	return app
}

// multipartBody builds a multipart form with one CSV file per field.
func multipartBody(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for field, content := range files {
		part, err := writer.CreateFormFile(field, field+".csv")
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func decodeReport(t *testing.T, resp *http.Response) *reconcile.Report {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var report reconcile.Report
	require.NoError(t, json.Unmarshal(body, &report))
	return &report
}

func TestHandleGetRules(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/recon/rules", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var rules reconcile.Rules
	require.NoError(t, json.Unmarshal(body, &rules))
	assert.Equal(t, "transaction_reference", rules.MergeKey)
}

func TestHandleRun(t *testing.T) {
	app := newTestApp(t)

	buf, contentType := multipartBody(t, map[string]string{
		"internal": internalCSV,
		"provider": providerCSV,
	})
	req := httptest.NewRequest(http.MethodPost, "/recon/run", buf)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	report := decodeReport(t, resp)
	assert.Equal(t, 3, report.Summary.Total)
	assert.Equal(t, 1, report.Summary.Matched)
	assert.Equal(t, 1, report.Summary.Mismatched)
	assert.Equal(t, 1, report.Summary.OnlyProvider)
}

func TestHandleRun_MissingUpload(t *testing.T) {
	app := newTestApp(t)

	buf, contentType := multipartBody(t, map[string]string{
		"internal": internalCSV,
	})
	req := httptest.NewRequest(http.MethodPost, "/recon/run", buf)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleRun_EmptyFile(t *testing.T) {
	app := newTestApp(t)

	buf, contentType := multipartBody(t, map[string]string{
		"internal": internalCSV,
		"provider": "",
	})
	req := httptest.NewRequest(http.MethodPost, "/recon/run", buf)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleRun_MissingMergeKey(t *testing.T) {
	app := newTestApp(t)

	buf, contentType := multipartBody(t, map[string]string{
		"internal": "reference,amount,status\nT1,100,OK\n",
		"provider": providerCSV,
	})
	req := httptest.NewRequest(http.MethodPost, "/recon/run", buf)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandleRunObjects_MissingNames(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/recon/objects",
		bytes.NewReader([]byte(`{"internal_object":"internal.csv"}`)))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleRunObjects_InvalidBody(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/recon/objects",
		bytes.NewReader([]byte(`{not json`)))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
