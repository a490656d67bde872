package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"furnitrack/internal/auth"
	"furnitrack/internal/models"
	"furnitrack/internal/storage/sqlite"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	tempDir, err := os.MkdirTemp("", "furnitrack-router-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	verifier := auth.NewAdminVerifier("admin@furnitrack.com", "admin123", "Administrator")
	tokens := auth.NewJWTManager("test-secret", time.Hour)
	return New(store, verifier, tokens, tempDir)
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestEmployeeEndpoints(t *testing.T) {
	h := newTestRouter(t)

	t.Run("create returns 201 with timestamps", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/employees",
			`{"id":"e1","name":"Ivan Petrov","position":"Assembler","rate":500,"hireDate":"2024-03-01","contactInfo":"+7 900"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201; body %s", w.Code, w.Body.String())
		}
		var e models.Employee
		if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if e.CreatedAt == "" || e.UpdatedAt == "" {
			t.Errorf("timestamps not stamped: %+v", e)
		}
	})

	t.Run("create without name is rejected", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/employees", `{"id":"e2"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		w := doJSON(t, h, http.MethodGet, "/api/employees", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var employees []models.Employee
		if err := json.Unmarshal(w.Body.Bytes(), &employees); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(employees) != 1 || employees[0].ID != "e1" {
			t.Errorf("unexpected list: %+v", employees)
		}
	})

	t.Run("update", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPut, "/api/employees/e1",
			`{"name":"Ivan Petrov","position":"Senior Assembler","rate":550,"hireDate":"2024-03-01","contactInfo":"+7 900"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
		}
		var e models.Employee
		if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if e.ID != "e1" || e.Position != "Senior Assembler" {
			t.Errorf("unexpected update response: %+v", e)
		}
	})

	t.Run("update unknown id returns 404", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPut, "/api/employees/ghost", `{"name":"Nobody"}`)
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"error"`) {
			t.Errorf("error body missing: %s", w.Body.String())
		}
	})

	t.Run("delete returns message body", func(t *testing.T) {
		w := doJSON(t, h, http.MethodDelete, "/api/employees/e1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"message"`) {
			t.Errorf("message body missing: %s", w.Body.String())
		}
	})
}

func TestRecordEndpoints(t *testing.T) {
	h := newTestRouter(t)

	t.Run("quantity is recomputed server-side", func(t *testing.T) {
		// Client sends quantity 999; the server derives 3 from the items.
		w := doJSON(t, h, http.MethodPost, "/api/assembly-records",
			`{"id":"r1","employeeId":"e1","date":"2024-05-10","quantity":999,"totalPrice":210,
			  "items":[{"id":"i1","name":"Wardrobe","quantity":2,"price":100,"priceWithTax":80,"totalItemPriceWithTax":160},
			           {"id":"i2","name":"Desk","quantity":1,"price":62.5,"priceWithTax":50,"totalItemPriceWithTax":50}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201; body %s", w.Code, w.Body.String())
		}
		var record models.AssemblyRecord
		if err := json.Unmarshal(w.Body.Bytes(), &record); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if record.Quantity != 3 {
			t.Errorf("Quantity = %d, want 3 (client value must be discarded)", record.Quantity)
		}
		if record.TotalPrice != 210 {
			t.Errorf("TotalPrice = %v, want the client-sent 210", record.TotalPrice)
		}
	})

	t.Run("items deserialize on read", func(t *testing.T) {
		w := doJSON(t, h, http.MethodGet, "/api/assembly-records", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var records []models.AssemblyRecord
		if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(records) != 1 || len(records[0].Items) != 2 {
			t.Fatalf("unexpected records: %+v", records)
		}
		if records[0].Items[0].TotalItemPriceWithTax != 160 {
			t.Errorf("item pricing lost in round-trip: %+v", records[0].Items[0])
		}
	})

	t.Run("batch inserts atomically and returns the list", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/assembly-records/batch",
			`[{"id":"b1","employeeId":"e1","date":"2024-05-11","items":[{"id":"i1","name":"Shelf","quantity":4,"price":10,"priceWithTax":8,"totalItemPriceWithTax":32}],"totalPrice":32},
			  {"id":"b2","employeeId":"e2","date":"2024-05-11","items":[],"totalPrice":0}]`)
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201; body %s", w.Code, w.Body.String())
		}
		var records []models.AssemblyRecord
		if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(records) != 2 || records[0].Quantity != 4 || records[0].CreatedAt == "" {
			t.Errorf("unexpected batch response: %+v", records)
		}
	})

	t.Run("batch with a duplicate id persists nothing", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/assembly-records/batch",
			`[{"id":"b3","employeeId":"e1","date":"2024-05-12","items":[]},
			  {"id":"b1","employeeId":"e1","date":"2024-05-12","items":[]}]`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500; body %s", w.Code, w.Body.String())
		}

		list := doJSON(t, h, http.MethodGet, "/api/assembly-records", "")
		var records []models.AssemblyRecord
		if err := json.Unmarshal(list.Body.Bytes(), &records); err != nil {
			t.Fatalf("decode: %v", err)
		}
		for _, r := range records {
			if r.ID == "b3" {
				t.Error("partial batch state visible: b3 was persisted")
			}
		}
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/assembly-records/batch", `[]`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("delete missing record returns 404", func(t *testing.T) {
		w := doJSON(t, h, http.MethodDelete, "/api/assembly-records/ghost", "")
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})
}

func TestDanglingEmployeeReference(t *testing.T) {
	h := newTestRouter(t)

	doJSON(t, h, http.MethodPost, "/api/employees", `{"id":"e1","name":"Ivan Petrov"}`)
	doJSON(t, h, http.MethodPost, "/api/assembly-records",
		`{"id":"r1","employeeId":"e1","date":"2024-05-10","items":[]}`)

	w := doJSON(t, h, http.MethodDelete, "/api/employees/e1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", w.Code)
	}

	list := doJSON(t, h, http.MethodGet, "/api/assembly-records", "")
	var records []models.AssemblyRecord
	if err := json.Unmarshal(list.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 1 || records[0].EmployeeID != "e1" {
		t.Errorf("record should keep dangling employeeId e1: %+v", records)
	}
}

func TestSettingsEndpoints(t *testing.T) {
	h := newTestRouter(t)

	t.Run("get returns seeded defaults", func(t *testing.T) {
		w := doJSON(t, h, http.MethodGet, "/api/settings", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var s models.Settings
		if err := json.Unmarshal(w.Body.Bytes(), &s); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if s.CompanyName != "FurniTrack" || s.DefaultPercentage != 20 {
			t.Errorf("unexpected defaults: %+v", s)
		}
	})

	t.Run("out-of-range percentage leaves storage untouched", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPut, "/api/settings", `{"companyName":"Acme","defaultPercentage":150}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}

		check := doJSON(t, h, http.MethodGet, "/api/settings", "")
		var s models.Settings
		if err := json.Unmarshal(check.Body.Bytes(), &s); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if s.CompanyName != "FurniTrack" || s.DefaultPercentage != 20 {
			t.Errorf("settings changed despite validation failure: %+v", s)
		}
	})

	t.Run("blank company name is rejected", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPut, "/api/settings", `{"companyName":"   ","defaultPercentage":10}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("valid update does read-after-write", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPut, "/api/settings", `{"companyName":" Acme Assembly ","defaultPercentage":15}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
		}
		var s models.Settings
		if err := json.Unmarshal(w.Body.Bytes(), &s); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if s.CompanyName != "Acme Assembly" || s.DefaultPercentage != 15 || s.UpdatedAt == "" {
			t.Errorf("unexpected canonical row: %+v", s)
		}
	})
}

func TestLoginEndpoint(t *testing.T) {
	h := newTestRouter(t)

	t.Run("valid credentials issue a token", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/login", `{"email":"admin@furnitrack.com","password":"admin123"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
		}
		var resp struct {
			Token string `json:"token"`
			Name  string `json:"name"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Token == "" || resp.Name != "Administrator" {
			t.Errorf("unexpected login response: %+v", resp)
		}
	})

	t.Run("bad credentials are rejected", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/login", `{"email":"admin@furnitrack.com","password":"nope"}`)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestUnmatchedAPIRoute(t *testing.T) {
	h := newTestRouter(t)

	w := doJSON(t, h, http.MethodGet, "/api/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "API endpoint not found" {
		t.Errorf("body = %v", body)
	}
}

func TestSPAFallback(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "furnitrack-spa-*")
	if err != nil {
		t.Fatalf("temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })
	if err := os.WriteFile(filepath.Join(tempDir, "index.html"), []byte("<html>app</html>"), 0644); err != nil {
		t.Fatalf("write index: %v", err)
	}

	h := spaHandler(tempDir)

	for _, path := range []string{"/", "/employees", "/records/deep/link"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "app") {
			t.Errorf("%s: status %d, body %q", path, w.Code, w.Body.String())
		}
	}
}
