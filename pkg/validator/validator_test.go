package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/ghuser/recount/pkg/validator"
)

type sampleStruct struct {
	Name         string  `validate:"required,min=1,max=10"`
	Category     string  `validate:"required,oneof=top upper lower underwear"`
	Price        float64 `validate:"gte=0"`
	PurchaseDate string  `validate:"omitempty,datetime=2006-01-02"`
}

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{
		Name:         "hello",
		Category:     "top",
		Price:        19.90,
		PurchaseDate: "2025-03-15",
	}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleStruct{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors_required(t *testing.T) {
	s := sampleStruct{}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["Name"] != "This field is required" {
		t.Errorf("unexpected Name message: %q", m["Name"])
	}
	if m["Category"] != "This field is required" {
		t.Errorf("unexpected Category message: %q", m["Category"])
	}
}

func TestFormatValidationErrors_oneof(t *testing.T) {
	s := sampleStruct{Name: "ok", Category: "hat"}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["Category"] != "Must be one of: top, upper, lower, underwear" {
		t.Errorf("unexpected Category message: %q", m["Category"])
	}
}

func TestFormatValidationErrors_datetime(t *testing.T) {
	s := sampleStruct{Name: "ok", Category: "top", PurchaseDate: "15/03/2025"}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["PurchaseDate"] != "Must be a date in 2006-01-02 format" {
		t.Errorf("unexpected PurchaseDate message: %q", m["PurchaseDate"])
	}
}

func TestFormatValidationErrors_gte(t *testing.T) {
	s := sampleStruct{Name: "ok", Category: "top", Price: -1}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["Price"] != "Must be greater than or equal to 0" {
		t.Errorf("unexpected Price message: %q", m["Price"])
	}
}

func TestFormatValidationErrors_max(t *testing.T) {
	s := sampleStruct{Name: "12345678901", Category: "top"} // 11 chars > max=10
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["Name"] != "Maximum length is 10" {
		t.Errorf("unexpected Name message: %q", m["Name"])
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- ValidateRequest ---

type itemReq struct {
	Name     string `json:"name"     validate:"required,min=1,max=255"`
	Category string `json:"category" validate:"required,oneof=top upper lower underwear"`
}

func TestValidateRequest_valid(t *testing.T) {
	body := `{"name":"Classic White Tee","category":"top"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Name != "Classic White Tee" {
		t.Errorf("unexpected Name: %q", req.Name)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid JSON") {
		t.Errorf("expected 'invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	body := `{"name":"Classic White Tee"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if ok {
		t.Fatal("expected ok=false for missing category")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "validation failed") {
		t.Errorf("expected 'validation failed' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_invalidCategory(t *testing.T) {
	body := `{"name":"Classic White Tee","category":"hat"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if ok {
		t.Fatal("expected ok=false for invalid category")
	}
	if !strings.Contains(w.Body.String(), "Must be one of") {
		t.Errorf("expected oneof error in body, got: %s", w.Body.String())
	}
}
