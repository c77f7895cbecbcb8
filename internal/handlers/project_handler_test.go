package handlers

import (
	"mime/multipart"
	"testing"

	"github.com/rangachimalgi/real-estate-crm-backend/internal/models"
)

func TestDecodeJSONField(t *testing.T) {
	loc, err := decodeJSONField[models.Location](`{"city":"Bengaluru","state":"Karnataka"}`, "location")
	if err != nil {
		t.Fatalf("decode valid: %v", err)
	}
	if loc == nil || loc.City != "Bengaluru" || loc.State != "Karnataka" {
		t.Errorf("decoded location = %+v", loc)
	}

	loc, err = decodeJSONField[models.Location]("", "location")
	if err != nil {
		t.Fatalf("empty field: %v", err)
	}
	if loc != nil {
		t.Errorf("empty field decoded to %+v, want nil", loc)
	}

	_, err = decodeJSONField[models.Location](`{"city":`, "location")
	if err == nil {
		t.Fatal("malformed JSON accepted")
	}
	if err.Error() != `invalid JSON in field "location"` {
		t.Errorf("error = %q", err)
	}
}

func TestFormString(t *testing.T) {
	form := &multipart.Form{Value: map[string][]string{
		"name":  {"Luxury Heights"},
		"empty": {""},
	}}

	if got := formString(form, "name"); got == nil || *got != "Luxury Heights" {
		t.Errorf("name = %v", got)
	}
	// Empty string is still "present"; only missing keys return nil.
	if got := formString(form, "empty"); got == nil || *got != "" {
		t.Errorf("empty = %v", got)
	}
	if got := formString(form, "absent"); got != nil {
		t.Errorf("absent = %q, want nil", *got)
	}
}
