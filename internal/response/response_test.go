package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestErrorEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, http.StatusBadRequest, "NO_FILE", "No file uploaded")

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var env Envelope
	if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	if env.Success {
		t.Error("success = true in error envelope")
	}
	if env.Code != "NO_FILE" || env.Error != "No file uploaded" {
		t.Errorf("envelope = %+v", env)
	}
}

func TestJSONWritesFlatPayload(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusOK, map[string]interface{}{"success": true, "savings": -10})

	var body map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}
	if body["savings"] != float64(-10) {
		t.Errorf("savings = %v", body["savings"])
	}
}
