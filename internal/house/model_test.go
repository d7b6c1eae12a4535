package house

import (
	"strings"
	"testing"
)

func TestFormValidate(t *testing.T) {
	valid := Form{Name: "Bedsitter B1", Type: Bedsitter, RentAmount: 8000}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Form)
		wantErr string
	}{
		{"missing name", func(f *Form) { f.Name = "" }, "name"},
		{"missing type", func(f *Form) { f.Type = "" }, "type"},
		{"unknown type", func(f *Form) { f.Type = "penthouse" }, "invalid house type"},
		{"missing rent", func(f *Form) { f.RentAmount = 0 }, "rent"},
		{"negative rent", func(f *Form) { f.RentAmount = -100 }, "rent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)
			err := form.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestTypeValidity(t *testing.T) {
	if !Bedsitter.IsValid() || !SingleRoom.IsValid() {
		t.Error("known types should be valid")
	}
	if Type("penthouse").IsValid() {
		t.Error("unknown type should be invalid")
	}
}

func TestTypeLabel(t *testing.T) {
	if got := SingleRoom.Label(); got != "Single Room" {
		t.Errorf("label = %q", got)
	}
	if got := Type("weird").Label(); got != "weird" {
		t.Errorf("fallback label = %q", got)
	}
}
