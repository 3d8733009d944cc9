package convert

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestFloat(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    float64
		wantErr bool
	}{
		{name: "float64", in: 3.14, want: 3.14},
		{name: "json number", in: json.Number("1.0e-4"), want: 1.0e-4},
		{name: "json integer widens", in: json.Number("100"), want: 100.0},
		{name: "int widens", in: 42, want: 42.0},
		{name: "int64 widens", in: int64(7), want: 7.0},
		{name: "uint64 widens", in: uint64(9), want: 9.0},
		{name: "bool true rejected", in: true, wantErr: true},
		{name: "bool false rejected", in: false, wantErr: true},
		{name: "string rejected", in: "1.5", wantErr: true},
		{name: "null rejected", in: nil, wantErr: true},
		{name: "object rejected", in: map[string]any{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Float("nominal", tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Float(%v) = %v, want error", tt.in, got)
				}
				if !errors.Is(err, ErrTypeMismatch) {
					t.Errorf("error = %v, want ErrTypeMismatch", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Float(%v) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Float(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    int
		wantErr bool
	}{
		{name: "int", in: 20, want: 20},
		{name: "json integer", in: json.Number("100000"), want: 100000},
		{name: "json exponent integral", in: json.Number("1e3"), want: 1000},
		{name: "integral float", in: 5.0, want: 5},
		{name: "fractional float rejected", in: 5.5, wantErr: true},
		{name: "fractional json rejected", in: json.Number("0.5"), wantErr: true},
		{name: "bool rejected", in: false, wantErr: true},
		{name: "string rejected", in: "10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Int("numberTurns", tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Int(%v) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Int(%v) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Int(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBoolOnlyAcceptsBooleans(t *testing.T) {
	if v, err := Bool("excludeMinimum", true); err != nil || v != true {
		t.Errorf("Bool(true) = %v, %v", v, err)
	}
	for _, in := range []any{1, 0, "true", nil} {
		if _, err := Bool("excludeMinimum", in); err == nil {
			t.Errorf("Bool(%v) succeeded, want error", in)
		}
	}
}

func TestStringOnlyAcceptsStrings(t *testing.T) {
	if v, err := String("name", "Primary"); err != nil || v != "Primary" {
		t.Errorf("String = %v, %v", v, err)
	}
	for _, in := range []any{1, true, nil, []any{}} {
		if _, err := String("name", in); err == nil {
			t.Errorf("String(%v) succeeded, want error", in)
		}
	}
}

func TestNull(t *testing.T) {
	if _, err := Null("x", nil); err != nil {
		t.Errorf("Null(nil) failed: %v", err)
	}
	if _, err := Null("x", 42); err == nil {
		t.Error("Null(42) succeeded, want error")
	}
}

func TestTypeMismatchErrorCarriesPathAndTypes(t *testing.T) {
	_, err := Float("inputs.operatingPoints[0].conditions.ambientTemperature", true)
	var tm *TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatalf("error = %T, want *TypeMismatchError", err)
	}
	if tm.Path != "inputs.operatingPoints[0].conditions.ambientTemperature" {
		t.Errorf("Path = %q", tm.Path)
	}
	if tm.Expected != "number" || tm.Actual != "boolean" {
		t.Errorf("Expected/Actual = %q/%q", tm.Expected, tm.Actual)
	}
}
