package usecase

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestFlexIntAcceptsNumericStrings(t *testing.T) {
	var in struct {
		A FlexInt `json:"a"`
		B FlexInt `json:"b"`
		C FlexInt `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a": 3, "b": "7", "c": "2.0"}`), &in); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if in.A != 3 || in.B != 7 || in.C != 2 {
		t.Errorf("got %+v", in)
	}

	err := json.Unmarshal([]byte(`{"a": "many"}`), &in)
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field != "a" {
		t.Errorf("error = %v, want an UnmarshalTypeError on field a", err)
	}
}

func TestFlexFloat(t *testing.T) {
	var in struct {
		Price *FlexFloat `json:"price"`
	}
	if err := json.Unmarshal([]byte(`{"price": "1299.50"}`), &in); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if in.Price == nil || float64(*in.Price) != 1299.5 {
		t.Errorf("Price = %v, want 1299.5", in.Price)
	}
}

func TestValidatorMessages(t *testing.T) {
	v := NewValidator()

	err := v.Struct(&ContactInput{Name: "", Email: "not-an-email", Message: "short"})
	fields := fieldErrors(t, err)

	want := map[string]string{
		"name":    "name is required",
		"email":   "Please provide a valid email",
		"message": "message must be at least 10 characters",
	}
	for field, msg := range want {
		if fields[field] != msg {
			t.Errorf("%s: got %q, want %q", field, fields[field], msg)
		}
	}
}

func TestValidatorNestedPaths(t *testing.T) {
	v := NewValidator()

	in := validTourInput("Nested")
	in.Itinerary = []ItineraryInput{{Day: 1, Title: ""}}
	fields := fieldErrors(t, v.Struct(&in))

	if _, ok := fields["itinerary[0].title"]; !ok {
		t.Errorf("want itinerary[0].title error, got %v", fields)
	}
}
