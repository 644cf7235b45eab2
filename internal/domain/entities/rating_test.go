package entities

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNewRating(t *testing.T) {
	for v := MinRating; v <= MaxRating; v++ {
		r, err := NewRating(v)
		if err != nil {
			t.Fatalf("unexpected error for %d: %v", v, err)
		}
		got, ok := r.Value()
		if !ok || got != v {
			t.Fatalf("expected %d present, got %d %v", v, got, ok)
		}
	}

	for _, v := range []int{0, -1, 6} {
		if _, err := NewRating(v); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error for %d, got %v", v, err)
		}
	}
}

func TestRating_ZeroValueIsAbsent(t *testing.T) {
	var r Rating
	if r.IsSet() {
		t.Fatalf("zero value must be absent")
	}
	if r.Ptr() != nil {
		t.Fatalf("absent rating must map to nil")
	}
	if r.String() != "unrated" {
		t.Fatalf("unexpected string %q", r.String())
	}
}

func TestRatingFromPtr(t *testing.T) {
	r, err := RatingFromPtr(nil)
	if err != nil || r.IsSet() {
		t.Fatalf("expected absent rating, got %v %v", r, err)
	}
	four := 4
	r, err = RatingFromPtr(&four)
	if err != nil || *r.Ptr() != 4 {
		t.Fatalf("expected 4, got %v %v", r, err)
	}
	zero := 0
	if _, err := RatingFromPtr(&zero); !errors.Is(err, ErrValidation) {
		t.Fatalf("a stored zero is invalid, got %v", err)
	}
}

func TestRating_JSON(t *testing.T) {
	var payload struct {
		Rating Rating `json:"rating"`
	}

	if err := json.Unmarshal([]byte(`{"rating":null}`), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Rating.IsSet() {
		t.Fatalf("null must decode as absent")
	}

	if err := json.Unmarshal([]byte(`{"rating":5}`), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := payload.Rating.Value(); v != 5 {
		t.Fatalf("expected 5, got %d", v)
	}

	if err := json.Unmarshal([]byte(`{"rating":0}`), &payload); err == nil {
		t.Fatalf("expected rating 0 to be rejected")
	}
	if err := json.Unmarshal([]byte(`{"rating":"five"}`), &payload); err == nil {
		t.Fatalf("expected non-integer rating to be rejected")
	}

	b, _ := json.Marshal(struct {
		Rating Rating `json:"rating"`
	}{})
	if string(b) != `{"rating":null}` {
		t.Fatalf("unexpected json %s", b)
	}
}
