package entities

import (
	"bytes"
	"encoding/json"
	"strconv"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Rating is the 1..5 completion rating of an engagement.
//
// The zero value means "not rated yet". It is never the same thing as a
// numeric zero and aggregations must skip it instead of averaging it in.
type Rating struct {
	value int
	set   bool
}

// NoRating returns an absent rating.
func NoRating() Rating { return Rating{} }

// NewRating returns a present rating or a *ValidationError when v is out of 1..5.
func NewRating(v int) (Rating, error) {
	if v < MinRating || v > MaxRating {
		return Rating{}, NewValidationError("rating", "must be between 1 and 5, got "+strconv.Itoa(v))
	}
	return Rating{value: v, set: true}, nil
}

// RatingFromPtr converts a nullable storage value.
func RatingFromPtr(v *int) (Rating, error) {
	if v == nil {
		return NoRating(), nil
	}
	return NewRating(*v)
}

func (r Rating) Value() (int, bool) { return r.value, r.set }

func (r Rating) IsSet() bool { return r.set }

func (r Rating) Ptr() *int {
	if !r.set {
		return nil
	}
	v := r.value
	return &v
}

func (r Rating) String() string {
	if !r.set {
		return "unrated"
	}
	return strconv.Itoa(r.value)
}

func (r Rating) MarshalJSON() ([]byte, error) {
	if !r.set {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(r.value)), nil
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*r = NoRating()
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return NewValidationError("rating", "must be an integer or null")
	}
	parsed, err := NewRating(v)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
