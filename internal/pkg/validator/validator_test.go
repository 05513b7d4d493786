package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Title  string `json:"title" validate:"required"`
	Rating *int   `json:"rating" validate:"omitempty,min=1,max=5"`
	Status string `json:"status" validate:"omitempty,oneof=new closed"`
}

func TestValidate_OK(t *testing.T) {
	r := 3
	assert.Nil(t, Validate(&sample{Title: "x", Rating: &r}))
}

func TestValidate_ReportsJSONNames(t *testing.T) {
	r := 9
	errs := Validate(&sample{Rating: &r, Status: "bogus"})

	assert.Equal(t, "required", errs["title"])
	assert.Equal(t, "max=5", errs["rating"])
	assert.Equal(t, "oneof=new closed", errs["status"])
	assert.Equal(t,
		"Validation failed: rating must be at most 5; status must be one of [new closed]; title is required",
		errs.Error())
}
