package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithFieldPrefix(t *testing.T) {
	err := WithFieldPrefix(NewValidationError("row", "bad row"), "tickets[1]")
	assert.Equal(t, FieldErrors{"tickets[1].row": "bad row"}, FieldsOf(err))

	err = WithFieldPrefix(NewConstraintError("", "seat already booked"), "tickets[0]")
	assert.Equal(t, FieldErrors{"tickets[0]": "seat already booked"}, FieldsOf(err))
	assert.True(t, IsConstraintError(err))

	err = WithFieldPrefix(&NotFoundError{Resource: "flight", ID: 9, Field: "flight"}, "tickets[2]")
	assert.Equal(t, FieldErrors{"tickets[2].flight": "flight 9 not found"}, FieldsOf(err))

	plain := errors.New("boom")
	assert.Equal(t, plain, WithFieldPrefix(plain, "x"))
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NewValidationError("name", "required"), http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", NewConstraintError("seat", "taken")), http.StatusBadRequest},
		{&NotFoundError{Resource: "route", ID: 1}, http.StatusNotFound},
		{&NotFoundError{Resource: "flight", ID: 1, Field: "tickets[0].flight"}, http.StatusBadRequest},
		{&AuthorizationError{Message: "login"}, http.StatusUnauthorized},
		{&AuthorizationError{Message: "admin", Forbidden: true}, http.StatusForbidden},
		{errors.New("db down"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, StatusFor(c.err), c.err.Error())
	}
}

func TestValidationError_OrNil(t *testing.T) {
	v := &ValidationError{}
	assert.NoError(t, v.OrNil())

	v.Add("b", "two")
	v.Add("a", "one")
	assert.EqualError(t, v.OrNil(), "validation failed: a: one; b: two")
}
