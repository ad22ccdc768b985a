package services

import (
	"errors"
	"strings"

	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/constants"
)

const nonFieldErrors = "non_field_errors"

// fieldChecks accumulates per-field failures so a request reports all of them at once
type fieldChecks struct {
	v common.ValidationError
}

func (c *fieldChecks) text(field, value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		c.v.Add(field, constants.MsgFieldBlank)
	}
	return trimmed
}

func (c *fieldChecks) positive(field string, value int) {
	if value < 1 {
		c.v.Add(field, constants.MsgMustBePositive)
	}
}

func (c *fieldChecks) id(field string, value uint) {
	if value == 0 {
		c.v.Add(field, constants.MsgFieldRequired)
	}
}

func (c *fieldChecks) required(field string, present bool) {
	if !present {
		c.v.Add(field, constants.MsgFieldRequired)
	}
}

func (c *fieldChecks) err() error {
	return c.v.OrNil()
}

// asField attaches the body field an unknown reference came from
func asField(err error, field string) error {
	var nf *common.NotFoundError
	if errors.As(err, &nf) {
		return &common.NotFoundError{Resource: nf.Resource, ID: nf.ID, Field: field}
	}
	return err
}
