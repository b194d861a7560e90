package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_ErrorIsSortedByField(t *testing.T) {
	v := &ValidationError{}
	v.AddError("price", "price must be greater than 0")
	v.AddError("name", "name is required")
	assert.Equal(t, "name: name is required; price: price must be greater than 0", v.Error())
}

func TestValidationError_FirstMessageWins(t *testing.T) {
	v := &ValidationError{}
	v.AddError("media", "first")
	v.AddError("media", "second")
	msg, ok := v.GetFieldError("media")
	assert.True(t, ok)
	assert.Equal(t, "first", msg)
	assert.True(t, v.HasErrors())
}

func TestRemoteRequestError_JoinsMessages(t *testing.T) {
	err := &RemoteRequestError{Status: 400, Messages: []string{"Name is required", "Price must be a number"}}
	assert.Equal(t, "Name is required, Price must be a number", err.Error())
}

func TestRemoteRequestError_NoMessages(t *testing.T) {
	err := &RemoteRequestError{Status: 500}
	assert.Equal(t, "request failed with status 500", err.Error())
}

func TestPersistenceError_Unwrap(t *testing.T) {
	cause := errors.New("quota exceeded")
	err := &PersistenceError{Op: "write", Key: "venueRatings", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, `write "venueRatings": quota exceeded`, err.Error())
}
