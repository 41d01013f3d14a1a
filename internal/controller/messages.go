// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package controller

import (
	"errors"

	"github.com/pdiddy/forkify/pkg/types"
)

// UserMessage turns an error from the model into text for the user.
// Validation errors carry their own explanation and are shown as is.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, types.ErrValidation):
		return err.Error()
	case errors.Is(err, types.ErrTimeout):
		return "The recipe service took too long to answer. Please try again."
	case errors.Is(err, types.ErrEmptyResults):
		return "No recipes found for your query! Please try again ;)"
	case errors.Is(err, types.ErrNotFound):
		return "That recipe does not exist."
	case errors.Is(err, types.ErrParse):
		return "The recipe service sent an answer we could not read."
	case errors.Is(err, types.ErrNetwork):
		return "Could not reach the recipe service. Check your connection and try again."
	default:
		return "Something went wrong: " + err.Error()
	}
}
