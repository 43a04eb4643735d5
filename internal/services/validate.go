package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	apperrors "github.com/yungbote/videoscripter-backend/internal/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type projectInput struct {
	Name  string `validate:"required,max=200"`
	Topic string `validate:"required,max=500"`
}

type scriptInput struct {
	Title   string `validate:"required,max=200"`
	Content string `validate:"max=100000"`
}

type categoryInput struct {
	Name        string `validate:"required,max=100"`
	Description string `validate:"max=500"`
}

type searchInput struct {
	Query      string `validate:"required,max=200"`
	MaxResults int    `validate:"gte=0,lte=50"`
}

// validateInput runs struct tags and reports failures as ErrInvalidArgument with
// one "field: rule" entry per violation.
func validateInput(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err)
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", strings.ToLower(fe.Field()), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s", strings.ToLower(fe.Field()), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", apperrors.ErrInvalidArgument, strings.Join(parts, ", "))
}

func requireActor(actor uuid.UUID) error {
	if actor == uuid.Nil {
		return fmt.Errorf("%w: missing user id", apperrors.ErrInvalidArgument)
	}
	return nil
}
