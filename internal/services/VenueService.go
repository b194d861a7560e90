package services

import (
	"context"
	"errors"
	"fmt"
	"holidaze/internal/models"
	"holidaze/internal/providers"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var venueFieldMessages = map[string]string{
	"name":        "Name is required",
	"description": "Description is required",
	"price":       "Price must be greater than 0",
	"maxGuests":   "Max guests cannot be negative",
	"rating":      "Rating must be between 0 and 5",
}

type VenueCreator interface {
	CreateVenue(ctx context.Context, form *models.VenueForm) (*models.Venue, error)
}

type VenueServiceInterface interface {
	Validate(form *models.VenueForm) *models.ValidationError
	Create(ctx context.Context, form *models.VenueForm) (*models.Venue, error)
}

type VenueService struct {
	api      VenueCreator
	logger   providers.Logger
	validate *validator.Validate
}

func NewVenueService(api VenueCreator, logger providers.Logger) VenueServiceInterface {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// fails only for an empty tag or a nil func
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	return &VenueService{
		api:      api,
		logger:   logger,
		validate: v,
	}
}

// Validate returns nil for a valid form, otherwise one message per field.
func (vs *VenueService) Validate(form *models.VenueForm) *models.ValidationError {
	verr := &models.ValidationError{}

	if err := vs.validate.Struct(form); err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			verr.AddError("form", err.Error())
			return verr
		}
		for _, fe := range fieldErrors {
			field := fe.Field()
			msg, ok := venueFieldMessages[field]
			if !ok {
				msg = fmt.Sprintf("%s is invalid", field)
			}
			verr.AddError(field, msg)
		}
	}

	for i, m := range form.Media {
		if err := vs.validate.Var(m.Url, "required,url"); err != nil {
			verr.AddError("media", fmt.Sprintf("Image %d must have a valid URL", i+1))
		}
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

func (vs *VenueService) Create(ctx context.Context, form *models.VenueForm) (*models.Venue, error) {
	if verr := vs.Validate(form); verr != nil {
		return nil, verr
	}

	venue, err := vs.api.CreateVenue(ctx, form)
	if err != nil {
		vs.logger.Errorf(providers.TypePost, "Venue creation failed: %s", err)
		return nil, err
	}

	vs.logger.Infof(providers.TypePost, "Venue %s created", venue.ID)
	return venue, nil
}
