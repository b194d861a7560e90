package services

import (
	"context"
	"holidaze/internal/models"
	"holidaze/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVenueForm() *models.VenueForm {
	return &models.VenueForm{
		Name:        "Seaside cabin",
		Description: "Quiet place by the fjord",
		Media:       []models.Media{{Url: "https://images.example.com/cabin.jpg", Alt: "Cabin"}},
		Price:       1200,
		MaxGuests:   4,
		Rating:      4,
	}
}

func TestVenueService_Validate_Valid(t *testing.T) {
	vs := NewVenueService(&fakeApi{}, &testutil.MockLogger{})
	assert.Nil(t, vs.Validate(validVenueForm()))

	form := validVenueForm()
	form.Media = nil
	form.MaxGuests = 0
	form.Rating = 0
	assert.Nil(t, vs.Validate(form))
}

func TestVenueService_Validate_EachFieldIndependently(t *testing.T) {
	vs := NewVenueService(&fakeApi{}, &testutil.MockLogger{})

	tests := []struct {
		name   string
		mutate func(*models.VenueForm)
		field  string
	}{
		{"empty name", func(f *models.VenueForm) { f.Name = "" }, "name"},
		{"empty description", func(f *models.VenueForm) { f.Description = "" }, "description"},
		{"whitespace name", func(f *models.VenueForm) { f.Name = "   " }, "name"},
		{"whitespace description", func(f *models.VenueForm) { f.Description = "\t\n " }, "description"},
		{"zero price", func(f *models.VenueForm) { f.Price = 0 }, "price"},
		{"negative price", func(f *models.VenueForm) { f.Price = -5 }, "price"},
		{"negative guests", func(f *models.VenueForm) { f.MaxGuests = -1 }, "maxGuests"},
		{"rating below range", func(f *models.VenueForm) { f.Rating = -0.5 }, "rating"},
		{"rating above range", func(f *models.VenueForm) { f.Rating = 5.5 }, "rating"},
		{"bad media url", func(f *models.VenueForm) { f.Media[0].Url = "not a url" }, "media"},
		{"empty media url", func(f *models.VenueForm) { f.Media[0].Url = "" }, "media"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validVenueForm()
			tt.mutate(form)

			verr := vs.Validate(form)
			require.NotNil(t, verr)
			assert.Len(t, verr.Errors, 1)
			_, ok := verr.GetFieldError(tt.field)
			assert.True(t, ok, verr.Error())
		})
	}
}

func TestVenueService_Validate_AllFieldsAtOnce(t *testing.T) {
	vs := NewVenueService(&fakeApi{}, &testutil.MockLogger{})
	form := &models.VenueForm{
		Price:     0,
		MaxGuests: -1,
		Rating:    9,
		Media:     []models.Media{{Url: "ok"}, {Url: "::"}},
	}

	verr := vs.Validate(form)
	require.NotNil(t, verr)
	assert.Len(t, verr.Errors, 6)
	msg, _ := verr.GetFieldError("media")
	assert.Equal(t, "Image 1 must have a valid URL", msg)
	msg, _ = verr.GetFieldError("name")
	assert.Equal(t, "Name is required", msg)
}

func TestVenueService_Create(t *testing.T) {
	api := &fakeApi{venue: &models.Venue{ID: "venue-1", Name: "Seaside cabin", Owner: &models.User{Name: "kari"}}}
	vs := NewVenueService(api, &testutil.MockLogger{})

	venue, err := vs.Create(context.Background(), validVenueForm())
	require.NoError(t, err)
	assert.Equal(t, "venue-1", venue.ID)
	assert.Len(t, api.created, 1)
}

func TestVenueService_Create_InvalidSkipsRemote(t *testing.T) {
	api := &fakeApi{}
	vs := NewVenueService(api, &testutil.MockLogger{})

	form := validVenueForm()
	form.Name = ""
	_, err := vs.Create(context.Background(), form)

	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Empty(t, api.created)
}

func TestVenueService_Create_RemoteError(t *testing.T) {
	api := &fakeApi{venueErr: &models.RemoteRequestError{Status: 400, Messages: []string{"Name taken", "Bad price"}}}
	logger := &testutil.MockLogger{}
	vs := NewVenueService(api, logger)

	_, err := vs.Create(context.Background(), validVenueForm())
	require.Error(t, err)
	assert.Equal(t, "Name taken, Bad price", err.Error())
	assert.Equal(t, 1, logger.Count("error"))
}
