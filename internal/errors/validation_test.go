package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokedex-tui/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldError("base_url", "is invalid")
	ve.AddFieldErrorf("width", "must be at least %d", 8)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "name: is required")
	s.Assert().Contains(ve.Error(), "base_url: is invalid")
	s.Assert().Contains(ve.Error(), "width: must be at least 8")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("generation", "must be between %d and %d", 1, 9).
		RequiredField("client").
		InvalidField("store", "unknown backend")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateCounts() {
	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("Sprites.Width", 0, vb)
	errors.ValidatePositive("API.Burst", 4, vb)
	errors.ValidateNonNegative("Cache.Moves", -1, vb)
	errors.ValidateNonNegative("Cache.Sprites", 0, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["Sprites.Width"][0], "must be positive")
	s.Assert().Contains(validationErrors["Cache.Moves"][0], "must not be negative")
	s.Assert().NotContains(validationErrors, "API.Burst")
	s.Assert().NotContains(validationErrors, "Cache.Sprites")
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("generation", 10, 1, 9, vb)
	errors.ValidateRange("initial_generation", 4, 1, 9, vb)
	errors.ValidateRange("width", 0, 8, 200, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["generation"][0], "must be between 1 and 9")
	s.Assert().Contains(validationErrors["width"][0], "must be between 8 and 200")
	s.Assert().NotContains(validationErrors, "initial_generation")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	backends := []string{"none", "redis", "badger"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("store.backend", "memcached", backends, vb)
	errors.ValidateEnum("store.fallback", "redis", backends, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["store.backend"][0], "must be one of: none, redis, badger")
	s.Assert().NotContains(validationErrors, "store.fallback")
}

func (s *ValidationTestSuite) TestErrorMessageIsSorted() {
	ve := errors.NewValidationError()
	ve.AddFieldError("zeta", "is required")
	ve.AddFieldError("alpha", "is required")

	s.Assert().Equal("validation failed: alpha: is required; zeta: is required", ve.Error())
}
