package galaxy

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/phil-mansfield/ics"
	"github.com/phil-mansfield/ics/phys"
)

// Config describes the galaxy to be sampled. All lengths, masses and
// velocities are in whatever unit system G is given in; the defaults are SI.
type Config struct {
	// N is the number of stars, not counting the central black hole.
	N int `validate:"gt=0"`
	// R is the radius of the disc.
	R float64 `validate:"gt=0,finite"`
	// Z is the scale height of the disc. It is validated and carried along
	// with the galaxy, but the disc thickness is set by SigmaR.
	Z float64 `validate:"gt=0,finite"`
	// SigmaR is the full thickness of the disc: disc heights are uniform in
	// [-SigmaR/2, SigmaR/2).
	SigmaR float64 `validate:"gt=0,finite"`
	// SigmaZ is the standard deviation of bulge heights.
	SigmaZ float64 `validate:"gt=0,finite"`
	// BulgeHeight is the standard deviation of bulge radii.
	BulgeHeight float64 `validate:"gt=0,finite"`
	// BulgeFraction is the fraction of the N stars placed in the bulge.
	BulgeFraction float64 `validate:"gte=0,lte=1"`

	SolarMass     float64 `validate:"gt=0,finite"`
	G             float64 `validate:"gt=0,finite"`
	VelocityScale float64 `validate:"gt=0,finite"`
	// IMF is the name of the initial mass function used for stars. It must
	// be a key of IMFs.
	IMF string `validate:"imf"`
}

// DefaultConfig returns a Config with SI constants, a velocity dispersion of
// 1 km/s and a Kroupa-like IMF. The geometry (N, R, Z, SigmaR, SigmaZ,
// BulgeHeight, BulgeFraction) must still be set by the caller.
func DefaultConfig() *Config {
	return &Config{
		SolarMass:     phys.SolarMass,
		G:             phys.G,
		VelocityScale: 1000,
		IMF:           "kroupa",
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		return !math.IsInf(fl.Field().Float(), 0)
	})
	if err != nil {
		panic(err.Error())
	}
	err = v.RegisterValidation("imf", func(fl validator.FieldLevel) bool {
		_, ok := IMFs[fl.Field().String()]
		return ok
	})
	if err != nil {
		panic(err.Error())
	}
	return v
}

// Validate checks every field of the config and returns an error wrapping
// ics.ErrInvalidArgument that names each field out of range.
func (con *Config) Validate() error {
	if con == nil {
		return ics.InvalidArgumentf("galaxy config is nil")
	}

	err := validate.Struct(con)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return ics.InvalidArgumentf("%s", err.Error())
	}

	msgs := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		msgs[i] = fieldMessage(fe)
	}
	return ics.InvalidArgumentf("%s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf(
			"'%s' must be greater than %s, but is %v",
			fe.Field(), fe.Param(), fe.Value(),
		)
	case "gte", "lte":
		return fmt.Sprintf(
			"'%s' must be in range [0, 1], but is %v", fe.Field(), fe.Value(),
		)
	case "finite":
		return fmt.Sprintf("'%s' must be finite, but is %v", fe.Field(), fe.Value())
	case "imf":
		return fmt.Sprintf(
			"'%s' must be one of [%s], but is '%v'",
			fe.Field(), strings.Join(IMFNames(), ", "), fe.Value(),
		)
	}
	return fmt.Sprintf(
		"'%s' failed validation '%s'", fe.Field(), fe.Tag(),
	)
}
