// internal/fusion/dto.go

package fusion

import (
	"github.com/imadgeboyega/destiny-fusion/internal/astro"
	"github.com/imadgeboyega/destiny-fusion/internal/compat"
	"github.com/imadgeboyega/destiny-fusion/internal/matrix"
	"github.com/imadgeboyega/destiny-fusion/internal/saju"
)

type CompatibilityRequest struct {
	Person1 compat.Person `json:"person1" validate:"required"`
	Person2 compat.Person `json:"person2" validate:"required"`
}

type MatrixRequest struct {
	Saju    saju.Profile   `json:"saju" validate:"required"`
	Astro   *astro.Profile `json:"astro,omitempty" validate:"omitempty"`
	Options matrix.Options `json:"options"`
}

type DaeunRequest struct {
	Saju1 saju.Profile `json:"saju1" validate:"required"`
	Saju2 saju.Profile `json:"saju2" validate:"required"`
	Age1  int          `json:"age1" validate:"min=0,max=120"`
	Age2  int          `json:"age2" validate:"min=0,max=120"`
}

type SeunRequest struct {
	Saju1 saju.Profile `json:"saju1" validate:"required"`
	Saju2 saju.Profile `json:"saju2" validate:"required"`
	Year  int          `json:"year" validate:"required,min=1900,max=2200"`
}

type YongsinRequest struct {
	Saju1 saju.Profile `json:"saju1" validate:"required"`
	Saju2 saju.Profile `json:"saju2" validate:"required"`
}

// MatrixResponse tags a matrix report with an id for client-side correlation.
// The id is minted per response, so cached reports still get a fresh one.
type MatrixResponse struct {
	ID string `json:"id"`
	*matrix.Report
}
