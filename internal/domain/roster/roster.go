// Package roster validates rated-player records before they enter the
// balancing core. The core trusts its input (names non-empty, skills in
// [1,3]) and never re-checks, so every roster must pass through here
// first.
package roster

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/matchday/teamdraft/internal/domain/model"
)

// Rating bounds for the three skill attributes.
const (
	MinRating = 1
	MaxRating = 3
)

// record mirrors model.Player with validation tags. Keeping the tags
// off the domain model keeps the core free of validation concerns.
type record struct {
	Name      string `validate:"required"`
	Speed     int    `validate:"min=1,max=3"`
	Technical int    `validate:"min=1,max=3"`
	Stamina   int    `validate:"min=1,max=3"`
}

// Validator checks field-level correctness of player records.
type Validator struct {
	v *validator.Validate
}

// NewValidator creates a roster validator.
func NewValidator() *Validator {
	return &Validator{v: validator.New(validator.WithRequiredStructEnabled())}
}

// ValidatePlayer checks a single record.
func (va *Validator) ValidatePlayer(ctx context.Context, p *model.Player) error {
	rec := record{
		Name:      p.Name,
		Speed:     p.Speed,
		Technical: p.Technical,
		Stamina:   p.Stamina,
	}
	if err := va.v.StructCtx(ctx, rec); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPlayer, err)
	}
	return nil
}

// ValidateRoster checks every record, reporting the first failure with
// its roster position.
func (va *Validator) ValidateRoster(ctx context.Context, players []*model.Player) error {
	for i, p := range players {
		if p == nil {
			return fmt.Errorf("%w: player %d is nil", ErrInvalidPlayer, i)
		}
		if err := va.ValidatePlayer(ctx, p); err != nil {
			return fmt.Errorf("player %d (%s): %w", i, p.ID, err)
		}
	}
	return nil
}
