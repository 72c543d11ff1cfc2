package product

import (
	"fmt"
	"strings"

	"phonekart/internal/utils"
)

// Normalize trims the free-text fields of the form.
func (in NewProductInput) Normalize() NewProductInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Brand = strings.TrimSpace(in.Brand)
	in.Camera = strings.TrimSpace(in.Camera)
	in.Battery = strings.TrimSpace(in.Battery)
	in.Image = strings.TrimSpace(in.Image)
	in.Description = strings.TrimSpace(in.Description)
	in.Color = strings.TrimSpace(in.Color)
	in.Display = strings.TrimSpace(in.Display)
	return in
}

// Validate checks every field of the admin form. Errors wrap
// ErrInvalidInput and carry the first field message.
func (in NewProductInput) Validate() error {
	if err := utils.ValidateStruct(in); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, utils.FirstValidationMessage(err))
	}
	if in.Price > in.MRP {
		return fmt.Errorf("%w: price must not exceed mrp", ErrInvalidInput)
	}
	return nil
}
