package cashier

import (
	"errors"
	"fmt"

	"github.com/jhoicas/Styllo-POS/internal/domain"
)

// storageErr marca como ErrStorage los errores de infraestructura sin clasificar.
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{domain.ErrStorage, domain.ErrNotFound, domain.ErrInvalidInput, domain.ErrConflict, domain.ErrDuplicate} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrStorage, err)
}
