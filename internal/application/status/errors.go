package status

import (
	"fmt"

	"github.com/jhoicas/printer-supplies-api/internal/domain"
)

var errMigrationsDisabled = fmt.Errorf("migraciones no habilitadas: %w", domain.ErrNotFound)
