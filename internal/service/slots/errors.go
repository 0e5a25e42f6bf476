package slots

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

var (
	// ErrInvalidDuration возвращается, когда шаг слота не положителен
	ErrInvalidDuration = fmt.Errorf("slots: %w", domain.ErrInvalidDuration)
)
