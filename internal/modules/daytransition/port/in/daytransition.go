package in

import (
	"context"

	"mindflow/internal/modules/daytransition/dto"
)

type Usecase interface {
	// Initialize installs the background task and the midnight alarm, then
	// checks the date. Installation failures are logged only.
	Initialize(ctx context.Context) (dto.TransitionOutput, error)
	CheckDateTransition(ctx context.Context) (dto.TransitionOutput, error)
	Cleanup(ctx context.Context)
	// Wait blocks until in-flight day refreshes have finished.
	Wait()
}
