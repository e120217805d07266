package game

import (
	"context"

	"github.com/pthm-cable/shorelark/renderer"
)

// Driver is a front end that paces frames and presents them.
type Driver interface {
	// Begin waits for the next frame and returns the canvas to draw it on.
	// ok is false once the front end has closed.
	Begin(ctx context.Context) (canvas renderer.Canvas, ok bool)

	// End presents the frame drawn since Begin.
	End(status Status)
}
