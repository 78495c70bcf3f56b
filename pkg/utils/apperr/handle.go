package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// Handle reports a run-fatal error through the context logger
func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)
	logger.Error("run failed", "error", err)
}
