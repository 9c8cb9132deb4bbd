package views

import (
	"context"

	"github.com/ianwestfall/tourneyman-web/internal/middleware"
	"github.com/ianwestfall/tourneyman-web/internal/session"
)

func GetSession(ctx context.Context) session.Session {
	return middleware.SessionFromContext(ctx)
}
