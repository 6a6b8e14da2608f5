package audit

import (
	"context"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertAuditEvents(ctx context.Context, events []model.AuditEvent) error
	}
)
