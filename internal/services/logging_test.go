package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/kanban-board-api/internal/logger"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
	"github.com/sbilibin2017/kanban-board-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Every service logs failures under the same "error" key.
func TestServices_LogErrorKey(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	old := logger.Log
	logger.Log = zap.New(core).Sugar()
	defer func() { logger.Log = old }()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()
	dbErr := errors.New("db error")

	userReader := services.NewMockUserReader(ctrl)
	userReader.EXPECT().List(gomock.Any()).Return(nil, dbErr)
	_, err := services.NewUserService(userReader, services.NewMockUserWriter(ctrl)).List(ctx)
	require.Error(t, err)

	boards := services.NewMockBoardReader(ctrl)
	boards.EXPECT().ListByUser(gomock.Any(), gomock.Any()).Return(nil, dbErr)
	boardSvc := services.NewBoardService(boards, services.NewMockBoardWriter(ctrl),
		services.NewMockColumnReader(ctrl), services.NewMockTaskReader(ctrl))
	_, err = boardSvc.List(ctx, &models.User{ID: uuid.New()})
	require.Error(t, err)

	auditWriter := services.NewMockAuditWriter(ctrl)
	auditWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(dbErr)
	require.Error(t, services.NewAuditService(auditWriter, nil).Record(ctx, &models.Audit{Method: "POST"}))

	require.GreaterOrEqual(t, logs.Len(), 3)
	for _, entry := range logs.All() {
		fields := entry.ContextMap()
		assert.Contains(t, fields, "error", entry.Message)
		assert.NotContains(t, fields, "err", entry.Message)
	}
}
