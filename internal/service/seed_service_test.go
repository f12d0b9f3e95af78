package service

import (
	"context"
	"testing"

	"github.com/Open-MSS/mscolab-provision/internal/domain"
	domainmocks "github.com/Open-MSS/mscolab-provision/internal/domain/mocks"
	"github.com/Open-MSS/mscolab-provision/pkg/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedService_Seed(t *testing.T) {
	t.Run("commits accounts singly and the other tables as batches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		writer := domainmocks.NewMockSeedWriter(ctrl)
		svc := NewSeedService(logger.NewLoggerWithLevel("disabled"))
		ds := svc.Dataset()
		ctx := context.Background()

		var calls []*gomock.Call
		for i := range ds.Accounts {
			calls = append(calls,
				writer.EXPECT().InsertAccount(ctx, gomock.Eq(&ds.Accounts[i])).Return(nil),
				writer.EXPECT().Commit(ctx).Return(nil),
			)
		}
		for i := range ds.Projects {
			calls = append(calls, writer.EXPECT().InsertProject(ctx, gomock.Eq(&ds.Projects[i])).Return(nil))
		}
		calls = append(calls, writer.EXPECT().Commit(ctx).Return(nil))
		for i := range ds.Permissions {
			calls = append(calls, writer.EXPECT().InsertPermission(ctx, gomock.Eq(&ds.Permissions[i])).Return(nil))
		}
		calls = append(calls, writer.EXPECT().Commit(ctx).Return(nil))
		gomock.InOrder(calls...)

		require.NoError(t, svc.Seed(ctx, writer))
	})

	t.Run("stops at the first insert error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		writer := domainmocks.NewMockSeedWriter(ctrl)
		svc := NewSeedService(logger.NewLoggerWithLevel("disabled"))
		ctx := context.Background()

		writer.EXPECT().InsertAccount(ctx, gomock.Any()).Return(assert.AnError)

		err := svc.Seed(ctx, writer)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("wraps a failed project commit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		writer := domainmocks.NewMockSeedWriter(ctrl)
		ds := domain.Dataset{
			Accounts: []domain.Account{{ID: 8, Username: "a", EmailID: "a", Password: "a"}},
			Projects: []domain.Project{{ID: 1, Path: "one", Description: "a"}},
		}
		svc := NewSeedServiceWithDataset(logger.NewLoggerWithLevel("disabled"), ds)
		ctx := context.Background()

		gomock.InOrder(
			writer.EXPECT().InsertAccount(ctx, gomock.Any()).Return(nil),
			writer.EXPECT().Commit(ctx).Return(nil),
			writer.EXPECT().InsertProject(ctx, gomock.Any()).Return(nil),
			writer.EXPECT().Commit(ctx).Return(assert.AnError),
		)

		err := svc.Seed(ctx, writer)
		assert.ErrorContains(t, err, "failed to commit projects")
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("rejects an invalid dataset before writing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		writer := domainmocks.NewMockSeedWriter(ctrl)
		ds := domain.Dataset{
			Permissions: []domain.Permission{{ID: 1, UserID: 8, ProjectID: 1, AccessLevel: domain.RoleCreator}},
		}
		svc := NewSeedServiceWithDataset(logger.NewLoggerWithLevel("disabled"), ds)

		err := svc.Seed(context.Background(), writer)
		var validationErr domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}
