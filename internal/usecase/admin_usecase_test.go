package usecase_test

import (
	"context"
	"errors"
	"testing"

	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Test: statsは各テーブルの件数をそのまま返す
func TestStatsReturnsRowCounts(t *testing.T) {
	users := new(MockUserRepository)
	vinyls := new(MockVinylRepository)
	orders := new(MockOrderRepository)
	uc := usecase.NewAdminUsecase(users, vinyls, orders, zap.NewNop())

	users.On("Count", mock.Anything).Return(int64(3), nil)
	vinyls.On("Count", mock.Anything).Return(int64(7), nil)
	orders.On("Count", mock.Anything).Return(int64(2), nil)

	out, err := uc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, usecase.StatsOutput{Users: 3, Vinyls: 7, Orders: 2}, out)
}

// Test: count失敗は一律internal
func TestStatsCountFailureIsInternal(t *testing.T) {
	users := new(MockUserRepository)
	vinyls := new(MockVinylRepository)
	orders := new(MockOrderRepository)
	uc := usecase.NewAdminUsecase(users, vinyls, orders, zap.NewNop())

	users.On("Count", mock.Anything).Return(int64(0), errors.New("db down"))

	_, err := uc.Stats(context.Background())

	assert.ErrorIs(t, err, usecase.ErrInternal)
}
