package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Test: 追加したレコードの在庫は常に10
func TestAddVinylForcesDefaultStock(t *testing.T) {
	vinyls := new(MockVinylRepository)
	uc := usecase.NewCatalogUsecase(vinyls, zap.NewNop())

	vinyls.
		On("Create", mock.Anything, mock.MatchedBy(func(v model.Vinyl) bool {
			return v.Title == "X" && v.Artist == "Y" && v.Genre == "rock" &&
				v.Price == 500 && v.Stock == 10
		})).
		Return(model.Vinyl{ID: 9, Title: "X", Artist: "Y", Genre: "rock", Price: 500, Stock: 10}, nil)

	created, err := uc.AddVinyl(context.Background(), usecase.AddVinylInput{
		Title:  "X",
		Artist: "Y",
		Genre:  "rock",
		Price:  500,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(10), created.Stock)
	vinyls.AssertExpectations(t)
}

// Test: 必須項目が空ならvalidationエラー
func TestAddVinylValidation(t *testing.T) {
	vinyls := new(MockVinylRepository)
	uc := usecase.NewCatalogUsecase(vinyls, zap.NewNop())

	_, err := uc.AddVinyl(context.Background(), usecase.AddVinylInput{
		Title:  "",
		Artist: "Y",
		Genre:  "rock",
		Price:  500,
	})

	assert.ErrorIs(t, err, usecase.ErrValidation)
	vinyls.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Test: カタログ一覧は登録順でそのまま返す
func TestListVinyls(t *testing.T) {
	vinyls := new(MockVinylRepository)
	uc := usecase.NewCatalogUsecase(vinyls, zap.NewNop())

	catalog := []model.Vinyl{
		{ID: 1, Title: "Abbey Road", Stock: 10},
		{ID: 2, Title: "Kind of Blue", Stock: 5},
	}
	vinyls.On("ListAll", mock.Anything).Return(catalog, nil)

	out, err := uc.ListVinyls(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, catalog, out)
}
