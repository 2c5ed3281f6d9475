package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

// ユーザーが見つかりませんを統一
var ErrUserNotFound = errors.New("user not found")

// 会員の保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成。emailのunique違反はそのままerrorで返る
	Create(ctx context.Context, user *model.User) error
	//メールからユーザーを1件取得する。見つからなければErrUserNotFound
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	//レポート用の件数
	Count(ctx context.Context) (int64, error)
}
