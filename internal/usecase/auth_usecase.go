package usecase

import (
	"context"
	"errors"

	"app/internal/domain/model"
	"app/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	//400相当 入力不正
	ErrValidation = errors.New("validation error")
	//email重複
	ErrEmailTaken = errors.New("email already registered")
	//メールまたはパスワードが違う（どちらかは呼び出し側に区別させない）
	ErrInvalidCredentials = errors.New("invalid credentials")
	//セッションなし
	ErrNotAuthenticated = errors.New("not authenticated")
	//権限なし
	ErrForbidden = errors.New("forbidden")
	//内部エラー。詳細はログにだけ残す
	ErrInternal = errors.New("internal error")
)

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateRegister(ctx context.Context, name string, email string, password string) error
	ValidateLogin(ctx context.Context, email string, password string) error
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase struct {
	users     repository.UserRepository
	validator AuthValidator
	log       *zap.Logger
}

func NewAuthUsecase(
	users repository.UserRepository,
	validator AuthValidator,
	log *zap.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		users:     users,
		validator: validator,
		log:       log,
	}
}

// Registerは会員登録を実行する。成功するとhandler側でセッションを張る。
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	//入力検証（validatorに寄せる）
	if err := u.validator.ValidateRegister(ctx, in.Name, in.Email, in.Password); err != nil {
		return nil, ErrValidation
	}

	//email重複チェック
	existing, err := u.users.FindByEmail(ctx, in.Email)
	if err == nil && existing != nil {
		return nil, ErrEmailTaken
	}
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		u.log.Error("register: lookup failed", zap.Error(err))
		return nil, ErrInternal
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	pwHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Error("register: hash failed", zap.Error(err))
		return nil, ErrInternal
	}

	user := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(pwHash),
		Role:         model.RoleUser,
	}

	//同時登録でunique違反になった場合もemail重複として返す
	if err := u.users.Create(ctx, user); err != nil {
		u.log.Warn("register: create failed", zap.String("email", in.Email), zap.Error(err))
		return nil, ErrEmailTaken
	}

	return user, nil
}

// Loginはemail＋パスワードで認証する。
// emailが無いのかパスワードが違うのかはエラーで区別しない。
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (*model.User, error) {
	if err := u.validator.ValidateLogin(ctx, in.Email, in.Password); err != nil {
		return nil, ErrValidation
	}

	user, err := u.users.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		u.log.Error("login: lookup failed", zap.Error(err))
		return nil, ErrInternal
	}

	//パスワード照合（bcrypt）
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
