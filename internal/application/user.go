package app

import (
	"context"

	"qc-scanner/internal/domain/entity"
	"qc-scanner/internal/domain/port"
)

// UserService хранит состояние диалога и подписку чата на автоскан.
type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Get возвращает пользователя; нового заводит в главном меню без подписки.
func (s *UserService) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.repo.Get(ctx, userID, chatID)
}

func (s *UserService) SetState(ctx context.Context, userID, chatID int64, state entity.UserState) (*entity.User, error) {
	return s.update(ctx, userID, chatID, func(u *entity.User) { u.SetState(state) })
}

// SetAutoFeed подписывает чат на результаты автоскана или отписывает его.
// Состояние диалога не меняется.
func (s *UserService) SetAutoFeed(ctx context.Context, userID, chatID int64, on bool) (*entity.User, error) {
	return s.update(ctx, userID, chatID, func(u *entity.User) { u.AutoFeed = on })
}

// AutoFeedChats возвращает чаты, подписанные на автоскан.
func (s *UserService) AutoFeedChats(ctx context.Context) ([]int64, error) {
	return s.repo.AutoFeedChats(ctx)
}

// BeginScan камера не дала кадр, ждём фото изделия из чата.
func (s *UserService) BeginScan(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingPhoto)
}

// Cancel возвращает в главное меню. Подписка на автоскан остаётся.
func (s *UserService) Cancel(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateMainMenu)
}

// update читает пользователя, применяет fn и сохраняет копию в репозиторий.
func (s *UserService) update(ctx context.Context, userID, chatID int64, fn func(*entity.User)) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	fn(user)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
