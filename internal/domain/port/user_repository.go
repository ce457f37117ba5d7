package port

import (
	"context"

	"qc-scanner/internal/domain/entity"
)

// UserRepository интерфейс хранилища пользователей
type UserRepository interface {
	// Get возвращает пользователя по ID, создаёт нового если не найден
	Get(ctx context.Context, userID, chatID int64) (*entity.User, error)

	// Save сохраняет состояние пользователя
	Save(ctx context.Context, user *entity.User) error

	// AutoFeedChats возвращает чаты, подписанные на результаты автосканирования
	AutoFeedChats(ctx context.Context) ([]int64, error)
}
