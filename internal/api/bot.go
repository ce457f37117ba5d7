package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "qc-scanner/internal/application"
	"qc-scanner/internal/container"
	"qc-scanner/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я сканер контроля качества.

📸 Отправьте фото изделия или включите автоскан, и я выдам вердикт: принято или брак.

📋 Команды:
/scan — проверить изделие
/next — следующий скан
/auto on|off — автоматический скан
/list [статус] [поиск] — журнал проверок
/stats — статистика
/help — справка`

	msgHelp = `ℹ️ Как пользоваться сканером:

1️⃣ /scan или просто фото изделия
2️⃣ Сканер выдаст вердикт, уверенность и найденные дефекты
3️⃣ /next — подготовить сканер к следующему изделию

🤖 Автоскан (/auto on) сам делает снимок, когда изделие в кадре, не чаще раза в несколько секунд, и присылает результат.

📋 Журнал:
/list — последние проверки
/list rejected — только брак
/list approved wireless — принятые, модель или ID содержат «wireless»
/stats — счётчики по статусам
/clear — очистить журнал
/cancel — отменить текущую операцию`

	msgAwaitingPhoto   = "📸 Камера недоступна. Отправьте фото изделия для проверки."
	msgCancelled       = "❌ Операция отменена. Отправьте /scan для новой проверки."
	msgSendPhoto       = "📸 Пожалуйста, отправьте фото изделия."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgBusy            = "⏳ Скан уже выполняется, подождите."
	msgResultShown     = "ℹ️ Предыдущий результат ещё на экране. Отправьте /next для следующего скана."
	msgReady           = "🔄 Сканер готов к следующему изделию."
	msgAutoOn          = "🤖 Автоскан включён. Результаты будут приходить в этот чат."
	msgAutoOff         = "⏸ Автоскан выключен."
	msgAutoUsage       = "Использование: /auto on или /auto off"
	msgCleared         = "🗑 Журнал проверок очищен."
	msgEmptyList       = "📭 Записей нет."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте сделать другое фото."
	msgInternalError   = "⚠️ Внутренняя ошибка, попробуйте ещё раз."

	listLimit = 15
)

type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Bot представляет Telegram-бота — экран сканера и дашборд
type Bot struct {
	api      botAPI
	app      *container.Container
	download func(fileID string) ([]byte, error)
}

// NewBot создаёт нового бота
func NewBot(token string, c *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	b := newBot(api, c)
	b.download = func(fileID string) ([]byte, error) {
		return downloadFile(api, fileID)
	}
	return b, nil
}

func newBot(api botAPI, c *container.Container) *Bot {
	b := &Bot{
		api: api,
		app: c,
	}
	c.Scanner.OnResult(b.broadcastAuto)
	return b
}

// Run запускает основной цикл обработки сообщений до отмены ctx
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Chat == nil {
		return
	}

	user, err := b.app.UserService.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		log.Printf("Error getting user: %v", err)
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	// Обработка фото
	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg, user)
		return
	}

	// Текстовое сообщение (не команда)
	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		b.setState(ctx, user, entity.StateMainMenu)
		b.sendMessage(chatID, msgStart)

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "scan", "check":
		b.scan(ctx, chatID, user)

	case "next":
		if err := b.app.Scanner.Reset(); err != nil {
			b.sendMessage(chatID, msgBusy)
			return
		}
		b.sendMessage(chatID, msgReady)

	case "auto":
		b.toggleAuto(ctx, msg, user)

	case "list":
		b.list(ctx, chatID, msg.CommandArguments())

	case "stats":
		counts, err := b.app.RecordService.Counts(ctx)
		if err != nil {
			log.Printf("Error counting records: %v", err)
			b.sendMessage(chatID, msgInternalError)
			return
		}
		b.sendMessage(chatID, formatStats(counts))

	case "clear":
		if err := b.app.RecordService.Clear(ctx); err != nil {
			log.Printf("Error clearing records: %v", err)
			b.sendMessage(chatID, msgInternalError)
			return
		}
		b.sendMessage(chatID, msgCleared)

	case "cancel":
		if _, err := b.app.UserService.Cancel(ctx, user.ID, chatID); err != nil {
			log.Printf("Error cancelling: %v", err)
		}
		b.sendMessage(chatID, msgCancelled)

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}
}

// scan ручной скан с камеры. Если кадра нет, ждём фото от пользователя.
func (b *Bot) scan(ctx context.Context, chatID int64, user *entity.User) {
	rec, err := b.app.Scanner.TriggerManual(ctx)
	switch {
	case err == nil:
		b.setState(ctx, user, entity.StateMainMenu)
		b.sendResult(chatID, *rec)
	case errors.Is(err, entity.ErrCaptureUnavailable):
		if _, err := b.app.UserService.BeginScan(ctx, user.ID, chatID); err != nil {
			log.Printf("Error saving user state: %v", err)
		}
		b.sendMessage(chatID, msgAwaitingPhoto)
	case errors.Is(err, app.ErrScanInFlight):
		b.sendMessage(chatID, msgBusy)
	case errors.Is(err, app.ErrResultShown):
		b.sendMessage(chatID, msgResultShown)
	default:
		log.Printf("Error scanning: %v", err)
		b.sendMessage(chatID, msgProcessingError)
	}
}

// handlePhoto сканирует присланное фото. Показанный результат сбрасывается: новое фото — это новый скан.
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	chatID := msg.Chat.ID

	// Получаем файл с максимальным разрешением
	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.download(photo.FileID)
	if err != nil {
		log.Printf("Error downloading photo: %v", err)
		b.sendMessage(chatID, msgProcessingError)
		b.setState(ctx, user, entity.StateMainMenu)
		return
	}
	log.Printf("Received image: %d bytes", len(imageData))

	if b.app.Scanner.View().State == entity.ScanResultShown {
		if err := b.app.Scanner.Reset(); err != nil {
			b.sendMessage(chatID, msgBusy)
			return
		}
	}

	b.setState(ctx, user, entity.StateProcessing)

	// Фото идёт только в этот скан, автоскан его не увидит.
	rec, err := b.app.Scanner.TriggerManualWith(ctx, entity.Frame{Data: imageData, ContentType: "image/jpeg"})
	if err != nil {
		b.setState(ctx, user, entity.StateMainMenu)
		if errors.Is(err, app.ErrScanInFlight) || errors.Is(err, app.ErrResultShown) {
			b.sendMessage(chatID, msgBusy)
			return
		}
		log.Printf("Error scanning photo: %v", err)
		b.sendMessage(chatID, msgProcessingError)
		return
	}

	b.setState(ctx, user, entity.StateMainMenu)
	b.sendResult(chatID, *rec)
}

func (b *Bot) toggleAuto(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	chatID := msg.Chat.ID

	var on bool
	switch strings.ToLower(strings.TrimSpace(msg.CommandArguments())) {
	case "on", "1", "вкл":
		on = true
	case "off", "0", "выкл":
		on = false
	default:
		b.sendMessage(chatID, msgAutoUsage)
		return
	}

	b.app.Scanner.SetAutoScan(on)
	if _, err := b.app.UserService.SetAutoFeed(ctx, user.ID, chatID, on); err != nil {
		log.Printf("Error saving auto feed: %v", err)
	}

	if on {
		b.sendMessage(chatID, msgAutoOn)
	} else {
		b.sendMessage(chatID, msgAutoOff)
	}
}

func (b *Bot) list(ctx context.Context, chatID int64, args string) {
	filter := parseListArgs(args)

	shown, total, err := b.app.RecordService.Recent(ctx, filter, listLimit)
	if err != nil {
		log.Printf("Error listing records: %v", err)
		b.sendMessage(chatID, msgInternalError)
		return
	}
	b.sendMessage(chatID, formatList(shown, total))
}

// broadcastAuto рассылает результаты автоскана подписанным чатам.
// Ручные сканы отвечают инициатору напрямую.
func (b *Bot) broadcastAuto(rec entity.InspectionRecord, trigger entity.Trigger) {
	if trigger != entity.TriggerAuto {
		return
	}
	chats, err := b.app.UserService.AutoFeedChats(context.Background())
	if err != nil {
		log.Printf("Error loading auto feed chats: %v", err)
		return
	}
	for _, chatID := range chats {
		b.sendResult(chatID, rec)
	}
}

func (b *Bot) setState(ctx context.Context, user *entity.User, state entity.UserState) {
	if _, err := b.app.UserService.SetState(ctx, user.ID, user.ChatID, state); err != nil {
		log.Printf("Error saving user state: %v", err)
	}
}

// sendResult отправляет результат: фото с подписью, если кадр в памяти, иначе текст
func (b *Bot) sendResult(chatID int64, rec entity.InspectionRecord) {
	text := formatRecord(rec)
	if len(rec.Image.Data) == 0 {
		b.sendMessage(chatID, text)
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "scan.jpg", Bytes: rec.Image.Data})
	photo.Caption = text
	if _, err := b.api.Send(photo); err != nil {
		log.Printf("Error sending photo: %v", err)
		b.sendMessage(chatID, text)
	}
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

// downloadFile скачивает файл из Telegram
func downloadFile(api *tgbotapi.BotAPI, fileID string) ([]byte, error) {
	file, err := api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}
