package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gosm1/pureperfumes/internal/config"
	"github.com/gosm1/pureperfumes/internal/model"

	"github.com/rs/zerolog"
)

const defaultTelegramAPI = "https://api.telegram.org"

// telegramNotifier sends order notifications through the Telegram bot API.
type telegramNotifier struct {
	client   *http.Client
	baseURL  string
	botToken string
	chatID   string
	logger   zerolog.Logger
}

// NewTelegramNotifier creates a Telegram-backed order notifier. The notifier
// is created even when credentials are missing; NotifyOrder then fails fast
// with a logged error instead of crashing the checkout path.
func NewTelegramNotifier(cfg config.TelegramConfig, logger zerolog.Logger) Notifier {
	return &telegramNotifier{
		client:   &http.Client{Timeout: 10 * time.Second},
		baseURL:  defaultTelegramAPI,
		botToken: cfg.BotToken,
		chatID:   cfg.ChatID,
		logger:   logger.With().Str("component", "telegram-notifier").Logger(),
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// NotifyOrder posts the order summary to the configured chat.
func (n *telegramNotifier) NotifyOrder(ctx context.Context, order *model.Order) error {
	if n.botToken == "" || n.chatID == "" {
		n.logger.Error().Msg("telegram credentials missing, notification skipped")
		return fmt.Errorf("telegram credentials missing")
	}

	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    n.chatID,
		Text:      formatOrderMessage(order),
		ParseMode: "Markdown",
	})
	if err != nil {
		return fmt.Errorf("failed to encode telegram message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("telegram request failed")
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		n.logger.Error().
			Int("status", resp.StatusCode).
			Str("order_id", order.ID.String()).
			Str("response", string(body)).
			Msg("telegram API rejected notification")
		return fmt.Errorf("telegram API returned status %d", resp.StatusCode)
	}

	n.logger.Info().Str("order_id", order.ID.String()).Msg("order notification sent")

	return nil
}

// formatOrderMessage renders the flat order summary shown to the operator.
func formatOrderMessage(order *model.Order) string {
	var b strings.Builder

	b.WriteString("📦 *NOUVELLE COMMANDE REÇUE !*\n\n")
	fmt.Fprintf(&b, "👤 *Client:* %s %s\n", order.FirstName, order.LastName)
	fmt.Fprintf(&b, "📱 *Téléphone:* %s\n", order.Phone)
	fmt.Fprintf(&b, "📍 *Ville:* %s\n", order.City)
	fmt.Fprintf(&b, "🏠 *Adresse:* %s\n\n", order.Address)

	b.WriteString("🛒 *Articles:*\n")
	for _, item := range order.CartItems {
		fmt.Fprintf(&b, "- %dx %s (%s)", item.Quantity, item.Name, item.Brand)
		if c := item.Customization; c != nil {
			var details []string
			if c.RingSize != nil {
				details = append(details, fmt.Sprintf("taille %d", *c.RingSize))
			}
			if c.PerfumeType != "" {
				details = append(details, "parfum "+c.PerfumeType)
			}
			if c.CustomPerfumeName != "" {
				details = append(details, "parfum "+c.CustomPerfumeName)
			}
			if c.LoveLetterEnabled {
				details = append(details, "lettre pour "+c.LoveLetterRecipientName)
			}
			if len(details) > 0 {
				fmt.Fprintf(&b, " [%s]", strings.Join(details, ", "))
			}
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n💰 *Total:* %.2f DH\n\n", order.TotalPrice)
	b.WriteString("_Veuillez vérifier le dashboard admin pour plus de détails._")

	return b.String()
}
