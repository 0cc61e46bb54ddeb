// Package notify forwards new submissions to Telegram chats. Delivery is
// best effort: failures are logged and reported as a boolean, never returned
// as errors.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"

	"formsapi/internal/config"
)

// Document is a file sent alongside a notification.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Notifier delivers notifications to every configured destination. The
// returned flag is true only when all destinations accepted the message.
type Notifier interface {
	Enabled() bool
	SendText(ctx context.Context, text string) bool
	SendDocument(ctx context.Context, doc Document, caption string) bool
}

// Telegram sends messages through the Bot API.
type Telegram struct {
	client      *http.Client
	apiURL      string
	token       string
	chatIDs     []string
	textTimeout time.Duration
	docTimeout  time.Duration
	log         zerolog.Logger
}

var _ Notifier = (*Telegram)(nil)

// NewTelegram builds a Telegram notifier. When client is nil an
// instrumented client is used.
func NewTelegram(cfg config.TelegramConfig, client *http.Client, logger zerolog.Logger) *Telegram {
	if client == nil {
		client = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}
	var ids []string
	for _, id := range cfg.ChatIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return &Telegram{
		client:      client,
		apiURL:      strings.TrimRight(cfg.APIURL, "/"),
		token:       cfg.BotToken,
		chatIDs:     ids,
		textTimeout: seconds(cfg.TextTimeoutSec, 10),
		docTimeout:  seconds(cfg.DocumentTimeoutSec, 20),
		log:         logger.With().Str("component", "telegram").Logger(),
	}
}

// Enabled reports whether a bot token and at least one chat are configured.
func (t *Telegram) Enabled() bool {
	return t.token != "" && len(t.chatIDs) > 0
}

// SendText posts text to every chat with link previews disabled.
func (t *Telegram) SendText(ctx context.Context, text string) bool {
	if !t.Enabled() {
		return false
	}
	return t.fanOut(ctx, "sendMessage", t.textTimeout, func(chatID string) (io.Reader, string, error) {
		form := url.Values{}
		form.Set("chat_id", chatID)
		form.Set("text", text)
		form.Set("disable_web_page_preview", "true")
		return strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", nil
	})
}

// SendDocument uploads doc to every chat with the given caption.
func (t *Telegram) SendDocument(ctx context.Context, doc Document, caption string) bool {
	if !t.Enabled() {
		return false
	}
	return t.fanOut(ctx, "sendDocument", t.docTimeout, func(chatID string) (io.Reader, string, error) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		if err := w.WriteField("chat_id", chatID); err != nil {
			return nil, "", err
		}
		if err := w.WriteField("caption", caption); err != nil {
			return nil, "", err
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="document"; filename=%q`, doc.Filename))
		ct := doc.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(doc.Data); err != nil {
			return nil, "", err
		}
		if err := w.Close(); err != nil {
			return nil, "", err
		}
		return &buf, w.FormDataContentType(), nil
	})
}

type bodyFunc func(chatID string) (io.Reader, string, error)

// fanOut calls method once per chat concurrently. A failing chat never stops
// the others.
func (t *Telegram) fanOut(ctx context.Context, method string, timeout time.Duration, body bodyFunc) bool {
	results := make([]bool, len(t.chatIDs))

	var g errgroup.Group
	for i, chatID := range t.chatIDs {
		g.Go(func() error {
			err := t.post(ctx, method, timeout, chatID, body)
			if err != nil {
				t.log.Warn().
					Str("event", "telegram_delivery_failed").
					Str("method", method).
					Str("chat_id", chatID).
					Str("error_message", err.Error()).
					Send()
			}
			results[i] = err == nil
			return nil
		})
	}
	_ = g.Wait()

	for _, ok := range results {
		if !ok {
			return false
		}
	}
	return true
}

func (t *Telegram) post(ctx context.Context, method string, timeout time.Duration, chatID string, body bodyFunc) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	r, contentType, err := body(chatID)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint(method), r)
	if err != nil {
		return fmt.Errorf("build request: %w", redact(err))
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := t.client.Do(req)
	if err != nil {
		return redact(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var reply apiReply
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&reply); err != nil {
		return fmt.Errorf("decode reply: %w", err)
	}
	if !reply.OK {
		return fmt.Errorf("rejected: %s", reply.Description)
	}
	return nil
}

// apiReply is the envelope of every Bot API response.
type apiReply struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (t *Telegram) endpoint(method string) string {
	return t.apiURL + "/bot" + t.token + "/" + method
}

// redact drops the request URL, which embeds the bot token, from err.
func redact(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return fmt.Errorf("%s: %w", strings.ToLower(ue.Op), ue.Err)
	}
	return err
}

func seconds(n, def int) time.Duration {
	if n <= 0 {
		n = def
	}
	return time.Duration(n) * time.Second
}
