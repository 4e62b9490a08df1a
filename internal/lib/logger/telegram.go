package logger

import (
	"context"
	"fmt"
	"log/slog"
)

// AlertSender delivers a plain-text alert out of band, for example to the
// admin chat of the telegram bot.
type AlertSender interface {
	SendMessage(msg string)
}

// telegramHandler mirrors records to the wrapped handler and additionally
// forwards records at or above alertLevel to the alert sender.
type telegramHandler struct {
	next       slog.Handler
	sender     AlertSender
	alertLevel slog.Level
}

// SetupTelegramHandler wraps lg so that records at or above alertLevel are
// also pushed through sender. The wrapped logger keeps its original output.
func SetupTelegramHandler(lg *slog.Logger, sender AlertSender, alertLevel slog.Level) *slog.Logger {
	return slog.New(&telegramHandler{
		next:       lg.Handler(),
		sender:     sender,
		alertLevel: alertLevel,
	})
}

func (h *telegramHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *telegramHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level >= h.alertLevel && h.sender != nil {
		msg := fmt.Sprintf("[%s] %s", record.Level.String(), record.Message)
		record.Attrs(func(a slog.Attr) bool {
			msg += fmt.Sprintf("\n%s: %s", a.Key, a.Value.String())
			return true
		})
		h.sender.SendMessage(msg)
	}
	return h.next.Handle(ctx, record)
}

func (h *telegramHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &telegramHandler{
		next:       h.next.WithAttrs(attrs),
		sender:     h.sender,
		alertLevel: h.alertLevel,
	}
}

func (h *telegramHandler) WithGroup(name string) slog.Handler {
	return &telegramHandler{
		next:       h.next.WithGroup(name),
		sender:     h.sender,
		alertLevel: h.alertLevel,
	}
}
