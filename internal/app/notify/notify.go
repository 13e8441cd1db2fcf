package notify

import (
	"context"

	"backend/internal/app/ds"

	"github.com/sirupsen/logrus"
)

// Notifier - внешний канал уведомлений о новых обращениях.
// Ошибка уведомления никогда не должна проваливать сам запрос:
// вызывающий обязан её проглотить.
type Notifier interface {
	NotifySubmission(ctx context.Context, sub *ds.ContactSubmission) error
}

// LogNotifier пишет уведомление в лог. Почтовая интеграция отключена,
// это дефолтная заглушка канала.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) NotifySubmission(_ context.Context, sub *ds.ContactSubmission) error {
	logrus.WithFields(logrus.Fields{
		"id":    sub.ID,
		"name":  sub.Name,
		"email": sub.Email,
	}).Info("new contact submission received")
	return nil
}
