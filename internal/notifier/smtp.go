package notifier

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

const notificationSubject = "Новая заявка на запись"

// SMTPNotifier отправляет письмо администратору о каждой новой заявке
type SMTPNotifier struct {
	addr string
	auth smtp.Auth
	from string
	to   string
}

// NewSMTPNotifier создает SMTP-уведомитель.
// user/password опциональны - для локального relay без аутентификации передаются пустыми.
func NewSMTPNotifier(host string, port int, from, to, user, password string) *SMTPNotifier {
	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, password, host)
	}

	return &SMTPNotifier{
		addr: fmt.Sprintf("%s:%d", host, port),
		auth: auth,
		from: from,
		to:   to,
	}
}

// Notify отправляет уведомление о новой заявке
func (n *SMTPNotifier) Notify(_ context.Context, service, date, startTime, phone string) error {
	body := buildBody(service, date, startTime, phone)
	msg := buildMessage(n.from, n.to, notificationSubject, body)

	if err := smtp.SendMail(n.addr, n.auth, n.from, []string{n.to}, []byte(msg)); err != nil {
		return fmt.Errorf("notifier: failed to send mail: %w", err)
	}

	return nil
}

func buildBody(service, date, startTime, phone string) string {
	var b strings.Builder
	b.WriteString("Получена новая заявка на запись:\n\n")
	b.WriteString(fmt.Sprintf("Телефон клиента: %s\n", phone))
	b.WriteString(fmt.Sprintf("Услуга: %s\n", service))
	b.WriteString(fmt.Sprintf("Дата: %s\n", date))
	b.WriteString(fmt.Sprintf("Время: %s\n", startTime))
	b.WriteString("\nЗаявки можно обработать в админ-панели.\n")
	return b.String()
}

func buildMessage(from, to, subject, body string) string {
	// Минимальное RFC 5322 сообщение, достаточное для большинства SMTP relay
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}
