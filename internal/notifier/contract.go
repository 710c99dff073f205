package notifier

import "context"

// Notifier интерфейс исходящих уведомлений о новых заявках.
// Результат отправки никогда не влияет на судьбу записи - вызывающая сторона
// только логирует ошибку.
type Notifier interface {
	Notify(ctx context.Context, service, date, startTime, phone string) error
}
