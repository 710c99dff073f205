package notifier

import "context"

// Disabled заглушка уведомителя для конфигураций с выключенным SMTP
type Disabled struct{}

// NewDisabled создает выключенный уведомитель
func NewDisabled() *Disabled {
	return &Disabled{}
}

// Notify ничего не делает
func (n *Disabled) Notify(_ context.Context, _, _, _, _ string) error {
	return nil
}
