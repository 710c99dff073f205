package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Admin    AdminConfig    `toml:"admin"`
	Schedule ScheduleConfig `toml:"schedule"`
	SMTP     SMTPConfig     `toml:"smtp"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AdminConfig настройки администратора.
// Пользователь, вошедший с Secret вместо телефона, получает права администратора.
type AdminConfig struct {
	Secret string `toml:"secret"`
}

// ScheduleConfig рабочее расписание мастера
type ScheduleConfig struct {
	OpenTime            string `toml:"open_time"`
	CloseTime           string `toml:"close_time"`
	SlotDurationMinutes int    `toml:"slot_duration_minutes"`
	SundayClosed        bool   `toml:"sunday_closed"`
}

// ToPolicy конвертирует конфигурацию в доменную политику расписания
func (c *ScheduleConfig) ToPolicy() (domain.SchedulePolicy, error) {
	policy := domain.DefaultSchedulePolicy()

	if c.OpenTime != "" {
		open, err := types.NewTimeStringFromString(c.OpenTime)
		if err != nil {
			return policy, fmt.Errorf("config: invalid schedule.open_time: %w", err)
		}
		policy.OpenTime = open
	}

	if c.CloseTime != "" {
		closeTime, err := types.NewTimeStringFromString(c.CloseTime)
		if err != nil {
			return policy, fmt.Errorf("config: invalid schedule.close_time: %w", err)
		}
		policy.CloseTime = closeTime
	}

	if c.SlotDurationMinutes > 0 {
		policy.SlotDurationMinutes = c.SlotDurationMinutes
	}

	policy.SundayClosed = c.SundayClosed

	return policy, nil
}

// SMTPConfig настройки почтовых уведомлений
type SMTPConfig struct {
	Enabled  bool   `toml:"enabled"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	From     string `toml:"from"`
	To       string `toml:"to"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Admin.Secret == "" {
		return nil, fmt.Errorf("config: admin.secret is required")
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "appointment-service",
			Path:        "/metrics",
		},
		Schedule: ScheduleConfig{
			OpenTime:            domain.DefaultOpenTime.String(),
			CloseTime:           domain.DefaultCloseTime.String(),
			SlotDurationMinutes: domain.DefaultSlotDurationMinutes,
			SundayClosed:        true,
		},
	}
}
