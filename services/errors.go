package services

import "errors"

// Ошибки сервисного слоя, маппятся на HTTP в handlers.
var (
	// Валидация заявки на результат матча
	ErrUnknownMatch      = errors.New("match not found in schedule")
	ErrPlayerNotOnRoster = errors.New("player is not on the team's configured roster")

	// Генерация расписания
	ErrNoTeamsConfigured  = errors.New("no teams configured")
	ErrScheduleHasResults = errors.New("schedule already has recorded results, refusing to regenerate")

	// Аутентификация
	ErrInvalidPassword = errors.New("invalid admin password")
)
