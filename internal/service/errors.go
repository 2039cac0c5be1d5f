package service

import "errors"

// Типизированные исходы сервисных операций. HTTP-слой переводит их в статусы,
// сами сервисы про транспорт ничего не знают.
var (
	// ErrNotFound — сущность по указанному id/slug не существует.
	ErrNotFound = errors.New("not found")

	// ErrForbidden — запрашивающий не владелец, а публичного исключения
	// на этом пути нет (или isPublic = false).
	ErrForbidden = errors.New("forbidden")

	// ErrValidation — нарушено ограничение поля (обязательность/длина/формат).
	ErrValidation = errors.New("validation failed")

	// ErrSlugConflict — генератор исчерпал попытки подобрать свободный slug.
	// Если эта ошибка всплыла, это баг конфигурации генератора.
	ErrSlugConflict = errors.New("slug conflict")
)
