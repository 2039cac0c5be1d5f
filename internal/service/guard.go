package service

// AccessLevel — требуемый уровень доступа к сущности.
type AccessLevel int

const (
	// AccessRead — чтение: владелец либо публичная сущность.
	AccessRead AccessLevel = iota
	// AccessWrite — изменение: только настоящий владелец, публичность не даёт прав.
	AccessWrite
)

// allowAccess — единая политика доступа для всех сущностей.
// Владение денормализовано (userID хранится на каждой сущности), поэтому
// проверка не требует обхода родителей.
func allowAccess(ownerID int64, isPublic bool, requesterID int64, level AccessLevel) bool {
	if requesterID == ownerID {
		return true
	}
	return level == AccessRead && isPublic
}
