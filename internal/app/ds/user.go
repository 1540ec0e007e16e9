package ds

// Роли пользователей FleetPro
const (
	RoleDriver     = "driver"
	RoleDispatcher = "dispatcher"
)

// User — пользователь системы (водитель или диспетчер).
// Учетные записи создаются внешней системой, здесь только чтение.
type User struct {
	ID           int    `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
	Role         string `json:"role" gorm:"not null"`
	FullName     string `json:"full_name"`
}

func (User) TableName() string { return "users" }

// Public — проекция пользователя для ответа авторизации (без хеша пароля)
func (u User) Public() map[string]interface{} {
	return map[string]interface{}{
		"id":        u.ID,
		"username":  u.Username,
		"role":      u.Role,
		"full_name": u.FullName,
	}
}
