package domain

import "time"

// Client профиль клиента салона.
// Связан один-к-одному с учетной записью (телефон + роль).
type Client struct {
	ID        int64
	UserID    int64
	Phone     string // из связанной учетной записи
	FirstName string
	LastName  string
	BirthDate *time.Time
	Notes     *string
	CreatedAt time.Time
}

// FullName возвращает имя и фамилию клиента
func (c *Client) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
