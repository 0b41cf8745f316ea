package book_client

import "time"

// Request модель запроса клиентской записи
type Request struct {
	Phone       string    // телефон клиента (из аутентификации)
	ServiceID   int64     // ID услуги
	StartTime   time.Time // желаемое время начала
	ClientNotes *string   // пожелания клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	ClientID        int64
	ServiceID       int64
	ServiceName     string
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	Status          string
	ClientNotes     *string
	CreatedAt       time.Time
}
