package book_master

import "time"

// Request модель запроса ручной записи мастером.
// Клиент задается либо ClientID, либо телефоном с именем - в этом
// случае клиент будет найден по телефону или создан.
type Request struct {
	ClientID        *int64
	ClientPhone     string
	ClientFirstName string
	ClientLastName  string

	ServiceID   int64
	StartTime   time.Time
	MasterNotes *string
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	ClientID        int64
	ClientName      string
	ServiceID       int64
	ServiceName     string
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	Status          string
	MasterNotes     *string
	CreatedAt       time.Time
}
