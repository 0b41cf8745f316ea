package domain

// Service услуга салона
type Service struct {
	ID              int64
	Name            string
	Description     *string
	DurationMinutes int // сырая длительность; бронь округляется вверх до гранулярности
	Price           float64
	Category        string // Маникюр, Педикюр и т.д.
	IsActive        bool   // деактивация скрывает услугу из новых записей, существующие не трогает
}
