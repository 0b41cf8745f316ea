package get_client_slots

import "time"

// Request модель запроса слотов для клиента
type Request struct {
	Date      time.Time // дата, на которую клиент ищет слоты
	ServiceID int64     // ID услуги
}

// Slot один доступный слот
type Slot struct {
	StartTime time.Time // начало слота
	EndTime   time.Time // конец слота (начало + округленная длительность услуги)
}

// Response модель ответа со слотами
type Response struct {
	Date            time.Time // запрошенная дата
	ServiceID       int64     // ID услуги
	ServiceName     string    // название услуги
	DurationMinutes int       // округленная длительность брони
	Slots           []Slot    // доступные слоты по возрастанию начала
}
