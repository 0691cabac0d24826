package domain

import "time"

// TimeSlot временное окно фиксированной длины внутри рабочих часов.
// Слоты - производное представление: пересчитываются на каждый запрос и
// никогда не сохраняются.
type TimeSlot struct {
	Start                    time.Time
	End                      time.Time
	Available                bool
	ConflictingAppointmentID *int64
}

// Duration возвращает длину слота
func (s *TimeSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// DayCapacity сводка по слотам одного дня, пересчитывается на каждый запрос
type DayCapacity struct {
	TotalSlots      int
	AvailableSlots  int
	OccupiedSlots   int
	UtilizationRate float64 // процент 0-100, 0 если в дне нет слотов
}
