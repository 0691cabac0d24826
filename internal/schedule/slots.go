// Package schedule движок генерации слотов и поиска конфликтов:
// дневные сетки с учётом перерывов, наложение занятости и прямые проверки
// интервалов. Всё здесь - чистые вычисления над данными, которые
// загружают usecase'ы; пакет не хранит состояния и не делает I/O.
package schedule

import (
	"time"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
	"github.com/m04kA/CTC-ScheduleService/pkg/ptr"
)

// GenerateSlots строит упорядоченную последовательность слотов фиксированной
// длины на одну дату по дневному расписанию. Слот, чьё начало попадает в
// [breakStart, breakEnd), подавляется. Выключенные дни дают пустую сетку.
// Сетка пересчитывается на каждый вызов; записи могут меняться между
// запросами, поэтому ничего не кэшируется.
func GenerateSlots(date time.Time, day domain.DaySchedule, slotDurationMinutes int) ([]domain.TimeSlot, error) {
	if slotDurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if !day.Enabled {
		return []domain.TimeSlot{}, nil
	}

	dayStart, err := day.Start.On(date)
	if err != nil {
		return nil, err
	}
	dayEnd, err := day.End.On(date)
	if err != nil {
		return nil, err
	}

	var breakStart, breakEnd time.Time
	hasBreak := day.HasBreak()
	if hasBreak {
		if breakStart, err = day.BreakStart.On(date); err != nil {
			return nil, err
		}
		if breakEnd, err = day.BreakEnd.On(date); err != nil {
			return nil, err
		}
	}

	step := time.Duration(slotDurationMinutes) * time.Minute
	slots := make([]domain.TimeSlot, 0)

	for cursor := dayStart; !cursor.Add(step).After(dayEnd); cursor = cursor.Add(step) {
		if hasBreak && !cursor.Before(breakStart) && cursor.Before(breakEnd) {
			continue
		}
		slots = append(slots, domain.TimeSlot{
			Start:     cursor,
			End:       cursor.Add(step),
			Available: true,
		})
	}

	return slots, nil
}

// MarkAvailability накладывает существующие записи на слоты-кандидаты.
// Сетка строится по базовой длительности центра, но запрос может просить
// более длинное окно: слот доступен только если свободен каждый базовый
// инкремент, который покрыла бы запрошенная длительность. Первая
// совпавшая запись помечает слот и фиксируется как конфликт.
//
// O(слоты x записи) на день; записей в день десятки, поэтому индекс по
// времени не строится.
func MarkAvailability(
	slots []domain.TimeSlot,
	appointments []*domain.Appointment,
	requestedDurationMinutes int,
	baseDurationMinutes int,
) []domain.TimeSlot {
	if baseDurationMinutes <= 0 || requestedDurationMinutes <= 0 {
		return slots
	}

	// Число базовых слотов, которое покрывает запрос такой длины, с округлением вверх
	increments := (requestedDurationMinutes + baseDurationMinutes - 1) / baseDurationMinutes
	step := time.Duration(baseDurationMinutes) * time.Minute

	for i := range slots {
		for inc := 0; inc < increments; inc++ {
			point := slots[i].Start.Add(time.Duration(inc) * step)
			if appt := occupantAt(point, appointments, baseDurationMinutes); appt != nil {
				slots[i].Available = false
				slots[i].ConflictingAppointmentID = ptr.Ptr(appt.ID)
				break
			}
		}
	}

	return slots
}

// occupantAt возвращает первую запись, чей занятый интервал содержит
// указанный момент, либо nil
func occupantAt(point time.Time, appointments []*domain.Appointment, baseDurationMinutes int) *domain.Appointment {
	for _, appt := range appointments {
		if !appt.OccupiesCapacity() {
			continue
		}
		start, end := appt.OccupiedInterval(baseDurationMinutes)
		if !point.Before(start) && point.Before(end) {
			return appt
		}
	}
	return nil
}

// ConflictingAppointmentAt проверяет запрошенное окно [start, start+duration)
// напрямую против занятости записей, независимо от сетки слотов.
// Используется для времён, не попадающих на линию сетки, и для повторной
// проверки внутри транзакции создания. Интервалы полуоткрытые: окна,
// которые лишь граничат, не конфликтуют.
func ConflictingAppointmentAt(
	start time.Time,
	durationMinutes int,
	appointments []*domain.Appointment,
	baseDurationMinutes int,
) *domain.Appointment {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	for _, appt := range appointments {
		if !appt.OccupiesCapacity() {
			continue
		}
		apptStart, apptEnd := appt.OccupiedInterval(baseDurationMinutes)
		if start.Before(apptEnd) && apptStart.Before(end) {
			return appt
		}
	}
	return nil
}

// AvailableOnly оставляет из размеченной сетки только доступные слоты
func AvailableOnly(slots []domain.TimeSlot) []domain.TimeSlot {
	out := make([]domain.TimeSlot, 0, len(slots))
	for _, s := range slots {
		if s.Available {
			out = append(out, s)
		}
	}
	return out
}

// DayRange возвращает полуоткрытый диапазон [полночь, следующая полночь)
// календарного дня даты в её локации
func DayRange(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}

// IsWeekend проверяет, выпадает ли дата на субботу или воскресенье
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
