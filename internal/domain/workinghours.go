package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/CTC-ScheduleService/pkg/types"
)

// DaySchedule рабочие часы одного дня недели с опциональным перерывом.
// Инварианты (для включённого дня): Start < End; при наличии перерыва
// Start <= BreakStart < BreakEnd <= End.
type DaySchedule struct {
	Enabled    bool              `json:"enabled"`
	Start      types.TimeString  `json:"start"`
	End        types.TimeString  `json:"end"`
	BreakStart *types.TimeString `json:"breakStart,omitempty"`
	BreakEnd   *types.TimeString `json:"breakEnd,omitempty"`
}

// HasBreak возвращает true, когда заданы обе границы перерыва
func (d *DaySchedule) HasBreak() bool {
	return d.BreakStart != nil && d.BreakEnd != nil
}

// Validate проверяет инварианты дня. Выключенные дни всегда валидны.
func (d *DaySchedule) Validate() error {
	if !d.Enabled {
		return nil
	}
	if _, err := types.NewTimeStringFromString(d.Start.String()); err != nil {
		return fmt.Errorf("invalid start time: %w", err)
	}
	if _, err := types.NewTimeStringFromString(d.End.String()); err != nil {
		return fmt.Errorf("invalid end time: %w", err)
	}
	if !d.Start.IsBefore(d.End) {
		return fmt.Errorf("start %s must be before end %s", d.Start, d.End)
	}
	if d.BreakStart == nil != (d.BreakEnd == nil) {
		return fmt.Errorf("break window must set both breakStart and breakEnd")
	}
	if d.HasBreak() {
		if _, err := types.NewTimeStringFromString(d.BreakStart.String()); err != nil {
			return fmt.Errorf("invalid breakStart: %w", err)
		}
		if _, err := types.NewTimeStringFromString(d.BreakEnd.String()); err != nil {
			return fmt.Errorf("invalid breakEnd: %w", err)
		}
		if d.BreakStart.IsBefore(d.Start) || !d.BreakStart.IsBefore(*d.BreakEnd) || d.BreakEnd.IsAfter(d.End) {
			return fmt.Errorf("break %s-%s must lie within working hours %s-%s",
				*d.BreakStart, *d.BreakEnd, d.Start, d.End)
		}
	}
	return nil
}

// WeekSchedule полная недельная конфигурация рабочих часов центра
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// ForDay возвращает расписание для дня недели указанной даты
func (w *WeekSchedule) ForDay(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	default:
		return w.Sunday
	}
}

// Validate проверяет инварианты всех дней
func (w *WeekSchedule) Validate() error {
	days := []struct {
		name string
		day  *DaySchedule
	}{
		{"monday", &w.Monday}, {"tuesday", &w.Tuesday}, {"wednesday", &w.Wednesday},
		{"thursday", &w.Thursday}, {"friday", &w.Friday}, {"saturday", &w.Saturday},
		{"sunday", &w.Sunday},
	}
	for _, d := range days {
		if err := d.day.Validate(); err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
	}
	return nil
}

// DefaultDaySchedule возвращает дефолтный день:
// 09:00-18:00 с перерывом 12:00-14:00, включён.
func DefaultDaySchedule() DaySchedule {
	breakStart := types.TimeString(DefaultBreakStart)
	breakEnd := types.TimeString(DefaultBreakEnd)
	return DaySchedule{
		Enabled:    true,
		Start:      types.TimeString(DefaultDayStart),
		End:        types.TimeString(DefaultDayEnd),
		BreakStart: &breakStart,
		BreakEnd:   &breakEnd,
	}
}

// DefaultWeekSchedule возвращает дефолтную конфигурацию, где каждый день
// использует дефолтное дневное расписание
func DefaultWeekSchedule() WeekSchedule {
	return WeekSchedule{
		Monday:    DefaultDaySchedule(),
		Tuesday:   DefaultDaySchedule(),
		Wednesday: DefaultDaySchedule(),
		Thursday:  DefaultDaySchedule(),
		Friday:    DefaultDaySchedule(),
		Saturday:  DefaultDaySchedule(),
		Sunday:    DefaultDaySchedule(),
	}
}

// WorkingHoursResolution классифицирует результат разбора сохранённого
// blob рабочих часов
type WorkingHoursResolution int

const (
	// WorkingHoursValid - использована сохранённая конфигурация
	WorkingHoursValid WorkingHoursResolution = iota
	// WorkingHoursMissing - конфигурация не сохранена; применяются дефолты
	WorkingHoursMissing
	// WorkingHoursMalformed - blob не парсится или нарушает инварианты
	// дней; применяются дефолты
	WorkingHoursMalformed
)

// String реализует fmt.Stringer
func (r WorkingHoursResolution) String() string {
	switch r {
	case WorkingHoursValid:
		return "valid"
	case WorkingHoursMissing:
		return "missing"
	default:
		return "malformed"
	}
}

// rawDay зеркалит DaySchedule для парсинга: отсутствующий ключ "enabled"
// означает включён, а не выключен, чтобы blob'ы только со start/end
// продолжали работать.
type rawDay struct {
	Enabled    *bool             `json:"enabled"`
	Start      types.TimeString  `json:"start"`
	End        types.TimeString  `json:"end"`
	BreakStart *types.TimeString `json:"breakStart"`
	BreakEnd   *types.TimeString `json:"breakEnd"`
}

func (r *rawDay) toDaySchedule() DaySchedule {
	enabled := true
	if r.Enabled != nil {
		enabled = *r.Enabled
	}
	return DaySchedule{
		Enabled:    enabled,
		Start:      r.Start,
		End:        r.End,
		BreakStart: r.BreakStart,
		BreakEnd:   r.BreakEnd,
	}
}

// ResolveWorkingHours превращает сохранённый blob рабочих часов в рабочий
// WeekSchedule. Никогда не возвращает ошибку: отсутствующая конфигурация
// даёт дефолты с WorkingHoursMissing, нечитаемая или невалидная - дефолты
// с WorkingHoursMalformed. Расписание остаётся доступным даже при
// испорченных настройках; деградацию логирует вызывающая сторона.
//
// На входе принимается либо JSON-объект с ключами-днями в нижнем регистре,
// либо JSON-строка с этим объектом внутри (legacy строки с двойной
// сериализацией). Дни, отсутствующие в blob, получают дефолтное
// расписание.
func ResolveWorkingHours(raw json.RawMessage) (WeekSchedule, WorkingHoursResolution) {
	if len(raw) == 0 || string(raw) == "null" {
		return DefaultWeekSchedule(), WorkingHoursMissing
	}

	// Legacy строки хранят объект, сериализованный внутри JSON-строки
	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		raw = json.RawMessage(inner)
		if len(raw) == 0 || string(raw) == "null" {
			return DefaultWeekSchedule(), WorkingHoursMissing
		}
	}

	var days map[string]rawDay
	if err := json.Unmarshal(raw, &days); err != nil {
		return DefaultWeekSchedule(), WorkingHoursMalformed
	}

	week := DefaultWeekSchedule()
	assign := map[string]*DaySchedule{
		"monday":    &week.Monday,
		"tuesday":   &week.Tuesday,
		"wednesday": &week.Wednesday,
		"thursday":  &week.Thursday,
		"friday":    &week.Friday,
		"saturday":  &week.Saturday,
		"sunday":    &week.Sunday,
	}
	for name, target := range assign {
		if rd, ok := days[name]; ok {
			*target = rd.toDaySchedule()
		}
	}

	if err := week.Validate(); err != nil {
		return DefaultWeekSchedule(), WorkingHoursMalformed
	}

	return week, WorkingHoursValid
}
