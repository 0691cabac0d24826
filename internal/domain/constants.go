package domain

// Дефолтные значения конфигурации: применяются, когда у центра нет
// сохранённых настроек или blob рабочих часов не парсится
const (
	DefaultAppointmentDurationMinutes = 30
	DefaultMinBookingNoticeHours      = 24

	DefaultDayStart   = "09:00"
	DefaultDayEnd     = "18:00"
	DefaultBreakStart = "12:00"
	DefaultBreakEnd   = "14:00"
)

// Константы бизнес-валидации
const (
	MinAppointmentDurationMinutes = 5
	MaxAppointmentDurationMinutes = 480 // 8 часов
	MinBookingNoticeHoursLimit    = 0
	MaxBookingNoticeHoursLimit    = 168 // 1 неделя
	MaxNotesLength                = 500
)

// Константы поиска по расписанию
const (
	// MaxSearchHorizonDays ограничивает подневный обход при поиске следующего слота
	MaxSearchHorizonDays = 30

	// MaxSuggestedSlots ограничивает число альтернатив при проверке конфликта
	MaxSuggestedSlots = 5
)

// Форматы времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, занимающие ёмкость календаря
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
}
