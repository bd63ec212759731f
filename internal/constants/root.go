package constants

const (
	// DateFormat is the standard date layout used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DateTimeFormat is the standard naive datetime layout (no offset)
	DateTimeFormat = "2006-01-02T15:04:05"

	// TimestampFormat is used for stored created_at / deleted_at values
	TimestampFormat = "2006-01-02T15:04:05Z07:00"
)
