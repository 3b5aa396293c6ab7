package notification

import "time"

type Type string

const (
	TypeSuccess  Type = "success"
	TypeError    Type = "error"
	TypeInfo     Type = "info"
	TypeDiscount Type = "discount"
)

// DefaultDuration is how long a toast stays up when it does not say otherwise.
const DefaultDuration = 5 * time.Second

// Toast is a transient message that dismisses itself after Duration.
type Toast struct {
	ID         string        `json:"id"`
	Type       Type          `json:"type"`
	Title      string        `json:"title"`
	Message    string        `json:"message"`
	Duration   time.Duration `json:"-"`
	DurationMs int64         `json:"duration"`
	ExpiresAt  time.Time     `json:"expiresAt"`
}

func Success(title, message string) Toast {
	return Toast{Type: TypeSuccess, Title: title, Message: message}
}

func Error(title, message string) Toast {
	return Toast{Type: TypeError, Title: title, Message: message}
}

func Info(title, message string) Toast {
	return Toast{Type: TypeInfo, Title: title, Message: message}
}

func Discount(title, message string, d time.Duration) Toast {
	return Toast{Type: TypeDiscount, Title: title, Message: message, Duration: d}
}
