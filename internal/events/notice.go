package events

import (
	"time"

	"github.com/google/uuid"
)

type NoticeType string

const (
	NoticeInfo    NoticeType = "info"
	NoticeSuccess NoticeType = "success"
	NoticeWarn    NoticeType = "warn"
	NoticeError   NoticeType = "error"
)

// NoticeEvent is the frontend channel for user-facing notices.
const NoticeEvent = "story:notice"

// Notice is a one-shot message shown to the user, e.g. after saving.
type Notice struct {
	ID        string     `json:"id"`
	Type      NoticeType `json:"type"`
	Message   string     `json:"message"`
	Timestamp time.Time  `json:"timestamp"`
}

func NewNotice(t NoticeType, message string) Notice {
	return Notice{
		ID:        uuid.NewString(),
		Type:      t,
		Message:   message,
		Timestamp: time.Now(),
	}
}

func NewSuccess(message string) Notice {
	return NewNotice(NoticeSuccess, message)
}

func NewWarn(message string) Notice {
	return NewNotice(NoticeWarn, message)
}

func NewError(message string) Notice {
	return NewNotice(NoticeError, message)
}
