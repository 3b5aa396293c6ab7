package notification

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrLogNotFound      = errors.New("notification log not found")
	ErrNotResendable    = errors.New("only sent notifications can be resent")
	ErrResendInProgress = errors.New("notification is already being resent")
)

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

type LogStatus string

const (
	LogSent    LogStatus = "sent"
	LogPending LogStatus = "pending"
	LogFailed  LogStatus = "failed"
)

// Log is a delivery record for an email or SMS sent to a customer.
type Log struct {
	ID          string    `json:"id"`
	Type        Channel   `json:"type"`
	Recipient   string    `json:"recipient"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	Status      LogStatus `json:"status"`
	Timestamp   string    `json:"timestamp"`
	OrderNumber string    `json:"orderNumber,omitempty"`
}

type LogView struct {
	Log
	Resending bool `json:"resending"`
}

// LogPage is what the notification center shows for one filter tab.
type LogPage struct {
	Logs   []LogView      `json:"logs"`
	Counts map[string]int `json:"counts"`
	Filter string         `json:"filter"`
}

// LogBook serves the static delivery logs and tracks per-session resends.
type LogBook struct {
	mu        sync.RWMutex
	logs      []Log
	resending *Flash
}

func NewLogBook(seed []Log, resendFor time.Duration) *LogBook {
	b := &LogBook{
		logs:      make([]Log, 0, len(seed)),
		resending: NewFlash(resendFor),
	}
	b.logs = append(b.logs, seed...)
	return b
}

func resendKey(sessionID, id string) string {
	return sessionID + "/" + id
}

func (b *LogBook) owned(email, phone string) []Log {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Log, 0)
	for _, l := range b.logs {
		if (email != "" && l.Recipient == email) || (phone != "" && l.Recipient == phone) {
			out = append(out, l)
		}
	}
	return out
}

// ForRecipient lists the logs addressed to the given email or phone,
// restricted to one channel unless filter is "all" or empty.
func (b *LogBook) ForRecipient(sessionID, email, phone, filter string) LogPage {
	if filter != string(ChannelEmail) && filter != string(ChannelSMS) {
		filter = "all"
	}

	owned := b.owned(email, phone)
	page := LogPage{
		Logs:   make([]LogView, 0, len(owned)),
		Counts: map[string]int{"all": len(owned)},
		Filter: filter,
	}
	for _, l := range owned {
		page.Counts[string(l.Type)]++
		if filter != "all" && string(l.Type) != filter {
			continue
		}
		page.Logs = append(page.Logs, LogView{Log: l, Resending: b.resending.Active(resendKey(sessionID, l.ID))})
	}
	return page
}

// Resend marks a sent log as resending for the configured hold.
func (b *LogBook) Resend(sessionID, email, phone, id string) (LogView, error) {
	for _, l := range b.owned(email, phone) {
		if l.ID != id {
			continue
		}
		if l.Status != LogSent {
			return LogView{}, ErrNotResendable
		}
		if _, raised := b.resending.Raise(resendKey(sessionID, id)); !raised {
			return LogView{}, ErrResendInProgress
		}
		return LogView{Log: l, Resending: true}, nil
	}
	return LogView{}, ErrLogNotFound
}
