package amqp

import (
	"encoding/json"
	"time"
)

// ReminderMessage carries a payment-due reminder from the API to the worker.
// The worker fetches nothing extra; the message is self-contained.
type ReminderMessage struct {
	TransactionID string    `json:"transactionId"`
	Title         string    `json:"title"`
	AmountCents   int64     `json:"amountCents"`
	PersonName    string    `json:"personName,omitempty"`
	DueDate       string    `json:"dueDate"` // YYYY-MM-DD
	EmittedAt     time.Time `json:"emittedAt"`
}

func NewReminderMessage(txID, title string, amountCents int64, person, dueDate string) *ReminderMessage {
	return &ReminderMessage{
		TransactionID: txID,
		Title:         title,
		AmountCents:   amountCents,
		PersonName:    person,
		DueDate:       dueDate,
		EmittedAt:     time.Now(),
	}
}

func (m *ReminderMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ReminderMessageFromJSON(data []byte) (*ReminderMessage, error) {
	var msg ReminderMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
