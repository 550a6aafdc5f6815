package domain

import "time"

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	Read    bool      `json:"read"`
}
