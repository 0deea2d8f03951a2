package model

import "time"

// Message is a raw bank/SMS notification as captured from a device or
// pasted by the user. Body is untrusted free-form text; Sender is the
// short-code of the originating sender and may be empty.
type Message struct {
	ReceivedAt time.Time `json:"receivedAt"`
	Body       string    `json:"body"`
	Sender     string    `json:"sender"`
}
