package core

// Message is the domain model for a chat message.
// Rooms store the original text; broadcasts carry the translated form.
type Message struct {
	From string
	Text string
}
