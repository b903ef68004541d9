package errors

// ErrorResponse is the wire shape for every error reply: a flat JSON object
// with a single user-facing message. Clients display the message verbatim.
type ErrorResponse struct {
	Error string `json:"error"`
}
