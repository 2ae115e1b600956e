package model

// LocationBody marks a violation as coming from the request body, the
// only field source the rulesets read from.
const LocationBody = "body"

// ValidationError describes a single failed check on a request field.
type ValidationError struct {
	Field    string `json:"field"`
	Message  string `json:"message"`
	Location string `json:"location"`
}
