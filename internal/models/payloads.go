package models

// These structs define the JSON payloads of the question generator's HTTP API.

// QuestionsRequest is the JSON input naming a PDF already stored in Cloud Storage.
type QuestionsRequest struct {
	GCSUri        string `json:"gcsUri"`
	QuestionCount *int   `json:"questionCount,omitempty"`
}

// QuestionsResponse is the JSON output of a generation request.
type QuestionsResponse struct {
	RequestID     string        `json:"requestId"`
	Status        string        `json:"status"`
	Questions     string        `json:"questions,omitempty"`
	QuestionCount int           `json:"questionCount,omitempty"`
	PageCount     int           `json:"pageCount,omitempty"`
	Error         *ErrorPayload `json:"error,omitempty"`
}

// ErrorPayload carries a failure's kind, its display message and the underlying detail.
type ErrorPayload struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}
