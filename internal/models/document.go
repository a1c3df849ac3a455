package models

// Document is a single uploaded PDF. It lives only for the duration of one request.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

// QuestionJob is one generation request handed from the shell to the question service.
type QuestionJob struct {
	RequestID     string
	Document      *Document
	QuestionCount int
}
