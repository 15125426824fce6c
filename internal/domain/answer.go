package domain

// AnswerStatus tags the outcome of a question.
type AnswerStatus string

const (
	// AnswerSuccess means an answer was produced.
	AnswerSuccess AnswerStatus = "SUCCESS"
	// AnswerNotFound means no candidate evidence existed at all.
	AnswerNotFound AnswerStatus = "NOT_FOUND"
	// AnswerNoAnswer means candidates existed but none had usable text.
	AnswerNoAnswer AnswerStatus = "NO_ANSWER"
	// AnswerError means an unexpected failure was caught by the orchestrator.
	AnswerError AnswerStatus = "ERROR"
)

// AnswerResult is the single value the answer pipeline returns. Exactly one
// of the four statuses is set; Answer/Route/Sources are only meaningful for
// SUCCESS and Message only for the other three.
type AnswerResult struct {
	Status  AnswerStatus      `json:"status"`
	Answer  string            `json:"answer,omitempty"`
	Route   Route             `json:"route,omitempty"`
	Sources []SimilarDocument `json:"sources,omitempty"`
	Message string            `json:"message,omitempty"`
}

// AnswerSuccessResult builds a SUCCESS outcome.
func AnswerSuccessResult(answer string, route Route, sources []SimilarDocument) AnswerResult {
	if sources == nil {
		sources = []SimilarDocument{}
	}
	return AnswerResult{Status: AnswerSuccess, Answer: answer, Route: route, Sources: sources}
}

// AnswerNotFoundResult builds a NOT_FOUND outcome.
func AnswerNotFoundResult(message string) AnswerResult {
	return AnswerResult{Status: AnswerNotFound, Message: message, Sources: []SimilarDocument{}}
}

// AnswerNoAnswerResult builds a NO_ANSWER outcome.
func AnswerNoAnswerResult(message string) AnswerResult {
	return AnswerResult{Status: AnswerNoAnswer, Message: message, Sources: []SimilarDocument{}}
}

// AnswerErrorResult builds an ERROR outcome.
func AnswerErrorResult(message string) AnswerResult {
	return AnswerResult{Status: AnswerError, Message: message, Sources: []SimilarDocument{}}
}

// IsSuccessful reports whether the result carries an answer.
func (r AnswerResult) IsSuccessful() bool {
	return r.Status == AnswerSuccess
}
