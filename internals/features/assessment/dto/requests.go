package dto

// SetCandidateRequest is the name-entry form body.
type SetCandidateRequest struct {
	CandidateName string `form:"candidate_name" validate:"required"`
}

// SubmitPartRequest is the answer form body. Content may be empty:
// an empty submission still advances the attempt.
type SubmitPartRequest struct {
	Content string `form:"content"`
}
