package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createApplicantRequest struct {
	Email      string   `json:"email"      validate:"required,email"`
	Name       string   `json:"name"       validate:"required"`
	Department string   `json:"department" validate:"required"`
	Role       string   `json:"role"       validate:"required"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
	Skills     []string `json:"skills"`
	ResumeURL  string   `json:"resume_url"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// changes.

type rejectionResponse struct {
	Reason string    `json:"reason"`
	Stage  string    `json:"stage"`
	At     time.Time `json:"at"`
}

type applicantResponse struct {
	ID         string             `json:"id"`
	Email      string             `json:"email"`
	Name       string             `json:"name"`
	Department string             `json:"department"`
	Role       string             `json:"role"`
	Experience string             `json:"experience,omitempty"`
	Education  string             `json:"education,omitempty"`
	Skills     []string           `json:"skills,omitempty"`
	ResumeURL  string             `json:"resume_url,omitempty"`
	State      string             `json:"state"`
	Rejection  *rejectionResponse `json:"rejection,omitempty"`
	EmployeeID string             `json:"employee_id,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listApplicantsResponse struct {
	Data       []applicantResponse `json:"data"`
	Pagination paginationResponse  `json:"pagination"`
}
