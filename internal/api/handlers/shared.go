package handlers

import (
	"net/http"

	"github.com/1ShivamPandey/apnafinance/internal/api/response"
)

// FailureResponse is the error envelope of the portfolio endpoints:
// {"success": false, "error": "..."}.
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// respondFailure sends the portfolio API error envelope with the given
// status code.
func respondFailure(w http.ResponseWriter, status int, message string) {
	response.RespondJSON(w, status, FailureResponse{
		Success: false,
		Error:   message,
	})
}
