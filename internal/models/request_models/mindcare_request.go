package request_models

type MindcareRequest struct {
	Message string `json:"message"`
}
