package response_models

type CrisisCheckResponse struct {
	IsCrisis bool   `json:"isCrisis"`
	Message  string `json:"message"`
}

type MindcareChatResponse struct {
	Message string `json:"message"`
}
