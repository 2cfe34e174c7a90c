package response_models

import "oncocare/internal/models/domain_models"

type LoginResponse struct {
	Token string             `json:"token"`
	User  domain_models.User `json:"user"`
}
