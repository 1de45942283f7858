package dto

type CreateAccountRequest struct {
	Name     string `json:"name"`
	ColorTag string `json:"colorTag,omitempty"`
}
