package request

type SendEmailRequest struct {
	Type string         `json:"type" binding:"required"`
	Data map[string]any `json:"data" binding:"required"`
}
