package clients

// CreateClientRequest carries the client creation payload.
type CreateClientRequest struct {
	Name  *string `json:"name" validate:"required"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}
