package domain

// Client is a customer record. It exclusively owns its vehicles: deleting a
// client deletes them (ON DELETE CASCADE on veiculos.cliente_id). The optional
// UserID is a loose association with no cascade.
type Client struct {
	ID       int64     `json:"id"`
	Name     string    `json:"nome"`
	TaxID    string    `json:"cpfOuCnpj"`
	Phone    string    `json:"telefone"`
	UserID   *int64    `json:"usuarioId,omitempty"`
	Vehicles []Vehicle `json:"veiculos"`
}
