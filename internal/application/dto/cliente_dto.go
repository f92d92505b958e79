package dto

// CreateClienteRequest dados para cadastrar um cliente.
type CreateClienteRequest struct {
	Nome     string `json:"nome"`
	CPF      string `json:"cpf"`
	Telefone string `json:"telefone"`
	Rua      string `json:"rua"`
	Numero   string `json:"numero"`
	Bairro   string `json:"bairro"`
	Estado   string `json:"estado"`
}

// ClienteResponse representação de cliente na API.
type ClienteResponse struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	CPF      string `json:"cpf,omitempty"`
	Telefone string `json:"telefone,omitempty"`
	Rua      string `json:"rua,omitempty"`
	Numero   string `json:"numero,omitempty"`
	Bairro   string `json:"bairro,omitempty"`
	Estado   string `json:"estado,omitempty"`
}
