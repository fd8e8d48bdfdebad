package client

// DocumentType distinguishes individuals (CPF) from organizations (CNPJ).
type DocumentType string

const (
	TypeCPF     DocumentType = "CPF"
	TypeCNPJ    DocumentType = "CNPJ"
	TypeUnknown DocumentType = "UNKNOWN"
)

// Client is a registered person or organization, keyed by its tax document.
type Client struct {
	Document    string       `json:"document"`
	Type        DocumentType `json:"type"`
	Name        string       `json:"name"`
	FantasyName string       `json:"fantasy_name,omitempty"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Address     string       `json:"address"`
	City        string       `json:"city"`
	UF          string       `json:"uf"`
}
