package payment

import (
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

// TxRef correlates a local payment attempt with the gateway transaction.
// It is minted locally, never by the gateway.
type TxRef struct {
	value string
}

func NewTxRef() TxRef {
	return TxRef{value: uuid.NewString()}
}

func ParseTxRef(s string) (TxRef, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > MaxTxRefLength {
		return TxRef{}, ErrInvalidTxRef
	}
	return TxRef{value: s}, nil
}

func (t TxRef) String() string { return t.value }
func (t TxRef) IsZero() bool   { return t.value == "" }

const MaxTxRefLength = 100

// Payer is the contact the gateway sends the checkout receipt to.
type Payer struct {
	email     string
	firstName string
	lastName  string
}

func NewPayer(email, firstName, lastName string) (Payer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return Payer{}, ErrInvalidEmail
	}
	return Payer{
		email:     email,
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
	}, nil
}

func (p Payer) Email() string     { return p.email }
func (p Payer) FirstName() string { return p.firstName }
func (p Payer) LastName() string  { return p.lastName }
