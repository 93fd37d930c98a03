package form

import (
	"strings"

	"github.com/abhisek/shindan/internal/store"
)

// Inquiry field names.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldMessage = "message"
)

// Inquiry is a consultation request as entered by the user.
type Inquiry struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Fields returns the form fields for the inquiry, in display order.
func (in Inquiry) Fields() []Field {
	return []Field{
		{Name: FieldName, Label: "お名前", Value: in.Name, Required: true},
		{Name: FieldEmail, Label: "メールアドレス", Value: in.Email, Required: true, Check: CheckEmail},
		{Name: FieldPhone, Label: "電話番号", Value: in.Phone, Check: CheckPhone},
		{Name: FieldMessage, Label: "ご相談内容", Value: in.Message},
	}
}

// Validate checks the inquiry's fields.
func (in Inquiry) Validate() Errors {
	return Validate(in.Fields())
}

// Data returns the trimmed values for storage.
func (in Inquiry) Data() store.InquiryData {
	return store.InquiryData{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Message: strings.TrimSpace(in.Message),
	}
}
