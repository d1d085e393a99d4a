// Package setting stores operator-editable runtime values keyed by code.
package setting

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/midas/internal/validate"
)

var (
	ErrNotFound  = errors.New("setting not found")
	ErrDuplicate = errors.New("setting code already exists")
)

type Setting struct {
	ID          uuid.UUID
	Code        string
	Description string
	Value       string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s *Setting) Validate() error {
	verr := &validate.Error{}

	verr.Text("code", s.Code, 125)
	verr.Text("value", s.Value, 50)

	if utf8.RuneCountInString(s.Description) > 350 {
		verr.Add("description", "Certifique-se de que este campo não tenha mais de 350 caracteres.")
	}

	return verr.Err()
}
