package validator

import (
	"testing"

	playground "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "+251911223344", FormatPhone("0911 22 33 44"))
	assert.Equal(t, "+251911223344", FormatPhone("911223344"))
	assert.Equal(t, "+251911223344", FormatPhone("251911223344"))
	assert.Equal(t, "+14155550100", FormatPhone("+1 (415) 555-0100"))
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidateEmail("abebe@example.com"))
	assert.False(t, ValidateEmail("abebe@"))

	assert.True(t, ValidatePhone("+251911223344"))
	assert.False(t, ValidatePhone("12345"))

	assert.True(t, ValidatePassword("secret1"))
	assert.False(t, ValidatePassword("short"))

	assert.True(t, ValidateNamePart("Abebe"))
	assert.False(t, ValidateNamePart("A"))
	assert.False(t, ValidateNamePart("R2D2"))
}

func TestFormatNameAndSanitize(t *testing.T) {
	assert.Equal(t, "Mary-Jane Watson", FormatName("mary-jane WATSON"))
	assert.Equal(t, "alert(1)", SanitizeString(" <alert(1)> "))
}

func TestRegister(t *testing.T) {
	v := playground.New()
	require.NoError(t, Register(v))

	type form struct {
		Name  string `validate:"person_name"`
		Phone string `validate:"omitempty,phone"`
	}

	assert.NoError(t, v.Struct(form{Name: "Abebe", Phone: "+251911223344"}))
	assert.NoError(t, v.Struct(form{Name: "Abebe"}))
	assert.Error(t, v.Struct(form{Name: "Abebe", Phone: "abc"}))
	assert.Error(t, v.Struct(form{Name: "1"}))
}
