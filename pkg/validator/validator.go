package validator

import (
	"regexp"
	"strings"
	"unicode"

	playground "github.com/go-playground/validator/v10"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex    = regexp.MustCompile(`^\+?[0-9]{9,15}$`)
	passwordRegex = regexp.MustCompile(`^[a-zA-Z0-9!@#$%^&*()_+\-=[\]{};':"\\|,.<>/?]{6,}$`)
)

// Register installs the custom binding tags used by request DTOs:
// "phone", "person_name" and "password".
func Register(v *playground.Validate) error {
	rules := map[string]playground.Func{
		"phone": func(fl playground.FieldLevel) bool {
			return ValidatePhone(fl.Field().String())
		},
		"person_name": func(fl playground.FieldLevel) bool {
			return ValidateNamePart(fl.Field().String())
		},
		"password": func(fl playground.FieldLevel) bool {
			return ValidatePassword(fl.Field().String())
		},
	}

	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(cleanPhone(phone))
}

func ValidatePassword(password string) bool {
	if len(password) < 6 {
		return false
	}

	return passwordRegex.MatchString(password)
}

func ValidateNamePart(name string) bool {
	if len(name) < 2 {
		return false
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && r != '-' && r != ' ' && r != '\'' {
			return false
		}
	}

	return true
}

// FormatPhone normalizes local Ethiopian numbers to E.164: "0911..." and
// "911..." both become "+251911...".
func FormatPhone(phone string) string {
	p := cleanPhone(phone)

	switch {
	case strings.HasPrefix(p, "+"):
		return p
	case strings.HasPrefix(p, "251"):
		return "+" + p
	case strings.HasPrefix(p, "0"):
		return "+251" + p[1:]
	default:
		return "+251" + p
	}
}

func FormatName(name string) string {
	if len(name) == 0 {
		return ""
	}

	parts := strings.Fields(name)
	for i, part := range parts {
		if strings.Contains(part, "-") {
			subparts := strings.Split(part, "-")
			for j, subpart := range subparts {
				if len(subpart) > 0 {
					subparts[j] = strings.ToUpper(subpart[:1]) + strings.ToLower(subpart[1:])
				}
			}
			parts[i] = strings.Join(subparts, "-")
		} else if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		}
	}

	return strings.Join(parts, " ")
}

func SanitizeString(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '<' || r == '>' || r == '&' || r == '"' || r == '\'' || r == '`' || r == ';' {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}

func cleanPhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '+' {
			return r
		}
		return -1
	}, phone)
}
