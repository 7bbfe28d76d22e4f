package domain

type Token struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
	User        *User  `json:"user"`
}

type RegisterRequest struct {
	FirstName   string `json:"firstName" binding:"required,person_name"`
	MiddleName  string `json:"middleName" binding:"required,person_name"`
	LastName    string `json:"lastName" binding:"required,person_name"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,phone"`
	Password    string `json:"password" binding:"required,password"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Principal is the identity the auth middleware attaches to a request.
type Principal struct {
	UserID string
	Role   UserRole
}
