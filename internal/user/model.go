package user

type Address struct {
	Street string
	City   string
	State  string
	Zip    string
	Phone  string
}

func (a Address) IsZero() bool { return a == Address{} }

type Profile struct {
	ID      string
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Role    string
	Avatar  string
	Address Address
}

type RegisterInput struct {
	Name            string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string
}

type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type PasswordChangeInput struct {
	OldPassword     string `validate:"required"`
	NewPassword     string `validate:"required,min=6"`
	ConfirmPassword string
}

type ResetPasswordInput struct {
	Email       string `validate:"required,email"`
	NewPassword string `validate:"required,min=6"`
}
