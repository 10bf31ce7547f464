package service

import "context"

type SignUpInput struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Password1 string `json:"password1" validate:"required,min=8,max=72"`
	Password2 string `json:"password2" validate:"required,eqfield=Password1"`
}

type Registration struct {
	profiles *UserProfileService
}

func NewRegistration(profiles *UserProfileService) *Registration {
	return &Registration{profiles: profiles}
}

// SignUp creates an account from a registration form. Mismatched passwords
// are a validation error; an already registered email is a conflict.
func (r *Registration) SignUp(ctx context.Context, in SignUpInput) (int64, error) {
	if err := validateStruct(in); err != nil {
		return 0, err
	}

	return r.profiles.Create(ctx, NewProfile{
		Email:    in.Email,
		Password: in.Password1,
	})
}
