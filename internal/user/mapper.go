package user

import (
	"phonekart/internal/api"
	"phonekart/internal/session"
)

func mapProfile(p api.Profile) Profile {
	out := Profile{
		ID:     p.ID,
		Name:   p.Name,
		Email:  p.Email,
		Role:   p.Role,
		Avatar: p.Avatar,
	}
	if p.Address != nil {
		out.Address = Address{
			Street: p.Address.Street,
			City:   p.Address.City,
			State:  p.Address.State,
			Zip:    p.Address.Zip,
			Phone:  p.Address.Phone,
		}
	}
	return out
}

func mapProfileToAPI(p Profile) api.Profile {
	out := api.Profile{
		ID:     p.ID,
		Name:   p.Name,
		Email:  p.Email,
		Role:   p.Role,
		Avatar: p.Avatar,
	}
	if !p.Address.IsZero() {
		out.Address = &api.Address{
			Street: p.Address.Street,
			City:   p.Address.City,
			State:  p.Address.State,
			Zip:    p.Address.Zip,
			Phone:  p.Address.Phone,
		}
	}
	return out
}

func mapSession(a api.AuthResponse) session.Session {
	return session.Session{
		ID:     a.ID,
		Name:   a.Name,
		Email:  a.Email,
		Role:   a.Role,
		Token:  a.Token,
		Avatar: a.Avatar,
	}
}
