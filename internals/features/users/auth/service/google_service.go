package service

import (
	"errors"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"

	"schoolku_backend/internals/configs"
)

// GoogleProfile: identitas minimal hasil verifikasi id_token.
type GoogleProfile struct {
	GoogleID string
	Email    string
	Name     string
}

// VerifyGoogleIDToken memverifikasi id_token terhadap GOOGLE_CLIENT_ID.
func VerifyGoogleIDToken(idToken string) (*GoogleProfile, error) {
	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return nil, errors.New("id_token kosong")
	}
	if configs.GoogleClientID == "" {
		return nil, errors.New("GOOGLE_CLIENT_ID belum diset")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, err
	}

	claims, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, err
	}
	if claims.Sub == "" || claims.Email == "" {
		return nil, errors.New("id_token tidak memuat identitas")
	}
	return &GoogleProfile{
		GoogleID: claims.Sub,
		Email:    claims.Email,
		Name:     claims.Name,
	}, nil
}
