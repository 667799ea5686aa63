package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var (
	// ErrMissingCredential - bearer-токен не передан
	ErrMissingCredential = errors.New("missing credential")
	// ErrInvalidIdentityToken - провайдер отклонил токен
	// или в токене нет email.
	ErrInvalidIdentityToken = errors.New("invalid identity token")
)

// IdentityVerifier проверяет bearer-токен внешнего провайдера идентификации
// и возвращает подтвержденный email. Реализации не кэшируют результат.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}

// BearerToken извлекает токен из значения заголовка Authorization
func BearerToken(header string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrMissingCredential
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingCredential
	}
	return token, nil
}

// FirebaseVerifier делегирует проверку Firebase Authentication
type FirebaseVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseVerifier инициализирует Firebase Admin SDK. При пустом
// credentialsFile SDK берет application default credentials.
func NewFirebaseVerifier(ctx context.Context, credentialsFile, projectID string) (*FirebaseVerifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase: init app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: init auth client: %w", err)
	}
	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidIdentityToken, err)
	}
	email, _ := token.Claims["email"].(string)
	if email == "" {
		return "", fmt.Errorf("%w: token has no email claim", ErrInvalidIdentityToken)
	}
	return email, nil
}
