package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

var ErrUnauthenticated = errors.New("missing or unknown bearer token")

type userKey struct{}

// TokenVerifier resolves bearer tokens to user ids from a fixed table.
type TokenVerifier struct {
	tokens map[string]uuid.UUID
}

func NewTokenVerifier(tokens map[string]uuid.UUID) *TokenVerifier {
	copied := make(map[string]uuid.UUID, len(tokens))
	for token, user := range tokens {
		copied[token] = user
	}
	return &TokenVerifier{tokens: copied}
}

// Verify parses an Authorization header value.
func (v *TokenVerifier) Verify(header string) (uuid.UUID, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return uuid.Nil, ErrUnauthenticated
	}
	user, ok := v.tokens[strings.TrimSpace(token)]
	if !ok {
		return uuid.Nil, ErrUnauthenticated
	}
	return user, nil
}

// Middleware rejects requests without a known bearer token and stores the
// authenticated user in the request context.
func Middleware(api huma.API, verifier *TokenVerifier, log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		user, err := verifier.Verify(ctx.Header("Authorization"))
		if err != nil {
			log.WithError(err).WithField("path", ctx.URL().Path).Debug("Auth.Middleware.rejected")
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "unauthorized")
			return
		}

		if logData := logging.GetLogData(ctx.Context()); logData != nil {
			logData.AddData("userID", user.String())
		}
		next(huma.WithValue(ctx, userKey{}, user))
	}
}

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user uuid.UUID) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the authenticated user.
func UserFromContext(ctx context.Context) (uuid.UUID, error) {
	user, ok := ctx.Value(userKey{}).(uuid.UUID)
	if !ok || user == uuid.Nil {
		return uuid.Nil, ErrUnauthenticated
	}
	return user, nil
}
