package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

func TestVerify(t *testing.T) {
	user := uuid.Must(uuid.NewV4())
	verifier := NewTokenVerifier(map[string]uuid.UUID{"secret": user})

	got, err := verifier.Verify("Bearer secret")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	got, err = verifier.Verify("bearer   secret")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	for _, header := range []string{"", "secret", "Basic secret", "Bearer other"} {
		_, err := verifier.Verify(header)
		assert.ErrorIs(t, err, ErrUnauthenticated, header)
	}
}

func TestUserFromContext(t *testing.T) {
	_, err := UserFromContext(context.Background())
	assert.ErrorIs(t, err, ErrUnauthenticated)

	user := uuid.Must(uuid.NewV4())
	got, err := UserFromContext(WithUser(context.Background(), user))
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

type whoAmIOutput struct {
	Body struct {
		User string `json:"user"`
	}
}

func newAuthTestAPI(t *testing.T, user uuid.UUID) humatest.TestAPI {
	t.Helper()
	logger, err := logging.SetupLogging("info")
	require.NoError(t, err)

	_, api := humatest.New(t)
	api.UseMiddleware(Middleware(api, NewTokenVerifier(map[string]uuid.UUID{"secret": user}), logger))
	huma.Register(api, huma.Operation{
		OperationID: "who-am-i",
		Method:      http.MethodGet,
		Path:        "/whoami",
	}, func(ctx context.Context, _ *struct{}) (*whoAmIOutput, error) {
		user, err := UserFromContext(ctx)
		if err != nil {
			return nil, huma.Error401Unauthorized("unauthorized", err)
		}
		resp := &whoAmIOutput{}
		resp.Body.User = user.String()
		return resp, nil
	})
	return api
}

func TestMiddleware_Authorized(t *testing.T) {
	user := uuid.Must(uuid.NewV4())

	resp := newAuthTestAPI(t, user).Get("/whoami", "Authorization: Bearer secret")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), user.String())
}

func TestMiddleware_Rejected(t *testing.T) {
	api := newAuthTestAPI(t, uuid.Must(uuid.NewV4()))

	assert.Equal(t, http.StatusUnauthorized, api.Get("/whoami").Code)
	assert.Equal(t, http.StatusUnauthorized, api.Get("/whoami", "Authorization: Bearer wrong").Code)
}
