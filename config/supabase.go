package config

import (
	"fmt"

	"github.com/google/uuid"
	supa "github.com/supabase-community/supabase-go"
)

var SupabaseClient *supa.Client

// InitSupabase initializes the shared Supabase client with the service key.
// Row-level security still applies to user-scoped queries because every
// handler filters by the authenticated user's id.
func InitSupabase(url, key string) error {
	client, err := supa.NewClient(url, key, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize Supabase client: %w", err)
	}
	SupabaseClient = client
	return nil
}

// SupabaseAuth resolves session tokens against Supabase's auth service. It
// satisfies the middleware's UserResolver.
type SupabaseAuth struct{}

// ResolveUser returns the user id for a session access token, or an error
// when the token is missing, expired, or unknown.
func (SupabaseAuth) ResolveUser(token string) (uuid.UUID, error) {
	user, err := SupabaseClient.Auth.WithToken(token).GetUser()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	return user.ID, nil
}

// SignOut terminates the Supabase session behind the given access token.
func SignOut(token string) error {
	return SupabaseClient.Auth.WithToken(token).Logout()
}
