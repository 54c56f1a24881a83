package service

import "context"

type credentialKey struct{}

// CredentialSource provides the bearer credential attached to backend requests.
type CredentialSource interface {
	Credential(ctx context.Context) string
}

// WithCredential pins the bearer used for backend calls made with ctx,
// overriding the one held by the session.
func WithCredential(ctx context.Context, credential string) context.Context {
	return context.WithValue(ctx, credentialKey{}, credential)
}

// CredentialFromContext returns the credential pinned by WithCredential.
func CredentialFromContext(ctx context.Context) (string, bool) {
	credential, ok := ctx.Value(credentialKey{}).(string)

	return credential, ok
}
