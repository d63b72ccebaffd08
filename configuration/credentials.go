package configuration

import (
	"context"

	"github.com/polyglotdb/coordinator/encryption"
	"github.com/polyglotdb/coordinator/keyring"
)

const keyringServicePrefix = "polyglotdb/coordinator/adapter/"

// StoreAdapterCredentials saves one store kind's endpoint configuration in the operating
// system's keyring service, so `adapter.<kind>.auth` never has to sit in a plain dotenv file.
func StoreAdapterCredentials(ctx context.Context, kind string, cfg *AdapterEndpointConfiguration) error {
	return keyring.Store(ctx, keyringServicePrefix+kind, cfg)
}

// FetchAdapterCredentials overlays keyring-held values onto cfg; fields absent from the keyring
// keep whatever the configuration loader already put there.
func FetchAdapterCredentials(ctx context.Context, kind string, cfg *AdapterEndpointConfiguration) error {
	return keyring.Fetch(ctx, keyringServicePrefix+kind, cfg)
}

// ClearAdapterCredentials removes a store kind's keyring entries.
func ClearAdapterCredentials(ctx context.Context, kind string) error {
	return keyring.Clear(ctx, keyringServicePrefix+kind)
}

// SealAuth encrypts auth material to a recipient public key (NaCl sealed box), for deployments
// that keep `adapter.<kind>.auth` in shared configuration rather than a keyring. The result is
// base64 and passes AdapterEndpointConfiguration validation as-is.
func SealAuth(base64EncodedPublicKey, auth string) (string, error) {
	return encryption.EncryptWithPublicKey(base64EncodedPublicKey, auth)
}

// OpenAuth decrypts auth material produced by SealAuth.
func OpenAuth(base64EncodedPublicKey, base64EncodedPrivateKey, sealedAuth string) (string, error) {
	return encryption.DecryptWithKeyPair(base64EncodedPublicKey, base64EncodedPrivateKey, sealedAuth)
}
