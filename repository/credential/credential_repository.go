package credential

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/jmoiron/sqlx"
	"github.com/marketsync/seller-hub/model"
	"golang.org/x/crypto/pbkdf2"
)

// CredentialRepository is the credential store consumed by the sync
// pipeline. API keys are encrypted at rest with AES-256-GCM; the key is
// derived from the configured master key.
type CredentialRepository interface {
	Get(ctx context.Context, sellerID uint64, marketplace string) (*model.Credential, error)
	ListBySeller(ctx context.Context, sellerID uint64) ([]model.Credential, error)
	ListSellers(ctx context.Context) ([]uint64, error)
	Upsert(ctx context.Context, cred *model.Credential) error
}

type SQL struct {
	conn *sqlx.DB
	key  []byte
}

const keySalt = "seller-hub-credential"

func NewCredentialRepository(conn *sqlx.DB, masterKey string) CredentialRepository {
	return &SQL{
		conn: conn,
		key:  pbkdf2.Key([]byte(masterKey), []byte(keySalt), 4096, 32, sha256.New),
	}
}

func (r *SQL) Get(ctx context.Context, sellerID uint64, marketplace string) (*model.Credential, error) {
	var cred model.Credential
	q := "SELECT seller_id, marketplace, client_id, api_key FROM credential WHERE seller_id = ? AND marketplace = ?"
	if err := r.conn.GetContext(ctx, &cred, q, sellerID, marketplace); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	apiKey, err := r.decrypt(cred.APIKey)
	if err != nil {
		return nil, err
	}
	cred.APIKey = apiKey
	return &cred, nil
}

func (r *SQL) ListBySeller(ctx context.Context, sellerID uint64) ([]model.Credential, error) {
	creds := make([]model.Credential, 0)
	q := "SELECT seller_id, marketplace, client_id, api_key FROM credential WHERE seller_id = ?"
	if err := r.conn.SelectContext(ctx, &creds, q, sellerID); err != nil {
		return nil, err
	}
	for i := range creds {
		apiKey, err := r.decrypt(creds[i].APIKey)
		if err != nil {
			return nil, err
		}
		creds[i].APIKey = apiKey
	}
	return creds, nil
}

func (r *SQL) ListSellers(ctx context.Context) ([]uint64, error) {
	sellers := make([]uint64, 0)
	q := "SELECT DISTINCT seller_id FROM credential ORDER BY seller_id"
	if err := r.conn.SelectContext(ctx, &sellers, q); err != nil {
		return nil, err
	}
	return sellers, nil
}

func (r *SQL) Upsert(ctx context.Context, cred *model.Credential) error {
	encrypted, err := r.encrypt(cred.APIKey)
	if err != nil {
		return err
	}
	q := "INSERT INTO credential (seller_id, marketplace, client_id, api_key) VALUES (?, ?, ?, ?) ON DUPLICATE KEY UPDATE client_id = VALUES(client_id), api_key = VALUES(api_key)"
	_, err = r.conn.ExecContext(ctx, q, cred.SellerID, cred.Marketplace, cred.ClientID, encrypted)
	return err
}

func (r *SQL) encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(r.key)
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (r *SQL) decrypt(encoded string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	block, err := aes.NewCipher(r.key)
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}
	if len(sealed) < gcm.NonceSize() {
		return "", fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
