package cookie

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
)

const flashPrefix = "flash_"

// SetEncrypted writes an AES-GCM sealed cookie.
func (m *Manager) SetEncrypted(w http.ResponseWriter, name, value string, maxAge int) error {
	if m.encKey == nil {
		return ErrNoSecret
	}
	aead, err := m.aead()
	if err != nil {
		return err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return errors.Join(ErrEncode, err)
	}
	sealed := aead.Seal(nonce, nonce, []byte(value), []byte(name))
	m.Set(w, name, base64.RawURLEncoding.EncodeToString(sealed), maxAge)
	return nil
}

// GetEncrypted opens an AES-GCM sealed cookie.
func (m *Manager) GetEncrypted(r *http.Request, name string) (string, error) {
	if m.encKey == nil {
		return "", ErrNoSecret
	}
	raw, err := m.Get(r, name)
	if err != nil {
		return "", err
	}
	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return "", ErrDecrypt
	}
	aead, err := m.aead()
	if err != nil {
		return "", err
	}
	if len(data) < aead.NonceSize() {
		return "", ErrDecrypt
	}
	nonce, sealed := data[:aead.NonceSize()], data[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, sealed, []byte(name))
	if err != nil {
		return "", ErrDecrypt
	}
	return string(plain), nil
}

// SetFlash stores value as JSON in an encrypted cookie living maxAge seconds.
func (m *Manager) SetFlash(w http.ResponseWriter, key string, value any, maxAge int) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Join(ErrEncode, err)
	}
	return m.SetEncrypted(w, flashPrefix+key, string(data), maxAge)
}

// Flash decodes a flash cookie into dest and expires it.
// A cookie that fails to decrypt is expired too.
func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, key string, dest any) error {
	name := flashPrefix + key
	raw, err := m.GetEncrypted(r, name)
	if err != nil {
		if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrNoSecret) {
			m.Delete(w, name)
		}
		return err
	}
	m.Delete(w, name)
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return errors.Join(ErrDecrypt, err)
	}
	return nil
}

func (m *Manager) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(m.encKey)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
