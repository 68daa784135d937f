package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/Mekas12/AJHB/internal/config"
)

// SecurityContext holds the two process keys: the JWT signing secret and the
// AES cipher key. It is built exactly once in the composition root and passed
// by injection — never read from package globals.
type SecurityContext struct {
	JWTSecret []byte
	CipherKey []byte
}

// NewSecurityContext resolves both keys from configuration.
//
// JWT_SECRET empty means a random per-process secret: tokens stop verifying
// across restarts, which is acceptable for development only, so a warning is
// logged. The cipher key is always durable: AES_KEY (hex) wins, otherwise the
// key is loaded from KEY_PATH, generated and persisted there on first boot.
func NewSecurityContext(cfg *config.Config) (*SecurityContext, error) {
	secret := []byte(cfg.JWTSecret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generar secreto JWT: %w", err)
		}
		log.Warn().Msg("JWT_SECRET no configurado — los tokens no sobreviven reinicios")
	}

	key, err := resolveCipherKey(cfg)
	if err != nil {
		return nil, err
	}
	return &SecurityContext{JWTSecret: secret, CipherKey: key}, nil
}

func resolveCipherKey(cfg *config.Config) ([]byte, error) {
	if cfg.AESKeyHex != "" {
		key, err := hex.DecodeString(cfg.AESKeyHex)
		if err != nil {
			return nil, fmt.Errorf("AES_KEY invalida: %w", err)
		}
		if len(key) != 32 {
			return nil, fmt.Errorf("AES_KEY debe tener 64 caracteres hex, tiene %d", len(cfg.AESKeyHex))
		}
		return key, nil
	}

	raw, err := os.ReadFile(cfg.KeyPath)
	if err == nil {
		key, derr := hex.DecodeString(string(raw))
		if derr != nil || len(key) != 32 {
			return nil, fmt.Errorf("archivo de clave %s corrupto", cfg.KeyPath)
		}
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("leer archivo de clave: %w", err)
	}

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generar clave de cifrado: %w", err)
	}
	if err := os.WriteFile(cfg.KeyPath, []byte(hex.EncodeToString(key)), 0o600); err != nil {
		return nil, fmt.Errorf("persistir clave de cifrado: %w", err)
	}
	log.Info().Str("path", cfg.KeyPath).Msg("clave de cifrado generada y persistida")
	return key, nil
}
