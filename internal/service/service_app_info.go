package service

import (
	"context"

	"github.com/MKhiriev/go-caesar-cipher/internal/cipher"
	"github.com/MKhiriev/go-caesar-cipher/internal/config"
	"github.com/MKhiriev/go-caesar-cipher/internal/logger"
	"github.com/MKhiriev/go-caesar-cipher/models"
)

// Route paths advertised on GET /.
const (
	EncryptPath    = "/api/encrypt"
	DecryptPath    = "/api/decrypt"
	AnalyzePath    = "/api/analyze"
	BruteForcePath = "/api/brute-force"
)

type appInfoService struct {
	appName    string
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appName:    cfg.Name,
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.ServiceInfo {
	logger.FromContextOr(ctx, s.logger).Debug().Str("version", s.appVersion).Msg("app info requested")

	return models.ServiceInfo{
		Message: s.appName,
		Version: s.appVersion,
		Endpoints: map[string]string{
			"encrypt":     EncryptPath,
			"decrypt":     DecryptPath,
			"analyze":     AnalyzePath,
			"brute-force": BruteForcePath,
		},
		Formulas: models.Formulas{
			Encryption: cipher.EncryptionFormula,
			Decryption: cipher.DecryptionFormula,
		},
	}
}
