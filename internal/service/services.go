package service

import (
	"github.com/MKhiriev/go-caesar-cipher/internal/config"
	"github.com/MKhiriev/go-caesar-cipher/internal/logger"
)

type Services struct {
	CipherService  CipherService
	AppInfoService AppInfoService
}

func NewServices(cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	cipherService := NewCipherValidationService().Wrap(NewCipherService(logger))

	return &Services{
		CipherService:  cipherService,
		AppInfoService: appInfoService,
	}, nil
}
