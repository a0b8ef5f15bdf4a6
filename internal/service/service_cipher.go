package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-caesar-cipher/internal/cipher"
	"github.com/MKhiriev/go-caesar-cipher/internal/logger"
	"github.com/MKhiriev/go-caesar-cipher/models"
)

type cipherService struct {
	logger *logger.Logger
}

func NewCipherService(logger *logger.Logger) CipherService {
	return &cipherService{
		logger: logger,
	}
}

func (s *cipherService) Encrypt(ctx context.Context, req models.CipherRequest) (models.CipherResult, error) {
	shift, err := shiftFromRequest(req)
	if err != nil {
		return models.CipherResult{}, err
	}

	encrypted, err := cipher.Encrypt(req.Text, shift)
	if err != nil {
		return models.CipherResult{}, fmt.Errorf("error encrypting text: %w", err)
	}

	logger.FromContextOr(ctx, s.logger).Debug().Int("shift", shift).Int("length", len(req.Text)).Msg("text encrypted")

	return models.CipherResult{
		OriginalText:    req.Text,
		TransformedText: encrypted,
		Shift:           shift,
		Stats:           cipher.Analyze(req.Text),
	}, nil
}

func (s *cipherService) Decrypt(ctx context.Context, req models.CipherRequest) (models.CipherResult, error) {
	shift, err := shiftFromRequest(req)
	if err != nil {
		return models.CipherResult{}, err
	}

	decrypted, err := cipher.Decrypt(req.Text, shift)
	if err != nil {
		return models.CipherResult{}, fmt.Errorf("error decrypting text: %w", err)
	}

	logger.FromContextOr(ctx, s.logger).Debug().Int("shift", shift).Int("length", len(req.Text)).Msg("text decrypted")

	return models.CipherResult{
		OriginalText:    req.Text,
		TransformedText: decrypted,
		Shift:           shift,
		Stats:           cipher.Analyze(req.Text),
	}, nil
}

func (s *cipherService) Analyze(ctx context.Context, req models.CipherRequest) (models.TextStatistics, error) {
	return cipher.Analyze(req.Text), nil
}

func (s *cipherService) BruteForce(ctx context.Context, req models.CipherRequest) (models.BruteForceResult, error) {
	return models.BruteForceResult{
		OriginalText:     req.Text,
		AllPossibilities: cipher.BruteForce(req.Text),
	}, nil
}

// shiftFromRequest rejects shifts that are not integer literals; the range
// is left to the engine.
func shiftFromRequest(req models.CipherRequest) (int, error) {
	shift, ok := req.ShiftValue()
	if !ok {
		return 0, fmt.Errorf("%w: shift %q is not an integer", cipher.ErrInvalidArgument, string(req.Shift))
	}
	return shift, nil
}
