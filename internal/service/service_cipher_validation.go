package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-caesar-cipher/internal/validators"
	"github.com/MKhiriev/go-caesar-cipher/models"
)

type CipherValidationService struct {
	inner     CipherService
	validator validators.Validator
}

func NewCipherValidationService() CipherServiceWrapper {
	return &CipherValidationService{
		validator: validators.NewCipherRequestValidator(),
	}
}

func (v *CipherValidationService) Encrypt(ctx context.Context, req models.CipherRequest) (models.CipherResult, error) {
	if err := v.validator.Validate(ctx, req, validators.FieldText, validators.FieldShift); err != nil {
		return models.CipherResult{}, fmt.Errorf("error during encrypt request validation: %w", err)
	}

	return v.inner.Encrypt(ctx, req)
}

func (v *CipherValidationService) Decrypt(ctx context.Context, req models.CipherRequest) (models.CipherResult, error) {
	if err := v.validator.Validate(ctx, req, validators.FieldText, validators.FieldShift); err != nil {
		return models.CipherResult{}, fmt.Errorf("error during decrypt request validation: %w", err)
	}

	return v.inner.Decrypt(ctx, req)
}

func (v *CipherValidationService) Analyze(ctx context.Context, req models.CipherRequest) (models.TextStatistics, error) {
	if err := v.validator.Validate(ctx, req, validators.FieldText); err != nil {
		return models.TextStatistics{}, fmt.Errorf("error during analyze request validation: %w", err)
	}

	return v.inner.Analyze(ctx, req)
}

func (v *CipherValidationService) BruteForce(ctx context.Context, req models.CipherRequest) (models.BruteForceResult, error) {
	if err := v.validator.Validate(ctx, req, validators.FieldText); err != nil {
		return models.BruteForceResult{}, fmt.Errorf("error during brute force request validation: %w", err)
	}

	return v.inner.BruteForce(ctx, req)
}

func (v *CipherValidationService) Wrap(wrapper CipherService) CipherService {
	v.inner = wrapper
	return v
}
