package service

import (
	"context"

	"github.com/MKhiriev/go-caesar-cipher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CipherService performs the cipher operations exposed by the API.
type CipherService interface {
	// Encrypt rotates req.Text forward by req.Shift and reports statistics
	// of the original text.
	Encrypt(ctx context.Context, req models.CipherRequest) (models.CipherResult, error)

	// Decrypt rotates req.Text backward by req.Shift and reports statistics
	// of the original text.
	Decrypt(ctx context.Context, req models.CipherRequest) (models.CipherResult, error)

	// Analyze reports character statistics of req.Text. The shift is ignored.
	Analyze(ctx context.Context, req models.CipherRequest) (models.TextStatistics, error)

	// BruteForce decrypts req.Text with every possible shift. The shift is ignored.
	BruteForce(ctx context.Context, req models.CipherRequest) (models.BruteForceResult, error)
}

// AppInfoService describes the running API.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.ServiceInfo
}

// CipherServiceWrapper defines middleware composition for CipherService.
// Implementations wrap an existing CipherService to add behavior such as
// logging or validating.
type CipherServiceWrapper interface {
	Wrap(CipherService) CipherService // returns a decorated CipherService applying additional behavior
}
