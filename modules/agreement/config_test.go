package agreement_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namanchhaparia06/agreement/modules/agreement"
	"github.com/namanchhaparia06/agreement/pkg/config"
	"github.com/namanchhaparia06/agreement/pkg/validator"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cfg        agreement.Config
		wantFields []string
	}{
		{
			name: "valid",
			cfg:  agreement.Config{ServerURL: "http://localhost:8000", MaxUploadSize: 1},
		},
		{
			name:       "missing server url",
			cfg:        agreement.Config{MaxUploadSize: 1},
			wantFields: []string{"SERVER_URL"},
		},
		{
			name:       "bad scheme",
			cfg:        agreement.Config{ServerURL: "ftp://files.example.com", MaxUploadSize: 1},
			wantFields: []string{"SERVER_URL"},
		},
		{
			name:       "negative timeout and zero size",
			cfg:        agreement.Config{ServerURL: "https://translate.example.com", UploadTimeout: -time.Second},
			wantFields: []string{"UPLOAD_TIMEOUT", "MAX_UPLOAD_SIZE"},
		},
		{
			name:       "negative rate limit",
			cfg:        agreement.Config{ServerURL: "http://localhost:8000", MaxUploadSize: 1, UploadRateLimit: -1},
			wantFields: []string{"UPLOAD_RATE_LIMIT"},
		},
		{
			name:       "rate limit without interval",
			cfg:        agreement.Config{ServerURL: "http://localhost:8000", MaxUploadSize: 1, UploadRateLimit: 5},
			wantFields: []string{"UPLOAD_RATE_INTERVAL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.Validate()
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			verrs := validator.ExtractValidationErrors(err)
			require.NotNil(t, verrs)
			assert.Equal(t, tt.wantFields, verrs.Fields())
		})
	}
}

func TestConfig_Load(t *testing.T) {
	t.Setenv("SERVER_URL", "http://translate.internal:8000")
	t.Setenv("UPLOAD_TIMEOUT", "45s")
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	var cfg agreement.Config
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "http://translate.internal:8000", cfg.ServerURL)
	assert.Equal(t, 45*time.Second, cfg.UploadTimeout)
	assert.Equal(t, int64(32<<20), cfg.MaxUploadSize)
	assert.Equal(t, 10, cfg.UploadRateLimit)
	assert.Equal(t, time.Minute, cfg.UploadRateInterval)
	require.NoError(t, cfg.Validate())

	client, err := cfg.NewClient(nil)
	require.NoError(t, err)
	assert.Equal(t, "http://translate.internal:8000/upload", client.Endpoint())
}
