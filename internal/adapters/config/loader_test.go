package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bump/internal/adapters/config"
	"go.trai.ch/bump/internal/core/domain"
	"go.trai.ch/bump/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DefaultsWhenAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	cfg, err := config.NewLoader(mockLogger).Load(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_FromPackagesDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(1)

	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, `
manifest: manifest.json
dependencyFields: [dependencies, devDependencies, dependencies]
indent: "    "
`)

	cfg, err := config.NewLoader(mockLogger).Load(dir, "")
	require.NoError(t, err)

	assert.Equal(t, "manifest.json", cfg.ManifestFile)
	assert.Equal(t, []string{"dependencies", "devDependencies"}, cfg.DependencyFields)
	assert.Equal(t, "    ", cfg.Indent)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, "dependencyFields: [peerDependencies]\n")

	cfg, err := config.NewLoader(mockLogger).Load(dir, "")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultManifestFile, cfg.ManifestFile)
	assert.Equal(t, []string{"peerDependencies"}, cfg.DependencyFields)
	assert.Equal(t, domain.DefaultIndent, cfg.Indent)
}

func TestLoad_EmptyFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, "")

	cfg, err := config.NewLoader(mockLogger).Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_ExplicitPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	packagesDir := t.TempDir()
	// The packages folder config must be ignored when a path is given.
	createFile(t, packagesDir, domain.ConfigFileName, "manifest: ignored.json\n")
	explicit := createFile(t, t.TempDir(), "custom.yaml", "manifest: chosen.json\n")

	cfg, err := config.NewLoader(mockLogger).Load(packagesDir, explicit)
	require.NoError(t, err)
	assert.Equal(t, "chosen.json", cfg.ManifestFile)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T, dir string) string
		expectedErr error
		errContains string
	}{
		{
			name: "explicit path missing",
			setup: func(_ *testing.T, dir string) string {
				return filepath.Join(dir, "missing.yaml")
			},
			expectedErr: domain.ErrConfigNotFound,
		},
		{
			name: "invalid yaml",
			setup: func(t *testing.T, dir string) string {
				t.Helper()
				createFile(t, dir, domain.ConfigFileName, "dependencyFields: [unterminated\n")
				return ""
			},
			expectedErr: domain.ErrConfigParseFailed,
		},
		{
			name: "unknown key",
			setup: func(t *testing.T, dir string) string {
				t.Helper()
				createFile(t, dir, domain.ConfigFileName, "manifests: package.json\n")
				return ""
			},
			expectedErr: domain.ErrConfigParseFailed,
		},
		{
			name: "invalid manifest name",
			setup: func(t *testing.T, dir string) string {
				t.Helper()
				createFile(t, dir, domain.ConfigFileName, "manifest: sub/package.json\n")
				return ""
			},
			expectedErr: domain.ErrInvalidConfig,
			errContains: "path separator",
		},
		{
			name: "empty dependency fields",
			setup: func(t *testing.T, dir string) string {
				t.Helper()
				createFile(t, dir, domain.ConfigFileName, "dependencyFields: []\n")
				return ""
			},
			expectedErr: domain.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockLogger := mocks.NewMockLogger(ctrl)

			dir := t.TempDir()
			explicit := tt.setup(t, dir)

			cfg, err := config.NewLoader(mockLogger).Load(dir, explicit)
			require.Error(t, err)
			require.ErrorContains(t, err, tt.expectedErr.Error())
			assert.Nil(t, cfg)

			if tt.errContains != "" {
				zErr, ok := err.(*zerr.Error)
				require.True(t, ok, "expected *zerr.Error, got %T", err)
				assert.Contains(t, zErr.Metadata()["reason"], tt.errContains)
			}
		})
	}
}
