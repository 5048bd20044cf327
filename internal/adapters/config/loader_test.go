package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mbedconf/internal/adapters/config"
	"go.trai.ch/mbedconf/internal/core/domain"
	"go.trai.ch/mbedconf/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	return config.NewLoader(mockLogger), mockLogger
}

func TestLoader_Load_MissingFileUsesDefaults(t *testing.T) {
	loader, _ := newLoader(t)

	profile, err := loader.Load(filepath.Join(t.TempDir(), domain.ConfigFileName), false)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProfile(), profile)
}

func TestLoader_Load_MissingExplicitFile(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.Load(filepath.Join(t.TempDir(), "custom.yaml"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoader_Load_OverridesFields(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()
	path := createFile(t, dir, domain.ConfigFileName, `
version: "1"
runner: python3.11
configurator: tools/mbed-cmake/configure_for_target.py
target: NUCLEO_F767ZI
workingDir: firmware
environment:
  MBED_TOOLCHAIN: GCC_ARM
`)

	profile, err := loader.Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, "python3.11", profile.Runner)
	assert.Equal(t, "tools/mbed-cmake/configure_for_target.py", profile.Configurator)
	assert.Equal(t, "NUCLEO_F767ZI", profile.Target)
	assert.Equal(t, filepath.Join(dir, "firmware"), profile.WorkingDir)
	assert.Equal(t, map[string]string{"MBED_TOOLCHAIN": "GCC_ARM"}, profile.Environment)

	// Unset fields keep their defaults.
	assert.Equal(t, domain.DefaultAppConfig, profile.AppConfig)
	assert.Equal(t, domain.DefaultSourceDir, profile.SourceDir)
	assert.Equal(t, domain.DefaultIgnoreFile, profile.IgnoreFile)
}

func TestLoader_Load_EmptyRunnerDisablesRunner(t *testing.T) {
	loader, _ := newLoader(t)
	path := createFile(t, t.TempDir(), domain.ConfigFileName, "runner: \"\"\n")

	profile, err := loader.Load(path, false)
	require.NoError(t, err)
	assert.Empty(t, profile.Runner)
}

func TestLoader_Load_AbsoluteWorkingDir(t *testing.T) {
	loader, _ := newLoader(t)
	abs := t.TempDir()
	path := createFile(t, t.TempDir(), domain.ConfigFileName, "workingDir: "+abs+"\n")

	profile, err := loader.Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, abs, profile.WorkingDir)
}

func TestLoader_Load_ParseError(t *testing.T) {
	loader, _ := newLoader(t)
	path := createFile(t, t.TempDir(), domain.ConfigFileName, "target: [unterminated\n")

	_, err := loader.Load(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoader_Load_UnknownVersionWarns(t *testing.T) {
	loader, mockLogger := newLoader(t)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)
	path := createFile(t, t.TempDir(), domain.ConfigFileName, "version: \"2\"\n")

	_, err := loader.Load(path, false)
	require.NoError(t, err)
}

func TestLoader_Load_DirectoryIsReadError(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.Load(t.TempDir(), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
