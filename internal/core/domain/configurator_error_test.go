package domain_test

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/mbedconf/internal/core/domain"
)

func TestConfiguratorError(t *testing.T) {
	cause := &exec.ExitError{}
	err := error(&domain.ConfiguratorError{
		ExitCode: 2,
		Stderr:   []byte("Traceback (most recent call last):\nKeyError: 'NUCLEO_H743ZI2'\n"),
		Err:      cause,
	})

	assert.Equal(t, "configurator exited with status 2: KeyError: 'NUCLEO_H743ZI2'", err.Error())
	assert.ErrorIs(t, err, domain.ErrConfiguratorFailed)

	var exitErr *exec.ExitError
	assert.True(t, errors.As(err, &exitErr))

	var cfgErr *domain.ConfiguratorError
	assert.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, 2, cfgErr.ExitCode)
}

func TestConfiguratorError_NoStderr(t *testing.T) {
	err := &domain.ConfiguratorError{ExitCode: 1}

	assert.Equal(t, "configurator exited with status 1", err.Error())
	assert.ErrorIs(t, err, domain.ErrConfiguratorFailed)
}
