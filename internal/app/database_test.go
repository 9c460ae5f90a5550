//go:build !integration

package app

import (
	"testing"

	"github.com/guttosm/allocation-service/config"
	"github.com/stretchr/testify/assert"
)

func TestInitializeDatabase_Disabled(t *testing.T) {
	components := InitializeDatabase(config.DatabaseConfig{Enabled: false})
	assert.Nil(t, components)
}
