package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestInitConfigEnvBinding(t *testing.T) {
	t.Setenv("HELIX_CLIENT_ID", "id-from-env")
	t.Setenv("HELIX_TOKEN", "tok-from-env")
	t.Setenv("HOME", t.TempDir())

	viper.Reset()
	defer viper.Reset()

	initConfig()

	assert.Equal(t, "id-from-env", viper.GetString("client-id"))
	assert.Equal(t, "tok-from-env", viper.GetString("token"))
}
