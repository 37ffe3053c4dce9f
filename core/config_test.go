package core

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, kv map[string]string) {
	for k, v := range kv {
		prev, had := os.LookupEnv(k)
		require.NoError(t, os.Setenv(k, v))
		k := k
		t.Cleanup(func() {
			if had {
				_ = os.Setenv(k, prev)
			} else {
				_ = os.Unsetenv(k)
			}
		})
	}
}

func TestNewConfig_defaults(t *testing.T) {
	setEnv(t, map[string]string{"ENV": ""})

	conf, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "DEV", conf.Env)
	assert.Equal(t, "Gradesheet", conf.AppName)
	assert.True(t, conf.Debug)
	assert.True(t, conf.SeedRegistry)
	assert.Equal(t, ":8080", conf.Server.Address)
	assert.Equal(t, 5*time.Second, conf.Server.ShutdownTimeout)
	assert.False(t, conf.Server.DisableReqLogs)
}

func TestNewConfig_env(t *testing.T) {
	setEnv(t, map[string]string{
		"ENV":                         "test",
		"TEST_DEBUG":                  "false",
		"TEST_SEEDREGISTRY":           "false",
		"TEST_SERVER_ADDRESS":         ":9000",
		"TEST_SERVER_SHUTDOWNTIMEOUT": "10s",
		"DEV_SERVER_ADDRESS":          ":7000", // other ENV, ignored
	})

	conf, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "TEST", conf.Env)
	assert.False(t, conf.Debug)
	assert.False(t, conf.SeedRegistry)
	assert.Equal(t, ":9000", conf.Server.Address)
	assert.Equal(t, 10*time.Second, conf.Server.ShutdownTimeout)
}

func TestNewConfig_dotEnv(t *testing.T) {
	dir, err := ioutil.TempDir("", "gradesheet")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, ioutil.WriteFile(
		filepath.Join(dir, "config", ".env.qa"),
		[]byte("QA_APPNAME=Grades\nQA_ROLLBARTOKEN=tok\n"),
		0o644,
	))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()
	setEnv(t, map[string]string{"ENV": "QA"})
	defer func() {
		_ = os.Unsetenv("QA_APPNAME")
		_ = os.Unsetenv("QA_ROLLBARTOKEN")
	}()

	conf, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "QA", conf.Env)
	assert.Equal(t, "Grades", conf.AppName)
	assert.Equal(t, "tok", conf.RollbarToken)
}

func TestConfig_Validate(t *testing.T) {
	validate, translator := NewValidator()

	valid := Config{
		Env:     "PROD",
		AppName: "Gradesheet",
		Server:  Server{Address: ":8080", ShutdownTimeout: time.Second},
	}
	assert.NoError(t, valid.Validate(validate, translator))

	err := (&Config{Env: "LOL"}).Validate(validate, translator)
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok, "error type = %T", err)

	fields := make(map[string]string, len(vErr.Fields))
	for _, fld := range vErr.Fields {
		fields[fld.Field] = fld.Error
	}
	assert.Len(t, fields, 4)
	assert.Equal(t, "this field is required", fields["Config.appName"])
	assert.Equal(t, "this field is required", fields["Config.server.address"])
	assert.Equal(t, "must be one of: DEV TEST QA PROD", fields["Config.env"])
	assert.Contains(t, fields, "Config.server.shutdownTimeout")
}

func TestIsShutdown(t *testing.T) {
	assert.True(t, IsShutdown(NewShutdownError("stop")))
	assert.False(t, IsShutdown(NewValidationError(nil)))
}
