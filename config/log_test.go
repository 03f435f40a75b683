package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sat20-labs/ordinals/common"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLog(t *testing.T) {
	defer func() {
		common.Log.SetOutput(os.Stderr)
		common.Log.SetLevel(logrus.InfoLevel)
	}()

	dir := t.TempDir()
	conf, err := LoadYamlConf(writeConf(t, "log:\n  level: debug\n  path: "+dir+"\n"))
	require.NoError(t, err)
	require.NoError(t, InitLog(conf))
	assert.Equal(t, logrus.DebugLevel, common.Log.GetLevel())

	common.GetLoggerEntry("config").Debugf("written to %s", dir)

	exePath, _ := os.Executable()
	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(exePath)+".log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[debug] config: written to "+dir)
}

func TestInitLogErrors(t *testing.T) {
	assert.Error(t, InitLog(nil))

	conf, err := NewDefaultYamlConf(common.ChainMainnet)
	require.NoError(t, err)
	conf.Log.Level = "chatty"
	assert.ErrorContains(t, InitLog(conf), "log level chatty")
}
