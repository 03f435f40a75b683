package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"github.com/sat20-labs/ordinals/common"
	"github.com/sirupsen/logrus"
)

// newLogFile opens the rotating log file named after the running binary
// under conf.Path.
func newLogFile(conf *Log) (io.Writer, error) {
	exePath, _ := os.Executable()
	name := filepath.Base(exePath)
	return rotatelogs.New(
		filepath.Join(conf.Path, name+".%Y%m%d%H%M.log"),
		rotatelogs.WithLinkName(filepath.Join(conf.Path, name+".log")),
		rotatelogs.WithMaxAge(time.Duration(conf.MaxAgeDays)*24*time.Hour),
		rotatelogs.WithRotationTime(time.Duration(conf.RotationHours)*time.Hour),
	)
}

// InitLog sends common.Log to stdout and the rotating file set in conf.Log.
// conf must have been through LoadYamlConf or NewDefaultYamlConf.
func InitLog(conf *YamlConf) error {
	if conf == nil {
		return errors.New("no config to init log from")
	}
	lvl, err := logrus.ParseLevel(conf.Log.Level)
	if err != nil {
		return errors.Wrapf(err, "log level %s", conf.Log.Level)
	}

	file, err := newLogFile(&conf.Log)
	if err != nil {
		return errors.Wrap(err, "failed to create RotateFile hook")
	}

	common.Log.SetOutput(io.MultiWriter(file, os.Stdout))
	common.Log.SetLevel(lvl)
	return nil
}
