// Package logging configures the logrus standard logger used by the game engine.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Setup sets the level and formatter of the standard logger and returns it.
// An empty level keeps info.
func Setup(w io.Writer, level string, json bool) (*logrus.Logger, error) {
	logger := logrus.StandardLogger()
	logger.SetOutput(w)

	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		logger.SetLevel(lvl)
	}

	if json {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	return logger, nil
}
