package log

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
)

func ExampleLogrus() {
	logger := func() Logger {
		logger := logrus.New()
		logger.SetOutput(os.Stdout)
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors:    true,
			DisableTimestamp: true,
		})
		return Logrus{FieldLogger: logger}
	}()

	workerLogger := logger.WithField(`worker`, 3).
		WithFields(map[string]any{
			`low`:  10,
			`high`: 20,
		})

	workerLogger.Info(`spawned`)

	workerLogger.WithError(errors.New(`index out of range`)).
		Warn(`worker fault`)

	OrDiscard(nil).Error(`dropped`)

	//output:
	//level=info msg=spawned high=20 low=10 worker=3
	//level=warning msg="worker fault" error="index out of range" high=20 low=10 worker=3
}
