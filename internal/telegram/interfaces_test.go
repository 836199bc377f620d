package telegram

import (
	"github.com/nikmy/flighthub/pkg/logger"
)

type loggerImpl interface {
	logger.Logger
}
