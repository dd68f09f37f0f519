package httpserver

import (
	"log/slog"
	"strconv"

	"github.com/Skotchmaster/shop_api/internal/logging"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func discardLogger() *slog.Logger {
	return logging.Discard()
}
