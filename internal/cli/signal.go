package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Ctrl-C cancela a carga em andamento; a resposta que chegar depois é descartada.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
