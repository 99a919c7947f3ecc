// Package main запускает Empty OK Service — HTTP-сервер с единственным
// маршрутом "/", который отвечает 200 с пустым телом.
//
// Адрес фиксирован: 127.0.0.1:8080 (только loopback). Флагов и переменных
// окружения нет.
//
// Коды выхода:
//   - 0 — штатная остановка по SIGINT/SIGTERM
//   - повторный сигнал во время остановки убивает процесс без ожидания
//   - 1 — не удалось занять порт или сервер упал
//
// Запуск:
//
//	go run ./cmd/empty-ok-service
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/r2r72/empty-ok/cmd/empty-ok-service/handlers"
	"github.com/r2r72/empty-ok/internal/server"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// === Graceful shutdown ===
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Повторный сигнал во время остановки завершает процесс сразу.
	go func() {
		<-ctx.Done()
		stop()
		log.Info("🛑 Signal received, send it again to force quit")
	}()

	// === Маршруты ===
	router := httprouter.New()
	handlers.RegisterRoutes(router, log)

	srv := server.New(server.DefaultConfig(), router, log)
	if err := srv.Run(ctx); err != nil {
		var bindErr *server.BindError
		if errors.As(err, &bindErr) {
			log.WithError(bindErr.Err).WithField("addr", bindErr.Addr).Fatal("❌ Failed to bind listener")
		}
		log.WithError(err).Fatal("❌ Server failed")
	}

	log.Info("✅ Empty OK Service stopped")
}
