// Package handlers содержит HTTP-обработчики сервиса.
//
// Единственный эндпоинт:
//
//	* /    — любой метод, ответ 200 с пустым телом
//
// Остальные пути отдают 404 (поведение роутера по умолчанию).
package handlers

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// rootMethods — стандартные методы, явно привязанные к корню.
var rootMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
	http.MethodTrace,
}

// RegisterRoutes регистрирует корневой маршрут.
func RegisterRoutes(router *httprouter.Router, log logrus.FieldLogger) {
	root := withError(log, handleRoot)
	for _, method := range rootMethods {
		router.Handle(method, "/", root)
	}

	// Нестандартные методы (PURGE, PROPFIND, ...) роутер считает 405.
	// Только "/" зарегистрирован, поэтому этот хук срабатывает лишь для корня.
	router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Del("Allow")
		root(w, r, nil)
	})
}

// withError оборачивает обработчик: ошибка логируется, клиент получает 500.
func withError(log logrus.FieldLogger, h func(http.ResponseWriter, *http.Request, httprouter.Params) error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if err := h(w, r, ps); err != nil {
			log.WithError(err).WithField("path", r.URL.Path).Warn("⚠️ HTTP error")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}

// handleRoot ничего не читает из запроса и отвечает 200 без тела.
func handleRoot(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) error {
	w.WriteHeader(http.StatusOK)
	return nil
}
