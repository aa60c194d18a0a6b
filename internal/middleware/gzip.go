package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
)

// compressWriter подменяет тело ответа gzip-потоком.
type compressWriter struct {
	http.ResponseWriter
	gz io.Writer
}

func (c *compressWriter) Write(b []byte) (int, error) {
	return c.gz.Write(b)
}

// GzipMiddleware добавляет поддержку gzip для входящих и исходящих данных.
func GzipMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Сжатое тело запроса распаковываем прозрачно для обработчиков
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			reader, err := gzip.NewReader(r.Body)
			if err != nil {
				http.Error(w, "Unable to decompress request", http.StatusBadRequest)
				return
			}
			defer reader.Close()
			r.Body = reader
		}

		// Клиент не просил сжатие — отдаём как есть
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Set("Vary", "Accept-Encoding")

		gz := gzip.NewWriter(w)
		defer gz.Close()

		next.ServeHTTP(&compressWriter{ResponseWriter: w, gz: gz}, r)
	})
}
