package main

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// newRecordingProvider 받은 SMS 요청을 "receptor|message" 형식으로 기록하는 공급자 서버를 띄웁니다.
func newRecordingProvider(t *testing.T, mu *sync.Mutex, received *[]string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		mu.Lock()
		*received = append(*received, r.PostForm.Get("receptor")+"|"+r.PostForm.Get("message"))
		mu.Unlock()

		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	return srv
}
