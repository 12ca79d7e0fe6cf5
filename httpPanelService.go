package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"io"
	"io/ioutil"
	"log"
	"net/http"
	"sync"

	"github.com/buger/jsonparser"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

type valuesResponse struct {
	Response string      `json:"response"`
	Error    string      `json:"error,omitempty"`
	Values   panelValues `json:"values"`
}

// apiHandler - settings for the thing that handles HTTP requests
type apiHandler struct {
	rt     runtimeConfig
	user   string
	secret string
	realm  string

	mu  sync.Mutex
	cur panelValues
}

func newHandler(rt runtimeConfig) *apiHandler {
	return &apiHandler{
		rt:     rt,
		user:   rt.settings.GetString(sHTTPUser),
		secret: rt.settings.GetString(sHTTPSecret),
		realm:  "oledtiles",
		cur:    panelValues{Title: rt.settings.GetString(sTitle)},
	}
}

// BasicAuth - provide a middleware to authenticate users, off when no
// secret is configured
func (m *apiHandler) BasicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.secret == "" {
			next.ServeHTTP(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || subtle.ConstantTimeCompare([]byte(user), []byte(m.user)) != 1 || subtle.ConstantTimeCompare([]byte(pass), []byte(m.secret)) != 1 {
			w.Header().Set("WWW-Authenticate", `Basic realm="`+m.realm+`"`)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Unauthorised.\n"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeAnswer(w http.ResponseWriter, code int, vr valuesResponse) {
	output, _ := json.Marshal(vr)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(output)
}

func (m *apiHandler) current() panelValues {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cur
}

// parseValues reads the fields present in body over cur
func parseValues(body []byte, cur panelValues) (panelValues, error) {
	_, dataType, _, err := jsonparser.Get(body)
	if err != nil {
		return cur, errors.Wrap(err, "bad body")
	}
	if dataType != jsonparser.Object {
		return cur, errors.Errorf("bad body: expected an object, got %v", dataType)
	}

	ints := []struct {
		key string
		val *int
	}{
		{"dial", &cur.Dial},
		{"vu", &cur.VU},
		{"level", &cur.Level},
	}
	for _, f := range ints {
		if _, dt, _, err := jsonparser.Get(body, f.key); err != nil || dt == jsonparser.NotExist {
			continue
		}
		v, err := jsonparser.GetInt(body, f.key)
		if err != nil {
			return cur, errors.Wrapf(err, "field %s", f.key)
		}
		*f.val = int(v)
	}

	if _, dt, _, err := jsonparser.Get(body, "title"); err == nil && dt != jsonparser.NotExist {
		title, err := jsonparser.GetString(body, "title")
		if err != nil {
			return cur, errors.Wrap(err, "field title")
		}
		cur.Title = title
	}
	return cur, nil
}

func (m *apiHandler) apiGetValues(w http.ResponseWriter, r *http.Request) {
	writeAnswer(w, http.StatusOK, valuesResponse{Response: "OK", Values: m.current()})
}

func (m *apiHandler) apiSetValues(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(io.LimitReader(r.Body, 4096))
	if err != nil {
		writeAnswer(w, http.StatusBadRequest, valuesResponse{Response: "BAD", Error: err.Error()})
		return
	}

	m.mu.Lock()
	cur := m.cur
	m.mu.Unlock()

	v, err := parseValues(body, cur)
	if err == nil {
		err = validate(v)
	}
	if err != nil {
		writeAnswer(w, http.StatusBadRequest, valuesResponse{Response: "BAD", Error: err.Error(), Values: cur})
		return
	}

	// the send can block until the panel catches up, so not under mu
	if !sendValues(m.rt, v) {
		writeAnswer(w, http.StatusServiceUnavailable, valuesResponse{Response: "BAD", Error: "shutting down", Values: m.current()})
		return
	}
	m.mu.Lock()
	m.cur = v
	m.mu.Unlock()
	writeAnswer(w, http.StatusOK, valuesResponse{Response: "OK", Values: v})
}

func (m *apiHandler) rootHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/api/values", http.StatusMovedPermanently)
}

func newRouter(handler *apiHandler) *mux.Router {
	r := mux.NewRouter()
	// auth middleware
	r.Use(handler.BasicAuth)
	// api server
	r.HandleFunc("/api/values", handler.apiGetValues).Methods("GET")
	r.HandleFunc("/api/values", handler.apiSetValues).Methods("POST")
	// root handler
	r.HandleFunc("/", handler.rootHandler)
	return r
}

type httpPanelService struct {
	srv  *http.Server
	done chan struct{}
}

func (h *httpPanelService) launch(handler *apiHandler, addr string) {
	h.srv = &http.Server{Addr: addr, Handler: newRouter(handler)}
	h.done = make(chan struct{})

	// launch the server
	go func() {
		defer close(h.done)
		log.Printf("starting panel http server on %s", addr)
		err := h.srv.ListenAndServe()
		if err != http.ErrServerClosed {
			log.Print(err)
		}
		log.Print("Exiting panel http server")
	}()
}

func (h *httpPanelService) stop() {
	h.srv.Shutdown(context.Background())
	<-h.done
}

// httpSource takes values from POST /api/values
type httpSource struct{}

func (httpSource) run(rt runtimeConfig) {
	var svc httpPanelService
	svc.launch(newHandler(rt), rt.settings.GetString(sHTTPAddr))

	<-rt.comms.quit
	log.Println("quit from http source")
	svc.stop()
}
