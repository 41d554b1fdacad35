// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/backend/web.go
// -*- mode: go; coding: utf-8; -*-
// Created on 15. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 22:58:33 krylon>

package backend

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"github.com/pquerna/ffjson/ffjson"
	"github.com/weiyongsheng1124/MoltbotAP-todo/common"
	"github.com/weiyongsheng1124/MoltbotAP-todo/objects"
)

// todoSubmission is what the web client sends to create a Todo.
type todoSubmission struct {
	Thing  string `json:"thing"`
	Person string `json:"person"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Place  string `json:"place"`
	Stuff  string `json:"stuff"`
}

func (d *Daemon) initWebHandlers() error {
	d.router.HandleFunc("/api/todos", d.handleTodoGetAll).Methods("GET")
	d.router.HandleFunc("/api/todos", d.handleTodoAdd).Methods("POST")
	d.router.HandleFunc("/api/todos/{id}/toggle", d.handleTodoToggle).Methods("POST")
	d.router.HandleFunc("/api/todos/{id}", d.handleTodoDelete).Methods("DELETE")
	d.router.HandleFunc("/api/check-notifications", d.handleCheckNotifications).Methods("POST")
	d.router.PathPrefix("/").HandlerFunc(d.handleStaticFile).Methods("GET")

	return nil
} // func (d *Daemon) initWebHandlers() error

func (d *Daemon) serveHTTP() {
	var err error

	defer d.log.Println("[INFO] Web server is shutting down")

	d.log.Printf("[INFO] Web frontend is going online at %s\n", d.web.Addr)

	if err = d.web.ListenAndServe(); err != nil {
		if err != http.ErrServerClosed {
			d.log.Printf("[ERROR] ListenAndServe returned an error: %s\n",
				err.Error())
		} else {
			d.log.Println("[INFO] HTTP Server has shut down.")
		}
	}
} // func (d *Daemon) serveHTTP()

func (d *Daemon) handleTodoGetAll(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err   error
		todos []objects.Todo
	)

	if todos, err = d.store.LoadAll(); err != nil {
		d.log.Printf("[ERROR] Cannot load Todos: %s\n",
			err.Error())
		d.sendJSON(w, http.StatusInternalServerError,
			&objects.Response{ID: d.getID(), Message: err.Error()})
		return
	}

	sortTodos(todos)

	d.sendJSON(w, http.StatusOK, todos)
} // func (d *Daemon) handleTodoGetAll(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleTodoAdd(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err        error
		buf        []byte
		msg        string
		req        todoSubmission
		td         objects.Todo
		todos      []objects.Todo
		res        = objects.Response{ID: d.getID()}
		httpStatus = http.StatusBadRequest
	)

	if buf, err = io.ReadAll(r.Body); err != nil {
		msg = fmt.Sprintf("Cannot read request body: %s",
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		goto SEND_ERROR
	} else if err = ffjson.Unmarshal(buf, &req); err != nil {
		msg = fmt.Sprintf("Cannot parse request body: %s",
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		goto SEND_ERROR
	}

	if req.Thing == "" || req.Time == "" {
		msg = "Required fields are missing: thing, time"
		d.log.Printf("[DEBUG] %s\n", msg)
		goto SEND_ERROR
	}

	if req.Date == "" {
		req.Date = d.clock.Now().Format(common.TimestampFormatDate)
	}

	td = objects.Todo{
		ID:      common.GetUUID(),
		Date:    req.Date,
		Time:    req.Time,
		Thing:   req.Thing,
		Person:  req.Person,
		Place:   req.Place,
		Stuff:   req.Stuff,
		Changed: d.clock.Now(),
	}

	if _, err = td.DueAt(); err != nil {
		msg = err.Error()
		d.log.Printf("[DEBUG] %s\n", msg)
		goto SEND_ERROR
	}

	d.storeLock.Lock()
	defer d.storeLock.Unlock()

	if todos, err = d.store.LoadAll(); err != nil {
		httpStatus = http.StatusInternalServerError
		msg = fmt.Sprintf("Cannot load Todos: %s",
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		goto SEND_ERROR
	}

	todos = append(todos, td)

	if err = d.store.SaveAll(todos); err != nil {
		httpStatus = http.StatusInternalServerError
		msg = fmt.Sprintf("Cannot save Todo %q: %s",
			td.Thing,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		goto SEND_ERROR
	}

	d.sendJSON(w, http.StatusOK, &td)
	return

SEND_ERROR:
	res.Message = msg
	d.sendJSON(w, httpStatus, &res)
} // func (d *Daemon) handleTodoAdd(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleTodoToggle(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err        error
		msg        string
		id         string
		idx        = -1
		todos      []objects.Todo
		vars       map[string]string
		res        = objects.Response{ID: d.getID()}
		httpStatus = http.StatusInternalServerError
	)

	vars = mux.Vars(r)
	id = vars["id"]

	d.storeLock.Lock()
	defer d.storeLock.Unlock()

	if todos, err = d.store.LoadAll(); err != nil {
		msg = fmt.Sprintf("Cannot load Todos: %s",
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		goto SEND_ERROR
	}

	for i := range todos {
		if todos[i].ID == id {
			idx = i
			break
		}
	}

	if idx < 0 {
		httpStatus = http.StatusNotFound
		msg = fmt.Sprintf("Todo %s was not found", id)
		d.log.Printf("[DEBUG] %s\n", msg)
		goto SEND_ERROR
	}

	// The notification flags are deliberately left alone. Un-checking
	// a Todo does not re-arm reminders that have already fired.
	todos[idx].Completed = !todos[idx].Completed
	todos[idx].Changed = d.clock.Now()

	if err = d.store.SaveAll(todos); err != nil {
		msg = fmt.Sprintf("Cannot save Todos: %s",
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		goto SEND_ERROR
	}

	d.sendJSON(w, http.StatusOK, &todos[idx])
	return

SEND_ERROR:
	res.Message = msg
	d.sendJSON(w, httpStatus, &res)
} // func (d *Daemon) handleTodoToggle(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleTodoDelete(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err        error
		msg        string
		id         string
		todos      []objects.Todo
		keep       []objects.Todo
		vars       map[string]string
		res        = objects.Response{ID: d.getID()}
		httpStatus = http.StatusInternalServerError
	)

	vars = mux.Vars(r)
	id = vars["id"]

	d.storeLock.Lock()
	defer d.storeLock.Unlock()

	if todos, err = d.store.LoadAll(); err != nil {
		msg = fmt.Sprintf("Cannot load Todos: %s",
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		goto SEND_ERROR
	}

	keep = make([]objects.Todo, 0, len(todos))

	for idx := range todos {
		if todos[idx].ID != id {
			keep = append(keep, todos[idx])
		}
	}

	if len(keep) != len(todos) {
		if err = d.store.SaveAll(keep); err != nil {
			msg = fmt.Sprintf("Cannot save Todos: %s",
				err.Error())
			d.log.Printf("[ERROR] %s\n", msg)
			goto SEND_ERROR
		}
	}

	res.Status = true
	res.Message = fmt.Sprintf("Todo %s was deleted", id)
	d.sendJSON(w, http.StatusOK, &res)
	return

SEND_ERROR:
	res.Message = msg
	d.sendJSON(w, httpStatus, &res)
} // func (d *Daemon) handleTodoDelete(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleCheckNotifications(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err error
		res = objects.Response{ID: d.getID()}
	)

	if err = d.CheckReminders(); err != nil {
		res.Message = fmt.Sprintf("Notification check failed: %s",
			err.Error())
		d.log.Printf("[ERROR] %s\n", res.Message)
		d.sendJSON(w, http.StatusInternalServerError, &res)
		return
	}

	res.Status = true
	res.Message = "Notification check complete"
	d.sendJSON(w, http.StatusOK, &res)
} // func (d *Daemon) handleCheckNotifications(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleStaticFile(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var path = r.URL.Path

	if path == "/" {
		path = "/index.html"
	}

	if strings.Contains(path, "..") {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	var (
		err  error
		buf  []byte
		full = filepath.Join(common.AssetPath, filepath.FromSlash(path))
	)

	if buf, err = os.ReadFile(full); err != nil {
		if os.IsNotExist(err) {
			w.WriteHeader(http.StatusNotFound)
		} else {
			d.log.Printf("[ERROR] Cannot read static file %s: %s\n",
				full,
				err.Error())
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	var mimeType, ok = d.mimeTypes[filepath.Ext(full)]
	if !ok {
		mimeType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", mimeType)
	w.WriteHeader(http.StatusOK)
	w.Write(buf) // nolint: errcheck
} // func (d *Daemon) handleStaticFile(w http.ResponseWriter, r *http.Request)

//////////////////////////////////////////////////////////////////////////////////////////////////
/// Helpers //////////////////////////////////////////////////////////////////////////////////////
//////////////////////////////////////////////////////////////////////////////////////////////////

func (d *Daemon) sendJSON(w http.ResponseWriter, status int, payload interface{}) {
	var (
		err error
		buf []byte
	)

	if buf, err = ffjson.Marshal(payload); err != nil {
		d.log.Printf("[ERROR] Cannot serialize %T: %s\n",
			payload,
			err.Error())
		return
	}

	defer ffjson.Pool(buf)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf) // nolint: errcheck
} // func (d *Daemon) sendJSON(w http.ResponseWriter, status int, payload interface{})
