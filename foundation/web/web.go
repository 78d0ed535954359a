// Package web is a small framework on top of gin used by every handler in
// this service. Handlers receive a *Context and return an error; the wrapper
// translates returned errors into the JSON envelope the API speaks.
package web

import (
	"github.com/gin-gonic/gin"
)

// Handler is the signature every controller method implements.
type Handler func(c *Context) error

// Middleware wraps a Handler with pre/post behaviour.
type Middleware func(Handler) Handler

type App struct {
	*gin.Engine
}

func NewApp() *App {
	return &App{gin.New()}
}

func (a *App) handle(method, path string, handler Handler, middlewares ...Middleware) {
	// Apply middlewares in reverse so the first listed runs first.
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	h := handler
	a.Handle(method, path, func(c *gin.Context) {
		ctx := NewContext(c)
		if err := h(ctx); err != nil {
			_ = ctx.RespondError(err)
		}
	})
}

func (a *App) Get(path string, handler Handler, middlewares ...Middleware) {
	a.handle("GET", path, handler, middlewares...)
}

func (a *App) Post(path string, handler Handler, middlewares ...Middleware) {
	a.handle("POST", path, handler, middlewares...)
}

func (a *App) Put(path string, handler Handler, middlewares ...Middleware) {
	a.handle("PUT", path, handler, middlewares...)
}

func (a *App) Patch(path string, handler Handler, middlewares ...Middleware) {
	a.handle("PATCH", path, handler, middlewares...)
}

func (a *App) Delete(path string, handler Handler, middlewares ...Middleware) {
	a.handle("DELETE", path, handler, middlewares...)
}
