package contracts

import "github.com/julienschmidt/httprouter"

// AdminGuard wraps a route so it only runs for an authenticated admin.
type AdminGuard func(httprouter.Handle) httprouter.Handle

type Handler interface {
	RegisterRoutes(router *httprouter.Router, admin func(httprouter.Handle) httprouter.Handle)
}
