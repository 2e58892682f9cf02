package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// FilesHandler serves uploads written by the local storage provider.
type FilesHandler struct {
	urlPrefix string
	root      string
}

func NewFilesHandler(urlPrefix, root string) *FilesHandler {
	return &FilesHandler{urlPrefix: strings.TrimSuffix(urlPrefix, "/"), root: root}
}

func (h *FilesHandler) RegisterRoutes(router *httprouter.Router, _ func(httprouter.Handle) httprouter.Handle) {
	router.ServeFiles(h.urlPrefix+"/*filepath", http.Dir(h.root))
}
