// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/cookbook/internal/platform/apperr"
	"github.com/taibuivan/cookbook/internal/platform/bind"
	"github.com/taibuivan/cookbook/internal/platform/respond"
	"github.com/taibuivan/cookbook/internal/platform/validate"
	"github.com/taibuivan/cookbook/internal/recipe"
)

// Handler exposes a [Service] as the REST recipe collection.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the recipe collection router, mounted at /api/v1/recipes.
//
//	GET    /       ordered collection
//	POST   /       create (client-supplied id)
//	GET    /{id}   one recipe
//	PUT    /{id}   full replacement
//	PATCH  /{id}   {"favourite": bool} only
//	DELETE /{id}
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Route("/{id}", func(item chi.Router) {
		item.Get("/", handler.get)
		item.Put("/", handler.update)
		item.Patch("/", handler.patch)
		item.Delete("/", handler.delete)
	})
	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	recipes, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.JSON(writer, http.StatusOK, recipes)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.service.Get(request.Context(), bind.PathID(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.JSON(writer, http.StatusOK, found)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	body, err := bind.JSON[recipe.Recipe](writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), &body)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.JSON(writer, http.StatusCreated, created)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	body, err := bind.JSON[recipe.Recipe](writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), bind.PathID(request), &body)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.JSON(writer, http.StatusOK, updated)
}

// favouritePatch is the only partial update the collection accepts.
type favouritePatch struct {
	Favourite *bool `json:"favourite"`
}

func (handler *Handler) patch(writer http.ResponseWriter, request *http.Request) {
	body, err := bind.JSON[favouritePatch](writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if body.Favourite == nil {
		respond.Error(writer, request, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   "favourite",
			Rule:    validate.RuleRequired,
			Message: "favourite is a required field",
		}))
		return
	}

	updated, err := handler.service.SetFavourite(request.Context(), bind.PathID(request), *body.Favourite)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.JSON(writer, http.StatusOK, updated)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), bind.PathID(request)); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
