package stylist

import (
	"net/http"

	"braidr/infras/otel"
	"braidr/internal/domains/stylist/model"
	"braidr/internal/domains/stylist/model/dto"
	"braidr/internal/domains/stylist/service"
	"braidr/shared/constant"
	gDto "braidr/shared/dto"
	"braidr/shared/validator"
	"braidr/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Stylist
	otel    otel.Otel
}

func New(service service.Stylist, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/stylists", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateStylist)
		routerGroup.Get("/", handler.GetStylists)
		routerGroup.Get("/{id}", handler.GetStylistByID)
		routerGroup.Patch("/{id}", handler.UpdateStylist)
		routerGroup.Delete("/{id}", handler.DeleteStylist)
		routerGroup.Get("/{id}/hours", handler.GetWorkingHours)
		routerGroup.Put("/{id}/hours", handler.PutWorkingHours)
	})
}

// CreateStylist registers a new stylist profile.
// @Summary Create a new stylist
// @Description Register a new stylist profile.
// @Tags Stylist
// @Accept json
// @Produce json
// @Param request body dto.CreateStylistRequest true "Create Stylist Request"
// @Success 201 {object} response.Data[dto.StylistResponse] "Stylist created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stylists [post]
// @Security BearerAuth
func (handler *Handler) CreateStylist(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStylist")
	defer scope.End()

	req := dto.CreateStylistRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	stylist, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create stylist")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Stylist created successfully")

	response.WithJSON(writer, http.StatusCreated, stylist)
}

// GetStylists retrieves all stylists based on query parameters.
// @Summary Get all stylists
// @Description Retrieve all stylists with optional filtering and pagination.
// @Tags Stylist
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param display_name query string false "Filter by display name (partial match)"
// @Param is_available query string false "Filter by availability (true/false)"
// @Success 200 {object} response.Data[dto.GetStylistsResponse] "List of stylists"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stylists [get]
func (handler *Handler) GetStylists(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStylists")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	displayName := r.URL.Query().Get(model.FieldDisplayName)
	isAvailable := r.URL.Query().Get(model.FieldIsAvailable)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if displayName != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDisplayName,
			Operator: gDto.FilterOperatorLike,
			Value:    displayName,
			Table:    model.TableName,
		})
	}

	if isAvailable != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsAvailable,
			Operator: gDto.FilterOperatorEq,
			Value:    isAvailable == "true",
			Table:    model.TableName,
		})
	}

	stylists, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stylists")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stylists retrieved successfully")

	response.WithJSON(w, http.StatusOK, stylists)
}

// GetStylistByID retrieves a stylist by its ID.
// @Summary Get a stylist by ID
// @Description Retrieve a stylist by its unique identifier.
// @Tags Stylist
// @Accept json
// @Produce json
// @Param id path string true "Stylist ID"
// @Success 200 {object} response.Data[dto.StylistResponse] "Stylist details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stylists/{id} [get]
func (handler *Handler) GetStylistByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStylistByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	stylist, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stylist by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stylist retrieved successfully")

	response.WithJSON(w, http.StatusOK, stylist)
}

// UpdateStylist updates an existing stylist by its ID.
// @Summary Update a stylist by ID
// @Description Update the profile of an existing stylist.
// @Tags Stylist
// @Accept json
// @Produce json
// @Param id path string true "Stylist ID"
// @Param request body dto.UpdateStylistRequest true "Update Stylist Request"
// @Success 200 {object} response.Message "Stylist updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stylists/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStylist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStylist")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStylistRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update stylist")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stylist updated successfully")

	response.WithMessage(w, http.StatusOK, "Stylist updated successfully")
}

// DeleteStylist deletes a stylist by its ID.
// @Summary Delete a stylist by ID
// @Description Remove a stylist profile using its unique identifier.
// @Tags Stylist
// @Accept json
// @Produce json
// @Param id path string true "Stylist ID"
// @Success 200 {object} response.Message "Stylist deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stylists/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteStylist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteStylist")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete stylist")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stylist deleted successfully")

	response.WithMessage(w, http.StatusOK, "Stylist deleted successfully")
}

// GetWorkingHours retrieves a stylist's weekly schedule.
// @Summary Get a stylist's working hours
// @Description Retrieve the weekly working hours of a stylist.
// @Tags Stylist
// @Accept json
// @Produce json
// @Param id path string true "Stylist ID"
// @Success 200 {object} response.Data[dto.GetWorkingHoursResponse] "Working hours"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stylists/{id}/hours [get]
func (handler *Handler) GetWorkingHours(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWorkingHours")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	hours, err := handler.service.GetWorkingHours(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get working hours")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Working hours retrieved successfully")

	response.WithJSON(w, http.StatusOK, hours)
}

// PutWorkingHours replaces a stylist's weekly schedule.
// @Summary Replace a stylist's working hours
// @Description Replace the full weekly working hours of a stylist.
// @Tags Stylist
// @Accept json
// @Produce json
// @Param id path string true "Stylist ID"
// @Param request body dto.PutWorkingHoursRequest true "Put Working Hours Request"
// @Success 200 {object} response.Data[dto.GetWorkingHoursResponse] "Working hours replaced successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stylists/{id}/hours [put]
// @Security BearerAuth
func (handler *Handler) PutWorkingHours(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PutWorkingHours")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.PutWorkingHoursRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	hours, err := handler.service.PutWorkingHours(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to replace working hours")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Working hours replaced successfully")

	response.WithJSON(w, http.StatusOK, hours)
}
