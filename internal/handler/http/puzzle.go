// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-daily-puzzle/internal/app"
	"github.com/MKhiriev/go-daily-puzzle/internal/logger"
	"github.com/MKhiriev/go-daily-puzzle/internal/utils"
	"github.com/MKhiriev/go-daily-puzzle/models"
)

func (h *Handler) getPuzzleByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		writeError(w, r, "*Handler.getPuzzleByDate", fmt.Errorf("%w: date", ErrMissingQueryParam))
		return
	}

	puzzle, err := h.services.PuzzleService.GetByDate(r.Context(), models.DateRequest{Date: date})
	if err != nil {
		writeError(w, r, "*Handler.getPuzzleByDate", err)
		return
	}

	utils.WriteJSON(w, puzzle, http.StatusOK)
}

func (h *Handler) getAllPuzzlesForMonth(w http.ResponseWriter, r *http.Request) {
	req, err := monthFromQuery(r)
	if err != nil {
		writeError(w, r, "*Handler.getAllPuzzlesForMonth", err)
		return
	}

	puzzles, err := h.services.PuzzleService.GetAllForMonth(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.getAllPuzzlesForMonth", err)
		return
	}

	utils.WriteJSON(w, puzzles, http.StatusOK)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())

	var req models.SubmitRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		if errors.Is(err, utils.ErrEmptyBody) {
			writeError(w, r, "*Handler.submit", err)
			return
		}
		logger.FromRequest(r).Err(err).Str("func", "*Handler.submit").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.PuzzleService.Submit(r.Context(), user.ID, req)
	if err != nil {
		writeError(w, r, "*Handler.submit", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) getUserProgress(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())

	req, err := monthFromQuery(r)
	if err != nil {
		writeError(w, r, "*Handler.getUserProgress", err)
		return
	}

	progress, err := h.services.PuzzleService.GetUserProgress(r.Context(), user.ID, req)
	if err != nil {
		writeError(w, r, "*Handler.getUserProgress", err)
		return
	}

	utils.WriteJSON(w, progress, http.StatusOK)
}

// monthFromQuery reads the "year" and "month" query parameters.
// Range checks are left to the service validation.
func monthFromQuery(r *http.Request) (models.MonthRequest, error) {
	year, err := intQueryParam(r, "year")
	if err != nil {
		return models.MonthRequest{}, err
	}

	month, err := intQueryParam(r, "month")
	if err != nil {
		return models.MonthRequest{}, err
	}

	return models.MonthRequest{Year: year, Month: month}, nil
}

func intQueryParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s", ErrMissingQueryParam, name)
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidQueryParam, name)
	}

	return value, nil
}
