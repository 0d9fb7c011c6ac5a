package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"aurafest/internal/application/orchestrators"
	bookingDomain "aurafest/internal/domain/booking"
	enquiryDomain "aurafest/internal/domain/enquiry"
)

// okResponse is the success body for the intake endpoints.
type okResponse struct {
	OK bool `json:"ok"`
}

// errResponse is the failure body for the intake endpoints.
type errResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func apiError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errResponse{OK: false, Error: message})
}

// handleAPIEnquiry handles POST /api/enquiry from either a URL-encoded form
// or a JSON body.
func (s *Server) handleAPIEnquiry(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var input orchestrators.SubmitEnquiryInput
	if isJSONRequest(r) {
		var body struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Phone   string `json:"phone"`
			Message string `json:"message"`
		}
		if err := decodeJSON(r, &body); err != nil {
			apiError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		input = orchestrators.SubmitEnquiryInput(body)
	} else {
		if err := r.ParseForm(); err != nil {
			apiError(w, http.StatusBadRequest, "Invalid form submission")
			return
		}
		input = orchestrators.SubmitEnquiryInput{
			Name:    r.FormValue("name"),
			Email:   r.FormValue("email"),
			Phone:   r.FormValue("phone"),
			Message: r.FormValue("message"),
		}
	}

	deps := orchestrators.SubmitEnquiryDeps{
		EnquiryStore: s.stores.EnquiryStore,
		GenerateID:   generateID,
		Now:          timeNow,
	}
	e, err := orchestrators.ExecuteSubmitEnquiry(r.Context(), input, deps)
	if err != nil {
		if errors.Is(err, enquiryDomain.ErrNameAndPhoneRequired) {
			apiError(w, http.StatusBadRequest, err.Error())
			return
		}
		apiError(w, http.StatusInternalServerError, genericFailure)
		return
	}

	orchestrators.NotifyEnquiry(r.Context(), orchestrators.NotifyDeps{Sender: s.sender, To: s.cfg.NotifyTo}, e)
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// handleAPIBook handles POST /api/book. A JSON submission gets a JSON body
// back; a browser form submission is redirected to the confirmation page.
func (s *Server) handleAPIBook(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	isJSON := isJSONRequest(r)
	var input orchestrators.SubmitBookingInput
	if isJSON {
		var body struct {
			Name      string `json:"name"`
			Email     string `json:"email"`
			Phone     string `json:"phone"`
			EventType string `json:"event_type"`
			Date      string `json:"date"`
			Location  string `json:"location"`
			Budget    string `json:"budget"`
			Notes     string `json:"notes"`
		}
		if err := decodeJSON(r, &body); err != nil {
			apiError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		input = orchestrators.SubmitBookingInput(body)
	} else {
		if err := r.ParseForm(); err != nil {
			apiError(w, http.StatusBadRequest, "Invalid form submission")
			return
		}
		input = orchestrators.SubmitBookingInput{
			Name:      r.FormValue("name"),
			Email:     r.FormValue("email"),
			Phone:     r.FormValue("phone"),
			EventType: r.FormValue("event_type"),
			Date:      r.FormValue("date"),
			Location:  r.FormValue("location"),
			Budget:    r.FormValue("budget"),
			Notes:     r.FormValue("notes"),
		}
	}

	deps := orchestrators.SubmitBookingDeps{
		BookingStore: s.stores.BookingStore,
		GenerateID:   generateID,
		Now:          timeNow,
	}
	b, err := orchestrators.ExecuteSubmitBooking(r.Context(), input, deps)
	if err != nil {
		if errors.Is(err, bookingDomain.ErrMissingRequiredFields) {
			apiError(w, http.StatusBadRequest, err.Error())
			return
		}
		apiError(w, http.StatusInternalServerError, genericFailure)
		return
	}

	orchestrators.NotifyBooking(r.Context(), orchestrators.NotifyDeps{Sender: s.sender, To: s.cfg.NotifyTo}, b)

	if isJSON {
		writeJSON(w, http.StatusOK, okResponse{OK: true})
		return
	}
	http.Redirect(w, r, "/booking-success", http.StatusSeeOther)
}
