package transport

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rpggio/sala/internal/domain/attendance"
	"github.com/rpggio/sala/internal/domain/client"
	"github.com/rpggio/sala/internal/domain/theme"
)

// queryDateLayout is the format of the from/to history filters.
const queryDateLayout = "2006-01-02"

func (s *Server) listAttendances(w http.ResponseWriter, r *http.Request) {
	var opts attendance.ListOptions
	for key, dst := range map[string]*time.Time{"from": &opts.From, "to": &opts.To} {
		raw := r.URL.Query().Get(key)
		if raw == "" {
			continue
		}
		t, err := time.Parse(queryDateLayout, raw)
		if err != nil {
			WriteError(w, s.logger, invalidInput("%s must be YYYY-MM-DD", key))
			return
		}
		*dst = t
	}

	records, err := s.svc.Attendances.List(r.Context(), opts)
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	WriteData(w, http.StatusOK, records)
}

func (s *Server) newDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := s.svc.Attendances.NewDraft(r.Context())
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	WriteData(w, http.StatusOK, draft)
}

func (s *Server) getAttendance(w http.ResponseWriter, r *http.Request) {
	id, err := urlParam(r, "id")
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	rec, err := s.svc.Attendances.Get(r.Context(), id)
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	WriteData(w, http.StatusOK, rec)
}

func (s *Server) registerAttendance(w http.ResponseWriter, r *http.Request) {
	var in attendance.Record
	if err := decodeJSON(r, &in); err != nil {
		WriteError(w, s.logger, err)
		return
	}
	rec, err := s.svc.Attendances.Register(r.Context(), in)
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	WriteData(w, http.StatusCreated, rec)
}

func (s *Server) lookupEntity(w http.ResponseWriter, r *http.Request) {
	document, err := urlParam(r, "document")
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	res, err := s.svc.Attendances.LookupEntity(r.Context(), document)
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	WriteData(w, http.StatusOK, res)
}

func (s *Server) suggestGuidance(w http.ResponseWriter, r *http.Request) {
	var req attendance.GuidanceRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, s.logger, err)
		return
	}
	out, err := s.svc.Attendances.SuggestGuidance(r.Context(), req)
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	WriteData(w, http.StatusOK, out)
}

func (s *Server) listClients(w http.ResponseWriter, r *http.Request) {
	clients, err := s.svc.Clients.List(r.Context())
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	WriteData(w, http.StatusOK, clients)
}

func (s *Server) getClient(w http.ResponseWriter, r *http.Request) {
	document, err := urlParam(r, "document")
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	c, err := s.svc.Clients.Get(r.Context(), document)
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	WriteData(w, http.StatusOK, c)
}

func (s *Server) createClient(w http.ResponseWriter, r *http.Request) {
	var in client.Client
	if err := decodeJSON(r, &in); err != nil {
		WriteError(w, s.logger, err)
		return
	}
	c, err := s.svc.Clients.Save(r.Context(), in)
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	WriteData(w, http.StatusCreated, c)
}

func (s *Server) saveClient(w http.ResponseWriter, r *http.Request) {
	document, err := urlParam(r, "document")
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	var in client.Client
	if err := decodeJSON(r, &in); err != nil {
		WriteError(w, s.logger, err)
		return
	}
	in.Document = document
	c, err := s.svc.Clients.Save(r.Context(), in)
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	WriteData(w, http.StatusOK, c)
}

func (s *Server) deleteClient(w http.ResponseWriter, r *http.Request) {
	document, err := urlParam(r, "document")
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	if err := s.svc.Clients.Delete(r.Context(), document); err != nil {
		WriteError(w, s.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listThemes(w http.ResponseWriter, r *http.Request) {
	themes, err := s.svc.Themes.List(r.Context())
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	WriteData(w, http.StatusOK, themes)
}

func (s *Server) getTheme(w http.ResponseWriter, r *http.Request) {
	id, err := urlParam(r, "id")
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	t, err := s.svc.Themes.Get(r.Context(), id)
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	WriteData(w, http.StatusOK, t)
}

func (s *Server) createTheme(w http.ResponseWriter, r *http.Request) {
	var in theme.Theme
	if err := decodeJSON(r, &in); err != nil {
		WriteError(w, s.logger, err)
		return
	}
	t, err := s.svc.Themes.Create(r.Context(), theme.CreateRequest{ID: in.ID, Label: in.Label, Subthemes: in.Subthemes})
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	WriteData(w, http.StatusCreated, t)
}

func (s *Server) saveTheme(w http.ResponseWriter, r *http.Request) {
	id, err := urlParam(r, "id")
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	var in theme.Theme
	if err := decodeJSON(r, &in); err != nil {
		WriteError(w, s.logger, err)
		return
	}
	in.ID = id
	t, err := s.svc.Themes.Save(r.Context(), in)
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	WriteData(w, http.StatusOK, t)
}

func (s *Server) deleteTheme(w http.ResponseWriter, r *http.Request) {
	id, err := urlParam(r, "id")
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	if err := s.svc.Themes.Delete(r.Context(), id); err != nil {
		WriteError(w, s.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type subthemeRequest struct {
	Subtheme string `json:"subtheme"`
}

func (s *Server) addSubtheme(w http.ResponseWriter, r *http.Request) {
	id, err := urlParam(r, "id")
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	var req subthemeRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, s.logger, err)
		return
	}
	t, err := s.svc.Themes.AddSubtheme(r.Context(), id, req.Subtheme)
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	WriteData(w, http.StatusOK, t)
}

func (s *Server) removeSubtheme(w http.ResponseWriter, r *http.Request) {
	id, err := urlParam(r, "id")
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	rawIndex, err := urlParam(r, "index")
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	index, err := strconv.Atoi(rawIndex)
	if err != nil {
		WriteError(w, s.logger, invalidInput("index must be an integer"))
		return
	}
	t, err := s.svc.Themes.RemoveSubtheme(r.Context(), id, index)
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	WriteData(w, http.StatusOK, t)
}

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := s.svc.Metrics.Dashboard(r.Context())
	if err != nil {
		WriteError(w, s.logger, err)
		return
	}
	WriteData(w, http.StatusOK, d)
}
