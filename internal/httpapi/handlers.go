package httpapi

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"podclip/internal/clipplan"
	"podclip/internal/clipupdate"
	"podclip/internal/episode"
	"podclip/internal/logging"
	"podclip/internal/request"
	"podclip/internal/services"
	"podclip/internal/status"
	"podclip/internal/store"
	"podclip/internal/timecode"
)

type healthResponse struct {
	Status string `json:"status"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type clipListResponse struct {
	EpisodeID string       `json:"episodeId"`
	Clips     []store.Clip `json:"clips"`
}

type planRequest struct {
	Segments []timecode.Range `json:"segments"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.logger.Warn("health check failed", logging.Error(err))
		s.writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unhealthy"})
		return
	}
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// target validates the caller and path, returning the owned episode.
func (s *Server) target(r *http.Request) (request.Target, episode.Episode, error) {
	tenantID, _ := services.TenantIDFromContext(r.Context())
	target, err := request.Validate(mux.Vars(r), request.RequestContext{
		Authorizer: request.Authorizer{TenantID: tenantID},
	})
	if err != nil {
		return request.Target{}, episode.Episode{}, err
	}
	ep, err := s.store.GetEpisode(r.Context(), target.TenantID, target.EpisodeID)
	if err != nil {
		return request.Target{}, episode.Episode{}, err
	}
	return target, ep, nil
}

func (s *Server) handleGetEpisode(w http.ResponseWriter, r *http.Request) {
	target, ep, err := s.target(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, episode.Format(ep, target.EpisodeID))
}

func (s *Server) handleAppendStatus(w http.ResponseWriter, r *http.Request) {
	target, _, err := s.target(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var body statusRequest
	if err := decodeBody(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	label := status.Label(strings.TrimSpace(body.Status))
	if label == "" {
		s.writeError(w, r, &services.MissingParametersError{Missing: []string{"status"}})
		return
	}
	ep, err := s.store.AppendEpisodeStatus(r.Context(), target.TenantID, target.EpisodeID, label, s.clock.Now())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	logging.WithContext(services.WithEpisodeID(r.Context(), target.EpisodeID), s.logger).Info("episode status recorded",
		logging.String("status", string(label)),
	)
	s.writeJSON(w, http.StatusOK, episode.Format(ep, target.EpisodeID))
}

func (s *Server) handlePutClip(w http.ResponseWriter, r *http.Request) {
	target, _, err := s.target(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req clipupdate.Request
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	req.EpisodeID = target.EpisodeID
	req.ClipID = mux.Vars(r)["clipId"]

	update, err := s.updater.Build(req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	clip, err := s.store.ApplyClipUpdate(r.Context(), update)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	logging.WithContext(services.WithEpisodeID(r.Context(), target.EpisodeID), s.logger).Info("clip updated",
		logging.String(logging.FieldClipID, clip.ClipID),
		logging.String("status", string(clip.Status)),
	)
	s.writeJSON(w, http.StatusOK, clip)
}

func (s *Server) handleListClips(w http.ResponseWriter, r *http.Request) {
	target, _, err := s.target(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	clips, err := s.store.ListClips(r.Context(), target.EpisodeID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if clips == nil {
		clips = []store.Clip{}
	}
	s.writeJSON(w, http.StatusOK, clipListResponse{EpisodeID: target.EpisodeID, Clips: clips})
}

func (s *Server) handlePlanClip(w http.ResponseWriter, r *http.Request) {
	target, _, err := s.target(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var body planRequest
	if err := decodeBody(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	plan, err := clipplan.Build(target.EpisodeID, mux.Vars(r)["clipId"], body.Segments)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, plan)
}
