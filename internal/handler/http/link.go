package http

import "net/http"

// Permanent redirect targets served under /link.
const (
	WikiURL   = "https://github.com/Arteiii/Authly/wiki"
	GitHubURL = "https://github.com/Arteiii/Authly"
)

func (h *Handler) wiki(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, WikiURL, http.StatusMovedPermanently)
}

func (h *Handler) github(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, GitHubURL, http.StatusMovedPermanently)
}
