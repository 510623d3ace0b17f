package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	msgIndex         = "Serveur Backend ISC - En ligne et opérationnel!"
	msgInvalidURL    = "URL YouTube invalide."
	msgNoVideoID     = "Impossible d'extraire l'ID vidéo de l'URL."
	msgStoreFailed   = "Impossible d'enregistrer la vidéo."
	msgListFailed    = "Impossible de récupérer les vidéos."
	msgMissingID     = "ID vidéo manquant"
	msgProxyFailed   = "Erreur proxy"
	msgNotFound      = "Not found"
	msgNotAllowed    = "Method not allowed"
	contentTypeJSON  = "application/json"
	contentTypePlain = "text/plain; charset=utf-8"
)

func Index(w http.ResponseWriter) {
	Text(w, http.StatusOK, msgIndex)
}

func Text(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", contentTypePlain)
	w.WriteHeader(status)
	fmt.Fprint(w, text)
}

func JSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		Error(w, http.StatusInternalServerError, "could not marshal response", err)
		return
	}
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	w.Write(body)
}

func Message(w http.ResponseWriter, status int, message string, details ...any) {
	response := struct {
		Message string `json:"message"`
		Details []any  `json:"details,omitempty"`
	}{
		Message: message,
		Details: details,
	}
	body, marshalErr := json.Marshal(response)
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if marshalErr != nil {
		fmt.Fprintf(w, `{"message": %q, "details":%q}`, message, marshalErr.Error())
		return
	}
	w.Write(body)
}

func Error(w http.ResponseWriter, status int, message string, err error, details ...any) {
	response := struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Details []any  `json:"details,omitempty"`
	}{
		Message: message,
		Error:   err.Error(),
		Details: details,
	}
	body, marshalErr := json.Marshal(response)
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if marshalErr != nil {
		fmt.Fprintf(w, `{"message": %q, "error": %q, "details":%q}`, message, err.Error(), marshalErr.Error())
		return
	}
	w.Write(body)
}
