package handlers

import (
	"bytes"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/Lieutenant23/Construapp/models"
	"github.com/Lieutenant23/Construapp/repository"
	"github.com/Lieutenant23/Construapp/storage"
	"github.com/Lieutenant23/Construapp/utils"
)

// MaxUploadSize caps attachment uploads at 5 MiB.
const MaxUploadSize = 5 << 20

var allowedMIMETypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
}

type AttachmentHandler struct {
	Repo  repository.AttachmentRepository
	Guard *OwnershipGuard
	Store storage.FileStore
}

// UploadAttachment stores a multipart file under an expense. Oversized
// and disallowed files are rejected before anything reaches the store.
func (h *AttachmentHandler) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	expenseID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if _, err := h.Guard.CheckExpense(userID, expenseID); err != nil {
		respondGuardError(w, err)
		return
	}

	// MaxBytesReader aborts the multipart parse as soon as the request
	// body outgrows the limit plus form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize+4096)
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusBadRequest, "Arquivo excede o limite de 5 MB")
			return
		}
		writeError(w, http.StatusBadRequest, "Arquivo é obrigatório")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Arquivo é obrigatório")
		return
	}
	defer file.Close()

	if header.Size > MaxUploadSize {
		writeError(w, http.StatusBadRequest, "Arquivo excede o limite de 5 MB")
		return
	}

	// Sniff the real content type instead of trusting the client header.
	sniff := make([]byte, 512)
	n, err := io.ReadFull(file, sniff)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		writeError(w, http.StatusInternalServerError, "Erro interno")
		return
	}
	sniff = sniff[:n]
	contentType := http.DetectContentType(sniff)
	if !allowedMIMETypes[contentType] {
		writeError(w, http.StatusBadRequest, "Tipo de arquivo não permitido")
		return
	}

	tipo := models.AttachmentTipo(r.FormValue("tipo"))
	if tipo == "" {
		tipo = models.TipoNota
	}
	if !tipo.IsValid() {
		writeError(w, http.StatusBadRequest, "Tipo de anexo inválido")
		return
	}

	filename := utils.UniqueFilename(header.Filename)
	url, err := h.Store.Save(filename, contentType, io.MultiReader(bytes.NewReader(sniff), file))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Erro interno")
		return
	}

	attachment := &models.Attachment{
		ExpenseID: expenseID,
		URL:       url,
		Tipo:      tipo,
	}
	if err := h.Repo.CreateAttachment(attachment); err != nil {
		// Keep storage consistent with the database.
		if rmErr := h.Store.Remove(url); rmErr != nil {
			log.Printf("orphaned file after failed attachment insert: %s: %v", url, rmErr)
		}
		writeError(w, http.StatusInternalServerError, "Erro interno")
		return
	}
	writeJSON(w, http.StatusCreated, attachment)
}

// DeleteAttachment removes the stored file and the row. File removal
// failures are logged and swallowed, never surfaced to the caller.
func (h *AttachmentHandler) DeleteAttachment(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	attachmentID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID inválido")
		return
	}

	attachment, err := h.Guard.CheckAttachment(userID, attachmentID)
	if err != nil {
		respondGuardError(w, err)
		return
	}

	if err := h.Store.Remove(attachment.URL); err != nil {
		log.Printf("failed to remove stored file %s: %v", attachment.URL, err)
	}
	if err := h.Repo.DeleteAttachment(attachmentID); err != nil {
		writeError(w, http.StatusInternalServerError, "Erro interno")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
