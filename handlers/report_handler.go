package handlers

import (
	"bytes"
	"net/http"

	"github.com/Lieutenant23/Construapp/repository"
	"github.com/Lieutenant23/Construapp/utils"
)

type ReportHandler struct {
	Repo  *repository.ReportRepository
	Guard *OwnershipGuard
}

// ProjectReportJSON answers {porCategoria, totalGeral}.
func (h *ReportHandler) ProjectReportJSON(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	projectID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if _, err := h.Guard.CheckProject(userID, projectID); err != nil {
		respondGuardError(w, err)
		return
	}

	report, err := h.Repo.BuildProjectReport(projectID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Erro interno")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// ProjectReportCSV streams the same aggregation as a CSV attachment.
func (h *ReportHandler) ProjectReportCSV(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	projectID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if _, err := h.Guard.CheckProject(userID, projectID); err != nil {
		respondGuardError(w, err)
		return
	}

	report, err := h.Repo.BuildProjectReport(projectID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Erro interno")
		return
	}

	var buf bytes.Buffer
	if err := utils.WriteReportCSV(&buf, report); err != nil {
		writeError(w, http.StatusInternalServerError, "Erro interno")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="report.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// ProjectReportPDF renders the aggregation as a PDF attachment.
func (h *ReportHandler) ProjectReportPDF(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	projectID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID inválido")
		return
	}

	project, err := h.Guard.CheckProject(userID, projectID)
	if err != nil {
		respondGuardError(w, err)
		return
	}

	report, err := h.Repo.BuildProjectReport(projectID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Erro interno")
		return
	}

	pdfBytes, err := utils.GenerateReportPDF(project, report)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Erro ao gerar PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="report.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
