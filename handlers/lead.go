package handlers

import (
	"fmt"
	"net/http"
	"time"

	"scopex/models"
	leadService "scopex/services/lead"
	"scopex/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LeadHandler exposes the lead registry over HTTP: public submission plus
// the admin panel's list/update/delete/export surface.
type LeadHandler struct {
	Registry leadService.LeadRegistry
}

func NewLeadHandler(registry leadService.LeadRegistry) *LeadHandler {
	return &LeadHandler{Registry: registry}
}

// hospitalEnquiryInput mirrors the enquiry form; every field is required at
// this layer, the registry does not re-validate.
type hospitalEnquiryInput struct {
	HospitalName string `json:"hospitalName" binding:"required"`
	ContactName  string `json:"contactName" binding:"required"`
	Mobile       string `json:"mobile" binding:"required"`
	Interest     string `json:"interest" binding:"required"`
}

type campBookingInput struct {
	FullName     string `json:"fullName" binding:"required"`
	Organization string `json:"organization" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Headcount    string `json:"headcount" binding:"required"`
	Requirements string `json:"requirements" binding:"required"`
}

// SubmitHospitalEnquiryHandler handles POST /api/leads/hospital.
func (h *LeadHandler) SubmitHospitalEnquiryHandler(c *gin.Context) {
	var input hospitalEnquiryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid submission", err.Error())
		return
	}
	if !models.ValidHospitalInterest(input.Interest) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid submission", "unknown interest: "+input.Interest)
		return
	}

	ok := h.Registry.Submit(c.Request.Context(), models.CategoryHospital, models.LeadRecord{
		HospitalName: input.HospitalName,
		ContactName:  input.ContactName,
		Mobile:       input.Mobile,
		Interest:     input.Interest,
	})
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Submission failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SubmitCampBookingHandler handles POST /api/leads/camp.
func (h *LeadHandler) SubmitCampBookingHandler(c *gin.Context) {
	var input campBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid submission", err.Error())
		return
	}
	if !models.ValidCampHeadcount(input.Headcount) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid submission", "unknown headcount bracket: "+input.Headcount)
		return
	}

	ok := h.Registry.Submit(c.Request.Context(), models.CategoryCamp, models.LeadRecord{
		FullName:     input.FullName,
		Organization: input.Organization,
		Phone:        input.Phone,
		Email:        input.Email,
		Date:         input.Date,
		Headcount:    input.Headcount,
		Requirements: input.Requirements,
	})
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Submission failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListLeadsHandler handles GET /api/admin/leads.
func (h *LeadHandler) ListLeadsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Registry.List(c.Request.Context()))
}

func parseCategory(c *gin.Context) (models.LeadCategory, bool) {
	switch models.LeadCategory(c.Param("category")) {
	case models.CategoryHospital:
		return models.CategoryHospital, true
	case models.CategoryCamp:
		return models.CategoryCamp, true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown lead category"})
		return "", false
	}
}

// UpdateLeadHandler handles PATCH /api/admin/leads/:category/:id.
func (h *LeadHandler) UpdateLeadHandler(c *gin.Context) {
	category, ok := parseCategory(c)
	if !ok {
		return
	}

	var patch models.LeadPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid patch", err.Error())
		return
	}

	id := c.Param("id")
	if !h.Registry.Update(c.Request.Context(), id, category, patch) {
		utils.GetLogger().Warn("lead update rejected", zap.String("id", id))
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteLeadHandler handles DELETE /api/admin/leads/:category/:id.
func (h *LeadHandler) DeleteLeadHandler(c *gin.Context) {
	category, ok := parseCategory(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if !h.Registry.Delete(c.Request.Context(), id, category) {
		utils.GetLogger().Warn("lead delete failed", zap.String("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lead"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ExportLeadsHandler handles GET /api/admin/leads/export?category=hospital.
func (h *LeadHandler) ExportLeadsHandler(c *gin.Context) {
	category := models.LeadCategory(c.DefaultQuery("category", string(models.CategoryHospital)))
	if category != models.CategoryHospital && category != models.CategoryCamp {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown lead category"})
		return
	}

	data, err := leadService.ExportCSV(h.Registry.List(c.Request.Context()), category)
	if err != nil {
		utils.GetLogger().Error("CSV export failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed"})
		return
	}

	filename := fmt.Sprintf("scopex_%s_leads_%s.csv", category, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
