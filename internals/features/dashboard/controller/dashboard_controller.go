package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookModel "nigerland_backend/internals/features/books/model"
	regModel "nigerland_backend/internals/features/conferences/model"
	contactModel "nigerland_backend/internals/features/contact/model"
	"nigerland_backend/internals/features/dashboard/service"
	mlModel "nigerland_backend/internals/features/morelife/model"
	trainingModel "nigerland_backend/internals/features/trainings/model"
	helper "nigerland_backend/internals/helpers"
	"nigerland_backend/internals/helpers/export"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetStats returns the aggregate counters for the admin landing page.
func (ctrl *DashboardController) GetStats(c *fiber.Ctx) error {
	stats, err := service.CollectStats(c.UserContext(), ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] collect dashboard stats: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to collect stats")
	}
	return helper.JsonOK(c, "Stats fetched successfully", stats)
}

// GetRevenue returns completed-payment revenue broken down per source.
func (ctrl *DashboardController) GetRevenue(c *fiber.Ctx) error {
	revenue, err := service.CollectRevenue(c.UserContext(), ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] collect revenue breakdown: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to collect revenue")
	}
	return helper.JsonOK(c, "Revenue fetched successfully", revenue)
}

func sendCSV(c *fiber.Ctx, name string, payload []byte, err error) error {
	if err != nil {
		if errors.Is(err, export.ErrNoRows) {
			return helper.JsonError(c, fiber.StatusBadRequest, "No records to export")
		}
		log.Printf("[ERROR] export %s: %v", name, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to export records")
	}
	filename := fmt.Sprintf("%s_%s.csv", name, time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(payload)
}

// ExportRegistrations streams all conference registrations as CSV.
func (ctrl *DashboardController) ExportRegistrations(c *fiber.Ctx) error {
	var records []regModel.ConferenceRegistration
	if err := ctrl.DB.Order("created_at ASC").Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registrations")
	}
	payload, err := export.CSV(records, []export.Column[regModel.ConferenceRegistration]{
		{Header: "Reference", Value: func(r regModel.ConferenceRegistration) string { return r.RegistrationRef }},
		{Header: "Full Name", Value: func(r regModel.ConferenceRegistration) string { return r.RegistrationFullName }},
		{Header: "Email", Value: func(r regModel.ConferenceRegistration) string { return r.RegistrationEmail }},
		{Header: "Phone", Value: func(r regModel.ConferenceRegistration) string { return r.RegistrationPhone }},
		{Header: "Organization", Value: func(r regModel.ConferenceRegistration) string { return r.RegistrationOrg }},
		{Header: "Conference", Value: func(r regModel.ConferenceRegistration) string { return r.RegistrationConf }},
		{Header: "Amount", Value: func(r regModel.ConferenceRegistration) string { return fmt.Sprintf("%.2f", r.RegistrationAmount) }},
		{Header: "Status", Value: func(r regModel.ConferenceRegistration) string { return r.RegistrationStatus }},
		{Header: "Payment", Value: func(r regModel.ConferenceRegistration) string { return r.RegistrationPayState }},
		{Header: "Created At", Value: func(r regModel.ConferenceRegistration) string { return r.CreatedAt.Format(time.RFC3339) }},
	})
	return sendCSV(c, "registrations", payload, err)
}

// ExportPurchases streams all book purchases as CSV.
func (ctrl *DashboardController) ExportPurchases(c *fiber.Ctx) error {
	var records []bookModel.BookPurchase
	if err := ctrl.DB.Order("created_at ASC").Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch purchases")
	}
	payload, err := export.CSV(records, []export.Column[bookModel.BookPurchase]{
		{Header: "Reference", Value: func(r bookModel.BookPurchase) string { return r.BookPurchaseRef }},
		{Header: "Full Name", Value: func(r bookModel.BookPurchase) string { return r.BookPurchaseFullName }},
		{Header: "Email", Value: func(r bookModel.BookPurchase) string { return r.BookPurchaseEmail }},
		{Header: "Book ID", Value: func(r bookModel.BookPurchase) string { return r.BookPurchaseBookID.String() }},
		{Header: "Amount", Value: func(r bookModel.BookPurchase) string { return fmt.Sprintf("%.2f", r.BookPurchaseAmount) }},
		{Header: "Status", Value: func(r bookModel.BookPurchase) string { return r.BookPurchaseStatus }},
		{Header: "Created At", Value: func(r bookModel.BookPurchase) string { return r.CreatedAt.Format(time.RFC3339) }},
	})
	return sendCSV(c, "purchases", payload, err)
}

// ExportMessages streams all contact messages as CSV.
func (ctrl *DashboardController) ExportMessages(c *fiber.Ctx) error {
	var records []contactModel.ContactMessage
	if err := ctrl.DB.Order("created_at ASC").Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch messages")
	}
	payload, err := export.CSV(records, []export.Column[contactModel.ContactMessage]{
		{Header: "Name", Value: func(r contactModel.ContactMessage) string { return r.MessageName }},
		{Header: "Email", Value: func(r contactModel.ContactMessage) string { return r.MessageEmail }},
		{Header: "Phone", Value: func(r contactModel.ContactMessage) string { return r.MessagePhone }},
		{Header: "Subject", Value: func(r contactModel.ContactMessage) string { return r.MessageSubject }},
		{Header: "Message", Value: func(r contactModel.ContactMessage) string { return r.MessageBody }},
		{Header: "Status", Value: func(r contactModel.ContactMessage) string { return r.MessageStatus }},
		{Header: "Created At", Value: func(r contactModel.ContactMessage) string { return r.CreatedAt.Format(time.RFC3339) }},
	})
	return sendCSV(c, "messages", payload, err)
}

// ExportEnrollments streams all training enrollments as CSV.
func (ctrl *DashboardController) ExportEnrollments(c *fiber.Ctx) error {
	var records []trainingModel.TrainingEnrollment
	if err := ctrl.DB.Order("created_at ASC").Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}
	payload, err := export.CSV(records, []export.Column[trainingModel.TrainingEnrollment]{
		{Header: "Reference", Value: func(r trainingModel.TrainingEnrollment) string { return r.EnrollmentRef }},
		{Header: "Full Name", Value: func(r trainingModel.TrainingEnrollment) string { return r.EnrollmentFullName }},
		{Header: "Email", Value: func(r trainingModel.TrainingEnrollment) string { return r.EnrollmentEmail }},
		{Header: "Organization", Value: func(r trainingModel.TrainingEnrollment) string { return r.EnrollmentOrg }},
		{Header: "Amount", Value: func(r trainingModel.TrainingEnrollment) string { return fmt.Sprintf("%.2f", r.EnrollmentAmount) }},
		{Header: "Status", Value: func(r trainingModel.TrainingEnrollment) string { return r.EnrollmentStatus }},
		{Header: "Payment", Value: func(r trainingModel.TrainingEnrollment) string { return r.EnrollmentPayState }},
		{Header: "Created At", Value: func(r trainingModel.TrainingEnrollment) string { return r.CreatedAt.Format(time.RFC3339) }},
	})
	return sendCSV(c, "enrollments", payload, err)
}

// ExportAssessments streams all MoreLife assessments as CSV.
func (ctrl *DashboardController) ExportAssessments(c *fiber.Ctx) error {
	var records []mlModel.MoreLifeSession
	if err := ctrl.DB.Order("created_at ASC").Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch sessions")
	}
	payload, err := export.CSV(records, []export.Column[mlModel.MoreLifeSession]{
		{Header: "Reference", Value: func(r mlModel.MoreLifeSession) string { return r.SessionRef }},
		{Header: "Client Name", Value: func(r mlModel.MoreLifeSession) string { return r.SessionClientName }},
		{Header: "Email", Value: func(r mlModel.MoreLifeSession) string { return r.SessionEmail }},
		{Header: "Phone", Value: func(r mlModel.MoreLifeSession) string { return r.SessionPhone }},
		{Header: "Session Type", Value: func(r mlModel.MoreLifeSession) string { return r.SessionType }},
		{Header: "Amount", Value: func(r mlModel.MoreLifeSession) string { return fmt.Sprintf("%.2f", r.SessionAmount) }},
		{Header: "Status", Value: func(r mlModel.MoreLifeSession) string { return r.SessionStatus }},
		{Header: "Payment", Value: func(r mlModel.MoreLifeSession) string { return r.SessionPayState }},
		{Header: "Created At", Value: func(r mlModel.MoreLifeSession) string { return r.CreatedAt.Format(time.RFC3339) }},
	})
	return sendCSV(c, "assessments", payload, err)
}
