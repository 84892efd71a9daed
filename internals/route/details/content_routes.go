package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementController "nigerland_backend/internals/features/announcements/controller"
	projectController "nigerland_backend/internals/features/projects/controller"
	teamController "nigerland_backend/internals/features/team/controller"
)

// ContentPublicRoutes serves the read-only page content for the site:
// team, projects, and active announcements.
func ContentPublicRoutes(r fiber.Router, db *gorm.DB) {
	teamCtrl := teamController.NewTeamMemberController(db)
	projectCtrl := projectController.NewProjectController(db)
	announcementCtrl := announcementController.NewAnnouncementController(db)

	r.Get("/team", teamCtrl.ListTeamMembers)
	r.Get("/projects", projectCtrl.ListProjects)
	r.Get("/announcements", announcementCtrl.ListActiveAnnouncements)
}

func ContentAdminRoutes(r fiber.Router, db *gorm.DB) {
	teamCtrl := teamController.NewTeamMemberController(db)
	projectCtrl := projectController.NewProjectController(db)
	announcementCtrl := announcementController.NewAnnouncementController(db)

	r.Post("/team", teamCtrl.CreateTeamMember)
	r.Put("/team/:id", teamCtrl.UpdateTeamMember)
	r.Delete("/team/:id", teamCtrl.DeleteTeamMember)

	r.Post("/projects", projectCtrl.CreateProject)
	r.Put("/projects/:id", projectCtrl.UpdateProject)
	r.Delete("/projects/:id", projectCtrl.DeleteProject)

	r.Get("/announcements", announcementCtrl.ListAnnouncements)
	r.Post("/announcements", announcementCtrl.CreateAnnouncement)
	r.Put("/announcements/:id", announcementCtrl.UpdateAnnouncement)
	r.Delete("/announcements/:id", announcementCtrl.DeleteAnnouncement)
}
