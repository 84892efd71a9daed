package seeds

import (
	"log"

	"gorm.io/gorm"

	"nigerland_backend/internals/configs"
	adminModel "nigerland_backend/internals/features/admins/model"
	authService "nigerland_backend/internals/features/admins/service"
	announcementModel "nigerland_backend/internals/features/announcements/model"
	bookModel "nigerland_backend/internals/features/books/model"
	conferenceModel "nigerland_backend/internals/features/conferences/model"
	contactModel "nigerland_backend/internals/features/contact/model"
	morelifeModel "nigerland_backend/internals/features/morelife/model"
	projectModel "nigerland_backend/internals/features/projects/model"
	teamModel "nigerland_backend/internals/features/team/model"
	trainingModel "nigerland_backend/internals/features/trainings/model"
)

// Run migrates the schema and inserts starter content. Every step is
// idempotent: catalog tables are only filled when empty, and the admin
// account is only created when missing.
func Run(db *gorm.DB) {
	if err := db.AutoMigrate(
		&adminModel.Admin{},
		&bookModel.Book{},
		&bookModel.BookPurchase{},
		&conferenceModel.Conference{},
		&conferenceModel.ConferenceRegistration{},
		&trainingModel.TrainingProgram{},
		&trainingModel.TrainingEnrollment{},
		&morelifeModel.MoreLifeSession{},
		&teamModel.TeamMember{},
		&projectModel.Project{},
		&announcementModel.Announcement{},
		&contactModel.ContactMessage{},
	); err != nil {
		log.Printf("[ERROR] auto migrate: %v", err)
		return
	}
	log.Println("✅ Schema migrated")

	seedAdmin(db)
	seedBooks(db)
	seedTeam(db)
	seedProjects(db)
	seedAnnouncements(db)
}

func seedAdmin(db *gorm.DB) {
	var count int64
	db.Model(&adminModel.Admin{}).Where("admin_username = ?", configs.AdminUsername).Count(&count)
	if count > 0 {
		return
	}
	hash, err := authService.HashPassword(configs.AdminPassword)
	if err != nil {
		log.Printf("[ERROR] hash admin password: %v", err)
		return
	}
	admin := adminModel.Admin{
		AdminUsername: configs.AdminUsername,
		AdminPassword: hash,
		AdminRole:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[ERROR] seed admin: %v", err)
		return
	}
	log.Printf("✅ Seeded admin account %s", admin.AdminUsername)
}

func seedBooks(db *gorm.DB) {
	var count int64
	db.Model(&bookModel.Book{}).Count(&count)
	if count > 0 {
		return
	}
	books := []bookModel.Book{
		{BookTitle: "Nigeria's Hero Vol 1", BookAuthor: "Nigerland Consult", BookDescription: "Inspiring stories of Nigerian heroes and nation builders", BookPrice: 5000, BookCategory: "Nation Building", BookImage: "/assets/books/building-courage.jpg", BookPdfURL: "/assets/books/nigerias-hero-vol-1.pdf", BookIsPaid: true},
		{BookTitle: "Nigeria's Hero Vol 2", BookAuthor: "Nigerland Consult", BookDescription: "Continuing the journey of Nigerian excellence", BookPrice: 5000, BookCategory: "Nation Building", BookImage: "/assets/books/salute.jpg", BookPdfURL: "/assets/books/nigerias-hero-vol-2.pdf", BookIsPaid: true},
		{BookTitle: "The Good Nigerian", BookAuthor: "Nigerland Consult", BookDescription: "Stories of integrity and nation building", BookPrice: 4500, BookCategory: "Ethics & Values", BookImage: "/assets/books/the-good-nigerian.jpg", BookPdfURL: "/assets/books/the-good-nigerian.pdf", BookIsPaid: true},
		{BookTitle: "Yomi and the Three Thieves", BookAuthor: "Nigerland Consult", BookDescription: "A captivating children's story with moral lessons", BookPrice: 3000, BookCategory: "Children's Books", BookImage: "/assets/books/yomi.jpg", BookPdfURL: "/assets/books/yomi-and-the-three-thieves.pdf", BookIsPaid: true},
		{BookTitle: "Building Courage", BookAuthor: "Nigerland Consult", BookDescription: "Developing leadership and courage in young Nigerians", BookPrice: 4000, BookCategory: "Leadership", BookImage: "/assets/books/building-courage.jpg", BookIsPaid: true},
	}
	if err := db.Create(&books).Error; err != nil {
		log.Printf("[ERROR] seed books: %v", err)
		return
	}
	log.Printf("✅ Seeded %d books", len(books))
}

func seedTeam(db *gorm.DB) {
	var count int64
	db.Model(&teamModel.TeamMember{}).Count(&count)
	if count > 0 {
		return
	}
	members := []teamModel.TeamMember{
		{TeamMemberName: "Mr. Kelechi Ngwaba", TeamMemberTitle: "Managing Director", TeamMemberCredentials: "MBA, FCIT", TeamMemberBio: "Visionary leader with over 20 years of experience in management consulting", TeamMemberImage: "/assets/team/kelechi.jpg", TeamMemberOrder: 1},
		{TeamMemberName: "Mrs. Uduak Nkanga Ngwaba", TeamMemberTitle: "Executive Director", TeamMemberCredentials: "MSc, ACCA", TeamMemberBio: "Expert in business development and strategic planning", TeamMemberImage: "/assets/team/uduak.jpg", TeamMemberOrder: 2},
	}
	if err := db.Create(&members).Error; err != nil {
		log.Printf("[ERROR] seed team: %v", err)
		return
	}
	log.Printf("✅ Seeded %d team members", len(members))
}

func seedProjects(db *gorm.DB) {
	var count int64
	db.Model(&projectModel.Project{}).Count(&count)
	if count > 0 {
		return
	}
	projects := []projectModel.Project{
		{ProjectTitle: "Children's Foundation Initiative", ProjectDescription: "Supporting underprivileged children through education and welfare programs", ProjectStatus: "active"},
		{ProjectTitle: "Business Development Program", ProjectDescription: "Empowering SMEs with modern business strategies and tools", ProjectStatus: "active"},
		{ProjectTitle: "Government Advisory Services", ProjectDescription: "Providing strategic advice to government institutions", ProjectStatus: "active"},
	}
	if err := db.Create(&projects).Error; err != nil {
		log.Printf("[ERROR] seed projects: %v", err)
		return
	}
	log.Printf("✅ Seeded %d projects", len(projects))
}

func seedAnnouncements(db *gorm.DB) {
	var count int64
	db.Model(&announcementModel.Announcement{}).Count(&count)
	if count > 0 {
		return
	}
	announcements := []announcementModel.Announcement{
		{AnnouncementTitle: "Tax Conference 2025 Registration Open", AnnouncementContent: "Join us for the biggest tax conference of the year! Early bird registration now available with special discounts.", AnnouncementType: "info", AnnouncementIsActive: true},
		{AnnouncementTitle: "New Book Release: Building Courage", AnnouncementContent: "Our latest publication on leadership and courage development is now available for purchase.", AnnouncementType: "success", AnnouncementIsActive: true},
	}
	if err := db.Create(&announcements).Error; err != nil {
		log.Printf("[ERROR] seed announcements: %v", err)
		return
	}
	log.Printf("✅ Seeded %d announcements", len(announcements))
}
